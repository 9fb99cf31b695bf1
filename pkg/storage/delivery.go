package storage

import (
	"context"
	"hellofood/pkg/domain"
)

// DeliveryStorage persists the delivery aggregate: a header row plus one row
// per meal order line.
type DeliveryStorage interface {
	// StoreDelivery inserts the header and every line atomically and returns
	// the stored aggregate. Either everything is written or nothing is.
	StoreDelivery(ctx context.Context, delivery domain.Delivery) (*domain.Delivery, error)
	// DeliveryByID returns the header with its lines in insertion order, or
	// nil when the delivery does not exist.
	DeliveryByID(ctx context.Context, ID domain.DeliveryID) (*domain.Delivery, error)
	// LockDeliveryByID is DeliveryByID holding a row lock on the header until
	// the transaction ends. Writers appending to the same delivery queue up
	// behind it.
	LockDeliveryByID(ctx context.Context, ID domain.DeliveryID) (*domain.Delivery, error)
	// DeliveriesByUser returns every delivery of a user ordered by ID.
	DeliveriesByUser(ctx context.Context, userID domain.UserID) ([]domain.Delivery, error)
	// UpdateDeliveryAddress replaces the destination address of a delivery.
	// It reports false when the delivery does not exist.
	UpdateDeliveryAddress(ctx context.Context, ID domain.DeliveryID, addressID domain.AddressID) (bool, error)
}
