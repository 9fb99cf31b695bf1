package storage

import (
	"context"
	"hellofood/pkg/domain"
)

// HandlingEventStorage persists the append-only handling event log.
type HandlingEventStorage interface {
	// StoreHandlingEvent appends an event and returns it with its assigned ID.
	StoreHandlingEvent(ctx context.Context, event domain.HandlingEvent) (*domain.HandlingEvent, error)
	// HandlingEventByID returns the event or nil when it does not exist.
	HandlingEventByID(ctx context.Context, ID domain.HandlingEventID) (*domain.HandlingEvent, error)
	// HandlingEventsByDelivery returns the events of a delivery in insertion order.
	HandlingEventsByDelivery(ctx context.Context, deliveryID domain.DeliveryID) ([]domain.HandlingEvent, error)
	// HandlingEventCountByDelivery counts the events recorded for a delivery.
	HandlingEventCountByDelivery(ctx context.Context, deliveryID domain.DeliveryID) (int64, error)
}
