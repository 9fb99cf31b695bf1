package handling

import (
	"context"
	"hellofood/pkg/domain"
)

type CreateParams struct {
	DeliveryID     domain.DeliveryID
	ToAddressID    domain.AddressID
	FromAddressID  domain.AddressID
	CompletionTime int64
}

//go:generate mockgen -package mockhandling -source=interface.go -destination=mock/mockhandling.go *
type Service interface {
	// Create appends an event to the delivery's log and, once it is committed,
	// notifies the customer. A failed notification does not fail Create.
	Create(ctx context.Context, params CreateParams) (*domain.HandlingEvent, error)
	Get(ctx context.Context, ID domain.HandlingEventID) (*domain.HandlingEvent, error)
	ListByDelivery(ctx context.Context, deliveryID domain.DeliveryID) ([]domain.HandlingEvent, error)
}
