package delivery

import (
	"context"
	"hellofood/pkg/domain"
)

type CreateParams struct {
	UserID       domain.UserID
	AddressID    domain.AddressID
	DeliveryTime int64
	MealOrders   []domain.MealOrder
}

// Input is the loosely typed form of CreateParams as decoded from a request.
// Pointers tell a missing field apart from a zero value.
type Input struct {
	UserID       *int64           `json:"user_id"       validate:"required"`
	AddressID    *int64           `json:"address_id"    validate:"required"`
	DeliveryTime *int64           `json:"delivery_time" validate:"required"`
	MealOrders   []MealOrderInput `json:"meal_orders"   validate:"required,dive"`
}

type MealOrderInput struct {
	MealID   *int64 `json:"meal_id"  validate:"required"`
	Quantity *int   `json:"quantity" validate:"required"`
}

//go:generate mockgen -package mockdelivery -source=interface.go -destination=mock/mockdelivery.go *
type Service interface {
	// Create validates and prices the orders, then stores the delivery and all
	// of its meal orders in one transaction.
	Create(ctx context.Context, params CreateParams) (*domain.Delivery, error)
	CreateFromInput(ctx context.Context, input Input) (*domain.Delivery, error)
	// Get reads the delivery and its meal orders from one snapshot.
	Get(ctx context.Context, ID domain.DeliveryID) (*domain.Delivery, error)
	UpdateAddress(ctx context.Context, ID domain.DeliveryID, addressID domain.AddressID) error
	ListByUser(ctx context.Context, userID domain.UserID) ([]domain.Delivery, error)
}
