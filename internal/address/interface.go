package address

import (
	"context"
	"hellofood/pkg/domain"
)

//go:generate mockgen -package mockaddress -source=interface.go -destination=mock/mockaddress.go *
type Service interface {
	Get(ctx context.Context, ID domain.AddressID) (*domain.Address, error)
	Create(ctx context.Context, unit, streetName, suburb string, postcode int) (*domain.Address, error)
	// Replace overwrites every field of an existing address.
	Replace(ctx context.Context, address domain.Address) error
}
