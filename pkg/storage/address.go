package storage

import (
	"context"
	"hellofood/pkg/domain"
)

// AddressStorage persists postal addresses.
type AddressStorage interface {
	// StoreAddress inserts an address and returns it with its assigned ID.
	StoreAddress(ctx context.Context, address domain.Address) (*domain.Address, error)
	// AddressByID returns the address or nil when it does not exist.
	AddressByID(ctx context.Context, ID domain.AddressID) (*domain.Address, error)
	// ReplaceAddress overwrites every field of the address identified by
	// address.ID. It reports false when no such address exists.
	ReplaceAddress(ctx context.Context, address domain.Address) (bool, error)
}
