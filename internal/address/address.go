// Package address is the address book shared by users, deliveries and
// handling events. Addresses are never deleted, so an identifier handed out
// once stays resolvable.
package address

import (
	"context"
	"fmt"
	"hellofood/pkg/domain"
	"hellofood/pkg/logger"
	"hellofood/pkg/serrors"
	"hellofood/pkg/storage"
)

type service struct {
	storage storage.Storage
}

func (s service) Get(ctx context.Context, ID domain.AddressID) (*domain.Address, error) {
	address, err := s.storage.AddressByID(ctx, ID)
	if err != nil {
		return nil, fmt.Errorf("could not get address: %w", err)
	}
	if address == nil {
		return nil, serrors.With(serrors.ErrNotFound, "address %d not found", ID)
	}

	return address, nil
}

func (s service) Create(
	ctx context.Context,
	unit, streetName, suburb string,
	postcode int,
) (*domain.Address, error) {
	address := domain.Address{
		Unit:       unit,
		StreetName: streetName,
		Suburb:     suburb,
		Postcode:   postcode,
	}
	if err := address.Validate(); err != nil {
		return nil, err
	}

	stored, err := s.storage.StoreAddress(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("could not create address: %w", err)
	}
	logger.Debug(ctx, "address created", logger.AddressID(stored.ID))

	return stored, nil
}

func (s service) Replace(ctx context.Context, address domain.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}

	found, err := s.storage.ReplaceAddress(ctx, address)
	if err != nil {
		return fmt.Errorf("could not replace address: %w", err)
	}
	if !found {
		return serrors.With(serrors.ErrNotFound, "address %d not found", address.ID)
	}

	return nil
}

func New(storage storage.Storage) Service {
	return &service{
		storage: storage,
	}
}
