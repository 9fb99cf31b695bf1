// Package user is the registry of trial and standard customers.
package user

import (
	"context"
	"errors"
	"fmt"
	"hellofood/pkg/domain"
	"hellofood/pkg/logger"
	"hellofood/pkg/serrors"
	"hellofood/pkg/storage"
)

type service struct {
	storage storage.Storage
}

func (s service) CreateTrial(ctx context.Context, params TrialParams) (*domain.User, error) {
	user := params.Profile.user(domain.UserKindTrial)
	user.Trial = &domain.TrialTerms{
		EndDate:  params.TrialEndDate,
		Discount: params.Discount,
	}

	return s.create(ctx, user, params.Address)
}

func (s service) CreateStandard(ctx context.Context, params StandardParams) (*domain.User, error) {
	return s.create(ctx, params.Profile.user(domain.UserKindStandard), params.Address)
}

func (s service) create(ctx context.Context, user domain.User, address *domain.Address) (*domain.User, error) {
	if err := user.Validate(); err != nil {
		return nil, err
	}
	switch {
	case address != nil && user.AddressID != 0:
		return nil, serrors.With(serrors.ErrValidation, "only one of address_id and address can be set")
	case address == nil && user.AddressID == 0:
		return nil, serrors.With(serrors.ErrValidation, "address_id is required")
	case address != nil:
		if err := address.Validate(); err != nil {
			return nil, err
		}
	}

	var stored *domain.User
	err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		if address != nil {
			newAddress, err := tx.StoreAddress(ctx, *address)
			if err != nil {
				return fmt.Errorf("could not store address: %w", err)
			}
			user.AddressID = newAddress.ID
		} else if err := addressExists(ctx, tx, user.AddressID); err != nil {
			return err
		}

		var err error
		stored, err = tx.StoreUser(ctx, user)
		if err != nil {
			return duplicateEmail(err, user.Email)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("could not create user: %w", err)
	}
	logger.Info(ctx, "user created", logger.UserID(stored.ID), logger.AddressID(stored.AddressID))

	return stored, nil
}

func (s service) Get(ctx context.Context, ID domain.UserID) (*domain.User, error) {
	user, err := s.storage.UserByID(ctx, ID)
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrNotFound, "user %d not found", ID)
	}

	return user, nil
}

func (s service) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.storage.UserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("could not get user by email: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrNotFound, "user with email %q not found", email)
	}

	return user, nil
}

// Update runs the update for the user's variant. The previous address is
// kept even when no user references it anymore.
func (s service) Update(ctx context.Context, user domain.User) (*domain.User, error) {
	if err := user.Validate(); err != nil {
		return nil, err
	}

	err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		existing, err := tx.UserByID(ctx, user.ID)
		if err != nil {
			return fmt.Errorf("could not get user: %w", err)
		}
		if existing == nil {
			return serrors.With(serrors.ErrNotFound, "user %d not found", user.ID)
		}
		if existing.Kind != user.Kind {
			return serrors.With(serrors.ErrValidation,
				"user %d is %s and cannot become %s", user.ID, existing.Kind, user.Kind)
		}
		if existing.AddressID != user.AddressID {
			if err := addressExists(ctx, tx, user.AddressID); err != nil {
				return err
			}
		}

		found, err := tx.UpdateUser(ctx, user)
		if err != nil {
			return duplicateEmail(err, user.Email)
		}
		if !found {
			return serrors.With(serrors.ErrNotFound, "user %d not found", user.ID)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("could not update user: %w", err)
	}
	logger.Info(ctx, "user updated", logger.UserID(user.ID))

	return &user, nil
}

// duplicateEmail turns a unique key violation into a readable validation error.
func duplicateEmail(err error, email string) error {
	if errors.Is(err, storage.ErrDuplicateKey) {
		return serrors.Wrap(serrors.ErrValidation, err, "email %q is already registered", email)
	}

	return fmt.Errorf("could not store user: %w", err)
}

func addressExists(ctx context.Context, tx storage.AddressStorage, ID domain.AddressID) error {
	address, err := tx.AddressByID(ctx, ID)
	if err != nil {
		return fmt.Errorf("could not get address: %w", err)
	}
	if address == nil {
		return serrors.With(serrors.ErrNotFound, "address %d not found", ID)
	}

	return nil
}

func (p Profile) user(kind domain.UserKind) domain.User {
	return domain.User{
		Kind:         kind,
		Email:        p.Email,
		Name:         p.Name,
		MealsPerWeek: p.MealsPerWeek,
		AddressID:    p.AddressID,
	}
}

func New(storage storage.Storage) Service {
	return &service{
		storage: storage,
	}
}
