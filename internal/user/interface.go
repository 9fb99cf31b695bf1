package user

import (
	"context"
	"hellofood/pkg/domain"

	"github.com/shopspring/decimal"
)

// Profile carries the fields shared by every kind of user. Exactly one of
// AddressID and Address must be set; a given Address is created together
// with the user.
type Profile struct {
	Email        string
	Name         string
	MealsPerWeek int
	AddressID    domain.AddressID
	Address      *domain.Address
}

type TrialParams struct {
	Profile
	TrialEndDate int64
	Discount     decimal.Decimal
}

type StandardParams struct {
	Profile
}

//go:generate mockgen -package mockuser -source=interface.go -destination=mock/mockuser.go *
type Service interface {
	CreateTrial(ctx context.Context, params TrialParams) (*domain.User, error)
	CreateStandard(ctx context.Context, params StandardParams) (*domain.User, error)
	Get(ctx context.Context, ID domain.UserID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	// Update replaces the user's fields. The kind of a user cannot change.
	Update(ctx context.Context, u domain.User) (*domain.User, error)
}
