package storage

import (
	"context"
	"hellofood/pkg/domain"
)

// UserStorage persists customers. The shared fields and the discriminant live
// in one record and every variant keeps its own fields in a sub-record keyed
// by the same ID. Implementations write both records atomically.
type UserStorage interface {
	// StoreUser inserts the user and its variant record and returns the stored user.
	StoreUser(ctx context.Context, user domain.User) (*domain.User, error)
	// UserByID returns the user or nil when it does not exist.
	UserByID(ctx context.Context, ID domain.UserID) (*domain.User, error)
	// UserByEmail returns the user or nil when it does not exist.
	UserByEmail(ctx context.Context, email string) (*domain.User, error)
	// UpdateUser overwrites the shared fields and the variant fields of the
	// user identified by user.ID. The discriminant itself cannot change. It
	// reports false when no user of that kind exists.
	UpdateUser(ctx context.Context, user domain.User) (bool, error)
}
