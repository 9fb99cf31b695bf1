// Package storage defines the persistence interfaces the order management
// services rely on. It abstracts entity persistence and transaction management
// so that different backends (e.g. PostgreSQL) can provide concrete
// implementations.
//
// Lookups by identifier return (nil, nil) when nothing matches; services turn
// that into a not-found error. A lookup that matches more than one row returns
// ErrMultipleRows.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import "context"

// AllStorage is a composite interface that includes all entity storage
// capabilities required by the application.
type AllStorage interface {
	AddressStorage
	MealStorage
	UserStorage
	DeliveryStorage
	HandlingEventStorage
	JobStorage
}

// TxStorage describes a storage handle that operates within a database
// transaction. It exposes the same capabilities as AllStorage, and
// additionally allows committing or rolling back the ongoing transaction.
// Implementations should become unusable after Commit or Rollback is called.
type TxStorage interface {
	AllStorage

	// Commit finalizes the transaction, persisting all changes.
	Commit() error
	// Rollback aborts the transaction, discarding all uncommitted changes.
	Rollback() error
}

// Storage describes a non-transactional storage handle with the ability to
// start transactions. It is created once at process start, shared by every
// service and closed at shutdown.
type Storage interface {
	AllStorage

	// Close releases any resources held by the storage implementation (e.g. the
	// underlying connection pool). After Close, the instance should not be used.
	Close() error

	// Begin starts a new transaction and returns a TxStorage that can be used to
	// perform further operations within that transaction.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx begins a transaction, invokes the provided callback with a
	// transactional handle, and then commits on success or rolls back if the
	// callback returns an error.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
	// WithSnapshot runs cb inside a read-only transaction whose reads all
	// observe the same committed state. Writes issued through the handle fail.
	WithSnapshot(ctx context.Context, cb func(storage AllStorage) error) error
}
