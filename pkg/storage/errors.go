package storage

import (
	"errors"
	"hellofood/pkg/serrors"
)

// Common errors returned by storage implementations.
var (
	// ErrAlreadyInTx is returned when an operation requiring a non-transactional
	// context is attempted while already inside a transaction.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx is returned when a transaction-specific operation is attempted
	// while not currently inside a transaction.
	ErrNotInTx = errors.New("not in tx")
	// ErrMultipleRows is returned when a lookup expected to match at most one
	// row matched several. It carries the serrors.ErrMultiplicity kind.
	ErrMultipleRows = serrors.With(serrors.ErrMultiplicity, "more than one row matched")
	// ErrDuplicateKey is returned when a write violates a uniqueness
	// constraint, such as a second user with the same email.
	ErrDuplicateKey = serrors.With(serrors.ErrValidation, "already exists")
	// ErrMissingReference is returned when a write points at a record that
	// does not exist, such as a delivery to an unknown address.
	ErrMissingReference = serrors.With(serrors.ErrNotFound, "referenced record does not exist")
	// ErrInvalidValue is returned when the database itself rejects a value,
	// such as a number too large for its column or a failed CHECK constraint.
	ErrInvalidValue = serrors.With(serrors.ErrValidation, "value cannot be stored")
)
