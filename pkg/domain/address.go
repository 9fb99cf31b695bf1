package domain

import "hellofood/pkg/serrors"

// AddressID identifies a postal address. It is the surrogate key assigned by storage.
type AddressID int64

const (
	// MinPostcode is the lowest accepted postcode.
	MinPostcode = 1
	// MaxPostcode is the highest accepted postcode.
	MaxPostcode = 9999
)

// Address is a postal address referenced by users, deliveries and handling events.
// Owners only keep its identifier; an address may be shared between several owners.
type Address struct {
	ID AddressID `json:"id"`
	// Unit is optional (e.g. "Unit 18").
	Unit       string `json:"unit,omitempty"`
	StreetName string `json:"street_name"`
	Suburb     string `json:"suburb"`
	Postcode   int    `json:"postcode"`
}

// ValidatePostcode reports a validation error when postcode is outside [MinPostcode, MaxPostcode].
func ValidatePostcode(postcode int) error {
	if postcode < MinPostcode || postcode > MaxPostcode {
		return serrors.With(serrors.ErrValidation,
			"postcode %d must be between %d and %d", postcode, MinPostcode, MaxPostcode)
	}

	return nil
}

// Validate checks the address fields that carry business rules.
func (a Address) Validate() error {
	return ValidatePostcode(a.Postcode)
}
