package domain

import (
	"hellofood/pkg/serrors"

	"github.com/shopspring/decimal"
)

// MealID identifies a catalog meal.
type MealID int64

// Meal is a catalog entry. Its price is the authoritative source used when
// pricing deliveries.
type Meal struct {
	ID      MealID          `json:"id"`
	Cuisine string          `json:"cuisine"`
	Recipe  string          `json:"recipe"`
	Price   decimal.Decimal `json:"price"`
}

// ValidatePrice rejects negative prices. Free meals are allowed.
func ValidatePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return serrors.With(serrors.ErrValidation, "price %s must not be negative", price.String())
	}

	return nil
}

// Validate checks the meal fields that carry business rules.
func (m Meal) Validate() error {
	return ValidatePrice(m.Price)
}
