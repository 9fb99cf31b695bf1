package domain

import (
	"hellofood/pkg/serrors"
	"math"

	"github.com/shopspring/decimal"
)

// DeliveryID identifies a delivery.
type DeliveryID int64

// MealOrder is one line item of a delivery. It has no identity of its own and
// never outlives the delivery owning it.
type MealOrder struct {
	MealID   MealID `json:"meal_id"`
	Quantity int    `json:"quantity"`
}

// Delivery is the aggregate root grouping a customer's meal orders for a
// delivery slot. Total is computed once at creation from the catalog prices.
type Delivery struct {
	ID        DeliveryID `json:"id"`
	UserID    UserID     `json:"user_id"`
	AddressID AddressID  `json:"address_id"`
	// DeliveryTime is a Unix epoch (seconds).
	DeliveryTime int64           `json:"delivery_time"`
	Total        decimal.Decimal `json:"total"`
	MealOrders   []MealOrder     `json:"meal_orders"`
}

// MaxQuantity is the largest quantity a single line can carry.
const MaxQuantity = math.MaxInt32

// ValidateQuantity rejects non-positive and oversized quantities.
func ValidateQuantity(quantity int) error {
	if quantity <= 0 {
		return serrors.With(serrors.ErrValidation, "quantity must be greater than 0, got %d", quantity)
	}
	if quantity > MaxQuantity {
		return serrors.With(serrors.ErrValidation, "quantity must be at most %d, got %d", MaxQuantity, quantity)
	}

	return nil
}

// ValidateDeliveryTime requires a valid (non-negative) Unix epoch.
func ValidateDeliveryTime(deliveryTime int64) error {
	if deliveryTime < 0 {
		return serrors.With(serrors.ErrValidation, "delivery time must be a valid unix epoch, got %d", deliveryTime)
	}

	return nil
}

// TotalQuantity sums the quantities of all lines. The sum saturates at the
// int bounds instead of wrapping around, so huge lines never add up to a
// small quota.
func TotalQuantity(orders []MealOrder) int {
	total := 0
	for _, o := range orders {
		switch {
		case o.Quantity > 0 && total > math.MaxInt-o.Quantity:
			return math.MaxInt
		case o.Quantity < 0 && total < math.MinInt-o.Quantity:
			return math.MinInt
		}
		total += o.Quantity
	}

	return total
}

// DistinctMealIDs returns the meal ids referenced by orders, in first-seen order.
func DistinctMealIDs(orders []MealOrder) []MealID {
	seen := make(map[MealID]struct{}, len(orders))
	ids := make([]MealID, 0, len(orders))
	for _, o := range orders {
		if _, ok := seen[o.MealID]; ok {
			continue
		}
		seen[o.MealID] = struct{}{}
		ids = append(ids, o.MealID)
	}

	return ids
}

// ComputeTotal prices orders against meals. Every line contributes its own
// term, so a meal ordered on two lines is counted twice. A line referencing a
// meal missing from meals fails with ErrNotFound instead of being priced at zero.
func ComputeTotal(orders []MealOrder, meals []Meal) (decimal.Decimal, error) {
	prices := make(map[MealID]decimal.Decimal, len(meals))
	for _, m := range meals {
		prices[m.ID] = m.Price
	}

	total := decimal.Zero
	for _, o := range orders {
		price, ok := prices[o.MealID]
		if !ok {
			return decimal.Zero, serrors.With(serrors.ErrNotFound, "unknown meal_id %d", o.MealID)
		}
		total = total.Add(price.Mul(decimal.NewFromInt(int64(o.Quantity))))
	}

	return total, nil
}
