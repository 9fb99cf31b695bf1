package domain

import "hellofood/pkg/serrors"

// HandlingEventID identifies a handling event.
type HandlingEventID int64

// HandlingEvent is a checkpoint in the physical life of a delivery, such as
// leaving the kitchen or reaching the customer. Events are append-only.
type HandlingEvent struct {
	ID            HandlingEventID `json:"id"`
	DeliveryID    DeliveryID      `json:"delivery_id"`
	ToAddressID   AddressID       `json:"to_address_id"`
	FromAddressID AddressID       `json:"from_address_id"`
	// CompletionTime is a Unix epoch (seconds).
	CompletionTime int64 `json:"completion_time"`
}

// ValidateCompletionTime requires a valid (non-negative) Unix epoch.
func ValidateCompletionTime(completionTime int64) error {
	if completionTime < 0 {
		return serrors.With(serrors.ErrValidation,
			"completion time must be a valid unix epoch, got %d", completionTime)
	}

	return nil
}
