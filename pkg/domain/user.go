package domain

import (
	"math"
	"regexp"
	"time"

	"hellofood/pkg/serrors"

	"github.com/shopspring/decimal"
)

// UserID identifies a customer account.
type UserID int64

// UserKind is the discriminant stored alongside the shared user fields. It
// decides which variant specific fields belong to the user.
type UserKind string

const (
	// UserKindTrial marks a customer on a discounted trial.
	UserKindTrial UserKind = "TRIAL"
	// UserKindStandard marks a regular paying customer.
	UserKindStandard UserKind = "STANDARD"
)

var emailPattern = regexp.MustCompile(`^[\w.+-]+@[\w.-]+\.[a-zA-Z]{2,}$`) //nolint: gochecknoglobals

// TrialTerms holds the fields only trial users have.
type TrialTerms struct {
	// EndDate is the Unix epoch (seconds) at which the trial ends.
	EndDate int64 `json:"trial_end_date"`
	// Discount is a fraction in the open interval (0, 1).
	Discount decimal.Decimal `json:"discount_value"`
}

// User is a customer. It is a tagged variant: Kind selects the variant and
// Trial is set if and only if Kind is UserKindTrial.
type User struct {
	ID           UserID    `json:"id"`
	Kind         UserKind  `json:"kind"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	MealsPerWeek int       `json:"meals_per_week"`
	AddressID    AddressID `json:"address_id"`

	Trial *TrialTerms `json:"trial,omitempty"`
}

// IsLockedFromDuePayment reports whether the customer must pay before ordering.
// A trial user is locked once the trial end date has been reached; standard
// users are never locked.
func (u User) IsLockedFromDuePayment(now time.Time) bool {
	switch u.Kind {
	case UserKindTrial:
		return u.Trial != nil && now.Unix() >= u.Trial.EndDate
	case UserKindStandard:
		return false
	default:
		return false
	}
}

// DiscountAsDecimal returns the discount fraction applied to the customer's
// orders; zero for standard users.
func (u User) DiscountAsDecimal() decimal.Decimal {
	if u.Kind == UserKindTrial && u.Trial != nil {
		return u.Trial.Discount
	}

	return decimal.Zero
}

// ValidateEmail checks the email shape.
func ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return serrors.With(serrors.ErrValidation, "email %q is not valid", email)
	}

	return nil
}

// MaxMealsPerWeek bounds the weekly quota to what the users table can hold.
const MaxMealsPerWeek = math.MaxInt32

// ValidateMealsPerWeek rejects non-positive and oversized weekly quotas.
func ValidateMealsPerWeek(mealsPerWeek int) error {
	if mealsPerWeek <= 0 {
		return serrors.With(serrors.ErrValidation, "meals per week must be greater than 0, got %d", mealsPerWeek)
	}
	if mealsPerWeek > MaxMealsPerWeek {
		return serrors.With(serrors.ErrValidation,
			"meals per week must be at most %d, got %d", MaxMealsPerWeek, mealsPerWeek)
	}

	return nil
}

// ValidateTrialEndDate requires a positive Unix epoch.
func ValidateTrialEndDate(endDate int64) error {
	if endDate <= 0 {
		return serrors.With(serrors.ErrValidation, "trial end date must be a positive unix epoch, got %d", endDate)
	}

	return nil
}

// ValidateDiscount requires a fraction strictly between 0 and 1.
func ValidateDiscount(discount decimal.Decimal) error {
	if !discount.IsPositive() || discount.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return serrors.With(serrors.ErrValidation,
			"discount must be a decimal value between 0 and 1, got %s", discount.String())
	}

	return nil
}

// Validate checks the shared fields and, for trial users, the trial terms.
func (u User) Validate() error {
	if err := ValidateEmail(u.Email); err != nil {
		return err
	}
	if err := ValidateMealsPerWeek(u.MealsPerWeek); err != nil {
		return err
	}

	switch u.Kind {
	case UserKindTrial:
		if u.Trial == nil {
			return serrors.With(serrors.ErrValidation, "trial user is missing trial terms")
		}
		if err := ValidateTrialEndDate(u.Trial.EndDate); err != nil {
			return err
		}

		return ValidateDiscount(u.Trial.Discount)
	case UserKindStandard:
		if u.Trial != nil {
			return serrors.With(serrors.ErrValidation, "standard user cannot have trial terms")
		}

		return nil
	default:
		return serrors.With(serrors.ErrValidation, "unknown user kind %q", u.Kind)
	}
}
