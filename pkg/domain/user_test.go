package domain_test

import (
	"hellofood/pkg/domain"
	"hellofood/pkg/serrors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestValidateEmail(t *testing.T) {
	for _, email := range []string{"h@example.com", "mike@example.com", "first.last+tag@mail.example.org"} {
		require.NoError(t, domain.ValidateEmail(email), email)
	}
	for _, email := range []string{"@example.com", "mike@example.c", "mike", "mike@example", ""} {
		require.ErrorIs(t, domain.ValidateEmail(email), serrors.ErrValidation, email)
	}
}

func TestValidateMealsPerWeek(t *testing.T) {
	for _, n := range []int{1, 10_000, domain.MaxMealsPerWeek} {
		require.NoError(t, domain.ValidateMealsPerWeek(n))
	}
	for _, n := range []int{-20, -1, 0, domain.MaxMealsPerWeek + 1} {
		require.ErrorIs(t, domain.ValidateMealsPerWeek(n), serrors.ErrValidation)
	}
}

func TestValidateTrialEndDate(t *testing.T) {
	require.NoError(t, domain.ValidateTrialEndDate(1))
	require.NoError(t, domain.ValidateTrialEndDate(123456))
	require.ErrorIs(t, domain.ValidateTrialEndDate(0), serrors.ErrValidation)
	require.ErrorIs(t, domain.ValidateTrialEndDate(-1), serrors.ErrValidation)
}

func TestValidateDiscount(t *testing.T) {
	for _, d := range []string{"0.0000001", "0.000001", "0.2", "0.5", "0.99", "0.9999999"} {
		require.NoError(t, domain.ValidateDiscount(decimal.RequireFromString(d)), d)
	}
	for _, d := range []string{"-1", "-0.0001", "0", "1", "1.0", "1.01", "2"} {
		require.ErrorIs(t, domain.ValidateDiscount(decimal.RequireFromString(d)), serrors.ErrValidation, d)
	}
}

func trialUser(endDate int64, discount string) domain.User {
	return domain.User{
		Kind:         domain.UserKindTrial,
		Email:        "mike@example.com",
		Name:         "Mike",
		MealsPerWeek: 2,
		Trial: &domain.TrialTerms{
			EndDate:  endDate,
			Discount: decimal.RequireFromString(discount),
		},
	}
}

func TestUser_IsLockedFromDuePayment(t *testing.T) {
	u := trialUser(123456, "0.2")

	require.False(t, u.IsLockedFromDuePayment(time.Unix(123455, 0)))
	require.True(t, u.IsLockedFromDuePayment(time.Unix(123456, 0)))
	require.True(t, u.IsLockedFromDuePayment(time.Unix(123457, 0)))

	standard := domain.User{Kind: domain.UserKindStandard}
	require.False(t, standard.IsLockedFromDuePayment(time.Unix(0, 0)))
	require.False(t, standard.IsLockedFromDuePayment(time.Now()))
}

func TestUser_DiscountAsDecimal(t *testing.T) {
	u := trialUser(123456, "0.2")
	require.True(t, decimal.RequireFromString("0.2").Equal(u.DiscountAsDecimal()))

	standard := domain.User{Kind: domain.UserKindStandard}
	require.True(t, standard.DiscountAsDecimal().IsZero())
}

func TestUser_Validate(t *testing.T) {
	require.NoError(t, trialUser(123456, "0.2").Validate())

	bad := trialUser(0, "0.2")
	require.ErrorIs(t, bad.Validate(), serrors.ErrValidation)

	bad = trialUser(123456, "1")
	require.ErrorIs(t, bad.Validate(), serrors.ErrValidation)

	missingTerms := domain.User{Kind: domain.UserKindTrial, Email: "a@example.com", MealsPerWeek: 1}
	require.ErrorIs(t, missingTerms.Validate(), serrors.ErrValidation)

	standard := domain.User{Kind: domain.UserKindStandard, Email: "a@example.com", MealsPerWeek: 1}
	require.NoError(t, standard.Validate())

	standard.Trial = &domain.TrialTerms{EndDate: 1, Discount: decimal.RequireFromString("0.1")}
	require.ErrorIs(t, standard.Validate(), serrors.ErrValidation)

	unknown := domain.User{Kind: "GOLD", Email: "a@example.com", MealsPerWeek: 1}
	require.ErrorIs(t, unknown.Validate(), serrors.ErrValidation)
}
