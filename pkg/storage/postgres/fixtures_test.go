package postgres_test

import (
	"hellofood/pkg/domain"
	"hellofood/pkg/storage/postgres"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func mustStoreAddress(t *testing.T, pg *postgres.PgSQL, postcode int) *domain.Address {
	t.Helper()

	address, err := pg.StoreAddress(t.Context(), domain.Address{
		Unit:       "4",
		StreetName: "George St",
		Suburb:     "Sydney",
		Postcode:   postcode,
	})
	require.NoError(t, err)

	return address
}

func mustStoreMeal(t *testing.T, pg *postgres.PgSQL, cuisine, price string) *domain.Meal {
	t.Helper()

	meal, err := pg.StoreMeal(t.Context(), domain.Meal{
		Cuisine: cuisine,
		Recipe:  "recipe of " + cuisine,
		Price:   decimal.RequireFromString(price),
	})
	require.NoError(t, err)

	return meal
}

func mustStoreStandardUser(t *testing.T, pg *postgres.PgSQL, email string, addressID domain.AddressID) *domain.User {
	t.Helper()

	user, err := pg.StoreUser(t.Context(), domain.User{
		Kind:         domain.UserKindStandard,
		Email:        email,
		Name:         "Standard",
		MealsPerWeek: 3,
		AddressID:    addressID,
	})
	require.NoError(t, err)

	return user
}
