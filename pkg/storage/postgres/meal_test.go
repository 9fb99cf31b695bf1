package postgres_test

import (
	"hellofood/pkg/domain"
	"hellofood/pkg/serrors"
	"hellofood/pkg/storage"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_Meals(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := t.Context()

	t.Run("store and fetch keeps the exact price", func(t *testing.T) {
		t.Parallel()

		stored := mustStoreMeal(t, pgSQL, "thai", "8.90")
		require.True(t, decimal.RequireFromString("8.90").Equal(stored.Price))

		got, err := pgSQL.MealByID(ctx, stored.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		require.True(t, stored.Price.Equal(got.Price))
		require.Equal(t, "thai", got.Cuisine)
	})

	t.Run("high precision and large prices are not rounded", func(t *testing.T) {
		t.Parallel()

		for _, price := range []string{"3.14159265", "123456789012.99"} {
			stored := mustStoreMeal(t, pgSQL, "french", price)

			got, err := pgSQL.MealByID(ctx, stored.ID)
			require.NoError(t, err)
			require.True(t, decimal.RequireFromString(price).Equal(got.Price), price)
		}
	})

	t.Run("check violation is a validation error", func(t *testing.T) {
		t.Parallel()

		_, err := pgSQL.StoreMeal(ctx, domain.Meal{
			Cuisine: "thai",
			Recipe:  "refund",
			Price:   decimal.RequireFromString("-1"),
		})
		require.ErrorIs(t, err, storage.ErrInvalidValue)
		require.ErrorIs(t, err, serrors.ErrValidation)
		require.ErrorContains(t, err, "meals_price_check")
	})

	t.Run("missing meal", func(t *testing.T) {
		t.Parallel()

		got, err := pgSQL.MealByID(ctx, domain.MealID(987654))
		require.NoError(t, err)
		require.Nil(t, got)
	})

	t.Run("by ids omits unknown and collapses duplicates", func(t *testing.T) {
		t.Parallel()

		m1 := mustStoreMeal(t, pgSQL, "italian", "12.50")
		m2 := mustStoreMeal(t, pgSQL, "italian", "14.00")

		got, err := pgSQL.MealsByIDs(ctx, m2.ID, m1.ID, m1.ID, domain.MealID(987654))
		require.NoError(t, err)
		require.Len(t, got, 2)
		require.Equal(t, m1.ID, got[0].ID)
		require.Equal(t, m2.ID, got[1].ID)

		got, err = pgSQL.MealsByIDs(ctx)
		require.NoError(t, err)
		require.Empty(t, got)
	})

	t.Run("by cuisine", func(t *testing.T) {
		t.Parallel()

		m1 := mustStoreMeal(t, pgSQL, "greek", "11.00")
		m2 := mustStoreMeal(t, pgSQL, "greek", "9.00")

		got, err := pgSQL.MealsByCuisine(ctx, "greek")
		require.NoError(t, err)
		require.Len(t, got, 2)
		require.Equal(t, m1.ID, got[0].ID)
		require.Equal(t, m2.ID, got[1].ID)

		got, err = pgSQL.MealsByCuisine(ctx, "martian")
		require.NoError(t, err)
		require.Empty(t, got)
	})
}
