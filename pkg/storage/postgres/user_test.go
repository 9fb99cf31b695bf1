package postgres_test

import (
	"database/sql"
	"fmt"
	"hellofood/pkg/domain"
	"hellofood/pkg/serrors"
	"hellofood/pkg/storage"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_Users(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := t.Context()
	address := mustStoreAddress(t, pgSQL, 2000)

	t.Run("trial user round trip", func(t *testing.T) {
		t.Parallel()

		stored, err := pgSQL.StoreUser(ctx, domain.User{
			Kind:         domain.UserKindTrial,
			Email:        "trial@example.com",
			Name:         "Trial",
			MealsPerWeek: 5,
			AddressID:    address.ID,
			Trial: &domain.TrialTerms{
				EndDate:  123456,
				Discount: decimal.RequireFromString("0.25"),
			},
		})
		require.NoError(t, err)
		require.NotZero(t, stored.ID)

		got, err := pgSQL.UserByID(ctx, stored.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Equal(t, domain.UserKindTrial, got.Kind)
		require.Equal(t, int64(123456), got.Trial.EndDate)
		require.True(t, decimal.RequireFromString("0.25").Equal(got.Trial.Discount))

		byEmail, err := pgSQL.UserByEmail(ctx, "trial@example.com")
		require.NoError(t, err)
		require.Equal(t, got, byEmail)
	})

	t.Run("discount keeps every digit", func(t *testing.T) {
		t.Parallel()

		for i, discount := range []string{"0.9999999", "0.0000001"} {
			stored, err := pgSQL.StoreUser(ctx, domain.User{
				Kind:         domain.UserKindTrial,
				Email:        fmt.Sprintf("precise%d@example.com", i),
				MealsPerWeek: 1,
				AddressID:    address.ID,
				Trial:        &domain.TrialTerms{EndDate: 1, Discount: decimal.RequireFromString(discount)},
			})
			require.NoError(t, err, discount)

			got, err := pgSQL.UserByID(ctx, stored.ID)
			require.NoError(t, err)
			require.True(t, decimal.RequireFromString(discount).Equal(got.Trial.Discount), discount)
		}
	})

	t.Run("out of range meals per week is a validation error", func(t *testing.T) {
		t.Parallel()

		_, err := pgSQL.StoreUser(ctx, domain.User{
			Kind:         domain.UserKindStandard,
			Email:        "huge@example.com",
			MealsPerWeek: math.MaxInt32 + 1,
			AddressID:    address.ID,
		})
		require.ErrorIs(t, err, storage.ErrInvalidValue)
		require.ErrorIs(t, err, serrors.ErrValidation)
	})

	t.Run("standard user round trip", func(t *testing.T) {
		t.Parallel()

		stored := mustStoreStandardUser(t, pgSQL, "standard@example.com", address.ID)

		got, err := pgSQL.UserByID(ctx, stored.ID)
		require.NoError(t, err)
		require.Equal(t, stored, got)
		require.Nil(t, got.Trial)
	})

	t.Run("missing user", func(t *testing.T) {
		t.Parallel()

		got, err := pgSQL.UserByID(ctx, domain.UserID(987654))
		require.NoError(t, err)
		require.Nil(t, got)

		got, err = pgSQL.UserByEmail(ctx, "nobody@example.com")
		require.NoError(t, err)
		require.Nil(t, got)
	})

	t.Run("duplicate email", func(t *testing.T) {
		t.Parallel()

		mustStoreStandardUser(t, pgSQL, "dup@example.com", address.ID)

		_, err := pgSQL.StoreUser(ctx, domain.User{
			Kind:         domain.UserKindStandard,
			Email:        "dup@example.com",
			Name:         "Again",
			MealsPerWeek: 1,
			AddressID:    address.ID,
		})
		require.ErrorIs(t, err, storage.ErrDuplicateKey)
		require.ErrorIs(t, err, serrors.ErrValidation)
	})

	t.Run("user with both variant records resolves as trial", func(t *testing.T) {
		t.Parallel()

		stored, err := pgSQL.StoreUser(ctx, domain.User{
			Kind:         domain.UserKindTrial,
			Email:        "both@example.com",
			Name:         "Both",
			MealsPerWeek: 2,
			AddressID:    address.ID,
			Trial:        &domain.TrialTerms{EndDate: 1, Discount: decimal.RequireFromString("0.5")},
		})
		require.NoError(t, err)

		_, err = pgSQL.DB.(*sql.DB).ExecContext(ctx, `INSERT INTO standard_users(user_id) VALUES ($1)`, int64(stored.ID))
		require.NoError(t, err)

		got, err := pgSQL.UserByID(ctx, stored.ID)
		require.NoError(t, err)
		require.Equal(t, domain.UserKindTrial, got.Kind)
		require.NotNil(t, got.Trial)
		require.True(t, decimal.RequireFromString("0.5").Equal(got.Trial.Discount))
	})

	t.Run("update trial user", func(t *testing.T) {
		t.Parallel()

		other := mustStoreAddress(t, pgSQL, 4000)
		stored, err := pgSQL.StoreUser(ctx, domain.User{
			Kind:         domain.UserKindTrial,
			Email:        "update@example.com",
			Name:         "Before",
			MealsPerWeek: 2,
			AddressID:    address.ID,
			Trial:        &domain.TrialTerms{EndDate: 100, Discount: decimal.RequireFromString("0.1")},
		})
		require.NoError(t, err)

		stored.Name = "After"
		stored.AddressID = other.ID
		stored.Trial = &domain.TrialTerms{EndDate: 200, Discount: decimal.RequireFromString("0.2")}

		found, err := pgSQL.UpdateUser(ctx, *stored)
		require.NoError(t, err)
		require.True(t, found)

		got, err := pgSQL.UserByID(ctx, stored.ID)
		require.NoError(t, err)
		require.Equal(t, "After", got.Name)
		require.Equal(t, other.ID, got.AddressID)
		require.Equal(t, int64(200), got.Trial.EndDate)
		require.True(t, decimal.RequireFromString("0.2").Equal(got.Trial.Discount))

		// the previous address is kept
		old, err := pgSQL.AddressByID(ctx, address.ID)
		require.NoError(t, err)
		require.NotNil(t, old)
	})

	t.Run("update cannot change the kind", func(t *testing.T) {
		t.Parallel()

		stored := mustStoreStandardUser(t, pgSQL, "kind@example.com", address.ID)
		stored.Kind = domain.UserKindTrial
		stored.Trial = &domain.TrialTerms{EndDate: 1, Discount: decimal.RequireFromString("0.5")}

		found, err := pgSQL.UpdateUser(ctx, *stored)
		require.NoError(t, err)
		require.False(t, found)
	})
}
