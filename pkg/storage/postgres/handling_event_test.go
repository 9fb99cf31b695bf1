package postgres_test

import (
	"hellofood/pkg/domain"
	"hellofood/pkg/storage"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_HandlingEvents(t *testing.T) {
	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := t.Context()
	from := mustStoreAddress(t, pgSQL, 2000)
	to := mustStoreAddress(t, pgSQL, 2001)
	user := mustStoreStandardUser(t, pgSQL, "events@example.com", to.ID)
	meal := mustStoreMeal(t, pgSQL, "thai", "10.00")
	delivery, err := pgSQL.StoreDelivery(ctx, domain.Delivery{
		UserID:       user.ID,
		AddressID:    to.ID,
		DeliveryTime: 10,
		Total:        decimal.RequireFromString("30"),
		MealOrders:   []domain.MealOrder{{MealID: meal.ID, Quantity: 3}},
	})
	require.NoError(t, err)

	count, err := pgSQL.HandlingEventCountByDelivery(ctx, delivery.ID)
	require.NoError(t, err)
	require.Zero(t, count)

	first, err := pgSQL.StoreHandlingEvent(ctx, domain.HandlingEvent{
		DeliveryID:     delivery.ID,
		ToAddressID:    to.ID,
		FromAddressID:  from.ID,
		CompletionTime: 100,
	})
	require.NoError(t, err)
	require.NotZero(t, first.ID)

	second, err := pgSQL.StoreHandlingEvent(ctx, domain.HandlingEvent{
		DeliveryID:     delivery.ID,
		ToAddressID:    from.ID,
		FromAddressID:  to.ID,
		CompletionTime: 200,
	})
	require.NoError(t, err)

	got, err := pgSQL.HandlingEventByID(ctx, first.ID)
	require.NoError(t, err)
	require.Equal(t, first, got)

	missing, err := pgSQL.HandlingEventByID(ctx, domain.HandlingEventID(987654))
	require.NoError(t, err)
	require.Nil(t, missing)

	events, err := pgSQL.HandlingEventsByDelivery(ctx, delivery.ID)
	require.NoError(t, err)
	require.Equal(t, []domain.HandlingEvent{*first, *second}, events)

	count, err = pgSQL.HandlingEventCountByDelivery(ctx, delivery.ID)
	require.NoError(t, err)
	require.Equal(t, int64(2), count)

	// unknown delivery violates the foreign key
	_, err = pgSQL.StoreHandlingEvent(ctx, domain.HandlingEvent{
		DeliveryID:    domain.DeliveryID(987654),
		ToAddressID:   to.ID,
		FromAddressID: from.ID,
	})
	require.ErrorIs(t, err, storage.ErrMissingReference)
}
