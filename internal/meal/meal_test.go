package meal_test

import (
	"context"
	"errors"
	"hellofood/internal/meal"
	"hellofood/pkg/domain"
	"hellofood/pkg/serrors"
	mockstorage "hellofood/pkg/storage/mock"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (*mockstorage.MockStorage, meal.Service) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)

	return st, meal.New(st)
}

func TestService_Get(t *testing.T) {
	st, s := newTestService(t)
	ctx := context.Background()

	thai := &domain.Meal{ID: 1, Cuisine: "thai", Recipe: "pad thai", Price: decimal.RequireFromString("8.90")}
	st.EXPECT().MealByID(gomock.Any(), domain.MealID(1)).Return(thai, nil)
	st.EXPECT().MealByID(gomock.Any(), domain.MealID(2)).Return(nil, nil)
	st.EXPECT().MealByID(gomock.Any(), domain.MealID(3)).Return(nil, errors.New("db down"))

	got, err := s.Get(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, thai, got)

	_, err = s.Get(ctx, 2)
	require.ErrorIs(t, err, serrors.ErrNotFound)

	_, err = s.Get(ctx, 3)
	require.Error(t, err)
	require.Nil(t, serrors.KindOf(err))
}

func TestService_GetMany(t *testing.T) {
	st, s := newTestService(t)
	ctx := context.Background()

	meals := []domain.Meal{{ID: 1}, {ID: 3}}
	st.EXPECT().MealsByIDs(gomock.Any(), domain.MealID(3), domain.MealID(1), domain.MealID(9)).Return(meals, nil)

	got, err := s.GetMany(ctx, []domain.MealID{3, 1, 3, 9, 1})
	require.NoError(t, err)
	require.Equal(t, meals, got)

	// no storage round trip for an empty batch
	got, err = s.GetMany(ctx, nil)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestService_Create(t *testing.T) {
	st, s := newTestService(t)
	ctx := context.Background()

	t.Run("stores valid meal", func(t *testing.T) {
		st.EXPECT().StoreMeal(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, m domain.Meal) (*domain.Meal, error) {
				require.Equal(t, "thai", m.Cuisine)
				m.ID = 10

				return &m, nil
			})

		got, err := s.Create(ctx, "thai", "green curry", decimal.RequireFromString("12.00"))
		require.NoError(t, err)
		require.Equal(t, domain.MealID(10), got.ID)
	})

	t.Run("zero price is allowed", func(t *testing.T) {
		st.EXPECT().StoreMeal(gomock.Any(), gomock.Any()).Return(&domain.Meal{ID: 11}, nil)

		_, err := s.Create(ctx, "thai", "water", decimal.Zero)
		require.NoError(t, err)
	})

	t.Run("negative price never reaches storage", func(t *testing.T) {
		_, err := s.Create(ctx, "thai", "refund", decimal.RequireFromString("-0.01"))
		require.ErrorIs(t, err, serrors.ErrValidation)
	})
}

func TestService_ListByCuisine(t *testing.T) {
	st, s := newTestService(t)

	meals := []domain.Meal{{ID: 1, Cuisine: "greek"}, {ID: 2, Cuisine: "greek"}}
	st.EXPECT().MealsByCuisine(gomock.Any(), "greek").Return(meals, nil)

	got, err := s.ListByCuisine(context.Background(), "greek")
	require.NoError(t, err)
	require.Equal(t, meals, got)
}
