// Package meal manages the catalog of meals that deliveries are priced from.
package meal

import (
	"context"
	"fmt"
	"hellofood/pkg/domain"
	"hellofood/pkg/logger"
	"hellofood/pkg/serrors"
	"hellofood/pkg/storage"

	"github.com/shopspring/decimal"
)

type service struct {
	storage storage.Storage
}

// Get returns a meal or a not-found error.
func (s service) Get(ctx context.Context, ID domain.MealID) (*domain.Meal, error) {
	meal, err := s.storage.MealByID(ctx, ID)
	if err != nil {
		return nil, fmt.Errorf("could not get meal: %w", err)
	}
	if meal == nil {
		return nil, serrors.With(serrors.ErrNotFound, "meal %d not found", ID)
	}

	return meal, nil
}

// GetMany resolves a batch of IDs with one query. Unknown IDs are left out of
// the result and repeated IDs are returned once; callers compare the result
// against what they asked for.
func (s service) GetMany(ctx context.Context, IDs []domain.MealID) ([]domain.Meal, error) {
	if len(IDs) == 0 {
		return nil, nil
	}

	meals, err := s.storage.MealsByIDs(ctx, distinct(IDs)...)
	if err != nil {
		return nil, fmt.Errorf("could not get meals: %w", err)
	}

	return meals, nil
}

func (s service) Create(ctx context.Context, cuisine, recipe string, price decimal.Decimal) (*domain.Meal, error) {
	meal := domain.Meal{
		Cuisine: cuisine,
		Recipe:  recipe,
		Price:   price,
	}
	if err := meal.Validate(); err != nil {
		return nil, err
	}

	stored, err := s.storage.StoreMeal(ctx, meal)
	if err != nil {
		return nil, fmt.Errorf("could not create meal: %w", err)
	}
	logger.Info(ctx, "meal created", logger.MealID(stored.ID))

	return stored, nil
}

func (s service) ListByCuisine(ctx context.Context, cuisine string) ([]domain.Meal, error) {
	meals, err := s.storage.MealsByCuisine(ctx, cuisine)
	if err != nil {
		return nil, fmt.Errorf("could not list meals by cuisine: %w", err)
	}

	return meals, nil
}

func distinct(IDs []domain.MealID) []domain.MealID {
	seen := make(map[domain.MealID]struct{}, len(IDs))
	out := make([]domain.MealID, 0, len(IDs))
	for _, id := range IDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}

func New(storage storage.Storage) Service {
	return &service{
		storage: storage,
	}
}
