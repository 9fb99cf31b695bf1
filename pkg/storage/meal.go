package storage

import (
	"context"
	"hellofood/pkg/domain"
)

// MealStorage persists the meal catalog.
type MealStorage interface {
	// StoreMeal inserts a meal and returns it as stored, including its ID and
	// the price as rounded by the database.
	StoreMeal(ctx context.Context, meal domain.Meal) (*domain.Meal, error)
	// MealByID returns the meal or nil when it does not exist.
	MealByID(ctx context.Context, ID domain.MealID) (*domain.Meal, error)
	// MealsByIDs returns the meals matching IDs ordered by ID. Unknown IDs are
	// silently omitted and duplicates are collapsed.
	MealsByIDs(ctx context.Context, IDs ...domain.MealID) ([]domain.Meal, error)
	// MealsByCuisine returns all meals of a cuisine ordered by ID.
	MealsByCuisine(ctx context.Context, cuisine string) ([]domain.Meal, error)
}
