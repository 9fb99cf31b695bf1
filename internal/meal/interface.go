package meal

import (
	"context"
	"hellofood/pkg/domain"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -package mockmeal -source=interface.go -destination=mock/mockmeal.go *
type Service interface {
	Get(ctx context.Context, ID domain.MealID) (*domain.Meal, error)
	GetMany(ctx context.Context, IDs []domain.MealID) ([]domain.Meal, error)
	Create(ctx context.Context, cuisine, recipe string, price decimal.Decimal) (*domain.Meal, error)
	ListByCuisine(ctx context.Context, cuisine string) ([]domain.Meal, error)
}
