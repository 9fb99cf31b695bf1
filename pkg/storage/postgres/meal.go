package postgres

import (
	"context"
	"fmt"
	"hellofood/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const (
	mealsTable = "meals"
)

func (p *PgSQL) StoreMeal(ctx context.Context, meal domain.Meal) (*domain.Meal, error) {
	var row PgMeal
	row.FromDomain(meal)

	var result PgMeal
	if _, err := p.Builder.Insert(mealsTable).
		Rows(row).
		Returning(&PgMeal{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		if isInvalidValue(err) {
			return nil, invalidValue(err)
		}

		return nil, fmt.Errorf("could not store meal into pg: %w", err)
	}

	return result.ToDomain(), nil
}

func (p *PgSQL) MealByID(ctx context.Context, ID domain.MealID) (*domain.Meal, error) {
	var row PgMeal
	found, err := p.Builder.From(mealsTable).
		Where(goqu.I("id").Eq(int64(ID))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch meal by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// MealsByIDs fetches all requested meals with a single query.
func (p *PgSQL) MealsByIDs(ctx context.Context, IDs ...domain.MealID) ([]domain.Meal, error) {
	if len(IDs) == 0 {
		return nil, nil
	}

	ids := make([]int64, len(IDs))
	for i, id := range IDs {
		ids[i] = int64(id)
	}

	var rows []PgMeal
	if err := p.Builder.From(mealsTable).
		Where(goqu.I("id").In(ids)).
		Order(goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch meals by ids: %w", err)
	}

	return pgMealsToDomain(rows), nil
}

func (p *PgSQL) MealsByCuisine(ctx context.Context, cuisine string) ([]domain.Meal, error) {
	var rows []PgMeal
	if err := p.Builder.From(mealsTable).
		Where(goqu.I("cuisine").Eq(cuisine)).
		Order(goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch meals by cuisine: %w", err)
	}

	return pgMealsToDomain(rows), nil
}
