// Package delivery owns the delivery aggregate: a delivery header and the
// meal orders it is made of. A delivery is only ever created whole.
package delivery

import (
	"context"
	"errors"
	"fmt"
	"hellofood/pkg/domain"
	"hellofood/pkg/logger"
	"hellofood/pkg/metrics"
	"hellofood/pkg/serrors"
	"hellofood/pkg/storage"
	"hellofood/pkg/validation"
)

type service struct {
	storage storage.Storage
	metrics *metrics.Metrics
}

// Create runs every check before the first write, in a fixed order so that a
// request violating several rules always reports the same one:
// user exists, quota, quantities, delivery time, meals exist.
func (s service) Create(ctx context.Context, params CreateParams) (*domain.Delivery, error) {
	user, err := s.storage.UserByID(ctx, params.UserID)
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrNotFound, "user %d not found", params.UserID)
	}

	if ordered := domain.TotalQuantity(params.MealOrders); ordered != user.MealsPerWeek {
		return nil, serrors.With(serrors.ErrValidation,
			"quota mismatch: user %d takes %d meals per week, %d ordered", user.ID, user.MealsPerWeek, ordered)
	}
	for i, order := range params.MealOrders {
		if err := domain.ValidateQuantity(order.Quantity); err != nil {
			return nil, fmt.Errorf("meal_orders[%d]: %w", i, err)
		}
	}
	if err := domain.ValidateDeliveryTime(params.DeliveryTime); err != nil {
		return nil, err
	}

	IDs := domain.DistinctMealIDs(params.MealOrders)
	meals, err := s.storage.MealsByIDs(ctx, IDs...)
	if err != nil {
		return nil, fmt.Errorf("could not get meals: %w", err)
	}
	if len(meals) != len(IDs) {
		return nil, unknownMeal(IDs, meals)
	}
	total, err := domain.ComputeTotal(params.MealOrders, meals)
	if err != nil {
		return nil, err
	}

	var stored *domain.Delivery
	err = s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		var err error
		stored, err = tx.StoreDelivery(ctx, domain.Delivery{
			UserID:       params.UserID,
			AddressID:    params.AddressID,
			DeliveryTime: params.DeliveryTime,
			Total:        total,
			MealOrders:   params.MealOrders,
		})

		return err
	})
	if errors.Is(err, storage.ErrMissingReference) {
		return nil, serrors.Wrap(serrors.ErrNotFound, err, "address %d not found", params.AddressID)
	}
	if err != nil {
		return nil, fmt.Errorf("could not store delivery: %w", err)
	}

	s.metrics.DeliveryCreated(ctx, stored.Total)
	logger.Info(ctx, "delivery created",
		logger.DeliveryID(stored.ID),
		logger.UserID(stored.UserID),
		logger.AddressID(stored.AddressID),
	)

	return stored, nil
}

func (s service) CreateFromInput(ctx context.Context, input Input) (*domain.Delivery, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	params := CreateParams{
		UserID:       domain.UserID(*input.UserID),
		AddressID:    domain.AddressID(*input.AddressID),
		DeliveryTime: *input.DeliveryTime,
		MealOrders:   make([]domain.MealOrder, len(input.MealOrders)),
	}
	for i, order := range input.MealOrders {
		params.MealOrders[i] = domain.MealOrder{
			MealID:   domain.MealID(*order.MealID),
			Quantity: *order.Quantity,
		}
	}

	return s.Create(ctx, params)
}

func (s service) Get(ctx context.Context, ID domain.DeliveryID) (*domain.Delivery, error) {
	var delivery *domain.Delivery
	err := s.storage.WithSnapshot(ctx, func(tx storage.AllStorage) error {
		var err error
		delivery, err = tx.DeliveryByID(ctx, ID)

		return err
	})
	if err != nil {
		return nil, fmt.Errorf("could not get delivery: %w", err)
	}
	if delivery == nil {
		return nil, serrors.With(serrors.ErrNotFound, "delivery %d not found", ID)
	}

	return delivery, nil
}

// UpdateAddress reassigns the delivery. Concurrent reassignments are not
// ordered; the last one to commit wins.
func (s service) UpdateAddress(ctx context.Context, ID domain.DeliveryID, addressID domain.AddressID) error {
	err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		address, err := tx.AddressByID(ctx, addressID)
		if err != nil {
			return fmt.Errorf("could not get address: %w", err)
		}
		if address == nil {
			return serrors.With(serrors.ErrNotFound, "address %d not found", addressID)
		}

		found, err := tx.UpdateDeliveryAddress(ctx, ID, addressID)
		if errors.Is(err, storage.ErrMissingReference) {
			return serrors.Wrap(serrors.ErrNotFound, err, "address %d not found", addressID)
		}
		if err != nil {
			return fmt.Errorf("could not store delivery address: %w", err)
		}
		if !found {
			return serrors.With(serrors.ErrNotFound, "delivery %d not found", ID)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("could not update delivery address: %w", err)
	}
	logger.Info(ctx, "delivery address updated", logger.DeliveryID(ID), logger.AddressID(addressID))

	return nil
}

func (s service) ListByUser(ctx context.Context, userID domain.UserID) ([]domain.Delivery, error) {
	var deliveries []domain.Delivery
	err := s.storage.WithSnapshot(ctx, func(tx storage.AllStorage) error {
		user, err := tx.UserByID(ctx, userID)
		if err != nil {
			return fmt.Errorf("could not get user: %w", err)
		}
		if user == nil {
			return serrors.With(serrors.ErrNotFound, "user %d not found", userID)
		}

		deliveries, err = tx.DeliveriesByUser(ctx, userID)

		return err
	})
	if err != nil {
		return nil, fmt.Errorf("could not list deliveries: %w", err)
	}

	return deliveries, nil
}

// unknownMeal reports the first requested id storage did not return.
func unknownMeal(requested []domain.MealID, found []domain.Meal) error {
	known := make(map[domain.MealID]struct{}, len(found))
	for _, m := range found {
		known[m.ID] = struct{}{}
	}
	for _, id := range requested {
		if _, ok := known[id]; !ok {
			return serrors.With(serrors.ErrNotFound, "unknown meal_id %d", id)
		}
	}

	return serrors.With(serrors.ErrNotFound, "unknown meal_id")
}

func New(storage storage.Storage, metrics *metrics.Metrics) Service {
	return &service{
		storage: storage,
		metrics: metrics,
	}
}
