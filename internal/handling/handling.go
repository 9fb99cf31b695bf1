// Package handling records the handling events of deliveries and tells
// customers when their order is dispatched and when it is about to arrive.
package handling

import (
	"context"
	"errors"
	"fmt"
	"hellofood/pkg/domain"
	"hellofood/pkg/logger"
	"hellofood/pkg/metrics"
	"hellofood/pkg/notifier"
	"hellofood/pkg/serrors"
	"hellofood/pkg/storage"

	"go.uber.org/zap"
)

type service struct {
	storage  storage.Storage
	notifier notifier.Notifier
	metrics  *metrics.Metrics
}

func (s service) Create(ctx context.Context, params CreateParams) (*domain.HandlingEvent, error) {
	if err := domain.ValidateCompletionTime(params.CompletionTime); err != nil {
		return nil, err
	}

	var (
		event    *domain.HandlingEvent
		delivery *domain.Delivery
		owner    *domain.User
		count    int64
	)
	err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		var err error
		// the lock serializes concurrent events of one delivery, so exactly
		// one of them counts as the first
		delivery, err = tx.LockDeliveryByID(ctx, params.DeliveryID)
		if err != nil {
			return fmt.Errorf("could not get delivery: %w", err)
		}
		if delivery == nil {
			return serrors.With(serrors.ErrNotFound, "delivery %d not found", params.DeliveryID)
		}

		event, err = tx.StoreHandlingEvent(ctx, domain.HandlingEvent{
			DeliveryID:     params.DeliveryID,
			ToAddressID:    params.ToAddressID,
			FromAddressID:  params.FromAddressID,
			CompletionTime: params.CompletionTime,
		})
		if errors.Is(err, storage.ErrMissingReference) {
			return serrors.Wrap(serrors.ErrNotFound, err,
				"address %d or %d not found", params.ToAddressID, params.FromAddressID)
		}
		if err != nil {
			return fmt.Errorf("could not store handling event: %w", err)
		}

		count, err = tx.HandlingEventCountByDelivery(ctx, params.DeliveryID)
		if err != nil {
			return fmt.Errorf("could not count handling events: %w", err)
		}

		owner, err = tx.UserByID(ctx, delivery.UserID)
		if err != nil {
			return fmt.Errorf("could not get delivery owner: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("could not create handling event: %w", err)
	}

	ctx = logger.WithFields(ctx, logger.HandlingEventID(event.ID), logger.DeliveryID(event.DeliveryID))
	s.metrics.HandlingEventRecorded(ctx)
	logger.Info(ctx, "handling event recorded", zap.Int64("event_count", count))

	if owner == nil {
		logger.Warn(ctx, "delivery owner not found, skipping notifications", logger.UserID(delivery.UserID))

		return event, nil
	}
	if count == 1 {
		s.notify(ctx, notifier.Dispatched(*owner, delivery.ID))
	}
	if event.ToAddressID == owner.AddressID {
		s.notify(ctx, notifier.AlmostHere(*owner, delivery.ID))
	}

	return event, nil
}

// notify sends msg detached from the caller's cancellation, since the event
// is already committed. Errors only reach the log.
func (s service) notify(ctx context.Context, msg notifier.Message) {
	err := s.notifier.Notify(context.WithoutCancel(ctx), msg)
	s.metrics.NotificationSent(ctx, string(msg.Kind), err != nil)
	if err != nil {
		err = serrors.Wrap(serrors.ErrNotification, err, "could not send %s notification", msg.Kind)
		logger.Error(ctx, "notification failed", zap.Error(err), logger.ErrorKind(err))
	}
}

func (s service) Get(ctx context.Context, ID domain.HandlingEventID) (*domain.HandlingEvent, error) {
	event, err := s.storage.HandlingEventByID(ctx, ID)
	if err != nil {
		return nil, fmt.Errorf("could not get handling event: %w", err)
	}
	if event == nil {
		return nil, serrors.With(serrors.ErrNotFound, "handling event %d not found", ID)
	}

	return event, nil
}

func (s service) ListByDelivery(ctx context.Context, deliveryID domain.DeliveryID) ([]domain.HandlingEvent, error) {
	var events []domain.HandlingEvent
	err := s.storage.WithSnapshot(ctx, func(tx storage.AllStorage) error {
		delivery, err := tx.DeliveryByID(ctx, deliveryID)
		if err != nil {
			return fmt.Errorf("could not get delivery: %w", err)
		}
		if delivery == nil {
			return serrors.With(serrors.ErrNotFound, "delivery %d not found", deliveryID)
		}

		events, err = tx.HandlingEventsByDelivery(ctx, deliveryID)

		return err
	})
	if err != nil {
		return nil, fmt.Errorf("could not list handling events: %w", err)
	}

	return events, nil
}

func New(storage storage.Storage, notifier notifier.Notifier, metrics *metrics.Metrics) Service {
	return &service{
		storage:  storage,
		notifier: notifier,
		metrics:  metrics,
	}
}
