package postgres

import (
	"context"
	"fmt"
	"hellofood/pkg/domain"
	"hellofood/pkg/storage"

	"github.com/doug-martin/goqu/v9"
)

const (
	handlingEventsTable = "handling_events"
)

func (p *PgSQL) StoreHandlingEvent(ctx context.Context, event domain.HandlingEvent) (*domain.HandlingEvent, error) {
	var row PgHandlingEvent
	row.FromDomain(event)

	var result PgHandlingEvent
	if _, err := p.Builder.Insert(handlingEventsTable).
		Rows(row).
		Returning(&PgHandlingEvent{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		if isForeignKeyViolation(err) {
			return nil, fmt.Errorf("%s: %w", constraintOf(err), storage.ErrMissingReference)
		}
		if isInvalidValue(err) {
			return nil, invalidValue(err)
		}

		return nil, fmt.Errorf("could not store handling event into pg: %w", err)
	}

	return result.ToDomain(), nil
}

func (p *PgSQL) HandlingEventByID(ctx context.Context, ID domain.HandlingEventID) (*domain.HandlingEvent, error) {
	var row PgHandlingEvent
	found, err := p.Builder.From(handlingEventsTable).
		Where(goqu.I("id").Eq(int64(ID))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch handling event by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) HandlingEventsByDelivery(ctx context.Context, deliveryID domain.DeliveryID) ([]domain.HandlingEvent, error) {
	var rows []PgHandlingEvent
	if err := p.Builder.From(handlingEventsTable).
		Where(goqu.I("delivery_id").Eq(int64(deliveryID))).
		Order(goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch handling events by delivery: %w", err)
	}

	return pgHandlingEventsToDomain(rows), nil
}

func (p *PgSQL) HandlingEventCountByDelivery(ctx context.Context, deliveryID domain.DeliveryID) (int64, error) {
	count, err := p.Builder.From(handlingEventsTable).
		Where(goqu.I("delivery_id").Eq(int64(deliveryID))).
		CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count handling events: %w", err)
	}

	return count, nil
}
