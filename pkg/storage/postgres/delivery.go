package postgres

import (
	"context"
	"fmt"
	"hellofood/pkg/domain"
	"hellofood/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
)

const (
	deliveriesTable = "deliveries"
	mealOrdersTable = "meal_orders"
)

// StoreDelivery writes the delivery header and all of its meal order lines in
// one transaction. Lines are numbered in slice order.
func (p *PgSQL) StoreDelivery(ctx context.Context, delivery domain.Delivery) (*domain.Delivery, error) {
	var stored *domain.Delivery
	err := p.atomically(ctx, func(tx *PgSQL) error {
		var row PgDelivery
		row.FromDomain(delivery)

		var header PgDelivery
		if _, err := tx.Builder.Insert(deliveriesTable).
			Rows(row).
			Returning(&PgDelivery{}).
			Executor().ScanStructContext(ctx, &header); err != nil {
			if isForeignKeyViolation(err) {
				return fmt.Errorf("%s: %w", constraintOf(err), storage.ErrMissingReference)
			}
			if isInvalidValue(err) {
				return invalidValue(err)
			}

			return fmt.Errorf("could not store delivery into pg: %w", err)
		}

		lines := domainMealOrdersToPg(header.ID, delivery.MealOrders)
		if len(lines) > 0 {
			if _, err := tx.Builder.Insert(mealOrdersTable).
				Rows(lines).
				Executor().ExecContext(ctx); err != nil {
				if isForeignKeyViolation(err) {
					return fmt.Errorf("%s: %w", constraintOf(err), storage.ErrMissingReference)
				}
				if isInvalidValue(err) {
					return invalidValue(err)
				}

				return fmt.Errorf("could not store meal orders into pg: %w", err)
			}
		}

		stored = header.ToDomain(lines)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return stored, nil
}

// DeliveryByID reads the header and then the lines. Callers wanting both
// reads to observe the same state should run it inside WithSnapshot.
func (p *PgSQL) DeliveryByID(ctx context.Context, ID domain.DeliveryID) (*domain.Delivery, error) {
	return p.deliveryByID(ctx, ID, false)
}

// LockDeliveryByID selects the header FOR UPDATE. Outside a transaction the
// lock is released as soon as the statement ends.
func (p *PgSQL) LockDeliveryByID(ctx context.Context, ID domain.DeliveryID) (*domain.Delivery, error) {
	return p.deliveryByID(ctx, ID, true)
}

func (p *PgSQL) deliveryByID(ctx context.Context, ID domain.DeliveryID, lock bool) (*domain.Delivery, error) {
	ds := p.Builder.From(deliveriesTable).
		Where(goqu.I("id").Eq(int64(ID)))
	if lock {
		ds = ds.ForUpdate(exp.Wait)
	}

	var header PgDelivery
	found, err := ds.Executor().ScanStructContext(ctx, &header)
	if err != nil {
		return nil, fmt.Errorf("could not fetch delivery by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	lines, err := p.mealOrders(ctx, header.ID)
	if err != nil {
		return nil, err
	}

	return header.ToDomain(lines[header.ID]), nil
}

func (p *PgSQL) DeliveriesByUser(ctx context.Context, userID domain.UserID) ([]domain.Delivery, error) {
	var headers []PgDelivery
	if err := p.Builder.From(deliveriesTable).
		Where(goqu.I("user_id").Eq(int64(userID))).
		Order(goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &headers); err != nil {
		return nil, fmt.Errorf("could not fetch user deliveries: %w", err)
	}
	if len(headers) == 0 {
		return nil, nil
	}

	ids := make([]int64, len(headers))
	for i, header := range headers {
		ids[i] = header.ID
	}

	lines, err := p.mealOrders(ctx, ids...)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Delivery, 0, len(headers))
	for _, header := range headers {
		out = append(out, *header.ToDomain(lines[header.ID]))
	}

	return out, nil
}

// mealOrders returns the lines of the given deliveries grouped by delivery ID
// and ordered by line number.
func (p *PgSQL) mealOrders(ctx context.Context, deliveryIDs ...int64) (map[int64][]PgMealOrder, error) {
	var rows []PgMealOrder
	if err := p.Builder.From(mealOrdersTable).
		Where(goqu.I("delivery_id").In(deliveryIDs)).
		Order(goqu.I("delivery_id").Asc(), goqu.I("line_no").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch meal orders: %w", err)
	}

	out := make(map[int64][]PgMealOrder, len(deliveryIDs))
	for _, row := range rows {
		out[row.DeliveryID] = append(out[row.DeliveryID], row)
	}

	return out, nil
}

func (p *PgSQL) UpdateDeliveryAddress(ctx context.Context, ID domain.DeliveryID, addressID domain.AddressID) (bool, error) {
	res, err := p.Builder.Update(deliveriesTable).
		Set(goqu.Record{
			"address_id": int64(addressID),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(goqu.I("id").Eq(int64(ID))).
		Executor().ExecContext(ctx)
	if err != nil {
		if isForeignKeyViolation(err) {
			return false, fmt.Errorf("%s: %w", constraintOf(err), storage.ErrMissingReference)
		}

		return false, fmt.Errorf("could not update delivery address in pg: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not read affected rows: %w", err)
	}

	return affected > 0, nil
}
