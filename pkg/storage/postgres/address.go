package postgres

import (
	"context"
	"fmt"
	"hellofood/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const (
	addressesTable = "addresses"
)

func (p *PgSQL) StoreAddress(ctx context.Context, address domain.Address) (*domain.Address, error) {
	var row PgAddress
	row.FromDomain(address)

	var result PgAddress
	if _, err := p.Builder.Insert(addressesTable).
		Rows(row).
		Returning(&PgAddress{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		if isInvalidValue(err) {
			return nil, invalidValue(err)
		}

		return nil, fmt.Errorf("could not store address into pg: %w", err)
	}

	return result.ToDomain(), nil
}

func (p *PgSQL) AddressByID(ctx context.Context, ID domain.AddressID) (*domain.Address, error) {
	var row PgAddress
	found, err := p.Builder.From(addressesTable).
		Where(goqu.I("id").Eq(int64(ID))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch address by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// ReplaceAddress overwrites all mutable columns of an address.
func (p *PgSQL) ReplaceAddress(ctx context.Context, address domain.Address) (bool, error) {
	var row PgAddress
	row.FromDomain(address)

	res, err := p.Builder.Update(addressesTable).
		Set(goqu.Record{
			"unit":        row.Unit,
			"street_name": row.StreetName,
			"suburb":      row.Suburb,
			"postcode":    row.Postcode,
			"updated_at":  goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(goqu.I("id").Eq(row.ID)).
		Executor().ExecContext(ctx)
	if isInvalidValue(err) {
		return false, invalidValue(err)
	}
	if err != nil {
		return false, fmt.Errorf("could not replace address in pg: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not read affected rows: %w", err)
	}

	return affected > 0, nil
}
