package postgres

import (
	"context"
	"errors"
	"fmt"
	"hellofood/pkg/domain"
	"hellofood/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
)

const (
	usersTable         = "users"
	trialUsersTable    = "trial_users"
	standardUsersTable = "standard_users"
)

var errUnknownUserKind = errors.New("unknown user kind")

// StoreUser writes the shared record and the variant record in one transaction.
func (p *PgSQL) StoreUser(ctx context.Context, user domain.User) (*domain.User, error) {
	var stored *domain.User
	err := p.atomically(ctx, func(tx *PgSQL) error {
		var row PgUser
		row.FromDomain(user)

		var result PgUser
		if _, err := tx.Builder.Insert(usersTable).
			Rows(row).
			Returning(goqu.C("id")).
			Executor().ScanStructContext(ctx, &result); err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("email %q: %w", user.Email, storage.ErrDuplicateKey)
			}
			if isInvalidValue(err) {
				return invalidValue(err)
			}

			return fmt.Errorf("could not store user into pg: %w", err)
		}

		if err := tx.insertUserVariant(ctx, result.ID, user); err != nil {
			return err
		}

		stored = &user
		stored.ID = domain.UserID(result.ID)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return stored, nil
}

func (p *PgSQL) insertUserVariant(ctx context.Context, userID int64, user domain.User) error {
	var ds *goqu.InsertDataset
	switch user.Kind {
	case domain.UserKindTrial:
		if user.Trial == nil {
			return fmt.Errorf("trial user without trial terms: %w", errUnknownUserKind)
		}
		ds = p.Builder.Insert(trialUsersTable).Rows(PgTrialUser{
			UserID:        userID,
			TrialEndDate:  user.Trial.EndDate,
			DiscountValue: user.Trial.Discount,
		})
	case domain.UserKindStandard:
		ds = p.Builder.Insert(standardUsersTable).Rows(PgStandardUser{UserID: userID})
	default:
		return fmt.Errorf("%w: %q", errUnknownUserKind, user.Kind)
	}

	if _, err := ds.Executor().ExecContext(ctx); err != nil {
		if isInvalidValue(err) {
			return invalidValue(err)
		}

		return fmt.Errorf("could not store %s user record into pg: %w", user.Kind, err)
	}

	return nil
}

func (p *PgSQL) selectUsers() *goqu.SelectDataset {
	return p.Builder.From(goqu.T(usersTable).As("u")).
		LeftJoin(goqu.T(trialUsersTable).As("t"), goqu.On(goqu.I("t.user_id").Eq(goqu.I("u.id")))).
		LeftJoin(goqu.T(standardUsersTable).As("s"), goqu.On(goqu.I("s.user_id").Eq(goqu.I("u.id")))).
		Select(
			goqu.I("u.id"),
			goqu.I("u.kind"),
			goqu.I("u.email"),
			goqu.I("u.name"),
			goqu.I("u.meals_per_week"),
			goqu.I("u.address_id"),
			goqu.I("u.created_at"),
			goqu.I("u.updated_at"),
			goqu.I("t.user_id").As("trial_user_id"),
			goqu.I("t.trial_end_date"),
			goqu.I("t.discount_value"),
			goqu.I("s.user_id").As("standard_user_id"),
		)
}

// userWhere fetches at most one user matching cond.
func (p *PgSQL) userWhere(ctx context.Context, cond exp.Expression) (*domain.User, error) {
	var rows []PgUserVariants
	if err := p.selectUsers().
		Where(cond).
		Limit(2).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch user: %w", err)
	}

	switch len(rows) {
	case 0:
		return nil, nil
	case 1:
		return rows[0].ToDomain()
	default:
		return nil, fmt.Errorf("could not fetch user: %w", storage.ErrMultipleRows)
	}
}

func (p *PgSQL) UserByID(ctx context.Context, ID domain.UserID) (*domain.User, error) {
	return p.userWhere(ctx, goqu.I("u.id").Eq(int64(ID)))
}

func (p *PgSQL) UserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return p.userWhere(ctx, goqu.I("u.email").Eq(email))
}

// UpdateUser rewrites the shared record and, for trial users, the trial record.
func (p *PgSQL) UpdateUser(ctx context.Context, user domain.User) (bool, error) {
	var found bool
	err := p.atomically(ctx, func(tx *PgSQL) error {
		var row PgUser
		row.FromDomain(user)

		res, err := tx.Builder.Update(usersTable).
			Set(goqu.Record{
				"email":          row.Email,
				"name":           row.Name,
				"meals_per_week": row.MealsPerWeek,
				"address_id":     row.AddressID,
				"updated_at":     goqu.L("CURRENT_TIMESTAMP"),
			}).
			Where(
				goqu.I("id").Eq(row.ID),
				goqu.I("kind").Eq(row.Kind),
			).
			Executor().ExecContext(ctx)
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("email %q: %w", user.Email, storage.ErrDuplicateKey)
			}
			if isInvalidValue(err) {
				return invalidValue(err)
			}

			return fmt.Errorf("could not update user in pg: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("could not read affected rows: %w", err)
		}
		if affected == 0 {
			return nil
		}

		if user.Kind == domain.UserKindTrial && user.Trial != nil {
			if _, err := tx.Builder.Update(trialUsersTable).
				Set(goqu.Record{
					"trial_end_date": user.Trial.EndDate,
					"discount_value": user.Trial.Discount,
				}).
				Where(goqu.I("user_id").Eq(row.ID)).
				Executor().ExecContext(ctx); err != nil {
				if isInvalidValue(err) {
					return invalidValue(err)
				}

				return fmt.Errorf("could not update trial user in pg: %w", err)
			}
		}
		found = true

		return nil
	})
	if err != nil {
		return false, err
	}

	return found, nil
}
