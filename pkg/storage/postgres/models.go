package postgres

import (
	"database/sql"
	"fmt"
	"hellofood/pkg/domain"
	"time"

	"github.com/shopspring/decimal"
)

type PgAddress struct {
	ID         int64          `db:"id"          goqu:"skipinsert"`
	Unit       sql.NullString `db:"unit"`
	StreetName string         `db:"street_name"`
	Suburb     string         `db:"suburb"`
	Postcode   int            `db:"postcode"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgAddress) ToDomain() *domain.Address {
	return &domain.Address{
		ID:         domain.AddressID(p.ID),
		Unit:       p.Unit.String,
		StreetName: p.StreetName,
		Suburb:     p.Suburb,
		Postcode:   p.Postcode,
	}
}

func (p *PgAddress) FromDomain(address domain.Address) {
	*p = PgAddress{
		ID: int64(address.ID),
		Unit: sql.NullString{
			String: address.Unit,
			Valid:  address.Unit != "",
		},
		StreetName: address.StreetName,
		Suburb:     address.Suburb,
		Postcode:   address.Postcode,
	}
}

type PgMeal struct {
	ID      int64           `db:"id"      goqu:"skipinsert"`
	Cuisine string          `db:"cuisine"`
	Recipe  string          `db:"recipe"`
	Price   decimal.Decimal `db:"price"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgMeal) ToDomain() *domain.Meal {
	return &domain.Meal{
		ID:      domain.MealID(p.ID),
		Cuisine: p.Cuisine,
		Recipe:  p.Recipe,
		Price:   p.Price,
	}
}

func (p *PgMeal) FromDomain(meal domain.Meal) {
	*p = PgMeal{
		ID:      int64(meal.ID),
		Cuisine: meal.Cuisine,
		Recipe:  meal.Recipe,
		Price:   meal.Price,
	}
}

func pgMealsToDomain(meals []PgMeal) []domain.Meal {
	out := make([]domain.Meal, 0, len(meals))
	for _, meal := range meals {
		out = append(out, *meal.ToDomain())
	}

	return out
}

type PgUser struct {
	ID           int64  `db:"id"             goqu:"skipinsert"`
	Kind         string `db:"kind"`
	Email        string `db:"email"`
	Name         string `db:"name"`
	MealsPerWeek int    `db:"meals_per_week"`
	AddressID    int64  `db:"address_id"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgUser) FromDomain(user domain.User) {
	*p = PgUser{
		ID:           int64(user.ID),
		Kind:         string(user.Kind),
		Email:        user.Email,
		Name:         user.Name,
		MealsPerWeek: user.MealsPerWeek,
		AddressID:    int64(user.AddressID),
	}
}

type PgTrialUser struct {
	UserID        int64           `db:"user_id"`
	TrialEndDate  int64           `db:"trial_end_date"`
	DiscountValue decimal.Decimal `db:"discount_value"`
}

type PgStandardUser struct {
	UserID int64 `db:"user_id"`
}

// PgUserVariants is a user row joined with both variant tables.
type PgUserVariants struct {
	PgUser

	TrialUserID    sql.NullInt64       `db:"trial_user_id"`
	TrialEndDate   sql.NullInt64       `db:"trial_end_date"`
	DiscountValue  decimal.NullDecimal `db:"discount_value"`
	StandardUserID sql.NullInt64       `db:"standard_user_id"`
}

// ToDomain resolves the variant by trying the trial record first and falling
// back to the standard one. The resolved variant sets Kind, so a stale
// discriminant never yields a user without its terms.
func (p *PgUserVariants) ToDomain() (*domain.User, error) {
	user := &domain.User{
		ID:           domain.UserID(p.ID),
		Email:        p.Email,
		Name:         p.Name,
		MealsPerWeek: p.MealsPerWeek,
		AddressID:    domain.AddressID(p.AddressID),
	}

	switch {
	case p.TrialUserID.Valid:
		user.Kind = domain.UserKindTrial
		user.Trial = &domain.TrialTerms{
			EndDate:  p.TrialEndDate.Int64,
			Discount: p.DiscountValue.Decimal,
		}
	case p.StandardUserID.Valid:
		user.Kind = domain.UserKindStandard
	default:
		return nil, fmt.Errorf("user %d of kind %q has no variant record", p.ID, p.Kind)
	}

	return user, nil
}

type PgDelivery struct {
	ID           int64           `db:"id"            goqu:"skipinsert"`
	UserID       int64           `db:"user_id"`
	AddressID    int64           `db:"address_id"`
	DeliveryTime int64           `db:"delivery_time"`
	Total        decimal.Decimal `db:"total"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgDelivery) ToDomain(lines []PgMealOrder) *domain.Delivery {
	orders := make([]domain.MealOrder, 0, len(lines))
	for _, line := range lines {
		orders = append(orders, domain.MealOrder{
			MealID:   domain.MealID(line.MealID),
			Quantity: line.Quantity,
		})
	}

	return &domain.Delivery{
		ID:           domain.DeliveryID(p.ID),
		UserID:       domain.UserID(p.UserID),
		AddressID:    domain.AddressID(p.AddressID),
		DeliveryTime: p.DeliveryTime,
		Total:        p.Total,
		MealOrders:   orders,
	}
}

func (p *PgDelivery) FromDomain(delivery domain.Delivery) {
	*p = PgDelivery{
		ID:           int64(delivery.ID),
		UserID:       int64(delivery.UserID),
		AddressID:    int64(delivery.AddressID),
		DeliveryTime: delivery.DeliveryTime,
		Total:        delivery.Total,
	}
}

type PgMealOrder struct {
	DeliveryID int64 `db:"delivery_id"`
	LineNo     int   `db:"line_no"`
	MealID     int64 `db:"meal_id"`
	Quantity   int   `db:"quantity"`
}

func domainMealOrdersToPg(deliveryID int64, orders []domain.MealOrder) []PgMealOrder {
	out := make([]PgMealOrder, len(orders))
	for i, order := range orders {
		out[i] = PgMealOrder{
			DeliveryID: deliveryID,
			LineNo:     i + 1,
			MealID:     int64(order.MealID),
			Quantity:   order.Quantity,
		}
	}

	return out
}

type PgHandlingEvent struct {
	ID             int64 `db:"id"              goqu:"skipinsert"`
	DeliveryID     int64 `db:"delivery_id"`
	ToAddressID    int64 `db:"to_address_id"`
	FromAddressID  int64 `db:"from_address_id"`
	CompletionTime int64 `db:"completion_time"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgHandlingEvent) ToDomain() *domain.HandlingEvent {
	return &domain.HandlingEvent{
		ID:             domain.HandlingEventID(p.ID),
		DeliveryID:     domain.DeliveryID(p.DeliveryID),
		ToAddressID:    domain.AddressID(p.ToAddressID),
		FromAddressID:  domain.AddressID(p.FromAddressID),
		CompletionTime: p.CompletionTime,
	}
}

func (p *PgHandlingEvent) FromDomain(event domain.HandlingEvent) {
	*p = PgHandlingEvent{
		ID:             int64(event.ID),
		DeliveryID:     int64(event.DeliveryID),
		ToAddressID:    int64(event.ToAddressID),
		FromAddressID:  int64(event.FromAddressID),
		CompletionTime: event.CompletionTime,
	}
}

func pgHandlingEventsToDomain(events []PgHandlingEvent) []domain.HandlingEvent {
	out := make([]domain.HandlingEvent, 0, len(events))
	for _, event := range events {
		out = append(out, *event.ToDomain())
	}

	return out
}
