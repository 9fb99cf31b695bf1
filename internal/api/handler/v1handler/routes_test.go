package v1handler_test

import (
	"context"
	"encoding/json"
	"hellofood/internal/api/handler/v1handler"
	"hellofood/internal/delivery"
	"hellofood/internal/handling"
	"hellofood/internal/user"
	"hellofood/pkg/domain"
	"hellofood/pkg/serrors"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCreateAddress(t *testing.T) {
	api := newTestAPI(t)

	api.addresses.EXPECT().Create(gomock.Any(), "", "George St", "Sydney", 2000).
		Return(&domain.Address{ID: 1, StreetName: "George St", Suburb: "Sydney", Postcode: 2000}, nil)

	rec := api.do(t, http.MethodPost, "/v1/addresses",
		`{"street_name":"George St","suburb":"Sydney","postcode":2000}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.JSONEq(t, `{"id":1,"street_name":"George St","suburb":"Sydney","postcode":2000}`, rec.Body.String())
}

func TestCreateAddress_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{name: "missing postcode", body: `{"street_name":"a","suburb":"b"}`, wantMsg: "postcode is required"},
		{name: "wrong type", body: `{"street_name":"a","suburb":"b","postcode":"2000"}`, wantMsg: "postcode must be of type int"},
		{name: "empty body", body: ``, wantMsg: "request body is empty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t)

			rec := api.do(t, http.MethodPost, "/v1/addresses", tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			res := decodeError(t, rec)
			require.Equal(t, "VALIDATION", res.Code)
			require.Contains(t, res.Message, tt.wantMsg)
		})
	}
}

func TestGetAddress_NotFound(t *testing.T) {
	api := newTestAPI(t)

	api.addresses.EXPECT().Get(gomock.Any(), domain.AddressID(9)).
		Return(nil, serrors.With(serrors.ErrNotFound, "address 9 not found"))

	rec := api.do(t, http.MethodGet, "/v1/addresses/9", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, v1Error("NOT_FOUND", "address 9 not found"), decodeError(t, rec))
}

func TestMeals(t *testing.T) {
	api := newTestAPI(t)

	api.meals.EXPECT().Create(gomock.Any(), "thai", "pad thai", decimal.RequireFromString("10.50")).
		Return(&domain.Meal{ID: 3, Cuisine: "thai", Recipe: "pad thai", Price: decimal.RequireFromString("10.50")}, nil)
	rec := api.do(t, http.MethodPost, "/v1/meals", `{"cuisine":"thai","recipe":"pad thai","price":"10.50"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.JSONEq(t, `{"id":3,"cuisine":"thai","recipe":"pad thai","price":"10.5"}`, rec.Body.String())

	api.meals.EXPECT().ListByCuisine(gomock.Any(), "greek").Return(nil, nil)
	rec = api.do(t, http.MethodGet, "/v1/meals?cuisine=greek", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `[]`, rec.Body.String())

	rec = api.do(t, http.MethodGet, "/v1/meals", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "cuisine query parameter is required", decodeError(t, rec).Message)
}

func TestCreateTrialUser(t *testing.T) {
	api := newTestAPI(t)

	api.users.EXPECT().CreateTrial(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p user.TrialParams) (*domain.User, error) {
			require.Equal(t, "jane@example.com", p.Email)
			require.NotNil(t, p.Address)
			require.Equal(t, 3000, p.Address.Postcode)
			require.Zero(t, p.AddressID)

			return &domain.User{
				ID:           4,
				Kind:         domain.UserKindTrial,
				Email:        p.Email,
				MealsPerWeek: p.MealsPerWeek,
				AddressID:    8,
				Trial:        &domain.TrialTerms{EndDate: p.TrialEndDate, Discount: p.Discount},
			}, nil
		})

	rec := api.do(t, http.MethodPost, "/v1/users/trial", `{
		"email": "jane@example.com",
		"meals_per_week": 3,
		"address": {"street_name": "Collins St", "suburb": "Melbourne", "postcode": 3000},
		"trial_end_date": 1600000000,
		"discount_value": "0.2"
	}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var res map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Equal(t, "TRIAL", res["kind"])
	require.Equal(t, "0.2", res["discount_value"])
	// the trial ended before now
	require.Equal(t, true, res["locked_from_due_payment"])
}

func TestCreateStandardUser_DuplicateEmail(t *testing.T) {
	api := newTestAPI(t)

	api.users.EXPECT().CreateStandard(gomock.Any(), gomock.Any()).
		Return(nil, serrors.With(serrors.ErrValidation, `email "bob@example.com" is already registered`))

	rec := api.do(t, http.MethodPost, "/v1/users/standard",
		`{"email":"bob@example.com","meals_per_week":2,"address_id":1}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, decodeError(t, rec).Message, "already registered")
}

func TestGetUser(t *testing.T) {
	api := newTestAPI(t)

	api.users.EXPECT().Get(gomock.Any(), domain.UserID(2)).Return(&domain.User{
		ID: 2, Kind: domain.UserKindStandard, Email: "bob@example.com", MealsPerWeek: 2, AddressID: 1,
	}, nil)
	rec := api.do(t, http.MethodGet, "/v1/users/2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{
		"id": 2, "kind": "STANDARD", "email": "bob@example.com", "name": "",
		"meals_per_week": 2, "address_id": 1, "discount_value": "0",
		"locked_from_due_payment": false
	}`, rec.Body.String())

	api.users.EXPECT().GetByEmail(gomock.Any(), "x@y.co").
		Return(nil, serrors.With(serrors.ErrNotFound, `user with email "x@y.co" not found`))
	rec = api.do(t, http.MethodGet, "/v1/users?email=x@y.co", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateDelivery(t *testing.T) {
	api := newTestAPI(t)

	api.deliveries.EXPECT().CreateFromInput(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, in delivery.Input) (*domain.Delivery, error) {
			require.Equal(t, int64(1), *in.UserID)
			require.Len(t, in.MealOrders, 2)
			require.Nil(t, in.MealOrders[1].Quantity)

			return nil, serrors.With(serrors.ErrValidation, "meal_orders[1].quantity is required")
		})

	rec := api.do(t, http.MethodPost, "/v1/deliveries", `{
		"user_id": 1, "address_id": 2, "delivery_time": 10,
		"meal_orders": [{"meal_id": 5, "quantity": 2}, {"meal_id": 6}]
	}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, v1Error("VALIDATION", "meal_orders[1].quantity is required"), decodeError(t, rec))
}

func TestCreateDelivery_TypeError(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodPost, "/v1/deliveries", `{"user_id": "one"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, decodeError(t, rec).Message, "user_id")
}

func TestGetDelivery(t *testing.T) {
	api := newTestAPI(t)

	api.deliveries.EXPECT().Get(gomock.Any(), domain.DeliveryID(5)).Return(&domain.Delivery{
		ID: 5, UserID: 1, AddressID: 2, DeliveryTime: 10, Total: decimal.RequireFromString("21"),
		MealOrders: []domain.MealOrder{{MealID: 5, Quantity: 2}},
	}, nil)

	rec := api.do(t, http.MethodGet, "/v1/deliveries/5", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{
		"id": 5, "user_id": 1, "address_id": 2, "delivery_time": 10, "total": "21",
		"meal_orders": [{"meal_id": 5, "quantity": 2}]
	}`, rec.Body.String())
}

func TestUpdateDeliveryAddress(t *testing.T) {
	api := newTestAPI(t)

	api.deliveries.EXPECT().UpdateAddress(gomock.Any(), domain.DeliveryID(5), domain.AddressID(9)).Return(nil)
	rec := api.do(t, http.MethodPut, "/v1/deliveries/address", `{"delivery_id":5,"address_id":9}`)
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Empty(t, rec.Body.String())

	api.deliveries.EXPECT().UpdateAddress(gomock.Any(), domain.DeliveryID(6), domain.AddressID(9)).
		Return(serrors.With(serrors.ErrNotFound, "delivery 6 not found"))
	rec = api.do(t, http.MethodPut, "/v1/deliveries/address", `{"delivery_id":6,"address_id":9}`)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = api.do(t, http.MethodPut, "/v1/deliveries/address", `{"address_id":9}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "delivery_id is required", decodeError(t, rec).Message)
}

func TestListUserDeliveries(t *testing.T) {
	api := newTestAPI(t)

	api.deliveries.EXPECT().ListByUser(gomock.Any(), domain.UserID(1)).Return(nil, nil)
	rec := api.do(t, http.MethodGet, "/v1/users/1/deliveries", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `[]`, rec.Body.String())
}

func TestHandlingEvents(t *testing.T) {
	api := newTestAPI(t)

	api.events.EXPECT().Create(gomock.Any(), handling.CreateParams{
		DeliveryID: 5, ToAddressID: 2, FromAddressID: 3, CompletionTime: 100,
	}).Return(&domain.HandlingEvent{ID: 1, DeliveryID: 5, ToAddressID: 2, FromAddressID: 3, CompletionTime: 100}, nil)
	rec := api.do(t, http.MethodPost, "/v1/handling-events",
		`{"delivery_id":5,"to_address_id":2,"from_address_id":3,"completion_time":100}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.JSONEq(t,
		`{"id":1,"delivery_id":5,"to_address_id":2,"from_address_id":3,"completion_time":100}`,
		rec.Body.String())

	api.events.EXPECT().ListByDelivery(gomock.Any(), domain.DeliveryID(5)).
		Return([]domain.HandlingEvent{{ID: 1, DeliveryID: 5}}, nil)
	rec = api.do(t, http.MethodGet, "/v1/deliveries/5/handling-events", "")
	require.Equal(t, http.StatusOK, rec.Code)

	api.events.EXPECT().Get(gomock.Any(), domain.HandlingEventID(7)).
		Return(nil, serrors.With(serrors.ErrNotFound, "handling event 7 not found"))
	rec = api.do(t, http.MethodGet, "/v1/handling-events/7", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func v1Error(code, message string) v1handler.ErrorResponse {
	return v1handler.ErrorResponse{Code: code, Message: message}
}
