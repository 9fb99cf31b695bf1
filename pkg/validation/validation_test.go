package validation_test

import (
	"encoding/json"
	"errors"
	"hellofood/pkg/serrors"
	"hellofood/pkg/validation"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type line struct {
	MealID   *int64 `json:"meal_id"  validate:"required"`
	Quantity *int   `json:"quantity" validate:"required,gt=0"`
}

type order struct {
	UserID *int64  `json:"user_id"     validate:"required"`
	Lines  []line  `json:"meal_orders" validate:"required,min=1,dive"`
	Note   *string `json:"-"`
}

func ptr[T any](v T) *T { return &v }

func TestStruct(t *testing.T) {
	tests := []struct {
		name    string
		input   order
		wantErr string
	}{
		{
			name:  "valid",
			input: order{UserID: ptr(int64(1)), Lines: []line{{MealID: ptr(int64(1)), Quantity: ptr(2)}}},
		},
		{
			name:    "missing top level field",
			input:   order{Lines: []line{{MealID: ptr(int64(1)), Quantity: ptr(2)}}},
			wantErr: "user_id is required",
		},
		{
			name:    "empty list",
			input:   order{UserID: ptr(int64(1)), Lines: []line{}},
			wantErr: "meal_orders must contain at least 1 items",
		},
		{
			name: "nested field uses json path",
			input: order{UserID: ptr(int64(1)), Lines: []line{
				{MealID: ptr(int64(1)), Quantity: ptr(2)},
				{MealID: ptr(int64(2)), Quantity: ptr(0)},
			}},
			wantErr: "meal_orders[1].quantity must be greater than 0",
		},
		{
			name:    "nested missing field",
			input:   order{UserID: ptr(int64(1)), Lines: []line{{Quantity: ptr(2)}}},
			wantErr: "meal_orders[0].meal_id is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.Struct(tt.input)
			if tt.wantErr == "" {
				require.NoError(t, err)

				return
			}
			require.ErrorIs(t, err, serrors.ErrValidation)
			require.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestFromDecodeError(t *testing.T) {
	var o order

	err := json.NewDecoder(strings.NewReader(`{"user_id": "seven"}`)).Decode(&o)
	require.Error(t, err)
	err = validation.FromDecodeError(err)
	require.ErrorIs(t, err, serrors.ErrValidation)
	require.Contains(t, err.Error(), "user_id")

	err = json.NewDecoder(strings.NewReader(`{"user_id": `)).Decode(&o)
	require.ErrorIs(t, validation.FromDecodeError(err), serrors.ErrValidation)

	err = json.NewDecoder(strings.NewReader(``)).Decode(&o)
	require.EqualError(t, validation.FromDecodeError(err), "request body is empty")

	err = validation.FromDecodeError(errors.New("boom"))
	require.ErrorIs(t, err, serrors.ErrValidation)
}
