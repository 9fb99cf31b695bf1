package address_test

import (
	"context"
	"errors"
	"hellofood/internal/address"
	"hellofood/pkg/domain"
	"hellofood/pkg/serrors"
	mockstorage "hellofood/pkg/storage/mock"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (*mockstorage.MockStorage, address.Service) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)

	return st, address.New(st)
}

func TestService_Get(t *testing.T) {
	st, s := newTestService(t)
	ctx := context.Background()

	home := &domain.Address{ID: 4, StreetName: "Collins St", Suburb: "Melbourne", Postcode: 3000}
	st.EXPECT().AddressByID(gomock.Any(), domain.AddressID(4)).Return(home, nil)
	st.EXPECT().AddressByID(gomock.Any(), domain.AddressID(5)).Return(nil, nil)

	got, err := s.Get(ctx, 4)
	require.NoError(t, err)
	require.Equal(t, home, got)

	_, err = s.Get(ctx, 5)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestService_Create(t *testing.T) {
	tests := []struct {
		name     string
		postcode int
		wantErr  error
	}{
		{name: "lower bound", postcode: 1},
		{name: "upper bound", postcode: 9999},
		{name: "zero", postcode: 0, wantErr: serrors.ErrValidation},
		{name: "too large", postcode: 10000, wantErr: serrors.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, s := newTestService(t)

			if tt.wantErr == nil {
				st.EXPECT().StoreAddress(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, a domain.Address) (*domain.Address, error) {
						require.Equal(t, "Unit 18", a.Unit)
						a.ID = 1

						return &a, nil
					})
			}

			got, err := s.Create(context.Background(), "Unit 18", "George St", "Sydney", tt.postcode)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.postcode, got.Postcode)
		})
	}
}

func TestService_Replace(t *testing.T) {
	st, s := newTestService(t)
	ctx := context.Background()

	a := domain.Address{ID: 7, StreetName: "Queen St", Suburb: "Brisbane", Postcode: 4000}

	st.EXPECT().ReplaceAddress(gomock.Any(), a).Return(true, nil)
	require.NoError(t, s.Replace(ctx, a))

	st.EXPECT().ReplaceAddress(gomock.Any(), a).Return(false, nil)
	require.ErrorIs(t, s.Replace(ctx, a), serrors.ErrNotFound)

	st.EXPECT().ReplaceAddress(gomock.Any(), a).Return(false, errors.New("boom"))
	require.Error(t, s.Replace(ctx, a))

	a.Postcode = 0
	require.ErrorIs(t, s.Replace(ctx, a), serrors.ErrValidation)
}
