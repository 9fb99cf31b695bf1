package handling_test

import (
	"context"
	"errors"
	"hellofood/internal/handling"
	"hellofood/pkg/domain"
	"hellofood/pkg/logger"
	"hellofood/pkg/notifier"
	mocknotifier "hellofood/pkg/notifier/mock"
	"hellofood/pkg/serrors"
	mockstorage "hellofood/pkg/storage/mock"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const (
	home    domain.AddressID = 10
	kitchen domain.AddressID = 20
	depot   domain.AddressID = 30
)

var (
	owner     = &domain.User{ID: 1, Email: "jane@example.com", Name: "Jane", AddressID: home}
	delivery7 = &domain.Delivery{ID: 7, UserID: owner.ID, AddressID: home}
)

type testService struct {
	ctrl     *gomock.Controller
	st       *mockstorage.MockStorage
	notifier *mocknotifier.MockNotifier
	service  handling.Service
}

func newTestService(t *testing.T) testService {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	n := mocknotifier.NewMockNotifier(ctrl)

	return testService{ctrl: ctrl, st: st, notifier: n, service: handling.New(st, n, nil)}
}

// expectCreate wires a successful transaction whose post-insert count is count.
func (ts testService) expectCreate(params handling.CreateParams, count int64) {
	mockstorage.ExpectWithTx(ts.ctrl, ts.st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().LockDeliveryByID(gomock.Any(), params.DeliveryID).Return(delivery7, nil)
		tx.EXPECT().StoreHandlingEvent(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e domain.HandlingEvent) (*domain.HandlingEvent, error) {
				e.ID = domain.HandlingEventID(count)

				return &e, nil
			})
		tx.EXPECT().HandlingEventCountByDelivery(gomock.Any(), params.DeliveryID).Return(count, nil)
		tx.EXPECT().UserByID(gomock.Any(), owner.ID).Return(owner, nil)
	})
}

func hasKind(kind notifier.Kind) gomock.Matcher {
	return gomock.Cond(func(msg notifier.Message) bool {
		return msg.Kind == kind && msg.To == owner.Email
	})
}

func TestService_Create_FirstEventDispatches(t *testing.T) {
	ts := newTestService(t)

	params := handling.CreateParams{DeliveryID: 7, FromAddressID: kitchen, ToAddressID: depot, CompletionTime: 100}
	ts.expectCreate(params, 1)
	ts.notifier.EXPECT().Notify(gomock.Any(), hasKind(notifier.KindDispatched)).Return(nil).Times(1)

	event, err := ts.service.Create(context.Background(), params)
	require.NoError(t, err)
	require.Equal(t, depot, event.ToAddressID)
}

func TestService_Create_LaterEventIsSilent(t *testing.T) {
	ts := newTestService(t)

	params := handling.CreateParams{DeliveryID: 7, FromAddressID: depot, ToAddressID: kitchen, CompletionTime: 200}
	ts.expectCreate(params, 2)
	// no Notify expectation: any call fails the test

	_, err := ts.service.Create(context.Background(), params)
	require.NoError(t, err)
}

func TestService_Create_ArrivingAtHome(t *testing.T) {
	ts := newTestService(t)

	params := handling.CreateParams{DeliveryID: 7, FromAddressID: depot, ToAddressID: home, CompletionTime: 300}
	ts.expectCreate(params, 3)
	ts.notifier.EXPECT().Notify(gomock.Any(), hasKind(notifier.KindAlmostHere)).Return(nil).Times(1)

	_, err := ts.service.Create(context.Background(), params)
	require.NoError(t, err)
}

func TestService_Create_FirstEventStraightHomeSendsBoth(t *testing.T) {
	ts := newTestService(t)

	params := handling.CreateParams{DeliveryID: 7, FromAddressID: kitchen, ToAddressID: home}
	ts.expectCreate(params, 1)
	gomock.InOrder(
		ts.notifier.EXPECT().Notify(gomock.Any(), hasKind(notifier.KindDispatched)).Return(nil),
		ts.notifier.EXPECT().Notify(gomock.Any(), hasKind(notifier.KindAlmostHere)).Return(nil),
	)

	_, err := ts.service.Create(context.Background(), params)
	require.NoError(t, err)
}

func TestService_Create_NotificationFailureIsLogged(t *testing.T) {
	ts := newTestService(t)

	core, logs := observer.New(zap.ErrorLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	params := handling.CreateParams{DeliveryID: 7, FromAddressID: kitchen, ToAddressID: depot}
	ts.expectCreate(params, 1)
	ts.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))

	event, err := ts.service.Create(ctx, params)
	require.NoError(t, err)
	require.NotNil(t, event)

	entries := logs.FilterMessage("notification failed").All()
	require.Len(t, entries, 1)
	require.Equal(t, serrors.ErrNotification.Error(), entries[0].ContextMap()["error_kind"])
}

func TestService_Create_Rejections(t *testing.T) {
	t.Run("negative completion time", func(t *testing.T) {
		ts := newTestService(t)

		_, err := ts.service.Create(context.Background(), handling.CreateParams{DeliveryID: 7, CompletionTime: -1})
		require.ErrorIs(t, err, serrors.ErrValidation)
	})

	t.Run("unknown delivery", func(t *testing.T) {
		ts := newTestService(t)

		mockstorage.ExpectWithTx(ts.ctrl, ts.st, func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().LockDeliveryByID(gomock.Any(), domain.DeliveryID(8)).Return(nil, nil)
		})

		_, err := ts.service.Create(context.Background(), handling.CreateParams{DeliveryID: 8})
		require.ErrorIs(t, err, serrors.ErrNotFound)
	})

	t.Run("storage failure sends nothing", func(t *testing.T) {
		ts := newTestService(t)

		mockstorage.ExpectWithTx(ts.ctrl, ts.st, func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().LockDeliveryByID(gomock.Any(), domain.DeliveryID(7)).Return(delivery7, nil)
			tx.EXPECT().StoreHandlingEvent(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))
		})

		_, err := ts.service.Create(context.Background(), handling.CreateParams{DeliveryID: 7})
		require.Error(t, err)
	})
}

func TestService_Get(t *testing.T) {
	ts := newTestService(t)
	ctx := context.Background()

	ts.st.EXPECT().HandlingEventByID(gomock.Any(), domain.HandlingEventID(1)).Return(&domain.HandlingEvent{ID: 1}, nil)
	ts.st.EXPECT().HandlingEventByID(gomock.Any(), domain.HandlingEventID(2)).Return(nil, nil)

	got, err := ts.service.Get(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, domain.HandlingEventID(1), got.ID)

	_, err = ts.service.Get(ctx, 2)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestService_ListByDelivery(t *testing.T) {
	ts := newTestService(t)
	ctx := context.Background()

	events := []domain.HandlingEvent{{ID: 1, DeliveryID: 7}, {ID: 2, DeliveryID: 7}}
	mockstorage.ExpectWithSnapshot(ts.ctrl, ts.st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().DeliveryByID(gomock.Any(), domain.DeliveryID(7)).Return(delivery7, nil)
		tx.EXPECT().HandlingEventsByDelivery(gomock.Any(), domain.DeliveryID(7)).Return(events, nil)
	})
	got, err := ts.service.ListByDelivery(ctx, 7)
	require.NoError(t, err)
	require.Equal(t, events, got)

	mockstorage.ExpectWithSnapshot(ts.ctrl, ts.st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().DeliveryByID(gomock.Any(), domain.DeliveryID(8)).Return(nil, nil)
	})
	_, err = ts.service.ListByDelivery(ctx, 8)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}
