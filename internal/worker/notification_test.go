package worker_test

import (
	"context"
	"errors"
	"hellofood/internal/worker"
	"hellofood/pkg/logger"
	"hellofood/pkg/notifier"
	mocknotifier "hellofood/pkg/notifier/mock"
	"hellofood/pkg/notifier/queue"
	"hellofood/pkg/serrors"
	"testing"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func makeJob(id int64, msg notifier.Message) *river.Job[queue.JobArgs] {
	return &river.Job[queue.JobArgs]{
		JobRow: &rivertype.JobRow{ID: id, Attempt: 1},
		Args:   queue.JobArgs{Message: msg},
	}
}

var dispatched = notifier.Message{
	To:      "jane@example.com",
	Subject: "Your order is on its way!",
	Body:    "Hi Jane",
	Kind:    notifier.KindDispatched,
}

func TestNotificationWorker_Work_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mocknotifier.NewMockNotifier(ctrl)
	w := worker.NewNotificationWorker(mock)

	mock.EXPECT().Notify(gomock.Any(), dispatched).Return(nil)

	require.NoError(t, w.Work(context.Background(), makeJob(1, dispatched)))
}

func TestNotificationWorker_Work_FailureIsRetried(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mocknotifier.NewMockNotifier(ctrl)
	w := worker.NewNotificationWorker(mock)

	mock.EXPECT().Notify(gomock.Any(), dispatched).Return(errors.New("mailgun unavailable"))

	err := w.Work(context.Background(), makeJob(2, dispatched))
	require.ErrorIs(t, err, serrors.ErrNotification)
	var cancelErr *river.JobCancelError
	require.NotErrorAs(t, err, &cancelErr, "transient failures must stay retryable")
}

func TestNotificationWorker_Work_NoRecipientCancels(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mocknotifier.NewMockNotifier(ctrl)
	w := worker.NewNotificationWorker(mock)

	msg := dispatched
	msg.To = ""

	err := w.Work(context.Background(), makeJob(3, msg))
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}
