package worker

import (
	"context"
	"fmt"
	"hellofood/pkg/logger"
	"hellofood/pkg/notifier"
	"hellofood/pkg/notifier/queue"
	"hellofood/pkg/serrors"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// NotificationWorker delivers queued customer notifications through an email
// notifier. A failed attempt is returned to River, which retries the job until
// it runs out of attempts; the attempt budget is set when the job is queued.
type NotificationWorker struct {
	river.WorkerDefaults[queue.JobArgs]

	notifier notifier.Notifier
}

func NewNotificationWorker(notifier notifier.Notifier) *NotificationWorker {
	return &NotificationWorker{
		notifier: notifier,
	}
}

// Work sends one message. Messages without a recipient can never succeed and
// are cancelled instead of retried.
func (w *NotificationWorker) Work(ctx context.Context, job *river.Job[queue.JobArgs]) error {
	msg := job.Args.Message
	ctx = logger.WithFields(ctx,
		zap.Int64("job_id", job.ID),
		zap.Int("attempt", job.Attempt),
		zap.String("kind", string(msg.Kind)),
	)

	if msg.To == "" {
		err := serrors.With(serrors.ErrNotification, "%s notification has no recipient", msg.Kind)
		logger.Error(ctx, "dropping notification", zap.Error(err), logger.ErrorKind(err))

		return river.JobCancel(err) //nolint: wrapcheck
	}

	if err := w.notifier.Notify(ctx, msg); err != nil {
		err = serrors.Wrap(serrors.ErrNotification, err, "could not send %s notification", msg.Kind)
		logger.Error(ctx, "error in sending notification", zap.Error(err), logger.ErrorKind(err))

		return fmt.Errorf("could not deliver notification: %w", err)
	}

	logger.Info(ctx, "notification sent")

	return nil
}
