// Package queue hands notifications to the River job queue. The email is
// sent later by the notification worker.
package queue

import (
	"context"
	"fmt"
	"hellofood/pkg/notifier"
	"hellofood/pkg/storage"

	"github.com/riverqueue/river"
)

// JobArgs is the payload of a queued notification.
type JobArgs struct {
	Message notifier.Message `json:"message"`
}

func (JobArgs) Kind() string { return "notification" }

// Notifier implements notifier.Notifier by inserting a job.
type Notifier struct {
	jobs        storage.JobStorage
	maxAttempts int
}

// New returns a queue notifier. maxAttempts bounds how often the worker tries
// a message; values below 1 mean a single attempt.
func New(jobs storage.JobStorage, maxAttempts int) *Notifier {
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	return &Notifier{
		jobs:        jobs,
		maxAttempts: maxAttempts,
	}
}

func (n *Notifier) Notify(ctx context.Context, msg notifier.Message) error {
	if _, err := n.jobs.AddJob(ctx, JobArgs{Message: msg}, &river.InsertOpts{
		MaxAttempts: n.maxAttempts,
		Tags:        []string{string(msg.Kind)},
	}); err != nil {
		return fmt.Errorf("could not queue %s notification: %w", msg.Kind, err)
	}

	return nil
}
