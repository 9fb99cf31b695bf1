// Package mailgun delivers notifications as emails through the Mailgun API.
package mailgun

import (
	"context"
	"fmt"
	"hellofood/pkg/logger"
	"hellofood/pkg/notifier"
	"time"

	mg "github.com/mailgun/mailgun-go/v4"
	"go.uber.org/zap"
)

const defaultTimeout = 10 * time.Second

type Options struct {
	// Domain is the sending domain registered with Mailgun.
	Domain string
	APIKey string
	// Sender is the From header, e.g. "Hello Food <orders@hellofood.test>".
	Sender string
	// APIBase overrides the Mailgun endpoint (EU region, tests).
	APIBase string
	Timeout time.Duration
}

// Notifier implements notifier.Notifier.
type Notifier struct {
	client  *mg.MailgunImpl
	sender  string
	timeout time.Duration
}

func New(opts Options) *Notifier {
	client := mg.NewMailgun(opts.Domain, opts.APIKey)
	if opts.APIBase != "" {
		client.SetAPIBase(opts.APIBase)
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Notifier{
		client:  client,
		sender:  opts.Sender,
		timeout: timeout,
	}
}

func (n *Notifier) Notify(ctx context.Context, msg notifier.Message) error {
	m := n.client.NewMessage(n.sender, msg.Subject, msg.Body, msg.To)
	if msg.Kind != "" {
		if err := m.AddTag(string(msg.Kind)); err != nil {
			return fmt.Errorf("could not tag message: %w", err)
		}
	}

	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	_, id, err := n.client.Send(ctx, m)
	if err != nil {
		return fmt.Errorf("could not send %s email through mailgun: %w", msg.Kind, err)
	}

	logger.Debug(ctx, "email sent", zap.String("mailgun_id", id), zap.String("kind", string(msg.Kind)))

	return nil
}
