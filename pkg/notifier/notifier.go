// Package notifier sends customer notifications. Delivery is fire-and-forget:
// callers log a failed Notify and carry on.
//
//go:generate mockgen -package mocknotifier -source=notifier.go -destination=mock/mocknotifier.go
package notifier

import (
	"context"
	"fmt"
	"hellofood/pkg/domain"
	"hellofood/pkg/logger"

	"go.uber.org/zap"
)

// Kind tells which event a message announces.
type Kind string

const (
	KindDispatched Kind = "dispatched"
	KindAlmostHere Kind = "almost_here"
)

// Message is a plain text email to a single customer.
type Message struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
	Kind    Kind   `json:"kind"`
}

// Notifier delivers a message or reports why it could not.
type Notifier interface {
	Notify(ctx context.Context, msg Message) error
}

// Dispatched announces that the first handling event of a delivery was recorded.
func Dispatched(user domain.User, deliveryID domain.DeliveryID) Message {
	return Message{
		To:      user.Email,
		Subject: "Your order is on its way!",
		Body:    fmt.Sprintf("Hi %s, delivery #%d has left our kitchen.", user.Name, deliveryID),
		Kind:    KindDispatched,
	}
}

// AlmostHere announces that a delivery is heading to the customer's address.
func AlmostHere(user domain.User, deliveryID domain.DeliveryID) Message {
	return Message{
		To:      user.Email,
		Subject: "Your order is almost here!",
		Body:    fmt.Sprintf("Hi %s, delivery #%d is on its final leg to you.", user.Name, deliveryID),
		Kind:    KindAlmostHere,
	}
}

// Log only writes messages to the context logger. It is used when no email
// provider is configured.
type Log struct{}

func (Log) Notify(ctx context.Context, msg Message) error {
	logger.Info(ctx, "customer notification",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.String("kind", string(msg.Kind)),
	)

	return nil
}
