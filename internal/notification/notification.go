package notification

import (
	"context"
	"log/slog"
)

const (
	// KindPaymentConfirmed indicates an accepted payment confirmation.
	KindPaymentConfirmed = "payment_confirmed"
	// KindSubmissionReceived indicates a new exercise submission.
	KindSubmissionReceived = "submission_received"
)

// Message describes a notification payload. Destination is the recipient's
// phone number.
type Message struct {
	Kind        string
	Destination string
	Body        string
}

// Notifier delivers notifications to downstream systems. An SMS gateway
// would implement this in production.
type Notifier interface {
	Send(ctx context.Context, message Message) error
}

// LoggerNotifier is a stub implementation that writes notifications to the
// structured logger.
type LoggerNotifier struct {
	logger *slog.Logger
}

// NewLoggerNotifier constructs a logging notifier stub.
func NewLoggerNotifier(logger *slog.Logger) *LoggerNotifier {
	return &LoggerNotifier{logger: logger}
}

// Send writes the message to the logger.
func (n *LoggerNotifier) Send(_ context.Context, message Message) error {
	if n == nil || n.logger == nil {
		return nil
	}
	n.logger.Info("notification", "kind", message.Kind, "destination", message.Destination, "body", message.Body)
	return nil
}
