// Package send is the delivery sink. A real deployment would plug an
// email/SMS gateway in here; this implementation writes to the log.
package send

import (
	"context"

	"github.com/orderpipe/commerce_events/internal/domain/events"
	"github.com/orderpipe/commerce_events/pkg/logger"
)

type LogSender struct {
	log logger.Logger
}

func NewLogSender(log logger.Logger) *LogSender {
	return &LogSender{log: log}
}

func (s *LogSender) Send(ctx context.Context, email string, event events.NotificationEvent) error {
	s.log.InfoContext(ctx, "sending notification",
		logger.String("to", email),
		logger.String("event_type", string(event.EventType)),
		logger.String("message", event.Message),
	)

	return nil
}
