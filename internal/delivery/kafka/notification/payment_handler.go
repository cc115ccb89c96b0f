package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"

	"github.com/orderpipe/commerce_events/internal/domain/events"
	"github.com/orderpipe/commerce_events/internal/domain/models"
	internal_errors "github.com/orderpipe/commerce_events/internal/lib/errors"
	"github.com/orderpipe/commerce_events/pkg/logger"
)

type paymentProcessor interface {
	ProcessPayment(ctx context.Context, event *events.PaymentEvent) (*models.Notification, error)
}

// PaymentHandler consumes the payments topic for the notification service.
type PaymentHandler struct {
	log logger.Logger

	notifications paymentProcessor
}

func NewPaymentHandler(log logger.Logger, notifications paymentProcessor) *PaymentHandler {
	return &PaymentHandler{
		log:           log,
		notifications: notifications,
	}
}

func (h *PaymentHandler) Handle(ctx context.Context, msg *sarama.ConsumerMessage) error {
	const op = "delivery.kafka.notification.PaymentHandler"

	var event events.PaymentEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return fmt.Errorf("%w: decode payment event: %v", internal_errors.ErrPermanentFailure, err)
	}

	if err := event.Validate(); err != nil {
		return fmt.Errorf("%w: invalid payment event: %v", internal_errors.ErrPermanentFailure, err)
	}

	h.log.InfoContext(ctx, op,
		logger.String("order_id", event.OrderID),
		logger.String("payment_id", event.PaymentID),
	)

	if _, err := h.notifications.ProcessPayment(ctx, &event); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
