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

type orderProcessor interface {
	ProcessOrder(ctx context.Context, event *events.OrderEvent) (*models.Notification, error)
}

// OrderHandler consumes the orders topic for the notification service.
type OrderHandler struct {
	log logger.Logger

	notifications orderProcessor
}

func NewOrderHandler(log logger.Logger, notifications orderProcessor) *OrderHandler {
	return &OrderHandler{
		log:           log,
		notifications: notifications,
	}
}

func (h *OrderHandler) Handle(ctx context.Context, msg *sarama.ConsumerMessage) error {
	const op = "delivery.kafka.notification.OrderHandler"

	var event events.OrderEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return fmt.Errorf("%w: decode order event: %v", internal_errors.ErrPermanentFailure, err)
	}

	if err := event.Validate(); err != nil {
		return fmt.Errorf("%w: invalid order event: %v", internal_errors.ErrPermanentFailure, err)
	}

	h.log.InfoContext(ctx, op, logger.String("order_id", event.OrderID))

	if _, err := h.notifications.ProcessOrder(ctx, &event); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
