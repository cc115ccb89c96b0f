package payment

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
	Process(ctx context.Context, event *events.OrderEvent) (*models.Payment, error)
}

// OrderHandler consumes the orders topic for the payment service.
type OrderHandler struct {
	log logger.Logger

	payments paymentProcessor
}

func NewOrderHandler(log logger.Logger, payments paymentProcessor) *OrderHandler {
	return &OrderHandler{
		log:      log,
		payments: payments,
	}
}

func (h *OrderHandler) Handle(ctx context.Context, msg *sarama.ConsumerMessage) error {
	const op = "delivery.kafka.payment.OrderHandler"

	var event events.OrderEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return fmt.Errorf("%w: decode order event: %v", internal_errors.ErrPermanentFailure, err)
	}

	if err := event.Validate(); err != nil {
		return fmt.Errorf("%w: invalid order event: %v", internal_errors.ErrPermanentFailure, err)
	}

	h.log.InfoContext(ctx, op, logger.String("order_id", event.OrderID))

	if _, err := h.payments.Process(ctx, &event); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
