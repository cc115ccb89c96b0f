// Package process derives notifications from inbound order and payment
// events, persists them, and hands them to the delivery sink.
package process

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/orderpipe/commerce_events/internal/domain/events"
	"github.com/orderpipe/commerce_events/internal/domain/models"
	"github.com/orderpipe/commerce_events/pkg/logger"
)

// Distinct namespaces per source topic: one order produces one notification
// per topic, each with a deterministic identity.
var (
	orderNotificationNamespace   = uuid.MustParse("3f2c7f10-4b83-4f2e-9d15-8a2f0b6d7c01")
	paymentNotificationNamespace = uuid.MustParse("c81d4f2e-1b6a-4e0f-9a37-5d90e2b4a602")
)

type notificationSaver interface {
	Save(ctx context.Context, notification *models.Notification) (*models.Notification, error)
}

type notificationSender interface {
	Send(ctx context.Context, email string, event events.NotificationEvent) error
}

type Service struct {
	log logger.Logger

	notifications notificationSaver
	sender        notificationSender
	fallbackEmail string
}

func New(log logger.Logger, notifications notificationSaver, sender notificationSender, fallbackEmail string) *Service {
	return &Service{
		log:           log,
		notifications: notifications,
		sender:        sender,
		fallbackEmail: fallbackEmail,
	}
}

// ProcessOrder persists an order-confirmation notification and fires the
// delivery. Delivery is fire-and-forget: a sink failure is logged, never
// surfaced, so the bus does not redeliver an already persisted notification.
func (s *Service) ProcessOrder(ctx context.Context, event *events.OrderEvent) (*models.Notification, error) {
	const op = "services.notification.process.ProcessOrder"

	notification := &models.Notification{
		NotificationID: uuid.NewSHA1(orderNotificationNamespace, []byte(event.OrderID)).String(),
		OrderID:        event.OrderID,
		CustomerID:     event.CustomerID,
		CustomerEmail:  event.CustomerEmail,
		Message:        fmt.Sprintf("Your order has been created with ID: %s", event.OrderID),
		Status:         events.NotificationStatusSent,
		SentAt:         time.Now().UTC(),
	}

	committed, err := s.notifications.Save(ctx, notification)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.deliver(ctx, op, events.OrderCreated, committed)

	return committed, nil
}

// ProcessPayment persists a payment-status notification. The payment event
// carries no customer email; the configured fallback address stands in for a
// customer lookup this service does not have.
func (s *Service) ProcessPayment(ctx context.Context, event *events.PaymentEvent) (*models.Notification, error) {
	const op = "services.notification.process.ProcessPayment"

	notification := &models.Notification{
		NotificationID: uuid.NewSHA1(paymentNotificationNamespace, []byte(event.OrderID)).String(),
		OrderID:        event.OrderID,
		CustomerID:     event.CustomerID,
		CustomerEmail:  s.fallbackEmail,
		Message:        fmt.Sprintf("Payment for order %s is %s", event.OrderID, event.Status),
		Status:         events.NotificationStatusSent,
		SentAt:         time.Now().UTC(),
	}

	committed, err := s.notifications.Save(ctx, notification)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.deliver(ctx, op, events.PaymentProcessed, committed)

	return committed, nil
}

func (s *Service) deliver(ctx context.Context, op string, eventType events.EventType, notification *models.Notification) {
	err := s.sender.Send(ctx, notification.CustomerEmail, events.NotificationEvent{
		EventType: eventType,
		Message:   notification.Message,
	})
	if err != nil {
		s.log.WarnContext(ctx, op,
			logger.String("notification_id", notification.NotificationID),
			logger.String("send error", err.Error()),
		)
	}
}
