// Package process derives a payment from an inbound order event and commits
// it together with the outbound payment event.
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

// paymentNamespace seeds the deterministic payment identity: the same order
// always derives the same payment_id, so redelivery is an idempotent upsert.
var paymentNamespace = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

type paymentSaver interface {
	Save(ctx context.Context, payment *models.Payment) (*models.Payment, error)
}

type Service struct {
	log logger.Logger

	payments      paymentSaver
	paymentMethod string
}

func New(log logger.Logger, payments paymentSaver, paymentMethod string) *Service {
	return &Service{
		log:           log,
		payments:      payments,
		paymentMethod: paymentMethod,
	}
}

// Process classifies the order as COMPLETED or FAILED by its total amount,
// persists the derived payment and queues the payment event. The returned
// record is the committed row.
func (s *Service) Process(ctx context.Context, event *events.OrderEvent) (*models.Payment, error) {
	const op = "services.payment.process.Process"

	status := events.PaymentStatusFailed
	if event.TotalAmount > 0 {
		status = events.PaymentStatusCompleted
	}

	payment := &models.Payment{
		PaymentID:     uuid.NewSHA1(paymentNamespace, []byte(event.OrderID)).String(),
		OrderID:       event.OrderID,
		CustomerID:    event.CustomerID,
		Amount:        event.TotalAmount,
		Status:        status,
		PaymentMethod: s.paymentMethod,
		PaymentDate:   time.Now().UTC(),
	}

	committed, err := s.payments.Save(ctx, payment)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.InfoContext(ctx, op,
		logger.Int64("id", committed.ID),
		logger.String("order_id", committed.OrderID),
		logger.String("payment_id", committed.PaymentID),
		logger.String("status", committed.Status),
	)

	return committed, nil
}
