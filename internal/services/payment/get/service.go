package get

import (
	"context"
	"fmt"

	"github.com/orderpipe/commerce_events/internal/cache"
	"github.com/orderpipe/commerce_events/internal/domain/models"
	"github.com/orderpipe/commerce_events/pkg/logger"
)

type paymentGetter interface {
	ByID(ctx context.Context, id int64) (*models.Payment, error)
	ByPaymentID(ctx context.Context, paymentID string) (*models.Payment, error)
	ByOrderID(ctx context.Context, orderID string) ([]models.Payment, error)
	All(ctx context.Context) ([]models.Payment, error)
}

type Service struct {
	log   logger.Logger
	cache *cache.Cache[string, *models.Payment]

	payments paymentGetter
}

func New(log logger.Logger, paymentCache *cache.Cache[string, *models.Payment], payments paymentGetter) *Service {
	return &Service{
		log:      log,
		cache:    paymentCache,
		payments: payments,
	}
}

func (s *Service) ByID(ctx context.Context, id int64) (*models.Payment, error) {
	const op = "services.payment.get.ByID"

	payment, err := s.payments.ByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return payment, nil
}

// ByPaymentID is the hot lookup of the read API; committed rows never change,
// which makes them safe to serve from the LRU.
func (s *Service) ByPaymentID(ctx context.Context, paymentID string) (*models.Payment, error) {
	const op = "services.payment.get.ByPaymentID"

	if payment, ok := s.cache.Get(paymentID); ok && payment != nil {
		return payment, nil
	}

	payment, err := s.payments.ByPaymentID(ctx, paymentID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	_ = s.cache.Add(paymentID, payment)
	s.log.DebugContext(ctx, op, logger.String("payment_id", paymentID), logger.String("cache", "updated"))

	return payment, nil
}

func (s *Service) ByOrderID(ctx context.Context, orderID string) ([]models.Payment, error) {
	const op = "services.payment.get.ByOrderID"

	payments, err := s.payments.ByOrderID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return payments, nil
}

func (s *Service) All(ctx context.Context) ([]models.Payment, error) {
	const op = "services.payment.get.All"

	payments, err := s.payments.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return payments, nil
}
