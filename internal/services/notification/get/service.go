package get

import (
	"context"
	"fmt"

	"github.com/orderpipe/commerce_events/internal/domain/models"
	"github.com/orderpipe/commerce_events/pkg/logger"
)

type notificationGetter interface {
	ByID(ctx context.Context, id int64) (*models.Notification, error)
	ByNotificationID(ctx context.Context, notificationID string) (*models.Notification, error)
	ByOrderID(ctx context.Context, orderID string) ([]models.Notification, error)
	All(ctx context.Context) ([]models.Notification, error)
}

type Service struct {
	log logger.Logger

	notifications notificationGetter
}

func New(log logger.Logger, notifications notificationGetter) *Service {
	return &Service{
		log:           log,
		notifications: notifications,
	}
}

func (s *Service) ByID(ctx context.Context, id int64) (*models.Notification, error) {
	const op = "services.notification.get.ByID"

	notification, err := s.notifications.ByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return notification, nil
}

func (s *Service) ByNotificationID(ctx context.Context, notificationID string) (*models.Notification, error) {
	const op = "services.notification.get.ByNotificationID"

	notification, err := s.notifications.ByNotificationID(ctx, notificationID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return notification, nil
}

func (s *Service) ByOrderID(ctx context.Context, orderID string) ([]models.Notification, error) {
	const op = "services.notification.get.ByOrderID"

	notifications, err := s.notifications.ByOrderID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return notifications, nil
}

func (s *Service) All(ctx context.Context) ([]models.Notification, error) {
	const op = "services.notification.get.All"

	notifications, err := s.notifications.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return notifications, nil
}
