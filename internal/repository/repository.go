// Package repository declares the persistence contracts of both services.
// Implementations live in the per-aggregate subpackages; mocks for the
// consumer-side tests are generated into ./mocks.
package repository

import (
	"context"

	"github.com/orderpipe/commerce_events/internal/domain/models"
)

//go:generate mockgen -destination=mocks/mocks.go -package=mocks . PaymentSaver,PaymentGetter,NotificationSaver,NotificationGetter

type PaymentSaver interface {
	// Save commits the payment together with its outbox row in one
	// transaction and returns the committed record. Saving the same
	// payment_id twice returns the already committed row.
	Save(ctx context.Context, payment *models.Payment) (*models.Payment, error)
}

type PaymentGetter interface {
	ByID(ctx context.Context, id int64) (*models.Payment, error)
	ByPaymentID(ctx context.Context, paymentID string) (*models.Payment, error)
	ByOrderID(ctx context.Context, orderID string) ([]models.Payment, error)
	All(ctx context.Context) ([]models.Payment, error)
}

type NotificationSaver interface {
	Save(ctx context.Context, notification *models.Notification) (*models.Notification, error)
}

type NotificationGetter interface {
	ByID(ctx context.Context, id int64) (*models.Notification, error)
	ByNotificationID(ctx context.Context, notificationID string) (*models.Notification, error)
	ByOrderID(ctx context.Context, orderID string) ([]models.Notification, error)
	All(ctx context.Context) ([]models.Notification, error)
}
