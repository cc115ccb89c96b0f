package notification

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/orderpipe/commerce_events/internal/domain/models"
	internal_errors "github.com/orderpipe/commerce_events/internal/lib/errors"
	"github.com/orderpipe/commerce_events/pkg/logger"
)

type Repository struct {
	log logger.Logger
	db  *sqlx.DB
}

func New(log logger.Logger, db *sqlx.DB) *Repository {
	return &Repository{
		log: log,
		db:  db,
	}
}

// Save upserts on notification_id and returns the committed row, so a
// redelivered event maps onto the record created by its first delivery.
func (r *Repository) Save(ctx context.Context, notification *models.Notification) (*models.Notification, error) {
	const op = "repository.notification.Save"

	const insertQuery = `
		INSERT INTO notifications (notification_id, order_id, customer_id, customer_email, message, status, sent_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (notification_id) DO NOTHING
	`

	if _, err := r.db.ExecContext(ctx, insertQuery,
		notification.NotificationID,
		notification.OrderID,
		notification.CustomerID,
		notification.CustomerEmail,
		notification.Message,
		notification.Status,
		notification.SentAt,
	); err != nil {
		r.log.Error(op, logger.String("error", err.Error()))
		return nil, fmt.Errorf("%s: insert notification: %w", op, err)
	}

	const selectQuery = `
		SELECT id, notification_id, order_id, customer_id, customer_email, message, status, sent_at
			FROM notifications
			WHERE notification_id = $1
	`

	var committed models.Notification
	if err := r.db.GetContext(ctx, &committed, selectQuery, notification.NotificationID); err != nil {
		r.log.Error(op, logger.String("error", err.Error()))
		return nil, fmt.Errorf("%s: select committed notification: %w", op, err)
	}

	return &committed, nil
}

func (r *Repository) ByID(ctx context.Context, id int64) (*models.Notification, error) {
	const op = "repository.notification.ByID"

	const query = `
		SELECT id, notification_id, order_id, customer_id, customer_email, message, status, sent_at
			FROM notifications
			WHERE id = $1
	`

	var notification models.Notification
	if err := r.db.GetContext(ctx, &notification, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, internal_errors.ErrNotificationNotFound)
		}
		r.log.Error(op, logger.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &notification, nil
}

func (r *Repository) ByNotificationID(ctx context.Context, notificationID string) (*models.Notification, error) {
	const op = "repository.notification.ByNotificationID"

	const query = `
		SELECT id, notification_id, order_id, customer_id, customer_email, message, status, sent_at
			FROM notifications
			WHERE notification_id = $1
	`

	var notification models.Notification
	if err := r.db.GetContext(ctx, &notification, query, notificationID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, internal_errors.ErrNotificationNotFound)
		}
		r.log.Error(op, logger.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &notification, nil
}

func (r *Repository) ByOrderID(ctx context.Context, orderID string) ([]models.Notification, error) {
	const op = "repository.notification.ByOrderID"

	const query = `
		SELECT id, notification_id, order_id, customer_id, customer_email, message, status, sent_at
			FROM notifications
			WHERE order_id = $1
			ORDER BY id
	`

	notifications := make([]models.Notification, 0)
	if err := r.db.SelectContext(ctx, &notifications, query, orderID); err != nil {
		r.log.Error(op, logger.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return notifications, nil
}

func (r *Repository) All(ctx context.Context) ([]models.Notification, error) {
	const op = "repository.notification.All"

	const query = `
		SELECT id, notification_id, order_id, customer_id, customer_email, message, status, sent_at
			FROM notifications
			ORDER BY id
	`

	notifications := make([]models.Notification, 0)
	if err := r.db.SelectContext(ctx, &notifications, query); err != nil {
		r.log.Error(op, logger.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return notifications, nil
}
