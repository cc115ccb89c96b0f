package payment

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/orderpipe/commerce_events/internal/domain/events"
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

// Save commits the payment and its outbox row in a single transaction.
// The insert is an upsert on payment_id: a redelivered order event lands on
// the existing row and queues no second outbox message. The returned record
// is read back from the table, so the relayed event always reflects
// committed state.
func (r *Repository) Save(ctx context.Context, payment *models.Payment) (*models.Payment, error) {
	const op = "repository.payment.Save"

	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		r.log.Error(op, logger.String("error", err.Error()))
		return nil, fmt.Errorf("%s: begin transaction: %w", op, err)
	}
	defer func() {
		if err != nil {
			if rollBackErr := tx.Rollback(); rollBackErr != nil && !errors.Is(rollBackErr, sql.ErrTxDone) {
				r.log.Error(op, logger.String("rollback error", rollBackErr.Error()))
			}
		}
	}()

	const paymentQuery = `
		INSERT INTO payments (payment_id, order_id, customer_id, amount, status, payment_method, payment_date)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (payment_id) DO NOTHING
	`

	res, err := tx.ExecContext(ctx, paymentQuery,
		payment.PaymentID,
		payment.OrderID,
		payment.CustomerID,
		payment.Amount,
		payment.Status,
		payment.PaymentMethod,
		payment.PaymentDate,
	)
	if err != nil {
		r.log.Error(op, logger.String("error", err.Error()))
		return nil, fmt.Errorf("%s: insert payment: %w", op, err)
	}

	inserted, err := res.RowsAffected()
	if err != nil {
		r.log.Error(op, logger.String("error", err.Error()))
		return nil, fmt.Errorf("%s: rows affected: %w", op, err)
	}

	const selectQuery = `
		SELECT id, payment_id, order_id, customer_id, amount, status, payment_method, payment_date
			FROM payments
			WHERE payment_id = $1
	`

	var committed models.Payment
	if err = tx.GetContext(ctx, &committed, selectQuery, payment.PaymentID); err != nil {
		r.log.Error(op, logger.String("error", err.Error()))
		return nil, fmt.Errorf("%s: select committed payment: %w", op, err)
	}

	if inserted == 1 {
		if err = r.insertOutbox(ctx, tx, &committed); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	if err = tx.Commit(); err != nil {
		r.log.Error(op, logger.String("error", err.Error()))
		return nil, fmt.Errorf("%s: commit transaction: %w", op, err)
	}

	return &committed, nil
}

func (r *Repository) insertOutbox(ctx context.Context, tx *sqlx.Tx, payment *models.Payment) error {
	event := events.PaymentEvent{
		PaymentID:     payment.PaymentID,
		OrderID:       payment.OrderID,
		CustomerID:    payment.CustomerID,
		Amount:        payment.Amount,
		Status:        payment.Status,
		PaymentMethod: payment.PaymentMethod,
	}

	payload, err := json.Marshal(event)
	if err != nil {
		r.log.Error("repository.payment.insertOutbox", logger.String("error", err.Error()))
		return fmt.Errorf("marshal payment event: %w", err)
	}

	eventUUID, err := uuid.NewUUID()
	if err != nil {
		return fmt.Errorf("event_uuid generate error: %w", err)
	}

	const outboxQuery = `INSERT INTO payment_outbox (event_uuid, order_id, payload) VALUES ($1, $2, $3)`

	if _, err = tx.ExecContext(ctx, outboxQuery, eventUUID, payment.OrderID, payload); err != nil {
		r.log.Error("repository.payment.insertOutbox", logger.String("error", err.Error()))
		return fmt.Errorf("outbox insert error: %w", err)
	}

	return nil
}

func (r *Repository) ByID(ctx context.Context, id int64) (*models.Payment, error) {
	const op = "repository.payment.ByID"

	const query = `
		SELECT id, payment_id, order_id, customer_id, amount, status, payment_method, payment_date
			FROM payments
			WHERE id = $1
	`

	var payment models.Payment
	if err := r.db.GetContext(ctx, &payment, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, internal_errors.ErrPaymentNotFound)
		}
		r.log.Error(op, logger.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &payment, nil
}

func (r *Repository) ByPaymentID(ctx context.Context, paymentID string) (*models.Payment, error) {
	const op = "repository.payment.ByPaymentID"

	const query = `
		SELECT id, payment_id, order_id, customer_id, amount, status, payment_method, payment_date
			FROM payments
			WHERE payment_id = $1
	`

	var payment models.Payment
	if err := r.db.GetContext(ctx, &payment, query, paymentID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, internal_errors.ErrPaymentNotFound)
		}
		r.log.Error(op, logger.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &payment, nil
}

func (r *Repository) ByOrderID(ctx context.Context, orderID string) ([]models.Payment, error) {
	const op = "repository.payment.ByOrderID"

	const query = `
		SELECT id, payment_id, order_id, customer_id, amount, status, payment_method, payment_date
			FROM payments
			WHERE order_id = $1
			ORDER BY id
	`

	payments := make([]models.Payment, 0)
	if err := r.db.SelectContext(ctx, &payments, query, orderID); err != nil {
		r.log.Error(op, logger.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return payments, nil
}

func (r *Repository) All(ctx context.Context) ([]models.Payment, error) {
	const op = "repository.payment.All"

	const query = `
		SELECT id, payment_id, order_id, customer_id, amount, status, payment_method, payment_date
			FROM payments
			ORDER BY id
	`

	payments := make([]models.Payment, 0)
	if err := r.db.SelectContext(ctx, &payments, query); err != nil {
		r.log.Error(op, logger.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return payments, nil
}
