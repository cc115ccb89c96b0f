// Package send drains the payment outbox to the payments topic.
package send

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/IBM/sarama"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/orderpipe/commerce_events/internal/domain/models"
	"github.com/orderpipe/commerce_events/pkg/logger"
)

const messageSendLimit = 100

type Service struct {
	log      logger.Logger
	db       *sqlx.DB
	producer sarama.SyncProducer
	topic    string
}

func New(log logger.Logger, db *sqlx.DB, producer sarama.SyncProducer, topic string) *Service {
	return &Service{
		log:      log,
		db:       db,
		producer: producer,
		topic:    topic,
	}
}

// Send publishes a batch of unsent outbox rows. Rows are marked sent before
// the broker handoff, inside the same transaction: if the database fails the
// transaction rolls back and nothing was published; if the process dies after
// SendMessages but before commit, the batch is re-sent on the next run.
// The outbound leg is therefore at-least-once, keyed by order_id so per-order
// ordering survives re-partitioning.
func (s *Service) Send(ctx context.Context) (err error) {
	const op = "services.outbox.send.Send"

	tx, err := s.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("%s: begin transaction: %w", op, err)
	}
	defer func() {
		if err != nil {
			if rollBackErr := tx.Rollback(); rollBackErr != nil && !errors.Is(rollBackErr, sql.ErrTxDone) {
				s.log.Error(op, logger.String("rollback error", rollBackErr.Error()))
				err = errors.Join(err, rollBackErr)
			}
		}
	}()

	const selectQuery = `
		SELECT id, event_uuid, order_id, payload
			FROM payment_outbox
			WHERE sent = FALSE
			ORDER BY id
			LIMIT $1
	`

	var unsent []models.OutboxMessage
	if err = tx.SelectContext(ctx, &unsent, selectQuery, messageSendLimit); err != nil {
		s.log.Error(op, logger.String("error", err.Error()))
		return fmt.Errorf("%s: select outbox: %w", op, err)
	}

	if len(unsent) == 0 {
		return tx.Commit()
	}

	saramaMessages := make([]*sarama.ProducerMessage, 0, len(unsent))
	messageIDs := make([]int64, 0, len(unsent))

	for _, msg := range unsent {
		saramaMessages = append(saramaMessages, &sarama.ProducerMessage{
			Topic: s.topic,
			Key:   sarama.StringEncoder(msg.OrderID),
			Value: sarama.ByteEncoder(msg.Payload),
		})

		messageIDs = append(messageIDs, msg.ID)
	}

	const updateQuery = `UPDATE payment_outbox SET sent = TRUE WHERE id = ANY($1)`

	if _, err = tx.ExecContext(ctx, updateQuery, pq.Array(messageIDs)); err != nil {
		s.log.Error(op, logger.String("error", err.Error()))
		return fmt.Errorf("%s: update outbox: %w", op, err)
	}

	if err = s.producer.SendMessages(saramaMessages); err != nil {
		s.log.Error(op, logger.String("error", err.Error()))
		return fmt.Errorf("%s: send messages: %w", op, err)
	}

	s.log.Info(op, logger.Int("messages sent", len(saramaMessages)))

	return tx.Commit()
}
