package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// OutboxMessage is a to-be-published payment event written in the same
// transaction as its payment row. The relay drains unsent rows to the
// payments topic.
type OutboxMessage struct {
	ID        int64           `db:"id"`
	EventUUID uuid.UUID       `db:"event_uuid"`
	OrderID   string          `db:"order_id"`
	Payload   json.RawMessage `db:"payload"`
	Sent      bool            `db:"sent"`
	CreatedAt time.Time       `db:"created_at"`
}
