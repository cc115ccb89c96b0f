package payment

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/IBM/sarama"
	"github.com/stretchr/testify/require"

	"github.com/orderpipe/commerce_events/internal/domain/events"
	"github.com/orderpipe/commerce_events/internal/domain/models"
	internal_errors "github.com/orderpipe/commerce_events/internal/lib/errors"
	"github.com/orderpipe/commerce_events/pkg/logger"
)

type fakeProcessor struct {
	processed []*events.OrderEvent
	err       error
}

func (f *fakeProcessor) Process(_ context.Context, event *events.OrderEvent) (*models.Payment, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.processed = append(f.processed, event)
	return &models.Payment{OrderID: event.OrderID}, nil
}

func orderMessage(t *testing.T, event events.OrderEvent) *sarama.ConsumerMessage {
	t.Helper()

	value, err := json.Marshal(event)
	require.NoError(t, err)

	return &sarama.ConsumerMessage{Topic: events.OrderEventTopic, Value: value}
}

func TestHandle(t *testing.T) {
	log := logger.SetupLogger("local")

	processor := &fakeProcessor{}
	h := NewOrderHandler(log, processor)

	msg := orderMessage(t, events.OrderEvent{
		OrderID:         "O1",
		CustomerID:      "C1",
		CustomerName:    "Jane Doe",
		CustomerEmail:   "jane@example.com",
		ShippingAddress: "1 Main St",
		TotalAmount:     150.0,
		Status:          "CREATED",
	})

	require.NoError(t, h.Handle(context.Background(), msg))
	require.Len(t, processor.processed, 1)
	require.Equal(t, "O1", processor.processed[0].OrderID)
}

func TestHandleMalformedPayload(t *testing.T) {
	log := logger.SetupLogger("local")

	processor := &fakeProcessor{}
	h := NewOrderHandler(log, processor)

	msg := &sarama.ConsumerMessage{Topic: events.OrderEventTopic, Value: []byte("{not json")}

	err := h.Handle(context.Background(), msg)
	require.ErrorIs(t, err, internal_errors.ErrPermanentFailure)
	require.Empty(t, processor.processed)
}

func TestHandleInvalidEvent(t *testing.T) {
	log := logger.SetupLogger("local")

	processor := &fakeProcessor{}
	h := NewOrderHandler(log, processor)

	// Missing orderId fails validation before any state mutation.
	msg := orderMessage(t, events.OrderEvent{
		CustomerID:      "C1",
		CustomerName:    "Jane Doe",
		CustomerEmail:   "jane@example.com",
		ShippingAddress: "1 Main St",
		TotalAmount:     150.0,
		Status:          "CREATED",
	})

	err := h.Handle(context.Background(), msg)
	require.ErrorIs(t, err, internal_errors.ErrPermanentFailure)
	require.Empty(t, processor.processed)
}

func TestHandleProcessorError(t *testing.T) {
	log := logger.SetupLogger("local")

	processor := &fakeProcessor{err: context.DeadlineExceeded}
	h := NewOrderHandler(log, processor)

	msg := orderMessage(t, events.OrderEvent{
		OrderID:         "O1",
		CustomerID:      "C1",
		CustomerName:    "Jane Doe",
		CustomerEmail:   "jane@example.com",
		ShippingAddress: "1 Main St",
		TotalAmount:     150.0,
		Status:          "CREATED",
	})

	err := h.Handle(context.Background(), msg)
	require.Error(t, err)
	require.NotErrorIs(t, err, internal_errors.ErrPermanentFailure)
}
