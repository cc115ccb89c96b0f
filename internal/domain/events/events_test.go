package events

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func validOrderEvent() OrderEvent {
	return OrderEvent{
		OrderID:         "O1",
		CustomerID:      "C1",
		CustomerName:    "Jane Doe",
		CustomerEmail:   "jane@example.com",
		ShippingAddress: "1 Main St",
		Items: []OrderItem{
			{ProductID: "P1", ProductName: "Widget", Quantity: 2, Price: 75.0},
		},
		TotalAmount: 150.0,
		Status:      "CREATED",
	}
}

func TestOrderEventValidate(t *testing.T) {
	tCases := []struct {
		name    string
		mutate  func(e *OrderEvent)
		wantErr bool
	}{
		{
			name:   "valid",
			mutate: func(e *OrderEvent) {},
		},
		{
			name:   "negative_total_is_valid",
			mutate: func(e *OrderEvent) { e.TotalAmount = -5.0 },
		},
		{
			name:   "zero_total_is_valid",
			mutate: func(e *OrderEvent) { e.TotalAmount = 0 },
		},
		{
			name:   "no_items_is_valid",
			mutate: func(e *OrderEvent) { e.Items = nil },
		},
		{
			name:    "missing_order_id",
			mutate:  func(e *OrderEvent) { e.OrderID = "" },
			wantErr: true,
		},
		{
			name:    "missing_customer_id",
			mutate:  func(e *OrderEvent) { e.CustomerID = "" },
			wantErr: true,
		},
		{
			name:    "bad_email",
			mutate:  func(e *OrderEvent) { e.CustomerEmail = "not-an-email" },
			wantErr: true,
		},
		{
			name:    "item_zero_quantity",
			mutate:  func(e *OrderEvent) { e.Items[0].Quantity = 0 },
			wantErr: true,
		},
		{
			name:    "item_zero_price",
			mutate:  func(e *OrderEvent) { e.Items[0].Price = 0 },
			wantErr: true,
		},
	}

	for _, tCase := range tCases {
		t.Run(tCase.name, func(t *testing.T) {
			event := validOrderEvent()
			tCase.mutate(&event)

			err := event.Validate()
			if tCase.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestPaymentEventValidate(t *testing.T) {
	tCases := []struct {
		name    string
		mutate  func(e *PaymentEvent)
		wantErr bool
	}{
		{
			name:   "valid",
			mutate: func(e *PaymentEvent) {},
		},
		{
			name:   "negative_amount_is_valid",
			mutate: func(e *PaymentEvent) { e.Amount = -5.0 },
		},
		{
			name:    "missing_payment_id",
			mutate:  func(e *PaymentEvent) { e.PaymentID = "" },
			wantErr: true,
		},
		{
			name:    "missing_order_id",
			mutate:  func(e *PaymentEvent) { e.OrderID = "" },
			wantErr: true,
		},
		{
			name:    "missing_status",
			mutate:  func(e *PaymentEvent) { e.Status = "" },
			wantErr: true,
		},
	}

	for _, tCase := range tCases {
		t.Run(tCase.name, func(t *testing.T) {
			event := PaymentEvent{
				PaymentID:     "PAY-1",
				OrderID:       "O1",
				CustomerID:    "C1",
				Amount:        150.0,
				Status:        PaymentStatusCompleted,
				PaymentMethod: "CREDIT_CARD",
			}
			tCase.mutate(&event)

			err := event.Validate()
			if tCase.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}
