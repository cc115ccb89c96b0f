// Package events holds the wire types carried on the bus topics. The JSON
// field names are the contract shared with the external order producer.
package events

import (
	"github.com/go-playground/validator/v10"
)

const (
	OrderEventTopic   = "orders"
	PaymentEventTopic = "payments"
)

const (
	PaymentStatusCompleted = "COMPLETED"
	PaymentStatusFailed    = "FAILED"

	NotificationStatusSent = "SENT"
)

type EventType string

const (
	OrderCreated     EventType = "ORDER_CREATED"
	PaymentProcessed EventType = "PAYMENT_PROCESSED"
)

var validate = validator.New()

type OrderEvent struct {
	OrderID         string      `json:"orderId" validate:"required"`
	CustomerID      string      `json:"customerId" validate:"required"`
	CustomerName    string      `json:"customerName" validate:"required"`
	CustomerEmail   string      `json:"customerEmail" validate:"required,email"`
	ShippingAddress string      `json:"shippingAddress" validate:"required"`
	Items           []OrderItem `json:"items" validate:"omitempty,dive"`
	// TotalAmount carries no validation tag: a non-positive amount is a
	// valid event that downstream classifies as a failed payment.
	TotalAmount float64 `json:"totalAmount"`
	Status      string  `json:"status" validate:"required"`
}

type OrderItem struct {
	ProductID   string  `json:"productId" validate:"required"`
	ProductName string  `json:"productName" validate:"required"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity" validate:"required,gt=0"`
	Price       float64 `json:"price" validate:"required,gt=0"`
}

type PaymentEvent struct {
	PaymentID     string  `json:"paymentId" validate:"required"`
	OrderID       string  `json:"orderId" validate:"required"`
	CustomerID    string  `json:"customerId" validate:"required"`
	Amount        float64 `json:"amount"`
	Status        string  `json:"status" validate:"required"`
	PaymentMethod string  `json:"paymentMethod" validate:"required"`
}

// NotificationEvent is the payload handed to the delivery sink. It never
// crosses a topic boundary.
type NotificationEvent struct {
	EventType EventType `json:"eventType"`
	Message   string    `json:"message"`
}

func (e *OrderEvent) Validate() error {
	return validate.Struct(e)
}

func (e *PaymentEvent) Validate() error {
	return validate.Struct(e)
}
