package models

import "time"

// Payment is the record owned by the payment service. Rows are append-only:
// created once per order and never updated or deleted.
type Payment struct {
	ID            int64     `db:"id" json:"id"`
	PaymentID     string    `db:"payment_id" json:"paymentId"`
	OrderID       string    `db:"order_id" json:"orderId"`
	CustomerID    string    `db:"customer_id" json:"customerId"`
	Amount        float64   `db:"amount" json:"amount"`
	Status        string    `db:"status" json:"status"`
	PaymentMethod string    `db:"payment_method" json:"paymentMethod"`
	PaymentDate   time.Time `db:"payment_date" json:"paymentDate"`
}
