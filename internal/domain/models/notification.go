package models

import "time"

// Notification is the record owned by the notification service. Append-only,
// one row per (topic, order) pair.
type Notification struct {
	ID             int64     `db:"id" json:"id"`
	NotificationID string    `db:"notification_id" json:"notificationId"`
	OrderID        string    `db:"order_id" json:"orderId"`
	CustomerID     string    `db:"customer_id" json:"customerId"`
	CustomerEmail  string    `db:"customer_email" json:"customerEmail"`
	Message        string    `db:"message" json:"message"`
	Status         string    `db:"status" json:"status"`
	SentAt         time.Time `db:"sent_at" json:"sentAt"`
}
