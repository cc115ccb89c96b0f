package errors

import "errors"

var (
	ErrPaymentNotFound      = errors.New("payment not found")
	ErrNotificationNotFound = errors.New("notification not found")

	// ErrPermanentFailure marks a message that can never be processed
	// successfully. The consumer runtime routes such messages to the
	// dead-letter topic instead of retrying them.
	ErrPermanentFailure = errors.New("permanent failure processing message")
)
