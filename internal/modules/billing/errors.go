package billing

import "errors"

var (
	ErrInvoiceNotFound  = errors.New("invoice not found")
	ErrPaymentNotFound  = errors.New("payment not found")
	ErrInvoiceCancelled = errors.New("invoice is cancelled")
	ErrInvalidAmount    = errors.New("payment amount must be greater than zero")
	ErrOverpayment      = errors.New("payment exceeds outstanding invoice balance")
	ErrValidation       = errors.New("validation error")
)
