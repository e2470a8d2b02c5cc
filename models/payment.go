package models

import "time"

// PaymentRequest describes a single charge, here always the concierge deposit.
type PaymentRequest struct {
	Amount      float64
	Currency    string
	Card        PaymentInfo
	Idempotency string
	Description string
	Metadata    map[string]string
}

// Invoice is the result of a processed payment.
type Invoice struct {
	InvoiceID string    `json:"invoiceId"`
	Amount    float64   `json:"amount"`
	Currency  string    `json:"currency"`
	Status    string    `json:"status"` // "pending", "paid", "failed"
	PaymentID string    `json:"paymentId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Error     string    `json:"error,omitempty"`
}
