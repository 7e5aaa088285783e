package models

import "encoding/json"

const (
	PaymentSucceededTopic = "payment.succeeded"
)

// VerifiedEvent is a processor event whose signature has been checked.
// Data holds the raw "data.object" of the envelope.
type VerifiedEvent struct {
	ID      string
	Type    string
	Created int64
	Data    json.RawMessage
}

type PaymentSucceededEvent struct {
	StripePaymentID string `json:"stripePaymentId"`
	OrderID         string `json:"orderId"`
	ReceiptURL      string `json:"receiptUrl"`
}
