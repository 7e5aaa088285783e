package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// OrderIDMetadataKey is the processor metadata key that carries the order id
// from session creation to the charge webhooks.
const OrderIDMetadataKey = "orderId"

// MaxUnitAmount is the largest per-unit amount, in minor units, the processor
// accepts on a line item.
const MaxUnitAmount = 99999999

var maxUnitAmount = decimal.NewFromInt(MaxUnitAmount)

type Currency string

// IsValid reports whether c looks like an ISO 4217 code in the lowercase form
// the processor expects.
func (c Currency) IsValid() bool {
	if len(c) != 3 {
		return false
	}
	for _, r := range c {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

type LineItem struct {
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int64
}

// CheckoutSessionRequest is the order data sent to the processor when a
// checkout session is opened.
type CheckoutSessionRequest struct {
	OrderID        string
	Currency       Currency
	Items          []LineItem
	IdempotencyKey string
}

type CheckoutSessionResult struct {
	CancelURL  string `json:"cancelUrl"`
	SuccessURL string `json:"successUrl"`
	URL        string `json:"url"`
}

// ValidationError reports a request the processor would reject anyway.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (r *CheckoutSessionRequest) Validate() error {
	if strings.TrimSpace(r.OrderID) == "" {
		return &ValidationError{Field: "orderId", Reason: "order ID is required"}
	}
	if !r.Currency.IsValid() {
		return &ValidationError{Field: "currency", Reason: fmt.Sprintf("unsupported currency %q", r.Currency)}
	}
	if len(r.Items) == 0 {
		return &ValidationError{Field: "items", Reason: "at least one item is required"}
	}
	for i, item := range r.Items {
		if strings.TrimSpace(item.Name) == "" {
			return &ValidationError{Field: fmt.Sprintf("items[%d].name", i), Reason: "name is required"}
		}
		if !item.UnitPrice.IsPositive() {
			return &ValidationError{Field: fmt.Sprintf("items[%d].price", i), Reason: "price must be greater than zero"}
		}
		if item.UnitPrice.Shift(2).Round(0).GreaterThan(maxUnitAmount) {
			return &ValidationError{Field: fmt.Sprintf("items[%d].price", i), Reason: "price exceeds the maximum unit amount"}
		}
		if item.Quantity < 1 {
			return &ValidationError{Field: fmt.Sprintf("items[%d].quantity", i), Reason: "quantity must be at least 1"}
		}
	}

	return nil
}
