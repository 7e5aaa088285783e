package dto

import (
	"strings"

	"github.com/jeffleon2/draftea-payments-gateway/internal/models"
	"github.com/shopspring/decimal"
)

type PaymentSessionItem struct {
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price" binding:"required,gt=0"`
	Quantity int64   `json:"quantity" binding:"required,gte=1"`
}

type PaymentSession struct {
	OrderID        string               `json:"orderId" binding:"required"`
	Currency       string               `json:"currency" binding:"required"`
	Items          []PaymentSessionItem `json:"items" binding:"required,min=1,dive"`
	IdempotencyKey string               `json:"idempotencyKey,omitempty"`
}

func (p *PaymentSession) Sanitize() {
	p.OrderID = strings.TrimSpace(p.OrderID)
	p.Currency = strings.ToLower(strings.TrimSpace(p.Currency))
	p.IdempotencyKey = strings.TrimSpace(p.IdempotencyKey)
	for i := range p.Items {
		p.Items[i].Name = strings.TrimSpace(p.Items[i].Name)
	}
}

// ToEntity converts prices with decimal.NewFromFloat, which keeps the shortest
// decimal representation of the float (19.99 stays 19.99, not 19.98999...).
func (p *PaymentSession) ToEntity() *models.CheckoutSessionRequest {
	items := make([]models.LineItem, 0, len(p.Items))
	for _, item := range p.Items {
		items = append(items, models.LineItem{
			Name:      item.Name,
			UnitPrice: decimal.NewFromFloat(item.Price),
			Quantity:  item.Quantity,
		})
	}

	return &models.CheckoutSessionRequest{
		OrderID:        p.OrderID,
		Currency:       models.Currency(p.Currency),
		Items:          items,
		IdempotencyKey: p.IdempotencyKey,
	}
}
