package service

import (
	"context"
	"time"

	"github.com/jeffleon2/draftea-payments-gateway/internal/metrics"
	"github.com/jeffleon2/draftea-payments-gateway/internal/models"
	"github.com/jeffleon2/draftea-payments-gateway/internal/models/dto"
	"github.com/sirupsen/logrus"
)

// Gateway opens checkout sessions with the payment processor.
type Gateway interface {
	CreateSession(ctx context.Context, req models.CheckoutSessionRequest) (*models.CheckoutSessionResult, error)
}

// Verifier authenticates a raw webhook delivery and decodes its event.
type Verifier interface {
	Verify(payload []byte, header string, now time.Time) (*models.VerifiedEvent, error)
}

// Publisher hands a domain event to the broker without waiting for delivery.
type Publisher interface {
	Publish(ctx context.Context, topic, key string, message interface{}) error
}

// PaymentService opens checkout sessions and turns processor webhooks into
// domain events.
type PaymentService struct {
	Gateway   Gateway
	Verifier  Verifier
	Publisher Publisher
	Topic     string
	Now       func() time.Time
}

func NewPaymentService(gateway Gateway, verifier Verifier, publisher Publisher, topic string) *PaymentService {
	if topic == "" {
		topic = models.PaymentSucceededTopic
	}

	return &PaymentService{
		Gateway:   gateway,
		Verifier:  verifier,
		Publisher: publisher,
		Topic:     topic,
		Now:       time.Now,
	}
}

// CreatePaymentSession validates the order and opens a hosted checkout
// session for it. Processor failures are returned as *gateway.UpstreamError.
func (s *PaymentService) CreatePaymentSession(ctx context.Context, sessionDTO *dto.PaymentSession) (*models.CheckoutSessionResult, error) {
	sessionDTO.Sanitize()
	req := sessionDTO.ToEntity()
	if err := req.Validate(); err != nil {
		metrics.CheckoutSessionsTotal.WithLabelValues("invalid").Inc()
		return nil, err
	}

	result, err := s.Gateway.CreateSession(ctx, *req)
	if err != nil {
		metrics.CheckoutSessionsTotal.WithLabelValues("failed").Inc()
		logrus.WithField("order_id", req.OrderID).WithError(err).Error("error creating checkout session")
		return nil, err
	}

	metrics.CheckoutSessionsTotal.WithLabelValues("created").Inc()
	metrics.CheckoutSessionAmounts.WithLabelValues(string(req.Currency)).Observe(orderTotal(req))

	return result, nil
}

func orderTotal(req *models.CheckoutSessionRequest) float64 {
	var total float64
	for _, item := range req.Items {
		total += item.UnitPrice.InexactFloat64() * float64(item.Quantity)
	}
	return total
}
