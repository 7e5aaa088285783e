package gateway

import (
	"context"
	"net/http"
	"time"

	"github.com/jeffleon2/draftea-payments-gateway/internal/metrics"
	"github.com/jeffleon2/draftea-payments-gateway/internal/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

const opCreateCheckoutSession = "checkout.sessions.create"

type Config struct {
	SecretKey  string
	SuccessURL string
	CancelURL  string
	Timeout    time.Duration
	// APIURL overrides the Stripe API base URL (stripe-mock, tests).
	APIURL string
}

// StripeGateway opens checkout sessions with its own client.API instance, so
// no package-level stripe.Key is ever set.
type StripeGateway struct {
	client     *client.API
	successURL string
	cancelURL  string
	timeout    time.Duration
}

func NewStripeGateway(cfg Config) *StripeGateway {
	backendConfig := &stripe.BackendConfig{
		HTTPClient:        &http.Client{Timeout: cfg.Timeout},
		LeveledLogger:     logrus.StandardLogger(),
		MaxNetworkRetries: stripe.Int64(0),
	}
	if cfg.APIURL != "" {
		backendConfig.URL = stripe.String(cfg.APIURL)
	}

	sc := &client.API{}
	sc.Init(cfg.SecretKey, &stripe.Backends{
		API:     stripe.GetBackendWithConfig(stripe.APIBackend, backendConfig),
		Connect: stripe.GetBackendWithConfig(stripe.ConnectBackend, backendConfig),
		Uploads: stripe.GetBackendWithConfig(stripe.UploadsBackend, backendConfig),
	})

	return &StripeGateway{
		client:     sc,
		successURL: cfg.SuccessURL,
		cancelURL:  cfg.CancelURL,
		timeout:    cfg.Timeout,
	}
}

// CreateSession opens a hosted checkout session in payment mode. The order id
// travels in the payment intent metadata and comes back on the charge events.
func (g *StripeGateway) CreateSession(ctx context.Context, req models.CheckoutSessionRequest) (*models.CheckoutSessionResult, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(g.successURL),
		CancelURL:  stripe.String(g.cancelURL),
		LineItems:  lineItems(req),
		PaymentIntentData: &stripe.CheckoutSessionPaymentIntentDataParams{
			Metadata: map[string]string{models.OrderIDMetadataKey: req.OrderID},
		},
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}
	params.Context = ctx

	if req.IdempotencyKey != "" {
		params.SetIdempotencyKey(req.IdempotencyKey)
	}

	timer := prometheus.NewTimer(metrics.StripeRequestDuration.WithLabelValues(opCreateCheckoutSession))
	session, err := g.client.CheckoutSessions.New(params)
	timer.ObserveDuration()
	if err != nil {
		return nil, mapStripeError(opCreateCheckoutSession, err)
	}

	logrus.WithFields(logrus.Fields{
		"order_id":   req.OrderID,
		"session_id": session.ID,
	}).Info("checkout session created")

	return &models.CheckoutSessionResult{
		CancelURL:  session.CancelURL,
		SuccessURL: session.SuccessURL,
		URL:        session.URL,
	}, nil
}

func lineItems(req models.CheckoutSessionRequest) []*stripe.CheckoutSessionLineItemParams {
	items := make([]*stripe.CheckoutSessionLineItemParams, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(string(req.Currency)),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(item.Name),
				},
				UnitAmount: stripe.Int64(ToMinorUnits(item.UnitPrice)),
			},
			Quantity: stripe.Int64(item.Quantity),
		})
	}
	return items
}
