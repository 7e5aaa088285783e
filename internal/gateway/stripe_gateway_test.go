package gateway_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jeffleon2/draftea-payments-gateway/internal/gateway"
	"github.com/jeffleon2/draftea-payments-gateway/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sessionResponse = `{
	"id": "cs_test_1",
	"object": "checkout.session",
	"mode": "payment",
	"url": "https://checkout.stripe.com/c/pay/cs_test_1",
	"success_url": "https://shop.example/payments/success",
	"cancel_url": "https://shop.example/payments/cancel"
}`

func newGateway(t *testing.T, handler http.HandlerFunc, timeout time.Duration) *gateway.StripeGateway {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return gateway.NewStripeGateway(gateway.Config{
		SecretKey:  "sk_test_123",
		SuccessURL: "https://shop.example/payments/success",
		CancelURL:  "https://shop.example/payments/cancel",
		Timeout:    timeout,
		APIURL:     srv.URL,
	})
}

func widgetRequest() models.CheckoutSessionRequest {
	return models.CheckoutSessionRequest{
		OrderID:  "ord_1",
		Currency: "usd",
		Items: []models.LineItem{
			{Name: "Widget", UnitPrice: decimal.RequireFromString("19.99"), Quantity: 2},
		},
	}
}

func TestCreateSession_Success(t *testing.T) {
	var form url.Values
	var path string

	g := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		form = r.PostForm
		path = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sessionResponse))
	}, 2*time.Second)

	result, err := g.CreateSession(context.Background(), widgetRequest())

	require.NoError(t, err)
	assert.Equal(t, "https://checkout.stripe.com/c/pay/cs_test_1", result.URL)
	assert.Equal(t, "https://shop.example/payments/success", result.SuccessURL)
	assert.Equal(t, "https://shop.example/payments/cancel", result.CancelURL)

	assert.Equal(t, "/v1/checkout/sessions", path)
	assert.Equal(t, "payment", form.Get("mode"))
	assert.Equal(t, "usd", form.Get("line_items[0][price_data][currency]"))
	assert.Equal(t, "Widget", form.Get("line_items[0][price_data][product_data][name]"))
	assert.Equal(t, "1999", form.Get("line_items[0][price_data][unit_amount]"))
	assert.Equal(t, "2", form.Get("line_items[0][quantity]"))
	assert.Equal(t, "ord_1", form.Get("payment_intent_data[metadata][orderId]"))
	assert.Equal(t, "https://shop.example/payments/success", form.Get("success_url"))
	assert.Equal(t, "https://shop.example/payments/cancel", form.Get("cancel_url"))
}

func TestCreateSession_WithoutCallerKeyEachRequestIsKeyedIndependently(t *testing.T) {
	var keys []string

	g := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		keys = append(keys, r.Header.Get("Idempotency-Key"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sessionResponse))
	}, 2*time.Second)

	for i := 0; i < 2; i++ {
		_, err := g.CreateSession(context.Background(), widgetRequest())
		require.NoError(t, err)
	}

	require.Len(t, keys, 2)
	assert.NotEqual(t, keys[0], keys[1])
	for _, key := range keys {
		assert.NotContains(t, key, "ord_1")
	}
}

func TestCreateSession_ForwardsIdempotencyKey(t *testing.T) {
	var idempotencyKey string

	g := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		idempotencyKey = r.Header.Get("Idempotency-Key")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sessionResponse))
	}, 2*time.Second)

	req := widgetRequest()
	req.IdempotencyKey = "ord_1-attempt-1"

	_, err := g.CreateSession(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "ord_1-attempt-1", idempotencyKey)
}

func TestCreateSession_MultipleItems(t *testing.T) {
	var form url.Values

	g := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		form = r.PostForm
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sessionResponse))
	}, 2*time.Second)

	req := widgetRequest()
	req.Items = append(req.Items, models.LineItem{Name: "Gadget", UnitPrice: decimal.RequireFromString("0.125"), Quantity: 1})

	_, err := g.CreateSession(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "Gadget", form.Get("line_items[1][price_data][product_data][name]"))
	assert.Equal(t, "13", form.Get("line_items[1][price_data][unit_amount]"))
	assert.Equal(t, "1", form.Get("line_items[1][quantity]"))
}

func TestCreateSession_Rejected(t *testing.T) {
	var calls int32

	g := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"type":"invalid_request_error","code":"parameter_invalid_integer","message":"Invalid integer"}}`))
	}, 2*time.Second)

	result, err := g.CreateSession(context.Background(), widgetRequest())

	assert.Nil(t, result)
	var upstream *gateway.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusBadRequest, upstream.StatusCode)
	assert.Equal(t, "parameter_invalid_integer", upstream.Code)
	assert.False(t, upstream.Timeout())
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestCreateSession_ServerErrorNotRetried(t *testing.T) {
	var calls int32

	g := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"type":"api_error","message":"boom"}}`))
	}, 2*time.Second)

	_, err := g.CreateSession(context.Background(), widgetRequest())

	var upstream *gateway.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusInternalServerError, upstream.StatusCode)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestCreateSession_Timeout(t *testing.T) {
	g := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}, 50*time.Millisecond)

	_, err := g.CreateSession(context.Background(), widgetRequest())

	var upstream *gateway.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.True(t, upstream.Timeout())
	assert.Zero(t, upstream.StatusCode)
}
