package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/draftea-payments-gateway/internal/handlers"
	"github.com/jeffleon2/draftea-payments-gateway/internal/handlers/mocks"
	"github.com/jeffleon2/draftea-payments-gateway/internal/models"
	"github.com/jeffleon2/draftea-payments-gateway/internal/service"
	servicemocks "github.com/jeffleon2/draftea-payments-gateway/internal/service/mocks"
	"github.com/jeffleon2/draftea-payments-gateway/internal/signature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stripe/stripe-go/v79/webhook"
)

func signedHeader(at time.Time, payload []byte, secret string) string {
	return webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   payload,
		Secret:    secret,
		Timestamp: at,
	}).Header
}

const endpointSecret = "whsec_test_secret"

var signedAt = time.Unix(1700000000, 0)

// Whitespace and key order are deliberate: the signature only holds if the
// handler passes the body through untouched.
const chargeSucceeded = `{
  "id":   "evt_1",
  "type": "charge.succeeded",
  "object": "event",
  "data": {"object": {"receipt_url": "https://pay.stripe.com/receipts/ch_123", "metadata": {"orderId": "ord_1"}, "id": "ch_123", "object": "charge"}}
}`

func webhookRouter(h *handlers.WebhookHandler) *gin.Engine {
	r := gin.New()
	r.POST("/payments/webhook", h.Receive)
	return r
}

func postWebhook(r http.Handler, body []byte, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/payments/webhook", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if header != "" {
		req.Header.Set(signature.HeaderName, header)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestWebhook_AcknowledgedOutcomesEchoSignature(t *testing.T) {
	outcomes := []service.Outcome{
		service.OutcomePublished,
		service.OutcomeIgnored,
		service.OutcomeUnmappable,
		service.OutcomePublishFailed,
	}

	for _, outcome := range outcomes {
		t.Run(string(outcome), func(t *testing.T) {
			mockService := mocks.NewMockPaymentService(t)
			r := webhookRouter(handlers.NewWebhookHandler(mockService, 1<<20))

			mockService.EXPECT().
				HandleWebhook(mock.Anything, []byte(chargeSucceeded), "t=1,v1=abc").
				Return(service.WebhookResult{Outcome: outcome}).
				Once()

			rec := postWebhook(r, []byte(chargeSucceeded), "t=1,v1=abc")

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, `{"sig":"t=1,v1=abc"}`, rec.Body.String())
		})
	}
}

func TestWebhook_RejectedIsBadRequest(t *testing.T) {
	mockService := mocks.NewMockPaymentService(t)
	r := webhookRouter(handlers.NewWebhookHandler(mockService, 1<<20))

	mockService.EXPECT().
		HandleWebhook(mock.Anything, mock.Anything, "").
		Return(service.WebhookResult{
			Outcome: service.OutcomeRejected,
			Err:     &signature.VerificationError{Kind: signature.KindMalformed, Reason: "unable to extract timestamp and signatures from header"},
		}).
		Once()

	rec := postWebhook(r, []byte(chargeSucceeded), "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Webhook Error: unable to extract timestamp and signatures from header", rec.Body.String())
}

func TestWebhook_PayloadTooLarge(t *testing.T) {
	mockService := mocks.NewMockPaymentService(t)
	r := webhookRouter(handlers.NewWebhookHandler(mockService, 16))

	rec := postWebhook(r, []byte(chargeSucceeded), "t=1,v1=abc")

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Body.String(), "Webhook Error:"))
	mockService.AssertNotCalled(t, "HandleWebhook", mock.Anything, mock.Anything, mock.Anything)
}

func realWebhookRouter(t *testing.T, publisher service.Publisher) *gin.Engine {
	t.Helper()
	s := service.NewPaymentService(servicemocks.NewMockGateway(t), signature.NewVerifier(endpointSecret, signature.DefaultTolerance), publisher, "")
	s.Now = func() time.Time { return signedAt }
	return webhookRouter(handlers.NewWebhookHandler(s, 1<<20))
}

func TestWebhook_SignedDeliveryPublishesEvent(t *testing.T) {
	mockPublisher := servicemocks.NewMockPublisher(t)
	r := realWebhookRouter(t, mockPublisher)

	body := []byte(chargeSucceeded)
	header := signedHeader(signedAt, body, endpointSecret)

	mockPublisher.EXPECT().
		Publish(mock.Anything, models.PaymentSucceededTopic, "ord_1", models.PaymentSucceededEvent{
			StripePaymentID: "ch_123",
			OrderID:         "ord_1",
			ReceiptURL:      "https://pay.stripe.com/receipts/ch_123",
		}).
		Return(nil).
		Once()

	rec := postWebhook(r, body, header)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"sig":"`+header+`"}`, rec.Body.String())
}

func TestWebhook_WrongSecretRejected(t *testing.T) {
	mockPublisher := servicemocks.NewMockPublisher(t)
	r := realWebhookRouter(t, mockPublisher)

	body := []byte(chargeSucceeded)
	rec := postWebhook(r, body, signedHeader(signedAt, body, "whsec_wrong"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Body.String(), "Webhook Error:"))
	mockPublisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestWebhook_ReencodedBodyRejected(t *testing.T) {
	mockPublisher := servicemocks.NewMockPublisher(t)
	r := realWebhookRouter(t, mockPublisher)

	body := []byte(chargeSucceeded)
	header := signedHeader(signedAt, body, endpointSecret)
	compacted := []byte(strings.Join(strings.Fields(chargeSucceeded), ""))

	rec := postWebhook(r, compacted, header)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
