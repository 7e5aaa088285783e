package signature_test

import (
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/jeffleon2/draftea-payments-gateway/internal/signature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v79/webhook"
)

func signedHeader(at time.Time, payload []byte, secret string) string {
	return webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   payload,
		Secret:    secret,
		Timestamp: at,
	}).Header
}

const testSecret = "whsec_test_secret"

var testNow = time.Unix(1700000000, 0)

func chargeSucceededPayload() []byte {
	return []byte(`{
  "id": "evt_1",
  "object": "event",
  "type": "charge.succeeded",
  "created": 1700000000,
  "data": {
    "object": {
      "id": "ch_123",
      "object": "charge",
      "metadata": {"orderId": "ord_1"},
      "receipt_url": "https://pay.stripe.com/receipts/ch_123"
    }
  }
}`)
}

func requireKind(t *testing.T, err error, kind signature.Kind) {
	t.Helper()
	var verr *signature.VerificationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, kind, verr.Kind, verr.Reason)
}

func TestVerify_ValidSignature(t *testing.T) {
	payload := chargeSucceededPayload()
	header := signedHeader(testNow, payload, testSecret)

	event, err := signature.Verify(payload, header, testSecret, signature.DefaultTolerance, testNow)

	require.NoError(t, err)
	assert.Equal(t, "evt_1", event.ID)
	assert.Equal(t, "charge.succeeded", event.Type)
	assert.JSONEq(t, `{
      "id": "ch_123",
      "object": "charge",
      "metadata": {"orderId": "ord_1"},
      "receipt_url": "https://pay.stripe.com/receipts/ch_123"
    }`, string(event.Data))
}

func TestVerify_BodyBitFlipFails(t *testing.T) {
	payload := chargeSucceededPayload()
	header := signedHeader(testNow, payload, testSecret)

	for i := 0; i < len(payload); i += 7 {
		for bit := 0; bit < 8; bit++ {
			mutated := append([]byte(nil), payload...)
			mutated[i] ^= 1 << bit

			_, err := signature.Verify(mutated, header, testSecret, signature.DefaultTolerance, testNow)

			requireKind(t, err, signature.KindBadSignature)
		}
	}
}

func TestVerify_SignatureBitFlipFails(t *testing.T) {
	payload := chargeSucceededPayload()
	sig := webhook.ComputeSignature(testNow, payload, testSecret)

	for i := range sig {
		for bit := 0; bit < 8; bit++ {
			mutated := append([]byte(nil), sig...)
			mutated[i] ^= 1 << bit
			header := fmt.Sprintf("t=%d,v1=%s", testNow.Unix(), hex.EncodeToString(mutated))

			_, err := signature.Verify(payload, header, testSecret, signature.DefaultTolerance, testNow)

			requireKind(t, err, signature.KindBadSignature)
		}
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	payload := chargeSucceededPayload()
	header := signedHeader(testNow, payload, "whsec_other")

	_, err := signature.Verify(payload, header, testSecret, signature.DefaultTolerance, testNow)

	requireKind(t, err, signature.KindBadSignature)
}

func TestVerify_AnyMatchingCandidateIsAccepted(t *testing.T) {
	payload := chargeSucceededPayload()
	good := hex.EncodeToString(webhook.ComputeSignature(testNow, payload, testSecret))
	stale := hex.EncodeToString(webhook.ComputeSignature(testNow, payload, "whsec_rolled"))
	header := fmt.Sprintf("t=%d,v1=%s,v1=%s,v0=deadbeef", testNow.Unix(), stale, good)

	_, err := signature.Verify(payload, header, testSecret, signature.DefaultTolerance, testNow)

	assert.NoError(t, err)
}

func TestVerify_TimestampOutsideTolerance(t *testing.T) {
	payload := chargeSucceededPayload()
	tolerance := 5 * time.Minute

	for _, signedAt := range []time.Time{
		testNow.Add(-tolerance - time.Second),
		testNow.Add(tolerance + time.Second),
		testNow.Add(-48 * time.Hour),
		time.Unix(0, 0),
	} {
		header := signedHeader(signedAt, payload, testSecret)

		_, err := signature.Verify(payload, header, testSecret, tolerance, testNow)

		requireKind(t, err, signature.KindExpired)
	}
}

func TestVerify_TimestampOnToleranceBoundary(t *testing.T) {
	payload := chargeSucceededPayload()
	tolerance := 5 * time.Minute

	for _, signedAt := range []time.Time{testNow.Add(-tolerance), testNow.Add(tolerance)} {
		header := signedHeader(signedAt, payload, testSecret)

		_, err := signature.Verify(payload, header, testSecret, tolerance, testNow)

		assert.NoError(t, err)
	}
}

func TestVerify_ReplayWithinWindowIsNotSuppressed(t *testing.T) {
	payload := chargeSucceededPayload()
	header := signedHeader(testNow, payload, testSecret)
	verifier := signature.NewVerifier(testSecret, signature.DefaultTolerance)

	_, first := verifier.Verify(payload, header, testNow.Add(time.Second))
	_, second := verifier.Verify(payload, header, testNow.Add(2*time.Second))
	_, late := verifier.Verify(payload, header, testNow.Add(signature.DefaultTolerance+time.Second))

	assert.NoError(t, first)
	assert.NoError(t, second)
	requireKind(t, late, signature.KindExpired)
}

func TestVerify_MalformedHeader(t *testing.T) {
	payload := chargeSucceededPayload()
	sig := hex.EncodeToString(webhook.ComputeSignature(testNow, payload, testSecret))

	tests := map[string]string{
		"empty":             "",
		"missing timestamp": "v1=" + sig,
		"bad timestamp":     "t=yesterday,v1=" + sig,
		"missing v1":        fmt.Sprintf("t=%d", testNow.Unix()),
		"only v0":           fmt.Sprintf("t=%d,v0=%s", testNow.Unix(), sig),
		"garbage":           "not-a-signature",
		"entry without '='": fmt.Sprintf("t=%d,v1=%s,stray", testNow.Unix(), sig),
	}

	for name, header := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := signature.Verify(payload, header, testSecret, signature.DefaultTolerance, testNow)

			requireKind(t, err, signature.KindMalformed)
		})
	}
}

func TestVerify_SignedPayloadThatIsNotAnEvent(t *testing.T) {
	payload := []byte(`{"hello":"world"}`)
	header := signedHeader(testNow, payload, testSecret)

	_, err := signature.Verify(payload, header, testSecret, signature.DefaultTolerance, testNow)

	requireKind(t, err, signature.KindMalformed)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "malformed", signature.KindMalformed.String())
	assert.Equal(t, "bad_signature", signature.KindBadSignature.String())
	assert.Equal(t, "expired", signature.KindExpired.String())
}
