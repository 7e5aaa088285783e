// Package signature authenticates Stripe webhook deliveries.
//
// The Stripe-Signature header has the form
//
//	t=<unix timestamp>,v1=<hex hmac>[,v1=<hex hmac>...]
//
// and each v1 value is HMAC-SHA256(secret, "<t>.<raw body>"). Several v1
// values are present while an endpoint secret is being rolled.
package signature

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/jeffleon2/draftea-payments-gateway/internal/models"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/webhook"
)

const (
	HeaderName       = "Stripe-Signature"
	DefaultTolerance = 300 * time.Second

	timestampKey = "t"
	schemeV1     = "v1"
)

type Verifier struct {
	secret    string
	tolerance time.Duration
}

func NewVerifier(secret string, tolerance time.Duration) *Verifier {
	return &Verifier{secret: secret, tolerance: tolerance}
}

func (v *Verifier) Verify(payload []byte, header string, now time.Time) (*models.VerifiedEvent, error) {
	return Verify(payload, header, v.secret, v.tolerance, now)
}

// Verify checks header against payload and decodes the event envelope.
// payload must be the request body exactly as received.
func Verify(payload []byte, header, secret string, tolerance time.Duration, now time.Time) (*models.VerifiedEvent, error) {
	if err := ValidatePayload(payload, header, secret, tolerance, now); err != nil {
		return nil, err
	}

	var event stripe.Event
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, malformed("payload is not a valid event: %s", err.Error())
	}
	if event.Type == "" || event.Data == nil {
		return nil, malformed("payload is not a valid event: missing type or data")
	}

	return &models.VerifiedEvent{
		ID:      event.ID,
		Type:    string(event.Type),
		Created: event.Created,
		Data:    event.Data.Raw,
	}, nil
}

// ValidatePayload authenticates payload without decoding it. The window is
// checked in both directions here; stripe-go only rejects old timestamps, so
// it is asked to compare signatures alone.
func ValidatePayload(payload []byte, header, secret string, tolerance time.Duration, now time.Time) error {
	signedAt, err := parseHeader(header)
	if err != nil {
		return err
	}

	if signedAt.Before(now.Add(-tolerance)) || signedAt.After(now.Add(tolerance)) {
		return &VerificationError{
			Kind:   KindExpired,
			Reason: "timestamp outside the tolerance zone (" + signedAt.UTC().Format(time.RFC3339) + ")",
		}
	}

	if err := webhook.ValidatePayloadIgnoringTolerance(payload, header, secret); err != nil {
		return fromWebhookError(err)
	}
	return nil
}

func fromWebhookError(err error) error {
	switch {
	case errors.Is(err, webhook.ErrNoValidSignature):
		return &VerificationError{
			Kind:   KindBadSignature,
			Reason: "no signatures found matching the expected signature for payload",
		}
	case errors.Is(err, webhook.ErrTooOld):
		return &VerificationError{Kind: KindExpired, Reason: err.Error()}
	default:
		return malformed("%s", err.Error())
	}
}

// parseHeader extracts the signing timestamp and checks that at least one v1
// entry is present. Signature decoding is left to stripe-go.
func parseHeader(header string) (time.Time, error) {
	if header == "" {
		return time.Time{}, malformed("missing %s header", HeaderName)
	}

	var (
		timestamp int64
		hasStamp  bool
		hasV1     bool
	)
	for _, part := range strings.Split(header, ",") {
		key, value, ok := strings.Cut(part, "=")
		if !ok {
			continue
		}

		switch key {
		case timestampKey:
			ts, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return time.Time{}, malformed("invalid timestamp %q in signature header", value)
			}
			timestamp, hasStamp = ts, true
		case schemeV1:
			hasV1 = true
		}
	}

	if !hasStamp {
		return time.Time{}, malformed("unable to extract timestamp from signature header")
	}
	if !hasV1 {
		return time.Time{}, malformed("no %s signatures found in signature header", schemeV1)
	}

	return time.Unix(timestamp, 0), nil
}
