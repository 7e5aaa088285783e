package gateway

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/stripe/stripe-go/v79"
)

// UpstreamError wraps every failure of a processor call: transport errors,
// timeouts and rejections alike. Nothing is retried locally.
type UpstreamError struct {
	Op         string
	StatusCode int
	Code       string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("stripe %s failed with status %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("stripe %s failed: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

func (e *UpstreamError) Timeout() bool {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(e.Err, &netErr) && netErr.Timeout()
}

func mapStripeError(op string, err error) error {
	upstream := &UpstreamError{Op: op, Err: err}

	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		upstream.StatusCode = stripeErr.HTTPStatusCode
		upstream.Code = string(stripeErr.Code)
	}

	return upstream
}
