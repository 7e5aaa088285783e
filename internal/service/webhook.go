package service

import (
	"context"
	"errors"

	"github.com/jeffleon2/draftea-payments-gateway/internal/mapper"
	"github.com/jeffleon2/draftea-payments-gateway/internal/metrics"
	"github.com/jeffleon2/draftea-payments-gateway/internal/signature"
	"github.com/sirupsen/logrus"
)

type Outcome string

const (
	OutcomeRejected      Outcome = "rejected"
	OutcomeIgnored       Outcome = "ignored"
	OutcomeUnmappable    Outcome = "unmappable"
	OutcomePublished     Outcome = "published"
	OutcomePublishFailed Outcome = "publish_failed"
)

// WebhookResult describes what happened to one delivery. Only
// OutcomeRejected should be answered with a client error; every other outcome
// is acknowledged so the processor stops retrying.
type WebhookResult struct {
	Outcome   Outcome
	EventID   string
	EventType string
	Err       error
}

func (r WebhookResult) Rejected() bool {
	return r.Outcome == OutcomeRejected
}

// HandleWebhook verifies payload against the signature header, maps the event
// and queues the resulting domain event keyed by order id.
func (s *PaymentService) HandleWebhook(ctx context.Context, payload []byte, header string) WebhookResult {
	result := s.handleWebhook(ctx, payload, header)
	metrics.WebhookEventsTotal.WithLabelValues(string(result.Outcome)).Inc()
	return result
}

func (s *PaymentService) handleWebhook(ctx context.Context, payload []byte, header string) WebhookResult {
	event, err := s.Verifier.Verify(payload, header, s.Now())
	if err != nil {
		fields := logrus.Fields{"reason": err.Error()}
		var verr *signature.VerificationError
		if errors.As(err, &verr) {
			fields["kind"] = verr.Kind.String()
		}
		logrus.WithFields(fields).Warn("webhook rejected")
		return WebhookResult{Outcome: OutcomeRejected, Err: err}
	}

	result := WebhookResult{EventID: event.ID, EventType: event.Type}
	log := logrus.WithFields(logrus.Fields{
		"event_id":   event.ID,
		"event_type": event.Type,
	})

	domainEvent, err := mapper.Map(*event)
	if err != nil {
		log.WithError(err).Error("webhook event could not be mapped")
		result.Outcome = OutcomeUnmappable
		result.Err = err
		return result
	}
	if domainEvent == nil {
		log.Debug("webhook event ignored")
		result.Outcome = OutcomeIgnored
		return result
	}

	log = log.WithField("order_id", domainEvent.OrderID)
	if err := s.Publisher.Publish(ctx, s.Topic, domainEvent.OrderID, *domainEvent); err != nil {
		log.WithError(err).Error("error queueing payment event")
		result.Outcome = OutcomePublishFailed
		result.Err = err
		return result
	}

	log.Info("payment event queued")
	result.Outcome = OutcomePublished
	return result
}
