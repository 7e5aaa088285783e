package mapper

import (
	"encoding/json"

	"github.com/jeffleon2/draftea-payments-gateway/internal/models"
	"github.com/stripe/stripe-go/v79"
)

// Map turns a verified event into the domain event to publish.
// It returns nil, nil for event types that are intentionally ignored.
func Map(event models.VerifiedEvent) (*models.PaymentSucceededEvent, error) {
	if Classify(event.Type) == KindChargeSucceeded {
		return mapChargeSucceeded(event)
	}
	return nil, nil
}

func mapChargeSucceeded(event models.VerifiedEvent) (*models.PaymentSucceededEvent, error) {
	var charge stripe.Charge
	if err := json.Unmarshal(event.Data, &charge); err != nil {
		return nil, &MappingError{
			Reason:    ReasonInvalidPayload,
			EventID:   event.ID,
			EventType: event.Type,
			Err:       err,
		}
	}

	orderID := charge.Metadata[models.OrderIDMetadataKey]
	if orderID == "" {
		return nil, &MappingError{
			Reason:    ReasonMissingCorrelationID,
			EventID:   event.ID,
			EventType: event.Type,
		}
	}

	return &models.PaymentSucceededEvent{
		StripePaymentID: charge.ID,
		OrderID:         orderID,
		ReceiptURL:      charge.ReceiptURL,
	}, nil
}
