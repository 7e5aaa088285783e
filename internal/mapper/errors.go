package mapper

import "fmt"

type Reason string

const (
	ReasonMissingCorrelationID Reason = "missing_correlation_id"
	ReasonInvalidPayload       Reason = "invalid_payload"
)

// MappingError marks an authentic event that cannot be turned into a domain
// event. It is logged and acknowledged, never published.
type MappingError struct {
	Reason    Reason
	EventID   string
	EventType string
	Err       error
}

func (e *MappingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot map %s event %s: %s: %v", e.EventType, e.EventID, e.Reason, e.Err)
	}
	return fmt.Sprintf("cannot map %s event %s: %s", e.EventType, e.EventID, e.Reason)
}

func (e *MappingError) Unwrap() error {
	return e.Err
}
