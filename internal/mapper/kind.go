package mapper

// Kind is the closed set of processor events this service acts on. A new
// event type is only mapped after it gets its own Kind here and a case in Map.
type Kind int

const (
	KindUnhandled Kind = iota
	KindChargeSucceeded
)

const typeChargeSucceeded = "charge.succeeded"

func Classify(eventType string) Kind {
	switch eventType {
	case typeChargeSucceeded:
		return KindChargeSucceeded
	default:
		return KindUnhandled
	}
}

func (k Kind) String() string {
	switch k {
	case KindChargeSucceeded:
		return typeChargeSucceeded
	default:
		return "unhandled"
	}
}
