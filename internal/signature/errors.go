package signature

import "fmt"

type Kind int

const (
	KindMalformed Kind = iota + 1
	KindBadSignature
	KindExpired
)

func (k Kind) String() string {
	switch k {
	case KindMalformed:
		return "malformed"
	case KindBadSignature:
		return "bad_signature"
	case KindExpired:
		return "expired"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// VerificationError is returned for every rejected webhook delivery. Reason
// never contains the secret or the expected signature.
type VerificationError struct {
	Kind   Kind
	Reason string
}

func (e *VerificationError) Error() string {
	return e.Reason
}

func malformed(format string, args ...interface{}) error {
	return &VerificationError{Kind: KindMalformed, Reason: fmt.Sprintf(format, args...)}
}
