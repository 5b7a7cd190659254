package pins

import "fmt"

// ErrorKind classifies invalid pin input.
type ErrorKind int

// Error kinds.
const (
	IllegalValue ErrorKind = iota // not an integer
	TooSmall                      // below the lowest pin
	TooBig                        // above the highest pin
)

// Fixed user-facing messages, one per kind.
const (
	MessageIllegalValue = "Illegal number"
	MessageTooSmall     = "Number too small"
	MessageTooBig       = "Number too big"
)

// String returns a stable snake_case name for the kind.
func (k ErrorKind) String() string {
	switch k {
	case IllegalValue:
		return "illegal_value"
	case TooSmall:
		return "too_small"
	case TooBig:
		return "too_big"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// PinError reports a token that is not a usable pin number.
type PinError struct {
	Kind  ErrorKind
	Token string // raw input as given
}

// Error returns the fixed message for the error kind.
func (e *PinError) Error() string {
	switch e.Kind {
	case TooSmall:
		return MessageTooSmall
	case TooBig:
		return MessageTooBig
	default:
		return MessageIllegalValue
	}
}
