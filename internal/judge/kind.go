package judge

import (
	"fmt"

	"github.com/leapstack-labs/bowlsplit/internal/pins"
)

// Kind identifies which branch produced a verdict.
type Kind int

// Verdict kinds.
const (
	TooManyArguments Kind = iota
	Gutter
	OnlyOneLeft
	Strike
	HeadPinStanding // pin 1 standing, never a split
	Split
	NotSplit
	InvalidValue
	InvalidTooSmall
	InvalidTooBig
)

var kindNames = map[Kind]string{
	TooManyArguments: "too_many_arguments",
	Gutter:           "gutter",
	OnlyOneLeft:      "only_one_left",
	Strike:           "strike",
	HeadPinStanding:  "head_pin_standing",
	Split:            "split",
	NotSplit:         "not_split",
	InvalidValue:     "illegal_value",
	InvalidTooSmall:  "too_small",
	InvalidTooBig:    "too_big",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsError reports whether the kind stems from invalid pin input.
func (k Kind) IsError() bool {
	return k == InvalidValue || k == InvalidTooSmall || k == InvalidTooBig
}

func kindForError(k pins.ErrorKind) Kind {
	switch k {
	case pins.TooSmall:
		return InvalidTooSmall
	case pins.TooBig:
		return InvalidTooBig
	default:
		return InvalidValue
	}
}

func errorKindFor(k Kind) pins.ErrorKind {
	switch k {
	case InvalidTooSmall:
		return pins.TooSmall
	case InvalidTooBig:
		return pins.TooBig
	default:
		return pins.IllegalValue
	}
}
