// Package judge turns a raw list of standing pins into a single verdict line.
//
// The argument count alone settles several cases (strike, gutter, a lone pin,
// too many arguments) before any token is parsed. Everything else is handed
// to the pins classifier.
package judge

import (
	"errors"

	"github.com/leapstack-labs/bowlsplit/internal/pins"
)

// Argument counts with a fixed verdict.
const (
	MaxRemained  = 10
	MinRemained  = 1
	NoneRemained = 0
)

// Fixed verdict lines.
const (
	MessageTooMany  = "too many arguments"
	MessageGutter   = "Gutter!"
	MessageOnlyOne  = "there's only one left"
	MessageStrike   = "Strike!"
	messageRemained = "remained pins are"
)

// Verdict is the outcome of judging one argument list.
type Verdict struct {
	Kind    Kind
	Pins    []string       // raw tokens as given
	Columns *pins.Presence // set for Split and NotSplit
	Err     *pins.PinError // set for the invalid-pin kinds
}

// Judge decides the verdict for raw, the pins left standing.
func Judge(raw []string) Verdict {
	v := Verdict{Pins: raw}

	switch n := len(raw); {
	case n > MaxRemained:
		v.Kind = TooManyArguments
		return v
	case n == MaxRemained:
		v.Kind = Gutter
		return v
	case n == MinRemained:
		v.Kind = OnlyOneLeft
		return v
	case n == NoneRemained:
		v.Kind = Strike
		return v
	}

	c, err := pins.Classify(raw)
	if err != nil {
		var pe *pins.PinError
		if !errors.As(err, &pe) {
			pe = &pins.PinError{Kind: pins.IllegalValue}
		}
		v.Err = pe
		v.Kind = kindForError(pe.Kind)
		return v
	}
	if c.HeadPin {
		v.Kind = HeadPinStanding
		return v
	}

	cols := c.Columns
	v.Columns = &cols
	if c.IsSplit() {
		v.Kind = Split
	} else {
		v.Kind = NotSplit
	}
	return v
}

// IsSplit reports whether the verdict is a split.
func (v Verdict) IsSplit() bool {
	return v.Kind == Split
}

// Message returns the single output line for the verdict.
func (v Verdict) Message() string {
	switch v.Kind {
	case TooManyArguments:
		return MessageTooMany
	case Gutter:
		return MessageGutter
	case OnlyOneLeft:
		return MessageOnlyOne
	case Strike:
		return MessageStrike
	case InvalidValue, InvalidTooSmall, InvalidTooBig:
		if v.Err != nil {
			return v.Err.Error()
		}
		return (&pins.PinError{Kind: errorKindFor(v.Kind)}).Error()
	}

	sep := " not "
	if v.IsSplit() {
		sep = " "
	}
	return messageRemained + sep + "split"
}

// ColumnString returns the presence vector as '1'/'0', or "" when no vector
// was built.
func (v Verdict) ColumnString() string {
	if v.Columns == nil {
		return ""
	}
	return v.Columns.String()
}
