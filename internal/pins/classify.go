package pins

import "strconv"

// Classification is the result of reading a list of standing pins.
type Classification struct {
	// HeadPin is set when pin 1 was reached. Columns is empty in that case
	// and later tokens were not inspected.
	HeadPin bool
	Columns Presence
}

// IsSplit reports whether the leave is a split.
func (c Classification) IsSplit() bool {
	if c.HeadPin {
		return false
	}
	return c.Columns.HasGap()
}

// Parse converts one token to a pin number.
//
// Zero is rejected as too small: "no pins standing" is expressed by passing
// no tokens at all.
func Parse(token string) (int, error) {
	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, &PinError{Kind: IllegalValue, Token: token}
	}
	if n < HeadPin {
		return 0, &PinError{Kind: TooSmall, Token: token}
	}
	if n > MaxPin {
		return 0, &PinError{Kind: TooBig, Token: token}
	}
	return n, nil
}

// Classify reads raw pin tokens in order and builds the column presence vector.
// It stops at the first invalid token, or at the head pin.
func Classify(raw []string) (Classification, error) {
	var c Classification
	for _, token := range raw {
		pin, err := Parse(token)
		if err != nil {
			return Classification{}, err
		}
		if pin == HeadPin {
			return Classification{HeadPin: true}, nil
		}
		c.Columns.Mark(pin)
	}
	return c, nil
}
