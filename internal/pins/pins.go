// Package pins maps bowling pins onto lane columns and decides whether the
// pins left standing after a first ball form a split.
//
// Viewed from above, the ten pins occupy seven vertical columns:
//
//	7   8   9   10      columns 0 2 4 6
//	  4   5   6         columns  1 3 5
//	    2   3           columns   2 4
//	      1             column     3
//
// A leave is a split when the head pin is down and at least one empty column
// separates two occupied ones.
package pins

import (
	"regexp"
	"strings"
)

// Pin numbering limits.
const (
	HeadPin = 1
	MaxPin  = 10
)

// ColumnCount is the number of lane columns pins occupy.
const ColumnCount = 7

// columnOf maps a pin number to its column. Index 0 is unused.
var columnOf = [MaxPin + 1]int{
	1:  3,
	2:  2,
	3:  4,
	4:  1,
	5:  3,
	6:  5,
	7:  0,
	8:  2,
	9:  4,
	10: 6,
}

// Column returns the lane column of pin and whether pin is a real pin.
func Column(pin int) (int, bool) {
	if pin < HeadPin || pin > MaxPin {
		return 0, false
	}
	return columnOf[pin], true
}

// PinsInColumn returns the pins occupying col, front to back.
func PinsInColumn(col int) []int {
	var out []int
	for pin := HeadPin; pin <= MaxPin; pin++ {
		if columnOf[pin] == col {
			out = append(out, pin)
		}
	}
	return out
}

// Presence records which columns hold at least one standing pin.
type Presence [ColumnCount]bool

// Mark sets the column of pin as occupied. Non-pins are ignored.
func (p *Presence) Mark(pin int) {
	if col, ok := Column(pin); ok {
		p[col] = true
	}
}

// String renders the vector as '1'/'0' in column order.
func (p Presence) String() string {
	var b strings.Builder
	b.Grow(ColumnCount)
	for _, present := range p {
		if present {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

// gapPattern matches an occupied column, one or more empty ones, then another
// occupied column.
var gapPattern = regexp.MustCompile(`10+1`)

// HasGap reports whether two occupied columns are separated by an empty one.
func (p Presence) HasGap() bool {
	return gapPattern.MatchString(p.String())
}
