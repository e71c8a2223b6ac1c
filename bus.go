// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package nandalu

import (
	"strings"

	"github.com/pkg/errors"
)

// Errors returned or raised by bus constructors and bus operations.
var (
	// ErrWidth is the cause of the panic raised when a bus operation is given
	// buses of the wrong width. Use errors.Cause on the recovered value to
	// test for it.
	ErrWidth = errors.New("bus width mismatch")
	// ErrBusSyntax is returned by ParseBus for malformed bus literals.
	ErrBusSyntax = errors.New("invalid bus literal")
)

// A Bus is an ordered group of signals forming one logical word.
// Index 0 is the most significant bit.
//
// The width of a bus is set when it is created and all operations return new
// buses; none of them modify their inputs.
type Bus []Signal

// NewBus returns a bus of the given width with all signals Low.
func NewBus(width int) Bus {
	if width <= 0 {
		panic(errors.Wrapf(ErrWidth, "NewBus: invalid width %d", width))
	}
	return make(Bus, width)
}

// Const returns a bus of the given width with all signals set to s.
func Const(width int, s Signal) Bus {
	b := NewBus(width)
	for i := range b {
		b[i] = s
	}
	return b
}

// ParseBus parses a bus literal made of '0' and '1' digits, MSB first.
// Underscores may be used as digit separators: "0000_0000_0010_1010".
func ParseBus(s string) (Bus, error) {
	b := make(Bus, 0, len(s))
	for i, r := range s {
		switch r {
		case '0':
			b = append(b, Low)
		case '1':
			b = append(b, High)
		case '_':
		default:
			return nil, errors.Wrapf(ErrBusSyntax, "in %q at pos %d: unexpected %q", s, i+1, r)
		}
	}
	if len(b) == 0 {
		return nil, errors.Wrapf(ErrBusSyntax, "in %q: no signals", s)
	}
	return b, nil
}

// MustParseBus is like ParseBus but panics on error.
func MustParseBus(s string) Bus {
	b, err := ParseBus(s)
	if err != nil {
		panic(err)
	}
	return b
}

// Width returns the bus width.
func (b Bus) Width() int { return len(b) }

// Clone returns a copy of b.
func (b Bus) Clone() Bus {
	return append(Bus(nil), b...)
}

// Equal reports whether a and b have the same width and signals.
func (b Bus) Equal(o Bus) bool {
	if len(b) != len(o) {
		return false
	}
	for i := range b {
		if b[i] != o[i] {
			return false
		}
	}
	return true
}

// String returns the bus as a string of '0' and '1', MSB first.
func (b Bus) String() string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, s := range b {
		sb.WriteRune(s.Bit())
	}
	return sb.String()
}

// Inputs returns all 2^n combinations of n signals. Combination i is the
// binary representation of i, MSB first: the first signal varies the slowest.
func Inputs(n int) []Bus {
	r := make([]Bus, 1<<uint(n))
	for i := range r {
		b := NewBus(n)
		for bit := 0; bit < n; bit++ {
			b[n-bit-1] = FromBool(i&(1<<uint(bit)) != 0)
		}
		r[i] = b
	}
	return r
}

// CheckWidth panics with an error wrapping ErrWidth if any of the given buses
// is not width bits wide. op is the name of the calling operation and is used
// in the error message.
//
// A mismatch is a wiring error in the caller: operations are only defined for
// buses of matching width.
func CheckWidth(op string, width int, buses ...Bus) {
	if width <= 0 {
		panic(errors.Wrapf(ErrWidth, "%s: invalid width %d", op, width))
	}
	for i, b := range buses {
		if len(b) != width {
			panic(errors.Wrapf(ErrWidth, "%s: operand %d is %d bits wide, expected %d", op, i, len(b), width))
		}
	}
}

// SameWidth checks that all buses have the width of the first one and returns
// that width. It panics like CheckWidth on mismatch.
func SameWidth(op string, first Bus, others ...Bus) int {
	CheckWidth(op, len(first), append([]Bus{first}, others...)...)
	return len(first)
}
