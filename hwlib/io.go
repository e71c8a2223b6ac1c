// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"github.com/db47h/nandalu"
	"github.com/pkg/errors"
)

// Word is the machine word width in bits.
const Word = 16

// BusN returns the two's-complement representation of v on a bus of the given
// width, MSB first. Bits of v above width are dropped.
func BusN(width int, v int64) nandalu.Bus {
	if width > 64 {
		panic(errors.Wrapf(nandalu.ErrWidth, "BusN: invalid width %d", width))
	}
	b := nandalu.NewBus(width)
	for i := range b {
		b[i] = nandalu.FromBool(v&(1<<uint(width-1-i)) != 0)
	}
	return b
}

// IntN returns the signed integer value of the two's-complement bus b.
//
// Negative values are decoded by negating the bus with IncN(NotN(b)), reading
// the magnitude as unsigned and negating the result.
func IntN(b nandalu.Bus) int64 {
	if len(b) == 0 || len(b) > 64 {
		panic(errors.Wrapf(nandalu.ErrWidth, "IntN: invalid width %d", len(b)))
	}
	if b[0] == high {
		return -int64(uint64N(NegN(b)))
	}
	return int64(uint64N(b))
}

// uint64N returns b as an unsigned value.
func uint64N(b nandalu.Bus) uint64 {
	var u uint64
	for _, s := range b {
		u <<= 1
		if s == high {
			u |= 1
		}
	}
	return u
}

// Bus16 returns v as a 16 bits bus.
func Bus16(v int16) nandalu.Bus {
	return BusN(Word, int64(v))
}

// Int16 returns the value of the 16 bits bus b. It panics if b is not 16 bits
// wide.
func Int16(b nandalu.Bus) int16 {
	nandalu.CheckWidth("Int16", Word, b)
	return int16(IntN(b))
}
