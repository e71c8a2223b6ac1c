// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import "github.com/db47h/nandalu"

// HalfAdder returns the sum and carry of a + b.
//
//	Inputs: a, b
//	Outputs: s, c
//	Function: s = lsb(a + b)
//	          c = msb(a + b)
func HalfAdder(a, b nandalu.Signal) (s, c nandalu.Signal) {
	return Xor(a, b), And(a, b)
}

// FullAdder returns the sum and carry of a + b + cin. It chains two half
// adders.
//
//	Inputs: a, b, cin
//	Outputs: s, cout
//	Function: s = lsb(a + b + cin)
//	          cout = msb(a + b + cin)
func FullAdder(a, b, cin nandalu.Signal) (s, cout nandalu.Signal) {
	s0, c0 := HalfAdder(a, b)
	s, c1 := HalfAdder(cin, s0)
	return s, Or(c0, c1)
}

// AdderCarryN returns a + b + cin and the carry out of the most significant
// bit.
//
// The carry ripples from the least significant bit (highest index) up to
// index 0.
//
//	Inputs: a[n], b[n], cin
//	Outputs: out[n], cout
func AdderCarryN(a, b nandalu.Bus, cin nandalu.Signal) (out nandalu.Bus, cout nandalu.Signal) {
	out = nandalu.NewBus(nandalu.SameWidth("AdderN", a, b))
	cout = cin
	for i := len(out) - 1; i >= 0; i-- {
		out[i], cout = FullAdder(a[i], b[i], cout)
	}
	return out, cout
}

// AdderN returns a N-bits adder output. Overflow wraps around and the final
// carry is discarded.
//
//	Inputs: a[n], b[n]
//	Outputs: out[n]
//	Function: out = (a + b) mod 2^n
func AdderN(a, b nandalu.Bus) nandalu.Bus {
	out, _ := AdderCarryN(a, b, low)
	return out
}

// IncN returns a N-bits incrementer output: the same ripple as AdderN with b
// tied to Low and the initial carry set to High.
//
//	Inputs: in[n]
//	Outputs: out[n]
//	Function: out = (in + 1) mod 2^n
func IncN(in nandalu.Bus) nandalu.Bus {
	out, _ := AdderCarryN(in, nandalu.NewBus(len(in)), high)
	return out
}

// NegN returns the two's-complement negation of in.
//
//	Function: out = IncN(NotN(in))
func NegN(in nandalu.Bus) nandalu.Bus {
	return IncN(NotN(in))
}
