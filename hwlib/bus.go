// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import "github.com/db47h/nandalu"

// A Gate is a two inputs, one output single bit gate like And or Xor.
type Gate func(a, b nandalu.Signal) nandalu.Signal

// A GateN is a Gate applied bitwise to two buses of the same width.
type GateN func(a, b nandalu.Bus) nandalu.Bus

// N lifts g over buses. The returned GateN panics if its operands are not of
// the same width. name is used in panic messages.
//
//	Inputs: a[n], b[n]
//	Outputs: out[n]
//	Function: for i := range out { out[i] = g(a[i], b[i]) }
func (g Gate) N(name string) GateN {
	return func(a, b nandalu.Bus) nandalu.Bus {
		out := nandalu.NewBus(nandalu.SameWidth(name, a, b))
		for i := range out {
			out[i] = g(a[i], b[i])
		}
		return out
	}
}

var (
	andN = Gate(And).N("AndN")
	orN  = Gate(Or).N("OrN")
	xorN = Gate(Xor).N("XorN")
)

// NotN returns a N-bits NOT.
//
//	Inputs: in[n]
//	Outputs: out[n]
//	Function: for i := range out { out[i] = !in[i] }
func NotN(in nandalu.Bus) nandalu.Bus {
	out := nandalu.NewBus(len(in))
	for i, s := range in {
		out[i] = Not(s)
	}
	return out
}

// AndN returns a N-bits AND.
//
//	Inputs: a[n], b[n]
//	Outputs: out[n]
//	Function: for i := range out { out[i] = a[i] && b[i] }
func AndN(a, b nandalu.Bus) nandalu.Bus { return andN(a, b) }

// OrN returns a N-bits OR.
//
//	Inputs: a[n], b[n]
//	Outputs: out[n]
//	Function: for i := range out { out[i] = a[i] || b[i] }
func OrN(a, b nandalu.Bus) nandalu.Bus { return orN(a, b) }

// XorN returns a N-bits XOR.
//
//	Inputs: a[n], b[n]
//	Outputs: out[n]
//	Function: for i := range out { out[i] = a[i] != b[i] }
func XorN(a, b nandalu.Bus) nandalu.Bus { return xorN(a, b) }

// MuxN returns a N-bits Mux. All bits share the same selector.
//
//	Inputs: a[n], b[n], sel
//	Outputs: out[n]
//	Function: for i := range out { if sel == 0 { out[i] = a[i] } else { out[i] = b[i] } }
func MuxN(a, b nandalu.Bus, sel nandalu.Signal) nandalu.Bus {
	out := nandalu.NewBus(nandalu.SameWidth("MuxN", a, b))
	for i := range out {
		out[i] = Mux(a[i], b[i], sel)
	}
	return out
}

// DMuxN returns a N-bits DMux.
//
//	Inputs: in[n], sel
//	Outputs: a[n], b[n]
//	Function: if sel == 0 { a = in; b = 0 } else { a = 0; b = in }
func DMuxN(in nandalu.Bus, sel nandalu.Signal) (a, b nandalu.Bus) {
	a, b = nandalu.NewBus(len(in)), nandalu.NewBus(len(in))
	for i, s := range in {
		a[i], b[i] = DMux(s, sel)
	}
	return a, b
}

// OrMWay returns a M-Way OR: High if any input is High.
// It folds Or over in, starting from Low.
//
//	Inputs: in[m]
//	Outputs: out
//	Function: out = in[0] || in[1] || in[2] || ... || in[m-1]
func OrMWay(in nandalu.Bus) nandalu.Signal {
	out := low
	for _, s := range in {
		out = Or(out, s)
	}
	return out
}

// AndMWay returns a M-Way AND: High if all inputs are High.
// It folds And over in, starting from High.
//
//	Inputs: in[m]
//	Outputs: out
//	Function: out = in[0] && in[1] && in[2] && ... && in[m-1]
func AndMWay(in nandalu.Bus) nandalu.Signal {
	out := high
	for _, s := range in {
		out = And(out, s)
	}
	return out
}
