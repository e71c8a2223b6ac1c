// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwlib provides a library of combinational parts built from a single
// primitive: the NAND gate.
//
// Every gate in this package is a composition of calls to Nand, either
// directly or through other gates of the package. Bus parts lift single bit
// gates over buses of any width, and the arithmetic parts are built on top of
// them.
//
// Copyright 2018 Denis Bernard <db047h@gmail.com>
//
// This package is licensed under the MIT license. See license text in the LICENSE file.
package hwlib

import "github.com/db47h/nandalu"

const (
	low  = nandalu.Low
	high = nandalu.High
)

// Nand returns a NAND gate output. This is the only primitive gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = !(a && b)
func Nand(a, b nandalu.Signal) nandalu.Signal {
	if a == high && b == high {
		return low
	}
	return high
}

// Not returns !in.
//
//	Function: out = Nand(in, in)
func Not(in nandalu.Signal) nandalu.Signal {
	return Nand(in, in)
}

// And returns a && b.
//
//	Function: out = Nand(Nand(a, b), Nand(a, b))
func And(a, b nandalu.Signal) nandalu.Signal {
	n := Nand(a, b)
	return Nand(n, n)
}

// Or returns a || b.
//
//	Function: out = Nand(Nand(a, a), Nand(b, b))
func Or(a, b nandalu.Signal) nandalu.Signal {
	return Nand(Nand(a, a), Nand(b, b))
}

// Xor returns (a && !b) || (!a && b).
//
//	Function: out = Nand(Nand(Nand(a, b), a), Nand(Nand(a, b), b))
func Xor(a, b nandalu.Signal) nandalu.Signal {
	n := Nand(a, b)
	return Nand(Nand(n, a), Nand(n, b))
}

// Nor returns !(a || b).
func Nor(a, b nandalu.Signal) nandalu.Signal { return Not(Or(a, b)) }

// Xnor returns a == b.
func Xnor(a, b nandalu.Signal) nandalu.Signal { return Not(Xor(a, b)) }

// Mux returns a multiplexer output.
//
//	Inputs: a, b, sel
//	Outputs: out
//	Function: if sel == 0 { out = a } else { out = b }
func Mux(a, b, sel nandalu.Signal) nandalu.Signal {
	return Nand(Nand(a, Nand(sel, sel)), Nand(b, sel))
}

// DMux returns the outputs of a demultiplexer.
//
//	Inputs: in, sel
//	Outputs: a, b
//	Function: if sel == 0 { a = in; b = 0 } else { a = 0; b = in }
func DMux(in, sel nandalu.Signal) (a, b nandalu.Signal) {
	return And(in, Not(sel)), And(in, sel)
}
