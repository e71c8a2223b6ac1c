// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import "github.com/db47h/nandalu"

// Mux4WayN returns a 4-way N-bits Mux.
//
// sel1 is applied first and picks one of (a, b) and one of (c, d). sel2 then
// picks between the two results.
//
//	Inputs: a[n], b[n], c[n], d[n], sel1, sel2
//	Outputs: out[n]
//	Function: out = [a, b, c, d][sel2*2 + sel1]
func Mux4WayN(a, b, c, d nandalu.Bus, sel1, sel2 nandalu.Signal) nandalu.Bus {
	nandalu.SameWidth("Mux4WayN", a, b, c, d)
	return MuxN(
		MuxN(a, b, sel1),
		MuxN(c, d, sel1),
		sel2)
}

// Mux8WayN returns a 8-way N-bits Mux built from two 4-way muxes. sel3 picks
// between the halves.
//
//	Inputs: a[n], b[n], c[n], d[n], e[n], f[n], g[n], h[n], sel1, sel2, sel3
//	Outputs: out[n]
//	Function: out = [a, b, c, d, e, f, g, h][sel3*4 + sel2*2 + sel1]
func Mux8WayN(a, b, c, d, e, f, g, h nandalu.Bus, sel1, sel2, sel3 nandalu.Signal) nandalu.Bus {
	return MuxN(
		Mux4WayN(a, b, c, d, sel1, sel2),
		Mux4WayN(e, f, g, h, sel1, sel2),
		sel3)
}

// DMux4Way returns a 4-way DMux. (sel1, sel2) is read as a two bits index,
// sel1 being the most significant bit. The selected output is set to in, the
// others are Low.
//
//	Inputs: in, sel1, sel2
//	Outputs: out[4]
//	Function: out[sel1*2 + sel2] = in
func DMux4Way(in, sel1, sel2 nandalu.Signal) [4]nandalu.Signal {
	n1, n2 := Not(sel1), Not(sel2)
	return [4]nandalu.Signal{
		AndMWay(nandalu.Bus{in, n1, n2}),
		AndMWay(nandalu.Bus{in, n1, sel2}),
		AndMWay(nandalu.Bus{in, sel1, n2}),
		AndMWay(nandalu.Bus{in, sel1, sel2}),
	}
}

// DMux8Way returns a 8-way DMux. (sel1, sel2, sel3) is read as a three bits
// index, sel1 being the most significant bit.
//
//	Inputs: in, sel1, sel2, sel3
//	Outputs: out[8]
//	Function: out[sel1*4 + sel2*2 + sel3] = in
func DMux8Way(in, sel1, sel2, sel3 nandalu.Signal) [8]nandalu.Signal {
	n1, n2, n3 := Not(sel1), Not(sel2), Not(sel3)
	return [8]nandalu.Signal{
		AndMWay(nandalu.Bus{in, n1, n2, n3}),
		AndMWay(nandalu.Bus{in, n1, n2, sel3}),
		AndMWay(nandalu.Bus{in, n1, sel2, n3}),
		AndMWay(nandalu.Bus{in, n1, sel2, sel3}),
		AndMWay(nandalu.Bus{in, sel1, n2, n3}),
		AndMWay(nandalu.Bus{in, sel1, n2, sel3}),
		AndMWay(nandalu.Bus{in, sel1, sel2, n3}),
		AndMWay(nandalu.Bus{in, sel1, sel2, sel3}),
	}
}
