// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package alu implements the ALU of a 16 bits two's-complement machine, built
// from the NAND based parts in hwlib.
//
// Six control bits select the function computed from the x and y inputs. Of
// the 64 possible control words, 18 compute well known functions, listed in
// Functions.
package alu

import (
	"github.com/db47h/nandalu"
	"github.com/db47h/nandalu/hwlib"
)

// ALU computes a function of x and y selected by the control bits.
//
//	Inputs: x[n], y[n], zx, nx, zy, ny, f, no
//	Outputs: out[n], zr, ng
//	Function: if zx { x = 0 }
//	          if nx { x = !x }
//	          if zy { y = 0 }
//	          if ny { y = !y }
//	          if f { out = x + y } else { out = x & y }
//	          if no { out = !out }
//	          zr = out == 0
//	          ng = out < 0
//
// Each stage works on the output of the previous one. The addition wraps
// around and overflow is not reported. x and y must have the same width.
func ALU(x, y nandalu.Bus, zx, nx, zy, ny, f, no nandalu.Signal) (out nandalu.Bus, zr, ng nandalu.Signal) {
	zero := nandalu.NewBus(nandalu.SameWidth("ALU", x, y))

	x = hwlib.MuxN(x, zero, zx)
	x = hwlib.MuxN(x, hwlib.NotN(x), nx)
	y = hwlib.MuxN(y, zero, zy)
	y = hwlib.MuxN(y, hwlib.NotN(y), ny)

	out = hwlib.MuxN(hwlib.AndN(x, y), hwlib.AdderN(x, y), f)
	out = hwlib.MuxN(out, hwlib.NotN(out), no)

	return out, hwlib.Not(hwlib.OrMWay(out)), out[0]
}

// Compute is like ALU with the control bits packed in a Control.
func Compute(x, y nandalu.Bus, c Control) (out nandalu.Bus, zr, ng nandalu.Signal) {
	return ALU(x, y, c.ZX, c.NX, c.ZY, c.NY, c.F, c.NO)
}

// Reference computes the same function as ALU on native integers. It does not
// use any gate and serves as a model to check the gate level implementation.
func Reference(x, y int16, c Control) int16 {
	if c.ZX == nandalu.High {
		x = 0
	}
	if c.NX == nandalu.High {
		x = ^x
	}
	if c.ZY == nandalu.High {
		y = 0
	}
	if c.NY == nandalu.High {
		y = ^y
	}
	var out int16
	if c.F == nandalu.High {
		out = x + y
	} else {
		out = x & y
	}
	if c.NO == nandalu.High {
		out = ^out
	}
	return out
}
