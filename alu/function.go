// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package alu

import (
	"strings"

	"github.com/db47h/nandalu"
	"github.com/pkg/errors"
)

// ErrFunction is the cause of errors returned by ParseFunction.
var ErrFunction = errors.New("unknown ALU function")

// Function is one of the named ALU functions.
type Function int

//go:generate go tool stringer -linecomment -type=Function
const (
	Zero      Function = iota // 0
	One                       // 1
	MinusOne                  // -1
	X                         // x
	Y                         // y
	NotX                      // !x
	NotY                      // !y
	NegX                      // -x
	NegY                      // -y
	XPlusOne                  // x+1
	YPlusOne                  // y+1
	XMinusOne                 // x-1
	YMinusOne                 // y-1
	XPlusY                    // x+y
	XMinusY                   // x-y
	YMinusX                   // y-x
	XAndY                     // x&y
	XOrY                      // x|y
)

const functionCount = XOrY + 1

const (
	l = nandalu.Low
	h = nandalu.High
)

var controls = [functionCount]Control{
	Zero:      {h, l, h, l, h, l},
	One:       {h, h, h, h, h, h},
	MinusOne:  {h, h, h, l, h, l},
	X:         {l, l, h, h, l, l},
	Y:         {h, h, l, l, l, l},
	NotX:      {l, l, h, h, l, h},
	NotY:      {h, h, l, l, l, h},
	NegX:      {l, l, h, h, h, h},
	NegY:      {h, h, l, l, h, h},
	XPlusOne:  {l, h, h, h, h, h},
	YPlusOne:  {h, h, l, h, h, h},
	XMinusOne: {l, l, h, h, h, l},
	YMinusOne: {h, h, l, l, h, l},
	XPlusY:    {l, l, l, l, h, l},
	XMinusY:   {l, h, l, l, h, h},
	YMinusX:   {l, l, l, h, h, h},
	XAndY:     {l, l, l, l, l, l},
	XOrY:      {l, h, l, h, l, h},
}

var evals = [functionCount]func(x, y int16) int16{
	Zero:      func(x, y int16) int16 { return 0 },
	One:       func(x, y int16) int16 { return 1 },
	MinusOne:  func(x, y int16) int16 { return -1 },
	X:         func(x, y int16) int16 { return x },
	Y:         func(x, y int16) int16 { return y },
	NotX:      func(x, y int16) int16 { return ^x },
	NotY:      func(x, y int16) int16 { return ^y },
	NegX:      func(x, y int16) int16 { return -x },
	NegY:      func(x, y int16) int16 { return -y },
	XPlusOne:  func(x, y int16) int16 { return x + 1 },
	YPlusOne:  func(x, y int16) int16 { return y + 1 },
	XMinusOne: func(x, y int16) int16 { return x - 1 },
	YMinusOne: func(x, y int16) int16 { return y - 1 },
	XPlusY:    func(x, y int16) int16 { return x + y },
	XMinusY:   func(x, y int16) int16 { return x - y },
	YMinusX:   func(x, y int16) int16 { return y - x },
	XAndY:     func(x, y int16) int16 { return x & y },
	XOrY:      func(x, y int16) int16 { return x | y },
}

// Functions returns all named functions, in declaration order.
func Functions() []Function {
	r := make([]Function, functionCount)
	for i := range r {
		r[i] = Function(i)
	}
	return r
}

// Valid reports whether f is one of the named functions.
func (f Function) Valid() bool { return f >= 0 && f < functionCount }

// Control returns the control word that selects f. It panics if f is not
// valid.
func (f Function) Control() Control {
	if !f.Valid() {
		panic(errors.Errorf("invalid ALU function %d", int(f)))
	}
	return controls[f]
}

// Eval computes f on native integers, with the same wrap around as the ALU.
// It panics if f is not valid.
func (f Function) Eval(x, y int16) int16 {
	if !f.Valid() {
		panic(errors.Errorf("invalid ALU function %d", int(f)))
	}
	return evals[f](x, y)
}

// ParseFunction returns the function with the given name, as returned by
// Function.String. Blanks in name are ignored: "x + 1" is the same as "x+1".
func ParseFunction(name string) (Function, error) {
	n := strings.Join(strings.Fields(name), "")
	for _, f := range Functions() {
		if f.String() == n {
			return f, nil
		}
	}
	return 0, errors.Wrapf(ErrFunction, "%q", name)
}

// LookupControl returns the named function selected by c, if any. Several
// control words compute the same function: only the canonical ones returned
// by Function.Control are found.
func LookupControl(c Control) (Function, bool) {
	for f, fc := range controls {
		if fc == c {
			return Function(f), true
		}
	}
	return 0, false
}
