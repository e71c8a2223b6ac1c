// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package alu

import (
	"github.com/db47h/nandalu"
	"github.com/db47h/nandalu/hwlib"
)

// A Row is the result of one ALU evaluation on 16 bits operands.
type Row struct {
	Function string `yaml:"function"`
	Control  string `yaml:"control"`
	X        int16  `yaml:"x"`
	Y        int16  `yaml:"y"`
	Out      string `yaml:"out"`
	Value    int16  `yaml:"value"`
	ZR       bool   `yaml:"zr"`
	NG       bool   `yaml:"ng"`
}

// Eval runs x and y through the ALU with the given control word and returns
// the result as a Row. Function is left empty when c does not select a named
// function.
func Eval(x, y int16, c Control) Row {
	out, zr, ng := Compute(hwlib.Bus16(x), hwlib.Bus16(y), c)
	r := Row{
		Control: c.String(),
		X:       x,
		Y:       y,
		Out:     out.String(),
		Value:   hwlib.Int16(out),
		ZR:      zr == nandalu.High,
		NG:      ng == nandalu.High,
	}
	if f, ok := LookupControl(c); ok {
		r.Function = f.String()
	}
	return r
}

// Table evaluates all named functions for x and y.
func Table(x, y int16) []Row {
	fs := Functions()
	rows := make([]Row, 0, len(fs))
	for _, f := range fs {
		rows = append(rows, Eval(x, y, f.Control()))
	}
	return rows
}
