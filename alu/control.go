// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package alu

import (
	"strings"

	"github.com/db47h/nandalu"
	"github.com/db47h/nandalu/internal/hdl"
	"github.com/pkg/errors"
)

// ErrControl is the cause of errors returned by ParseControl.
var ErrControl = errors.New("invalid control word")

// Control holds the six ALU control bits. Each bit acts independently:
//
//	ZX: zero the x input
//	NX: negate the x input (after ZX)
//	ZY: zero the y input
//	NY: negate the y input (after ZY)
//	F:  High for x + y, Low for x & y
//	NO: negate the output
type Control struct {
	ZX, NX, ZY, NY, F, NO nandalu.Signal
}

// ControlPins are the control pin names, in the order used by Control.Bus and
// Control.String.
var ControlPins = [...]string{"zx", "nx", "zy", "ny", "f", "no"}

// Bus returns the control bits as a 6 bits bus, zx first.
func (c Control) Bus() nandalu.Bus {
	return nandalu.Bus{c.ZX, c.NX, c.ZY, c.NY, c.F, c.NO}
}

// ControlFromBus returns the control word for a 6 bits bus, zx first.
// It panics if b is not 6 bits wide.
func ControlFromBus(b nandalu.Bus) Control {
	nandalu.CheckWidth("ControlFromBus", len(ControlPins), b)
	return Control{b[0], b[1], b[2], b[3], b[4], b[5]}
}

// String returns the control bits as a string of six '0' or '1', zx first.
func (c Control) String() string { return c.Bus().String() }

// Controls returns all 64 control words. Controls()[i].Bus() is the binary
// representation of i.
func Controls() []Control {
	in := nandalu.Inputs(len(ControlPins))
	r := make([]Control, len(in))
	for i, b := range in {
		r[i] = ControlFromBus(b)
	}
	return r
}

// ParseControl parses a control word. Two forms are accepted:
//
//	"101010"                   six bits, in zx, nx, zy, ny, f, no order.
//	"zx=1, nx=0, zy=1, f"      pin assignments. A bare pin name sets it High,
//	                           pins not listed are Low.
func ParseControl(s string) (Control, error) {
	s = strings.TrimSpace(s)
	if isBits(s) {
		b, err := nandalu.ParseBus(s)
		if err != nil {
			return Control{}, errors.Wrap(ErrControl, err.Error())
		}
		if len(b) != len(ControlPins) {
			return Control{}, errors.Wrapf(ErrControl, "in %q: expected %d bits, got %d", s, len(ControlPins), len(b))
		}
		return ControlFromBus(b), nil
	}

	as, err := hdl.Parse(s)
	if err != nil {
		return Control{}, errors.Wrap(ErrControl, err.Error())
	}
	if len(as) == 0 {
		return Control{}, errors.Wrap(ErrControl, "empty control word")
	}
	b := nandalu.NewBus(len(ControlPins))
	seen := make(map[string]bool, len(as))
	for _, a := range as {
		idx := pinIndex(a.Name)
		if idx < 0 {
			return Control{}, errors.Wrapf(ErrControl, "in %q at pos %d: unknown pin %q", s, a.Pos+1, a.Name)
		}
		if seen[a.Name] {
			return Control{}, errors.Wrapf(ErrControl, "in %q at pos %d: pin %q assigned twice", s, a.Pos+1, a.Name)
		}
		seen[a.Name] = true
		switch a.Value {
		case 0:
			b[idx] = nandalu.Low
		case 1:
			b[idx] = nandalu.High
		default:
			return Control{}, errors.Wrapf(ErrControl, "in %q at pos %d: invalid value %d for pin %q", s, a.Pos+1, a.Value, a.Name)
		}
	}
	return ControlFromBus(b), nil
}

// MustParseControl is like ParseControl but panics on error.
func MustParseControl(s string) Control {
	c, err := ParseControl(s)
	if err != nil {
		panic(err)
	}
	return c
}

func isBits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r != '0' && r != '1' && r != '_' {
			return false
		}
	}
	return true
}

func pinIndex(name string) int {
	for i, p := range ControlPins {
		if p == name {
			return i
		}
	}
	return -1
}
