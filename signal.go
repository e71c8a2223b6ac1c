// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package nandalu

// A Signal is the state of a single wire.
type Signal uint8

//go:generate go tool stringer -type=Signal
const (
	Low Signal = iota
	High
)

// FromBool returns High for true, Low for false.
func FromBool(b bool) Signal {
	if b {
		return High
	}
	return Low
}

// Bool returns true if s is High.
func (s Signal) Bool() bool { return s == High }

// Bit returns '1' for High and '0' for Low.
func (s Signal) Bit() rune {
	if s == High {
		return '1'
	}
	return '0'
}
