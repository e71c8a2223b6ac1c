// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwtest provides utility functions for testing parts.
package hwtest

import (
	"math/rand"
	"strings"
	"testing"
	"testing/quick"
	"time"

	"github.com/db47h/nandalu"
	"github.com/db47h/nandalu/hwlib"
	"github.com/google/go-cmp/cmp"
)

// A Part is any combinational part viewed as a function from an input bus to
// an output bus. Single bit gates are adapted to this form with the Gate*
// helpers.
type Part func(in nandalu.Bus) nandalu.Bus

// Gate1 adapts a one input gate to a Part.
func Gate1(g func(a nandalu.Signal) nandalu.Signal) Part {
	return func(in nandalu.Bus) nandalu.Bus { return nandalu.Bus{g(in[0])} }
}

// Gate2 adapts a two inputs gate to a Part.
func Gate2(g func(a, b nandalu.Signal) nandalu.Signal) Part {
	return func(in nandalu.Bus) nandalu.Bus { return nandalu.Bus{g(in[0], in[1])} }
}

// Gate3 adapts a three inputs gate to a Part.
func Gate3(g func(a, b, c nandalu.Signal) nandalu.Signal) Part {
	return func(in nandalu.Bus) nandalu.Bus { return nandalu.Bus{g(in[0], in[1], in[2])} }
}

// Inputs returns all 2^n input combinations for a part with n inputs, as
// returned by nandalu.Inputs.
func Inputs(n int) []nandalu.Bus {
	return nandalu.Inputs(n)
}

// TruthTable checks part against a truth table. result[o][i] is the expected
// value of output o for the input combination i as returned by Inputs.
func TruthTable(t *testing.T, name string, inputs int, part Part, result [][]bool) {
	t.Helper()
	for i, in := range Inputs(inputs) {
		out := part(in)
		if len(out) != len(result) {
			t.Fatalf("%s: got %d outputs, expected %d", name, len(out), len(result))
		}
		for o := range out {
			if exp := nandalu.FromBool(result[o][i]); out[o] != exp {
				t.Errorf("%s %v: out[%d] = %v, got %v", name, in, o, exp, out[o])
			}
		}
	}
}

func randBus(r *rand.Rand, n int) nandalu.Bus {
	b := nandalu.NewBus(n)
	for i := range b {
		b[i] = nandalu.FromBool(r.Int63()&(1<<62) != 0)
	}
	return b
}

// ComparePart takes two parts with n inputs and compares their outputs given
// the same inputs: all Low, all High, then random inputs. Parts with up to 12
// inputs are tested with 2^n random inputs, larger ones with 4096.
func ComparePart(t *testing.T, n int, part1, part2 Part) {
	t.Helper()

	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	check := func(in nandalu.Bus) {
		t.Helper()
		o1, o2 := part1(in), part2(in)
		if d := cmp.Diff(o1, o2); d != "" {
			t.Fatalf("\nInputs %s\nOutputs differ (-part1 +part2):\n%s", in, d)
		}
	}

	iter := n
	if iter > 12 {
		iter = 12
	}
	iter = 1 << uint(iter)

	start := time.Now()
	check(nandalu.Const(n, nandalu.Low))
	check(nandalu.Const(n, nandalu.High))
	for i := 0; i < iter; i++ {
		check(randBus(r, n))
	}
	t.Logf("%d inputs. %d evaluations in %v", n, iter+2, time.Since(start))
}

// CompareBusOp checks a two operands 16 bits bus operation against a reference
// function on native integers, using testing/quick.
func CompareBusOp(t *testing.T, name string, op func(a, b nandalu.Bus) nandalu.Bus, ref func(a, b int16) int16) {
	t.Helper()
	f := func(x, y int16) bool {
		return hwlib.Int16(op(hwlib.Bus16(x), hwlib.Bus16(y))) == ref(x, y)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatalf("%s: %v", name, err)
	}
}

// CompareBusOp1 is like CompareBusOp for single operand operations.
func CompareBusOp1(t *testing.T, name string, op func(a nandalu.Bus) nandalu.Bus, ref func(a int16) int16) {
	t.Helper()
	f := func(x int16) bool {
		return hwlib.Int16(op(hwlib.Bus16(x))) == ref(x)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatalf("%s: %v", name, err)
	}
}

// Signals converts a string of '0' and '1' to a slice of bools, for writing
// truth tables compactly. Spaces are ignored.
func Signals(s string) []bool {
	r := make([]bool, 0, len(s))
	for _, c := range strings.ReplaceAll(s, " ", "") {
		r = append(r, c == '1')
	}
	return r
}
