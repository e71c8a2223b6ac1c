package alu_test

import (
	"os"
	"testing"
	"testing/quick"

	hw "github.com/db47h/nandalu"
	"github.com/db47h/nandalu/alu"
	hl "github.com/db47h/nandalu/hwlib"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yaml "gopkg.in/yaml.v2"
)

func TestALU_functions(t *testing.T) {
	for _, f := range alu.Functions() {
		c := f.Control()
		for x := int16(1); x <= 4; x++ {
			for y := int16(1); y <= 4; y++ {
				out, zr, ng := alu.Compute(hl.Bus16(x), hl.Bus16(y), c)
				v := hl.Int16(out)
				if exp := f.Eval(x, y); v != exp {
					t.Errorf("%s (%s): x=%d, y=%d: expected %d, got %d", f, c, x, y, exp, v)
				}
				if (zr == hw.High) != (v == 0) {
					t.Errorf("%s: x=%d, y=%d: out=%d, zr=%v", f, x, y, v, zr)
				}
				if (ng == hw.High) != (v < 0) {
					t.Errorf("%s: x=%d, y=%d: out=%d, ng=%v", f, x, y, v, ng)
				}
			}
		}
	}
}

func TestALU_example(t *testing.T) {
	assert := assert.New(t)

	// x+y with x = 5, y = -9
	out, zr, ng := alu.ALU(hl.Bus16(5), hl.Bus16(-9), hw.Low, hw.Low, hw.Low, hw.Low, hw.High, hw.Low)
	assert.Equal("1111111111111100", out.String())
	assert.Equal(int16(-4), hl.Int16(out))
	assert.Equal(hw.Low, zr)
	assert.Equal(hw.High, ng)

	// x-y with x = y
	out, zr, ng = alu.Compute(hl.Bus16(1234), hl.Bus16(1234), alu.XMinusY.Control())
	assert.Equal(int16(0), hl.Int16(out))
	assert.Equal(hw.High, zr)
	assert.Equal(hw.Low, ng)

	// wrap around
	out, _, ng = alu.Compute(hl.Bus16(32767), hl.Bus16(1), alu.XPlusY.Control())
	assert.Equal(int16(-32768), hl.Int16(out))
	assert.Equal(hw.High, ng)
}

func TestALU_controls(t *testing.T) {
	for _, c := range alu.Controls() {
		c := c
		f := func(x, y int16) bool {
			out, zr, ng := alu.Compute(hl.Bus16(x), hl.Bus16(y), c)
			v := hl.Int16(out)
			return v == alu.Reference(x, y, c) &&
				(zr == hw.High) == (v == 0) &&
				(ng == hw.High) == (v < 0)
		}
		if err := quick.Check(f, &quick.Config{MaxCount: 50}); err != nil {
			t.Fatalf("control %s: %v", c, err)
		}
	}
}

func TestALU_width(t *testing.T) {
	out, zr, ng := alu.Compute(hw.MustParseBus("0101"), hw.MustParseBus("0011"), alu.XPlusY.Control())
	assert.Equal(t, "1000", out.String())
	assert.Equal(t, hw.Low, zr)
	assert.Equal(t, hw.High, ng)

	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		require.Equal(t, hw.ErrWidth, errors.Cause(r.(error)))
	}()
	alu.Compute(hl.Bus16(1), hw.MustParseBus("0011"), alu.XPlusY.Control())
}

func TestALU_inputsUnchanged(t *testing.T) {
	x, y := hl.Bus16(-7), hl.Bus16(12)
	xc, yc := x.Clone(), y.Clone()
	for _, c := range alu.Controls() {
		alu.Compute(x, y, c)
	}
	assert.Equal(t, xc, x)
	assert.Equal(t, yc, y)
}

func TestFunction_reference(t *testing.T) {
	for _, f := range alu.Functions() {
		f, c := f, f.Control()
		if err := quick.CheckEqual(f.Eval, func(x, y int16) int16 { return alu.Reference(x, y, c) }, nil); err != nil {
			t.Errorf("%s: %v", f, err)
		}
	}
}

func TestFunction_unique(t *testing.T) {
	seen := make(map[alu.Control]alu.Function)
	for _, f := range alu.Functions() {
		c := f.Control()
		if g, ok := seen[c]; ok {
			t.Errorf("%s and %s share control word %s", f, g, c)
		}
		seen[c] = f
		g, ok := alu.LookupControl(c)
		assert.True(t, ok, "LookupControl(%s)", c)
		assert.Equal(t, f, g)
	}
	assert.Len(t, seen, 18)

	_, ok := alu.LookupControl(alu.MustParseControl("111111"))
	assert.True(t, ok)
	_, ok = alu.LookupControl(alu.MustParseControl("100000"))
	assert.False(t, ok)
}

func TestFunction_invalid(t *testing.T) {
	f := alu.Function(42)
	assert.False(t, f.Valid())
	assert.Equal(t, "Function(42)", f.String())
	assert.Panics(t, func() { f.Control() })
	assert.Panics(t, func() { f.Eval(1, 2) })
}

func TestParseFunction(t *testing.T) {
	td := []struct {
		in  string
		f   alu.Function
		err string
	}{
		{"x+y", alu.XPlusY, ""},
		{" x + 1 ", alu.XPlusOne, ""},
		{"-1", alu.MinusOne, ""},
		{"!y", alu.NotY, ""},
		{"y-x", alu.YMinusX, ""},
		{"x|y", alu.XOrY, ""},
		{"x*y", 0, `"x*y": unknown ALU function`},
		{"", 0, `"": unknown ALU function`},
	}
	for _, d := range td {
		f, err := alu.ParseFunction(d.in)
		if d.err != "" {
			require.Error(t, err, d.in)
			assert.Equal(t, d.err, err.Error())
			assert.Equal(t, alu.ErrFunction, errors.Cause(err))
			continue
		}
		require.NoError(t, err, d.in)
		assert.Equal(t, d.f, f, d.in)
	}
}

func TestParseControl(t *testing.T) {
	td := []struct {
		in  string
		c   string
		err string
	}{
		{"000010", "000010", ""},
		{" 010_011 ", "010011", ""},
		{"zx=1, nx=0, zy=1, ny=0, f=1, no=0", "101010", ""},
		{"f", "000010", ""},
		{"no, nx=1, f", "010011", ""},
		{"zx=0", "000000", ""},
		{"00001", "", `in "00001": expected 6 bits, got 5: invalid control word`},
		{"___", "", `in "___": no signals: invalid bus literal: invalid control word`},
		{"", "", `empty control word: invalid control word`},
		{"zz=1", "", `in "zz=1" at pos 1: unknown pin "zz": invalid control word`},
		{"f, f=0", "", `in "f, f=0" at pos 4: pin "f" assigned twice: invalid control word`},
		{"zx=2", "", `in "zx=2" at pos 1: invalid value 2 for pin "zx": invalid control word`},
		{"zx=", "", `in "zx=" at pos 4: integer value expected after '=': invalid control word`},
		{"zx=18446744073709551617", "", `in "zx=18446744073709551617" at pos 4: integer out of range: invalid control word`},
		{"zx=65537", "", `in "zx=65537" at pos 1: invalid value 65537 for pin "zx": invalid control word`},
	}
	for _, d := range td {
		c, err := alu.ParseControl(d.in)
		if d.err != "" {
			require.Error(t, err, d.in)
			assert.Equal(t, d.err, err.Error())
			assert.Equal(t, alu.ErrControl, errors.Cause(err))
			continue
		}
		require.NoError(t, err, d.in)
		assert.Equal(t, d.c, c.String(), d.in)
	}
}

func TestControls(t *testing.T) {
	cs := alu.Controls()
	require.Len(t, cs, 64)
	assert.Equal(t, "000000", cs[0].String())
	assert.Equal(t, "000010", cs[2].String())
	assert.Equal(t, "101010", cs[42].String())
	assert.Equal(t, "111111", cs[63].String())
	for _, c := range cs {
		assert.Equal(t, c, alu.ControlFromBus(c.Bus()))
	}
}

func TestTable(t *testing.T) {
	data, err := os.ReadFile("testdata/table.yaml")
	require.NoError(t, err)
	var exp struct {
		Rows []alu.Row `yaml:"rows"`
	}
	require.NoError(t, yaml.Unmarshal(data, &exp))
	require.Len(t, exp.Rows, 18)

	assert.Equal(t, exp.Rows, alu.Table(5, -3))
}

func TestEval_unnamed(t *testing.T) {
	r := alu.Eval(5, 3, alu.MustParseControl("100000"))
	assert.Equal(t, "", r.Function)
	assert.Equal(t, "100000", r.Control)
	assert.Equal(t, int16(0), r.Value)
	assert.True(t, r.ZR)
}

func FuzzALU(f *testing.F) {
	f.Add(int16(0), int16(0), uint8(0))
	f.Add(int16(-32768), int16(1), uint8(0x02))
	f.Add(int16(32767), int16(-1), uint8(0x3f))
	f.Add(int16(5), int16(-9), uint8(0x13))
	cs := alu.Controls()
	f.Fuzz(func(t *testing.T, x, y int16, ci uint8) {
		c := cs[ci%64]
		out, zr, ng := alu.Compute(hl.Bus16(x), hl.Bus16(y), c)
		v := hl.Int16(out)
		if exp := alu.Reference(x, y, c); v != exp {
			t.Fatalf("%s: x=%d, y=%d: expected %d, got %d", c, x, y, exp, v)
		}
		if (zr == hw.High) != (v == 0) || (ng == hw.High) != (v < 0) {
			t.Fatalf("%s: x=%d, y=%d: out=%d, zr=%v, ng=%v", c, x, y, v, zr, ng)
		}
	})
}
