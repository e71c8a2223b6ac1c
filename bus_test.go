package nandalu_test

import (
	"testing"

	hw "github.com/db47h/nandalu"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignal(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("Low", hw.Low.String())
	assert.Equal("High", hw.High.String())
	assert.Equal("Signal(2)", hw.Signal(2).String())
	assert.Equal(hw.High, hw.FromBool(true))
	assert.Equal(hw.Low, hw.FromBool(false))
	assert.True(hw.High.Bool())
	assert.False(hw.Low.Bool())
	assert.Equal('1', hw.High.Bit())
	assert.Equal('0', hw.Low.Bit())
}

func TestParseBus(t *testing.T) {
	td := []struct {
		in  string
		out hw.Bus
		err string
	}{
		{"0", hw.Bus{hw.Low}, ""},
		{"1", hw.Bus{hw.High}, ""},
		{"0110", hw.Bus{hw.Low, hw.High, hw.High, hw.Low}, ""},
		{"1_0", hw.Bus{hw.High, hw.Low}, ""},
		{"", nil, `in "": no signals: invalid bus literal`},
		{"__", nil, `in "__": no signals: invalid bus literal`},
		{"01x1", nil, `in "01x1" at pos 3: unexpected 'x': invalid bus literal`},
	}
	for _, d := range td {
		b, err := hw.ParseBus(d.in)
		if d.err != "" {
			require.Error(t, err, d.in)
			assert.Equal(t, d.err, err.Error())
			assert.Equal(t, hw.ErrBusSyntax, errors.Cause(err))
			continue
		}
		require.NoError(t, err, d.in)
		assert.Equal(t, d.out, b)
		assert.Equal(t, len(d.out), b.Width())
	}
	assert.Panics(t, func() { hw.MustParseBus("2") })
}

func TestBus(t *testing.T) {
	assert := assert.New(t)

	b := hw.NewBus(4)
	assert.Equal("0000", b.String())
	assert.Equal("111", hw.Const(3, hw.High).String())

	c := hw.MustParseBus("1010")
	d := c.Clone()
	assert.True(c.Equal(d))
	d[0] = hw.Low
	assert.False(c.Equal(d))
	assert.Equal("1010", c.String())
	assert.False(c.Equal(hw.MustParseBus("10100")))

	assert.Panics(func() { hw.NewBus(0) })
}

func TestInputs(t *testing.T) {
	in := hw.Inputs(3)
	require.Len(t, in, 8)
	for i, b := range in {
		assert.Equal(t, 3, b.Width())
		v := 0
		for _, s := range b {
			v = v<<1 | int(s)
		}
		assert.Equal(t, i, v, "%s", b)
	}
	assert.Equal(t, "011", in[3].String())
	assert.Equal(t, []hw.Bus{{hw.Low}, {hw.High}}, hw.Inputs(1))
	assert.Panics(t, func() { hw.Inputs(0) })
}

func widthPanic(t *testing.T, msg string, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err := r.(error)
		assert.Equal(t, hw.ErrWidth, errors.Cause(err))
		assert.Equal(t, msg, err.Error())
	}()
	f()
}

func TestCheckWidth(t *testing.T) {
	a, b := hw.NewBus(4), hw.NewBus(3)

	hw.CheckWidth("op", 4, a, a)
	assert.Equal(t, 4, hw.SameWidth("op", a, a, a))

	widthPanic(t, "op: operand 1 is 3 bits wide, expected 4: bus width mismatch", func() { hw.CheckWidth("op", 4, a, b) })
	widthPanic(t, "op: operand 2 is 3 bits wide, expected 4: bus width mismatch", func() { hw.SameWidth("op", a, a, b) })
	widthPanic(t, "op: invalid width 0: bus width mismatch", func() { hw.SameWidth("op", nil) })
}
