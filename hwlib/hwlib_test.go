package hwlib_test

import (
	"testing"

	hw "github.com/db47h/nandalu"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

// bus is a shorthand for hw.MustParseBus.
func bus(s string) hw.Bus { return hw.MustParseBus(s) }

// requireWidthPanic checks that f panics with an error caused by hw.ErrWidth.
func requireWidthPanic(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.Equal(t, hw.ErrWidth, errors.Cause(err))
	}()
	f()
}
