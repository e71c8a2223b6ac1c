// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package expr evaluates integer operand expressions like "-(3+4)" or
// "0x7fff & ~12". Expressions use starlark syntax.
package expr

import (
	"math"

	"github.com/pkg/errors"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// ErrExpression is the cause of errors returned for expressions that do not
// evaluate to an integer.
var ErrExpression = errors.New("not an integer expression")

// ErrRange is the cause of errors returned for results that do not fit the
// requested width.
var ErrRange = errors.New("value out of range")

// Env holds named integer constants usable in expressions.
type Env map[string]int64

// Word returns an Env with the 16 bits word limits: MIN and MAX.
func Word() Env {
	return Env{"MIN": math.MinInt16, "MAX": math.MaxInt16}
}

// Int evaluates expr to an integer.
func Int(expr string, env Env) (int64, error) {
	thread := starlark.Thread{Name: "expr"}
	opts := syntax.FileOptions{}
	pred := make(starlark.StringDict, len(env))
	for k, v := range env {
		pred[k] = starlark.MakeInt64(v)
	}
	prog := "rc = " + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return 0, errors.Wrapf(err, "in %q", expr)
	}
	rc, ok := dict["rc"].(starlark.Int)
	if !ok {
		return 0, errors.Wrapf(ErrExpression, "in %q: got %s", expr, typeOf(dict["rc"]))
	}
	v, ok := rc.Int64()
	if !ok {
		return 0, errors.Wrapf(ErrRange, "in %q: %s", expr, rc)
	}
	return v, nil
}

// Int16 evaluates expr to an integer in the int16 range.
func Int16(expr string, env Env) (int16, error) {
	v, err := Int(expr, env)
	if err != nil {
		return 0, err
	}
	if v < math.MinInt16 || v > math.MaxInt16 {
		return 0, errors.Wrapf(ErrRange, "in %q: %d does not fit in 16 bits", expr, v)
	}
	return int16(v), nil
}

func typeOf(v starlark.Value) string {
	if v == nil {
		return "nothing"
	}
	return v.Type()
}
