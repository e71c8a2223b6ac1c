// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"strings"

	"github.com/db47h/nandalu/alu"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

// controlValue is a pflag.Value for ALU control words.
type controlValue struct {
	c *alu.Control
}

var _ pflag.Value = (*controlValue)(nil)

func newControlValue(c *alu.Control) *controlValue {
	return &controlValue{c: c}
}

func (v *controlValue) String() string {
	if v.c == nil {
		return ""
	}
	return v.c.String()
}

func (v *controlValue) Set(s string) error {
	c, err := alu.ParseControl(s)
	if err != nil {
		return err
	}
	*v.c = c
	return nil
}

func (v *controlValue) Type() string { return "control" }

// format is an output format.
type format string

const (
	formatText format = "text"
	formatYAML format = "yaml"
)

var formats = []format{formatText, formatYAML}

var _ pflag.Value = (*format)(nil)

func (f *format) String() string { return string(*f) }

func (f *format) Set(s string) error {
	s = strings.ToLower(s)
	for _, ff := range formats {
		if string(ff) == s {
			*f = ff
			return nil
		}
	}
	return errors.Errorf("unsupported output format %q", s)
}

func (f *format) Type() string { return "format" }
