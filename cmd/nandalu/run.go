// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/db47h/nandalu/alu"
	"github.com/db47h/nandalu/hwlib"
	"github.com/db47h/nandalu/internal/expr"
	"github.com/db47h/nandalu/translate"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	var (
		fn string
		c  = alu.XPlusY.Control()
		cv = newControlValue(&c)
	)

	cmd := &cobra.Command{
		Use:   "run X Y",
		Short: translate.From("Run two operands through the ALU"),
		Long: translate.From(`Run two operands through the ALU and print the result bus, the zr and ng
flags and the decoded result.

X and Y are integer expressions, evaluated to 16 bits values. MIN and MAX
are the int16 limits. Use -- before negative operands:

  $ nandalu run --fn x-y -- -9 "MAX & 0xff"

The function defaults to x+y. Select another one by name with --fn, or give
any of the 64 control words with --control, either as six bits (zx nx zy ny f
no) or as pin assignments like "zx=1, nx, f".`),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, y, err := operands(args)
			if err != nil {
				return err
			}
			if fn != "" {
				f, err := alu.ParseFunction(fn)
				if err != nil {
					return err
				}
				c = f.Control()
			}
			log.WithFields(log.Fields{"x": x, "y": y, "control": c}).Debug("run")
			printRun(cmd.OutOrStdout(), alu.Eval(x, y, c))
			return nil
		},
	}

	cmd.Flags().StringVarP(&fn, "fn", "f", "", "ALU function, one of: "+functionNames())
	cmd.Flags().VarP(cv, "control", "c", "ALU control word")
	cmd.MarkFlagsMutuallyExclusive("fn", "control")

	return cmd
}

func operands(args []string) (x, y int16, err error) {
	env := expr.Word()
	if x, err = expr.Int16(args[0], env); err != nil {
		return 0, 0, errors.Wrap(err, "operand X")
	}
	if y, err = expr.Int16(args[1], env); err != nil {
		return 0, 0, errors.Wrap(err, "operand Y")
	}
	return x, y, nil
}

func functionNames() string {
	var s string
	for i, f := range alu.Functions() {
		if i > 0 {
			s += " "
		}
		s += f.String()
	}
	return s
}

func printRun(w io.Writer, r alu.Row) {
	fn := r.Function
	if fn == "" {
		fn = "?"
	}
	// numbers are formatted outside the printer to keep them ungrouped
	fmt.Fprintln(w, translate.From("x:       %s  %s", fmt.Sprintf("%6d", r.X), hwlib.Bus16(r.X)))
	fmt.Fprintln(w, translate.From("y:       %s  %s", fmt.Sprintf("%6d", r.Y), hwlib.Bus16(r.Y)))
	fmt.Fprintln(w, translate.From("control: %s (%s)", r.Control, fn))
	fmt.Fprintln(w, translate.From("out:     %s  %s", fmt.Sprintf("%6d", r.Value), r.Out))
	fmt.Fprintln(w, translate.From("zr: %d  ng: %d", bit(r.ZR), bit(r.NG)))
}

func bit(b bool) int {
	if b {
		return 1
	}
	return 0
}
