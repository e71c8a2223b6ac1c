// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/db47h/nandalu"
	"github.com/db47h/nandalu/hwlib"
	"github.com/db47h/nandalu/translate"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// gate describes a single bit gate for truth table printing.
type gate struct {
	in, out []string
	f       func(in nandalu.Bus) nandalu.Bus
}

func gate2(g func(a, b nandalu.Signal) nandalu.Signal) gate {
	return gate{
		[]string{"a", "b"}, []string{"out"},
		func(in nandalu.Bus) nandalu.Bus { return nandalu.Bus{g(in[0], in[1])} },
	}
}

var gates = map[string]gate{
	"nand": gate2(hwlib.Nand),
	"and":  gate2(hwlib.And),
	"or":   gate2(hwlib.Or),
	"xor":  gate2(hwlib.Xor),
	"nor":  gate2(hwlib.Nor),
	"xnor": gate2(hwlib.Xnor),
	"not": {
		[]string{"in"}, []string{"out"},
		func(in nandalu.Bus) nandalu.Bus { return nandalu.Bus{hwlib.Not(in[0])} },
	},
	"mux": {
		[]string{"a", "b", "sel"}, []string{"out"},
		func(in nandalu.Bus) nandalu.Bus { return nandalu.Bus{hwlib.Mux(in[0], in[1], in[2])} },
	},
	"dmux": {
		[]string{"in", "sel"}, []string{"a", "b"},
		func(in nandalu.Bus) nandalu.Bus {
			a, b := hwlib.DMux(in[0], in[1])
			return nandalu.Bus{a, b}
		},
	},
}

func gateNames() []string {
	names := make([]string, 0, len(gates))
	for n := range gates {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func newGateCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "gate NAME",
		Short:     translate.From("Print the truth table of a gate"),
		Long:      translate.From("Print the truth table of a single bit gate. NAME is one of: %s.", strings.Join(gateNames(), ", ")),
		Args:      cobra.ExactArgs(1),
		ValidArgs: gateNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, ok := gates[strings.ToLower(args[0])]
			if !ok {
				return errors.Errorf("unknown gate %q", args[0])
			}
			printTruthTable(cmd.OutOrStdout(), g)
			return nil
		},
	}
}

func printTruthTable(w io.Writer, g gate) {
	fmt.Fprintf(w, "%s | %s\n", strings.Join(g.in, " "), strings.Join(g.out, " "))
	for _, in := range nandalu.Inputs(len(g.in)) {
		fmt.Fprintf(w, "%s | %s\n", spaced(g.in, in), spaced(g.out, g.f(in)))
	}
}

// spaced renders each signal of b as a bit right aligned under its pin name.
func spaced(names []string, b nandalu.Bus) string {
	parts := make([]string, len(b))
	for i, s := range b {
		parts[i] = fmt.Sprintf("%*c", len(names[i]), s.Bit())
	}
	return strings.Join(parts, " ")
}
