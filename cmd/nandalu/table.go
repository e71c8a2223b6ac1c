// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/db47h/nandalu/alu"
	"github.com/db47h/nandalu/translate"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	yaml "gopkg.in/yaml.v2"
)

func newTableCmd() *cobra.Command {
	out := formatText

	cmd := &cobra.Command{
		Use:   "table X Y",
		Short: translate.From("Evaluate all named ALU functions"),
		Long: translate.From(`Evaluate the 18 named ALU functions for X and Y and print the results as a
table. X and Y are integer expressions, as for the run command. Use -- before
negative operands:

  $ nandalu table -o yaml -- 5 -3`),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, y, err := operands(args)
			if err != nil {
				return err
			}
			rows := alu.Table(x, y)
			log.Debugf("table: %d rows, format %s", len(rows), out)
			switch out {
			case formatYAML:
				return writeYAML(cmd.OutOrStdout(), rows)
			default:
				return writeText(cmd.OutOrStdout(), rows)
			}
		},
	}

	cmd.Flags().VarP(&out, "output", "o", "output format, text or yaml")

	return cmd
}

func writeYAML(w io.Writer, rows []alu.Row) error {
	b, err := yaml.Marshal(struct {
		Rows []alu.Row `yaml:"rows"`
	}{rows})
	if err != nil {
		return errors.Wrap(err, "yaml")
	}
	_, err = w.Write(b)
	return err
}

func writeText(w io.Writer, rows []alu.Row) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, translate.From("FUNCTION\tCONTROL\tOUT\tVALUE\tZR\tNG"))
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%d\n", r.Function, r.Control, r.Out, r.Value, bit(r.ZR), bit(r.NG))
	}
	return tw.Flush()
}
