// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Command nandalu runs values through a 16 bits ALU built from NAND gates.
package main

import (
	"os"

	"github.com/db47h/nandalu/translate"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "nandalu",
		Short:         translate.From("NAND gate ALU simulator"),
		Long:          translate.From("Evaluate the gates and the 16 bits ALU of a two's complement machine, built from NAND gates only."),
		SilenceUsage:  true,
		SilenceErrors: true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				log.SetLevel(log.DebugLevel)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	rootCmd.AddCommand(newRunCmd(), newTableCmd(), newGateCmd())
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error(err)
		log.Debugf("%+v", err)
		os.Exit(1)
	}
}
