// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/powerman/structlog"
	"github.com/spf13/cobra"
)

var log = structlog.New()

func main() {

	// logging
	structlog.DefaultLogger.
		SetPrefixKeys(
			structlog.KeyApp,
			structlog.KeyPID, structlog.KeyLevel, structlog.KeyUnit, structlog.KeyTime,
		).
		SetDefaultKeyvals(
			structlog.KeyApp, filepath.Base(os.Args[0]),
			structlog.KeySource, structlog.Auto,
		).
		SetSuffixKeys(structlog.KeySource).
		SetKeysFormat(map[string]string{
			structlog.KeyTime:   " %[2]s",
			structlog.KeySource: " %6[2]s",
			structlog.KeyUnit:   " %6[2]s",
		})

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			if chk.Verbose {
				for i := 5; i > 3; i-- {
					chk.CallerInfo(i)
				}
			}
			os.Exit(1)
		}
	}()

	// run command
	if err := newRootCommand().Execute(); err != nil {
		io.PfRed("\nERROR: %v\n", err)
		os.Exit(1)
	}
}

// newRootCommand returns the ecpvt command
func newRootCommand() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "ecpvt",
		Short: "Evaluates PVT curves of reservoir models",
		Long: `ecpvt evaluates formation volume factors, viscosities and saturated
states of oil and gas in a cell of a reservoir model. Case files are
.yaml, .yml or .json files holding the PVT tables, the PVTNUM region
tags and the native system of units of the model.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			io.Verbose = verbose
			chk.Verbose = verbose
		},
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show messages")
	cmd.AddCommand(
		newCurvesCommand(),
		newEvalCommand(),
	)
	return cmd
}
