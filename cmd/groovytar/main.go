// Copyright (c) 2022 Hirotsuna Mizuno. All rights reserved.
// Use of this source code is governed by the MIT license that can be found in
// the LICENSE file.

// Command groovytar serves and renders identicon avatars.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
)

// logLevelEnv names the environment variable consulted when --log-level is
// not given.
const logLevelEnv = "GROOVYTAR_LOG_LEVEL"

type globalFlags struct {
	logLevel string
	logJSON  bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	gf := &globalFlags{}
	rootCmd := &cobra.Command{
		Use:           "groovytar",
		Short:         "Deterministic SVG identicon avatars",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&gf.logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&gf.logJSON, "log-json", false, "Write logs as JSON")

	rootCmd.AddCommand(
		newServeCmd(gf),
		newRenderCmd(),
		newPaletteCmd(),
	)

	return rootCmd
}

// newLogger creates the logger of a command. The level is taken from the flag,
// then from the environment, and defaults to info.
func (gf *globalFlags) newLogger(w io.Writer) hclog.Logger {
	level := gf.logLevel
	if level == "" {
		level = os.Getenv(logLevelEnv)
	}
	if level == "" {
		level = "info"
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:       "groovytar",
		Level:      hclog.LevelFromString(strings.ToLower(level)),
		JSONFormat: gf.logJSON,
		Output:     w,
	})
}
