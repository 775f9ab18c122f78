// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Command cruxlines ranks symbol definitions across a multi-language
// repository by reference centrality and git-history frecency.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"cruxlines/internal/pipeline"
)

func main() {
	os.Exit(run())
}

// errRun wraps any error that originates inside runAnalyze, once the
// pipeline has actually started. Errors reaching run() unwrapped came
// from cobra's own flag/argument parsing and never reached RunE.
var errRun = errors.New("run failed")

func run() int {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, pipeline.ErrInvalidArgument) {
			return 2
		}
		if errors.Is(err, errRun) {
			return 1
		}
		// Never reached runAnalyze at all: a cobra flag/argument error.
		return 2
	}
	return 0
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "cruxlines [-u|--references] <path> [<path> ...]",
		Short:         "Rank symbol definitions across a repository by reference centrality",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runAnalyze,
	}

	cmd.Flags().BoolP("references", "u", false, "Include per-definition reference locations in the output")
	cmd.Flags().Int("max-file-size", 1_000_000, "Skip files larger than this many bytes")
	cmd.Flags().Int("workers", runtime.GOMAXPROCS(0), "Number of concurrent parse/extract workers")

	viper.BindPFlag("references", cmd.Flags().Lookup("references"))
	viper.BindPFlag("max-file-size", cmd.Flags().Lookup("max-file-size"))
	viper.BindPFlag("workers", cmd.Flags().Lookup("workers"))

	viper.SetEnvPrefix("CRUXLINES")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg := pipeline.Config{
		Paths:       args,
		References:  viper.GetBool("references"),
		MaxFileSize: int64(viper.GetInt("max-file-size")),
		Workers:     viper.GetInt("workers"),
	}

	result, err := pipeline.Run(ctx, cfg)
	if err != nil {
		return fmt.Errorf("%w: %w", errRun, err)
	}

	for _, skip := range result.Skips {
		fmt.Fprintf(os.Stderr, "SKIP %s: %s\n", skip.Path, skip.Reason)
	}

	if err := pipeline.Emit(os.Stdout, result); err != nil {
		return fmt.Errorf("%w: writing output: %w", errRun, err)
	}

	return nil
}
