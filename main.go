// Package main implements the main entry point for the CHIP-8 interpreter
package main

import (
	"context"
	"errors"
	"os"

	"github.com/retroenv/retrochip8/internal/cli"
	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	opts, err := cli.ParseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, cli.ErrHelpRequested) {
			return
		}

		logger := config.CreateLogger(opts.Debug, opts.Quiet, opts.Trace)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			runner.PrintBanner(logger, opts, version, commit, date)
			logger.Error(usageErr.Error())
			usageErr.ShowUsage()
		} else {
			logger.Error("Invalid arguments", log.Err(err))
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts.Debug, opts.Quiet, opts.Trace)
	runner.PrintBanner(logger, opts, version, commit, date)

	if err := runner.ProcessFile(ctx, logger, opts); err != nil {
		// Handle context cancellation (Ctrl+C) gracefully
		if errors.Is(err, context.Canceled) {
			logger.Info("Operation cancelled")
			return
		}
		logger.Error("Running program failed", log.Err(err))
		os.Exit(1)
	}
}
