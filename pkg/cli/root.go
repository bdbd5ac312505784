/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/mchmarny/aic-catalog/pkg/errors"
	"github.com/mchmarny/aic-catalog/pkg/logging"
	"github.com/mchmarny/aic-catalog/pkg/serializer"
)

const (
	name           = "aicctl"
	versionDefault = "dev"

	envDataDir = "AIC_DATA_DIR"

	exitGeneral  = 1
	exitCanceled = 2
	exitProblems = 3
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatTable),
		Usage:   fmt.Sprintf("Output format (supported values: %s)", serializer.SupportedFormats()),
	}
}

// errProblems marks a catalog that loaded with skipped definitions.
var errProblems = stderrors.New("catalog has problems")

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Usage:                 "Browse and validate the production chain catalog",
		Version:               fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "data",
				Aliases: []string{"d"},
				Usage:   "Directory with catalog documents overriding the embedded ones",
				Sources: cli.EnvVars(envDataDir),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "Log level (debug, info, warn, error)",
				Sources: cli.EnvVars(logging.EnvVarLogLevel),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			slog.Debug("starting",
				"name", name,
				"version", version,
				"commit", commit,
				"date", date)
			return ctx, nil
		},
		Commands: []*cli.Command{
			itemsCmd(),
			machinesCmd(),
			recipesCmd(),
			validateCmd(),
		},
	}
}

// Execute runs the command tree against os.Args and exits non-zero on failure.
// SIGINT and SIGTERM cancel the running command.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args, os.Stderr); err != nil {
		stop()
		os.Exit(exitCode(err))
	}
}

func run(ctx context.Context, args []string, stderr io.Writer) error {
	err := newRootCmd().Run(ctx, args)
	if err != nil {
		fmt.Fprintln(stderr, err)
	}
	return err
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case stderrors.Is(err, errProblems):
		return exitProblems
	case stderrors.Is(err, context.Canceled),
		stderrors.Is(err, context.DeadlineExceeded),
		errors.IsCode(err, errors.ErrCodeTimeout):
		return exitCanceled
	default:
		return exitGeneral
	}
}
