/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"
)

func validateCmd() *cli.Command {
	return &cli.Command{
		Name:                  "validate",
		EnableShellCompletion: true,
		Usage:                 "Load the catalog and report every skipped definition",
		Description: `Load the catalog, embedded or layered under --data, and print a load report
listing the sources used, entity counts and every definition that was skipped
with the reason.

Exit status is 3 when any definition was skipped, which makes the command
usable as a CI check for catalog edits.

Examples:
  aicctl validate
  aicctl --data ./catalog validate --format yaml -o report.yaml`,
		Flags: []cli.Flag{
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}

			ctx, cancel := withCommandTimeout(ctx)
			defer cancel()

			res, err := loadCatalog(ctx, cmd)
			if err != nil {
				return err
			}

			report := res.Report(version)
			if err := writeOutput(ctx, cmd, report); err != nil {
				return err
			}

			slog.Info("validation completed",
				"load_id", res.ID,
				"items", report.Stats.Items,
				"machines", report.Stats.Machines,
				"recipes", report.Stats.Recipes,
				"problems", len(report.Problems),
				"duration", res.Duration)

			if res.HasProblems() {
				return fmt.Errorf("%w: %d definition(s) skipped", errProblems, len(res.Problems))
			}
			return nil
		},
	}
}
