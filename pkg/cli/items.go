/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/mchmarny/aic-catalog/pkg/item"
)

func itemsCmd() *cli.Command {
	return &cli.Command{
		Name:                  "items",
		EnableShellCompletion: true,
		Usage:                 "List catalog items",
		Description: `List every item in the catalog, sorted by name.

Examples:
  aicctl items
  aicctl items --fluid --format yaml`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "fluid",
				Usage: "Only list fluids",
			},
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

			items := res.Database.Items()
			if cmd.Bool("fluid") {
				fluids := make([]item.Item, 0, len(items))
				for _, it := range items {
					if it.IsFluid() {
						fluids = append(fluids, it)
					}
				}
				items = fluids
			}

			slog.Debug("listing items", "count", len(items), "load_id", res.ID)
			return writeOutput(ctx, cmd, listItems(items))
		},
	}
}
