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

	"github.com/mchmarny/aic-catalog/pkg/item"
	"github.com/mchmarny/aic-catalog/pkg/machine"
)

func machinesCmd() *cli.Command {
	return &cli.Command{
		Name:                  "machines",
		EnableShellCompletion: true,
		Usage:                 "List catalog machines",
		Description: `List every machine with its footprint, cycle time, slots and power draw.

Examples:
  aicctl machines
  aicctl machines --region wuling --format json`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "region",
				Usage: fmt.Sprintf("Only list machines of a region (supported values: %s)", item.Regions()),
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}

			var region item.Region
			if s := cmd.String("region"); s != "" {
				r, ok := item.ParseRegion(s)
				if !ok {
					return fmt.Errorf("region: %q, supported values: %v", s, item.Regions())
				}
				region = r
			}

			ctx, cancel := withCommandTimeout(ctx)
			defer cancel()

			res, err := loadCatalog(ctx, cmd)
			if err != nil {
				return err
			}

			machines := res.Database.Machines()
			if region != "" {
				matched := make([]*machine.Machine, 0, len(machines))
				for _, m := range machines {
					if m.Region() == region {
						matched = append(matched, m)
					}
				}
				machines = matched
			}

			slog.Debug("listing machines", "count", len(machines), "region", region, "load_id", res.ID)
			return writeOutput(ctx, cmd, listMachines(machines))
		},
	}
}
