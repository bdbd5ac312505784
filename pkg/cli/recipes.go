/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/mchmarny/aic-catalog/pkg/database"
	"github.com/mchmarny/aic-catalog/pkg/recipe"
)

func recipesCmd() *cli.Command {
	return &cli.Command{
		Name:                  "recipes",
		EnableShellCompletion: true,
		Usage:                 "List recipes, optionally by output item or machine",
		Description: `List recipes with their cycle time, throughput and ratio.

Without filters every recipe is listed in catalog order. --item lists the
recipes producing an item; --machine lists the recipes a machine runs. Both
together list the recipes producing the item on that machine. Unknown names
yield an empty listing.

Examples:
  aicctl recipes --item Ferrium
  aicctl recipes --machine "Refining Unit" --format json`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "item",
				Aliases: []string{"i"},
				Usage:   "Name of the output item",
			},
			&cli.StringFlag{
				Name:    "machine",
				Aliases: []string{"m"},
				Usage:   "Name of the machine",
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

			recipes := selectRecipes(res.Database, cmd.String("item"), cmd.String("machine"))
			slog.Debug("listing recipes", "count", len(recipes), "load_id", res.ID)
			return writeOutput(ctx, cmd, listRecipes(recipes))
		},
	}
}

// selectRecipes applies the --item and --machine filters through the
// database indexes.
func selectRecipes(db *database.Database, itemName, machineName string) []*recipe.Recipe {
	switch {
	case itemName == "" && machineName == "":
		return db.Recipes()
	case machineName == "":
		return db.GetRecipesForItem(itemName)
	case itemName == "":
		return db.GetRecipesForMachine(machineName)
	}

	onMachine := make(map[*recipe.Recipe]bool)
	for _, r := range db.GetRecipesForMachine(machineName) {
		onMachine[r] = true
	}
	out := make([]*recipe.Recipe, 0)
	for _, r := range db.GetRecipesForItem(itemName) {
		if onMachine[r] {
			out = append(out, r)
		}
	}
	return out
}
