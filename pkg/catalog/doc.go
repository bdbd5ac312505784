// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package catalog loads the static item, machine and recipe catalog and
// builds the indexed database from it.
//
// # Documents
//
// The catalog is three YAML documents, each with the common header:
//
//   - items.yaml (kind ItemCatalog)
//   - machines.yaml (kind MachineCatalog)
//   - recipes.yaml (kind RecipeCatalog)
//
// Recipe definitions name their machine and items:
//
//	recipes:
//	  - machine: Refining Unit
//	    output:
//	      Ferrium: 1
//	    ingredients:
//	      Ferrium Ore: 1
//
// Output and ingredient mappings keep their declaration order; the first
// output names the recipe.
//
// # Data Providers
//
// The documents are compiled into the binary. A LayeredDataProvider lets an
// external directory replace any of them:
//
//	embedded := catalog.DefaultDataProvider()
//	layered, err := catalog.NewLayeredDataProvider(embedded, catalog.LayeredProviderConfig{
//	    ExternalDir: "/etc/aic",
//	})
//
// External files are checked for path traversal, symlinks and size.
//
// # Loading
//
// Load decodes the three documents concurrently, then builds entities in
// order: items, machines, recipes. A definition that fails validation,
// names an unknown item or machine (ErrCodeUnresolvedReference) or fails
// construction is skipped and reported as a Problem; the rest of the
// catalog still loads. Duplicate names are reported and the first
// declaration wins.
//
//	res, err := catalog.Load(ctx, layered)
//	if err != nil {
//	    return err // document-level failure
//	}
//	for _, p := range res.Problems {
//	    slog.Warn("skipped", "definition", p.Definition, "code", p.Code)
//	}
//	recipes := res.Database.GetRecipesForItem("Ferrium")
package catalog
