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

package defaults

// Catalog document names and size limits.
const (
	// ItemsFile is the catalog document holding item definitions.
	ItemsFile = "items.yaml"

	// MachinesFile is the catalog document holding machine definitions.
	MachinesFile = "machines.yaml"

	// RecipesFile is the catalog document holding recipe definitions.
	RecipesFile = "recipes.yaml"

	// MaxCatalogFileSize is the largest external catalog document accepted
	// by the layered provider (10MB).
	MaxCatalogFileSize = 10 * 1024 * 1024
)

// CatalogAPIVersion is the apiVersion every catalog document must declare.
const CatalogAPIVersion = "aic.catalog/v1"

// CatalogFiles returns the catalog document names in load order.
func CatalogFiles() []string {
	return []string{ItemsFile, MachinesFile, RecipesFile}
}
