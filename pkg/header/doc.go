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

// Package header provides the common header of catalog documents.
//
// Every catalog document (items, machines, recipes) and every load report
// starts with the same three fields:
//
//	kind: RecipeCatalog
//	apiVersion: aic.catalog/v1
//	metadata:
//	  source: embedded
//
// # Kind Field
//
// The Kind field identifies the document type:
//   - ItemCatalog: item definitions
//   - MachineCatalog: machine definitions
//   - RecipeCatalog: recipe definitions
//   - LoadReport: problems found while loading (CLI output)
//
// # Validation
//
// Loaders call Expect once the document is decoded:
//
//	if err := doc.Expect(header.KindRecipeCatalog, defaults.CatalogAPIVersion); err != nil {
//	    return err
//	}
package header
