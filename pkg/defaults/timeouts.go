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

import "time"

// Catalog loading timeouts.
const (
	// CatalogLoadTimeout is the default timeout for loading and indexing the
	// whole catalog. Loaders respect shorter parent context deadlines.
	CatalogLoadTimeout = 10 * time.Second

	// CatalogDocumentTimeout bounds reading and decoding a single catalog
	// document. Should be less than CatalogLoadTimeout.
	CatalogDocumentTimeout = 5 * time.Second
)

// CLI timeouts for command-line operations.
const (
	// CLICommandTimeout is the default timeout for a single aicctl command.
	CLICommandTimeout = 30 * time.Second
)
