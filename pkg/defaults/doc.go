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

// Package defaults holds the constants shared by the catalog loader and the
// CLI: how long a load may take, which documents make up a catalog, and how
// large an external document may be.
//
// Timeouts nest. A CLI command gets CLICommandTimeout; the catalog load inside
// it gets CatalogLoadTimeout; each of the three documents decoded in parallel
// gets CatalogDocumentTimeout.
package defaults
