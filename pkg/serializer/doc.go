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

// Package serializer renders catalog listings and load reports as JSON, YAML
// or a terminal table.
//
// # Formats
//
//   - json: indented, suitable for piping into jq
//   - yaml: the same shape as the catalog documents under pkg/catalog/data
//   - table: aligned columns for values implementing Tabular, flattened
//     FIELD/VALUE pairs for everything else
//
// # Usage
//
//	format, err := serializer.ParseFormat("table")
//	if err != nil {
//	    return err
//	}
//	ser := serializer.NewFileWriterOrStdout(format, outputPath)
//	if c, ok := ser.(serializer.Closer); ok {
//	    defer c.Close()
//	}
//	if err := ser.Serialize(ctx, listing); err != nil {
//	    return err
//	}
//
// An empty output path writes to stdout. When the file cannot be created the
// writer logs the failure and falls back to stdout.
package serializer
