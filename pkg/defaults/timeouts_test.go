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

import (
	"testing"
	"time"
)

func TestTimeoutConstants(t *testing.T) {
	tests := []struct {
		name     string
		timeout  time.Duration
		minValue time.Duration
		maxValue time.Duration
	}{
		{"CatalogLoadTimeout", CatalogLoadTimeout, 1 * time.Second, 60 * time.Second},
		{"CatalogDocumentTimeout", CatalogDocumentTimeout, 1 * time.Second, 30 * time.Second},
		{"CLICommandTimeout", CLICommandTimeout, 5 * time.Second, 5 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.timeout < tt.minValue {
				t.Errorf("%s (%v) is below minimum expected value (%v)", tt.name, tt.timeout, tt.minValue)
			}
			if tt.timeout > tt.maxValue {
				t.Errorf("%s (%v) exceeds maximum expected value (%v)", tt.name, tt.timeout, tt.maxValue)
			}
		})
	}
}

func TestTimeoutRelationships(t *testing.T) {
	if CatalogDocumentTimeout >= CatalogLoadTimeout {
		t.Errorf("CatalogDocumentTimeout (%v) should be less than CatalogLoadTimeout (%v)",
			CatalogDocumentTimeout, CatalogLoadTimeout)
	}
	if CatalogLoadTimeout >= CLICommandTimeout {
		t.Errorf("CatalogLoadTimeout (%v) should be less than CLICommandTimeout (%v)",
			CatalogLoadTimeout, CLICommandTimeout)
	}
}

func TestCatalogFiles(t *testing.T) {
	files := CatalogFiles()
	want := []string{ItemsFile, MachinesFile, RecipesFile}
	if len(files) != len(want) {
		t.Fatalf("CatalogFiles() returned %d names, want %d", len(files), len(want))
	}
	for i := range want {
		if files[i] != want[i] {
			t.Errorf("CatalogFiles()[%d] = %q, want %q", i, files[i], want[i])
		}
	}
	if MaxCatalogFileSize <= 0 {
		t.Error("MaxCatalogFileSize must be positive")
	}
}
