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

package header

import (
	"fmt"
	"time"

	"github.com/mchmarny/aic-catalog/pkg/errors"
)

// Kind represents the type of a catalog document.
type Kind string

// Valid Kind constants for all catalog document types.
const (
	KindItemCatalog    Kind = "ItemCatalog"
	KindMachineCatalog Kind = "MachineCatalog"
	KindRecipeCatalog  Kind = "RecipeCatalog"
	KindLoadReport     Kind = "LoadReport"
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	return string(k)
}

// IsValid reports whether k is one of the recognized kinds.
func (k Kind) IsValid() bool {
	switch k {
	case KindItemCatalog, KindMachineCatalog, KindRecipeCatalog, KindLoadReport:
		return true
	default:
		return false
	}
}

// Header carries the kind, schema version and free-form metadata of a
// catalog document.
type Header struct {
	// Kind is the type of the document.
	Kind Kind `json:"kind,omitempty" yaml:"kind,omitempty"`

	// APIVersion is the schema version of the document.
	APIVersion string `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`

	// Metadata contains key-value pairs describing the document.
	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Init sets kind and apiVersion and resets Metadata to a timestamp plus the
// optional tool version.
func (h *Header) Init(kind Kind, apiVersion string, version string) {
	h.Kind = kind
	h.APIVersion = apiVersion
	h.Metadata = make(map[string]string)
	h.Metadata["timestamp"] = time.Now().UTC().Format(time.RFC3339)
	if version != "" {
		h.Metadata["version"] = version
	}
}

// Expect verifies the header declares the wanted kind and apiVersion.
func (h *Header) Expect(kind Kind, apiVersion string) error {
	switch {
	case h.Kind == "":
		return errors.New(errors.ErrCodeInvalidRequest, "document declares no kind")
	case !h.Kind.IsValid():
		return errors.NewWithContext(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("unknown document kind %q", h.Kind),
			map[string]any{"kind": h.Kind.String()})
	case h.Kind != kind:
		return errors.NewWithContext(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("unexpected document kind %q, want %q", h.Kind, kind),
			map[string]any{"kind": h.Kind.String()})
	case h.APIVersion != apiVersion:
		return errors.NewWithContext(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("unsupported apiVersion %q, want %q", h.APIVersion, apiVersion),
			map[string]any{"kind": h.Kind.String(), "apiVersion": h.APIVersion})
	}
	return nil
}
