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

package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/mchmarny/aic-catalog/pkg/defaults"
	"github.com/mchmarny/aic-catalog/pkg/errors"
)

//go:embed data/*.yaml
var dataFS embed.FS

const (
	sourceEmbedded = "embedded"
	sourceExternal = "external"
)

// DataProvider abstracts access to catalog documents.
// This allows layering an external directory over the embedded catalog.
type DataProvider interface {
	// ReadFile reads a document by name (relative to the data directory).
	ReadFile(name string) ([]byte, error)

	// Source describes where a document comes from (for logs and reports).
	Source(name string) string
}

// EmbeddedDataProvider serves documents from a read-only filesystem.
type EmbeddedDataProvider struct {
	fs     fs.FS
	prefix string
}

// NewEmbeddedDataProvider creates a provider rooted at prefix inside fsys.
func NewEmbeddedDataProvider(fsys fs.FS, prefix string) *EmbeddedDataProvider {
	return &EmbeddedDataProvider{
		fs:     fsys,
		prefix: prefix,
	}
}

// DefaultDataProvider returns a provider over the catalog compiled into the
// binary.
func DefaultDataProvider() *EmbeddedDataProvider {
	return NewEmbeddedDataProvider(dataFS, "data")
}

// ReadFile reads a document from the embedded filesystem.
func (p *EmbeddedDataProvider) ReadFile(name string) ([]byte, error) {
	fullPath := path.Join(p.prefix, name)
	slog.Debug("reading document from embedded provider", "name", name, "path", fullPath)
	data, err := fs.ReadFile(p.fs, fullPath)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNotFound,
			fmt.Sprintf("embedded document not found: %s", name), err)
	}
	return data, nil
}

// Source returns "embedded" for all documents.
func (p *EmbeddedDataProvider) Source(string) string {
	return sourceEmbedded
}

// LayeredProviderConfig configures the layered data provider.
type LayeredProviderConfig struct {
	// ExternalDir is the path to the external data directory.
	ExternalDir string

	// MaxFileSize is the maximum allowed file size in bytes
	// (default: defaults.MaxCatalogFileSize).
	MaxFileSize int64

	// AllowSymlinks allows symlinks in the external directory (default: false).
	AllowSymlinks bool
}

// LayeredDataProvider overlays an external directory on top of the embedded
// catalog. A document present in the external directory completely replaces
// the embedded one.
type LayeredDataProvider struct {
	embedded    *EmbeddedDataProvider
	externalDir string

	// documents found in the external directory
	externalFiles map[string]bool
}

// NewLayeredDataProvider creates a provider that layers external documents
// over embedded ones. Returns an error if:
//   - the external directory doesn't exist or is not a directory
//   - it holds none of the catalog documents
//   - path traversal or a symlink is detected
//   - a file exceeds the size limit
func NewLayeredDataProvider(embedded *EmbeddedDataProvider, config LayeredProviderConfig) (*LayeredDataProvider, error) {
	slog.Debug("creating layered data provider",
		"external_dir", config.ExternalDir,
		"max_file_size", config.MaxFileSize,
		"allow_symlinks", config.AllowSymlinks)

	if config.MaxFileSize == 0 {
		config.MaxFileSize = defaults.MaxCatalogFileSize
	}

	info, err := os.Stat(config.ExternalDir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNotFound,
			fmt.Sprintf("external data directory not found: %s", config.ExternalDir), err)
	}
	if !info.IsDir() {
		return nil, errors.New(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("external data path is not a directory: %s", config.ExternalDir))
	}

	externalFiles := make(map[string]bool)
	err = filepath.WalkDir(config.ExternalDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		relPath, relErr := filepath.Rel(config.ExternalDir, p)
		if relErr != nil {
			return fmt.Errorf("failed to get relative path: %w", relErr)
		}

		if strings.Contains(relPath, "..") {
			return errors.New(errors.ErrCodeInvalidRequest,
				fmt.Sprintf("path traversal detected: %s", relPath))
		}

		if !config.AllowSymlinks {
			linfo, lstatErr := os.Lstat(p)
			if lstatErr != nil {
				return fmt.Errorf("failed to stat file: %w", lstatErr)
			}
			if linfo.Mode()&os.ModeSymlink != 0 {
				return errors.New(errors.ErrCodeInvalidRequest,
					fmt.Sprintf("symlinks not allowed: %s", relPath))
			}
		}

		finfo, statErr := d.Info()
		if statErr != nil {
			return fmt.Errorf("failed to get file info: %w", statErr)
		}
		if finfo.Size() > config.MaxFileSize {
			return errors.New(errors.ErrCodeInvalidRequest,
				fmt.Sprintf("file too large (%d bytes, max %d): %s", finfo.Size(), config.MaxFileSize, relPath))
		}

		externalFiles[filepath.ToSlash(relPath)] = true
		slog.Debug("discovered external file", "path", relPath, "size", finfo.Size())
		return nil
	})
	if err != nil {
		return nil, err
	}

	found := 0
	for _, name := range defaults.CatalogFiles() {
		if externalFiles[name] {
			found++
		}
	}
	if found == 0 {
		return nil, errors.New(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("external data directory holds none of %s: %s",
				strings.Join(defaults.CatalogFiles(), ", "), config.ExternalDir))
	}

	slog.Info("layered data provider initialized",
		"external_dir", config.ExternalDir,
		"external_files", len(externalFiles),
		"catalog_documents", found)

	return &LayeredDataProvider{
		embedded:      embedded,
		externalDir:   config.ExternalDir,
		externalFiles: externalFiles,
	}, nil
}

// ReadFile reads a document, checking the external directory first.
func (p *LayeredDataProvider) ReadFile(name string) ([]byte, error) {
	if p.externalFiles[name] {
		data, err := os.ReadFile(filepath.Join(p.externalDir, filepath.FromSlash(name)))
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal,
				fmt.Sprintf("failed to read external document %s", name), err)
		}
		slog.Debug("read from external data directory", "name", name)
		return data, nil
	}

	slog.Debug("falling back to embedded data", "name", name)
	return p.embedded.ReadFile(name)
}

// Source returns "external" or "embedded" depending on where the document
// comes from.
func (p *LayeredDataProvider) Source(name string) string {
	if p.externalFiles[name] {
		return sourceExternal
	}
	return sourceEmbedded
}

// NewDataProvider returns the embedded provider when externalDir is empty and
// a layered provider over it otherwise.
func NewDataProvider(externalDir string) (DataProvider, error) {
	embedded := DefaultDataProvider()
	if externalDir == "" {
		return embedded, nil
	}
	layered, err := NewLayeredDataProvider(embedded, LayeredProviderConfig{ExternalDir: externalDir})
	if err != nil {
		return nil, err
	}
	return layered, nil
}
