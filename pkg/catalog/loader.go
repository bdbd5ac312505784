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
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/mchmarny/aic-catalog/pkg/database"
	"github.com/mchmarny/aic-catalog/pkg/defaults"
	"github.com/mchmarny/aic-catalog/pkg/errors"
	"github.com/mchmarny/aic-catalog/pkg/header"
	"github.com/mchmarny/aic-catalog/pkg/item"
	"github.com/mchmarny/aic-catalog/pkg/machine"
	"github.com/mchmarny/aic-catalog/pkg/recipe"
)

// Problem records one definition that was skipped during a load.
type Problem struct {
	Document   string           `json:"document" yaml:"document"`
	Index      int              `json:"index" yaml:"index"`
	Definition string           `json:"definition" yaml:"definition"`
	Code       errors.ErrorCode `json:"code" yaml:"code"`
	Message    string           `json:"message" yaml:"message"`

	// Err is the underlying error.
	Err error `json:"-" yaml:"-"`
}

// String formats the problem as "recipes.yaml[3] Ferrium on Refining Unit: ...".
func (p Problem) String() string {
	return fmt.Sprintf("%s[%d] %s: %s", p.Document, p.Index, p.Definition, p.Message)
}

// Result is the outcome of a catalog load. Definitions that failed are
// listed in Problems; everything else is in Database.
type Result struct {
	ID       string
	Database *database.Database
	Problems []Problem
	Sources  map[string]string
	Duration time.Duration
}

// HasProblems reports whether any definition was skipped.
func (r *Result) HasProblems() bool {
	return len(r.Problems) > 0
}

// Lookup resolves item and machine names. *database.Database implements it.
type Lookup interface {
	GetItem(key string) (item.Item, bool)
	GetMachine(key string) (*machine.Machine, bool)
}

// Load reads the three catalog documents from provider, builds every item,
// machine and recipe it can, and indexes them. A nil provider loads the
// embedded catalog.
//
// Definitions that fail decoding, validation, resolution or construction are
// skipped and reported in Result.Problems. Document-level failures
// (unreadable, malformed outside the entries, wrong kind or apiVersion) and
// context expiry fail the load.
func Load(ctx context.Context, provider DataProvider) (*Result, error) {
	start := time.Now()
	if provider == nil {
		provider = DefaultDataProvider()
	}

	ctx, cancel := context.WithTimeout(ctx, defaults.CatalogLoadTimeout)
	defer cancel()

	id := uuid.New().String()
	logger := slog.With("load_id", id)
	logger.Debug("loading catalog")

	docs, err := readDocuments(ctx, provider)
	if err != nil {
		catalogLoads.WithLabelValues("failed").Inc()
		logger.Error("catalog load failed", "error", err)
		return nil, err
	}

	b := &builder{logger: logger}
	items := b.buildItems(docs.items.Items)
	machines := b.buildMachines(docs.machines.Machines)
	db := database.New(items, machines, nil)

	if err := ctx.Err(); err != nil {
		catalogLoads.WithLabelValues("failed").Inc()
		return nil, contextError("catalog load interrupted", err)
	}

	db.SetRecipes(b.buildRecipes(db, docs.recipes.Recipes))

	res := &Result{
		ID:       id,
		Database: db,
		Problems: b.problems,
		Sources:  make(map[string]string, 3),
		Duration: time.Since(start),
	}
	for _, name := range defaults.CatalogFiles() {
		res.Sources[name] = provider.Source(name)
	}

	outcome := "clean"
	if res.HasProblems() {
		outcome = "problems"
	}
	catalogLoads.WithLabelValues(outcome).Inc()
	catalogLoadDuration.Observe(res.Duration.Seconds())

	stats := db.Stats()
	logger.Info("catalog loaded",
		"items", stats.Items,
		"machines", stats.Machines,
		"recipes", stats.Recipes,
		"problems", len(res.Problems),
		"duration", res.Duration)

	return res, nil
}

type documents struct {
	items    ItemDocument
	machines MachineDocument
	recipes  RecipeDocument
}

type expecter interface {
	Expect(kind header.Kind, apiVersion string) error
}

// readDocuments decodes the three documents concurrently.
func readDocuments(ctx context.Context, provider DataProvider) (*documents, error) {
	docs := &documents{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return decodeDocument(gctx, provider, defaults.ItemsFile, header.KindItemCatalog, &docs.items)
	})
	g.Go(func() error {
		return decodeDocument(gctx, provider, defaults.MachinesFile, header.KindMachineCatalog, &docs.machines)
	})
	g.Go(func() error {
		return decodeDocument(gctx, provider, defaults.RecipesFile, header.KindRecipeCatalog, &docs.recipes)
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}

func decodeDocument(ctx context.Context, provider DataProvider, name string, kind header.Kind, doc expecter) error {
	ctx, cancel := context.WithTimeout(ctx, defaults.CatalogDocumentTimeout)
	defer cancel()

	if err := ctx.Err(); err != nil {
		return contextError(fmt.Sprintf("reading %s interrupted", name), err)
	}

	errCtx := map[string]any{"document": name, "source": provider.Source(name)}

	data, err := provider.ReadFile(name)
	if err != nil {
		code := errors.CodeOf(err)
		if code == "" {
			code = errors.ErrCodeInternal
		}
		return errors.WrapWithContext(code, fmt.Sprintf("failed to read %s", name), err, errCtx)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(doc); err != nil {
		if stderrors.Is(err, io.EOF) {
			return errors.NewWithContext(errors.ErrCodeInvalidRequest, fmt.Sprintf("%s is empty", name), errCtx)
		}
		return errors.WrapWithContext(errors.ErrCodeInvalidRequest, fmt.Sprintf("malformed %s", name), err, errCtx)
	}

	if err := doc.Expect(kind, defaults.CatalogAPIVersion); err != nil {
		return errors.WrapWithContext(errors.ErrCodeInvalidRequest, fmt.Sprintf("invalid %s", name), err, errCtx)
	}

	slog.Debug("decoded catalog document", "document", name, "source", errCtx["source"], "bytes", len(data))
	return nil
}

func contextError(msg string, err error) error {
	if stderrors.Is(err, context.DeadlineExceeded) {
		return errors.Wrap(errors.ErrCodeTimeout, msg, err)
	}
	return errors.Wrap(errors.ErrCodeInternal, msg, err)
}

// builder turns definitions into entities and collects problems.
type builder struct {
	logger   *slog.Logger
	problems []Problem
}

func (b *builder) report(document string, index int, definition string, err error) {
	p := Problem{
		Document:   document,
		Index:      index,
		Definition: definition,
		Code:       errors.CodeOf(err),
		Message:    err.Error(),
		Err:        err,
	}
	b.problems = append(b.problems, p)
	catalogProblems.WithLabelValues(document, string(p.Code)).Inc()
	b.logger.Warn("skipping catalog definition",
		"document", document,
		"index", index,
		"definition", definition,
		"code", p.Code,
		"error", err)
}

func duplicate(kind, name string, first int) error {
	return errors.NewWithContext(errors.ErrCodeInvalidRequest,
		fmt.Sprintf("duplicate %s %q, first declared at index %d", kind, name, first),
		map[string]any{kind: name})
}

func (b *builder) buildItems(defs []ItemDef) []item.Item {
	out := make([]item.Item, 0, len(defs))
	seen := make(map[string]int, len(defs))
	for i, def := range defs {
		if def.decodeErr != nil {
			b.report(defaults.ItemsFile, i, def.Name, def.decodeErr)
			continue
		}
		if err := validateDef(def, map[string]any{"item": def.Name}); err != nil {
			b.report(defaults.ItemsFile, i, def.Name, err)
			continue
		}
		if first, ok := seen[def.Name]; ok {
			b.report(defaults.ItemsFile, i, def.Name, duplicate("item", def.Name, first))
			continue
		}
		seen[def.Name] = i
		out = append(out, def.Build())
	}
	return out
}

func (b *builder) buildMachines(defs []MachineDef) []*machine.Machine {
	out := make([]*machine.Machine, 0, len(defs))
	seen := make(map[string]int, len(defs))
	for i, def := range defs {
		if def.decodeErr != nil {
			b.report(defaults.MachinesFile, i, def.Name, def.decodeErr)
			continue
		}
		if err := validateDef(def, map[string]any{"machine": def.Name}); err != nil {
			b.report(defaults.MachinesFile, i, def.Name, err)
			continue
		}
		if first, ok := seen[def.Name]; ok {
			b.report(defaults.MachinesFile, i, def.Name, duplicate("machine", def.Name, first))
			continue
		}
		m, err := def.Build()
		if err != nil {
			b.report(defaults.MachinesFile, i, def.Name, err)
			continue
		}
		seen[def.Name] = i
		out = append(out, m)
	}
	return out
}

func (b *builder) buildRecipes(lookup Lookup, defs []RecipeDef) []*recipe.Recipe {
	out := make([]*recipe.Recipe, 0, len(defs))
	for i, def := range defs {
		label := def.Label()
		if def.decodeErr != nil {
			b.report(defaults.RecipesFile, i, label, def.decodeErr)
			continue
		}
		if err := def.checkCounts(); err != nil {
			b.report(defaults.RecipesFile, i, label, err)
			continue
		}
		if err := validateDef(def, map[string]any{"definition": label}); err != nil {
			b.report(defaults.RecipesFile, i, label, err)
			continue
		}
		r, err := ResolveRecipe(def, lookup)
		if err != nil {
			b.report(defaults.RecipesFile, i, label, err)
			continue
		}
		out = append(out, r)
	}
	return out
}

// ResolveRecipe resolves the names in def against lookup and builds the
// recipe. Unknown names fail with ErrCodeUnresolvedReference listing every
// missing name; construction failures are returned unchanged.
func ResolveRecipe(def RecipeDef, lookup Lookup) (*recipe.Recipe, error) {
	var missingItems []string

	m, machineOK := lookup.GetMachine(def.Machine)
	output := resolveStacks(lookup, def.Output, &missingItems)
	ingredients := resolveStacks(lookup, def.Ingredients, &missingItems)

	if !machineOK || len(missingItems) > 0 {
		ctx := map[string]any{"definition": def.Label()}
		msg := "unresolved references:"
		if !machineOK {
			ctx["machine"] = def.Machine
			msg += fmt.Sprintf(" machine %q", def.Machine)
		}
		if len(missingItems) > 0 {
			ctx["items"] = missingItems
			msg += fmt.Sprintf(" items %q", missingItems)
		}
		return nil, errors.NewWithContext(errors.ErrCodeUnresolvedReference, msg, ctx)
	}

	var opts []recipe.Option
	if def.TimeSeconds != nil {
		opts = append(opts, recipe.WithTimeSeconds(*def.TimeSeconds))
	}
	return recipe.New(m, output, ingredients, opts...)
}

func resolveStacks(lookup Lookup, qs Quantities, missing *[]string) recipe.Stacks {
	out := make(recipe.Stacks, 0, len(qs))
	for _, q := range qs {
		it, ok := lookup.GetItem(q.Item)
		if !ok {
			*missing = append(*missing, q.Item)
			continue
		}
		out = append(out, recipe.Stack{Item: it, Quantity: q.Count})
	}
	return out
}

var (
	defaultOnce   sync.Once
	defaultResult *Result
	defaultErr    error
)

// Default loads and caches the embedded catalog. Later calls return the
// cached result.
func Default(ctx context.Context) (*Result, error) {
	loaded := false
	defaultOnce.Do(func() {
		catalogCacheMisses.Inc()
		loaded = true
		defaultResult, defaultErr = Load(ctx, DefaultDataProvider())
	})

	if !loaded && defaultErr == nil {
		catalogCacheHits.Inc()
	}
	return defaultResult, defaultErr
}
