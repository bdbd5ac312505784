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

package database

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/mchmarny/aic-catalog/pkg/item"
	"github.com/mchmarny/aic-catalog/pkg/machine"
	"github.com/mchmarny/aic-catalog/pkg/recipe"
)

// index maps an output item name or machine name to the recipes that
// reference it, in recipe-list order. An index is never mutated once
// published.
type index struct {
	byOutput  map[string][]*recipe.Recipe
	byMachine map[string][]*recipe.Recipe
}

// Database holds the item and machine registries, the recipe list and the
// two recipe indexes derived from it.
//
// Queries are safe for concurrent use. The index is rebuilt into fresh maps
// and swapped in atomically, so readers see either the old or the new index.
type Database struct {
	mu       sync.RWMutex
	items    map[string]item.Item
	machines map[string]*machine.Machine
	recipes  []*recipe.Recipe

	idx atomic.Pointer[index]
}

// New registers the given items, machines and recipes and builds the
// indexes. When two entries share a name the later one replaces the earlier.
// Nil machines and recipes are ignored.
func New(items []item.Item, machines []*machine.Machine, recipes []*recipe.Recipe) *Database {
	db := &Database{
		items:    make(map[string]item.Item, len(items)),
		machines: make(map[string]*machine.Machine, len(machines)),
	}
	for _, it := range items {
		db.items[it.Key()] = it
	}
	for _, m := range machines {
		if m == nil {
			continue
		}
		db.machines[m.Name()] = m
	}
	db.recipes = compact(recipes)
	db.rebuildLocked()
	return db
}

// GetItem returns the item registered under key.
func (db *Database) GetItem(key string) (item.Item, bool) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	it, ok := db.items[key]
	return it, ok
}

// GetMachine returns the machine registered under key.
func (db *Database) GetMachine(key string) (*machine.Machine, bool) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	m, ok := db.machines[key]
	return m, ok
}

// GetRecipesForItem returns the recipes producing the item. A lookup naming
// a registered item uses that item's canonical key; any other string probes
// the output index directly. The result is never nil.
func (db *Database) GetRecipesForItem(lookup string) []*recipe.Recipe {
	key := lookup
	if it, ok := db.GetItem(lookup); ok {
		key = it.Key()
	}
	return db.probe(indexOutput, key)
}

// GetRecipesForOutput probes the output index with name.
func (db *Database) GetRecipesForOutput(name string) []*recipe.Recipe {
	return db.probe(indexOutput, name)
}

// GetRecipesForMachine returns the recipes that run on the machine. It
// resolves lookup the same way GetRecipesForItem does.
func (db *Database) GetRecipesForMachine(lookup string) []*recipe.Recipe {
	key := lookup
	if m, ok := db.GetMachine(lookup); ok {
		key = m.Name()
	}
	return db.probe(indexMachine, key)
}

func (db *Database) probe(which, key string) []*recipe.Recipe {
	idx := db.idx.Load()
	bucket := idx.byOutput
	if which == indexMachine {
		bucket = idx.byMachine
	}

	found, ok := bucket[key]
	recordLookup(which, ok)
	if !ok {
		return []*recipe.Recipe{}
	}
	out := make([]*recipe.Recipe, len(found))
	copy(out, found)
	return out
}

// Items returns all registered items sorted by name.
func (db *Database) Items() []item.Item {
	db.mu.RLock()
	out := make([]item.Item, 0, len(db.items))
	for _, it := range db.items {
		out = append(out, it)
	}
	db.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// Machines returns all registered machines sorted by name.
func (db *Database) Machines() []*machine.Machine {
	db.mu.RLock()
	out := make([]*machine.Machine, 0, len(db.machines))
	for _, m := range db.machines {
		out = append(out, m)
	}
	db.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// Recipes returns a copy of the recipe list in insertion order.
func (db *Database) Recipes() []*recipe.Recipe {
	db.mu.RLock()
	defer db.mu.RUnlock()
	out := make([]*recipe.Recipe, len(db.recipes))
	copy(out, db.recipes)
	return out
}

// SetRecipes replaces the recipe list and rebuilds the indexes.
func (db *Database) SetRecipes(recipes []*recipe.Recipe) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.recipes = compact(recipes)
	db.rebuildLocked()
}

// Rebuild recomputes both indexes from the current recipe list.
func (db *Database) Rebuild() {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.rebuildLocked()
}

// rebuildLocked must be called with mu held for writing, or before db is
// shared.
func (db *Database) rebuildLocked() {
	start := time.Now()
	db.idx.Store(buildIndex(db.recipes))
	recordRebuild(len(db.recipes), time.Since(start))
}

func buildIndex(recipes []*recipe.Recipe) *index {
	idx := &index{
		byOutput:  make(map[string][]*recipe.Recipe),
		byMachine: make(map[string][]*recipe.Recipe),
	}
	for _, r := range recipes {
		for _, name := range r.Output().Names() {
			idx.byOutput[name] = append(idx.byOutput[name], r)
		}
		name := r.Machine().Name()
		idx.byMachine[name] = append(idx.byMachine[name], r)
	}
	return idx
}

func compact(recipes []*recipe.Recipe) []*recipe.Recipe {
	out := make([]*recipe.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if r != nil {
			out = append(out, r)
		}
	}
	return out
}

// Stats summarizes the registry and index sizes.
type Stats struct {
	Items       int `json:"items" yaml:"items"`
	Machines    int `json:"machines" yaml:"machines"`
	Recipes     int `json:"recipes" yaml:"recipes"`
	OutputKeys  int `json:"outputKeys" yaml:"outputKeys"`
	MachineKeys int `json:"machineKeys" yaml:"machineKeys"`
}

// Stats returns the current registry and index sizes.
func (db *Database) Stats() Stats {
	idx := db.idx.Load()
	db.mu.RLock()
	defer db.mu.RUnlock()
	return Stats{
		Items:       len(db.items),
		Machines:    len(db.machines),
		Recipes:     len(db.recipes),
		OutputKeys:  len(idx.byOutput),
		MachineKeys: len(idx.byMachine),
	}
}
