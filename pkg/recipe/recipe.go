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

package recipe

import (
	"fmt"
	"math"

	"github.com/mchmarny/aic-catalog/pkg/errors"
	"github.com/mchmarny/aic-catalog/pkg/machine"
)

const secondsPerMinute = 60.0

type settings struct {
	timeSeconds float64
	hasTime     bool
}

// Option is a functional option for configuring a Recipe.
type Option func(*settings)

// WithTimeSeconds sets an explicit cycle time, overriding the machine's.
func WithTimeSeconds(seconds float64) Option {
	return func(s *settings) {
		s.timeSeconds = seconds
		s.hasTime = true
	}
}

// Recipe is one transformation of ingredients into outputs on a machine.
// A Recipe is immutable once built; accessors return copies.
type Recipe struct {
	machine     *machine.Machine
	output      Stacks
	ingredients Stacks
	timeSeconds float64

	name            string
	icon            string
	totalOutput     int
	cyclesPerMinute float64
	itemsPerMinute  float64
}

// New validates and builds a Recipe.
//
// A nil machine or an unnamed item fails with ErrCodeInvalidShape. An empty
// output list, a non-positive quantity, a repeated item, or a cycle time that
// is missing, negative or zero on a machine that is not instantaneous fails
// with ErrCodeInvalidValue.
func New(m *machine.Machine, output, ingredients Stacks, opts ...Option) (*Recipe, error) {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}

	if err := checkShape(m, output, ingredients); err != nil {
		return nil, err
	}

	if len(output) == 0 {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidValue,
			"recipe output must not be empty", map[string]any{"machine": m.Name()})
	}

	if err := checkQuantities(m, "output", output); err != nil {
		return nil, err
	}
	if err := checkQuantities(m, "ingredients", ingredients); err != nil {
		return nil, err
	}

	seconds, err := resolveTime(m, output, s)
	if err != nil {
		return nil, err
	}

	r := &Recipe{
		machine:     m,
		output:      output.clone(),
		ingredients: ingredients.clone(),
		timeSeconds: seconds,
		name:        output[0].Item.Name(),
		icon:        output[0].Item.IconPath(),
		totalOutput: output.Total(),
	}
	if seconds == 0 {
		r.cyclesPerMinute = math.Inf(1)
	} else {
		r.cyclesPerMinute = secondsPerMinute / seconds
	}
	r.itemsPerMinute = r.cyclesPerMinute * float64(r.totalOutput)

	return r, nil
}

func checkShape(m *machine.Machine, lists ...Stacks) error {
	if m == nil {
		return errors.New(errors.ErrCodeInvalidShape, "recipe machine must not be nil")
	}
	for _, list := range lists {
		for i, st := range list {
			if st.Item.Name() == "" {
				return errors.NewWithContext(errors.ErrCodeInvalidShape,
					fmt.Sprintf("stack %d references an unnamed item", i),
					map[string]any{"machine": m.Name(), "index": i})
			}
		}
	}
	return nil
}

func checkQuantities(m *machine.Machine, list string, stacks Stacks) error {
	seen := make(map[string]bool, len(stacks))
	for _, st := range stacks {
		name := st.Item.Key()
		if st.Quantity <= 0 {
			return errors.NewWithContext(errors.ErrCodeInvalidValue,
				fmt.Sprintf("%s quantity for %q must be positive, got %d", list, name, st.Quantity),
				map[string]any{"machine": m.Name(), "item": name, "list": list})
		}
		if seen[name] {
			return errors.NewWithContext(errors.ErrCodeInvalidValue,
				fmt.Sprintf("%s lists %q more than once", list, name),
				map[string]any{"machine": m.Name(), "item": name, "list": list})
		}
		seen[name] = true
	}
	return nil
}

func resolveTime(m *machine.Machine, output Stacks, s settings) (float64, error) {
	ctx := map[string]any{"machine": m.Name(), "item": output[0].Item.Name()}

	seconds, ok := s.timeSeconds, s.hasTime
	if !ok {
		seconds, ok = m.TimeSeconds()
	}
	if !ok {
		return 0, errors.NewWithContext(errors.ErrCodeInvalidValue,
			fmt.Sprintf("no cycle time for recipe on %q: the machine declares none", m.Name()), ctx)
	}
	if seconds < 0 || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return 0, errors.NewWithContext(errors.ErrCodeInvalidValue,
			fmt.Sprintf("cycle time must be a non-negative number of seconds, got %v", seconds), ctx)
	}
	if seconds == 0 && !m.Instantaneous() {
		return 0, errors.NewWithContext(errors.ErrCodeInvalidValue,
			fmt.Sprintf("zero cycle time requires an instantaneous machine, %q is not", m.Name()), ctx)
	}
	return seconds, nil
}

// Name returns the name of the first output item.
func (r *Recipe) Name() string { return r.name }

// Icon returns the icon path of the first output item.
func (r *Recipe) Icon() string { return r.icon }

// Machine returns the machine the recipe runs on.
func (r *Recipe) Machine() *machine.Machine { return r.machine }

// Output returns a copy of the output stacks.
func (r *Recipe) Output() Stacks { return r.output.clone() }

// Ingredients returns a copy of the ingredient stacks.
func (r *Recipe) Ingredients() Stacks { return r.ingredients.clone() }

// TimeSeconds returns the resolved cycle time.
func (r *Recipe) TimeSeconds() float64 { return r.timeSeconds }

// TotalOutputCount returns the number of items produced per cycle.
func (r *Recipe) TotalOutputCount() int { return r.totalOutput }

// CyclesPerMinute returns 60 / TimeSeconds, or +Inf for a zero cycle time.
func (r *Recipe) CyclesPerMinute() float64 { return r.cyclesPerMinute }

// ItemsPerMinute returns CyclesPerMinute × TotalOutputCount.
func (r *Recipe) ItemsPerMinute() float64 { return r.itemsPerMinute }

// OutputPerMinute returns the per-minute rate of one output item, 0 when the
// recipe does not produce it.
func (r *Recipe) OutputPerMinute(name string) float64 {
	qty, ok := r.output.Quantity(name)
	if !ok {
		return 0
	}
	return r.cyclesPerMinute * float64(qty)
}

// Produces reports whether the named item is one of the outputs.
func (r *Recipe) Produces(name string) bool {
	_, ok := r.output.Quantity(name)
	return ok
}

// Ratio returns a display string such as "1× Ferrium Ore → 1× Ferrium".
func (r *Recipe) Ratio() string {
	if len(r.ingredients) == 0 {
		return "→ " + r.output.String()
	}
	return r.ingredients.String() + " → " + r.output.String()
}

// String implements fmt.Stringer.
func (r *Recipe) String() string {
	return fmt.Sprintf("%s [%s, %gs]", r.Ratio(), r.machine.Name(), r.timeSeconds)
}
