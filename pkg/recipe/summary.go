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

import "math"

// StackSummary is the serializable view of a Stack.
type StackSummary struct {
	Item     string `json:"item" yaml:"item"`
	Quantity int    `json:"quantity" yaml:"quantity"`
}

// Summary is the serializable view of a Recipe used by the CLI.
type Summary struct {
	Name            string         `json:"name" yaml:"name"`
	Machine         string         `json:"machine" yaml:"machine"`
	Ratio           string         `json:"ratio" yaml:"ratio"`
	TimeSeconds     float64        `json:"timeSeconds" yaml:"timeSeconds"`
	CyclesPerMinute *float64       `json:"cyclesPerMinute,omitempty" yaml:"cyclesPerMinute,omitempty"`
	ItemsPerMinute  *float64       `json:"itemsPerMinute,omitempty" yaml:"itemsPerMinute,omitempty"`
	Instantaneous   bool           `json:"instantaneous,omitempty" yaml:"instantaneous,omitempty"`
	Output          []StackSummary `json:"output" yaml:"output"`
	Ingredients     []StackSummary `json:"ingredients" yaml:"ingredients"`
}

// Summarize returns the serializable view of the recipe. JSON cannot encode
// +Inf, so instantaneous recipes omit their rates and set Instantaneous.
func (r *Recipe) Summarize() Summary {
	s := Summary{
		Name:        r.name,
		Machine:     r.machine.Name(),
		Ratio:       r.Ratio(),
		TimeSeconds: r.timeSeconds,
		Output:      summarizeStacks(r.output),
		Ingredients: summarizeStacks(r.ingredients),
	}
	if math.IsInf(r.cyclesPerMinute, 1) {
		s.Instantaneous = true
		return s
	}
	cpm, ipm := r.cyclesPerMinute, r.itemsPerMinute
	s.CyclesPerMinute = &cpm
	s.ItemsPerMinute = &ipm
	return s
}

func summarizeStacks(stacks Stacks) []StackSummary {
	out := make([]StackSummary, 0, len(stacks))
	for _, st := range stacks {
		out = append(out, StackSummary{Item: st.Item.Name(), Quantity: st.Quantity})
	}
	return out
}
