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
	"strings"

	"github.com/mchmarny/aic-catalog/pkg/item"
)

// Stack is a quantity of one item.
type Stack struct {
	Item     item.Item
	Quantity int
}

// String formats the stack as "2× Ferrium".
func (s Stack) String() string {
	return fmt.Sprintf("%d× %s", s.Quantity, s.Item.Name())
}

// Stacks is an ordered list of item quantities. Order is significant: the
// first output of a recipe names it.
type Stacks []Stack

// Of returns a single-entry Stacks.
func Of(it item.Item, quantity int) Stacks {
	return Stacks{{Item: it, Quantity: quantity}}
}

// And returns a copy of s with one more stack appended.
func (s Stacks) And(it item.Item, quantity int) Stacks {
	out := make(Stacks, len(s), len(s)+1)
	copy(out, s)
	return append(out, Stack{Item: it, Quantity: quantity})
}

// Total returns the sum of all quantities.
func (s Stacks) Total() int {
	total := 0
	for _, st := range s {
		total += st.Quantity
	}
	return total
}

// Names returns the item names in order.
func (s Stacks) Names() []string {
	names := make([]string, 0, len(s))
	for _, st := range s {
		names = append(names, st.Item.Name())
	}
	return names
}

// Quantity returns the quantity recorded for the named item.
func (s Stacks) Quantity(name string) (int, bool) {
	for _, st := range s {
		if st.Item.Name() == name {
			return st.Quantity, true
		}
	}
	return 0, false
}

// String joins the stacks with " + ".
func (s Stacks) String() string {
	parts := make([]string, 0, len(s))
	for _, st := range s {
		parts = append(parts, st.String())
	}
	return strings.Join(parts, " + ")
}

func (s Stacks) clone() Stacks {
	if s == nil {
		return Stacks{}
	}
	out := make(Stacks, len(s))
	copy(out, s)
	return out
}
