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
	"fmt"
	"reflect"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mchmarny/aic-catalog/pkg/errors"
	"github.com/mchmarny/aic-catalog/pkg/header"
	"github.com/mchmarny/aic-catalog/pkg/item"
	"github.com/mchmarny/aic-catalog/pkg/machine"
)

// ItemDocument is the items.yaml document.
type ItemDocument struct {
	header.Header `json:",inline" yaml:",inline"`

	Items []ItemDef `json:"items" yaml:"items"`
}

// MachineDocument is the machines.yaml document.
type MachineDocument struct {
	header.Header `json:",inline" yaml:",inline"`

	Machines []MachineDef `json:"machines" yaml:"machines"`
}

// RecipeDocument is the recipes.yaml document.
type RecipeDocument struct {
	header.Header `json:",inline" yaml:",inline"`

	Recipes []RecipeDef `json:"recipes" yaml:"recipes"`
}

// ItemDef is the declaration of one item.
type ItemDef struct {
	Name            string `json:"name" yaml:"name" validate:"required"`
	Icon            string `json:"icon,omitempty" yaml:"icon,omitempty"`
	Fluid           bool   `json:"fluid,omitempty" yaml:"fluid,omitempty"`
	StockBillValley int    `json:"stockBillValley,omitempty" yaml:"stockBillValley,omitempty" validate:"gte=0"`
	StockBillWuling int    `json:"stockBillWuling,omitempty" yaml:"stockBillWuling,omitempty" validate:"gte=0"`

	decodeErr error
}

// UnmarshalYAML decodes one items.yaml entry. A malformed entry is kept
// with its decode error so the loader can skip just that entry.
func (d *ItemDef) UnmarshalYAML(node *yaml.Node) error {
	type fields ItemDef
	var f fields
	err := decodeEntry(node, &f)
	*d = ItemDef(f)
	d.decodeErr = err
	return nil
}

// Build converts the definition into an Item.
func (d ItemDef) Build() item.Item {
	var opts []item.Option
	if d.Fluid {
		opts = append(opts, item.WithFluid())
	}
	if d.StockBillValley != 0 {
		opts = append(opts, item.WithStockBillValley(d.StockBillValley))
	}
	if d.StockBillWuling != 0 {
		opts = append(opts, item.WithStockBillWuling(d.StockBillWuling))
	}
	return item.New(d.Name, d.Icon, opts...)
}

// SizeDef is a footprint declaration.
type SizeDef struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// SlotsDef declares the slot counts of a machine. Omitted counts are zero.
type SlotsDef struct {
	PhysicalIn  int `json:"physicalIn,omitempty" yaml:"physicalIn,omitempty"`
	PhysicalOut int `json:"physicalOut,omitempty" yaml:"physicalOut,omitempty"`
	LiquidIn    int `json:"liquidIn,omitempty" yaml:"liquidIn,omitempty"`
	LiquidOut   int `json:"liquidOut,omitempty" yaml:"liquidOut,omitempty"`
}

// MachineDef is the declaration of one machine. Numeric ranges are checked
// by machine.New, so a bad footprint surfaces as a VALIDATION problem.
type MachineDef struct {
	Name        string   `json:"name" yaml:"name" validate:"required"`
	Region      string   `json:"region,omitempty" yaml:"region,omitempty" validate:"omitempty,region"`
	Size        SizeDef  `json:"size" yaml:"size"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Elevated    bool     `json:"elevated,omitempty" yaml:"elevated,omitempty"`
	TimeSeconds *float64 `json:"timeSeconds,omitempty" yaml:"timeSeconds,omitempty"`
	Slots       SlotsDef `json:"slots,omitempty" yaml:"slots,omitempty"`
	Power       float64  `json:"power,omitempty" yaml:"power,omitempty"`

	decodeErr error
}

// UnmarshalYAML decodes one machines.yaml entry, keeping any decode error
// on the definition.
func (d *MachineDef) UnmarshalYAML(node *yaml.Node) error {
	type fields MachineDef
	var f fields
	err := decodeEntry(node, &f)
	*d = MachineDef(f)
	d.decodeErr = err
	return nil
}

// Build converts the definition into a Machine.
func (d MachineDef) Build() (*machine.Machine, error) {
	opts := []machine.Option{
		machine.WithDescription(d.Description),
		machine.WithPhysicalSlots(d.Slots.PhysicalIn, d.Slots.PhysicalOut),
		machine.WithLiquidSlots(d.Slots.LiquidIn, d.Slots.LiquidOut),
		machine.WithPowerUsage(d.Power),
	}
	if d.Region != "" {
		opts = append(opts, machine.WithRegion(item.Region(d.Region)))
	}
	if d.Elevated {
		opts = append(opts, machine.Elevated())
	}
	if d.TimeSeconds != nil {
		opts = append(opts, machine.WithTimeSeconds(*d.TimeSeconds))
	}
	return machine.New(d.Name, machine.Size{Width: d.Size.Width, Height: d.Size.Height}, opts...)
}

// Quantity is one "item name: count" entry of a recipe definition.
type Quantity struct {
	Item  string `json:"item" yaml:"item" validate:"required"`
	Count int    `json:"count" yaml:"count"`

	// invalid holds the declared value when it is not a whole number.
	invalid string
}

// Quantities is an ordered item-name to count mapping. In YAML it is written
// as a mapping; declaration order is kept and repeated keys are preserved so
// the recipe constructor can reject them.
type Quantities []Quantity

// UnmarshalYAML decodes a mapping node in document order.
func (q *Quantities) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping of item name to count", node.Line)
	}
	out := make(Quantities, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		e := Quantity{Item: key.Value}
		if val.Kind != yaml.ScalarNode || val.ShortTag() != "!!int" || val.Decode(&e.Count) != nil {
			e.Count = 0
			e.invalid = describeNode(val)
		}
		out = append(out, e)
	}
	*q = out
	return nil
}

func describeNode(n *yaml.Node) string {
	switch {
	case n.Kind == yaml.MappingNode:
		return "a mapping"
	case n.Kind == yaml.SequenceNode:
		return "a list"
	case n.ShortTag() == "!!null":
		return "null"
	default:
		return fmt.Sprintf("%q", n.Value)
	}
}

// invalidCounts describes every count that is not a whole number.
func (q Quantities) invalidCounts(field string) []string {
	var out []string
	for _, e := range q {
		if e.invalid != "" {
			out = append(out, fmt.Sprintf("%s quantity for %q must be a whole number, got %s", field, e.Item, e.invalid))
		}
	}
	return out
}

// MarshalYAML encodes the quantities as an ordered mapping.
func (q Quantities) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, e := range q {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Item},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: fmt.Sprint(e.Count)},
		)
	}
	return node, nil
}

// RecipeDef is the name-based declaration of one recipe. Names are resolved
// against the loaded items and machines.
type RecipeDef struct {
	Machine     string     `json:"machine" yaml:"machine" validate:"required"`
	Output      Quantities `json:"output" yaml:"output" validate:"dive"`
	Ingredients Quantities `json:"ingredients,omitempty" yaml:"ingredients,omitempty" validate:"dive"`
	TimeSeconds *float64   `json:"timeSeconds,omitempty" yaml:"timeSeconds,omitempty"`

	decodeErr error
}

// UnmarshalYAML decodes one recipes.yaml entry, keeping any decode error
// on the definition.
func (d *RecipeDef) UnmarshalYAML(node *yaml.Node) error {
	type fields RecipeDef
	var f fields
	err := decodeEntry(node, &f)
	*d = RecipeDef(f)
	d.decodeErr = err
	return nil
}

// checkCounts fails with INVALID_VALUE when any declared count is not a
// whole number.
func (d RecipeDef) checkCounts() error {
	msgs := append(d.Output.invalidCounts("output"), d.Ingredients.invalidCounts("ingredients")...)
	if len(msgs) == 0 {
		return nil
	}
	return errors.NewWithContext(errors.ErrCodeInvalidValue, strings.Join(msgs, "; "),
		map[string]any{"definition": d.Label()})
}

// Label names the definition in problem reports, e.g. "Ferrium on Refining Unit".
func (d RecipeDef) Label() string {
	out := "(no output)"
	if len(d.Output) > 0 {
		out = d.Output[0].Item
	}
	return fmt.Sprintf("%s on %s", out, d.Machine)
}

// decodeEntry decodes one document entry into v and rejects keys v does not
// declare, at any depth. v keeps whatever decoded even when an error is
// returned.
func decodeEntry(node *yaml.Node, v any) error {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	if node.Kind != yaml.MappingNode {
		return errors.New(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("malformed definition: line %d: expected a mapping, got %s", node.Line, describeNode(node)))
	}

	decodeErr := node.Decode(v)
	if err := checkKnownFields(node, reflect.TypeOf(v)); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidRequest, "malformed definition", err)
	}
	if decodeErr != nil {
		return errors.Wrap(errors.ErrCodeInvalidRequest, "malformed definition", decodeErr)
	}
	return nil
}

func checkKnownFields(node *yaml.Node, typ reflect.Type) error {
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if node.Kind != yaml.MappingNode || typ.Kind() != reflect.Struct {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		field, ok := yamlField(typ, key.Value)
		if !ok {
			return fmt.Errorf("line %d: unknown field %q", key.Line, key.Value)
		}
		if err := checkKnownFields(val, field.Type); err != nil {
			return err
		}
	}
	return nil
}

// yamlField finds the struct field decoded from key.
func yamlField(typ reflect.Type, key string) (reflect.StructField, bool) {
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		name, opts, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" {
			continue
		}
		if strings.Contains(opts, "inline") && f.Type.Kind() == reflect.Struct {
			if sf, ok := yamlField(f.Type, key); ok {
				return sf, true
			}
			continue
		}
		if name == "" {
			name = strings.ToLower(f.Name)
		}
		if name == key {
			return f, true
		}
	}
	return reflect.StructField{}, false
}
