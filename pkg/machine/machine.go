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

package machine

import (
	"fmt"
	"math"

	"github.com/mchmarny/aic-catalog/pkg/errors"
	"github.com/mchmarny/aic-catalog/pkg/item"
)

// Field names reported in validation error context.
const (
	FieldName                = "name"
	FieldSize                = "size"
	FieldTimeSeconds         = "time_seconds"
	FieldPhysicalInputSlots  = "physical_input_slots"
	FieldPhysicalOutputSlots = "physical_output_slots"
	FieldLiquidInputSlots    = "liquid_input_slots"
	FieldLiquidOutputSlots   = "liquid_output_slots"
	FieldPowerUsage          = "power_usage"
)

// Size is a building footprint in grid cells.
type Size struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// Footprint returns the number of grid cells covered.
func (s Size) Footprint() int {
	return s.Width * s.Height
}

// String formats the size as WxH.
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

type settings struct {
	description string
	elevated    bool
	region      item.Region

	timeSeconds float64
	hasTime     bool
	physicalIn  int
	physicalOut int
	liquidIn    int
	liquidOut   int
	powerUsage  float64
}

// Option is a functional option for configuring a Building or Machine.
// NewBuilding honors only WithDescription, Elevated and WithRegion.
type Option func(*settings)

// WithDescription sets the free-form description.
func WithDescription(description string) Option {
	return func(s *settings) {
		s.description = description
	}
}

// Elevated places the building above ground, as pipes and pipe logistics are.
func Elevated() Option {
	return func(s *settings) {
		s.elevated = true
	}
}

// WithRegion records the region the building belongs to.
func WithRegion(region item.Region) Option {
	return func(s *settings) {
		s.region = region
	}
}

// WithTimeSeconds declares the machine's cycle time. Zero marks an
// instantaneous pass-through machine.
func WithTimeSeconds(seconds float64) Option {
	return func(s *settings) {
		s.timeSeconds = seconds
		s.hasTime = true
	}
}

// WithPhysicalSlots sets the solid input and output slot counts.
func WithPhysicalSlots(in, out int) Option {
	return func(s *settings) {
		s.physicalIn = in
		s.physicalOut = out
	}
}

// WithLiquidSlots sets the liquid input and output slot counts.
func WithLiquidSlots(in, out int) Option {
	return func(s *settings) {
		s.liquidIn = in
		s.liquidOut = out
	}
}

// WithPowerUsage sets the power draw.
func WithPowerUsage(power float64) Option {
	return func(s *settings) {
		s.powerUsage = power
	}
}

// Building is anything placed on the factory grid.
type Building struct {
	name        string
	size        Size
	description string
	onGround    bool
	region      item.Region
}

// NewBuilding creates a Building. Both footprint dimensions must be positive.
func NewBuilding(name string, size Size, description string, opts ...Option) (*Building, error) {
	s := settings{description: description}
	for _, opt := range opts {
		opt(&s)
	}
	b, err := newBuilding(name, size, s)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func newBuilding(name string, size Size, s settings) (Building, error) {
	if name == "" {
		return Building{}, invalid(name, FieldName, "building name must not be empty")
	}
	if size.Width <= 0 || size.Height <= 0 {
		return Building{}, invalid(name, FieldSize,
			fmt.Sprintf("size must be positive, got %s", size))
	}
	return Building{
		name:        name,
		size:        size,
		description: s.description,
		onGround:    !s.elevated,
		region:      s.region,
	}, nil
}

// Name returns the unique building name.
func (b *Building) Name() string { return b.name }

// Size returns the footprint dimensions.
func (b *Building) Size() Size { return b.size }

// Footprint returns the number of grid cells covered.
func (b *Building) Footprint() int { return b.size.Footprint() }

// Description returns the free-form description.
func (b *Building) Description() string { return b.description }

// OnGround reports whether the building is placed on the ground grid.
func (b *Building) OnGround() bool { return b.onGround }

// Region returns the region the building belongs to, empty when unset.
func (b *Building) Region() item.Region { return b.region }

// Machine is a Building that processes items in cycles.
type Machine struct {
	Building

	timeSeconds float64
	hasTime     bool
	physicalIn  int
	physicalOut int
	liquidIn    int
	liquidOut   int
	powerUsage  float64
}

// New creates a Machine and validates its cycle time, slot counts and power
// draw. Failures are ErrCodeValidation errors whose context names the field.
func New(name string, size Size, opts ...Option) (*Machine, error) {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}

	b, err := newBuilding(name, size, s)
	if err != nil {
		return nil, err
	}

	if s.hasTime && (s.timeSeconds < 0 || math.IsNaN(s.timeSeconds) || math.IsInf(s.timeSeconds, 0)) {
		return nil, invalid(name, FieldTimeSeconds,
			fmt.Sprintf("cycle time must be a non-negative number of seconds, got %v", s.timeSeconds))
	}

	slots := []struct {
		field string
		value int
	}{
		{FieldPhysicalInputSlots, s.physicalIn},
		{FieldPhysicalOutputSlots, s.physicalOut},
		{FieldLiquidInputSlots, s.liquidIn},
		{FieldLiquidOutputSlots, s.liquidOut},
	}
	for _, slot := range slots {
		if slot.value < 0 {
			return nil, invalid(name, slot.field,
				fmt.Sprintf("%s must be non-negative, got %d", slot.field, slot.value))
		}
	}

	if s.powerUsage < 0 || math.IsNaN(s.powerUsage) || math.IsInf(s.powerUsage, 0) {
		return nil, invalid(name, FieldPowerUsage,
			fmt.Sprintf("power usage must be a finite non-negative number, got %v", s.powerUsage))
	}

	return &Machine{
		Building:    b,
		timeSeconds: s.timeSeconds,
		hasTime:     s.hasTime,
		physicalIn:  s.physicalIn,
		physicalOut: s.physicalOut,
		liquidIn:    s.liquidIn,
		liquidOut:   s.liquidOut,
		powerUsage:  s.powerUsage,
	}, nil
}

func invalid(name, field, msg string) error {
	return errors.NewWithContext(errors.ErrCodeValidation, msg, map[string]any{
		"machine": name,
		"field":   field,
	})
}

// TimeSeconds returns the declared cycle time and whether one was declared.
func (m *Machine) TimeSeconds() (float64, bool) {
	return m.timeSeconds, m.hasTime
}

// Instantaneous reports whether the machine declares a zero cycle time.
func (m *Machine) Instantaneous() bool {
	return m.hasTime && m.timeSeconds == 0
}

// PhysicalInputSlots returns the solid input slot count.
func (m *Machine) PhysicalInputSlots() int { return m.physicalIn }

// PhysicalOutputSlots returns the solid output slot count.
func (m *Machine) PhysicalOutputSlots() int { return m.physicalOut }

// LiquidInputSlots returns the liquid input slot count.
func (m *Machine) LiquidInputSlots() int { return m.liquidIn }

// LiquidOutputSlots returns the liquid output slot count.
func (m *Machine) LiquidOutputSlots() int { return m.liquidOut }

// PowerUsage returns the power draw.
func (m *Machine) PowerUsage() float64 { return m.powerUsage }

// Summary is the serializable view of a Machine used by the CLI.
type Summary struct {
	Name        string   `json:"name" yaml:"name"`
	Region      string   `json:"region,omitempty" yaml:"region,omitempty"`
	Size        string   `json:"size" yaml:"size"`
	OnGround    bool     `json:"onGround" yaml:"onGround"`
	TimeSeconds *float64 `json:"timeSeconds,omitempty" yaml:"timeSeconds,omitempty"`
	PhysicalIn  int      `json:"physicalInputSlots" yaml:"physicalInputSlots"`
	PhysicalOut int      `json:"physicalOutputSlots" yaml:"physicalOutputSlots"`
	LiquidIn    int      `json:"liquidInputSlots" yaml:"liquidInputSlots"`
	LiquidOut   int      `json:"liquidOutputSlots" yaml:"liquidOutputSlots"`
	PowerUsage  float64  `json:"powerUsage" yaml:"powerUsage"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
}

// Summarize returns the serializable view of the machine.
func (m *Machine) Summarize() Summary {
	s := Summary{
		Name:        m.name,
		Region:      m.region.String(),
		Size:        m.size.String(),
		OnGround:    m.onGround,
		PhysicalIn:  m.physicalIn,
		PhysicalOut: m.physicalOut,
		LiquidIn:    m.liquidIn,
		LiquidOut:   m.liquidOut,
		PowerUsage:  m.powerUsage,
		Description: m.description,
	}
	if m.hasTime {
		t := m.timeSeconds
		s.TimeSeconds = &t
	}
	return s
}
