package recipe

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mchmarny/aic-catalog/pkg/errors"
	"github.com/mchmarny/aic-catalog/pkg/item"
	"github.com/mchmarny/aic-catalog/pkg/machine"
)

var (
	ferriumOre   = item.New("Ferrium Ore", "ItemIcons/Natural_Resources_Icons/Ferrium_Ore.png")
	ferrium      = item.New("Ferrium", "ItemIcons/AIC_Products_Icons/Ferrium.png")
	ferriumPart  = item.New("Ferrium Part", "ItemIcons/AIC_Products_Icons/Ferrium_Part.png", item.WithStockBillValley(1))
	amethystOre  = item.New("Amethyst Ore", "ItemIcons/Natural_Resources_Icons/Amethyst_Ore.png")
	amethystPart = item.New("Amethyst Part", "")
	cleanWater   = item.New("Clean Water", "", item.WithFluid())
)

func mustMachine(t *testing.T, name string, opts ...machine.Option) *machine.Machine {
	t.Helper()
	m, err := machine.New(name, machine.Size{Width: 3, Height: 3}, opts...)
	require.NoError(t, err)
	return m
}

func TestNew(t *testing.T) {
	refining := mustMachine(t, "Refining Unit", machine.WithTimeSeconds(2), machine.WithPhysicalSlots(3, 3))

	r, err := New(refining, Of(ferrium, 1), Of(ferriumOre, 1))
	require.NoError(t, err)

	assert.Equal(t, "Ferrium", r.Name())
	assert.Equal(t, "ItemIcons/AIC_Products_Icons/Ferrium.png", r.Icon())
	assert.Same(t, refining, r.Machine())
	assert.InDelta(t, 2.0, r.TimeSeconds(), 1e-9)
	assert.Equal(t, 1, r.TotalOutputCount())
	assert.InDelta(t, 30.0, r.CyclesPerMinute(), 1e-9)
	assert.InDelta(t, 30.0, r.ItemsPerMinute(), 1e-9)
	assert.Equal(t, "1× Ferrium Ore → 1× Ferrium", r.Ratio())
	assert.True(t, r.Produces("Ferrium"))
	assert.False(t, r.Produces("Ferrium Ore"))
}

func TestDerivedRates(t *testing.T) {
	gearing := mustMachine(t, "Gearing Unit", machine.WithTimeSeconds(10))

	r, err := New(gearing,
		Of(ferriumPart, 2).And(amethystPart, 1),
		Of(ferrium, 4),
	)
	require.NoError(t, err)

	assert.Equal(t, "Ferrium Part", r.Name())
	assert.Equal(t, 3, r.TotalOutputCount())
	assert.InDelta(t, 6.0, r.CyclesPerMinute(), 1e-9)
	assert.InDelta(t, 18.0, r.ItemsPerMinute(), 1e-9)
	assert.InDelta(t, 12.0, r.OutputPerMinute("Ferrium Part"), 1e-9)
	assert.InDelta(t, 6.0, r.OutputPerMinute("Amethyst Part"), 1e-9)
	assert.Zero(t, r.OutputPerMinute("Ferrium"))
	assert.Equal(t, "4× Ferrium → 2× Ferrium Part + 1× Amethyst Part", r.Ratio())
}

func TestFirstOutputNamesRecipe(t *testing.T) {
	m := mustMachine(t, "Separating Unit", machine.WithTimeSeconds(2))

	r, err := New(m, Of(cleanWater, 1).And(ferrium, 1), nil)
	require.NoError(t, err)
	assert.Equal(t, "Clean Water", r.Name())

	r, err = New(m, Of(ferrium, 1).And(cleanWater, 1), nil)
	require.NoError(t, err)
	assert.Equal(t, "Ferrium", r.Name())
}

func TestEmptyIngredients(t *testing.T) {
	pump := mustMachine(t, "Fluid Pump", machine.WithTimeSeconds(1), machine.WithLiquidSlots(0, 1))

	r, err := New(pump, Of(cleanWater, 1), nil)
	require.NoError(t, err)
	assert.Empty(t, r.Ingredients())
	assert.NotNil(t, r.Ingredients())
	assert.Equal(t, "→ 1× Clean Water", r.Ratio())
	assert.InDelta(t, 60.0, r.ItemsPerMinute(), 1e-9)
}

func TestTimingResolution(t *testing.T) {
	timed := mustMachine(t, "Refining Unit", machine.WithTimeSeconds(2))
	untimed := mustMachine(t, "Transport Belt")
	instant := mustMachine(t, "Depot Loader", machine.WithTimeSeconds(0))

	tests := []struct {
		name     string
		machine  *machine.Machine
		opts     []Option
		wantTime float64
		wantErr  bool
	}{
		{name: "inherits machine time", machine: timed, wantTime: 2},
		{name: "explicit wins", machine: timed, opts: []Option{WithTimeSeconds(5)}, wantTime: 5},
		{name: "explicit on untimed machine", machine: untimed, opts: []Option{WithTimeSeconds(4)}, wantTime: 4},
		{name: "untimed machine without explicit time", machine: untimed, wantErr: true},
		{name: "negative explicit time", machine: timed, opts: []Option{WithTimeSeconds(-1)}, wantErr: true},
		{name: "nan explicit time", machine: timed, opts: []Option{WithTimeSeconds(math.NaN())}, wantErr: true},
		{name: "zero on instantaneous machine", machine: instant, wantTime: 0},
		{name: "explicit zero on instantaneous machine", machine: instant, opts: []Option{WithTimeSeconds(0)}, wantTime: 0},
		{name: "explicit zero on timed machine", machine: timed, opts: []Option{WithTimeSeconds(0)}, wantErr: true},
		{name: "explicit zero on untimed machine", machine: untimed, opts: []Option{WithTimeSeconds(0)}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := New(tt.machine, Of(ferrium, 1), Of(ferriumOre, 1), tt.opts...)
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, r)
				assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidValue), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.wantTime, r.TimeSeconds(), 1e-9)
		})
	}
}

func TestInstantaneousRates(t *testing.T) {
	loader := mustMachine(t, "Depot Loader", machine.WithTimeSeconds(0))

	r, err := New(loader, Of(ferrium, 1), Of(ferrium, 1))
	require.NoError(t, err)
	assert.True(t, math.IsInf(r.CyclesPerMinute(), 1))
	assert.True(t, math.IsInf(r.ItemsPerMinute(), 1))
	assert.True(t, math.IsInf(r.OutputPerMinute("Ferrium"), 1))

	s := r.Summarize()
	assert.True(t, s.Instantaneous)
	assert.Nil(t, s.CyclesPerMinute)
}

func TestValidation(t *testing.T) {
	m := mustMachine(t, "Fitting Unit", machine.WithTimeSeconds(2))
	unnamed := item.New("", "")

	tests := []struct {
		name        string
		machine     *machine.Machine
		output      Stacks
		ingredients Stacks
		wantCode    errors.ErrorCode
	}{
		{"nil machine", nil, Of(ferrium, 1), nil, errors.ErrCodeInvalidShape},
		{"unnamed output", m, Of(unnamed, 1), nil, errors.ErrCodeInvalidShape},
		{"unnamed ingredient", m, Of(ferrium, 1), Of(unnamed, 1), errors.ErrCodeInvalidShape},
		{"nil output", m, nil, Of(ferrium, 1), errors.ErrCodeInvalidValue},
		{"empty output", m, Stacks{}, nil, errors.ErrCodeInvalidValue},
		{"zero output quantity", m, Of(ferrium, 0), nil, errors.ErrCodeInvalidValue},
		{"negative output quantity", m, Of(ferrium, -2), nil, errors.ErrCodeInvalidValue},
		{"zero ingredient quantity", m, Of(ferriumPart, 1), Of(ferrium, 0), errors.ErrCodeInvalidValue},
		{"duplicate output", m, Of(ferrium, 1).And(ferrium, 2), nil, errors.ErrCodeInvalidValue},
		{"duplicate ingredient", m, Of(ferriumPart, 1), Of(ferrium, 1).And(ferrium, 1), errors.ErrCodeInvalidValue},
		{"shape checked before emptiness", nil, nil, nil, errors.ErrCodeInvalidShape},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := New(tt.machine, tt.output, tt.ingredients)
			require.Error(t, err)
			assert.Nil(t, r)
			assert.Equal(t, tt.wantCode, errors.CodeOf(err))
		})
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	m := mustMachine(t, "Moulding Unit", machine.WithTimeSeconds(2))
	output := Of(ferrium, 1)
	ingredients := Of(ferriumOre, 2)

	r, err := New(m, output, ingredients)
	require.NoError(t, err)

	output[0].Quantity = 99
	ingredients[0].Item = amethystOre
	assert.Equal(t, 1, r.Output()[0].Quantity)
	assert.Equal(t, "Ferrium Ore", r.Ingredients()[0].Item.Name())

	got := r.Output()
	got[0].Quantity = 42
	assert.Equal(t, 1, r.Output()[0].Quantity)
	assert.Equal(t, 1, r.TotalOutputCount())
}

func TestStacks(t *testing.T) {
	s := Of(ferrium, 2).And(amethystPart, 3)

	assert.Equal(t, 5, s.Total())
	assert.Equal(t, []string{"Ferrium", "Amethyst Part"}, s.Names())
	q, ok := s.Quantity("Amethyst Part")
	assert.True(t, ok)
	assert.Equal(t, 3, q)
	_, ok = s.Quantity("Ferrium Ore")
	assert.False(t, ok)
	assert.Equal(t, "2× Ferrium + 3× Amethyst Part", s.String())

	base := Of(ferrium, 1)
	_ = base.And(ferriumOre, 1)
	assert.Len(t, base, 1)
}

func TestSummarize(t *testing.T) {
	m := mustMachine(t, "Refining Unit", machine.WithTimeSeconds(2))
	r, err := New(m, Of(ferrium, 1), Of(ferriumOre, 1))
	require.NoError(t, err)

	s := r.Summarize()
	assert.Equal(t, "Ferrium", s.Name)
	assert.Equal(t, "Refining Unit", s.Machine)
	assert.False(t, s.Instantaneous)
	require.NotNil(t, s.CyclesPerMinute)
	assert.InDelta(t, 30.0, *s.CyclesPerMinute, 1e-9)
	assert.Equal(t, []StackSummary{{Item: "Ferrium Ore", Quantity: 1}}, s.Ingredients)
	assert.Contains(t, r.String(), "Refining Unit")
}
