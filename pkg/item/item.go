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

package item

import "strings"

// Region names the two regional contexts an item's stock bill may refer to.
type Region string

const (
	RegionValley Region = "Valley IV"
	RegionWuling Region = "Wuling"
)

// String returns the display name of the region.
func (r Region) String() string {
	return string(r)
}

// IsValid reports whether r is one of the known regions.
func (r Region) IsValid() bool {
	return r == RegionValley || r == RegionWuling
}

// Regions returns the known regions in display order.
func Regions() []Region {
	return []Region{RegionValley, RegionWuling}
}

// ParseRegion matches s against the known region names ignoring case and
// surrounding whitespace.
func ParseRegion(s string) (Region, bool) {
	s = strings.TrimSpace(s)
	for _, r := range Regions() {
		if strings.EqualFold(s, string(r)) {
			return r, true
		}
	}
	return "", false
}

// Item is a named resource circulating through the production chain.
// Items are values; two items are the same item when their names match.
type Item struct {
	name            string
	iconPath        string
	fluid           bool
	stockBillValley int
	stockBillWuling int
}

// Option is a functional option for configuring an Item.
type Option func(*Item)

// WithFluid marks the item as a liquid.
func WithFluid() Option {
	return func(i *Item) {
		i.fluid = true
	}
}

// WithStockBillValley sets the Valley IV stock bill. Negative values become 0.
func WithStockBillValley(n int) Option {
	return func(i *Item) {
		i.stockBillValley = max(n, 0)
	}
}

// WithStockBillWuling sets the Wuling stock bill. Negative values become 0.
func WithStockBillWuling(n int) Option {
	return func(i *Item) {
		i.stockBillWuling = max(n, 0)
	}
}

// New creates an Item. It never fails: an item is only a name plus
// display attributes.
func New(name, iconPath string, opts ...Option) Item {
	i := Item{
		name:     name,
		iconPath: iconPath,
	}
	for _, opt := range opts {
		opt(&i)
	}
	return i
}

// Name returns the unique item name.
func (i Item) Name() string { return i.name }

// IconPath returns the icon path. It is opaque to the catalog.
func (i Item) IconPath() string { return i.iconPath }

// IsFluid reports whether the item travels through pipes instead of belts.
func (i Item) IsFluid() bool { return i.fluid }

// StockBillValley returns the Valley IV stock bill.
func (i Item) StockBillValley() int { return i.stockBillValley }

// StockBillWuling returns the Wuling stock bill.
func (i Item) StockBillWuling() int { return i.stockBillWuling }

// StockBill returns the Valley IV stock bill when set, otherwise the Wuling one.
func (i Item) StockBill() int {
	if i.stockBillValley != 0 {
		return i.stockBillValley
	}
	return i.stockBillWuling
}

// StockBillRegion returns the region the stock bill refers to, and false
// when the item carries no stock bill.
func (i Item) StockBillRegion() (Region, bool) {
	switch {
	case i.stockBillValley != 0:
		return RegionValley, true
	case i.stockBillWuling != 0:
		return RegionWuling, true
	default:
		return "", false
	}
}

// Equal reports whether both items share a name.
func (i Item) Equal(other Item) bool {
	return i.name == other.name
}

// Key returns the map key for the item.
func (i Item) Key() string { return i.name }

// String implements fmt.Stringer.
func (i Item) String() string { return i.name }

// Summary is the serializable view of an Item used by the CLI.
type Summary struct {
	Name      string `json:"name" yaml:"name"`
	Icon      string `json:"icon,omitempty" yaml:"icon,omitempty"`
	Fluid     bool   `json:"fluid" yaml:"fluid"`
	StockBill int    `json:"stockBill,omitempty" yaml:"stockBill,omitempty"`
	Region    string `json:"stockBillRegion,omitempty" yaml:"stockBillRegion,omitempty"`
}

// Summarize returns the serializable view of the item.
func (i Item) Summarize() Summary {
	s := Summary{
		Name:      i.name,
		Icon:      i.iconPath,
		Fluid:     i.fluid,
		StockBill: i.StockBill(),
	}
	if r, ok := i.StockBillRegion(); ok {
		s.Region = r.String()
	}
	return s
}
