package cli

import (
	"fmt"
	"strconv"

	"github.com/mchmarny/aic-catalog/pkg/item"
	"github.com/mchmarny/aic-catalog/pkg/machine"
	"github.com/mchmarny/aic-catalog/pkg/recipe"
)

const (
	cellNone    = "-"
	cellInstant = "instant"
)

type itemListing []item.Summary

func (l itemListing) TableHeader() []string {
	return []string{"NAME", "FLUID", "STOCK BILL", "REGION"}
}

func (l itemListing) TableRows() [][]string {
	rows := make([][]string, 0, len(l))
	for _, s := range l {
		bill, region := cellNone, cellNone
		if s.StockBill != 0 {
			bill = strconv.Itoa(s.StockBill)
			region = s.Region
		}
		rows = append(rows, []string{s.Name, strconv.FormatBool(s.Fluid), bill, region})
	}
	return rows
}

type machineListing []machine.Summary

func (l machineListing) TableHeader() []string {
	return []string{"NAME", "REGION", "SIZE", "TIME (S)", "SLOTS IN/OUT", "LIQUID IN/OUT", "POWER"}
}

func (l machineListing) TableRows() [][]string {
	rows := make([][]string, 0, len(l))
	for _, s := range l {
		t := cellNone
		if s.TimeSeconds != nil {
			t = formatFloat(*s.TimeSeconds)
		}
		rows = append(rows, []string{
			s.Name,
			s.Region,
			s.Size,
			t,
			fmt.Sprintf("%d/%d", s.PhysicalIn, s.PhysicalOut),
			fmt.Sprintf("%d/%d", s.LiquidIn, s.LiquidOut),
			formatFloat(s.PowerUsage),
		})
	}
	return rows
}

type recipeListing []recipe.Summary

func (l recipeListing) TableHeader() []string {
	return []string{"NAME", "MACHINE", "TIME (S)", "ITEMS/MIN", "RATIO"}
}

func (l recipeListing) TableRows() [][]string {
	rows := make([][]string, 0, len(l))
	for _, s := range l {
		rate := cellInstant
		if s.ItemsPerMinute != nil {
			rate = formatFloat(*s.ItemsPerMinute)
		}
		rows = append(rows, []string{s.Name, s.Machine, formatFloat(s.TimeSeconds), rate, s.Ratio})
	}
	return rows
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func listItems(items []item.Item) itemListing {
	out := make(itemListing, 0, len(items))
	for _, it := range items {
		out = append(out, it.Summarize())
	}
	sortByName(out, func(s item.Summary) string { return s.Name })
	return out
}

func listMachines(machines []*machine.Machine) machineListing {
	out := make(machineListing, 0, len(machines))
	for _, m := range machines {
		out = append(out, m.Summarize())
	}
	sortByName(out, func(s machine.Summary) string { return s.Name })
	return out
}

// listRecipes keeps the order it is given; recipe order is meaningful when
// it comes from an index lookup.
func listRecipes(recipes []*recipe.Recipe) recipeListing {
	out := make(recipeListing, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, r.Summarize())
	}
	return out
}
