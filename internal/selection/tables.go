// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package selection

import (
	"github.com/pdiddy/skid-engine/internal/lookup"
	"github.com/pdiddy/skid-engine/pkg/types"
)

// UnitSpec is one catalog row: enclosure dimensions in meters and shipping
// weight in metric tons.
type UnitSpec struct {
	Dimensions types.Dimensions
	Weight     float64
}

// UnitCatalog maps installed power in kW to the catalog enclosure that houses
// it. A selection resolves to the smallest unit rated at or above it; powers
// beyond the largest unit fall back to the caller's geometry parameters.
var UnitCatalog = lookup.MustNew([]lookup.Entry[UnitSpec]{
	{Breakpoint: 0, Value: UnitSpec{types.Dimensions{Length: 3, Width: 2.5, Height: 2.5}, 14}},
	{Breakpoint: 250, Value: UnitSpec{types.Dimensions{Length: 3, Width: 2.5, Height: 2.5}, 15}},
	{Breakpoint: 400, Value: UnitSpec{types.Dimensions{Length: 3.5, Width: 2.5, Height: 2.5}, 16}},
	{Breakpoint: 450, Value: UnitSpec{types.Dimensions{Length: 4, Width: 2.5, Height: 2.5}, 17}},
	{Breakpoint: 500, Value: UnitSpec{types.Dimensions{Length: 4.5, Width: 2.5, Height: 2.5}, 17}},
	{Breakpoint: 560, Value: UnitSpec{types.Dimensions{Length: 4.5, Width: 3, Height: 2.5}, 18}},
	{Breakpoint: 630, Value: UnitSpec{types.Dimensions{Length: 5, Width: 3, Height: 2.5}, 20}},
	{Breakpoint: 710, Value: UnitSpec{types.Dimensions{Length: 5.5, Width: 3, Height: 2.5}, 22}},
	{Breakpoint: 800, Value: UnitSpec{types.Dimensions{Length: 6, Width: 3, Height: 2.5}, 24}},
	{Breakpoint: 900, Value: UnitSpec{types.Dimensions{Length: 6.5, Width: 3, Height: 2.5}, 25}},
	{Breakpoint: 1120, Value: UnitSpec{types.Dimensions{Length: 6.5, Width: 3, Height: 2.5}, 26}},
	{Breakpoint: 1250, Value: UnitSpec{types.Dimensions{Length: 6.5, Width: 3, Height: 2.5}, 27}},
	{Breakpoint: 1400, Value: UnitSpec{types.Dimensions{Length: 7, Width: 3, Height: 2.5}, 28}},
	{Breakpoint: 1600, Value: UnitSpec{types.Dimensions{Length: 7.5, Width: 3, Height: 2.5}, 29}},
	{Breakpoint: 1800, Value: UnitSpec{types.Dimensions{Length: 8, Width: 3.5, Height: 2.5}, 30}},
	{Breakpoint: 2000, Value: UnitSpec{types.Dimensions{Length: 8.5, Width: 3.5, Height: 2.5}, 31}},
	{Breakpoint: 2240, Value: UnitSpec{types.Dimensions{Length: 9, Width: 3.5, Height: 2.5}, 32}},
	{Breakpoint: 2500, Value: UnitSpec{types.Dimensions{Length: 9.5, Width: 4, Height: 2.5}, 33}},
	{Breakpoint: 2800, Value: UnitSpec{types.Dimensions{Length: 9.5, Width: 4, Height: 2.5}, 34}},
	{Breakpoint: 3150, Value: UnitSpec{types.Dimensions{Length: 10.5, Width: 4, Height: 2.5}, 35}},
	{Breakpoint: 3550, Value: UnitSpec{types.Dimensions{Length: 11, Width: 4, Height: 2.5}, 38}},
	{Breakpoint: 4000, Value: UnitSpec{types.Dimensions{Length: 12, Width: 4, Height: 2.5}, 40}},
	{Breakpoint: 7000, Value: UnitSpec{types.Dimensions{Length: 12, Width: 6, Height: 4}, 50}},
})
