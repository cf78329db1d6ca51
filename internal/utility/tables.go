// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package utility

import "github.com/pdiddy/skid-engine/internal/lookup"

// PumpPowerTable maps lubrication oil flow in L/h to the catalog oil pump
// motor rating in kW. A flow resolves to the smallest pump that covers it;
// flows above the last row clamp to the largest catalog pump.
var PumpPowerTable = lookup.MustNew([]lookup.Entry[float64]{
	{Breakpoint: 28.4, Value: 1.5},
	{Breakpoint: 37.9, Value: 1.5},
	{Breakpoint: 60, Value: 2.2},
	{Breakpoint: 80, Value: 3},
	{Breakpoint: 108, Value: 4},
	{Breakpoint: 157, Value: 5.5},
	{Breakpoint: 189, Value: 7.5},
	{Breakpoint: 225, Value: 7.5},
	{Breakpoint: 277, Value: 11},
	{Breakpoint: 319, Value: 11},
	{Breakpoint: 401, Value: 15},
	{Breakpoint: 471, Value: 15},
	{Breakpoint: 536, Value: 15},
	{Breakpoint: 596, Value: 18.5},
	{Breakpoint: 662, Value: 22},
	{Breakpoint: 846, Value: 30},
	{Breakpoint: 1035, Value: 30},
})
