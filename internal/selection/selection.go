// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package selection implements the unit-selection stage: the installed power
// rating is the total power generation with a demand margin, rounded to the
// commercial catalog step, and the enclosure geometry comes from the unit
// catalog.
package selection

import (
	"fmt"
	"math"

	"github.com/pdiddy/skid-engine/internal/lookup"
	"github.com/pdiddy/skid-engine/pkg/types"
)

const (
	// catalogStep is the commercial unit power step in kW.
	catalogStep = 100

	// demandMargin oversizes the installed rating above generated power.
	demandMargin = 1.1
)

// roundToStep rounds v to the nearest multiple of step, halves away from zero.
func roundToStep(v, step float64) float64 {
	return math.Round(v/step) * step
}

// Compute selects the catalog unit for the generation carried by u.
func Compute(u types.UtilityResult, p types.UnitSelectionParams) (types.UnitSelectionResult, error) {
	return ComputeWithTable(u, p, UnitCatalog)
}

// ComputeWithTable is Compute with a caller-supplied unit catalog. A selected
// power beyond the catalog's largest unit takes the fallback geometry from p
// rather than clamping, so oversized skids surface as the caller's defaults.
func ComputeWithTable(u types.UtilityResult, p types.UnitSelectionParams, catalog lookup.Table[UnitSpec]) (types.UnitSelectionResult, error) {
	if err := p.Validate(); err != nil {
		return types.UnitSelectionResult{}, fmt.Errorf("unit selection: %w", err)
	}
	if catalog.Len() == 0 {
		return types.UnitSelectionResult{}, fmt.Errorf("unit selection: empty catalog: %w", types.ErrParameterRange)
	}

	selected := roundToStep(u.TotalPowerGeneration*demandMargin, catalogStep)

	spec, ok := catalog.Resolve(selected)
	if !ok {
		spec = UnitSpec{Dimensions: p.Dimensions, Weight: p.UnitWeight}
	}

	return types.UnitSelectionResult{
		UnitSelection: selected,
		Dimensions:    spec.Dimensions,
		UnitWeight:    spec.Weight,
	}, nil
}
