// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline wires the four calculation stages together: main engine,
// utility, economics, and unit selection. It also derives the design report
// that decides between a single-level and a dual-level skid.
package pipeline

import (
	"github.com/pdiddy/skid-engine/internal/economics"
	"github.com/pdiddy/skid-engine/internal/engine"
	"github.com/pdiddy/skid-engine/internal/selection"
	"github.com/pdiddy/skid-engine/internal/utility"
	"github.com/pdiddy/skid-engine/pkg/types"
)

// Run executes the four stages in order and assembles the combined result.
// The economic and unit-selection stages read only the utility result, so a
// run is fully determined by its four parameter records. Each stage validates
// its own record; the first failure aborts the run.
func Run(mp types.MainEngineParams, up types.UtilityParams, ep types.EconomicParams, sp types.UnitSelectionParams) (types.CombinedResult, error) {
	main, err := engine.Compute(mp)
	if err != nil {
		return types.CombinedResult{}, err
	}
	util, err := utility.Compute(main, up)
	if err != nil {
		return types.CombinedResult{}, err
	}
	econ, err := economics.Compute(util, ep)
	if err != nil {
		return types.CombinedResult{}, err
	}
	unit, err := selection.Compute(util, sp)
	if err != nil {
		return types.CombinedResult{}, err
	}

	return types.CombinedResult{
		MainEngine:       main,
		UtilityPower:     util,
		EconomicAnalysis: econ,
		UnitSelection:    unit,
		CalculationSummary: types.CalculationSummary{
			InputMainPower:    mp.MainPower,
			FinalNetPower:     util.NetPowerOutput,
			AnnualIncome:      econ.AnnualPowerIncome,
			SelectedUnitPower: unit.UnitSelection,
		},
	}, nil
}

// RunDefault runs the pipeline with the catalog defaults for every stage,
// which is the common case when only the simulator hand-off power is known.
func RunDefault(mainPower float64) (types.CombinedResult, error) {
	return Run(
		types.DefaultMainEngineParams(mainPower),
		types.DefaultUtilityParams(),
		types.DefaultEconomicParams(),
		types.DefaultUnitSelectionParams(),
	)
}
