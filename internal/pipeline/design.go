// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"fmt"
	"math"

	"github.com/pdiddy/skid-engine/internal/engine"
	"github.com/pdiddy/skid-engine/internal/selection"
	"github.com/pdiddy/skid-engine/internal/utility"
	"github.com/pdiddy/skid-engine/pkg/types"
)

// Evaluate derives the design report for a completed pipeline run. The
// parameter records must be the ones the run was computed with: a dual-level
// design re-rates the enclosure by running the sizing stages again at the
// rated power with the same factors and catalogs.
//
// A net power above the threshold splits the skid into a fixed first level at
// the threshold and a second level carrying the remainder; the unit is rated
// and priced at the larger of the two. A single-level skid keeps the run's
// own selection and is rated at its total power generation.
func Evaluate(res types.CombinedResult, mp types.MainEngineParams, up types.UtilityParams, sp types.UnitSelectionParams, dp types.DesignParams) (types.DesignReport, error) {
	if err := dp.Validate(); err != nil {
		return types.DesignReport{}, fmt.Errorf("design: %w", err)
	}

	net := res.UtilityPower.NetPowerOutput
	report := types.DesignReport{
		RatedPower: res.MainEngine.TotalPowerGeneration,
		Dimensions: res.UnitSelection.Dimensions,
		UnitWeight: res.UnitSelection.UnitWeight,
	}
	priced := res.UnitSelection.UnitSelection

	if net > dp.DualLevelThreshold {
		report.DualLevel = true
		report.FirstLevelPower = dp.DualLevelThreshold
		report.SecondLevelPower = net - dp.DualLevelThreshold
		rated := math.Max(report.SecondLevelPower, dp.DualLevelThreshold)

		rerun := mp
		rerun.MainPower = rated
		main, err := engine.Compute(rerun)
		if err != nil {
			return types.DesignReport{}, fmt.Errorf("re-rating at %.2f kW: %w", rated, err)
		}
		util, err := utility.Compute(main, up)
		if err != nil {
			return types.DesignReport{}, fmt.Errorf("re-rating at %.2f kW: %w", rated, err)
		}
		unit, err := selection.Compute(util, sp)
		if err != nil {
			return types.DesignReport{}, fmt.Errorf("re-rating at %.2f kW: %w", rated, err)
		}

		report.RatedPower = rated
		report.Dimensions = unit.Dimensions
		report.UnitWeight = unit.UnitWeight
		priced = rated
	}

	// Whole kilowatts only; the catalog prices by installed kW.
	report.InvestmentCost = math.Trunc(priced) * dp.CapitalCostPerKW

	income := res.EconomicAnalysis.AnnualPowerIncome
	if income > 0 {
		report.PaybackYears = math.Round(report.InvestmentCost/income*10) / 10
	}

	efficiency := net / mp.MainPower
	report.Checks = types.DesignChecks{
		NetPowerPositive:  net > 0,
		IncomePositive:    income > 0,
		EfficiencyInRange: efficiency > 0 && efficiency < 1,
	}

	return report, nil
}
