// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package utility implements the utility stage of the skid calculation:
// lubrication oil flow, oil cooler circulation water, oil pump selection,
// the skid's own power draw, and the net power left for export.
package utility

import (
	"fmt"

	"github.com/pdiddy/skid-engine/internal/lookup"
	"github.com/pdiddy/skid-engine/pkg/types"
)

// designMargin oversizes the lube-oil heat load for sizing purposes.
const designMargin = 1.2

// Compute sizes the utility systems for the main-engine balance using the
// catalog pump table.
func Compute(main types.MainEngineResult, p types.UtilityParams) (types.UtilityResult, error) {
	return ComputeWithTable(main, p, PumpPowerTable)
}

// ComputeWithTable is Compute with a caller-supplied pump table, for projects
// that carry their own pump catalog.
//
// The heat rejected into the oil circuit is the mechanical loss share of the
// main output power with the design margin applied. Oil flow and circulation
// water both absorb that heat across the oil cooler temperature rise.
func ComputeWithTable(main types.MainEngineResult, p types.UtilityParams, pumps lookup.Table[float64]) (types.UtilityResult, error) {
	if err := p.Validate(); err != nil {
		return types.UtilityResult{}, fmt.Errorf("utility: %w", err)
	}
	if pumps.Len() == 0 {
		return types.UtilityResult{}, fmt.Errorf("utility: empty pump table: %w", types.ErrParameterRange)
	}

	heat := designMargin * main.MainOutputPower * p.MechanicalLossRatio

	// Oil flow in L/h and water flow in t/h, per the reference sizing sheet.
	oil := heat / (p.OilDensity * p.OilSpecificHeat * p.OilCoolerTempRise) * 60 * 1000
	water := heat / p.CoolingWaterSpecificHeat / p.OilCoolerTempRise * 3.6

	pump := pumps.ResolveClamp(oil)

	// The standby oil pump idles at half duty alongside the running one.
	self := pump + 0.5*pump + p.CoolingPumpPower + p.CirculationPumpPower

	return types.UtilityResult{
		LubricationOilAmount:      oil,
		OilCoolerCirculationWater: water,
		OilPumpPower:              pump,
		UtilitySelfConsumption:    self,
		NetPowerOutput:            main.TotalPowerGeneration - self,
		AirDemand:                 p.AirDemand,
		NitrogenDemand:            p.NitrogenDemand,
		TotalPowerGeneration:      main.TotalPowerGeneration,
	}, nil
}
