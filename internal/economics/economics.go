// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package economics projects the annual value of the skid's net power
// output: generation, electricity income, displaced standard coal, and
// avoided CO2.
package economics

import (
	"fmt"

	"github.com/pdiddy/skid-engine/pkg/types"
)

// generationBlockKWh scales annual kWh into the ten-thousand-kWh blocks the
// projection is reported in.
const generationBlockKWh = 10000

// Compute projects the annual economics of the net power output carried by u.
// A negative net output produces negative projections rather than an error;
// the design checks flag those runs.
func Compute(u types.UtilityResult, p types.EconomicParams) (types.EconomicResult, error) {
	if err := p.Validate(); err != nil {
		return types.EconomicResult{}, fmt.Errorf("economics: %w", err)
	}

	gen := u.NetPowerOutput * p.AnnualOperatingHours / generationBlockKWh
	coal := gen * p.StandardCoalCoefficient

	return types.EconomicResult{
		AnnualPowerGeneration: gen,
		AnnualPowerIncome:     gen * p.ElectricityPrice,
		AnnualCoalSavings:     coal,
		AnnualCoalCostSavings: coal * p.StandardCoalPrice,
		AnnualCO2Reduction:    gen * p.CO2EmissionFactor,
	}, nil
}
