// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package engine implements the main-engine stage of the skid calculation.
// Rated main power is discounted by the cooling, frequency, and wheel
// resistance factors to give shaft output, and by the wheel loss factor and
// generator efficiency on top of that to give total power generation at the
// generator terminals.
package engine

import (
	"fmt"

	"github.com/pdiddy/skid-engine/pkg/types"
)

// Compute derives the main-engine power balance from p.
//
// The loss power reports the share of rated power lost inside the engine
// itself, after the same cooling, frequency, and wheel resistance discounts
// that apply to the shaft output.
func Compute(p types.MainEngineParams) (types.MainEngineResult, error) {
	if err := p.Validate(); err != nil {
		return types.MainEngineResult{}, fmt.Errorf("main engine: %w", err)
	}

	retained := p.CoolingLossFactor * p.FrequencyLossFactor * p.WheelResistanceFactor
	output := p.MainPower * retained
	loss := p.MainPower * (1 - p.MainLossFactor) * retained

	return types.MainEngineResult{
		MainLossPower:        loss,
		MainOutputPower:      output,
		TotalPowerGeneration: output * p.WheelLossFactor * p.GeneratorEfficiency,
	}, nil
}
