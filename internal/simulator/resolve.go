// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package simulator

import (
	"math"

	"github.com/pdiddy/skid-engine/pkg/types"
)

// Power sources reported alongside a resolved main power.
const (
	SourceSimulated = "simulated"
	SourceEstimated = "estimated"
)

// minEstimatedPower floors the pressure-drop estimate in kW. Tiny skids are
// not worth designing below it.
const minEstimatedPower = 10

// Resolution carries the shaft power the pipeline will run with and the path
// that produced it.
type Resolution struct {
	MainPower float64 `json:"main_power" yaml:"main_power"`
	Source    string  `json:"source" yaml:"source"`
}

// EstimatePower approximates the expander shaft power in kW from the
// pressure drop across it, for when the bridge has no usable answer.
func EstimatePower(req types.SimulationRequest) float64 {
	power := req.GasFlowRate * (req.InletPressure - req.OutletPressure) * req.Efficiency / 100 * 0.001
	return math.Max(power, minEstimatedPower)
}

// Resolve picks the usable shaft power from a bridge result. The bridge
// reports delivered power as negative, so the magnitude is taken; a zero or
// non-finite report falls back to the pressure-drop estimate.
func Resolve(res types.SimulationResult, req types.SimulationRequest) Resolution {
	p := res.PowerOutput
	if p != 0 && !math.IsNaN(p) && !math.IsInf(p, 0) {
		return Resolution{MainPower: math.Abs(p), Source: SourceSimulated}
	}
	return Resolution{MainPower: EstimatePower(req), Source: SourceEstimated}
}
