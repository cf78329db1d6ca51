// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package utility

import (
	"errors"
	"math"
	"testing"

	"github.com/pdiddy/skid-engine/internal/lookup"
	"github.com/pdiddy/skid-engine/pkg/types"
)

func approx(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %.10f, want %.10f", name, got, want)
	}
}

// --- Compute tests ---

func TestComputeReferenceSkid(t *testing.T) {
	main := types.MainEngineResult{
		MainOutputPower:      62.62144735448,
		TotalPowerGeneration: 45.2439957136118,
	}
	got, err := Compute(main, types.DefaultUtilityParams())
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	approx(t, "LubricationOilAmount", got.LubricationOilAmount, 13.2610123809, 1e-9)
	approx(t, "OilCoolerCirculationWater", got.OilCoolerCirculationWater, 0.32205315782304, 1e-9)
	approx(t, "OilPumpPower", got.OilPumpPower, 1.5, 0)
	approx(t, "UtilitySelfConsumption", got.UtilitySelfConsumption, 5.75, 0)
	approx(t, "NetPowerOutput", got.NetPowerOutput, 39.4939957136118, 1e-9)
	approx(t, "AirDemand", got.AirDemand, 4, 0)
	approx(t, "NitrogenDemand", got.NitrogenDemand, 40, 0)
	approx(t, "TotalPowerGeneration", got.TotalPowerGeneration, 45.2439957136118, 0)
}

func TestComputePassesDemandsThrough(t *testing.T) {
	p := types.DefaultUtilityParams()
	p.AirDemand = 7
	p.NitrogenDemand = 55

	got, err := Compute(types.MainEngineResult{MainOutputPower: 100, TotalPowerGeneration: 80}, p)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if got.AirDemand != 7 || got.NitrogenDemand != 55 {
		t.Fatalf("demands = %v, %v, want 7, 55", got.AirDemand, got.NitrogenDemand)
	}
	if got.TotalPowerGeneration != 80 {
		t.Fatalf("TotalPowerGeneration = %v, want pass-through 80", got.TotalPowerGeneration)
	}
}

func TestComputeClampsOversizedOilFlow(t *testing.T) {
	// 10000 kW of output pushes the oil flow past every catalog row.
	main := types.MainEngineResult{MainOutputPower: 10000, TotalPowerGeneration: 7225}
	got, err := Compute(main, types.DefaultUtilityParams())
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if got.LubricationOilAmount <= 1035 {
		t.Fatalf("LubricationOilAmount = %v, expected table overflow", got.LubricationOilAmount)
	}
	approx(t, "OilPumpPower", got.OilPumpPower, 30, 0)
	approx(t, "UtilitySelfConsumption", got.UtilitySelfConsumption, 48.5, 0)
}

// --- pump table tests ---

func TestPumpPowerTableSelection(t *testing.T) {
	tests := []struct {
		name string
		flow float64
		want float64
	}{
		{"zero flow takes the smallest pump", 0, 1.5},
		{"exact first breakpoint", 28.4, 1.5},
		{"second band shares the rating", 30, 1.5},
		{"just above the 1.5 kW band", 37.91, 2.2},
		{"mid catalog", 100, 4},
		{"repeated rating bands", 200, 7.5},
		{"reference dual-level flow", 398.62, 15},
		{"exact last breakpoint", 1035, 30},
		{"overflow clamps to the largest pump", 2000, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PumpPowerTable.ResolveClamp(tt.flow); got != tt.want {
				t.Fatalf("ResolveClamp(%v) = %v, want %v", tt.flow, got, tt.want)
			}
		})
	}
}

func TestPumpPowerTableMonotone(t *testing.T) {
	// Catalog pump ratings never shrink as the flow grows.
	prev := 0.0
	for flow := 0.0; flow <= 1200; flow += 0.5 {
		got := PumpPowerTable.ResolveClamp(flow)
		if got < prev {
			t.Fatalf("ResolveClamp(%v) = %v, below previous rating %v", flow, got, prev)
		}
		prev = got
	}
}

// --- validation tests ---

func TestComputeRejectsInvalidParams(t *testing.T) {
	mutate := func(f func(*types.UtilityParams)) types.UtilityParams {
		p := types.DefaultUtilityParams()
		f(&p)
		return p
	}

	tests := []struct {
		name   string
		params types.UtilityParams
	}{
		{"zero oil density", mutate(func(p *types.UtilityParams) { p.OilDensity = 0 })},
		{"negative loss ratio", mutate(func(p *types.UtilityParams) { p.MechanicalLossRatio = -0.04 })},
		{"nan temp rise", mutate(func(p *types.UtilityParams) { p.OilCoolerTempRise = math.NaN() })},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compute(types.MainEngineResult{MainOutputPower: 100}, tt.params)
			if !errors.Is(err, types.ErrParameterRange) {
				t.Fatalf("Compute error = %v, want ErrParameterRange", err)
			}
		})
	}
}

func TestComputeWithTableRejectsEmptyTable(t *testing.T) {
	_, err := ComputeWithTable(types.MainEngineResult{MainOutputPower: 100},
		types.DefaultUtilityParams(), lookup.Table[float64]{})
	if !errors.Is(err, types.ErrParameterRange) {
		t.Fatalf("ComputeWithTable error = %v, want ErrParameterRange", err)
	}
}
