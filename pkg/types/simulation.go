// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"math"
)

// Simulation request defaults for the reference letdown case.
const (
	DefaultGasFlowRate        = 33333.333333 // scmh
	DefaultInletPressure      = 0.80         // MPaA
	DefaultInletTemperature   = 20.0         // degrees C
	DefaultOutletPressure     = 0.30         // MPaA
	DefaultExpanderEfficiency = 85           // percent
)

// GasComposition is the molar composition of the process gas in percent.
// Components may be zero; totals are not normalized here.
type GasComposition struct {
	CH4   float64 `json:"ch4" yaml:"ch4"`
	C2H6  float64 `json:"c2h6" yaml:"c2h6"`
	C3H8  float64 `json:"c3h8" yaml:"c3h8"`
	C4H10 float64 `json:"c4h10" yaml:"c4h10"`
	N2    float64 `json:"n2" yaml:"n2"`
	CO2   float64 `json:"co2" yaml:"co2"`
	H2S   float64 `json:"h2s" yaml:"h2s"`
}

// DefaultGasComposition returns pure methane.
func DefaultGasComposition() GasComposition {
	return GasComposition{CH4: 100}
}

// Validate requires every component fraction to be non-negative and finite.
func (g GasComposition) Validate() error {
	components := []struct {
		name  string
		value float64
	}{
		{"ch4", g.CH4}, {"c2h6", g.C2H6}, {"c3h8", g.C3H8},
		{"c4h10", g.C4H10}, {"n2", g.N2}, {"co2", g.CO2}, {"h2s", g.H2S},
	}
	for _, c := range components {
		if !(c.value >= 0) || math.IsInf(c.value, 0) {
			return fmt.Errorf("gas_composition.%s %v: must be non-negative: %w",
				c.name, c.value, ErrInvalidInput)
		}
	}
	return nil
}

// SimulationRequest is the case definition sent to the process-simulation
// bridge: an expander letdown from inlet to outlet pressure at the given
// flow and composition.
type SimulationRequest struct {
	// GasFlowRate is the process gas flow in standard cubic meters per hour.
	GasFlowRate float64 `json:"gas_flow_rate" yaml:"gas_flow_rate"`

	// InletPressure and OutletPressure are absolute pressures in MPaA; the
	// inlet must exceed the outlet for expander duty.
	InletPressure  float64 `json:"inlet_pressure" yaml:"inlet_pressure"`
	OutletPressure float64 `json:"outlet_pressure" yaml:"outlet_pressure"`

	// InletTemperature is the gas inlet temperature in degrees C.
	InletTemperature float64 `json:"inlet_temperature" yaml:"inlet_temperature"`

	// Efficiency is the expander isentropic efficiency in percent (0 to 100).
	Efficiency float64 `json:"efficiency" yaml:"efficiency"`

	// GasComposition is the molar composition in percent.
	GasComposition GasComposition `json:"gas_composition" yaml:"gas_composition"`
}

// DefaultSimulationRequest returns the reference letdown case.
func DefaultSimulationRequest() SimulationRequest {
	return SimulationRequest{
		GasFlowRate:      DefaultGasFlowRate,
		InletPressure:    DefaultInletPressure,
		OutletPressure:   DefaultOutletPressure,
		InletTemperature: DefaultInletTemperature,
		Efficiency:       DefaultExpanderEfficiency,
		GasComposition:   DefaultGasComposition(),
	}
}

// Validate checks the case for expander duty: positive flow, positive
// pressures with inlet above outlet, finite temperature, efficiency within
// 0 to 100, and a well-formed composition.
func (r SimulationRequest) Validate() error {
	if !(r.GasFlowRate > 0) || math.IsInf(r.GasFlowRate, 0) {
		return fmt.Errorf("gas_flow_rate %v: must be strictly positive: %w", r.GasFlowRate, ErrInvalidInput)
	}
	if !(r.InletPressure > 0) || math.IsInf(r.InletPressure, 0) {
		return fmt.Errorf("inlet_pressure %v: must be strictly positive: %w", r.InletPressure, ErrInvalidInput)
	}
	if !(r.OutletPressure > 0) || math.IsInf(r.OutletPressure, 0) {
		return fmt.Errorf("outlet_pressure %v: must be strictly positive: %w", r.OutletPressure, ErrInvalidInput)
	}
	if r.OutletPressure >= r.InletPressure {
		return fmt.Errorf("outlet_pressure %v: must be below inlet_pressure %v for expander duty: %w",
			r.OutletPressure, r.InletPressure, ErrInvalidInput)
	}
	if math.IsNaN(r.InletTemperature) || math.IsInf(r.InletTemperature, 0) {
		return fmt.Errorf("inlet_temperature %v: must be finite: %w", r.InletTemperature, ErrInvalidInput)
	}
	if !(r.Efficiency >= 0 && r.Efficiency <= 100) {
		return fmt.Errorf("efficiency %v: must be between 0 and 100 percent: %w", r.Efficiency, ErrInvalidInput)
	}
	return r.GasComposition.Validate()
}

// StreamConditions describes one process stream boundary.
type StreamConditions struct {
	// Pressure in MPaA.
	Pressure float64 `json:"pressure" yaml:"pressure"`

	// Temperature in degrees C.
	Temperature float64 `json:"temperature" yaml:"temperature"`
}

// PerformanceMetrics holds the block-level figures reported by the simulator.
type PerformanceMetrics struct {
	// Efficiency is the solved isentropic efficiency in percent.
	Efficiency float64 `json:"efficiency" yaml:"efficiency"`

	// PressureRatio is inlet over outlet pressure.
	PressureRatio float64 `json:"pressure_ratio" yaml:"pressure_ratio"`
}

// SimulationResult is the bridge's answer for one case. PowerOutput keeps the
// simulator's sign convention: negative values mean power delivered by the
// expander. Consumers resolve the usable shaft power through the simulator
// package rather than reading PowerOutput directly.
type SimulationResult struct {
	PowerOutput float64            `json:"power_output" yaml:"power_output"`
	Inlet       StreamConditions   `json:"inlet_conditions" yaml:"inlet_conditions"`
	Outlet      StreamConditions   `json:"outlet_conditions" yaml:"outlet_conditions"`
	Performance PerformanceMetrics `json:"performance_metrics" yaml:"performance_metrics"`

	// Duration is the solver wall time in seconds.
	Duration float64 `json:"simulation_time" yaml:"simulation_time"`
}
