// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"math"
)

// Design defaults for level splitting and return-on-investment estimation.
const (
	// DefaultDualLevelThreshold is the net power in kW above which the skid
	// is split into two generator levels.
	DefaultDualLevelThreshold = 1000

	// DefaultCapitalCostPerKW is the installed capital cost per kW of rated
	// power, in ten-thousand currency units.
	DefaultCapitalCostPerKW = 1.0
)

// DesignParams holds the skid-design policy constants applied after the
// calculation pipeline.
type DesignParams struct {
	// DualLevelThreshold is the net power in kW that triggers a two-level
	// design (default 1000).
	DualLevelThreshold float64 `json:"dual_level_threshold" yaml:"dual_level_threshold"`

	// CapitalCostPerKW prices the rated selection power for the payback
	// estimate (default 1.0).
	CapitalCostPerKW float64 `json:"capital_cost_per_kw" yaml:"capital_cost_per_kw"`
}

// DefaultDesignParams returns the reference design policy.
func DefaultDesignParams() DesignParams {
	return DesignParams{
		DualLevelThreshold: DefaultDualLevelThreshold,
		CapitalCostPerKW:   DefaultCapitalCostPerKW,
	}
}

// Validate requires a strictly positive threshold and a non-negative capital cost.
func (p DesignParams) Validate() error {
	if !(p.DualLevelThreshold > 0) || math.IsInf(p.DualLevelThreshold, 0) {
		return fmt.Errorf("dual_level_threshold %v: must be strictly positive: %w",
			p.DualLevelThreshold, ErrParameterRange)
	}
	if !(p.CapitalCostPerKW >= 0) || math.IsInf(p.CapitalCostPerKW, 0) {
		return fmt.Errorf("capital_cost_per_kw %v: must be non-negative: %w",
			p.CapitalCostPerKW, ErrParameterRange)
	}
	return nil
}

// DesignChecks records the sanity checks applied to a finished design.
type DesignChecks struct {
	// NetPowerPositive is true when the skid exports power.
	NetPowerPositive bool `json:"net_power_positive" yaml:"net_power_positive"`

	// IncomePositive is true when the annual income projection is positive.
	IncomePositive bool `json:"income_positive" yaml:"income_positive"`

	// EfficiencyInRange is true when net power over input shaft power lies
	// strictly between 0 and 1.
	EfficiencyInRange bool `json:"efficiency_in_range" yaml:"efficiency_in_range"`
}

// Pass reports whether every check succeeded.
func (c DesignChecks) Pass() bool {
	return c.NetPowerPositive && c.IncomePositive && c.EfficiencyInRange
}

// DesignReport is the equipment-design view of a pipeline run: level split,
// rated unit, investment, and payback.
type DesignReport struct {
	// DualLevel is true when net power exceeded the threshold and the skid
	// was split into two generator levels.
	DualLevel bool `json:"dual_level" yaml:"dual_level"`

	// FirstLevelPower and SecondLevelPower are the kW split of a dual-level
	// design; both are zero for a single-level skid.
	FirstLevelPower  float64 `json:"first_level_power,omitempty" yaml:"first_level_power,omitempty"`
	SecondLevelPower float64 `json:"second_level_power,omitempty" yaml:"second_level_power,omitempty"`

	// RatedPower is the selection power in kW the unit is sized for.
	RatedPower float64 `json:"rated_power" yaml:"rated_power"`

	// Dimensions and UnitWeight describe the enclosure sized for RatedPower.
	Dimensions Dimensions `json:"unit_dimensions" yaml:"unit_dimensions"`
	UnitWeight float64    `json:"unit_weight" yaml:"unit_weight"`

	// InvestmentCost is the capital estimate in ten-thousand currency units.
	InvestmentCost float64 `json:"investment_cost" yaml:"investment_cost"`

	// PaybackYears is InvestmentCost over annual income, rounded to one
	// decimal; zero when income is not positive.
	PaybackYears float64 `json:"payback_years" yaml:"payback_years"`

	// Checks holds the design sanity checks.
	Checks DesignChecks `json:"checks" yaml:"checks"`
}
