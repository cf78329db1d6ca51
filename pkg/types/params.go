// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"math"
)

// Main-engine factor defaults. These are catalog engineering constants for
// the reference expander-generator skid.
const (
	DefaultWheelLossFactor       = 0.85
	DefaultGeneratorEfficiency   = 0.85
	DefaultMainLossFactor        = 0.80
	DefaultCoolingLossFactor     = 0.98
	DefaultFrequencyLossFactor   = 0.98
	DefaultWheelResistanceFactor = 0.98
)

// MainEngineParams holds the shaft power and the loss/efficiency chain for
// the main-engine stage. All factors are dimensionless and must be positive;
// values of 1.0 (a lossless element) are accepted.
type MainEngineParams struct {
	// MainPower is the shaft power in kW, supplied by the external process
	// simulator. Negative values describe power-absorbing duty and are valid;
	// zero and non-finite values are not.
	MainPower float64 `json:"main_power" yaml:"main_power"`

	// WheelLossFactor scales mechanical output into generated power (default 0.85).
	WheelLossFactor float64 `json:"wheel_loss_factor" yaml:"wheel_loss_factor"`

	// GeneratorEfficiency is the generator conversion efficiency (default 0.85).
	GeneratorEfficiency float64 `json:"generator_efficiency" yaml:"generator_efficiency"`

	// MainLossFactor is the retained fraction of shaft power; the loss term
	// scales with (1 - MainLossFactor) (default 0.80).
	MainLossFactor float64 `json:"main_loss_factor" yaml:"main_loss_factor"`

	// CoolingLossFactor accounts for cooling-circuit leakage (default 0.98).
	CoolingLossFactor float64 `json:"cooling_loss_factor" yaml:"cooling_loss_factor"`

	// FrequencyLossFactor accounts for frequency-conversion losses (default 0.98).
	FrequencyLossFactor float64 `json:"frequency_loss_factor" yaml:"frequency_loss_factor"`

	// WheelResistanceFactor accounts for wheel windage drag (default 0.98).
	WheelResistanceFactor float64 `json:"wheel_resistance_factor" yaml:"wheel_resistance_factor"`
}

// DefaultMainEngineParams returns the catalog factor defaults with the given
// shaft power.
func DefaultMainEngineParams(mainPower float64) MainEngineParams {
	return MainEngineParams{
		MainPower:             mainPower,
		WheelLossFactor:       DefaultWheelLossFactor,
		GeneratorEfficiency:   DefaultGeneratorEfficiency,
		MainLossFactor:        DefaultMainLossFactor,
		CoolingLossFactor:     DefaultCoolingLossFactor,
		FrequencyLossFactor:   DefaultFrequencyLossFactor,
		WheelResistanceFactor: DefaultWheelResistanceFactor,
	}
}

// Validate reports whether the record is usable by the main-engine stage.
// MainPower must be finite and non-zero; every factor must be a positive
// finite number.
func (p MainEngineParams) Validate() error {
	if p.MainPower == 0 || math.IsNaN(p.MainPower) || math.IsInf(p.MainPower, 0) {
		return fmt.Errorf("main_power %v: must be finite and non-zero: %w", p.MainPower, ErrInvalidInput)
	}
	factors := []struct {
		name  string
		value float64
	}{
		{"wheel_loss_factor", p.WheelLossFactor},
		{"generator_efficiency", p.GeneratorEfficiency},
		{"main_loss_factor", p.MainLossFactor},
		{"cooling_loss_factor", p.CoolingLossFactor},
		{"frequency_loss_factor", p.FrequencyLossFactor},
		{"wheel_resistance_factor", p.WheelResistanceFactor},
	}
	for _, f := range factors {
		if !(f.value > 0) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%s %v: must be a positive finite factor: %w", f.name, f.value, ErrInvalidInput)
		}
	}
	return nil
}

// Utility-stage defaults. Oil properties describe ISO VG 32 turbine oil;
// the pump loads are the skid's fixed auxiliary consumers.
const (
	DefaultMechanicalLossRatio      = 0.04
	DefaultOilDensity               = 850 // kg/m3
	DefaultOilSpecificHeat          = 2   // kJ/(kg*K)
	DefaultOilCoolerTempRise        = 8   // K
	DefaultCoolingWaterSpecificHeat = 4.2 // kJ/(kg*K)
	DefaultCoolingPumpPower         = 1.5 // kW
	DefaultCirculationPumpPower     = 2.0 // kW
	DefaultAirDemand                = 4   // Nm3/h
	DefaultNitrogenDemand           = 40  // Nm3/h
)

// UtilityParams holds the lubrication, cooling, and instrumentation constants
// for the utility stage. All fields are strictly positive with no
// interdependency.
type UtilityParams struct {
	// MechanicalLossRatio is the fraction of main output power rejected as
	// heat into the lube-oil circuit (default 0.04).
	MechanicalLossRatio float64 `json:"mechanical_loss_ratio" yaml:"mechanical_loss_ratio"`

	// OilDensity is the lubrication oil density in kg/m3 (default 850).
	OilDensity float64 `json:"oil_density" yaml:"oil_density"`

	// OilSpecificHeat is the lubrication oil specific heat in kJ/(kg*K) (default 2).
	OilSpecificHeat float64 `json:"oil_specific_heat" yaml:"oil_specific_heat"`

	// OilCoolerTempRise is the water-side temperature rise across the oil
	// cooler in K, shared by the oil and water sizing formulas (default 8).
	OilCoolerTempRise float64 `json:"oil_cooler_temp_rise" yaml:"oil_cooler_temp_rise"`

	// CoolingWaterSpecificHeat is the cooling water specific heat at constant
	// pressure in kJ/(kg*K) (default 4.2).
	CoolingWaterSpecificHeat float64 `json:"cooling_water_specific_heat" yaml:"cooling_water_specific_heat"`

	// CoolingPumpPower is the fixed cooling-loop pump draw in kW (default 1.5).
	CoolingPumpPower float64 `json:"cooling_pump_power" yaml:"cooling_pump_power"`

	// CirculationPumpPower is the fixed circulation pump draw in kW (default 2.0).
	CirculationPumpPower float64 `json:"circulation_pump_power" yaml:"circulation_pump_power"`

	// AirDemand is the instrument air demand in Nm3/h, reported as-is (default 4).
	AirDemand float64 `json:"air_demand_nm3_h" yaml:"air_demand_nm3_h"`

	// NitrogenDemand is the seal-gas nitrogen demand in Nm3/h, reported as-is (default 40).
	NitrogenDemand float64 `json:"nitrogen_demand_nm3_h" yaml:"nitrogen_demand_nm3_h"`
}

// DefaultUtilityParams returns the reference-skid utility constants.
func DefaultUtilityParams() UtilityParams {
	return UtilityParams{
		MechanicalLossRatio:      DefaultMechanicalLossRatio,
		OilDensity:               DefaultOilDensity,
		OilSpecificHeat:          DefaultOilSpecificHeat,
		OilCoolerTempRise:        DefaultOilCoolerTempRise,
		CoolingWaterSpecificHeat: DefaultCoolingWaterSpecificHeat,
		CoolingPumpPower:         DefaultCoolingPumpPower,
		CirculationPumpPower:     DefaultCirculationPumpPower,
		AirDemand:                DefaultAirDemand,
		NitrogenDemand:           DefaultNitrogenDemand,
	}
}

// Validate reports whether every utility constant is strictly positive and finite.
func (p UtilityParams) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"mechanical_loss_ratio", p.MechanicalLossRatio},
		{"oil_density", p.OilDensity},
		{"oil_specific_heat", p.OilSpecificHeat},
		{"oil_cooler_temp_rise", p.OilCoolerTempRise},
		{"cooling_water_specific_heat", p.CoolingWaterSpecificHeat},
		{"cooling_pump_power", p.CoolingPumpPower},
		{"circulation_pump_power", p.CirculationPumpPower},
		{"air_demand_nm3_h", p.AirDemand},
		{"nitrogen_demand_nm3_h", p.NitrogenDemand},
	}
	for _, f := range fields {
		if !(f.value > 0) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%s %v: must be strictly positive: %w", f.name, f.value, ErrParameterRange)
		}
	}
	return nil
}

// Economic defaults. Prices and factors follow the reference project's
// reporting conventions; generation is reported in ten-thousand-kWh blocks.
const (
	DefaultAnnualOperatingHours    = 8000
	MaxAnnualOperatingHours        = 8760
	DefaultElectricityPrice        = 0.6
	DefaultStandardCoalCoefficient = 0.35
	DefaultStandardCoalPrice       = 500
	DefaultCO2EmissionFactor       = 0.96
)

// EconomicParams holds the projection constants for the economic stage.
type EconomicParams struct {
	// AnnualOperatingHours is the projected operating time per year in hours,
	// bounded by the hours in a year (default 8000, valid 0 to 8760).
	AnnualOperatingHours float64 `json:"annual_operating_hours" yaml:"annual_operating_hours"`

	// ElectricityPrice is the sale price per kWh (default 0.6).
	ElectricityPrice float64 `json:"electricity_price" yaml:"electricity_price"`

	// StandardCoalCoefficient converts generated energy to standard-coal
	// savings (default 0.35).
	StandardCoalCoefficient float64 `json:"standard_coal_coefficient" yaml:"standard_coal_coefficient"`

	// StandardCoalPrice is the price per ton of standard coal (default 500).
	StandardCoalPrice float64 `json:"standard_coal_price" yaml:"standard_coal_price"`

	// CO2EmissionFactor converts generated energy to avoided CO2 (default 0.96).
	CO2EmissionFactor float64 `json:"co2_emission_factor" yaml:"co2_emission_factor"`
}

// DefaultEconomicParams returns the reference economic constants.
func DefaultEconomicParams() EconomicParams {
	return EconomicParams{
		AnnualOperatingHours:    DefaultAnnualOperatingHours,
		ElectricityPrice:        DefaultElectricityPrice,
		StandardCoalCoefficient: DefaultStandardCoalCoefficient,
		StandardCoalPrice:       DefaultStandardCoalPrice,
		CO2EmissionFactor:       DefaultCO2EmissionFactor,
	}
}

// Validate bounds the economic constants: hours within a calendar year and
// every price and factor non-negative and finite.
func (p EconomicParams) Validate() error {
	if !(p.AnnualOperatingHours >= 0 && p.AnnualOperatingHours <= MaxAnnualOperatingHours) {
		return fmt.Errorf("annual_operating_hours %v: must be between 0 and %d: %w",
			p.AnnualOperatingHours, MaxAnnualOperatingHours, ErrParameterRange)
	}
	fields := []struct {
		name  string
		value float64
	}{
		{"electricity_price", p.ElectricityPrice},
		{"standard_coal_coefficient", p.StandardCoalCoefficient},
		{"standard_coal_price", p.StandardCoalPrice},
		{"co2_emission_factor", p.CO2EmissionFactor},
	}
	for _, f := range fields {
		if !(f.value >= 0) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%s %v: must be non-negative: %w", f.name, f.value, ErrParameterRange)
		}
	}
	return nil
}

// Dimensions is an enclosure size triple in meters.
type Dimensions struct {
	Length float64 `json:"length" yaml:"length"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// Unit-selection fallback defaults, used only when the selected power exceeds
// every catalog row.
var DefaultUnitDimensions = Dimensions{Length: 3, Width: 2.5, Height: 2.5}

// DefaultUnitWeight is the fallback per-unit mass in metric tons.
const DefaultUnitWeight = 15

// UnitSelectionParams holds the fallback enclosure geometry for the
// unit-selection stage. The authoritative values come from the catalog table;
// these apply only on table overflow.
type UnitSelectionParams struct {
	// Dimensions is the fallback enclosure triple in meters (default 3 x 2.5 x 2.5).
	Dimensions Dimensions `json:"dimensions" yaml:"dimensions"`

	// UnitWeight is the fallback per-unit mass in metric tons (default 15).
	UnitWeight float64 `json:"unit_weight" yaml:"unit_weight"`
}

// DefaultUnitSelectionParams returns the reference fallback geometry.
func DefaultUnitSelectionParams() UnitSelectionParams {
	return UnitSelectionParams{
		Dimensions: DefaultUnitDimensions,
		UnitWeight: DefaultUnitWeight,
	}
}

// Validate reports whether the fallback triple and mass are strictly positive
// and finite.
func (p UnitSelectionParams) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"dimensions.length", p.Dimensions.Length},
		{"dimensions.width", p.Dimensions.Width},
		{"dimensions.height", p.Dimensions.Height},
		{"unit_weight", p.UnitWeight},
	}
	for _, f := range fields {
		if !(f.value > 0) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%s %v: must be strictly positive: %w", f.name, f.value, ErrParameterRange)
		}
	}
	return nil
}
