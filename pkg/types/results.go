// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// MainEngineResult holds the main-engine stage outputs. Sign follows the
// input shaft power: absorbing duty yields a negative chain.
type MainEngineResult struct {
	// MainLossPower is the mechanical loss power in kW.
	MainLossPower float64 `json:"main_loss_power" yaml:"main_loss_power"`

	// MainOutputPower is the net mechanical output power in kW.
	MainOutputPower float64 `json:"main_output_power" yaml:"main_output_power"`

	// TotalPowerGeneration is the total generated electrical power in kW.
	TotalPowerGeneration float64 `json:"total_power_generation" yaml:"total_power_generation"`
}

// UtilityResult holds the utility stage outputs. It carries
// TotalPowerGeneration forward so downstream stages depend only on this
// record.
type UtilityResult struct {
	// LubricationOilAmount is the lube-oil circulation demand in L/h.
	LubricationOilAmount float64 `json:"lubrication_oil_amount" yaml:"lubrication_oil_amount"`

	// OilCoolerCirculationWater is the cooling-water flow in t/h.
	OilCoolerCirculationWater float64 `json:"oil_cooler_circulation_water" yaml:"oil_cooler_circulation_water"`

	// OilPumpPower is the catalog pump rating resolved from the oil amount, in kW.
	OilPumpPower float64 `json:"oil_pump_power" yaml:"oil_pump_power"`

	// UtilitySelfConsumption is the total auxiliary draw in kW.
	UtilitySelfConsumption float64 `json:"utility_self_consumption" yaml:"utility_self_consumption"`

	// NetPowerOutput is total generation minus self-consumption, in kW.
	NetPowerOutput float64 `json:"net_power_output" yaml:"net_power_output"`

	// AirDemand is the instrument air demand in Nm3/h, passed through.
	AirDemand float64 `json:"air_demand_nm3_h" yaml:"air_demand_nm3_h"`

	// NitrogenDemand is the nitrogen demand in Nm3/h, passed through.
	NitrogenDemand float64 `json:"nitrogen_demand_nm3_h" yaml:"nitrogen_demand_nm3_h"`

	// TotalPowerGeneration repeats the main-engine total in kW for the
	// economic and unit-selection stages.
	TotalPowerGeneration float64 `json:"total_power_generation" yaml:"total_power_generation"`
}

// EconomicResult holds the annual projections. Generation, income, coal, and
// CO2 figures are reported in ten-thousand-unit blocks per the project's
// reporting convention.
type EconomicResult struct {
	AnnualPowerGeneration float64 `json:"annual_power_generation" yaml:"annual_power_generation"`
	AnnualPowerIncome     float64 `json:"annual_power_income" yaml:"annual_power_income"`
	AnnualCoalSavings     float64 `json:"annual_coal_savings" yaml:"annual_coal_savings"`
	AnnualCoalCostSavings float64 `json:"annual_coal_cost_savings" yaml:"annual_coal_cost_savings"`
	AnnualCO2Reduction    float64 `json:"annual_co2_reduction" yaml:"annual_co2_reduction"`
}

// UnitSelectionResult holds the selected catalog unit.
type UnitSelectionResult struct {
	// UnitSelection is the installed power rating in kW, a multiple of the
	// 100 kW catalog step.
	UnitSelection float64 `json:"unit_selection" yaml:"unit_selection"`

	// Dimensions is the enclosure size in meters.
	Dimensions Dimensions `json:"unit_dimensions" yaml:"unit_dimensions"`

	// UnitWeight is the per-unit mass in metric tons.
	UnitWeight float64 `json:"unit_weight" yaml:"unit_weight"`
}

// CalculationSummary aggregates the four headline numbers of a pipeline run.
type CalculationSummary struct {
	InputMainPower    float64 `json:"input_main_power" yaml:"input_main_power"`
	FinalNetPower     float64 `json:"final_net_power" yaml:"final_net_power"`
	AnnualIncome      float64 `json:"annual_income" yaml:"annual_income"`
	SelectedUnitPower float64 `json:"selected_unit_power" yaml:"selected_unit_power"`
}

// CombinedResult is the full output of one pipeline run.
type CombinedResult struct {
	MainEngine         MainEngineResult    `json:"main_engine" yaml:"main_engine"`
	UtilityPower       UtilityResult       `json:"utility_power" yaml:"utility_power"`
	EconomicAnalysis   EconomicResult      `json:"economic_analysis" yaml:"economic_analysis"`
	UnitSelection      UnitSelectionResult `json:"unit_selection" yaml:"unit_selection"`
	CalculationSummary CalculationSummary  `json:"calculation_summary" yaml:"calculation_summary"`
}
