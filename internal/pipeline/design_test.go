// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"errors"
	"testing"

	"github.com/pdiddy/skid-engine/pkg/types"
)

func evaluateDefault(t *testing.T, mainPower float64) (types.CombinedResult, types.DesignReport) {
	t.Helper()
	res, err := RunDefault(mainPower)
	if err != nil {
		t.Fatalf("RunDefault(%v): %v", mainPower, err)
	}
	report, err := Evaluate(res,
		types.DefaultMainEngineParams(mainPower),
		types.DefaultUtilityParams(),
		types.DefaultUnitSelectionParams(),
		types.DefaultDesignParams())
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	return res, report
}

// --- Evaluate tests ---

func TestEvaluateSingleLevel(t *testing.T) {
	res, report := evaluateDefault(t, 66.53419)

	if report.DualLevel {
		t.Fatal("DualLevel = true for a 39 kW net skid")
	}
	if report.FirstLevelPower != 0 || report.SecondLevelPower != 0 {
		t.Errorf("level split = %v / %v, want 0 / 0", report.FirstLevelPower, report.SecondLevelPower)
	}
	approx(t, "RatedPower", report.RatedPower, res.MainEngine.TotalPowerGeneration, 0)
	if report.Dimensions != res.UnitSelection.Dimensions || report.UnitWeight != res.UnitSelection.UnitWeight {
		t.Errorf("enclosure = %+v / %v t, want the run's own selection", report.Dimensions, report.UnitWeight)
	}
	// The reference skid rounds to a 0 kW selection, so it prices at zero.
	approx(t, "InvestmentCost", report.InvestmentCost, 0, 0)
	approx(t, "PaybackYears", report.PaybackYears, 0, 0)
	if !report.Checks.Pass() {
		t.Errorf("Checks = %+v, want all passing", report.Checks)
	}
}

func TestEvaluateDualLevelSecondBelowThreshold(t *testing.T) {
	// 2000 kW in: net 1334.02 kW, so the second level carries 334.02 kW and
	// the unit is rated at the 1000 kW threshold.
	_, report := evaluateDefault(t, 2000)

	if !report.DualLevel {
		t.Fatal("DualLevel = false, want dual-level design")
	}
	approx(t, "FirstLevelPower", report.FirstLevelPower, 1000, 0)
	approx(t, "SecondLevelPower", report.SecondLevelPower, 334.02244, 1e-6)
	approx(t, "RatedPower", report.RatedPower, 1000, 0)

	// Re-rating at 1000 kW selects the 710 kW catalog row.
	want := types.Dimensions{Length: 5.5, Width: 3, Height: 2.5}
	if report.Dimensions != want || report.UnitWeight != 22 {
		t.Errorf("enclosure = %+v / %v t, want %+v / 22 t", report.Dimensions, report.UnitWeight, want)
	}

	approx(t, "InvestmentCost", report.InvestmentCost, 1000, 0)
	approx(t, "PaybackYears", report.PaybackYears, 1.6, 1e-12)
	if !report.Checks.Pass() {
		t.Errorf("Checks = %+v, want all passing", report.Checks)
	}
}

func TestEvaluateDualLevelSecondAboveThreshold(t *testing.T) {
	// 3200 kW in: net 2139.54 kW, so the second level exceeds the threshold
	// and the unit is rated at the second level itself.
	_, report := evaluateDefault(t, 3200)

	if !report.DualLevel {
		t.Fatal("DualLevel = false, want dual-level design")
	}
	approx(t, "FirstLevelPower", report.FirstLevelPower, 1000, 0)
	approx(t, "SecondLevelPower", report.SecondLevelPower, 1139.535904, 1e-6)
	approx(t, "RatedPower", report.RatedPower, 1139.535904, 1e-6)

	want := types.Dimensions{Length: 6.5, Width: 3, Height: 2.5}
	if report.Dimensions != want || report.UnitWeight != 25 {
		t.Errorf("enclosure = %+v / %v t, want %+v / 25 t", report.Dimensions, report.UnitWeight, want)
	}

	// Investment prices whole kilowatts of the raw rated power.
	approx(t, "InvestmentCost", report.InvestmentCost, 1139, 0)
	approx(t, "PaybackYears", report.PaybackYears, 1.1, 1e-12)
}

func TestEvaluateThresholdIsExclusive(t *testing.T) {
	res, err := RunDefault(2000)
	if err != nil {
		t.Fatalf("RunDefault: %v", err)
	}
	dp := types.DefaultDesignParams()
	dp.DualLevelThreshold = res.UtilityPower.NetPowerOutput

	report, err := Evaluate(res, types.DefaultMainEngineParams(2000),
		types.DefaultUtilityParams(), types.DefaultUnitSelectionParams(), dp)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if report.DualLevel {
		t.Fatal("DualLevel = true when net power equals the threshold, want single level")
	}
}

func TestEvaluateZeroIncomeSkipsPayback(t *testing.T) {
	res, err := Run(
		types.DefaultMainEngineParams(2000),
		types.DefaultUtilityParams(),
		types.EconomicParams{ElectricityPrice: 0.6, StandardCoalCoefficient: 0.35, StandardCoalPrice: 500, CO2EmissionFactor: 0.96},
		types.DefaultUnitSelectionParams())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	report, err := Evaluate(res, types.DefaultMainEngineParams(2000),
		types.DefaultUtilityParams(), types.DefaultUnitSelectionParams(), types.DefaultDesignParams())
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if report.PaybackYears != 0 {
		t.Errorf("PaybackYears = %v, want 0 with no income", report.PaybackYears)
	}
	if report.Checks.IncomePositive {
		t.Error("IncomePositive = true with zero operating hours")
	}
}

func TestEvaluateChecksFailForAbsorbingDuty(t *testing.T) {
	_, report := evaluateDefault(t, -100)

	if report.Checks.NetPowerPositive {
		t.Error("NetPowerPositive = true for negative net power")
	}
	if report.Checks.IncomePositive {
		t.Error("IncomePositive = true for negative income")
	}
	if report.Checks.Pass() {
		t.Error("Pass() = true, want failure")
	}
}

func TestEvaluateRejectsInvalidDesignParams(t *testing.T) {
	res, err := RunDefault(100)
	if err != nil {
		t.Fatalf("RunDefault: %v", err)
	}
	_, err = Evaluate(res, types.DefaultMainEngineParams(100),
		types.DefaultUtilityParams(), types.DefaultUnitSelectionParams(),
		types.DesignParams{DualLevelThreshold: 0, CapitalCostPerKW: 1})
	if !errors.Is(err, types.ErrParameterRange) {
		t.Fatalf("Evaluate error = %v, want ErrParameterRange", err)
	}
}
