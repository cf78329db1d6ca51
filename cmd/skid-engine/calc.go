// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/skid-engine/internal/pipeline"
	"github.com/pdiddy/skid-engine/internal/snapshot"
	"github.com/pdiddy/skid-engine/pkg/types"
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Run the calculation pipeline for one main power",
	Long: `Calc runs the four-stage pipeline (main engine, utility power, economics,
unit selection) for a single main power in kW, evaluates the design, and
prints the combined report. Stage parameters default to the reference skid
and can be overridden with a YAML params file.`,
	RunE: runCalc,
}

func init() {
	calcCmd.Flags().Float64("power", 0, "main power in kW (negative for absorbing duty)")
	calcCmd.Flags().String("params", "", "YAML file with stage parameter overrides")
	calcCmd.Flags().Bool("json", false, "output the full result as JSON")
	calcCmd.Flags().Bool("snapshot", false, "persist the run to the local snapshot store")

	rootCmd.AddCommand(calcCmd)
}

// paramsFile is the YAML override document accepted by calc and simulate.
// Absent blocks keep the reference defaults.
type paramsFile struct {
	MainPower  float64                    `yaml:"main_power"`
	MainEngine *types.MainEngineParams    `yaml:"main_engine"`
	Utility    *types.UtilityParams       `yaml:"utility"`
	Economics  *types.EconomicParams      `yaml:"economics"`
	Selection  *types.UnitSelectionParams `yaml:"selection"`
	Design     *types.DesignParams        `yaml:"design"`
}

// stageParams resolves the effective stage parameters from the defaults, an
// optional params file, and an optional explicit main power.
func stageParams(path string, mainPower float64, design types.DesignParams) (types.MainEngineParams, types.UtilityParams, types.EconomicParams, types.UnitSelectionParams, types.DesignParams, error) {
	mp := types.DefaultMainEngineParams(mainPower)
	up := types.DefaultUtilityParams()
	ep := types.DefaultEconomicParams()
	sp := types.DefaultUnitSelectionParams()
	dp := design

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return mp, up, ep, sp, dp, fmt.Errorf("reading params file: %w", err)
		}
		var doc paramsFile
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return mp, up, ep, sp, dp, fmt.Errorf("parsing params file %s: %w", path, err)
		}
		if doc.MainEngine != nil {
			mp = *doc.MainEngine
		}
		if doc.MainPower != 0 {
			mp.MainPower = doc.MainPower
		}
		if doc.Utility != nil {
			up = *doc.Utility
		}
		if doc.Economics != nil {
			ep = *doc.Economics
		}
		if doc.Selection != nil {
			sp = *doc.Selection
		}
		if doc.Design != nil {
			dp = *doc.Design
		}
	}
	if mainPower != 0 {
		mp.MainPower = mainPower
	}
	return mp, up, ep, sp, dp, nil
}

func runCalc(cmd *cobra.Command, args []string) error {
	power, _ := cmd.Flags().GetFloat64("power")
	paramsPath, _ := cmd.Flags().GetString("params")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	saveSnapshot, _ := cmd.Flags().GetBool("snapshot")

	if power == 0 && paramsPath == "" {
		return fmt.Errorf("provide --power or a --params file with main_power")
	}

	cfg := loadConfig()
	mp, up, ep, sp, dp, err := stageParams(paramsPath, power, cfg.Design)
	if err != nil {
		return err
	}

	res, err := pipeline.Run(mp, up, ep, sp)
	if err != nil {
		return err
	}
	report, err := pipeline.Evaluate(res, mp, up, sp, dp)
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(map[string]any{"result": res, "design": report}); err != nil {
			return err
		}
	} else {
		printReport(os.Stdout, res, report)
	}

	if saveSnapshot {
		id, err := saveRun(cfg.Store, "manual", res, report)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Snapshot saved: %s\n", id)
	}
	return nil
}

// saveRun persists one pipeline run to the local store and returns the
// snapshot ID.
func saveRun(cfg types.StoreConfig, source string, res types.CombinedResult, report types.DesignReport) (string, error) {
	store, err := snapshot.NewStore(cfg)
	if err != nil {
		return "", err
	}
	defer store.Close()

	saved, err := store.Save(context.Background(), snapshot.Record{Source: source, Result: res, Design: report})
	if err != nil {
		return "", err
	}
	return saved.ID, nil
}

func printReport(w io.Writer, res types.CombinedResult, report types.DesignReport) {
	fmt.Fprintln(w, "Main engine")
	fmt.Fprintf(w, "  %-32s %14.4f kW\n", "Mechanical loss power", res.MainEngine.MainLossPower)
	fmt.Fprintf(w, "  %-32s %14.4f kW\n", "Main output power", res.MainEngine.MainOutputPower)
	fmt.Fprintf(w, "  %-32s %14.4f kW\n", "Total power generation", res.MainEngine.TotalPowerGeneration)

	fmt.Fprintln(w, "Utility power")
	fmt.Fprintf(w, "  %-32s %14.4f L/h\n", "Lubrication oil amount", res.UtilityPower.LubricationOilAmount)
	fmt.Fprintf(w, "  %-32s %14.4f t/h\n", "Oil cooler circulation water", res.UtilityPower.OilCoolerCirculationWater)
	fmt.Fprintf(w, "  %-32s %14.4f kW\n", "Oil pump power", res.UtilityPower.OilPumpPower)
	fmt.Fprintf(w, "  %-32s %14.4f kW\n", "Utility self-consumption", res.UtilityPower.UtilitySelfConsumption)
	fmt.Fprintf(w, "  %-32s %14.4f kW\n", "Net power output", res.UtilityPower.NetPowerOutput)
	fmt.Fprintf(w, "  %-32s %14.4f Nm3/h\n", "Instrument air demand", res.UtilityPower.AirDemand)
	fmt.Fprintf(w, "  %-32s %14.4f Nm3/h\n", "Nitrogen demand", res.UtilityPower.NitrogenDemand)

	fmt.Fprintln(w, "Economic analysis (annual)")
	fmt.Fprintf(w, "  %-32s %14.4f 10MWh\n", "Power generation", res.EconomicAnalysis.AnnualPowerGeneration)
	fmt.Fprintf(w, "  %-32s %14.4f 10k\n", "Power income", res.EconomicAnalysis.AnnualPowerIncome)
	fmt.Fprintf(w, "  %-32s %14.4f 10kt\n", "Coal savings", res.EconomicAnalysis.AnnualCoalSavings)
	fmt.Fprintf(w, "  %-32s %14.4f 10k\n", "Coal cost savings", res.EconomicAnalysis.AnnualCoalCostSavings)
	fmt.Fprintf(w, "  %-32s %14.4f 10kt\n", "CO2 reduction", res.EconomicAnalysis.AnnualCO2Reduction)

	fmt.Fprintln(w, "Unit selection")
	fmt.Fprintf(w, "  %-32s %14.4f kW\n", "Installed rating", res.UnitSelection.UnitSelection)
	fmt.Fprintf(w, "  %-32s %G x %G x %G m\n", "Enclosure (L x W x H)",
		res.UnitSelection.Dimensions.Length, res.UnitSelection.Dimensions.Width, res.UnitSelection.Dimensions.Height)
	fmt.Fprintf(w, "  %-32s %14.4f t\n", "Unit weight", res.UnitSelection.UnitWeight)

	fmt.Fprintln(w, "Design")
	if report.DualLevel {
		fmt.Fprintf(w, "  %-32s %14.4f kW\n", "First level power", report.FirstLevelPower)
		fmt.Fprintf(w, "  %-32s %14.4f kW\n", "Second level power", report.SecondLevelPower)
	}
	fmt.Fprintf(w, "  %-32s %14.4f kW\n", "Rated power", report.RatedPower)
	fmt.Fprintf(w, "  %-32s %G x %G x %G m\n", "Unit dimensions (L x W x H)",
		report.Dimensions.Length, report.Dimensions.Width, report.Dimensions.Height)
	fmt.Fprintf(w, "  %-32s %14.4f t\n", "Unit weight", report.UnitWeight)
	fmt.Fprintf(w, "  %-32s %14.4f 10k\n", "Investment cost", report.InvestmentCost)
	fmt.Fprintf(w, "  %-32s %14.1f years\n", "Payback period", report.PaybackYears)

	if !report.Checks.Pass() {
		if !report.Checks.NetPowerPositive {
			fmt.Fprintln(w, "  check failed: net power output is not positive")
		}
		if !report.Checks.IncomePositive {
			fmt.Fprintln(w, "  check failed: annual income is not positive")
		}
		if !report.Checks.EfficiencyInRange {
			fmt.Fprintln(w, "  check failed: net-to-input efficiency outside (0, 1)")
		}
	}
}
