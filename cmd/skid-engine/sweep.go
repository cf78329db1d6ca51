// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/pdiddy/skid-engine/internal/pipeline"
	"github.com/pdiddy/skid-engine/pkg/types"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep [powers...]",
	Short: "Run the pipeline across several main powers",
	Long: `Sweep runs the calculation pipeline once per main power and prints a
scenario comparison table. The stages are pure, so scenarios run
concurrently; rows are reported in argument order.`,
	RunE: runSweep,
}

func init() {
	sweepCmd.Flags().String("params", "", "YAML file with stage parameter overrides")
	sweepCmd.Flags().Bool("json", false, "output rows as JSON")

	rootCmd.AddCommand(sweepCmd)
}

type sweepRow struct {
	MainPower       float64 `json:"main_power"`
	TotalGeneration float64 `json:"total_power_generation"`
	NetPower        float64 `json:"net_power_output"`
	AnnualIncome    float64 `json:"annual_income"`
	UnitSelection   float64 `json:"unit_selection"`
	RatedPower      float64 `json:"rated_power"`
	PaybackYears    float64 `json:"payback_years"`
	Err             string  `json:"error,omitempty"`
}

func runSweep(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("provide one or more main powers in kW")
	}
	powers := make([]float64, len(args))
	for i, a := range args {
		p, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return fmt.Errorf("parsing power %q: %w", a, err)
		}
		powers[i] = p
	}

	paramsPath, _ := cmd.Flags().GetString("params")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	cfg := loadConfig()
	base, up, ep, sp, dp, err := stageParams(paramsPath, 0, cfg.Design)
	if err != nil {
		return err
	}

	rows := make([]sweepRow, len(powers))
	var wg sync.WaitGroup
	for i, p := range powers {
		wg.Add(1)
		go func(i int, p float64) {
			defer wg.Done()
			mp := base
			mp.MainPower = p
			rows[i] = sweepOne(mp, up, ep, sp, dp)
		}(i, p)
	}
	wg.Wait()

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}
	printSweepTable(rows)
	return nil
}

func sweepOne(mp types.MainEngineParams, up types.UtilityParams, ep types.EconomicParams, sp types.UnitSelectionParams, dp types.DesignParams) sweepRow {
	row := sweepRow{MainPower: mp.MainPower}

	res, err := pipeline.Run(mp, up, ep, sp)
	if err != nil {
		row.Err = err.Error()
		return row
	}
	report, err := pipeline.Evaluate(res, mp, up, sp, dp)
	if err != nil {
		row.Err = err.Error()
		return row
	}

	row.TotalGeneration = res.MainEngine.TotalPowerGeneration
	row.NetPower = res.UtilityPower.NetPowerOutput
	row.AnnualIncome = res.EconomicAnalysis.AnnualPowerIncome
	row.UnitSelection = res.UnitSelection.UnitSelection
	row.RatedPower = report.RatedPower
	row.PaybackYears = report.PaybackYears
	return row
}

func printSweepTable(rows []sweepRow) {
	fmt.Fprintf(os.Stdout, "%12s  %14s  %14s  %12s  %10s  %12s  %8s\n",
		"Power kW", "Total kW", "Net kW", "Income 10k", "Unit kW", "Rated kW", "Payback")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 94))

	for _, r := range rows {
		if r.Err != "" {
			fmt.Fprintf(os.Stdout, "%12.2f  error: %s\n", r.MainPower, r.Err)
			continue
		}
		fmt.Fprintf(os.Stdout, "%12.2f  %14.4f  %14.4f  %12.4f  %10.0f  %12.2f  %8.1f\n",
			r.MainPower, r.TotalGeneration, r.NetPower, r.AnnualIncome, r.UnitSelection, r.RatedPower, r.PaybackYears)
	}

	fmt.Fprintf(os.Stdout, "\n%d scenarios\n", len(rows))
}
