// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/skid-engine/internal/pipeline"
	"github.com/pdiddy/skid-engine/internal/simulator"
	"github.com/pdiddy/skid-engine/pkg/types"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Resolve the main power from the simulation bridge and run the pipeline",
	Long: `Simulate sends the letdown case to the process-simulation bridge, resolves
the expander power from the result, and feeds it through the calculation
pipeline. When the bridge is unreachable, or with --estimate-only, the power
falls back to the pressure-drop estimate.

The case defaults to the reference letdown station and can be overridden
with a YAML request file or individual flags.`,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().String("request", "", "YAML file with the simulation request")
	simulateCmd.Flags().Float64("gas-flow", 0, "gas flow rate in scmh")
	simulateCmd.Flags().Float64("inlet-pressure", 0, "inlet pressure in MPaA")
	simulateCmd.Flags().Float64("outlet-pressure", 0, "outlet pressure in MPaA")
	simulateCmd.Flags().Float64("inlet-temp", 0, "inlet temperature in degrees C")
	simulateCmd.Flags().Float64("efficiency", 0, "expander isentropic efficiency in percent")
	simulateCmd.Flags().Bool("estimate-only", false, "skip the bridge and use the pressure-drop estimate")
	simulateCmd.Flags().String("params", "", "YAML file with stage parameter overrides")
	simulateCmd.Flags().Bool("json", false, "output the full result as JSON")
	simulateCmd.Flags().Bool("snapshot", false, "persist the run to the local snapshot store")

	rootCmd.AddCommand(simulateCmd)
}

// simulationRequestFromFlags builds the letdown case from the defaults, an
// optional request file, and explicit flag overrides.
func simulationRequestFromFlags(cmd *cobra.Command) (types.SimulationRequest, error) {
	req := types.DefaultSimulationRequest()

	if path, _ := cmd.Flags().GetString("request"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return req, fmt.Errorf("reading request file: %w", err)
		}
		if err := yaml.Unmarshal(data, &req); err != nil {
			return req, fmt.Errorf("parsing request file %s: %w", path, err)
		}
	}

	if cmd.Flags().Changed("gas-flow") {
		req.GasFlowRate, _ = cmd.Flags().GetFloat64("gas-flow")
	}
	if cmd.Flags().Changed("inlet-pressure") {
		req.InletPressure, _ = cmd.Flags().GetFloat64("inlet-pressure")
	}
	if cmd.Flags().Changed("outlet-pressure") {
		req.OutletPressure, _ = cmd.Flags().GetFloat64("outlet-pressure")
	}
	if cmd.Flags().Changed("inlet-temp") {
		req.InletTemperature, _ = cmd.Flags().GetFloat64("inlet-temp")
	}
	if cmd.Flags().Changed("efficiency") {
		req.Efficiency, _ = cmd.Flags().GetFloat64("efficiency")
	}
	return req, nil
}

func runSimulate(cmd *cobra.Command, args []string) error {
	estimateOnly, _ := cmd.Flags().GetBool("estimate-only")
	paramsPath, _ := cmd.Flags().GetString("params")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	saveSnapshot, _ := cmd.Flags().GetBool("snapshot")

	req, err := simulationRequestFromFlags(cmd)
	if err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return err
	}

	cfg := loadConfig()

	var resolution simulator.Resolution
	if estimateOnly {
		resolution = simulator.Resolution{
			MainPower: simulator.EstimatePower(req),
			Source:    simulator.SourceEstimated,
		}
	} else {
		client := simulator.NewClient(cfg.Simulator)
		simRes, err := client.Run(context.Background(), req)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: bridge unavailable, using estimate: %v\n", err)
			resolution = simulator.Resolution{
				MainPower: simulator.EstimatePower(req),
				Source:    simulator.SourceEstimated,
			}
		} else {
			resolution = simulator.Resolve(simRes, req)
		}
	}

	mp, up, ep, sp, dp, err := stageParams(paramsPath, resolution.MainPower, cfg.Design)
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
		if err := enc.Encode(map[string]any{"resolution": resolution, "result": res, "design": report}); err != nil {
			return err
		}
	} else {
		fmt.Fprintf(os.Stdout, "Main power: %.4f kW (%s)\n\n", resolution.MainPower, resolution.Source)
		printReport(os.Stdout, res, report)
	}

	if saveSnapshot {
		id, err := saveRun(cfg.Store, resolution.Source, res, report)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Snapshot saved: %s\n", id)
	}
	return nil
}
