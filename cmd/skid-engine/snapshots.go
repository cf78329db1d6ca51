// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/skid-engine/internal/snapshot"
	"github.com/pdiddy/skid-engine/pkg/types"
)

var snapshotsCmd = &cobra.Command{
	Use:   "snapshots",
	Short: "Inspect the local snapshot store (list, show, export)",
	Long: `Snapshots manages the local store of persisted pipeline runs. Use
subcommands to list recent runs, show one in full, or export the store.`,
}

// snapshotStore opens the store configured for this invocation.
func snapshotStore(cmd *cobra.Command) (*snapshot.Store, types.StoreConfig, error) {
	cfg := loadConfig()
	if dir, _ := cmd.Flags().GetString("results-dir"); dir != "" {
		cfg.Store.Dir = dir
	}
	store, err := snapshot.NewStore(cfg.Store)
	return store, cfg.Store, err
}

// --- list subcommand ---

var snapshotsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent snapshots, newest first",
	RunE:  runSnapshotsList,
}

func runSnapshotsList(cmd *cobra.Command, args []string) error {
	store, _, err := snapshotStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	recs, err := store.List(context.Background(), limit)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(recs)
	}

	if len(recs) == 0 {
		fmt.Println("No snapshots found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-36s  %-20s  %-10s  %12s  %12s  %12s\n",
		"ID", "Created", "Source", "Power kW", "Net kW", "Income 10k")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 112))
	for _, r := range recs {
		fmt.Fprintf(os.Stdout, "%-36s  %-20s  %-10s  %12.2f  %12.2f  %12.2f\n",
			r.ID, r.CreatedAt.Format(time.DateTime), r.Source,
			r.Result.CalculationSummary.InputMainPower,
			r.Result.CalculationSummary.FinalNetPower,
			r.Result.CalculationSummary.AnnualIncome)
	}
	fmt.Fprintf(os.Stdout, "\n%d snapshots\n", len(recs))
	return nil
}

// --- show subcommand ---

var snapshotsShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show one snapshot in full",
	RunE:  runSnapshotsShow,
}

func runSnapshotsShow(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("provide a snapshot ID")
	}

	store, _, err := snapshotStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	rec, err := store.Get(context.Background(), args[0])
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rec)
	}

	data, err := yaml.Marshal(rec)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}

// --- export subcommand ---

var snapshotsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the snapshot store to YAML or JSON",
	RunE:  runSnapshotsExport,
}

func runSnapshotsExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	out, _ := cmd.Flags().GetString("out")

	store, storeCfg, err := snapshotStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	switch format {
	case "yaml", "":
		if out == "" {
			out = filepath.Join(storeCfg.Dir, "export.yaml")
		}
		if err := store.ExportYAML(context.Background(), out); err != nil {
			return err
		}
	case "json":
		if out == "" {
			out = filepath.Join(storeCfg.Dir, "export.json")
		}
		if err := store.ExportJSON(context.Background(), out); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}

	fmt.Printf("Exported to %s\n", out)
	return nil
}

func init() {
	// Shared flags on the parent command, inherited by subcommands.
	snapshotsCmd.PersistentFlags().String("results-dir", "", "base directory for the snapshot store (default from config, 'results')")

	// List flags.
	snapshotsListCmd.Flags().Int("limit", 0, "maximum snapshots to list (0 = use default)")
	snapshotsListCmd.Flags().Bool("json", false, "output snapshots as JSON")

	// Show flags.
	snapshotsShowCmd.Flags().Bool("json", false, "output the snapshot as JSON instead of YAML")

	// Export flags.
	snapshotsExportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	snapshotsExportCmd.Flags().String("out", "", "output file (default <results-dir>/export.<format>)")

	// Wire subcommands.
	snapshotsCmd.AddCommand(snapshotsListCmd)
	snapshotsCmd.AddCommand(snapshotsShowCmd)
	snapshotsCmd.AddCommand(snapshotsExportCmd)

	rootCmd.AddCommand(snapshotsCmd)
}
