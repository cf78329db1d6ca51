// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the skid-engine CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/skid-engine/internal/secrets"
	"github.com/pdiddy/skid-engine/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// secretDefault returns the secret value for key if it exists, or fallback otherwise.
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if v, ok := loadedSecrets[key]; ok {
		return v
	}
	return ""
}

// rootCmd is the base command for the skid-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "skid-engine",
	Short: "Sizing calculations for gas letdown power-generation skids",
	Long: `skid-engine sizes expander power-generation skids installed at natural gas
pressure letdown stations. It runs the four-stage calculation pipeline (main
engine, utility power, economics, unit selection), evaluates the resulting
design, and can drive a process-simulation bridge for the input power.

Each operation is a subcommand: calc, sweep, simulate, serve, and snapshots.
Results can be persisted to a local store and served over HTTP.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./skid-engine.yaml or ~/.config/skid-engine/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("skid-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "skid-engine"))
		}
	}

	viper.SetEnvPrefix("SKID_ENGINE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig overlays config-file and environment values onto the defaults.
func loadConfig() types.Config {
	cfg := types.DefaultConfig()
	if v := viper.GetString("server.listen"); v != "" {
		cfg.Server.Listen = v
	}
	if v := viper.GetDuration("server.read_timeout"); v > 0 {
		cfg.Server.ReadTimeout = v
	}
	if v := viper.GetDuration("server.write_timeout"); v > 0 {
		cfg.Server.WriteTimeout = v
	}
	if v := viper.GetDuration("server.shutdown_timeout"); v > 0 {
		cfg.Server.ShutdownTimeout = v
	}
	if v := viper.GetString("simulator.base_url"); v != "" {
		cfg.Simulator.BaseURL = v
	}
	if v := viper.GetString("simulator.api_key"); v != "" {
		cfg.Simulator.APIKey = v
	}
	if v := viper.GetDuration("simulator.timeout"); v > 0 {
		cfg.Simulator.Timeout = v
	}
	if v := viper.GetInt("simulator.max_retries"); v > 0 {
		cfg.Simulator.MaxRetries = v
	}
	if v := viper.GetString("store.dir"); v != "" {
		cfg.Store.Dir = v
	}
	if v := viper.GetInt("store.max_list"); v > 0 {
		cfg.Store.MaxList = v
	}
	if v := viper.GetFloat64("design.dual_level_threshold"); v > 0 {
		cfg.Design.DualLevelThreshold = v
	}
	if v := viper.GetFloat64("design.capital_cost_per_kw"); v > 0 {
		cfg.Design.CapitalCostPerKW = v
	}
	cfg.Simulator.APIKey = secretDefault(secrets.SimulatorAPIKeyFile, cfg.Simulator.APIKey)
	return cfg
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
