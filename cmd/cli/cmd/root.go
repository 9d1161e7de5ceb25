// Package cmd provides the CLI commands for moverz.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"moverz/internal/config"
	"moverz/internal/logging"
)

var (
	cfgFile    string
	tariffFile string
	verbose    bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "moverz",
	Short: "Price moving quotes from the command line",
	Long: `moverz prices household moves with the same deterministic engine
the quote funnel uses: volume model, distance bands, seasonality, access
coefficients and the attribution breakdown.

Examples:
  moverz estimate --surface 60 --housing t2 --distance 120
  moverz estimate --surface 85 --housing house --density dense --date 2026-07-04
  moverz tariff validate ./tariff.hcl`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&tariffFile, "tariff", "", "tariff HCL file (default: pinned tariff)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(tariffCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("moverz version 1.0.0")
	},
}
