// Package cmd - tariff commands
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"moverz/core/tariff"
)

// tariffCmd groups tariff management commands
var tariffCmd = &cobra.Command{
	Use:   "tariff",
	Short: "Inspect and validate tariff files",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// tariffValidateCmd validates a tariff HCL file
var tariffValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a tariff HCL file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := tariff.LoadHCL(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Tariff %q is valid: %d distance bands, %d scale tiers\n",
			t.Version, len(t.Bands), len(t.Scale))
		return nil
	},
}

// tariffShowCmd prints the effective tariff version
var tariffShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective tariff version",
	RunE: func(cmd *cobra.Command, args []string) error {
		t := tariff.Default()
		if tariffFile != "" {
			loaded, err := tariff.LoadHCL(tariffFile)
			if err != nil {
				return err
			}
			t = loaded
		}
		fmt.Printf("version    %s\n", t.Version)
		fmt.Printf("socle      %.0f €\n", t.SocleEur)
		fmt.Printf("décote     %.0f %%\n", t.Decote*100)
		fmt.Printf("spread     ±%.0f %%\n", t.SpreadPct*100)
		fmt.Printf("bands      %d\n", len(t.Bands))
		return nil
	},
}

func init() {
	tariffCmd.AddCommand(tariffValidateCmd)
	tariffCmd.AddCommand(tariffShowCmd)
}
