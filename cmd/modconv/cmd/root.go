package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "modconv",
	Short: "modconv - legacy footprint library converter",
	Long: `modconv converts legacy line-oriented footprint libraries (.mod) into
modern S-expression footprint files (.kicad_mod), one file per module.

Examples:
  modconv convert lib/connectors.mod -o converted   # Convert one library
  modconv convert lib/ -o converted                 # Convert a whole directory
  modconv info lib/connectors.mod                   # List modules in a library
  modconv verify converted/DIP-8.kicad_mod          # Check a generated file`,
	Version: "0.3.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
