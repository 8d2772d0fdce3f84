package cmd

import (
	"fmt"
	"os"

	"github.com/OpenTraceLab/modconv/pkg/convert"
	"github.com/spf13/cobra"
)

var outDir string

var convertCmd = &cobra.Command{
	Use:   "convert <library.mod | directory>",
	Short: "Convert legacy footprint libraries to .kicad_mod files",
	Long: `Converts one legacy library file, or every *.mod file in a directory,
into modern footprint files. Each module becomes one .kicad_mod file named
after the module, written to the output directory.

Legacy values are read as deci-mils unless the library declares millimetre
units. Malformed records are skipped; a footprint is always written.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().StringVarP(&outDir, "out", "o", "converted", "output directory for .kicad_mod files")
}

func runConvert(cmd *cobra.Command, args []string) error {
	source := args[0]

	info, err := os.Stat(source)
	if err != nil {
		return fmt.Errorf("cannot access %s: %w", source, err)
	}

	conv := &convert.Converter{OutDir: outDir, Verbose: verbose}

	var written int
	if info.IsDir() {
		written, err = conv.ConvertDir(source)
	} else {
		written, err = conv.ConvertFile(source)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Wrote %d footprints to %s\n", written, outDir)
	return nil
}
