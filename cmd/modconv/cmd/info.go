package cmd

import (
	"fmt"

	"github.com/OpenTraceLab/modconv/pkg/convert"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info <library.mod>",
	Short: "Show the modules contained in a legacy library",
	Long: `Parses a legacy library and lists its modules with their output file
names and bounding extents, without writing any files.`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	results, err := convert.ReadModules(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Library: %s (%d modules)\n\n", args[0], len(results))
	fmt.Printf("%-30s %-34s %s\n", "Module", "Output file", "Extent (mm)")
	for _, res := range results {
		extent := "empty"
		if !res.Extent.Empty() {
			extent = fmt.Sprintf("%.2f x %.2f", res.Extent.Width(), res.Extent.Height())
		}
		fmt.Printf("%-30s %-34s %s\n", res.Name, res.FileName, extent)
	}
	return nil
}
