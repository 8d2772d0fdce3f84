package cmd

import (
	"fmt"
	"os"

	"github.com/OpenTraceLab/modconv/pkg/kicad/sexputil"
	"github.com/chewxy/sexp"
	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <footprint.kicad_mod>",
	Short: "Re-parse and summarize a generated footprint file",
	Long: `Parses a .kicad_mod file back as S-expressions and reports its clause
inventory. Fails when the file does not parse or is not a footprint.`,
	Args: cobra.ExactArgs(1),
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("cannot open %s: %w", args[0], err)
	}
	defer f.Close()

	sexps, err := sexp.Parse(f)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", args[0], err)
	}
	if len(sexps) == 0 {
		return fmt.Errorf("%s contains no s-expressions", args[0])
	}

	root := sexps[0]
	name, err := sexputil.NodeName(root)
	if err != nil {
		return fmt.Errorf("malformed root expression: %w", err)
	}
	if name != "module" {
		return fmt.Errorf("not a footprint file: expected 'module', got %q", name)
	}

	modName, err := sexputil.QuotedString(root, 1)
	if err != nil {
		modName = "?"
	}

	fmt.Printf("Footprint: %s\n", modName)
	if layerNode, ok := sexputil.FindNode(root, "layer"); ok {
		if layer, err := sexputil.QuotedString(layerNode, 1); err == nil {
			fmt.Printf("  Layer:   %s\n", layer)
		}
	}
	fmt.Printf("  Texts:   %d\n", len(sexputil.FindAllNodes(root, "fp_text")))
	fmt.Printf("  Lines:   %d\n", len(sexputil.FindAllNodes(root, "fp_line")))
	fmt.Printf("  Circles: %d\n", len(sexputil.FindAllNodes(root, "fp_circle")))
	fmt.Printf("  Arcs:    %d\n", len(sexputil.FindAllNodes(root, "fp_arc")))
	fmt.Printf("  Polys:   %d\n", len(sexputil.FindAllNodes(root, "fp_poly")))
	fmt.Printf("  Pads:    %d\n", len(sexputil.FindAllNodes(root, "pad")))
	fmt.Printf("  Models:  %d\n", len(sexputil.FindAllNodes(root, "model")))

	if verbose {
		for _, pad := range sexputil.FindAllNodes(root, "pad") {
			num, _ := sexputil.QuotedString(pad, 1)
			padType, _ := sexputil.GetString(pad, 2)
			fmt.Printf("    pad %-4s %s\n", num, padType)
		}
	}
	return nil
}
