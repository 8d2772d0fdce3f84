// Package convert drives the legacy-library to footprint pipeline: it reads
// legacy library files, streams their lines into the block tree and writes
// one .kicad_mod file per completed module.
package convert

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/OpenTraceLab/modconv/pkg/kicad/footprint"
	"github.com/OpenTraceLab/modconv/pkg/legacy"
)

// LegacyExt is the file extension of legacy footprint libraries.
const LegacyExt = ".mod"

// Converter writes converted footprints into OutDir, creating it on demand.
type Converter struct {
	OutDir  string
	Verbose bool
}

// ConvertFile converts every module in one legacy library file and returns
// the number of footprints written. Modules that fail to generate are
// reported and skipped; the rest of the file is still converted.
func (c *Converter) ConvertFile(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	if err := os.MkdirAll(c.OutDir, 0o755); err != nil {
		return 0, fmt.Errorf("failed to create output directory: %w", err)
	}

	written := 0
	builder := legacy.NewTreeBuilder()
	sc := legacy.NewLineScanner(f)
	for sc.Scan() {
		mod := builder.Add(sc.Text())
		if mod == nil {
			continue
		}

		res, err := footprint.Generate(mod, legacy.ScaleFor(mod))
		if err != nil {
			fmt.Fprintf(os.Stderr, "skipping module in %s: %v\n", path, err)
			continue
		}

		out := filepath.Join(c.OutDir, res.FileName)
		if err := os.WriteFile(out, []byte(res.Content), 0o644); err != nil {
			return written, fmt.Errorf("failed to write %s: %w", out, err)
		}
		written++
		if c.Verbose {
			fmt.Printf("  %s -> %s\n", res.Name, res.FileName)
		}
	}
	if err := sc.Err(); err != nil {
		return written, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return written, nil
}

// ConvertDir converts every legacy library in a directory. A file that fails
// is reported and skipped; processing continues with the remaining files.
func (c *Converter) ConvertDir(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	total := 0
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), LegacyExt) {
			continue
		}
		path := filepath.Join(dir, e.Name())
		if c.Verbose {
			fmt.Printf("Converting %s\n", path)
		}
		n, err := c.ConvertFile(path)
		total += n
		if err != nil {
			fmt.Fprintf(os.Stderr, "skipping %s: %v\n", path, err)
		}
	}
	return total, nil
}

// ReadModules parses a legacy library without writing output, returning the
// generated footprints in document order. Used for inspection.
func ReadModules(path string) ([]*footprint.Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	var results []*footprint.Result
	builder := legacy.NewTreeBuilder()
	sc := legacy.NewLineScanner(f)
	for sc.Scan() {
		mod := builder.Add(sc.Text())
		if mod == nil {
			continue
		}
		res, err := footprint.Generate(mod, legacy.ScaleFor(mod))
		if err != nil {
			continue
		}
		results = append(results, res)
	}
	if err := sc.Err(); err != nil {
		return results, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return results, nil
}
