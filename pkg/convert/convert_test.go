package convert

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleLibrary = `PCBNEW-LibModule-V1  Mon 01 Jan 2020
$INDEX
R_AXIAL
SMD_0805
$EndINDEX
$MODULE R_AXIAL
Po 0 0 0 15 5E8C1234 00000000 ~~
Cd Axial resistor
T0 0 -1000 600 600 0 120 N V 21 N "R***"
T1 0 1000 600 600 0 120 N V 21 N "R_AXIAL"
DS -2000 0 2000 0 120 21
$PAD
Sh "1" C 600 600 0 0 0
Dr 320 0 0
At STD N 00E0FFFF
Po -2000 0
$EndPAD
$PAD
Sh "2" C 600 600 0 0 0
Dr 320 0 0
At STD N 00E0FFFF
Po 2000 0
$EndPAD
$EndMODULE R_AXIAL
$MODULE SMD_0805
Po 0 0 0 15 5E8C1234 00000000 ~~
$PAD
Sh "1" R 500 600 0 0 0
At SMD N 00888000
Po -400 0
$EndPAD
$EndMODULE SMD_0805
$EndLIBRARY
`

func writeLibrary(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func TestConvertFile(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")
	lib := writeLibrary(t, dir, "sample.mod", sampleLibrary)

	conv := &Converter{OutDir: outDir}
	n, err := conv.ConvertFile(lib)
	if err != nil {
		t.Fatalf("ConvertFile() error: %v", err)
	}
	if n != 2 {
		t.Errorf("ConvertFile() = %d footprints, want 2", n)
	}

	for _, name := range []string{"R_AXIAL.kicad_mod", "SMD_0805.kicad_mod"} {
		data, err := os.ReadFile(filepath.Join(outDir, name))
		if err != nil {
			t.Fatalf("missing output %s: %v", name, err)
		}
		content := string(data)
		if !strings.HasPrefix(content, "(module ") {
			t.Errorf("%s does not start with a module clause", name)
		}
		if !strings.Contains(content, `"${REFERENCE}"`) {
			t.Errorf("%s lacks the reference placeholder", name)
		}
	}

	data, _ := os.ReadFile(filepath.Join(outDir, "R_AXIAL.kicad_mod"))
	if !strings.Contains(string(data), "(pad 1 thru_hole circle") {
		t.Error("through-hole pad missing from R_AXIAL")
	}
}

func TestConvertFileIdempotent(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")
	lib := writeLibrary(t, dir, "sample.mod", sampleLibrary)

	conv := &Converter{OutDir: outDir}
	if _, err := conv.ConvertFile(lib); err != nil {
		t.Fatalf("first run: %v", err)
	}
	first, err := os.ReadFile(filepath.Join(outDir, "R_AXIAL.kicad_mod"))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := conv.ConvertFile(lib); err != nil {
		t.Fatalf("second run: %v", err)
	}
	second, err := os.ReadFile(filepath.Join(outDir, "R_AXIAL.kicad_mod"))
	if err != nil {
		t.Fatal(err)
	}

	if string(first) != string(second) {
		t.Error("re-running the pipeline changed the output bytes")
	}
}

func TestConvertDir(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")
	writeLibrary(t, dir, "a.mod", sampleLibrary)
	writeLibrary(t, dir, "b.MOD", sampleLibrary) // extension match is case-insensitive
	writeLibrary(t, dir, "ignore.txt", "not a library")

	conv := &Converter{OutDir: outDir}
	n, err := conv.ConvertDir(dir)
	if err != nil {
		t.Fatalf("ConvertDir() error: %v", err)
	}
	if n != 4 {
		t.Errorf("ConvertDir() = %d footprints, want 4", n)
	}
}

func TestConvertMissingFile(t *testing.T) {
	conv := &Converter{OutDir: t.TempDir()}
	if _, err := conv.ConvertFile(filepath.Join(t.TempDir(), "nope.mod")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestConvertLatin1Description(t *testing.T) {
	// Legacy libraries are Windows-1252; a 0xB5 byte is the micro sign.
	lib := strings.Replace(sampleLibrary, "Axial resistor", "Axial resistor 1\xb5F", 1)

	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")
	path := writeLibrary(t, dir, "latin1.mod", lib)

	conv := &Converter{OutDir: outDir}
	if _, err := conv.ConvertFile(path); err != nil {
		t.Fatalf("ConvertFile() error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(outDir, "R_AXIAL.kicad_mod"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Axial resistor 1µF") {
		t.Error("Windows-1252 content was not decoded to UTF-8")
	}
}

func TestReadModules(t *testing.T) {
	dir := t.TempDir()
	path := writeLibrary(t, dir, "sample.mod", sampleLibrary)

	results, err := ReadModules(path)
	if err != nil {
		t.Fatalf("ReadModules() error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("ReadModules() = %d modules, want 2", len(results))
	}
	if results[0].Name != "R_AXIAL" || results[1].Name != "SMD_0805" {
		t.Errorf("module names = %q, %q", results[0].Name, results[1].Name)
	}
	if results[0].Extent.Empty() {
		t.Error("R_AXIAL extent must not be empty")
	}
	// DS spans -2000..2000 deci-mils: 10.16 mm wide.
	if w := results[0].Extent.Width(); w < 10.159 || w > 10.161 {
		t.Errorf("R_AXIAL extent width = %v, want ~10.16", w)
	}
}
