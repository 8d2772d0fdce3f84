// Package layers maps legacy numeric board layer identifiers to the layer
// names used by current KiCad footprint files.
package layers

import (
	"strconv"
	"strings"
)

// Modern layer names referenced directly by the converter.
const (
	FrontCopper = "F.Cu"
	BackCopper  = "B.Cu"
	FrontSilk   = "F.SilkS"
	BackSilk    = "B.SilkS"
	FrontFab    = "F.Fab"
	AllCopper   = "*.Cu"
)

// table maps legacy layer IDs to modern names. Inner copper layers (1-14)
// have no stable modern equivalent in footprint context and are absent;
// the mask decoder skips bits without an entry.
var table = map[int]string{
	0:  BackCopper,
	15: FrontCopper,
	16: "B.Adhes",
	17: "F.Adhes",
	18: "B.Paste",
	19: "F.Paste",
	20: BackSilk,
	21: FrontSilk,
	22: "B.Mask",
	23: "F.Mask",
	24: "Dwgs.User",
	25: "Cmts.User",
	26: "Eco1.User",
	27: "Eco2.User",
	28: "Edge.Cuts",
}

// AllButOuterCopper masks off the outer-copper bit range of a legacy layer
// mask, leaving only the technical layers a through-hole pad contributes on
// top of *.Cu.
const AllButOuterCopper uint32 = 0xFFFF0000

// Lookup resolves a legacy layer field against the table.
func Lookup(field string) (string, bool) {
	id, err := strconv.Atoi(strings.TrimSpace(field))
	if err != nil {
		return "", false
	}
	name, ok := table[id]
	return name, ok
}

// Name resolves a legacy layer field, falling back to the front silkscreen
// for absent or unparsable identifiers.
func Name(field string) string {
	return NameOr(field, FrontSilk)
}

// NameOr resolves a legacy layer field with an explicit fallback. Text and
// pad contexts default to the back silkscreen.
func NameOr(field, fallback string) string {
	if name, ok := Lookup(field); ok {
		return name
	}
	return fallback
}

// DecodeMask expands a hexadecimal layer mask field (with or without an 0x
// prefix) into the ordered list of layer names for its set bits, scanning
// from bit 0 upward. Bits without a table entry are skipped, and only bits
// surviving the given mask are considered.
func DecodeMask(field string, mask uint32) []string {
	s := strings.TrimSpace(field)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if s == "" {
		return nil
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return nil
	}

	bits := uint32(v) & mask
	var names []string
	for bit := 0; bit < 32; bit++ {
		if bits&(1<<uint(bit)) == 0 {
			continue
		}
		if name, ok := table[bit]; ok {
			names = append(names, name)
		}
	}
	return names
}
