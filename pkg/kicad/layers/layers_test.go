package layers

import (
	"reflect"
	"testing"
)

func TestName(t *testing.T) {
	tests := []struct {
		field string
		want  string
	}{
		{"0", "B.Cu"},
		{"15", "F.Cu"},
		{"16", "B.Adhes"},
		{"17", "F.Adhes"},
		{"18", "B.Paste"},
		{"19", "F.Paste"},
		{"20", "B.SilkS"},
		{"21", "F.SilkS"},
		{"22", "B.Mask"},
		{"23", "F.Mask"},
		{"24", "Dwgs.User"},
		{"25", "Cmts.User"},
		{"26", "Eco1.User"},
		{"27", "Eco2.User"},
		{"28", "Edge.Cuts"},
		// Unknown and unparsable IDs fall back to the front silkscreen.
		{"7", FrontSilk},
		{"99", FrontSilk},
		{"abc", FrontSilk},
		{"", FrontSilk},
	}

	for _, tt := range tests {
		if got := Name(tt.field); got != tt.want {
			t.Errorf("Name(%q) = %q, want %q", tt.field, got, tt.want)
		}
	}
}

func TestNameOr(t *testing.T) {
	if got := NameOr("bogus", BackSilk); got != BackSilk {
		t.Errorf("NameOr fallback = %q, want %q", got, BackSilk)
	}
	if got := NameOr("21", BackSilk); got != FrontSilk {
		t.Errorf("NameOr(21) = %q, want %q", got, FrontSilk)
	}
}

func TestDecodeMask(t *testing.T) {
	tests := []struct {
		name  string
		field string
		mask  uint32
		want  []string
	}{
		{
			name:  "SMD mask",
			field: "00888000",
			mask:  0xFFFFFFFF,
			want:  []string{"F.Cu", "F.Paste", "F.Mask"},
		},
		{
			name:  "through-hole technical layers",
			field: "00E0FFFF",
			mask:  AllButOuterCopper,
			want:  []string{"F.SilkS", "B.Mask", "F.Mask"},
		},
		{
			name:  "inner copper bits are skipped",
			field: "0000FFFF",
			mask:  0xFFFFFFFF,
			want:  []string{"B.Cu", "F.Cu"},
		},
		{
			name:  "0x prefix accepted",
			field: "0x00888000",
			mask:  0xFFFFFFFF,
			want:  []string{"F.Cu", "F.Paste", "F.Mask"},
		},
		{
			name:  "unparsable mask",
			field: "zz",
			mask:  0xFFFFFFFF,
			want:  nil,
		},
		{
			name:  "empty field",
			field: "",
			mask:  0xFFFFFFFF,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecodeMask(tt.field, tt.mask)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DecodeMask(%q, %#x) = %v, want %v", tt.field, tt.mask, got, tt.want)
			}
		})
	}
}
