package footprint

import "testing"

func TestFormatCoord(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{1, "1"},
		{0.254, "0.254"},
		{0.01524, "0.01524"},
		{-5.08, "-5.08"},
		{1.0000004, "1"},          // rounds within six fractional digits
		{0.1234567, "0.123457"},   // six digits, rounded
		{-0.0000001, "0"},         // negative zero is normalized
		{100 * 0.00254, "0.254"},  // deci-mil conversion stays clean
		{6 * 0.00254, "0.01524"},
	}
	for _, tt := range tests {
		if got := FormatCoord(tt.in); got != tt.want {
			t.Errorf("FormatCoord(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatAngle(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{90, "90"},
		{-90, "-90"},
		{90.1234, "90.123"},
		{0.0004, "0"},
		{270, "270"},
	}
	for _, tt := range tests {
		if got := FormatAngle(tt.in); got != tt.want {
			t.Errorf("FormatAngle(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEscape(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`plain`, `plain`},
		{`has "quotes"`, `has \"quotes\"`},
		{`back\slash`, `back\\slash`},
		{`both \"`, `both \\\"`},
	}
	for _, tt := range tests {
		if got := Escape(tt.in); got != tt.want {
			t.Errorf("Escape(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSymbolOrQuoted(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"DIP8", "DIP8"},
		{"", `""`},
		{"two words", `"two words"`},
		{`qu"ote`, `"qu\"ote"`},
	}
	for _, tt := range tests {
		if got := symbolOrQuoted(tt.in); got != tt.want {
			t.Errorf("symbolOrQuoted(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSafeFileName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"DIP8", "DIP8"},
		{"SOT-23", "SOT-23"},
		{`CONN/2x5`, "CONN_2x5"},
		{`a:b*c?"d"`, "a_b_c__d_"},
		{"", "NONAME"},
	}
	for _, tt := range tests {
		if got := SafeFileName(tt.in); got != tt.want {
			t.Errorf("SafeFileName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExtent(t *testing.T) {
	var e Extent
	if !e.Empty() {
		t.Error("new extent must be empty")
	}
	e.Expand(10, -5)
	e.Expand(-2, 8)
	if e.MinX != -2 || e.MaxX != 10 || e.MinY != -5 || e.MaxY != 8 {
		t.Errorf("extent = %+v", e)
	}
	if e.Width() != 12 || e.Height() != 13 {
		t.Errorf("Width/Height = %v/%v", e.Width(), e.Height())
	}
}
