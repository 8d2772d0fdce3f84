package legacy

import (
	"reflect"
	"testing"
)

func TestFields(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "simple record",
			input: "DS 0 0 100 0 6 15",
			want:  []string{"DS", "0", "0", "100", "0", "6", "15"},
		},
		{
			name:  "repeated separators are collapsed",
			input: "Po   0\t0  0 15",
			want:  []string{"Po", "0", "0", "0", "15"},
		},
		{
			name:  "leading and trailing whitespace",
			input: "  $MODULE DIP8  ",
			want:  []string{"$MODULE", "DIP8"},
		},
		{
			name:  "quoted label stays one field without inner spaces",
			input: `T0 0 0 600 600 0 120 N V 21 N "U***"`,
			want:  []string{"T0", "0", "0", "600", "600", "0", "120", "N", "V", "21", "N", `"U***"`},
		},
		{
			name:  "quoted label with spaces splits into fields",
			input: `Cd "8 lead DIP"`,
			want:  []string{"Cd", `"8`, "lead", `DIP"`},
		},
		{
			name:  "carriage return is stripped",
			input: "Sc 0\r",
			want:  []string{"Sc", "0"},
		},
		{
			name:  "blank line",
			input: "",
			want:  nil,
		},
		{
			name:  "whitespace only",
			input: " \t ",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fields(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Fields(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
