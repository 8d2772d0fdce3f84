package footprint

import (
	"strconv"
	"strings"
)

// angleEpsilon is the magnitude below which a converted rotation is treated
// as zero and its angle token suppressed. Anything larger rounds to three
// decimals, so the threshold sits at half the last emitted digit.
const angleEpsilon = 0.0005

// FormatCoord renders a millimetre value with up to six fractional digits,
// an invariant decimal point and no trailing zeros.
func FormatCoord(v float64) string {
	s := strconv.FormatFloat(v, 'f', 6, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "" || s == "-0" {
		return "0"
	}
	return s
}

// FormatAngle renders a rotation in degrees rounded to three decimals, with
// trailing zeros trimmed.
func FormatAngle(deg float64) string {
	s := strconv.FormatFloat(deg, 'f', 3, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "" || s == "-0" {
		return "0"
	}
	return s
}

// Escape backslash-escapes the characters that would break a quoted string.
func Escape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}

func quoted(s string) string {
	return `"` + Escape(s) + `"`
}

// symbolOrQuoted renders a name bare when it is a safe symbol, quoted
// otherwise.
func symbolOrQuoted(s string) string {
	if s == "" || strings.ContainsAny(s, " \t\"()") {
		return quoted(s)
	}
	return s
}

// SafeFileName replaces characters that are invalid in file names on common
// filesystems with underscores.
func SafeFileName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			b.WriteByte('_')
		default:
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "NONAME"
	}
	return b.String()
}
