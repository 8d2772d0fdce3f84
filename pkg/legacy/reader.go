package legacy

import (
	"bufio"
	"io"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// NewLineScanner wraps a legacy library stream in a line scanner. Library
// files predate UTF-8 and use the Windows-1252 codepage; the scanner yields
// decoded text lines.
func NewLineScanner(r io.Reader) *bufio.Scanner {
	decoded := transform.NewReader(r, charmap.Windows1252.NewDecoder())
	sc := bufio.NewScanner(decoded)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return sc
}
