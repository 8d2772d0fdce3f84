package legacy

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// fieldLexer defines the lexical structure of a legacy library record line.
// Records are whitespace-separated positional fields; quoting is not lexically
// significant (quoted labels are re-joined and unquoted by the consumers).
var fieldLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `[ \t\r]+`},
	{Name: "Field", Pattern: `[^ \t\r]+`},
})

var fieldType = fieldLexer.Symbols()["Field"]

// Fields splits a raw record line into its non-empty whitespace-separated
// fields. Blank or whitespace-only lines yield nil. Fields never fails.
func Fields(line string) []string {
	lx, err := fieldLexer.LexString("", line)
	if err != nil {
		return nil
	}

	var fields []string
	for {
		tok, err := lx.Next()
		if err != nil || tok.EOF() {
			break
		}
		if tok.Type == fieldType {
			fields = append(fields, tok.Value)
		}
	}
	return fields
}
