package lang

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Tokens
	}{
		{
			name:  "assignment with binary",
			input: "a = 1 + 2",
			want: Tokens{
				{Kind: KindSymbol, Text: "a", Pos: 0},
				{Kind: KindEqual, Text: "=", Pos: 2},
				{Kind: KindNumber, Text: "1", Pos: 4},
				{Kind: KindPlus, Text: "+", Pos: 6},
				{Kind: KindNumber, Text: "2", Pos: 8},
			},
		},
		{
			name:  "hex literal",
			input: "0x1F",
			want: Tokens{
				{Kind: KindHex, Text: "1F", Pos: 2},
			},
		},
		{
			name:  "empty hex literal",
			input: "0x",
			want: Tokens{
				{Kind: KindHex, Text: "", Pos: 2},
			},
		},
		{
			name:  "bin literal",
			input: "0b1010",
			want: Tokens{
				{Kind: KindBin, Text: "1010", Pos: 2},
			},
		},
		{
			name:  "concat operator",
			input: "a||b",
			want: Tokens{
				{Kind: KindSymbol, Text: "a", Pos: 0},
				{Kind: KindConcat, Text: "||", Pos: 1},
				{Kind: KindSymbol, Text: "b", Pos: 3},
			},
		},
		{
			name:  "string literal keeps quotes",
			input: `"hello world"`,
			want: Tokens{
				{Kind: KindString, Text: `"hello world"`, Pos: 0},
			},
		},
		{
			name:  "call with arguments",
			input: "f(a, b)",
			want: Tokens{
				{Kind: KindSymbol, Text: "f", Pos: 0},
				{Kind: KindLParen, Text: "(", Pos: 1},
				{Kind: KindSymbol, Text: "a", Pos: 2},
				{Kind: KindComma, Text: ",", Pos: 3},
				{Kind: KindSymbol, Text: "b", Pos: 5},
				{Kind: KindRParen, Text: ")", Pos: 6},
			},
		},
		{
			name:  "bare hex continuation is one number",
			input: "1f",
			want: Tokens{
				{Kind: KindNumber, Text: "1f", Pos: 0},
			},
		},
		{
			name:  "digits continue a symbol run",
			input: "a5",
			want: Tokens{
				{Kind: KindSymbol, Text: "a5", Pos: 0},
			},
		},
		{
			name:  "nonzero prefix reads x as symbol",
			input: "10x",
			want: Tokens{
				{Kind: KindNumber, Text: "10", Pos: 0},
				{Kind: KindSymbol, Text: "x", Pos: 2},
			},
		},
		{
			name:  "restriction ends at operator",
			input: "0x12+3",
			want: Tokens{
				{Kind: KindHex, Text: "12", Pos: 2},
				{Kind: KindPlus, Text: "+", Pos: 4},
				{Kind: KindNumber, Text: "3", Pos: 5},
			},
		},
		{
			name:  "whitespace variety",
			input: "a\t=\n1\r",
			want: Tokens{
				{Kind: KindSymbol, Text: "a", Pos: 0},
				{Kind: KindEqual, Text: "=", Pos: 2},
				{Kind: KindNumber, Text: "1", Pos: 4},
			},
		},
		{
			name:  "underscore symbols",
			input: "_foo_bar",
			want: Tokens{
				{Kind: KindSymbol, Text: "_foo_bar", Pos: 0},
			},
		},
		{
			name:  "all operators",
			input: "a*b/c-d",
			want: Tokens{
				{Kind: KindSymbol, Text: "a", Pos: 0},
				{Kind: KindMul, Text: "*", Pos: 1},
				{Kind: KindSymbol, Text: "b", Pos: 2},
				{Kind: KindDiv, Text: "/", Pos: 3},
				{Kind: KindSymbol, Text: "c", Pos: 4},
				{Kind: KindMinus, Text: "-", Pos: 5},
				{Kind: KindSymbol, Text: "d", Pos: 6},
			},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "whitespace only",
			input: "   \t\n",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tokenize(tt.input)
			if err != nil {
				t.Fatalf("Tokenize(%q) error: %v", tt.input, err)
			}

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Tokenize(%q) mismatch (-want +got):\n%s",
					tt.input, diff)
			}
		})
	}
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "single pipe", input: "a|b"},
		{name: "trailing pipe", input: "a|"},
		{name: "bare bin prefix", input: "0b"},
		{name: "bin digit out of alphabet", input: "0b12"},
		{name: "hex digit out of alphabet", input: "0x1G"},
		{name: "unterminated string", input: `"hello`},
		{name: "unsupported character", input: "a & b"},
		{name: "unsupported unicode", input: "a = é"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, err := Tokenize(tt.input)
			if err == nil {
				t.Fatalf("Tokenize(%q) = %v, want error", tt.input, toks)
			}

			var lerr *LexError
			if !errors.As(err, &lerr) {
				t.Errorf("Tokenize(%q) error type %T, want *LexError",
					tt.input, err)
			}
		})
	}
}

func TestTokenizeConcatSpaced(t *testing.T) {
	// The marker resolves from adjacent pipes only; "a || b" still works
	// because whitespace never appears between them.
	got, err := Tokenize("a || b")
	if err != nil {
		t.Fatalf("Tokenize error: %v", err)
	}

	want := Tokens{
		{Kind: KindSymbol, Text: "a", Pos: 0},
		{Kind: KindConcat, Text: "||", Pos: 2},
		{Kind: KindSymbol, Text: "b", Pos: 5},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("token mismatch (-want +got):\n%s", diff)
	}
}

func TestLexErrorMessage(t *testing.T) {
	_, err := Tokenize("a | b")
	if err == nil {
		t.Fatal("expected error")
	}

	var lerr *LexError
	if !errors.As(err, &lerr) {
		t.Fatalf("error type %T, want *LexError", err)
	}

	if lerr.Char != '|' {
		t.Errorf("Char = %q, want '|'", lerr.Char)
	}

	if lerr.Pos != 2 {
		t.Errorf("Pos = %d, want 2", lerr.Pos)
	}
}
