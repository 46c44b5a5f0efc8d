package lang

import "strings"

// Kind classifies a scanned span of source text.
type Kind int

const (
	// KindUndef marks an unclassifiable character or an absent annotation.
	KindUndef Kind = iota

	// KindSymbol is a variable or function name.
	KindSymbol

	// KindNumber is a run of digits (decimal, or restricted hex/binary).
	KindNumber

	// KindEqual is the assignment operator "=".
	KindEqual

	// KindLParen is an opening parenthesis.
	KindLParen

	// KindRParen is a closing parenthesis.
	KindRParen

	// KindString is a double-quoted string literal.
	KindString

	// KindMul is the multiplication operator "*".
	KindMul

	// KindPlus is the addition operator "+".
	KindPlus

	// KindMinus is the subtraction operator "-".
	KindMinus

	// KindDiv is the division operator "/".
	KindDiv

	// KindConcat is the concatenation operator "||".
	KindConcat

	// KindComma separates call arguments.
	KindComma

	// KindHex is a numeric literal restricted to the hexadecimal alphabet.
	KindHex

	// KindBin is a numeric literal restricted to the binary alphabet.
	KindBin

	// KindConsumable is a provisional marker held while awaiting a
	// following character that determines its final kind.
	KindConsumable

	// KindWhitespace closes the current run and is never emitted.
	KindWhitespace
)

var kindName = [...]string{
	"???",
	"symbol",
	"number",
	"equal",
	"lparen",
	"rparen",
	"string",
	"mul",
	"plus",
	"minus",
	"div",
	"concat",
	"comma",
	"hex",
	"bin",
	"consumable",
	"ws",
}

// String returns the lowercase name of the token kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindName) {
		return kindName[KindUndef]
	}

	return kindName[k]
}

// Operator reports whether k is a binary operator kind.
func (k Kind) Operator() bool {
	switch k {
	case KindPlus, KindMinus, KindMul, KindDiv, KindConcat:
		return true
	default:
		return false
	}
}

// Token is a classified, positioned span of source text.
//
// Structural tokens (parentheses, operators, comma, equal) carry their
// source character(s) as Text for diagnostics only. Hex and bin tokens
// carry only the digits following their "0x"/"0b" prefix.
type Token struct {
	Kind Kind
	Text string
	Pos  int // byte offset of the span start
}

// String returns a diagnostic representation of the token.
func (t Token) String() string {
	if t.Text == "" {
		return "[" + t.Kind.String() + "]"
	}

	return "[" + t.Kind.String() + " " + t.Text + "]"
}

// Tokens is the ordered sequence produced by one lexer run.
// It is consumed positionally by the parser and discarded afterwards.
type Tokens []Token

// String returns a diagnostic representation of the sequence, one token
// per line.
func (ts Tokens) String() string {
	lines := make([]string, len(ts))
	for i, t := range ts {
		lines[i] = t.String()
	}

	return strings.Join(lines, "\n")
}
