package lang

import (
	"context"
	"testing"
)

func TestNodeString(t *testing.T) {
	tests := []struct {
		name string
		node *Node
		want string
	}{
		{
			name: "nil node",
			node: nil,
			want: "<nil>",
		},
		{
			name: "variable",
			node: NewVariable("x"),
			want: "x",
		},
		{
			name: "string literal strips quotes",
			node: NewLiteral(KindString, `"hi"`),
			want: "string:hi",
		},
		{
			name: "hex literal renders as number",
			node: NewLiteral(KindHex, "FF"),
			want: "number:FF",
		},
		{
			name: "call with nil args has empty list",
			node: NewCall("f", nil),
			want: "f([])",
		},
		{
			name: "binary",
			node: NewBinary(KindConcat, NewVariable("a"), NewVariable("b")),
			want: "(concat a b)",
		},
		{
			name: "assign",
			node: NewAssign("x", NewLiteral(KindNumber, "7")),
			want: "x = number:7",
		},
		{
			name: "empty list",
			node: NewList(nil),
			want: "[]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.String(); got != tt.want {
				t.Errorf("String() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestLiteralRestriction(t *testing.T) {
	// Restricted literals are numbers; the base survives only as the
	// restriction annotation.
	n := NewLiteral(KindBin, "101")
	if n.LitKind != KindNumber {
		t.Errorf("LitKind = %s, want number", n.LitKind)
	}

	if n.Restriction != KindBin {
		t.Errorf("Restriction = %s, want bin", n.Restriction)
	}

	n = NewLiteral(KindHex, "1F")
	if n.LitKind != KindNumber {
		t.Errorf("LitKind = %s, want number", n.LitKind)
	}

	if n.Restriction != KindHex {
		t.Errorf("Restriction = %s, want hex", n.Restriction)
	}

	n = NewLiteral(KindNumber, "12")
	if n.Restriction != KindUndef {
		t.Errorf("Restriction = %s, want none", n.Restriction)
	}
}

// Structurally equal trees render identically, so the rendering doubles
// as an equality check for parse results.
func TestNodeStringDeterministic(t *testing.T) {
	a, err := ParseString(context.Background(), "a = f(1, 2) || x")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	b, err := ParseString(context.Background(), "a  =  f( 1 , 2 )||x")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	if a.String() != b.String() {
		t.Errorf("renderings differ: %s vs %s", a, b)
	}
}
