package lang

import (
	"fmt"
	"strings"
)

// NodeKind enumerates the syntactic forms a Node can take.
type NodeKind int

const (
	NodeUndef NodeKind = iota
	NodeVariable
	NodeLiteral
	NodeAssign
	NodeList
	NodeCall
	NodeBinary
)

var nodeName = [...]string{
	"???",
	"variable",
	"literal",
	"assign",
	"list",
	"call",
	"binary",
}

func (k NodeKind) String() string {
	if k < 0 || int(k) >= len(nodeName) {
		return nodeName[NodeUndef]
	}

	return nodeName[k]
}

// Node is a single vertex of a syntax tree. Exactly one syntactic form is
// populated, selected by Kind; the remaining fields are zero.
type Node struct {
	Kind NodeKind

	// NodeVariable, NodeAssign, NodeCall
	Name string

	// NodeLiteral
	Text        string
	LitKind     Kind // KindSymbol, KindNumber, or KindString
	Restriction Kind // KindHex or KindBin when the literal was prefixed

	// NodeAssign
	Value *Node

	// NodeList, NodeCall (Args is always a NodeList)
	Items []*Node
	Args  *Node

	// NodeBinary
	Op          Kind
	Left, Right *Node
}

// NewVariable returns a node referencing the named variable.
func NewVariable(name string) *Node {
	return &Node{Kind: NodeVariable, Name: name}
}

// NewLiteral returns a node holding a literal value. String literals are
// stored without their surrounding quotes. Hex and bin literals are
// numbers whose digit alphabet is recorded as the node's restriction, so
// LitKind is always one of KindSymbol, KindNumber, or KindString.
func NewLiteral(kind Kind, text string) *Node {
	n := &Node{Kind: NodeLiteral, LitKind: kind, Text: text}

	switch kind {
	case KindString:
		n.Text = strings.Trim(text, `"`)

	case KindHex, KindBin:
		n.LitKind = KindNumber
		n.Restriction = kind
	}

	return n
}

// NewAssign returns a node binding the named variable to a value.
func NewAssign(name string, value *Node) *Node {
	return &Node{Kind: NodeAssign, Name: name, Value: value}
}

// NewList returns a node holding an ordered sequence of subexpressions.
func NewList(items []*Node) *Node {
	return &Node{Kind: NodeList, Items: items}
}

// NewCall returns a node applying the named function to an argument list.
// A nil args node denotes a call with no arguments.
func NewCall(name string, args *Node) *Node {
	if args == nil {
		args = NewList(nil)
	}

	return &Node{Kind: NodeCall, Name: name, Args: args}
}

// NewBinary returns a node applying a binary operator to two operands.
func NewBinary(op Kind, left, right *Node) *Node {
	return &Node{Kind: NodeBinary, Op: op, Left: left, Right: right}
}

// String renders the node as source-like text. The rendering is
// deterministic and parenthesizes binary operations explicitly, so two
// structurally equal trees always render identically.
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}

	switch n.Kind {
	case NodeVariable:
		return n.Name

	case NodeLiteral:
		return fmt.Sprintf("%s:%s", n.LitKind, n.Text)

	case NodeAssign:
		return fmt.Sprintf("%s = %s", n.Name, n.Value)

	case NodeList:
		items := make([]string, len(n.Items))
		for i, it := range n.Items {
			items[i] = it.String()
		}

		return "[" + strings.Join(items, ", ") + "]"

	case NodeCall:
		return fmt.Sprintf("%s(%s)", n.Name, n.Args)

	case NodeBinary:
		return fmt.Sprintf("(%s %s %s)", n.Op, n.Left, n.Right)
	}

	return nodeName[NodeUndef]
}
