package lang

import "log/slog"

// Ref is an opaque handle to a value owned by the evaluation host. The
// evaluator never inspects a Ref; it only threads handles between the
// host's contract methods.
type Ref any

// NoValue is the handle denoting the absence of a value. Assignments
// evaluate to it.
var NoValue Ref

// Contract is the surface a host supplies to give expressions meaning.
// Every semantic decision (what values are, how operators combine them,
// which functions exist) lives behind it.
type Contract interface {
	// Load resolves a variable name to a value handle.
	Load(name string) (Ref, error)

	// Save binds a variable name to a value handle.
	Save(name string, value Ref) error

	// Bin applies a binary operator (KindPlus, KindMinus, KindMul,
	// KindDiv, or KindConcat) to two operands.
	Bin(op Kind, lhs, rhs Ref) (Ref, error)

	// Unary applies a unary operator to a single operand. The parser
	// never produces unary nodes, but hosts constructing trees
	// directly may use them.
	Unary(op Kind, value Ref) (Ref, error)

	// Fcall applies the named function to already-evaluated arguments.
	Fcall(name string, args []Ref) (Ref, error)

	// Convert materializes a literal's text as a value handle. The kind
	// is KindSymbol, KindNumber, or KindString; restriction is KindHex
	// or KindBin when a number carried a digit-alphabet prefix, and
	// KindUndef otherwise.
	Convert(text string, kind, restriction Kind) (Ref, error)
}

// Eval evaluates the tree rooted at n against the host contract.
//
// Call arguments evaluate strictly left to right, and the first error
// anywhere in the tree aborts evaluation immediately. A bare list node
// cannot be evaluated directly; lists acquire meaning only as the
// argument vector of a call.
func (n *Node) Eval(ct Contract) (Ref, error) {
	if n == nil {
		return NoValue, ErrBadNode
	}

	switch n.Kind {
	case NodeVariable:
		return ct.Load(n.Name)

	case NodeLiteral:
		return ct.Convert(n.Text, n.LitKind, n.Restriction)

	case NodeAssign:
		value, err := n.Value.Eval(ct)
		if err != nil {
			return NoValue, err
		}

		err = ct.Save(n.Name, value)
		if err != nil {
			return NoValue, err
		}

		return NoValue, nil

	case NodeList:
		return NoValue, ErrListEval

	case NodeCall:
		args, err := evalItems(n.Args.Items, ct)
		if err != nil {
			return NoValue, err
		}

		return ct.Fcall(n.Name, args)

	case NodeBinary:
		lhs, err := n.Left.Eval(ct)
		if err != nil {
			return NoValue, err
		}

		rhs, err := n.Right.Eval(ct)
		if err != nil {
			return NoValue, err
		}

		return ct.Bin(n.Op, lhs, rhs)
	}

	return NoValue, ErrBadNode.With(slog.String("kind", n.Kind.String()))
}

func evalItems(items []*Node, ct Contract) ([]Ref, error) {
	args := make([]Ref, len(items))

	for i, item := range items {
		value, err := item.Eval(ct)
		if err != nil {
			return nil, err
		}

		args[i] = value
	}

	return args, nil
}
