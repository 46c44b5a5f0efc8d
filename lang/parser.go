package lang

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/OdomarTrindade/btcdeb/log"
)

// Option configures parsing behavior.
type Option func(*parser)

// WithLogger sets the logger used to trace parsing.
func WithLogger(logger log.Logger) Option {
	return func(p *parser) { p.logger = logger }
}

// ParseReader tokenizes and parses an expression read from r.
func ParseReader(
	ctx context.Context,
	r io.Reader,
	opts ...Option,
) (*Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, ErrReadInput.Wrap(err)
	}

	return ParseString(ctx, string(data), opts...)
}

// ParseString tokenizes and parses an expression held in a string.
// Lexical and syntax errors are returned carrying the source text so
// their messages can point into it.
func ParseString(ctx context.Context, s string, opts ...Option) (*Node, error) {
	p := new(parser)
	for _, opt := range opts {
		opt(p)
	}

	toks, err := Tokenize(s)
	if err != nil {
		return nil, err
	}

	p.logger.TraceContext(ctx, "tokenized input",
		slog.Int("tokens", len(toks)))

	node, err := Treeify(toks)
	if err != nil {
		var serr *SyntaxError
		if errors.As(err, &serr) {
			serr.Source = s
		}

		return nil, err
	}

	p.logger.TraceContext(ctx, "parse complete",
		slog.String("tree", node.String()))

	return node, nil
}

type parser struct {
	logger log.Logger
}

// Treeify parses a token sequence into a syntax tree. The entire sequence
// must reduce to a single expression; an empty sequence, an unparseable
// prefix, and leftover trailing tokens are all syntax errors.
func Treeify(toks Tokens) (*Node, error) {
	if len(toks) == 0 {
		return nil, &SyntaxError{}
	}

	node, next := parseExpr(toks, 0, true, true)
	if node == nil {
		return nil, &SyntaxError{Token: &toks[0]}
	}

	if next != len(toks) {
		return nil, &SyntaxError{Token: &toks[next]}
	}

	return node, nil
}

// Each production has the shape rule(toks, pos) (*Node, int): on success
// it returns the subtree and the position one past its final token, and
// on failure it returns nil with pos unchanged so the caller can try the
// next alternative.

// parseExpr tries each production in a fixed order. Binary operations and
// assignments are only legal at positions the caller permits, which is
// what keeps an operator's left operand from swallowing the operator.
func parseExpr(toks Tokens, pos int, allowBinary, allowAssign bool) (*Node, int) {
	if allowBinary {
		if n, next := parseBinary(toks, pos); n != nil {
			return n, next
		}
	}

	if allowAssign {
		if n, next := parseAssign(toks, pos); n != nil {
			return n, next
		}
	}

	if n, next := parseCall(toks, pos); n != nil {
		return n, next
	}

	if n, next := parseParenthesized(toks, pos); n != nil {
		return n, next
	}

	if n, next := parseVariable(toks, pos); n != nil {
		return n, next
	}

	if n, next := parseRestricted(toks, pos); n != nil {
		return n, next
	}

	return parseLiteral(toks, pos)
}

// parseBinary = expr(no binary, no assign) operator expr(no assign).
// The recursion into the right operand makes every operator
// right-associative: "a - b - c" parses as "a - (b - c)".
func parseBinary(toks Tokens, pos int) (*Node, int) {
	lhs, next := parseExpr(toks, pos, false, false)
	if lhs == nil {
		return nil, pos
	}

	if next >= len(toks) || !toks[next].Kind.Operator() {
		return nil, pos
	}

	op := toks[next].Kind

	rhs, next := parseExpr(toks, next+1, true, false)
	if rhs == nil {
		return nil, pos
	}

	return NewBinary(op, lhs, rhs), next
}

// parseAssign = symbol "=" expr(no assign).
func parseAssign(toks Tokens, pos int) (*Node, int) {
	if pos+1 >= len(toks) ||
		toks[pos].Kind != KindSymbol || toks[pos+1].Kind != KindEqual {
		return nil, pos
	}

	value, next := parseExpr(toks, pos+2, true, false)
	if value == nil {
		return nil, pos
	}

	return NewAssign(toks[pos].Text, value), next
}

// parseCall = symbol "(" csv? ")". A missing argument list yields a call
// with an empty list.
func parseCall(toks Tokens, pos int) (*Node, int) {
	if pos+1 >= len(toks) ||
		toks[pos].Kind != KindSymbol || toks[pos+1].Kind != KindLParen {
		return nil, pos
	}

	args, next := parseCSV(toks, pos+2)

	if next >= len(toks) || toks[next].Kind != KindRParen {
		return nil, pos
	}

	return NewCall(toks[pos].Text, args), next + 1
}

// parseCSV = expr ("," expr)* ","?. Returns nil for zero items.
func parseCSV(toks Tokens, pos int) (*Node, int) {
	var items []*Node

	for {
		item, next := parseExpr(toks, pos, true, false)
		if item == nil {
			break
		}

		items = append(items, item)
		pos = next

		if pos >= len(toks) || toks[pos].Kind != KindComma {
			break
		}

		pos++
	}

	if items == nil {
		return nil, pos
	}

	return NewList(items), pos
}

// parseParenthesized = "(" expr ")". Grouping leaves no trace in the
// tree; the inner node is returned directly.
func parseParenthesized(toks Tokens, pos int) (*Node, int) {
	if pos >= len(toks) || toks[pos].Kind != KindLParen {
		return nil, pos
	}

	inner, next := parseExpr(toks, pos+1, true, false)
	if inner == nil {
		return nil, pos
	}

	if next >= len(toks) || toks[next].Kind != KindRParen {
		return nil, pos
	}

	return inner, next + 1
}

// parseVariable = symbol.
func parseVariable(toks Tokens, pos int) (*Node, int) {
	if pos >= len(toks) || toks[pos].Kind != KindSymbol {
		return nil, pos
	}

	return NewVariable(toks[pos].Text), pos + 1
}

// parseRestricted = hex | bin. The literal's text is its digits; the
// prefix survives as the node's restriction.
func parseRestricted(toks Tokens, pos int) (*Node, int) {
	if pos >= len(toks) ||
		(toks[pos].Kind != KindHex && toks[pos].Kind != KindBin) {
		return nil, pos
	}

	return NewLiteral(toks[pos].Kind, toks[pos].Text), pos + 1
}

// parseLiteral = number | string.
func parseLiteral(toks Tokens, pos int) (*Node, int) {
	if pos >= len(toks) ||
		(toks[pos].Kind != KindNumber && toks[pos].Kind != KindString) {
		return nil, pos
	}

	return NewLiteral(toks[pos].Kind, toks[pos].Text), pos + 1
}
