// Package lang implements a tiny expression language: a lexer producing a
// flat token stream, a backtracking recursive descent parser producing a
// syntax tree, and an evaluator that walks the tree against a
// host-supplied [Contract].
//
// The language itself has no values. Variables, literals, operators, and
// function calls only acquire meaning through the contract, which owns
// every [Ref] handle the evaluator threads between its methods. This
// keeps the core reusable: the same trees evaluate against byte-vector
// arithmetic, symbolic rewriting, or anything else a host cares to
// implement.
//
// # Grammar
//
// Informal EBNF:
//
//	Expr       → Binary | Assign | Call | Group | Variable | Literal
//	Binary     → Operand Op Expr
//	Operand    → Call | Group | Variable | Literal
//	Assign     → symbol '=' Expr
//	Call       → symbol '(' CSV? ')'
//	CSV        → Expr (',' Expr)* ','?
//	Group      → '(' Expr ')'
//	Literal    → number | string | hex | bin
//	Op         → '+' | '-' | '*' | '/' | '||'
//
// Operators share a single precedence level and associate to the right:
// "a - b - c" parses as "a - (b - c)". Grouping with parentheses is the
// only way to override this.
//
// # Literals
//
// A "0x" or "0b" prefix restricts the digits that may follow and is
// recorded on the literal node as its restriction, with the token text
// holding only the digits. "0x" alone is a valid empty hex literal;
// "0b" alone is a tokenization error. String literals are delimited by
// double quotes and have no escape sequences.
package lang
