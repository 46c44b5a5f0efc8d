package cmd

import (
	"context"
	"fmt"

	"github.com/OdomarTrindade/btcdeb/lang"
)

// Tokens prints the token stream produced by scanning each expression,
// one token per line, without parsing or evaluating anything.
type Tokens struct {
	Expr []string `arg:"" help:"Expression(s) to tokenize" name:"expr" optional:""`
}

// Run executes the tokens command.
func (t *Tokens) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	exprs, err := expressions(ctx, t.Expr)
	if err != nil {
		return err
	}

	for _, expr := range exprs {
		toks, err := lang.Tokenize(expr)
		if err != nil {
			return err
		}

		fmt.Println(toks)
	}

	return nil
}
