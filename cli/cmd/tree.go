package cmd

import (
	"context"
	"fmt"

	"github.com/OdomarTrindade/btcdeb/lang"
	"github.com/OdomarTrindade/btcdeb/log"
)

// Tree parses each expression and prints its syntax tree in prefix
// notation, without evaluating anything.
type Tree struct {
	Expr []string `arg:"" help:"Expression(s) to parse" name:"expr" optional:""`
}

// Run executes the tree command.
func (t *Tree) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	exprs, err := expressions(ctx, t.Expr)
	if err != nil {
		return err
	}

	for _, expr := range exprs {
		node, err := lang.ParseString(ctx, expr, lang.WithLogger(log.Default()))
		if err != nil {
			return err
		}

		fmt.Println(node)
	}

	return nil
}
