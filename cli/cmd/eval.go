package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/OdomarTrindade/btcdeb/host"
	"github.com/OdomarTrindade/btcdeb/lang"
	"github.com/OdomarTrindade/btcdeb/log"
)

// Eval evaluates expressions and prints their results.
//
// Expressions come from positional arguments and from the source files
// given with the top-level --source flag, one expression per line.
// Assignments persist across expressions, so a file can build up bindings
// that later lines reference.
type Eval struct {
	Expr []string `arg:"" help:"Expression(s) to evaluate" name:"expr" optional:""`
}

// Run executes the eval command.
func (e *Eval) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	env, err := newEnv(ctx)
	if err != nil {
		return err
	}

	exprs, err := expressions(ctx, e.Expr)
	if err != nil {
		return err
	}

	for _, expr := range exprs {
		if err := evalOne(ctx, env, expr); err != nil {
			return err
		}
	}

	return nil
}

func evalOne(ctx context.Context, env *host.Env, expr string) error {
	node, err := lang.ParseString(ctx, expr, lang.WithLogger(log.Default()))
	if err != nil {
		return err
	}

	value, err := node.Eval(env)
	if err != nil {
		return ErrEval.
			With(slog.String("expr", expr)).
			Wrap(err)
	}

	if value == lang.NoValue {
		return nil
	}

	data, ok := value.([]byte)
	if !ok {
		fmt.Println(value)

		return nil
	}

	fmt.Println(host.Format(data))

	return nil
}
