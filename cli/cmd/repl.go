package cmd

import (
	"context"
	"os"

	"github.com/OdomarTrindade/btcdeb/cli/cmd/repl"
	"github.com/OdomarTrindade/btcdeb/log"
)

// Repl starts the interactive evaluator.
//
// The session environment starts with variables preloaded from the
// top-level --vars file (if given) and the builtin functions. Input
// history persists in the runtime cache directory.
type Repl struct{}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	env, err := newEnv(ctx)
	if err != nil {
		return err
	}

	cacheDir := os.TempDir()

	if ktx := kongContextFrom(ctx); ktx != nil {
		if dir, ok := ktx.Model.Vars()[CacheIdentifier]; ok {
			cacheDir = dir
		}
	}

	return repl.Run(ctx, env, cacheDir, log.Default())
}
