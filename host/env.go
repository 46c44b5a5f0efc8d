package host

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"sync"

	"github.com/goccy/go-yaml"

	"github.com/OdomarTrindade/btcdeb/lang"
	"github.com/OdomarTrindade/btcdeb/log"
)

// Predefined errors (sentinel values).
var (
	ErrUndefinedVar = lang.NewError("undefined variable")
	ErrUnknownFunc  = lang.NewError("unknown function")
	ErrBadOperator  = lang.NewError("unsupported operator")
	ErrBadValue     = lang.NewError("value is not a byte vector")
	ErrLoadVars     = lang.NewError("failed to load variables")
)

// Func is a function callable from expressions. Arguments arrive fully
// evaluated, in source order.
type Func func(args [][]byte) ([]byte, error)

// Env is an evaluation environment implementing [lang.Contract] over byte
// vector values. It is safe for concurrent use.
type Env struct {
	mu     sync.RWMutex
	vars   map[string][]byte
	funcs  map[string]Func
	logger log.Logger
}

// Option configures an Env.
type Option func(*Env)

// WithLogger sets the logger used to trace contract calls.
func WithLogger(logger log.Logger) Option {
	return func(e *Env) { e.logger = logger }
}

// WithVar predefines a variable binding.
func WithVar(name string, value []byte) Option {
	return func(e *Env) { e.vars[name] = value }
}

// New returns an environment with the built-in functions registered.
func New(opts ...Option) *Env {
	e := &Env{
		vars:  make(map[string][]byte),
		funcs: make(map[string]Func),
	}

	for name, fn := range builtins {
		e.funcs[name] = fn
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Register makes fn callable from expressions under the given name,
// replacing any previous function with that name.
func (e *Env) Register(name string, fn Func) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.funcs[name] = fn
}

// Load implements [lang.Contract].
func (e *Env) Load(name string) (lang.Ref, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	value, ok := e.vars[name]
	if !ok {
		return lang.NoValue, ErrUndefinedVar.With(slog.String("name", name))
	}

	return value, nil
}

// Save implements [lang.Contract].
func (e *Env) Save(name string, value lang.Ref) error {
	data, err := vector(value)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.vars[name] = data

	return nil
}

// Bin implements [lang.Contract]. Concatenation joins the raw vectors;
// the arithmetic operators interpret them as unsigned big-endian integers.
func (e *Env) Bin(op lang.Kind, lhs, rhs lang.Ref) (lang.Ref, error) {
	a, err := vector(lhs)
	if err != nil {
		return lang.NoValue, err
	}

	b, err := vector(rhs)
	if err != nil {
		return lang.NoValue, err
	}

	if op == lang.KindConcat {
		out := make([]byte, 0, len(a)+len(b))
		out = append(out, a...)
		out = append(out, b...)

		return out, nil
	}

	return arith(op, a, b)
}

// Unary implements [lang.Contract]. Only negation is defined, and only
// for the zero vector, since values have no sign.
func (e *Env) Unary(op lang.Kind, value lang.Ref) (lang.Ref, error) {
	v, err := vector(value)
	if err != nil {
		return lang.NoValue, err
	}

	if op != lang.KindMinus {
		return lang.NoValue, ErrBadOperator.With(slog.String("op", op.String()))
	}

	return neg(v)
}

// Fcall implements [lang.Contract].
func (e *Env) Fcall(name string, args []lang.Ref) (lang.Ref, error) {
	e.mu.RLock()
	fn, ok := e.funcs[name]
	e.mu.RUnlock()

	if !ok {
		return lang.NoValue, ErrUnknownFunc.With(slog.String("name", name))
	}

	vecs := make([][]byte, len(args))

	for i, arg := range args {
		v, err := vector(arg)
		if err != nil {
			return lang.NoValue, err
		}

		vecs[i] = v
	}

	return fn(vecs)
}

// Convert implements [lang.Contract], materializing literal text as a
// byte vector.
func (e *Env) Convert(text string, kind, restriction lang.Kind) (lang.Ref, error) {
	return decode(text, kind, restriction)
}

// Names returns the defined variable and function names, sorted, for use
// by completion.
func (e *Env) Names() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	names := make([]string, 0, len(e.vars)+len(e.funcs))

	for name := range e.vars {
		names = append(names, name)
	}

	for name := range e.funcs {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Vars returns a snapshot of the variable bindings.
func (e *Env) Vars() map[string][]byte {
	e.mu.RLock()
	defer e.mu.RUnlock()

	vars := make(map[string][]byte, len(e.vars))

	for name, value := range e.vars {
		vars[name] = value
	}

	return vars
}

// LoadVars preloads variable bindings from a YAML file. Each mapping
// value is itself an expression evaluated against the environment, so
// entries may reference functions and previously defined variables.
func (e *Env) LoadVars(ctx context.Context, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return ErrLoadVars.Wrap(err)
	}
	defer f.Close()

	return e.LoadVarsReader(ctx, f)
}

// LoadVarsReader is LoadVars over an arbitrary reader.
func (e *Env) LoadVarsReader(ctx context.Context, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return ErrLoadVars.Wrap(err)
	}

	var doc yaml.MapSlice

	err = yaml.Unmarshal(data, &doc)
	if err != nil {
		return ErrLoadVars.Wrap(err)
	}

	// MapSlice preserves document order so later entries can reference
	// earlier ones.
	for _, item := range doc {
		name := fmt.Sprint(item.Key)
		src := fmt.Sprint(item.Value)

		node, err := lang.ParseString(ctx, src, lang.WithLogger(e.logger))
		if err != nil {
			return ErrLoadVars.Wrap(err).With(slog.String("name", name))
		}

		value, err := node.Eval(e)
		if err != nil {
			return ErrLoadVars.Wrap(err).With(slog.String("name", name))
		}

		data, err := vector(value)
		if err != nil {
			return ErrLoadVars.Wrap(err).With(slog.String("name", name))
		}

		e.mu.Lock()
		e.vars[name] = data
		e.mu.Unlock()

		e.logger.TraceContext(ctx, "loaded variable",
			slog.String("name", name),
			slog.String("value", Format(data)))
	}

	return nil
}

// vector unwraps a contract handle into a byte vector. NoValue unwraps to
// the empty vector.
func vector(value lang.Ref) ([]byte, error) {
	if value == lang.NoValue {
		return nil, nil
	}

	data, ok := value.([]byte)
	if !ok {
		return nil, ErrBadValue.With(slog.String("type", fmt.Sprintf("%T", value)))
	}

	return data, nil
}
