package cmd

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/OdomarTrindade/btcdeb/host"
)

func TestWithSourceFilesEmpty(t *testing.T) {
	ctx := WithSourceFiles(context.Background(), nil)
	if reader := sourceFilesFrom(ctx); reader != nil {
		t.Error("WithSourceFiles(nil) should store nil reader")
	}

	ctx = WithSourceFiles(context.Background(), []string{})
	if reader := sourceFilesFrom(ctx); reader != nil {
		t.Error("WithSourceFiles([]) should store nil reader")
	}
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestWithSourceFilesSingleFile(t *testing.T) {
	path := writeTemp(t, "input.txt", "a = 1 + 2\n")

	ctx := WithSourceFiles(context.Background(), []string{path})

	reader := sourceFilesFrom(ctx)
	if reader == nil {
		t.Fatal("WithSourceFiles should store a reader for a valid file")
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("reading from source files: %v", err)
	}

	if string(data) != "a = 1 + 2\n" {
		t.Errorf("got %q, want %q", string(data), "a = 1 + 2\n")
	}
}

func TestWithSourceFilesDeduplicates(t *testing.T) {
	path := writeTemp(t, "input.txt", "x\n")

	// The same file three ways: plain, duplicated, and via a relative
	// traversal through its own directory.
	indirect := filepath.Join(filepath.Dir(path), ".", "input.txt")

	ctx := WithSourceFiles(
		context.Background(),
		[]string{path, path, indirect},
	)

	data, err := io.ReadAll(sourceFilesFrom(ctx))
	if err != nil {
		t.Fatalf("reading from source files: %v", err)
	}

	if string(data) != "x\n" {
		t.Errorf("got %q, want %q (file read once)", string(data), "x\n")
	}
}

func TestWithSourceFilesMissing(t *testing.T) {
	ctx := WithSourceFiles(
		context.Background(),
		[]string{filepath.Join(t.TempDir(), "nonexistent")},
	)

	if reader := sourceFilesFrom(ctx); reader != nil {
		t.Error("unopenable sources should yield nil reader")
	}
}

func TestExpressionsFromArgs(t *testing.T) {
	got, err := expressions(context.Background(), []string{"1 + 2", "", "x"})
	if err != nil {
		t.Fatalf("expressions: %v", err)
	}

	want := []string{"1 + 2", "x"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("expressions mismatch (-want +got):\n%s", diff)
	}
}

func TestExpressionsFromSource(t *testing.T) {
	path := writeTemp(t, "script.txt",
		"a = 0x01\n\n# comment\nb = a || a\n")

	ctx := WithSourceFiles(context.Background(), []string{path})

	got, err := expressions(ctx, []string{"len(b)"})
	if err != nil {
		t.Fatalf("expressions: %v", err)
	}

	want := []string{"a = 0x01", "b = a || a", "len(b)"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("expressions mismatch (-want +got):\n%s", diff)
	}
}

func TestExpressionsEmpty(t *testing.T) {
	_, err := expressions(context.Background(), nil)
	if !errors.Is(err, ErrNoExpression) {
		t.Errorf("error = %v, want %v", err, ErrNoExpression)
	}
}

func TestNewEnvWithVarsFile(t *testing.T) {
	path := writeTemp(t, "vars.yaml",
		"preimage: 0x0102\nsize: len(preimage)\n")

	ctx := WithVarsFile(context.Background(), path)

	env, err := newEnv(ctx)
	if err != nil {
		t.Fatalf("newEnv: %v", err)
	}

	value, err := env.Load("size")
	if err != nil {
		t.Fatalf("Load(size): %v", err)
	}

	data, ok := value.([]byte)
	if !ok {
		t.Fatalf("Load(size) = %T, want []byte", value)
	}

	if got := host.Format(data); got != "0x02" {
		t.Errorf("size = %s, want 0x02", got)
	}
}

func TestNewEnvWithoutVarsFile(t *testing.T) {
	env, err := newEnv(context.Background())
	if err != nil {
		t.Fatalf("newEnv: %v", err)
	}

	if _, err := env.Load("anything"); err == nil {
		t.Error("expected undefined variable error on fresh environment")
	}
}

func TestEvalOnePersistsAssignments(t *testing.T) {
	env, err := newEnv(context.Background())
	if err != nil {
		t.Fatalf("newEnv: %v", err)
	}

	ctx := context.Background()

	if err := evalOne(ctx, env, "a = 0x0a"); err != nil {
		t.Fatalf("evalOne assignment: %v", err)
	}

	value, err := env.Load("a")
	if err != nil {
		t.Fatalf("Load(a): %v", err)
	}

	if got := host.Format(value.([]byte)); got != "0x0a" {
		t.Errorf("a = %s, want 0x0a", got)
	}
}

func TestEvalOneError(t *testing.T) {
	env, err := newEnv(context.Background())
	if err != nil {
		t.Fatalf("newEnv: %v", err)
	}

	err = evalOne(context.Background(), env, "missing + 1")
	if !errors.Is(err, ErrEval) {
		t.Errorf("error = %v, want %v", err, ErrEval)
	}
}
