package log

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestMakeJSON(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf,
		WithFormat(FormatJSON),
		WithPretty(false),
		WithTimeLayout("none"))

	logger.Info("hello", slog.String("k", "v"))

	var rec map[string]any

	err := json.Unmarshal(buf.Bytes(), &rec)
	if err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}

	if rec["msg"] != "hello" {
		t.Errorf("msg = %v, want hello", rec["msg"])
	}

	if rec["k"] != "v" {
		t.Errorf("k = %v, want v", rec["k"])
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithPretty(false), WithLevel(LevelWarn))

	logger.Debug("dropped")
	logger.Info("dropped")
	logger.Warn("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("messages below level leaked:\n%s", out)
	}

	if !strings.Contains(out, "kept") {
		t.Errorf("message at level missing:\n%s", out)
	}
}

func TestTraceLevel(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf,
		WithPretty(false),
		WithLevel(LevelTrace),
		WithTimeLayout("none"))

	logger.TraceContext(context.Background(), "deep detail")

	if !strings.Contains(buf.String(), "TRACE") {
		t.Errorf("trace record not labeled TRACE:\n%s", buf.String())
	}
}

func TestZeroValueLogger(t *testing.T) {
	var logger Logger

	// Must not panic; all output discards.
	logger.Info("nowhere")
	logger.Error("nowhere")

	if logger.Level() != DefaultLevel {
		t.Errorf("Level = %v, want default", logger.Level())
	}
}

func TestWrapOverride(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithPretty(false), WithLevel(LevelError))

	loud := logger.Wrap(WithLevel(LevelDebug))

	loud.Debug("visible")

	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("wrapped logger dropped message:\n%s", buf.String())
	}

	// Original logger retains its level.
	if logger.Level() != LevelError {
		t.Errorf("original level = %v, want error", logger.Level())
	}
}

func TestWithAttrs(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithPretty(false)).
		With(slog.String("component", "lexer"))

	logger.Info("tokenizing")

	if !strings.Contains(buf.String(), "component=lexer") {
		t.Errorf("attached attribute missing:\n%s", buf.String())
	}
}

func TestWithAttrsPretty(t *testing.T) {
	var buf bytes.Buffer

	// Attributes attached with With must survive the pretty handlers.
	logger := Make(&buf, WithTimeLayout("none")).
		With(slog.String("component", "lexer"))

	logger.Info("tokenizing")

	if !strings.Contains(buf.String(), "lexer") {
		t.Errorf("attached attribute missing from pretty text:\n%s",
			buf.String())
	}

	buf.Reset()

	logger = Make(&buf, WithFormat(FormatJSON)).
		With(slog.String("component", "parser"))

	logger.Info("treeifying")

	if !strings.Contains(buf.String(), "parser") {
		t.Errorf("attached attribute missing from pretty JSON:\n%s",
			buf.String())
	}
}

func TestPrettyGroupQualifiesKeys(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithTimeLayout("none"))
	grouped := Logger{
		Logger: logger.WithGroup("repl"),
		config: logger.config,
	}

	grouped.Info("keypress", slog.String("key", "tab"))

	if !strings.Contains(buf.String(), "repl.key") {
		t.Errorf("group-qualified key missing:\n%s", buf.String())
	}
}

func TestPrettyTextOutput(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithTimeLayout("none"))

	logger.Info("styled", slog.Int("n", 7))

	out := buf.String()
	if !strings.Contains(out, "\033[") {
		t.Errorf("pretty output carries no ANSI codes:\n%q", out)
	}

	if !strings.Contains(out, "styled") {
		t.Errorf("message missing:\n%q", out)
	}
}

func TestDefaultConfig(t *testing.T) {
	var buf bytes.Buffer

	Config(WithOutput(&buf), WithPretty(false), WithLevel(LevelInfo))

	Info("through default")

	if !strings.Contains(buf.String(), "through default") {
		t.Errorf("default logger output missing:\n%s", buf.String())
	}
}
