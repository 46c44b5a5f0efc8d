package repl

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestHistoryWriteAndLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), baseHistory)

	h := NewHistory(path)
	for _, entry := range []string{"a = 1", "b = a + 1", "rev(b)"} {
		if _, err := h.Write(entry); err != nil {
			t.Fatalf("Write(%q): %v", entry, err)
		}
	}

	if h.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", h.Len())
	}

	// Fresh load from disk must reproduce the same entries.
	reloaded := NewHistory(path)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load(): %v", err)
	}

	want := []string{"a = 1", "b = a + 1", "rev(b)"}
	if diff := cmp.Diff(want, reloaded.Entries()); diff != "" {
		t.Errorf("Entries() mismatch (-want +got):\n%s", diff)
	}
}

func TestHistoryLoadMissingFile(t *testing.T) {
	t.Parallel()

	h := NewHistory(filepath.Join(t.TempDir(), "nonexistent", baseHistory))
	if err := h.Load(); err != nil {
		t.Fatalf("Load() on missing file: %v", err)
	}

	if h.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", h.Len())
	}
}

func TestHistoryDeduplicate(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), baseHistory)

	h := NewHistory(path)
	for _, entry := range []string{"a", "b", "a", "a"} {
		if _, err := h.Write(entry); err != nil {
			t.Fatalf("Write(%q): %v", entry, err)
		}
	}

	// Consecutive duplicates collapse and earlier occurrences move to the
	// most recent position.
	want := []string{"b", "a"}
	if diff := cmp.Diff(want, h.Entries()); diff != "" {
		t.Errorf("Entries() mismatch (-want +got):\n%s", diff)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile(): %v", err)
	}

	got := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("file contents mismatch (-want +got):\n%s", diff)
	}
}

func TestHistoryWriteBlank(t *testing.T) {
	t.Parallel()

	h := NewHistory(filepath.Join(t.TempDir(), baseHistory))
	if _, err := h.Write("   "); err != nil {
		t.Fatalf("Write blank: %v", err)
	}

	if h.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", h.Len())
	}
}

func TestHistoryGetLineOutOfBounds(t *testing.T) {
	t.Parallel()

	h := NewHistory(filepath.Join(t.TempDir(), baseHistory))
	if _, _ = h.Write("only"); h.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", h.Len())
	}

	if _, err := h.GetLine(1); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("GetLine(1) error = %v, want %v", err, ErrOutOfBounds)
	}

	if line, err := h.GetLine(0); err != nil || line != "only" {
		t.Errorf("GetLine(0) = (%q, %v), want (%q, nil)", line, err, "only")
	}
}
