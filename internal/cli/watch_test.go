package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFileWatcher(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "graph.txt")
	other := filepath.Join(dir, "other.txt")
	if err := os.WriteFile(path, []byte("A B\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := newFileWatcher(path, 50*time.Millisecond)
	if err != nil {
		t.Fatalf("newFileWatcher() error: %v", err)
	}
	defer w.Stop()

	// Unrelated files in the same directory are ignored.
	if err := os.WriteFile(other, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case <-w.Changes:
		t.Fatal("change reported for an unrelated file")
	case <-time.After(150 * time.Millisecond):
	}

	// A burst of writes is coalesced.
	for i := 0; i < 5; i++ {
		if err := os.WriteFile(path, []byte("A B\nB C\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	select {
	case <-w.Changes:
	case <-time.After(2 * time.Second):
		t.Fatal("no change reported")
	}
	select {
	case <-w.Changes:
		t.Error("burst should produce a single change")
	case <-time.After(250 * time.Millisecond):
	}
}

func TestFileWatcherMissingDir(t *testing.T) {
	if _, err := newFileWatcher(filepath.Join(t.TempDir(), "nope", "graph.txt"), time.Millisecond); err == nil {
		t.Error("expected error for a missing directory")
	}
}
