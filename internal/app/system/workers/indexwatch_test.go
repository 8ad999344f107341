package workers

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
)

func startWatcher(t *testing.T, dir string) <-chan struct{} {
	t.Helper()
	calls := make(chan struct{}, 8)
	w, err := NewIndexWatcher(dir, []string{"materials-index.json"}, func(context.Context) {
		calls <- struct{}{}
	}, zap.NewNop(), 100*time.Millisecond)
	if err != nil {
		t.Fatalf("NewIndexWatcher: %v", err)
	}
	w.Start()
	t.Cleanup(w.Stop)
	return calls
}

func TestIndexWatcher_ReloadsOnIndexChange(t *testing.T) {
	dir := t.TempDir()
	calls := startWatcher(t, dir)

	path := filepath.Join(dir, "materials-index.json")
	for i := 0; i < 3; i++ {
		if err := os.WriteFile(path, []byte(`{"entries":[]}`), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	select {
	case <-calls:
	case <-time.After(3 * time.Second):
		t.Fatal("onChange was not called")
	}

	// The burst above is coalesced into one reload.
	select {
	case <-calls:
		t.Error("expected a single reload for one burst")
	case <-time.After(400 * time.Millisecond):
	}
}

func TestIndexWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	calls := startWatcher(t, dir)

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-calls:
		t.Error("unrelated file triggered a reload")
	case <-time.After(400 * time.Millisecond):
	}
}

func TestIndexWatcher_MissingDir(t *testing.T) {
	_, err := NewIndexWatcher(filepath.Join(t.TempDir(), "nope"), nil, func(context.Context) {}, zap.NewNop(), 0)
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestIndexWatcher_StopTwice(t *testing.T) {
	w, err := NewIndexWatcher(t.TempDir(), nil, func(context.Context) {}, zap.NewNop(), 0)
	if err != nil {
		t.Fatal(err)
	}
	w.Start()
	w.Stop()
	w.Stop()
}
