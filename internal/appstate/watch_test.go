package appstate

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchFileReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bg.png")
	if err := os.WriteFile(path, []byte("a"), 0o644); err != nil {
		t.Fatal(err)
	}
	other := filepath.Join(dir, "other.png")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	changed := make(chan struct{}, 4)
	if err := WatchFile(ctx, path, 100*time.Millisecond, func() { changed <- struct{}{} }); err != nil {
		t.Fatalf("WatchFile: %v", err)
	}

	if err := os.WriteFile(other, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case <-changed:
		t.Fatal("change reported for a different file")
	case <-time.After(400 * time.Millisecond):
	}

	for i := 0; i < 3; i++ {
		if err := os.WriteFile(path, []byte("bb"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	select {
	case <-changed:
	case <-time.After(3 * time.Second):
		t.Fatal("no change reported")
	}
	select {
	case <-changed:
		t.Fatal("burst was not coalesced")
	case <-time.After(400 * time.Millisecond):
	}
}

func TestWatchFileMissingDir(t *testing.T) {
	err := WatchFile(context.Background(), filepath.Join(t.TempDir(), "nope", "bg.png"), time.Millisecond, func() {})
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
}
