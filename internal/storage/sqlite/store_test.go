package sqlite

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store, err := Open(filepath.Join(dir, "test.db"), logger)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Logf("store close failed: %v", err)
		}
	})
	return store
}

func TestOpenRejectsEmptyPath(t *testing.T) {
	if _, err := Open("", nil); err == nil {
		t.Fatalf("Open with empty path should fail")
	}
}

func TestBlobRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := setupTestStore(t)

	if _, ok, err := store.Get(ctx, "tasks"); ok || err != nil {
		t.Fatalf("missing key: ok=%v err=%v, want absent with no error", ok, err)
	}

	if err := store.Set(ctx, "tasks", `[{"id":"1"}]`); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	value, ok, err := store.Get(ctx, "tasks")
	if err != nil || !ok {
		t.Fatalf("Get failed: ok=%v err=%v", ok, err)
	}
	if value != `[{"id":"1"}]` {
		t.Fatalf("Get returned %q", value)
	}
}

func TestBlobOverwriteWholesale(t *testing.T) {
	ctx := context.Background()
	store := setupTestStore(t)

	if err := store.Set(ctx, "userProfile", `{"level":1}`); err != nil {
		t.Fatalf("first Set failed: %v", err)
	}
	if err := store.Set(ctx, "userProfile", `{"level":2}`); err != nil {
		t.Fatalf("second Set failed: %v", err)
	}

	value, _, err := store.Get(ctx, "userProfile")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if value != `{"level":2}` {
		t.Fatalf("expected last write to win, got %q", value)
	}
}

func TestBlobRemove(t *testing.T) {
	ctx := context.Background()
	store := setupTestStore(t)

	if err := store.Set(ctx, "missions", "[]"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := store.Remove(ctx, "missions"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if _, ok, _ := store.Get(ctx, "missions"); ok {
		t.Fatalf("key still present after Remove")
	}
	if err := store.Remove(ctx, "missions"); err != nil {
		t.Fatalf("Remove of missing key failed: %v", err)
	}
}

func TestMigrationsIdempotent(t *testing.T) {
	store := setupTestStore(t)
	if err := store.migrate(); err != nil {
		t.Fatalf("second migrate failed: %v", err)
	}
}
