package memory

import (
	"context"
	"testing"
)

func TestSetGetRemove(t *testing.T) {
	ctx := context.Background()
	store := New()

	if _, ok, err := store.Get(ctx, "tasks"); ok || err != nil {
		t.Fatalf("missing key: ok=%v err=%v, want absent with no error", ok, err)
	}

	if err := store.Set(ctx, "tasks", "[]"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	value, ok, err := store.Get(ctx, "tasks")
	if err != nil || !ok || value != "[]" {
		t.Fatalf("Get = %q, %v, %v; want \"[]\", true, nil", value, ok, err)
	}

	if err := store.Set(ctx, "tasks", "[1]"); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}
	value, _, _ = store.Get(ctx, "tasks")
	if value != "[1]" {
		t.Fatalf("overwrite not visible, got %q", value)
	}

	if err := store.Remove(ctx, "tasks"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if _, ok, _ := store.Get(ctx, "tasks"); ok {
		t.Fatalf("key still present after Remove")
	}

	// Removing a missing key is not an error.
	if err := store.Remove(ctx, "missing"); err != nil {
		t.Fatalf("Remove of missing key failed: %v", err)
	}
}
