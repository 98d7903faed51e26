package store

import (
	"context"
	"errors"
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	ctx := context.Background()

	if _, err := fs.Get(ctx, "sf_user"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing document, got %v", err)
	}

	doc := []byte(`{"id":"u-1"}`)
	if err := fs.Put(ctx, "sf_user", doc); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, err := fs.Get(ctx, "sf_user")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != string(doc) {
		t.Errorf("expected %s, got %s", doc, got)
	}
}

func TestFileStoreOverwrite(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	ctx := context.Background()

	if err := fs.Put(ctx, "sf_sessions", []byte(`[]`)); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := fs.Put(ctx, "sf_sessions", []byte(`[{"id":"s-1"}]`)); err != nil {
		t.Fatalf("Put overwrite: %v", err)
	}

	got, err := fs.Get(ctx, "sf_sessions")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != `[{"id":"s-1"}]` {
		t.Errorf("last full-snapshot write should win, got %s", got)
	}
}
