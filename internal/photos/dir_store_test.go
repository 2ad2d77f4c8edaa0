package photos

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDirStorePutGetDelete(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "photos")
	store := NewDirStore(dir)
	if err := store.Init(); err != nil {
		t.Fatalf("Init() unexpected error: %v", err)
	}

	ctx := context.Background()
	if err := store.Put(ctx, "day-1-1.jpg", []byte("jpeg-bytes"), "image/jpeg"); err != nil {
		t.Fatalf("Put() unexpected error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "day-1-1.jpg")); err != nil {
		t.Fatalf("expected photo file on disk: %v", err)
	}

	data, err := store.Get(ctx, "day-1-1.jpg")
	if err != nil {
		t.Fatalf("Get() unexpected error: %v", err)
	}
	if string(data) != "jpeg-bytes" {
		t.Fatalf("Get() = %q, want %q", data, "jpeg-bytes")
	}

	if err := store.Delete(ctx, "day-1-1.jpg"); err != nil {
		t.Fatalf("Delete() unexpected error: %v", err)
	}
	if err := store.Delete(ctx, "day-1-1.jpg"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
	if _, err := store.Get(ctx, "day-1-1.jpg"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
