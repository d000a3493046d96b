package photos

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/wamique00786/wesalvator/pkg/e"
)

func newStore(t *testing.T, max int64) *Store {
	t.Helper()
	s, err := New(t.TempDir(), max, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestStore_Save_OK(t *testing.T) {
	t.Parallel()
	s := newStore(t, 1024)
	id := uuid.New()

	path, err := s.Save(context.Background(), id, "Dog.JPG", strings.NewReader("jpegbytes"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if path != id.String()+".jpg" {
		t.Fatalf("unexpected path %q", path)
	}
	data, err := os.ReadFile(filepath.Join(s.dir, path))
	if err != nil || string(data) != "jpegbytes" {
		t.Fatalf("unexpected file content %q err=%v", data, err)
	}

	if err := s.Remove(path); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if err := s.Remove(path); err != nil {
		t.Fatalf("Remove missing: %v", err)
	}
}

func TestStore_Save_RejectsExtension(t *testing.T) {
	t.Parallel()
	s := newStore(t, 1024)

	_, err := s.Save(context.Background(), uuid.New(), "payload.exe", strings.NewReader("x"))
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestStore_Save_RejectsOversize(t *testing.T) {
	t.Parallel()
	s := newStore(t, 4)

	_, err := s.Save(context.Background(), uuid.New(), "a.png", strings.NewReader("12345"))
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	entries, _ := os.ReadDir(s.dir)
	if len(entries) != 0 {
		t.Fatalf("expected no leftovers, got %d", len(entries))
	}
}
