package photos

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/wamique00786/wesalvator/pkg/e"

	"github.com/google/uuid"
)

var allowedExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".heic": true,
}

// Store keeps report photos on the local filesystem under dir.
type Store struct {
	dir     string
	maxSize int64
	logger  *slog.Logger
}

func New(dir string, maxSize int64, logger *slog.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, e.Wrap("photos.New", err)
	}
	return &Store{dir: dir, maxSize: maxSize, logger: logger}, nil
}

// Save writes the photo for a report and returns the path relative to the
// store root.
func (s *Store) Save(ctx context.Context, reportID uuid.UUID, filename string, r io.Reader) (string, error) {
	const op = "photos.Store.Save"

	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExt[ext] {
		return "", fmt.Errorf("%s: unsupported photo type %q: %w", op, ext, e.ErrInvalidInput)
	}
	if err := ctx.Err(); err != nil {
		return "", e.WrapError(ctx, op, err)
	}

	name := reportID.String() + ext
	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		s.logger.Error("create temp failed", slog.String("op", op), slog.Any("error", err))
		return "", fmt.Errorf("%s: %w", op, e.ErrInternal)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	src := r
	if s.maxSize > 0 {
		src = io.LimitReader(r, s.maxSize+1)
	}
	n, err := io.Copy(tmp, src)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		s.logger.Error("write photo failed", slog.String("op", op), slog.Any("error", err))
		return "", fmt.Errorf("%s: %w", op, e.ErrInternal)
	}
	if s.maxSize > 0 && n > s.maxSize {
		return "", fmt.Errorf("%s: photo larger than %d bytes: %w", op, s.maxSize, e.ErrInvalidInput)
	}
	if n == 0 {
		return "", fmt.Errorf("%s: empty photo: %w", op, e.ErrInvalidInput)
	}

	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, name)); err != nil {
		s.logger.Error("rename photo failed", slog.String("op", op), slog.Any("error", err))
		return "", fmt.Errorf("%s: %w", op, e.ErrInternal)
	}
	return name, nil
}

// Remove deletes a stored photo; a missing file is not an error.
func (s *Store) Remove(path string) error {
	err := os.Remove(filepath.Join(s.dir, filepath.Base(path)))
	if err != nil && !os.IsNotExist(err) {
		return e.Wrap("photos.Store.Remove", err)
	}
	return nil
}
