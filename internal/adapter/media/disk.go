// Package media stores uploaded product images on local disk and hands out
// stable reference strings. Products persist references, never file paths,
// so the storage backend can change without touching catalog rows.
package media

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// DiskStore saves uploads under a single directory, one file per reference.
type DiskStore struct {
	dir     string
	maxSize int64
}

// NewDiskStore creates the upload directory if needed. maxSize bounds a
// single upload in bytes.
func NewDiskStore(dir string, maxSize int64) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create media dir: %w", err)
	}
	return &DiskStore{dir: dir, maxSize: maxSize}, nil
}

// Save writes the upload to disk and returns its reference. The reference
// embeds the sanitized extension of the original filename so content type
// survives without a sidecar.
func (s *DiskStore) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ref := "img_" + uuid.New().String() + sanitizeExt(filename)

	f, err := os.OpenFile(filepath.Join(s.dir, ref), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create media file: %w", err)
	}
	defer f.Close()

	n, err := io.Copy(f, io.LimitReader(r, s.maxSize+1))
	if err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("write media file: %w", err)
	}
	if n > s.maxSize {
		os.Remove(f.Name())
		return "", fmt.Errorf("upload exceeds %d bytes", s.maxSize)
	}

	return ref, nil
}

// Open returns the stored file for a reference.
func (s *DiskStore) Open(ctx context.Context, ref string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if ref != filepath.Base(ref) || strings.HasPrefix(ref, ".") {
		return nil, fmt.Errorf("invalid media reference %q", ref)
	}

	f, err := os.Open(filepath.Join(s.dir, ref))
	if err != nil {
		return nil, fmt.Errorf("open media file: %w", err)
	}
	return f, nil
}

// sanitizeExt keeps a short, purely alphanumeric extension from the original
// filename, or nothing.
func sanitizeExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" || len(ext) > 6 {
		return ""
	}
	for _, c := range ext[1:] {
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') {
			return ""
		}
	}
	return ext
}
