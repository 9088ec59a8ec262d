package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"filmio-backend/internal/common"
)

// FSStore keeps photo files on the local filesystem under
// <root>/<hash>/original.<ext>.
type FSStore struct {
	root string
}

func NewFSStore(root string) *FSStore {
	return &FSStore{root: root}
}

func (s *FSStore) path(hash, ext string) string {
	return filepath.Join(s.root, hash, "original."+ext)
}

func (s *FSStore) Save(_ context.Context, hash, ext string, r io.Reader) error {
	dir := filepath.Join(s.root, hash)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating photo dir: %w", err)
	}

	// O_EXCL so a concurrent upload of the same content loses cleanly:
	// the bytes already on disk are identical.
	f, err := os.OpenFile(s.path(hash, ext), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if os.IsExist(err) {
			return nil
		}
		return fmt.Errorf("creating photo file: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(f.Name())
		return fmt.Errorf("writing photo file: %w", err)
	}
	return f.Close()
}

func (s *FSStore) Open(_ context.Context, hash, ext string) (io.ReadCloser, error) {
	f, err := os.Open(s.path(hash, ext))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("opening photo file: %w", err)
	}
	return f, nil
}
