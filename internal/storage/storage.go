// Package storage holds the photo file backends. Files are content-addressed:
// one directory (or object prefix) per hash, containing original.<ext>.
package storage

import (
	"context"
	"io"
)

// BlobStore stores photo files keyed by content hash. Save must tolerate a
// key that already exists: two concurrent uploads of identical new content
// may both pass the metadata existence check, and the second write must be
// a harmless no-op or an overwrite with identical bytes.
type BlobStore interface {
	Save(ctx context.Context, hash, ext string, r io.Reader) error
	// Open returns common.ErrNotFound when the file is missing.
	Open(ctx context.Context, hash, ext string) (io.ReadCloser, error)
}
