package storage

import (
	"context"
	"errors"
	"io"
)

var (
	ErrFileNotFound = errors.New("stored file not found")
	ErrInvalidPath  = errors.New("invalid storage path")
)

// FileStorage keeps uploaded employee documents. Keys are slash separated and
// relative to the storage root.
type FileStorage interface {
	// Save writes r under key and returns the number of bytes written.
	Save(ctx context.Context, key string, r io.Reader) (int64, error)

	// Open returns the stored content. The caller closes it.
	Open(ctx context.Context, key string) (io.ReadCloser, error)

	// Remove deletes key. Missing keys are not an error.
	Remove(ctx context.Context, key string) error
}
