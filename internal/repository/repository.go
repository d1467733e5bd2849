package repository

import (
	"context"
	"errors"
)

// ErrBlobNotFound is returned by Get when nothing is stored under the key.
var ErrBlobNotFound = errors.New("blob not found")

// BlobRepository stores opaque byte blobs under string keys
type BlobRepository interface {
	// Get returns the blob stored under key, or ErrBlobNotFound
	Get(ctx context.Context, key string) ([]byte, error)

	// Put creates or replaces the blob stored under key
	Put(ctx context.Context, key string, data []byte) error

	// Delete removes the blob; deleting a missing key is not an error
	Delete(ctx context.Context, key string) error
}
