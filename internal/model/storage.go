package model

import (
	"context"
	"io"
)

// Storage is an object store for user uploads.
type Storage interface {
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	// URL returns the public address of the object.
	URL(key string) string
}
