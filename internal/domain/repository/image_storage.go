package repository

import (
	"context"
	"io"
)

// ImageStorage uploads user media to a storage bucket and hands back a
// public URL to persist on the owning row.
type ImageStorage interface {
	// Upload stores the object and returns its public URL.
	Upload(ctx context.Context, bucket, name string, data io.Reader, contentType string) (string, error)

	// Remove deletes an object from a bucket.
	Remove(ctx context.Context, bucket, name string) error
}
