package storage

import (
	"context"
	"errors"
	"io"
)

var (
	// ErrBucketNotFound means the bucket itself is missing: an
	// operational problem, not a per-object one.
	ErrBucketNotFound = errors.New("storage: bucket not found")
	// ErrObjectExists is returned on upload when overwrite is disabled
	// and the path is already taken.
	ErrObjectExists = errors.New("storage: object already exists")
)

type Object struct {
	Name        string `json:"name"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
}

type UploadOptions struct {
	ContentType string
	Overwrite   bool
}

// Store is the blob backend work-order media lives in. Objects are
// addressed as bucket + slash-separated path.
type Store interface {
	Upload(ctx context.Context, bucket, path string, r io.Reader, opts UploadOptions) error
	List(ctx context.Context, bucket, prefix string) ([]Object, error)
	PublicURL(bucket, path string) string
}
