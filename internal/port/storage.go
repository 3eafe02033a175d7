package port

import (
	"context"
	"io"
)

// ArchiveInput encapsulates the parameters needed to archive an uploaded
// demand file.
type ArchiveInput struct {
	Bucket      string
	Key         string
	Body        io.Reader
	ContentType string
	Size        int64
}

// ArchiveOutput contains the result of a successful archive write.
type ArchiveOutput struct {
	Location string
	ETag     string
}

// ObjectStorage abstracts the object store that keeps original uploads for
// later download.
type ObjectStorage interface {
	Archive(ctx context.Context, input ArchiveInput) (*ArchiveOutput, error)
	Delete(ctx context.Context, bucket, key string) error
	GetPresignedURL(ctx context.Context, bucket, key string, expirySeconds int64) (string, error)
}
