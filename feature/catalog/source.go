package catalog

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"storefront/core/storage"

	"github.com/minio/minio-go/v7"
)

// Source opens catalog documents by name.
type Source interface {
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

// FileSource reads catalogs from the local filesystem.
type FileSource struct{}

// Open opens the named file. A missing file yields ErrNotFound.
func (FileSource) Open(_ context.Context, name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, fmt.Errorf("failed to open catalog %s: %w", name, err)
	}
	return f, nil
}

// BucketSource reads catalogs published to an object storage bucket.
type BucketSource struct {
	Client storage.Client
	Bucket string
}

// NewBucketSource creates a source over the given bucket.
func NewBucketSource(client storage.Client, bucket string) *BucketSource {
	return &BucketSource{Client: client, Bucket: bucket}
}

// Open downloads the named object. A missing object or bucket yields ErrNotFound.
func (s *BucketSource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	obj, err := s.Client.GetObject(ctx, s.Bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, s.wrap(name, err)
	}
	defer obj.Close()

	// minio reports a missing object on the first read, not on GetObject.
	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, s.wrap(name, err)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *BucketSource) wrap(name string, err error) error {
	if storage.IsNotFound(err) {
		return fmt.Errorf("%w: %s/%s", ErrNotFound, s.Bucket, name)
	}
	return fmt.Errorf("failed to read catalog %s/%s: %w", s.Bucket, name, err)
}
