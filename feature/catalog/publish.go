package catalog

import (
	"bytes"
	"context"
	"fmt"

	"storefront/core/storage"

	"github.com/minio/minio-go/v7"
)

// Publish validates the local catalog at path and uploads it to bucket/object.
// The bucket is created when missing. A catalog that does not parse is never uploaded.
func Publish(ctx context.Context, client storage.Client, bucket, region, object, path string) (*Seller, error) {
	rc, err := FileSource{}.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(rc); err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}

	seller, err := Parse(path, buf.Bytes())
	if err != nil {
		return nil, err
	}

	if err := storage.EnsureBucket(ctx, client, bucket, region); err != nil {
		return nil, err
	}

	data := buf.Bytes()
	_, err = client.PutObject(ctx, bucket, object, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/toml",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload catalog to %s/%s: %w", bucket, object, err)
	}
	return seller, nil
}
