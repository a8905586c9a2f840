package catalog_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"storefront/core/storage/mocks"
	"storefront/feature/catalog"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type errReader struct{ err error }

func (r errReader) Read([]byte) (int, error) { return 0, r.err }
func (r errReader) Close() error             { return nil }

func TestBucketSource(t *testing.T) {
	ctx := context.Background()
	doc := []byte("[seller]\nname = \"Red\"\n[[seller.products]]\nid = 1\nname = \"Widget\"\nquantity = 4\n")

	t.Run("Found", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "catalogs", "seller_data.toml", mock.Anything).
			Return(io.NopCloser(bytes.NewReader(doc)), nil)

		loader := catalog.NewLoader(catalog.NewBucketSource(client, "catalogs"))
		products, err := loader.Load(ctx, "seller_data.toml")
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "Widget", products[0].Name)
	})

	t.Run("Missing Object", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "catalogs", "gone.toml", mock.Anything).
			Return(errReader{err: minio.ErrorResponse{Code: "NoSuchKey"}}, nil)

		_, err := catalog.NewBucketSource(client, "catalogs").Open(ctx, "gone.toml")
		assert.True(t, errors.Is(err, catalog.ErrNotFound))
	})

	t.Run("Missing Bucket", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "nope", "seller_data.toml", mock.Anything).
			Return(nil, minio.ErrorResponse{Code: "NoSuchBucket"})

		_, err := catalog.NewBucketSource(client, "nope").Open(ctx, "seller_data.toml")
		assert.True(t, errors.Is(err, catalog.ErrNotFound))
	})

	t.Run("Other Failure", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "catalogs", "seller_data.toml", mock.Anything).
			Return(errReader{err: minio.ErrorResponse{Code: "AccessDenied"}}, nil)

		_, err := catalog.NewBucketSource(client, "catalogs").Open(ctx, "seller_data.toml")
		assert.Error(t, err)
		assert.False(t, errors.Is(err, catalog.ErrNotFound))
	})
}
