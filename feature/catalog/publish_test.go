package catalog_test

import (
	"context"
	"errors"
	"testing"

	"storefront/core/storage/mocks"
	"storefront/feature/catalog"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPublish(t *testing.T) {
	ctx := context.Background()

	t.Run("Uploads Valid Catalog", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "catalogs").Return(false, nil)
		client.On("MakeBucket", mock.Anything, "catalogs", mock.Anything).Return(nil)
		client.On("PutObject", mock.Anything, "catalogs", "red.toml", mock.Anything, mock.AnythingOfType("int64"), mock.Anything).
			Return(minio.UploadInfo{Bucket: "catalogs", Key: "red.toml"}, nil)

		seller, err := catalog.Publish(ctx, client, "catalogs", "", "red.toml", "testdata/seller_data.toml")
		require.NoError(t, err)
		assert.Equal(t, "red", seller.Group())
		client.AssertExpectations(t)
	})

	t.Run("Rejects Malformed Catalog", func(t *testing.T) {
		client := new(mocks.Client)

		_, err := catalog.Publish(ctx, client, "catalogs", "", "red.toml", "testdata/malformed.toml")
		assert.True(t, errors.Is(err, catalog.ErrParse))
		client.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Missing File", func(t *testing.T) {
		client := new(mocks.Client)

		_, err := catalog.Publish(ctx, client, "catalogs", "", "red.toml", "testdata/nope.toml")
		assert.True(t, errors.Is(err, catalog.ErrNotFound))
	})

	t.Run("Upload Fails", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "catalogs").Return(true, nil)
		client.On("PutObject", mock.Anything, "catalogs", "red.toml", mock.Anything, mock.Anything, mock.Anything).
			Return(minio.UploadInfo{}, errors.New("denied"))

		_, err := catalog.Publish(ctx, client, "catalogs", "", "red.toml", "testdata/seller_data.toml")
		assert.EqualError(t, err, "failed to upload catalog to catalogs/red.toml: denied")
	})
}
