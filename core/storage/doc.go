// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so catalogs can be published to, and read from,
// AWS S3 or self-hosted MinIO instances instead of the local filesystem.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Operations
//
//   - BucketExists / MakeBucket: used by EnsureBucket before publishing.
//   - PutObject: uploads a catalog document.
//   - GetObject: streams a catalog document back.
//
// IsNotFound classifies missing bucket and missing object responses.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	err = storage.EnsureBucket(ctx, client, "catalogs", "")
package storage
