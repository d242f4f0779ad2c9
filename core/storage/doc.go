// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client to provide a simplified interface for the
// operations the assistant exposes as tools: enumerating buckets, listing
// objects, and moving files in and out of the store. This abstraction supports
// both AWS S3 and self-hosted MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it
// easier to mock storage interactions for unit testing (as seen in
// core/storage/mocks).
//
// # Operations
//
//   - ListBuckets: Enumerates every bucket of the account.
//   - BucketExists: Verifies access to a bucket.
//   - ListObjects: Lists objects in a bucket (supports prefix/recursive).
//   - FPutObject: Uploads a local file.
//   - FGetObject: Downloads an object to a local file.
//   - RemoveObject: Deletes an object.
//
// # Lifecycle
//
// NewClient is called exactly once at process start and fails with
// ErrNotConfigured when credentials are missing. The handle is immutable after
// construction and shared by reference.
//
//	client, err := storage.NewClient(config)
//	buckets, err := client.ListBuckets(ctx)
package storage
