// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client to provide a simplified interface for fetching
// phpIPAM export files from a bucket. This abstraction supports both AWS S3
// and self-hosted MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (as seen in core/storage/mocks).
//
// # Operations
//
//   - BucketExists: Verifies access to the target bucket.
//   - GetObject: Retrieves export content as a stream.
//   - ListObjects: Lists objects in a bucket (supports prefix/recursive).
//   - LatestObject: Picks the newest export under a prefix.
//   - FetchObject: Checks the bucket, resolves prefixes to their newest
//     object, and opens the export for reading.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	body, key, err := storage.FetchObject(ctx, client, "exports", "phpipam/")
package storage
