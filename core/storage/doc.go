// Package storage provides read access to recorded feed payloads in object storage.
//
// It wraps the MinIO Go client so the same code works against AWS S3 and self-hosted MinIO.
// The fetcher's storage source reads mapping and state payloads from a bucket with it, which
// lets the service replay a recorded upstream session without the live endpoints.
//
// # Client Interface
//
// The Client interface is deliberately small and is mocked in core/storage/mocks for unit tests.
//
//   - BucketExists: Verifies access to the target bucket.
//   - GetObject: Retrieves content as a stream.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	exists, err := client.BucketExists(ctx, "feeds")
package storage
