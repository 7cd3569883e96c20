// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so that produced type files can be published
// to AWS S3 or a self-hosted MinIO instance, and read back by the catalog
// server.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Operations
//
//   - BucketExists / MakeBucket: ensure the target bucket.
//   - PutObject: upload content (with size and options).
//   - GetObject: retrieve content as a stream.
//   - StatObject: read metadata such as the last modification time.
//   - PublishFile: upload a local JSON file, creating the bucket when needed.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	_, err = storage.PublishFile(ctx, client, cfg.Storage.Bucket, cfg.Storage.ObjectName, "data/types.json")
package storage
