package storage

import (
	"context"
	"fmt"
	"os"

	"github.com/minio/minio-go/v7"
)

// PublishFile uploads the file at path to bucket/objectName as JSON,
// creating the bucket first when it does not exist.
func PublishFile(ctx context.Context, client Client, bucket, objectName, path string) (minio.UploadInfo, error) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return minio.UploadInfo{}, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return minio.UploadInfo{}, fmt.Errorf("failed to create bucket %s: %w", bucket, err)
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return minio.UploadInfo{}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return minio.UploadInfo{}, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	info, err := client.PutObject(ctx, bucket, objectName, f, stat.Size(), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return minio.UploadInfo{}, fmt.Errorf("failed to upload %s to %s/%s: %w", path, bucket, objectName, err)
	}
	return info, nil
}
