package catalog

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"type-extractor/core/storage"

	"github.com/minio/minio-go/v7"
)

// Source is where the served output file lives.
type Source interface {
	// Name identifies the source in logs.
	Name() string
	// ModTime reports when the content last changed.
	ModTime(ctx context.Context) (time.Time, error)
	// Open returns the current content.
	Open(ctx context.Context) (io.ReadCloser, error)
}

// FileSource serves a local output file.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Name() string { return s.path }

func (s *FileSource) ModTime(context.Context) (time.Time, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to stat %s: %w", s.path, err)
	}
	return info.ModTime(), nil
}

func (s *FileSource) Open(context.Context) (io.ReadCloser, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", s.path, err)
	}
	return f, nil
}

// ObjectSource serves a published copy from object storage.
type ObjectSource struct {
	client     storage.Client
	bucket     string
	objectName string
}

func NewObjectSource(client storage.Client, bucket, objectName string) *ObjectSource {
	return &ObjectSource{client: client, bucket: bucket, objectName: objectName}
}

func (s *ObjectSource) Name() string { return s.bucket + "/" + s.objectName }

func (s *ObjectSource) ModTime(ctx context.Context) (time.Time, error) {
	info, err := s.client.StatObject(ctx, s.bucket, s.objectName, minio.StatObjectOptions{})
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to stat %s: %w", s.Name(), err)
	}
	return info.LastModified, nil
}

func (s *ObjectSource) Open(ctx context.Context) (io.ReadCloser, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, s.objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", s.Name(), err)
	}
	return obj, nil
}
