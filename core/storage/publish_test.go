package storage_test

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"type-extractor/core/storage"
	"type-extractor/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func writeTypesFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "types.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"typeID":34}]`), 0o644))
	return path
}

func TestPublishFile(t *testing.T) {
	t.Run("Existing Bucket", func(t *testing.T) {
		path := writeTypesFile(t)
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "gamedata").Return(true, nil)
		mockClient.On("PutObject", mock.Anything, "gamedata", "data/types.json", mock.Anything, int64(15),
			mock.MatchedBy(func(opts minio.PutObjectOptions) bool { return opts.ContentType == "application/json" })).
			Run(func(args mock.Arguments) {
				body, err := io.ReadAll(args.Get(3).(io.Reader))
				require.NoError(t, err)
				assert.Equal(t, `[{"typeID":34}]`, string(body))
			}).
			Return(minio.UploadInfo{Key: "data/types.json", Size: 15}, nil)

		info, err := storage.PublishFile(t.Context(), mockClient, "gamedata", "data/types.json", path)
		require.NoError(t, err)
		assert.Equal(t, int64(15), info.Size)
		mockClient.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
		mockClient.AssertExpectations(t)
	})

	t.Run("Creates Missing Bucket", func(t *testing.T) {
		path := writeTypesFile(t)
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "gamedata").Return(false, nil)
		mockClient.On("MakeBucket", mock.Anything, "gamedata", mock.Anything).Return(nil)
		mockClient.On("PutObject", mock.Anything, "gamedata", "types.json", mock.Anything, int64(15), mock.Anything).
			Return(minio.UploadInfo{}, nil)

		_, err := storage.PublishFile(t.Context(), mockClient, "gamedata", "types.json", path)
		require.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Bucket Check Fails", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "gamedata").Return(false, errors.New("connection refused"))

		_, err := storage.PublishFile(t.Context(), mockClient, "gamedata", "types.json", writeTypesFile(t))
		assert.ErrorContains(t, err, "connection refused")
	})

	t.Run("Missing File", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "gamedata").Return(true, nil)

		_, err := storage.PublishFile(t.Context(), mockClient, "gamedata", "types.json", filepath.Join(t.TempDir(), "absent.json"))
		assert.Error(t, err)
		mockClient.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Upload Fails", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "gamedata").Return(true, nil)
		mockClient.On("PutObject", mock.Anything, "gamedata", "types.json", mock.Anything, mock.Anything, mock.Anything).
			Return(minio.UploadInfo{}, errors.New("access denied"))

		_, err := storage.PublishFile(t.Context(), mockClient, "gamedata", "types.json", writeTypesFile(t))
		assert.ErrorContains(t, err, "access denied")
	})
}
