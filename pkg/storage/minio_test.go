package storage

import (
	"context"
	"errors"
	"io"
	"testing"

	minioSDK "github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePutter struct {
	bucket, key string
	meta        map[string]string
	err         error
}

func (f *fakePutter) PutObject(_ context.Context, bucket, key string, _ io.Reader, _ int64,
	opts minioSDK.PutObjectOptions) (minioSDK.UploadInfo, error) {
	f.bucket, f.key, f.meta = bucket, key, opts.UserMetadata
	return minioSDK.UploadInfo{Bucket: bucket, Key: key}, f.err
}

func TestMinioFolders_CreateFolder(t *testing.T) {
	p := &fakePutter{}
	folders := NewMinioFolders(p, "uploads")
	folders.newID = func() string { return "abc" }

	id, err := folders.CreateFolder(context.Background(), "Task 7 - Report")
	require.NoError(t, err)
	assert.Equal(t, "abc", id)
	assert.Equal(t, "uploads", p.bucket)
	assert.Equal(t, "folders/abc/.keep", p.key)
	assert.Equal(t, "Task 7 - Report", p.meta["folder-name"])
}

func TestMinioFolders_PutError(t *testing.T) {
	folders := NewMinioFolders(&fakePutter{err: errors.New("boom")}, "uploads")
	_, err := folders.CreateFolder(context.Background(), "x")
	assert.ErrorContains(t, err, "boom")
}

func TestDisabledFolders(t *testing.T) {
	_, err := DisabledFolders{}.CreateFolder(context.Background(), "x")
	assert.ErrorIs(t, err, ErrStorageDisabled)
}
