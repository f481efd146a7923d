// Package storage allocates upload folders for file requirements in an object store.
package storage

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"path"

	"github.com/google/uuid"
	"github.com/linskybing/form-platform/internal/config"
	minioSDK "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var ErrStorageDisabled = errors.New("file storage is not configured")

// FolderCreator allocates a folder and returns its id.
type FolderCreator interface {
	CreateFolder(ctx context.Context, name string) (string, error)
}

type objectPutter interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64,
		opts minioSDK.PutObjectOptions) (minioSDK.UploadInfo, error)
}

// MinioFolders represents a folder as a prefix holding a .keep marker object.
type MinioFolders struct {
	client objectPutter
	bucket string
	newID  func() string
}

func NewMinioFolders(client objectPutter, bucket string) *MinioFolders {
	return &MinioFolders{client: client, bucket: bucket, newID: uuid.NewString}
}

func FolderPrefix(id string) string {
	return path.Join("folders", id) + "/"
}

func (m *MinioFolders) CreateFolder(ctx context.Context, name string) (string, error) {
	id := m.newID()
	key := FolderPrefix(id) + ".keep"
	_, err := m.client.PutObject(ctx, m.bucket, key, bytes.NewReader(nil), 0, minioSDK.PutObjectOptions{
		ContentType:  "application/octet-stream",
		UserMetadata: map[string]string{"folder-name": name},
	})
	if err != nil {
		return "", fmt.Errorf("create folder %q: %w", name, err)
	}
	return id, nil
}

// DisabledFolders is used when no object store could be reached.
type DisabledFolders struct{}

func (DisabledFolders) CreateFolder(context.Context, string) (string, error) {
	return "", ErrStorageDisabled
}

// InitMinio connects to the configured endpoint and makes sure the bucket exists.
func InitMinio(ctx context.Context) (*minioSDK.Client, error) {
	transport := &http.Transport{
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: true,
		},
	}

	client, err := minioSDK.New(config.MinioEndpoint, &minioSDK.Options{
		Creds:     credentials.NewStaticV4(config.MinioAccessKey, config.MinioSecretKey, ""),
		Secure:    config.MinioUseSSL,
		Transport: transport,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to minio: %w", err)
	}

	exists, err := client.BucketExists(ctx, config.MinioBucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %s: %w", config.MinioBucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, config.MinioBucket, minioSDK.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket %s: %w", config.MinioBucket, err)
		}
		log.Printf("[Storage] bucket created: %s", config.MinioBucket)
	}
	return client, nil
}
