package content

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioStore serves content override documents from a MinIO bucket.
type MinioStore struct {
	client *minio.Client
}

// NewMinioStoreFromEnv builds a store from MINIO_ENDPOINT /
// MINIO_ACCESS_KEY / MINIO_SECRET_KEY. Returns (nil, nil) when no
// endpoint is configured: content storage is optional and the builtin
// registry is always available.
func NewMinioStoreFromEnv() (*MinioStore, error) {
	endpoint := os.Getenv("MINIO_ENDPOINT")
	if endpoint == "" {
		return nil, nil
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(os.Getenv("MINIO_ACCESS_KEY"), os.Getenv("MINIO_SECRET_KEY"), ""),
		Secure: os.Getenv("MINIO_USE_SSL") == "true",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	return &MinioStore{client: client}, nil
}

// GetObject downloads one object from the bucket.
func (s *MinioStore) GetObject(bucket, object string) ([]byte, error) {
	obj, err := s.client.GetObject(context.Background(), bucket, object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("get object %s/%s: %w", bucket, object, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("read object %s/%s: %w", bucket, object, err)
	}
	return data, nil
}
