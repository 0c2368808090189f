package storage

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/johnquangdev/meeting-minutes/pkg/config"
)

// MinIOStore keeps uploaded files as objects in a MinIO (or S3 compatible) bucket
type MinIOStore struct {
	client *minio.Client
	bucket string

	bucketOnce sync.Once
	bucketErr  error
}

var _ FileStore = (*MinIOStore)(nil)

// NewMinIOStore creates a new MinIO backed store. The bucket is created on first use.
func NewMinIOStore(cfg *config.StorageConfig) (*MinIOStore, error) {
	minioClient, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	return &MinIOStore{
		client: minioClient,
		bucket: cfg.BucketName,
	}, nil
}

// ensureBucket ensures the bucket exists
func (m *MinIOStore) ensureBucket(ctx context.Context) error {
	m.bucketOnce.Do(func() {
		exists, err := m.client.BucketExists(ctx, m.bucket)
		if err != nil {
			m.bucketErr = fmt.Errorf("failed to check bucket existence: %w", err)
			return
		}
		if !exists {
			if err := m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{}); err != nil {
				m.bucketErr = fmt.Errorf("failed to create bucket: %w", err)
			}
		}
	})
	return m.bucketErr
}

// Save uploads a file to MinIO, replacing any object with the same name
func (m *MinIOStore) Save(ctx context.Context, name string, r io.Reader, size int64, contentType string) error {
	if name == "" {
		return fmt.Errorf("invalid file name %q", name)
	}
	if err := m.ensureBucket(ctx); err != nil {
		return err
	}

	if contentType == "" {
		sniffed, rest, err := SniffContentType(r)
		if err != nil {
			return fmt.Errorf("failed to read upload: %w", err)
		}
		contentType, r = sniffed, rest
	}

	_, err := m.client.PutObject(ctx, m.bucket, name, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to upload file: %w", err)
	}
	return nil
}

// Open fetches an object from MinIO
func (m *MinIOStore) Open(ctx context.Context, name string) (*Object, error) {
	obj, err := m.client.GetObject(ctx, m.bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, mapMinIOError(err)
	}

	// GetObject is lazy; Stat surfaces a missing key
	info, err := obj.Stat()
	if err != nil {
		obj.Close()
		return nil, mapMinIOError(err)
	}

	return &Object{
		ReadCloser:  obj,
		Name:        name,
		Size:        info.Size,
		ContentType: info.ContentType,
	}, nil
}

func mapMinIOError(err error) error {
	switch minio.ToErrorResponse(err).Code {
	case "NoSuchKey", "NoSuchBucket":
		return ErrFileNotFound
	}
	return fmt.Errorf("failed to get object: %w", err)
}
