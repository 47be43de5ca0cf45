package repository

import (
	"bytes"
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"

	"halocat-queries/internal/app/config"
)

// MinIOStore публикует списки запросов в bucket MinIO
type MinIOStore struct {
	client *minio.Client
	bucket string
}

func InitMinIOStore(cfg *config.Config) (*MinIOStore, error) {
	minioClient, err := minio.New(cfg.MinIOEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIOAccessKey, cfg.MinIOSecretKey, ""),
		Secure: cfg.MinIOUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %v", err)
	}

	ctx := context.Background()

	// Создаем bucket если не существует
	exists, err := minioClient.BucketExists(ctx, cfg.MinIOBucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %v", err)
	}

	if !exists {
		err = minioClient.MakeBucket(ctx, cfg.MinIOBucket, minio.MakeBucketOptions{})
		if err != nil {
			return nil, fmt.Errorf("failed to create bucket: %v", err)
		}
	}

	logrus.Info("MinIO client initialized successfully")
	return &MinIOStore{client: minioClient, bucket: cfg.MinIOBucket}, nil
}

func (s *MinIOStore) Bucket() string {
	return s.bucket
}

// PutList загружает тело списка под именем name
func (s *MinIOStore) PutList(ctx context.Context, name string, body []byte) error {
	_, err := s.client.PutObject(ctx, s.bucket, name, bytes.NewReader(body), int64(len(body)), minio.PutObjectOptions{
		ContentType: "text/plain; charset=utf-8",
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s to MinIO: %v", name, err)
	}
	logrus.Infof("Uploaded %s to bucket %s", name, s.bucket)
	return nil
}
