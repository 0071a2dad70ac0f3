package storage

import (
	"bytes"
	"context"
	"medicore-service/internal/app/contracts"
	"medicore-service/internal/pkg/exceptions"
	"time"

	"github.com/minio/minio-go/v7"
)

type minioReceiptStorage struct {
	MinioClient *minio.Client
	BucketName  string
}

func NewMinioReceiptStorage(minioClient *minio.Client, bucketName string) contracts.ReceiptStorage {
	return &minioReceiptStorage{
		MinioClient: minioClient,
		BucketName:  bucketName,
	}
}

func (m *minioReceiptStorage) StoreReceipt(ctx context.Context, objectName string, payload []byte) error {
	_, err := m.MinioClient.PutObject(
		ctx,
		m.BucketName,
		objectName,
		bytes.NewReader(payload),
		int64(len(payload)),
		minio.PutObjectOptions{ContentType: "application/json"},
	)
	if err != nil {
		return exceptions.ErrMinioCreateObject(err, m.BucketName)
	}
	return nil
}

func (m *minioReceiptStorage) PresignReceiptURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	presignedURL, err := m.MinioClient.PresignedGetObject(ctx, m.BucketName, objectName, expiry, nil)
	if err != nil {
		return "", exceptions.ErrMinioPresignObject(err, m.BucketName)
	}
	return presignedURL.String(), nil
}
