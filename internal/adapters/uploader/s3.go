package uploader

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"

	"github.com/minio/minio-go/v7"

	"checklist_export/internal/ports"
)

type S3Client interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

type S3Uploader struct {
	Client S3Client
	Bucket string
}

func NewS3Uploader(cli S3Client, bucket string) *S3Uploader {
	return &S3Uploader{Client: cli, Bucket: bucket}
}

func (u *S3Uploader) Upload(ctx context.Context, key string, data []byte, contentType string) (ports.UploadInfo, error) {
	log.Printf("[UPLOADER][S3][START] bucket=%q key=%q size=%d", u.Bucket, key, len(data))

	info, err := u.Client.PutObject(ctx, u.Bucket, key, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		log.Printf("[UPLOADER][S3][ERR] put: %v", err)
		return ports.UploadInfo{}, fmt.Errorf("s3 put: %w", err)
	}

	log.Printf("[UPLOADER][S3][OK] key=%q size=%d etag=%q", key, info.Size, info.ETag)
	return ports.UploadInfo{
		Bucket:    u.Bucket,
		Key:       key,
		SizeBytes: info.Size,
	}, nil
}
