// Package storage 提供 S3 兼容对象存储实现
package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"aws-architect-api/internal/config"
)

var tracer = otel.Tracer("storage")

// S3Store S3 兼容对象存储客户端
// 桶在首次写入时惰性创建
type S3Store struct {
	client     *minio.Client
	bucketName string
	region     string
	initOnce   sync.Once
	initErr    error
}

// NewS3Store 创建对象存储客户端
func NewS3Store(cfg *config.S3Config) (*S3Store, error) {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		return nil, fmt.Errorf("s3 endpoint is required")
	}
	access := strings.TrimSpace(cfg.AccessKeyID)
	secret := strings.TrimSpace(cfg.SecretAccessKey)
	if access == "" || secret == "" {
		return nil, fmt.Errorf("s3 access key and secret key are required")
	}
	bucket := strings.TrimSpace(cfg.Bucket)
	if bucket == "" {
		return nil, fmt.Errorf("s3 bucket is required")
	}
	region := strings.TrimSpace(cfg.Region)
	if region == "" {
		region = "us-east-1"
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(access, secret, ""),
		Secure: cfg.UseSSL,
		Region: region,
	})
	if err != nil {
		return nil, fmt.Errorf("init s3 client: %w", err)
	}

	return &S3Store{
		client:     client,
		bucketName: bucket,
		region:     region,
	}, nil
}

func (s *S3Store) ensureBucket(ctx context.Context) error {
	if s == nil || s.client == nil {
		return fmt.Errorf("store is nil")
	}
	s.initOnce.Do(func() {
		exists, err := s.client.BucketExists(ctx, s.bucketName)
		if err != nil {
			s.initErr = err
			return
		}
		if exists {
			return
		}
		s.initErr = s.client.MakeBucket(ctx, s.bucketName, minio.MakeBucketOptions{Region: s.region})
	})
	return s.initErr
}

// Put 幂等写入对象，相同 key 覆盖旧内容
func (s *S3Store) Put(ctx context.Context, key string, contentType string, data []byte) error {
	ctx, span := tracer.Start(ctx, "storage.Put")
	span.SetAttributes(
		attribute.String("storage.key", key),
		attribute.Int("storage.size_bytes", len(data)),
	)
	defer span.End()

	key = strings.TrimLeft(strings.TrimSpace(key), "/")
	if key == "" {
		return fmt.Errorf("object key is required")
	}
	if err := s.ensureBucket(ctx); err != nil {
		span.RecordError(err)
		return fmt.Errorf("ensure bucket: %w", err)
	}
	if data == nil {
		data = []byte{}
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := s.client.PutObject(ctx, s.bucketName, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		span.RecordError(err)
	}
	return err
}

// PresignedGetURL 生成限时下载链接
func (s *S3Store) PresignedGetURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	ctx, span := tracer.Start(ctx, "storage.PresignedGetURL")
	span.SetAttributes(attribute.String("storage.key", key))
	defer span.End()

	if s == nil || s.client == nil {
		return "", fmt.Errorf("store is nil")
	}
	key = strings.TrimLeft(strings.TrimSpace(key), "/")
	if key == "" {
		return "", fmt.Errorf("object key is required")
	}
	if expiry <= 0 {
		expiry = time.Hour
	}

	u, err := s.client.PresignedGetObject(ctx, s.bucketName, key, expiry, nil)
	if err != nil {
		span.RecordError(err)
		return "", err
	}
	return u.String(), nil
}

// HealthCheck 健康检查：验证桶可达
func (s *S3Store) HealthCheck(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "storage.HealthCheck")
	defer span.End()

	_, err := s.client.BucketExists(ctx, s.bucketName)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("health check failed: %w", err)
	}
	return nil
}
