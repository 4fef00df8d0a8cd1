package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	appconfig "accstore-be/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// s3Store targets any S3-compatible backend (AWS, MinIO, RustFS) via a
// custom endpoint with path-style addressing.
type s3Store struct {
	client *s3.Client
	bucket string
	base   string
}

func NewS3Store(cfg *appconfig.Config) (Store, error) {
	if cfg.S3Bucket == "" {
		return nil, errors.New("storage bucket is required")
	}
	if cfg.S3AccessKey == "" || cfg.S3SecretKey == "" {
		return nil, errors.New("storage credentials are required")
	}

	endpoint := cfg.S3Endpoint
	if endpoint == "" {
		return nil, errors.New("storage endpoint is required")
	}
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	region := cfg.S3Region
	if region == "" {
		region = "us-east-1"
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = true
		o.BaseEndpoint = aws.String(endpoint)
	})

	return &s3Store{
		client: client,
		bucket: cfg.S3Bucket,
		base:   strings.TrimSuffix(endpoint, "/") + "/" + cfg.S3Bucket + "/",
	}, nil
}

func (s *s3Store) Upload(ctx context.Context, originalFilename string, r io.Reader) (string, error) {
	if originalFilename == "" {
		return "", ErrEmptyFilename
	}

	key := newObjectName(originalFilename)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   r,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object: %w", err)
	}
	return s.base + key, nil
}

func (s *s3Store) Delete(ctx context.Context, url string) error {
	if !strings.HasPrefix(url, s.base) {
		return ErrEmptyFilename
	}
	key := strings.TrimPrefix(url, s.base)
	if key == "" {
		return ErrEmptyFilename
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}
