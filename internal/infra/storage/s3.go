package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/BruksfildServices01/barbershop-booking/internal/config"
)

type S3 struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

func NewS3(_ context.Context, cfg config.GalleryConfig) (*S3, error) {
	if cfg.S3Bucket == "" {
		return nil, fmt.Errorf("s3 bucket is required")
	}

	creds := credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, "")

	awsCfg := aws.Config{
		Region:      cfg.S3Region,
		Credentials: aws.NewCredentialsCache(creds),
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3{
		client:  client,
		bucket:  cfg.S3Bucket,
		baseURL: publicBaseURL(cfg),
	}, nil
}

func (s *S3) Put(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(s.bucket),
		Key:          aws.String(key),
		Body:         body,
		ContentType:  aws.String(contentType),
		CacheControl: aws.String("public, max-age=31536000"),
	})
	if err != nil {
		return "", fmt.Errorf("s3 put %s: %w", key, err)
	}

	return joinURL(s.baseURL, key), nil
}

func (s *S3) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("s3 delete %s: %w", key, err)
	}
	return nil
}

// publicBaseURL prefere a URL configurada; senão monta a do bucket.
func publicBaseURL(cfg config.GalleryConfig) string {
	switch {
	case cfg.PublicBaseURL != "":
		return cfg.PublicBaseURL
	case cfg.S3Endpoint != "":
		return joinURL(cfg.S3Endpoint, cfg.S3Bucket)
	default:
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3Bucket, cfg.S3Region)
	}
}
