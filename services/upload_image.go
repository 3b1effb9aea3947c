package services

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rpupo63/portfolio-cms-backend/config"
)

// ImageUploader stores admin-panel image uploads in S3 and hands back the
// public URL to put in a record's image field.
type ImageUploader struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

// NewImageUploader builds an uploader from S3_BUCKET and the standard AWS
// environment. Returns an error when no bucket is configured; callers treat
// that as uploads being disabled rather than fatal.
func NewImageUploader(ctx context.Context, cfg map[string]string) (*ImageUploader, error) {
	bucket := config.GetString(cfg, "S3_BUCKET", "")
	if bucket == "" {
		return nil, fmt.Errorf("S3_BUCKET environment variable is not set")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	baseURL := config.GetString(cfg, "S3_PUBLIC_BASE_URL",
		fmt.Sprintf("https://%s.s3.amazonaws.com", bucket))

	return &ImageUploader{
		client:  s3.NewFromConfig(awsCfg),
		bucket:  bucket,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}, nil
}

// Upload writes the object under key and returns its public URL.
func (u *ImageUploader) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image to s3: %w", err)
	}

	return fmt.Sprintf("%s/%s", u.baseURL, key), nil
}
