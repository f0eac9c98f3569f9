package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/chefboard/backend/config"
)

// MediaService resolves and stores recipe and avatar images in S3.
// Keys stored on recipes and profiles are bucket object keys; legacy
// rows may hold absolute URLs, which pass through unchanged.
type MediaService struct {
	s3Config *config.S3Config
}

// Ensure MediaService implements ImageStore
var _ ImageStore = (*MediaService)(nil)

// NewMediaService creates a new MediaService instance
func NewMediaService(s3Config *config.S3Config) *MediaService {
	return &MediaService{s3Config: s3Config}
}

// ResolveImageURL returns the public URL for an object key.
func (s *MediaService) ResolveImageURL(key string) string {
	if key == "" || strings.HasPrefix(key, "http://") || strings.HasPrefix(key, "https://") {
		return key
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.s3Config.BucketName, key)
}

// PresignedImageURL returns a time-limited URL for an object key, for
// buckets without public read access.
func (s *MediaService) PresignedImageURL(ctx context.Context, key string, expiration time.Duration) (string, error) {
	return s.s3Config.GeneratePresignedURL(ctx, key, expiration)
}

// UploadImage stores image data under the given key and returns the
// public URL.
func (s *MediaService) UploadImage(ctx context.Context, data []byte, key, contentType string) (string, error) {
	_, err := s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}
	return s.ResolveImageURL(key), nil
}
