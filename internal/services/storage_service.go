// internal/services/storage_service.go
package services

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"

	"github.com/arclux/watchdesk-backend/internal/config"
)

// StorageService is the object-storage collaborator. The engine only needs
// lifecycle operations: removing the object behind a deleted media row and
// presigning reads for private galleries. Upload mechanics live elsewhere.
type StorageService struct {
	s3Client *s3.S3
	config   *config.Config
}

func NewStorageService(cfg *config.Config) (*StorageService, error) {
	if cfg.AWS.AccessKeyID == "" {
		// No S3 in local development; cleanup becomes a no-op.
		return &StorageService{config: cfg}, nil
	}

	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(cfg.AWS.Region),
		Credentials: credentials.NewStaticCredentials(
			cfg.AWS.AccessKeyID,
			cfg.AWS.SecretAccessKey,
			"",
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return &StorageService{
		s3Client: s3.New(sess),
		config:   cfg,
	}, nil
}

// DeleteObjectByURL removes the S3 object a media URL points at. URLs outside
// the configured bucket are left alone.
func (s *StorageService) DeleteObjectByURL(mediaURL string) error {
	if s.s3Client == nil {
		return nil
	}

	key, ok := s.objectKey(mediaURL)
	if !ok {
		return nil
	}

	_, err := s.s3Client.DeleteObject(&s3.DeleteObjectInput{
		Bucket: aws.String(s.config.AWS.S3Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object %s: %w", key, err)
	}
	return nil
}

// PresignURL returns a time-limited read URL for a stored object.
func (s *StorageService) PresignURL(mediaURL string, expiry time.Duration) (string, error) {
	if s.s3Client == nil {
		return mediaURL, nil
	}

	key, ok := s.objectKey(mediaURL)
	if !ok {
		return mediaURL, nil
	}

	req, _ := s.s3Client.GetObjectRequest(&s3.GetObjectInput{
		Bucket: aws.String(s.config.AWS.S3Bucket),
		Key:    aws.String(key),
	})
	signed, err := req.Presign(expiry)
	if err != nil {
		return "", fmt.Errorf("failed to presign %s: %w", key, err)
	}
	return signed, nil
}

func (s *StorageService) objectKey(mediaURL string) (string, bool) {
	parsed, err := url.Parse(mediaURL)
	if err != nil {
		return "", false
	}
	host := parsed.Host
	if !strings.Contains(host, s.config.AWS.S3Bucket) && host != strings.TrimPrefix(s.config.AWS.CloudFrontURL, "https://") {
		return "", false
	}
	return strings.TrimPrefix(parsed.Path, "/"), true
}
