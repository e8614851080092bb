package media

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/jobportal/jobportal/internal/platform/httpx"
)

// S3Config carries connection settings for the asset host.
type S3Config struct {
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	// PublicURL is the base under which uploaded objects resolve publicly.
	// Defaults to the virtual-hosted AWS URL when empty.
	PublicURL string
}

// S3Uploader stores uploads in an S3-compatible bucket.
type S3Uploader struct {
	client *s3.Client
	cfg    S3Config
}

// NewS3Uploader builds the client with static credentials and an optional
// custom endpoint (minio and friends).
func NewS3Uploader(ctx context.Context, cfg S3Config) (*S3Uploader, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("media: load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Uploader{client: client, cfg: cfg}, nil
}

func storageKey(name string) string {
	d := time.Now()
	key := fmt.Sprintf("uploads/%d/%02d/%v", d.Year(), d.Month(), uuid.New())
	if ext := fileExt(name); ext != "" {
		key += ext
	}
	return key
}

func fileExt(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 && i < len(name)-1 {
		return name[i:]
	}
	return ""
}

// Upload writes the object and returns its public URL. Transport failures
// surface as ErrUpload so the handler answers with a 500.
func (u *S3Uploader) Upload(ctx context.Context, f *File) (string, error) {
	key := storageKey(f.Name)

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.cfg.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(f.Data),
		ContentType: aws.String(f.MimeType),
	})
	if err != nil {
		return "", fmt.Errorf("%w: put object: %v", httpx.ErrUpload, err)
	}

	if u.cfg.PublicURL != "" {
		return strings.TrimSuffix(u.cfg.PublicURL, "/") + "/" + key, nil
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.cfg.Bucket, u.cfg.Region, key), nil
}

var _ Uploader = (*S3Uploader)(nil)
