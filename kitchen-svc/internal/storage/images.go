package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// LocalImageStore writes uploads below Dir and serves them from URLPrefix.
type LocalImageStore struct {
	Dir       string
	URLPrefix string
}

func NewLocalImageStore(dir, urlPrefix string) *LocalImageStore {
	return &LocalImageStore{Dir: dir, URLPrefix: urlPrefix}
}

func (s *LocalImageStore) Save(_ context.Context, key, _ string, body io.Reader) (string, error) {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	name := filepath.Base(key)
	dst, err := os.Create(filepath.Join(s.Dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, body); err != nil {
		return "", err
	}
	return s.URLPrefix + "/" + name, nil
}

type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type S3ImageStore struct {
	client ObjectPutter
	bucket string
	region string
}

func NewS3ImageStore(client ObjectPutter, bucket, region string) *S3ImageStore {
	return &S3ImageStore{client: client, bucket: bucket, region: region}
}

func NewS3ImageStoreFromEnv(ctx context.Context, bucket, region string) (*S3ImageStore, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}
	return NewS3ImageStore(s3.NewFromConfig(cfg), bucket, region), nil
}

func (s *S3ImageStore) Save(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	objectKey := "kitchens/" + filepath.Base(key)
	if _, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(objectKey),
		Body:        body,
		ContentType: aws.String(contentType),
	}); err != nil {
		return "", fmt.Errorf("unable to upload image to S3: %w", err)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, objectKey), nil
}
