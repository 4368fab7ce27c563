package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	internalConfig "github.com/alexdelx20/WeddingDream/internal/config"
)

// R2Storage stores objects in a Cloudflare R2 bucket through the S3 API.
type R2Storage struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

func NewR2Storage(cfg internalConfig.R2Config) (*R2Storage, error) {
	r2Resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		return aws.Endpoint{
			URL: fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.AccountID),
		}, nil
	})

	awsCfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithEndpointResolverWithOptions(r2Resolver),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
		config.WithRegion("auto"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &R2Storage{
		client:    s3.NewFromConfig(awsCfg),
		bucket:    cfg.Bucket,
		publicURL: strings.TrimSuffix(cfg.PublicURL, "/"),
	}, nil
}

func (s *R2Storage) Upload(key string, src io.Reader) error {
	// PutObject wants a known content length, so buffer the upload.
	// Profile images are capped at a few MB by the handler.
	buf, err := io.ReadAll(src)
	if err != nil {
		return fmt.Errorf("failed to read file content: %w", err)
	}

	input := &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(buf),
		ContentLength: aws.Int64(int64(len(buf))),
	}

	if _, err := s.client.PutObject(context.TODO(), input); err != nil {
		return fmt.Errorf("failed to upload to R2: %w", err)
	}

	return nil
}

func (s *R2Storage) Delete(key string) error {
	input := &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}

	_, err := s.client.DeleteObject(context.TODO(), input)
	return err
}

func (s *R2Storage) PublicURL(key string) string {
	return s.publicURL + "/" + key
}
