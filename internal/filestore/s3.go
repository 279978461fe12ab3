package filestore

import (
	"bytes"
	"context"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/folio-space/core/internal/config"
)

// S3 keeps uploads in an S3 compatible bucket.
type S3 struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

func NewS3(cfg config.S3StorageConfig) *S3 {
	opts := s3.Options{
		Region:       cfg.Region,
		UsePathStyle: cfg.PathStyle,
	}
	if cfg.AccessKeyID != "" {
		opts.Credentials = aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""))
	}
	if endpoint := strings.TrimSpace(cfg.Endpoint); endpoint != "" {
		opts.BaseEndpoint = aws.String(endpoint)
	}
	return &S3{
		client:    s3.New(opts),
		bucket:    cfg.Bucket,
		publicURL: strings.TrimRight(cfg.PublicURL, "/"),
	}
}

func (s *S3) Put(ctx context.Context, key string, payload []byte) (string, error) {
	ref, err := cleanRef(key)
	if err != nil {
		return "", err
	}
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(ref),
		Body:          bytes.NewReader(payload),
		ContentLength: aws.Int64(int64(len(payload))),
		ContentType:   aws.String(ContentType(payload)),
	})
	if err != nil {
		return "", err
	}
	return ref, nil
}

func (s *S3) Delete(ctx context.Context, ref string) error {
	cleaned, err := cleanRef(ref)
	if err != nil {
		return err
	}
	_, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(cleaned),
	})
	return err
}

func (s *S3) URL(ref string) string {
	if ref == "" {
		return ""
	}
	return s.publicURL + "/" + strings.TrimPrefix(ref, "/")
}
