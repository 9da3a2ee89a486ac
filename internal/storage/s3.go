package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"yocc-backend/internal/models"
)

type S3Options struct {
	Region string
	// Endpoint overrides the S3 endpoint, e.g. for MinIO or LocalStack.
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

// NewS3Client builds an S3 client from the default AWS credential chain.
// Static keys take precedence when set.
func NewS3Client(ctx context.Context, opts S3Options) (*s3.Client, error) {
	cfgOpts := []func(*awscfg.LoadOptions) error{
		awscfg.WithRegion(opts.Region),
	}
	if opts.AccessKeyID != "" || opts.SecretAccessKey != "" {
		cfgOpts = append(cfgOpts, awscfg.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awscfg.LoadDefaultConfig(ctx, cfgOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true
		}
	}), nil
}

// S3API is the subset of the S3 client the store uses.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

type S3Store struct {
	client        S3API
	bucket        string
	publicBaseURL string
}

// NewS3Store serves objects from publicBaseURL, or from the bucket's virtual
// hosted endpoint in region when it is empty.
func NewS3Store(client S3API, bucket, region, publicBaseURL string) *S3Store {
	if publicBaseURL == "" {
		publicBaseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, region)
	}
	return &S3Store{
		client:        client,
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(publicBaseURL, "/"),
	}
}

func (s *S3Store) Upload(ctx context.Context, folder string, data []byte, contentType string) (models.ImageRef, error) {
	key := objectKey(folder, contentType)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return models.ImageRef{}, fmt.Errorf("failed to put object: %w", err)
	}

	return models.ImageRef{URL: s.publicBaseURL + "/" + key, PublicID: key}, nil
}

func (s *S3Store) Delete(ctx context.Context, publicID string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(publicID),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}
