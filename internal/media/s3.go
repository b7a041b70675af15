// VideoTube - Video Sharing Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videotube

package media

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/tomtom215/videotube/internal/config"
	"github.com/tomtom215/videotube/internal/logging"
)

// S3Store stores blobs in an S3-compatible bucket (AWS S3, Cloudflare R2,
// DigitalOcean Spaces, MinIO).
type S3Store struct {
	client *s3.Client
	bucket string
}

var _ ObjectStore = (*S3Store)(nil)

// NewS3Store builds an S3 client from cfg. Static keys are used when set,
// otherwise the default AWS credential chain applies. A custom endpoint
// switches to path-style addressing.
func NewS3Store(ctx context.Context, cfg *config.MediaConfig) (*S3Store, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Store{client: client, bucket: cfg.Bucket}, nil
}

// Name implements ObjectStore.
func (s *S3Store) Name() string {
	return config.MediaBackendS3
}

// Put uploads obj. The body should be an io.ReadSeeker so the SDK can sign
// the payload; multipart form files are.
func (s *S3Store) Put(ctx context.Context, obj Object) error {
	input := &s3.PutObjectInput{
		Bucket:   aws.String(s.bucket),
		Key:      aws.String(obj.Key),
		Body:     obj.Body,
		Metadata: obj.Metadata,
	}
	if obj.ContentType != "" {
		input.ContentType = aws.String(obj.ContentType)
	}
	if obj.Size > 0 {
		input.ContentLength = aws.Int64(obj.Size)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return fmt.Errorf("s3 put object: %w", err)
	}
	return nil
}

// Delete removes key. S3 deletes are idempotent, so existence is checked
// with HeadObject first.
func (s *S3Store) Delete(ctx context.Context, key string) (bool, error) {
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if isNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("s3 head object: %w", err)
	}

	if _, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}); err != nil {
		return false, fmt.Errorf("s3 delete object: %w", err)
	}
	return true, nil
}

// Duration reads the duration metadata stored with a video object.
func (s *S3Store) Duration(ctx context.Context, key string) (string, error) {
	out, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return "", fmt.Errorf("s3 head object: %w", err)
	}
	return out.Metadata[metadataDuration], nil
}

// EnsureBucket creates the bucket when it does not exist. Used for
// self-hosted endpoints where the bucket is part of the deployment.
func (s *S3Store) EnsureBucket(ctx context.Context) error {
	_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(s.bucket)})
	if err == nil {
		return nil
	}
	if !isNotFound(err) {
		return fmt.Errorf("s3 head bucket: %w", err)
	}

	if _, err := s.client.CreateBucket(ctx, &s3.CreateBucketInput{Bucket: aws.String(s.bucket)}); err != nil {
		var owned *types.BucketAlreadyOwnedByYou
		if errors.As(err, &owned) {
			return nil
		}
		return fmt.Errorf("s3 create bucket: %w", err)
	}
	logging.Info().Str("bucket", s.bucket).Msg("Created media bucket")
	return nil
}

// isNotFound reports whether err is a missing key or bucket.
func isNotFound(err error) bool {
	if err == nil {
		return false
	}
	var nf *types.NotFound
	var nsk *types.NoSuchKey
	var nsb *types.NoSuchBucket
	if errors.As(err, &nf) || errors.As(err, &nsk) || errors.As(err, &nsb) {
		return true
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NotFound", "NoSuchKey", "NoSuchBucket":
			return true
		}
	}
	return false
}
