// SPDX-License-Identifier: Apache-2.0

package filestore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

// s3Storage keeps documents in an S3 bucket. A custom endpoint enables
// S3-compatible stores (MinIO) in non-AWS deployments.
type s3Storage struct {
	client s3iface.S3API
	bucket string
}

// S3Config carries the settings needed to reach the bucket.
type S3Config struct {
	Bucket   string
	Region   string
	Endpoint string
}

// NewS3Storage builds a [FileStorage] over the given bucket.
func NewS3Storage(cfg S3Config) (FileStorage, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("s3 bucket is not set")
	}

	awsCfg := aws.NewConfig().WithRegion(cfg.Region)
	if cfg.Endpoint != "" {
		awsCfg = awsCfg.WithEndpoint(cfg.Endpoint).WithS3ForcePathStyle(true)
	}

	sess, err := session.NewSession(awsCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create aws session: %w", err)
	}

	return &s3Storage{client: s3.New(sess), bucket: cfg.Bucket}, nil
}

func (s *s3Storage) UploadFile(ctx context.Context, path string, content []byte) error {
	_, err := s.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(path),
		Body:   bytes.NewReader(content),
	})
	if err != nil {
		return fmt.Errorf("failed to upload s3 object %s: %w", path, err)
	}

	return nil
}

func (s *s3Storage) GetFile(ctx context.Context, path string) ([]byte, error) {
	out, err := s.client.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(path),
	})
	if err != nil {
		var aerr awserr.Error
		if errors.As(err, &aerr) && aerr.Code() == s3.ErrCodeNoSuchKey {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to get s3 object %s: %w", path, err)
	}
	defer out.Body.Close()

	content, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read s3 object %s: %w", path, err)
	}

	return content, nil
}

func (s *s3Storage) DeleteFile(ctx context.Context, path string) error {
	_, err := s.client.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(path),
	})
	if err != nil {
		return fmt.Errorf("failed to delete s3 object %s: %w", path, err)
	}

	return nil
}

func (s *s3Storage) MoveFile(ctx context.Context, oldPath, newPath string) error {
	_, err := s.client.CopyObjectWithContext(ctx, &s3.CopyObjectInput{
		Bucket:     aws.String(s.bucket),
		CopySource: aws.String(s.bucket + "/" + oldPath),
		Key:        aws.String(newPath),
	})
	if err != nil {
		return fmt.Errorf("failed to copy s3 object %s: %w", oldPath, err)
	}

	return s.DeleteFile(ctx, oldPath)
}
