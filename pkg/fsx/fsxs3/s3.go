// Package fsxs3 implements fsx.FileSystem on top of AWS S3.
package fsxs3

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/hirelink/hirelink/pkg/fsx"
)

// S3FileSystem stores objects in a single S3 bucket under a key prefix.
type S3FileSystem struct {
	client *s3.Client
	bucket string
	prefix string
	region string
}

// NewS3FileSystem creates an S3-backed file system.
func NewS3FileSystem(client *s3.Client, bucket, prefix, region string) fsx.FileSystem {
	return &S3FileSystem{
		client: client,
		bucket: bucket,
		prefix: prefix,
		region: region,
	}
}

func (f *S3FileSystem) fullKey(key string) string {
	if f.prefix == "" {
		return key
	}
	return f.prefix + "/" + key
}

// Put uploads the object and returns its public URL.
func (f *S3FileSystem) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	_, err := f.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(f.bucket),
		Key:         aws.String(f.fullKey(key)),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}

	return f.URL(key), nil
}

// Delete removes the object from the bucket.
func (f *S3FileSystem) Delete(ctx context.Context, key string) error {
	_, err := f.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(f.bucket),
		Key:    aws.String(f.fullKey(key)),
	})
	if err != nil {
		return fmt.Errorf("delete object %s: %w", key, err)
	}
	return nil
}

// URL builds the public HTTPS URL for an object.
func (f *S3FileSystem) URL(key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", f.bucket, f.region, f.fullKey(key))
}
