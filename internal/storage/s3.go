package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// Uploader publishes production artifacts (result JSON, report, audio) to
// S3 under a per-project prefix.
type Uploader struct {
	client s3API
	bucket string
	prefix string
}

func New(ctx context.Context, bucket, prefix, region string) (*Uploader, error) {
	if bucket == "" {
		return nil, fmt.Errorf("bucket is required")
	}
	if region == "" {
		region = "us-west-2"
	}
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, err
	}
	client := s3.NewFromConfig(cfg)
	return &Uploader{
		client: client,
		bucket: bucket,
		prefix: normalizePrefix(prefix),
	}, nil
}

func NewWithClient(bucket, prefix string, client s3API) *Uploader {
	return &Uploader{
		client: client,
		bucket: bucket,
		prefix: normalizePrefix(prefix),
	}
}

func (u *Uploader) Bucket() string { return u.bucket }
func (u *Uploader) Prefix() string { return u.prefix }

// KeyForProject returns prefix/<project>/<parts...>.
func (u *Uploader) KeyForProject(project string, parts ...string) string {
	all := []string{}
	if u.prefix != "" {
		all = append(all, u.prefix)
	}
	all = append(all, project)
	all = append(all, parts...)
	key := path.Join(all...)
	return strings.TrimPrefix(key, "/")
}

// UploadFile uploads a local file to the given key.
func (u *Uploader) UploadFile(ctx context.Context, key, localPath, contentType string) error {
	f, err := os.Open(localPath)
	if err != nil {
		return err
	}
	defer f.Close()

	input := &s3.PutObjectInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(key),
		Body:   f,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	_, err = u.client.PutObject(ctx, input)
	return err
}

// UploadBytes uploads in-memory data to the given key.
func (u *Uploader) UploadBytes(ctx context.Context, key string, data []byte, contentType string) error {
	input := &s3.PutObjectInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(data),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	_, err := u.client.PutObject(ctx, input)
	return err
}

// DownloadBytes downloads an object into memory.
func (u *Uploader) DownloadBytes(ctx context.Context, key string) ([]byte, error) {
	out, err := u.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, err
	}
	defer out.Body.Close()
	return io.ReadAll(out.Body)
}

func normalizePrefix(prefix string) string {
	return strings.Trim(prefix, "/")
}

// IsNotFound returns true when the error indicates the object does not
// exist.
func IsNotFound(err error) bool {
	var noSuchKey *types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return true
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		code := apiErr.ErrorCode()
		return code == "NoSuchKey" || code == "NotFound"
	}
	return false
}
