package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"regexp"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/dmitrymomot/daybook/pkg/id"
)

// S3 implements Storage over the backend's S3-compatible storage API.
type S3 struct {
	client *s3.Client
	cfg    Config
}

// New creates an S3 storage client from the given configuration.
func New(cfg Config) (*S3, error) {
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	client := s3.New(s3.Options{}, func(o *s3.Options) {
		o.Region = cfg.Region
		o.Credentials = credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")
		o.BaseEndpoint = aws.String(cfg.Endpoint)
		o.UsePathStyle = cfg.PathStyle
	})

	return &S3{client: client, cfg: cfg}, nil
}

// Upload stores the reader's content under a generated key.
func (s *S3) Upload(ctx context.Context, r io.Reader, size int64, opts ...UploadOption) (*Object, error) {
	if r == nil || size <= 0 {
		return nil, ErrEmptyFile
	}

	o := &uploadOptions{kind: KindAttachment}
	for _, opt := range opts {
		opt(o)
	}

	contentType := o.contentType
	var body io.ReadSeeker
	if contentType != "" {
		if rs, ok := r.(io.ReadSeeker); ok {
			body = rs
		} else {
			data, err := io.ReadAll(r)
			if err != nil {
				return nil, fmt.Errorf("media: read input: %w", err)
			}
			body = bytes.NewReader(data)
		}
	} else {
		contentType, body = sniffContentType(r)
	}

	if err := o.kind.validate(size, contentType); err != nil {
		return nil, err
	}

	key := o.key
	if key == "" {
		key = buildKey(o.kind, o.owner, contentType)
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.cfg.Bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return nil, wrapS3Error(err, ErrUploadFailed)
	}

	return &Object{
		Key:         key,
		ContentType: contentType,
		Size:        size,
		URL:         s.PublicURL(key),
	}, nil
}

// Delete removes an object. Missing keys are not an error; S3 delete
// is idempotent.
func (s *S3) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return wrapS3Error(err, ErrDeleteFailed)
	}
	return nil
}

// Exists reports whether an object is present.
func (s *S3) Exists(ctx context.Context, key string) (bool, error) {
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		wrapped := wrapS3Error(err, ErrNotFound)
		if errors.Is(wrapped, ErrNotFound) {
			return false, nil
		}
		return false, wrapped
	}
	return true, nil
}

// PublicURL returns the public URL for a key.
func (s *S3) PublicURL(key string) string {
	if s.cfg.PublicURL != "" {
		return strings.TrimSuffix(s.cfg.PublicURL, "/") + "/" + key
	}

	endpoint := strings.TrimSuffix(s.cfg.Endpoint, "/")
	if s.cfg.PathStyle {
		return fmt.Sprintf("%s/%s/%s", endpoint, s.cfg.Bucket, key)
	}
	return fmt.Sprintf("%s/%s", endpoint, key)
}

// buildKey constructs a storage key: {kind}/{owner}/{ulid}.{ext}.
func buildKey(kind Kind, owner, contentType string) string {
	parts := []string{string(kind)}

	if owner != "" {
		parts = append(parts, sanitizeSegment(owner))
	}

	ext := extFromMIME(contentType)
	if ext == "" {
		ext = ".bin"
	}
	parts = append(parts, id.NewULID()+ext)

	return strings.Join(parts, "/")
}

var unsafeSegmentChars = regexp.MustCompile(`[^a-zA-Z0-9\-_.]`)

// sanitizeSegment strips path traversal and unsafe characters from a
// key segment.
func sanitizeSegment(segment string) string {
	segment = strings.Trim(segment, " /\\")
	segment = strings.ReplaceAll(segment, "..", "")
	segment = unsafeSegmentChars.ReplaceAllString(segment, "_")
	return url.PathEscape(segment)
}

// Ensure S3 implements Storage.
var _ Storage = (*S3)(nil)
