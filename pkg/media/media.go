package media

import (
	"context"
	"io"
)

// Storage is the interface the app's upload paths depend on.
type Storage interface {
	// Upload stores the reader's content and returns the stored object.
	// The content type is sniffed from magic bytes unless overridden,
	// and the upload kind's validation rules run before any bytes hit
	// the wire.
	Upload(ctx context.Context, r io.Reader, size int64, opts ...UploadOption) (*Object, error)

	// Delete removes an object by key. Deleting a missing key is not
	// an error.
	Delete(ctx context.Context, key string) error

	// Exists reports whether an object is present.
	Exists(ctx context.Context, key string) (bool, error)

	// PublicURL returns the public URL for a key without touching the
	// network.
	PublicURL(key string) string
}

// Object describes a stored media object.
type Object struct {
	// Key is the storage key (path) for the object.
	Key string

	// ContentType is the detected MIME type.
	ContentType string

	// Size is the object size in bytes.
	Size int64

	// URL is the object's public URL.
	URL string
}

// Config holds access settings for the backend project's S3-compatible
// storage API.
type Config struct {
	// Endpoint is the storage API URL, e.g.
	// https://<project-ref>.supabase.co/storage/v1/s3.
	Endpoint string `env:"MEDIA_S3_ENDPOINT,required"`

	// Region is the project's storage region.
	Region string `env:"MEDIA_S3_REGION" envDefault:"us-east-1"`

	// Bucket is the storage bucket name.
	Bucket string `env:"MEDIA_S3_BUCKET" envDefault:"media"`

	// AccessKey and SecretKey are the project's S3 access credentials.
	AccessKey string `env:"MEDIA_S3_ACCESS_KEY,required"`
	SecretKey string `env:"MEDIA_S3_SECRET_KEY,required"`

	// PublicURL overrides the public URL prefix, e.g. a CDN in front
	// of the bucket. When empty, URLs are derived from the endpoint.
	PublicURL string `env:"MEDIA_PUBLIC_URL"`

	// PathStyle keeps the bucket in the URL path. The backend's
	// storage API requires it.
	PathStyle bool `env:"MEDIA_S3_PATH_STYLE" envDefault:"true"`
}

func (c *Config) applyDefaults() {
	if c.Region == "" {
		c.Region = "us-east-1"
	}
	if c.Bucket == "" {
		c.Bucket = "media"
	}
}

func (c *Config) validate() error {
	if c.Endpoint == "" || c.AccessKey == "" || c.SecretKey == "" {
		return ErrInvalidConfig
	}
	return nil
}
