package storage

import (
	"context"
	"io"
)

type StorageProvider interface {
	Upload(ctx context.Context, request *UploadRequest) (*UploadResponse, error)
	Delete(ctx context.Context, key string) error
	Name() string
}

type UploadRequest struct {
	Key          string            `json:"key"`
	Reader       io.Reader         `json:"-"`
	ContentType  string            `json:"content_type"`
	Size         int64             `json:"size"`
	Metadata     map[string]string `json:"metadata"`
	CacheControl string            `json:"cache_control"`
}

type UploadResponse struct {
	Key  string `json:"key"`
	URL  string `json:"url"`
	Size int64  `json:"size"`
	ETag string `json:"etag,omitempty"`
}

// Config selects and configures a provider. Provider is one of local, s3, gcs.
type Config struct {
	Provider string

	LocalBasePath string
	LocalBaseURL  string

	S3Region    string
	S3Bucket    string
	S3CDNDomain string

	GCSBucket          string
	GCSCredentialsFile string
	GCSCDNDomain       string
}
