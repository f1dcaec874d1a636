package storage

import (
	"context"
	"fmt"
)

// NewProvider builds the provider named by cfg.Provider.
func NewProvider(ctx context.Context, cfg Config) (StorageProvider, error) {
	var (
		provider StorageProvider
		err      error
	)
	switch cfg.Provider {
	case "", "local":
		var local *LocalStorage
		local, err = NewLocalStorage(cfg.LocalBasePath, cfg.LocalBaseURL)
		provider = local
	case "s3":
		var s3 *AWSS3Storage
		s3, err = NewAWSS3Storage(ctx, cfg.S3Region, cfg.S3Bucket, cfg.S3CDNDomain)
		provider = s3
	case "gcs":
		var gcs *GCPStorage
		gcs, err = NewGCPStorage(ctx, cfg.GCSBucket, cfg.GCSCredentialsFile, cfg.GCSCDNDomain)
		provider = gcs
	default:
		return nil, fmt.Errorf("unknown storage provider %q", cfg.Provider)
	}
	if err != nil {
		return nil, err
	}
	return provider, nil
}
