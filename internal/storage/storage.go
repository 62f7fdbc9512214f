package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const s3Scheme = "s3://"

// MinIOConfig holds the object store connection used for s3:// model paths.
type MinIOConfig struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	UseSSL          bool
}

// Open returns a reader for uri. Plain paths are read from the local
// filesystem, s3://bucket/key from the object store in cfg.
func Open(ctx context.Context, uri string, cfg MinIOConfig) (io.ReadCloser, error) {
	if !strings.HasPrefix(uri, s3Scheme) {
		f, err := os.Open(uri)
		if err != nil {
			return nil, fmt.Errorf("open model file: %w", err)
		}
		return f, nil
	}

	bucket, key, err := ParseObjectURI(uri)
	if err != nil {
		return nil, err
	}
	client, err := newMinIOClient(cfg)
	if err != nil {
		return nil, err
	}
	obj, err := client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("get object %s/%s: %w", bucket, key, err)
	}
	// GetObject is lazy; Stat surfaces missing objects and auth errors now.
	if _, err := obj.Stat(); err != nil {
		obj.Close()
		return nil, fmt.Errorf("stat object %s/%s: %w", bucket, key, err)
	}
	return obj, nil
}

// ParseObjectURI splits s3://bucket/key.
func ParseObjectURI(uri string) (bucket, key string, err error) {
	rest := strings.TrimPrefix(uri, s3Scheme)
	bucket, key, ok := strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("object uri %q must look like s3://bucket/key", uri)
	}
	return bucket, key, nil
}

func newMinIOClient(cfg MinIOConfig) (*minio.Client, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("minio endpoint is not configured")
	}
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}
	return client, nil
}
