package storage

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Client defines the interface for object storage operations.
type Client interface {
	// BucketExists checks if a bucket exists.
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	// GetObject downloads an object.
	GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (io.ReadCloser, error)
	// ListObjects lists objects in a bucket.
	ListObjects(ctx context.Context, bucketName string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo
}

// NewClient creates a new Minio client based on the configuration.
func NewClient(cfg Config) (Client, error) {
	// Minio expects endpoint without scheme
	endpoint := strings.TrimPrefix(cfg.Endpoint, "http://")
	endpoint = strings.TrimPrefix(endpoint, "https://")

	// Ensure timeout defaults if not set
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	// Create custom transport with strict timeouts
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration, // Connection setup timeout
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration, // TLS Handshake timeout
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration, // Wait for first response byte timeout
	}

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:     credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:    cfg.UseSSL,
		Region:    cfg.Region,
		Transport: transport,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}
	// Note: Minio client performs lazy connection, so we can't ping here easily without a bucket check
	// But ListBuckets or similar would verify. We rely on operation-level timeouts from Context for the rest.
	// The transport timeouts ensure we don't hang on connection setup.

	return &minioClientWrapper{Client: minioClient}, nil
}

type minioClientWrapper struct {
	*minio.Client
}

func (c *minioClientWrapper) GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (io.ReadCloser, error) {
	return c.Client.GetObject(ctx, bucketName, objectName, opts)
}

// LatestObject returns the key of the most recently modified object under the
// given prefix. phpIPAM exports carry a date in the file name and accumulate in
// the bucket over time; the newest one is the current inventory.
func LatestObject(ctx context.Context, client Client, bucket, prefix string) (string, error) {
	var (
		latest   string
		modified time.Time
	)

	for obj := range client.ListObjects(ctx, bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if obj.Err != nil {
			return "", fmt.Errorf("failed to list objects in bucket %q: %w", bucket, obj.Err)
		}
		if obj.LastModified.After(modified) {
			latest = obj.Key
			modified = obj.LastModified
		}
	}

	if latest == "" {
		return "", fmt.Errorf("no objects found in bucket %q under prefix %q", bucket, prefix)
	}
	return latest, nil
}

// FetchObject opens one object for reading and returns its stream together
// with the resolved key. A key that is empty or ends in "/" names a prefix
// and resolves to the newest object under it. The bucket is checked first;
// a missing bucket is a setup failure, not a fetch error.
func FetchObject(ctx context.Context, client Client, bucket, key string) (io.ReadCloser, string, error) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, "", fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, "", fmt.Errorf("bucket %s does not exist", bucket)
	}

	if key == "" || strings.HasSuffix(key, "/") {
		key, err = LatestObject(ctx, client, bucket, key)
		if err != nil {
			return nil, "", err
		}
	}

	body, err := client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch object %q from bucket %q: %w", key, bucket, err)
	}
	return body, key, nil
}
