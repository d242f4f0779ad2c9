package assistant

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"storage-assistant/core/storage"

	"github.com/dustin/go-humanize"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// DefaultMaxKeys bounds how many objects a single listing returns.
const DefaultMaxKeys = 1000

// Bucket is a read-through projection of a remote bucket. It is never cached.
type Bucket struct {
	Name         string    `json:"name"`
	CreationDate time.Time `json:"creation_date"`
}

// Object is a read-through projection of a remote object.
type Object struct {
	Key  string `json:"key"`
	Size int64  `json:"size"`
}

// HumanSize renders the object size for people instead of models.
func (o Object) HumanSize() string {
	return humanize.Bytes(uint64(o.Size))
}

// Match is a search hit: an object key and the bucket it lives in.
type Match struct {
	Bucket string
	Object string
}

// BucketManager executes typed bucket operations against the storage client.
// Failures are classified into StorageError so callers can flatten them for
// the model while still logging something structured.
type BucketManager struct {
	client storage.Client
	logger *zap.Logger
}

// NewBucketManager creates a bucket manager around an already constructed
// storage handle.
func NewBucketManager(client storage.Client, logger *zap.Logger) *BucketManager {
	return &BucketManager{client: client, logger: logger}
}

// ListBuckets returns every bucket of the account.
func (m *BucketManager) ListBuckets(ctx context.Context) ([]Bucket, error) {
	infos, err := m.client.ListBuckets(ctx)
	if err != nil {
		serr := classify(err)
		m.logger.Error("Failed to list buckets",
			zap.String("code", serr.Code), zap.String("message", serr.Message))
		return nil, serr
	}

	buckets := make([]Bucket, 0, len(infos))
	for _, info := range infos {
		buckets = append(buckets, Bucket{Name: info.Name, CreationDate: info.CreationDate})
	}
	return buckets, nil
}

// BucketExists reports whether the bucket exists on the remote account.
func (m *BucketManager) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	exists, err := m.client.BucketExists(ctx, bucketName)
	if err != nil {
		serr := classify(err)
		m.logger.Error("Failed to check bucket",
			zap.String("bucket", bucketName),
			zap.String("code", serr.Code), zap.String("message", serr.Message))
		return false, serr
	}
	return exists, nil
}

// ListObjects returns up to maxKeys objects of the bucket.
func (m *BucketManager) ListObjects(ctx context.Context, bucketName string, maxKeys int) ([]Object, error) {
	if maxKeys <= 0 {
		maxKeys = DefaultMaxKeys
	}

	// The lister goroutine only exits through a closed channel or its
	// context. Cancelling on return releases it when the listing is
	// truncated at maxKeys before the channel drains.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	objects := make([]Object, 0)
	ch := m.client.ListObjects(ctx, bucketName, minio.ListObjectsOptions{
		Recursive: true,
		MaxKeys:   maxKeys,
	})
	for info := range ch {
		if info.Err != nil {
			serr := classify(info.Err)
			m.logger.Error("Failed to list objects",
				zap.String("bucket", bucketName),
				zap.String("code", serr.Code), zap.String("message", serr.Message))
			return nil, serr
		}
		objects = append(objects, Object{Key: info.Key, Size: info.Size})
		if len(objects) >= maxKeys {
			break
		}
	}
	return objects, nil
}

// UploadFile uploads a local file. When objectName is empty, the file's base
// name is used. It returns the object name the file was stored under.
func (m *BucketManager) UploadFile(ctx context.Context, filePath, bucketName, objectName string) (string, error) {
	if objectName == "" {
		objectName = filepath.Base(filePath)
	}

	if _, err := m.client.FPutObject(ctx, bucketName, objectName, filePath, minio.PutObjectOptions{}); err != nil {
		serr := classify(err)
		m.logger.Error("Failed to upload file",
			zap.String("file", filePath), zap.String("bucket", bucketName),
			zap.String("code", serr.Code), zap.String("message", serr.Message))
		return "", serr
	}
	return objectName, nil
}

// DownloadFile downloads an object to the local path equal to its name.
func (m *BucketManager) DownloadFile(ctx context.Context, fileName, bucketName string) error {
	if err := m.client.FGetObject(ctx, bucketName, fileName, fileName, minio.GetObjectOptions{}); err != nil {
		serr := classify(err)
		m.logger.Error("Failed to download file",
			zap.String("file", fileName), zap.String("bucket", bucketName),
			zap.String("code", serr.Code), zap.String("message", serr.Message))
		return serr
	}
	return nil
}

// RemoveFile deletes an object from a bucket.
func (m *BucketManager) RemoveFile(ctx context.Context, fileName, bucketName string) error {
	if err := m.client.RemoveObject(ctx, bucketName, fileName, minio.RemoveObjectOptions{}); err != nil {
		serr := classify(err)
		m.logger.Error("Failed to remove file",
			zap.String("file", fileName), zap.String("bucket", bucketName),
			zap.String("code", serr.Code), zap.String("message", serr.Message))
		return serr
	}
	return nil
}

// SearchObjects scans every bucket for object keys containing the term
// (case-insensitive). A bucket whose listing fails is logged and skipped;
// one inaccessible bucket must not abort the whole search.
func (m *BucketManager) SearchObjects(ctx context.Context, searchTerm string) ([]Match, error) {
	buckets, err := m.ListBuckets(ctx)
	if err != nil {
		return nil, err
	}

	term := strings.ToLower(searchTerm)
	matches := make([]Match, 0)

	for _, bucket := range buckets {
		ch := m.client.ListObjects(ctx, bucket.Name, minio.ListObjectsOptions{Recursive: true})
		for info := range ch {
			if info.Err != nil {
				serr := classify(info.Err)
				m.logger.Warn("Skipping bucket during search",
					zap.String("bucket", bucket.Name),
					zap.String("code", serr.Code), zap.String("message", serr.Message))
				break
			}
			if strings.Contains(strings.ToLower(info.Key), term) {
				matches = append(matches, Match{Bucket: bucket.Name, Object: info.Key})
			}
		}
	}
	return matches, nil
}

// FormatBuckets renders a bucket listing for terminal output.
func FormatBuckets(buckets []Bucket) string {
	if len(buckets) == 0 {
		return "No buckets found."
	}
	lines := make([]string, 0, len(buckets))
	for _, b := range buckets {
		lines = append(lines, fmt.Sprintf("Bucket Name: %s, Created on: %s", b.Name, b.CreationDate.Format(time.RFC3339)))
	}
	return strings.Join(lines, "\n")
}

// FormatObjects renders an object listing with humanized sizes for terminal
// output. The model-facing tool path serializes raw sizes as JSON instead.
func FormatObjects(bucketName string, objects []Object) string {
	if len(objects) == 0 {
		return fmt.Sprintf("No objects found in bucket %s.", bucketName)
	}
	lines := make([]string, 0, len(objects))
	for _, o := range objects {
		lines = append(lines, fmt.Sprintf("Object Key: %s, Size %s", o.Key, o.HumanSize()))
	}
	return strings.Join(lines, "\n")
}
