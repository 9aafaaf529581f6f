package storage

import (
	"context"
	"net/url"
	"strings"
	"time"
)

// Default expiry duration for presigned URLs
const DefaultPresignedURLExpiry = 15 * time.Minute

// VideoObjectPrefix is the key prefix under which exercise demo videos are
// stored in the bucket.
const VideoObjectPrefix = "exercise-videos/"

// VideoObjectKey extracts the bucket object key from a video URL issued by
// this service. External URLs (anything not carrying the video prefix in
// its path) return false; their objects are not ours to delete.
func VideoObjectKey(rawURL string) (string, bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}
	// Path-style bucket URLs carry the bucket segment before the key.
	if i := strings.Index(u.Path, VideoObjectPrefix); i >= 0 {
		return u.Path[i:], true
	}
	return "", false
}

// FileStorage defines the interface for object storage operations. It backs
// the exercise demo-video flow: clients upload directly to the bucket via a
// presigned PUT and reference the object from the exercise's videoUrl.
type FileStorage interface {
	// GeneratePresignedUploadURL creates a temporary URL that allows PUT
	// requests for uploading an object directly to the storage provider.
	GeneratePresignedUploadURL(ctx context.Context, objectKey string, contentType string, expires time.Duration) (string, error)

	// GeneratePresignedDownloadURL creates a temporary URL that allows GET
	// requests for downloading/viewing an object.
	GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error)

	// DeleteObject removes an object from the storage provider.
	DeleteObject(ctx context.Context, objectKey string) error
}
