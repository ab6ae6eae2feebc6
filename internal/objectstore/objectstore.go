// Package objectstore keeps uploaded images (tussle photos, receipt scans)
// on the local filesystem and serves them under public URLs.
package objectstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	svg "github.com/h2non/go-is-svg"
)

const (
	BucketTussleImages = "tussle-images"
	BucketReceipts     = "receipts"

	// MaxUploadSize is the largest accepted upload in bytes.
	MaxUploadSize = 5 << 20

	// PublicPrefix is the URL path the handler is mounted on.
	PublicPrefix = "/storage/"
)

var (
	ErrNotImage      = errors.New("only image files are allowed")
	ErrTooLarge      = errors.New("image size must be less than 5MB")
	ErrUnknownBucket = errors.New("unknown bucket")
	ErrInvalidPath   = errors.New("invalid object path")

	// ErrForeignURL is returned when a URL does not point into the bucket.
	ErrForeignURL = errors.New("url does not belong to bucket")
)

var buckets = map[string]bool{
	BucketTussleImages: true,
	BucketReceipts:     true,
}

var extensions = map[string]string{
	"image/png":     ".png",
	"image/jpeg":    ".jpg",
	"image/gif":     ".gif",
	"image/webp":    ".webp",
	"image/bmp":     ".bmp",
	"image/svg+xml": ".svg",
}

// now is replaceable in tests.
var now = time.Now

// Store is a filesystem-backed object store.
type Store struct {
	root    string
	baseURL string
}

// New creates a store rooted at dir. Public URLs are baseURL followed by
// PublicPrefix; baseURL may be empty for host-relative URLs.
func New(dir, baseURL string) (*Store, error) {
	for b := range buckets {
		if err := os.MkdirAll(filepath.Join(dir, b), 0755); err != nil {
			return nil, fmt.Errorf("failed to create bucket directory: %w", err)
		}
	}
	return &Store{root: dir, baseURL: strings.TrimSuffix(baseURL, "/")}, nil
}

// DetectContentType returns the MIME type of data.
func DetectContentType(data []byte) string {
	// http.DetectContentType does not recognize svg
	if svg.IsSVG(data) {
		return "image/svg+xml"
	}
	return http.DetectContentType(data)
}

// Validate checks that data is an image no larger than MaxUploadSize.
func Validate(data []byte) (contentType string, err error) {
	if len(data) > MaxUploadSize {
		return "", ErrTooLarge
	}
	contentType = DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return "", fmt.Errorf("%w: got %s", ErrNotImage, contentType)
	}
	return contentType, nil
}

// Upload stores data in bucket under a fresh unique name and returns its
// public URL. The stored extension follows the sniffed content type; name
// is only logged.
func (s *Store) Upload(ctx context.Context, bucket, name string, data []byte) (string, error) {
	if !buckets[bucket] {
		return "", fmt.Errorf("%w: %s", ErrUnknownBucket, bucket)
	}
	contentType, err := Validate(data)
	if err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	object := fmt.Sprintf("%s_%d%s", uuid.New().String(), now().UnixMilli(), extensions[contentType])

	if err := os.WriteFile(filepath.Join(s.root, bucket, object), data, 0644); err != nil {
		return "", fmt.Errorf("failed to write object: %w", err)
	}

	slog.Info("Object uploaded", "bucket", bucket, "object", object, "name", name, "content_type", contentType, "size", len(data))
	return s.URL(bucket, object), nil
}

// URL returns the public URL of an object.
func (s *Store) URL(bucket, object string) string {
	return s.baseURL + PublicPrefix + bucket + "/" + object
}

// Delete removes an object. Deleting a missing object is not an error.
func (s *Store) Delete(ctx context.Context, bucket, object string) error {
	if !buckets[bucket] {
		return fmt.Errorf("%w: %s", ErrUnknownBucket, bucket)
	}
	if object == "" || object != path.Base(object) || object == "." || object == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidPath, object)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	err := os.Remove(filepath.Join(s.root, bucket, object))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}

// DeleteURL removes the object a public URL points at.
func (s *Store) DeleteURL(ctx context.Context, bucket, url string) error {
	object, err := PathFromURL(bucket, url)
	if err != nil {
		return err
	}
	return s.Delete(ctx, bucket, object)
}

// PathFromURL extracts the object path from a public URL by locating the
// "/<bucket>/" segment.
func PathFromURL(bucket, url string) (string, error) {
	marker := "/" + bucket + "/"
	i := strings.Index(url, marker)
	if i < 0 {
		return "", fmt.Errorf("%w: %s", ErrForeignURL, bucket)
	}
	object := url[i+len(marker):]
	if j := strings.IndexAny(object, "?#"); j >= 0 {
		object = object[:j]
	}
	if object == "" {
		return "", fmt.Errorf("%w: %s", ErrForeignURL, bucket)
	}
	return object, nil
}

// Handler serves stored objects read-only. Mount it on PublicPrefix.
func (s *Store) Handler() http.Handler {
	files := http.StripPrefix(PublicPrefix, http.FileServer(http.Dir(s.root)))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		if strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("Content-Security-Policy", "default-src 'none'; style-src 'unsafe-inline'; sandbox")
		files.ServeHTTP(w, r)
	})
}
