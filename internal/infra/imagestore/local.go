// Package imagestore persists uploaded product images on the local file system.
package imagestore

import (
	"io"
	"os"
	"path/filepath"

	"marketplace/config"
	"marketplace/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// localImageStore writes uploads under the configured folder and serves them
// by URL path. Orphaned files from failed follow-up writes are not cleaned up.
type localImageStore struct {
	folder     string
	defaultURL string
}

// NewLocalImageStore is the constructor for localImageStore.
func NewLocalImageStore(cfg *config.Config) service.ImageStore {
	return &localImageStore{
		folder:     cfg.Uploads.Folder,
		defaultURL: cfg.Uploads.DefaultImageURL,
	}
}

// Save stores the upload under a random, collision-free name and returns the
// URL path it will be served from.
func (s *localImageStore) Save(filename string, content io.Reader) (string, error) {
	if err := os.MkdirAll(s.folder, 0o755); err != nil {
		return "", errors.Wrap(err, "failed to create upload folder")
	}

	// Prefix with a random token so identical upload names never collide.
	stored := uuid.NewString() + "_" + filepath.Base(filename)
	path := filepath.Join(s.folder, stored)

	dst, err := os.Create(path)
	if err != nil {
		return "", errors.Wrap(err, "failed to create image file")
	}
	defer dst.Close()

	if _, err := io.Copy(dst, content); err != nil {
		return "", errors.Wrap(err, "failed to write image file")
	}

	return "/" + filepath.ToSlash(filepath.Join(s.folder, stored)), nil
}

// DefaultURL returns the placeholder image URL.
func (s *localImageStore) DefaultURL() string {
	return s.defaultURL
}
