package service

import "io"

// ImageStore persists uploaded product images and yields the URL path they
// are served from. A nil upload resolves to the configured placeholder URL.
type ImageStore interface {
	// Save writes the upload to storage under a collision-free name derived
	// from filename and returns its public URL path.
	Save(filename string, content io.Reader) (string, error)

	// DefaultURL returns the placeholder image URL used when no image is
	// supplied.
	DefaultURL() string
}
