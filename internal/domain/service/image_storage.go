package service

import (
	"context"
	"io"
)

// ImageStorage is the external image host: it stores uploaded profile images
// and returns a publicly reachable URL for each one.
type ImageStorage interface {
	// Upload stores the image bytes under a fresh key and returns the public
	// URL. The implementation applies its own deadline on top of ctx.
	Upload(ctx context.Context, filename string, contentType string, body io.Reader) (string, error)
}
