// Package storage implements the image host on top of gocloud.dev blob
// buckets, so the same adapter serves S3, GCS or a local directory.
package storage

import (
	"context"
	"io"
	"log/slog"
	"path"
	"strings"
	"time"

	"evently/config"
	"evently/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Bucket URL schemes supported out of the box.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/s3blob"
)

const avatarKeyPrefix = "avatars"

// blobImageStorage stores profile images in a blob bucket and serves them
// from a public base URL.
type blobImageStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	uploadTimeout time.Duration
	logger        *slog.Logger
}

// disabledImageStorage rejects every upload; used when no bucket is configured.
type disabledImageStorage struct{}

func (disabledImageStorage) Upload(context.Context, string, string, io.Reader) (string, error) {
	return "", errors.New("image storage is not configured")
}

// StorageParams holds dependencies for the image storage, injected by Fx.
type StorageParams struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewBlobImageStorage opens the configured bucket URL and returns the image
// host adapter. When storage is unconfigured, registration still works but
// any supplied image fails the request with the upload error.
func NewBlobImageStorage(params StorageParams) (service.ImageStorage, error) {
	cfg := params.Config.Storage
	if cfg == nil || cfg.BucketURL == "" {
		params.Logger.Info("Image storage not configured, uploads will be rejected")

		return disabledImageStorage{}, nil
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return bucket.Close()
		},
	})

	return newBlobImageStorage(bucket, cfg.PublicBaseURL, cfg.UploadTimeout, params.Logger), nil
}

func newBlobImageStorage(bucket *blob.Bucket, publicBaseURL string, uploadTimeout time.Duration, logger *slog.Logger) service.ImageStorage {
	return &blobImageStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		uploadTimeout: uploadTimeout,
		logger:        logger,
	}
}

// Upload writes the image under a fresh key and returns its public URL.
// The write runs under the configured deadline so a slow image host cannot
// stall registration indefinitely.
func (s *blobImageStorage) Upload(ctx context.Context, filename string, contentType string, body io.Reader) (string, error) {
	if s.uploadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.uploadTimeout)
		defer cancel()
	}

	key := avatarKeyPrefix + "/" + uuid.New().String() + strings.ToLower(path.Ext(filename))

	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to open bucket writer")
	}

	if _, err := io.Copy(writer, body); err != nil {
		// Close discards the partial write on error paths.
		_ = writer.Close()

		return "", errors.Wrap(err, "failed to write image to bucket")
	}

	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finalize image upload")
	}

	s.logger.Debug("Profile image uploaded", slog.String("key", key))

	if s.publicBaseURL == "" {
		return key, nil
	}

	return s.publicBaseURL + "/" + key, nil
}
