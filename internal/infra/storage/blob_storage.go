// Package storage implements FileStorage on a gocloud.dev blob bucket.
package storage

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"path"
	"strings"

	"bureau/config"
	"bureau/internal/domain/lifecycle"
	"bureau/internal/domain/service"
	"bureau/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// bucket URLs for local development
	"gocloud.dev/gcerrors"
)

// blobFileStorage stores uploaded documents in a blob bucket and derives
// object keys from the content checksum, so re-uploading the same file is
// idempotent.
type blobFileStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and returns the FileStorage implementation.
func New(params Params) (service.FileStorage, error) {
	cfg := params.Config.Storage
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("storage bucket URL is required")
	}

	openCtx, cancel := context.WithTimeout(params.Ctx, lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(openCtx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &blobFileStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(cfg.PublicBaseURL, "/"),
		logger:        params.Logger,
	}, nil
}

// Save writes the content under a checksum-derived key and returns the
// public URL to record on the customer.
func (s *blobFileStorage) Save(ctx context.Context, name, contentType string, content io.Reader) (string, error) {
	data, err := io.ReadAll(content)
	if err != nil {
		return "", errors.Wrap(err, "failed to read upload content")
	}

	checksum, err := util.CalculateChecksum(bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	key := checksum[:16] + strings.ToLower(path.Ext(name))

	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to open writer for %s", key)
	}
	if _, err := writer.Write(data); err != nil {
		writer.Close()

		return "", errors.Wrapf(err, "failed to write %s", key)
	}
	if err := writer.Close(); err != nil {
		return "", errors.Wrapf(err, "failed to finish writing %s", key)
	}

	s.logger.Info("Stored uploaded document",
		slog.String("key", key),
		slog.String("size", util.FormatBytes(int64(len(data)))),
	)

	return s.publicBaseURL + "/" + key, nil
}

// Delete removes a previously stored object by its public URL. URLs outside
// this store and already-removed objects are ignored.
func (s *blobFileStorage) Delete(ctx context.Context, url string) error {
	if !strings.HasPrefix(url, s.publicBaseURL+"/") {
		return nil
	}
	key := strings.TrimPrefix(url, s.publicBaseURL+"/")

	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrapf(err, "failed to delete %s", key)
	}

	return nil
}

// Module provides the storage FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
