package service

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/apdd/apdd-server/internal/logger"
	"github.com/apdd/apdd-server/internal/model"
)

var allowedImageTypes = map[string]struct{}{
	"image/jpeg":    {},
	"image/png":     {},
	"image/gif":     {},
	"image/webp":    {},
	"image/svg+xml": {},
}

// Upload stores post cover images in object storage and hands back the
// public URL to embed in a post.
type Upload struct {
	storage model.Storage
	logger  *logger.Logger
}

func NewUpload(storage model.Storage, logger *logger.Logger) *Upload {
	return &Upload{
		storage: storage,
		logger:  logger,
	}
}

// Store uploads an image under a random key and returns its public URL.
func (s *Upload) Store(ctx context.Context, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	if _, ok := allowedImageTypes[contentType]; !ok {
		return "", fmt.Errorf("%w: unsupported image type %q", model.ErrInvalidInput, contentType)
	}

	ext := strings.ToLower(path.Ext(filename))
	key := fmt.Sprintf("covers/%s%s", uuid.NewString(), ext)

	if err := s.storage.Upload(ctx, key, reader, size, contentType); err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	url := s.storage.URL(key)
	s.logger.Info("Upload service: cover image stored", "key", key)
	return url, nil
}
