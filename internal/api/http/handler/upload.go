package handler

import (
	"context"
	"io"
	"net/http"

	"github.com/apdd/apdd-server/internal/logger"
)

// maxUploadSize bounds a cover image upload.
const maxUploadSize = 10 << 20 // 10 MiB

// UploadService stores cover images and returns their public URL.
type UploadService interface {
	Store(ctx context.Context, filename string, reader io.Reader, size int64, contentType string) (string, error)
}

// Upload handles cover image uploads. The service is nil when object storage
// is not configured; the route then answers 503.
type Upload struct {
	uploadService UploadService
	logger        *logger.Logger
}

// NewUpload creates a new Upload handler.
func NewUpload(uploadService UploadService, logger *logger.Logger) *Upload {
	return &Upload{
		uploadService: uploadService,
		logger:        logger,
	}
}

// Store accepts a multipart form with a "file" field and returns the public
// URL of the stored image.
func (h *Upload) Store(w http.ResponseWriter, r *http.Request) {
	if h.uploadService == nil {
		respondError(w, http.StatusServiceUnavailable, "Upload de imagens indisponível")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondError(w, http.StatusBadRequest, "Arquivo de imagem é obrigatório")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Arquivo de imagem é obrigatório")
		return
	}
	defer file.Close()

	url, err := h.uploadService.Store(r.Context(), header.Filename, file, header.Size, header.Header.Get("Content-Type"))
	if err != nil {
		h.logger.Error("Upload handler: store failed", "filename", header.Filename, "error", err.Error())
		respondServiceError(w, err, errorMessages{
			invalid: "Formato de imagem não suportado",
			store:   "Erro ao enviar imagem",
		})
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"ok": true, "url": url})
}
