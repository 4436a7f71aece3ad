package handler

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"strings"

	"github.com/apdd/apdd-server/internal/logger"
	"github.com/apdd/apdd-server/internal/model"
)

// LeadService defines lead capture and listing operations.
type LeadService interface {
	Submit(ctx context.Context, params model.SubmitLeadParams) error
	List(ctx context.Context) ([]model.Lead, error)
}

// Lead handles the public contact endpoint and the admin lead listing.
type Lead struct {
	leadService LeadService
	logger      *logger.Logger
}

// NewLead creates a new Lead handler.
func NewLead(leadService LeadService, logger *logger.Logger) *Lead {
	return &Lead{
		leadService: leadService,
		logger:      logger,
	}
}

type submitLeadRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
	Message string `json:"message"`
}

// Submit accepts a public contact submission. No authentication; throttling
// is the rate-limit middleware's job.
func (h *Lead) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Campos obrigatórios: nome, e-mail e mensagem.")
		return
	}

	err := h.leadService.Submit(r.Context(), model.SubmitLeadParams{
		Name:      req.Name,
		Email:     req.Email,
		Company:   req.Company,
		Message:   req.Message,
		IP:        clientIP(r),
		UserAgent: r.UserAgent(),
	})
	if err != nil {
		h.logger.Error("Lead handler: submit failed", "error", err.Error())
		respondServiceError(w, err, errorMessages{
			invalid: "Campos obrigatórios: nome, e-mail e mensagem.",
			store:   "Erro ao salvar contato",
		})
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"ok":      true,
		"message": "Recebemos seu contato! Em breve retornaremos.",
	})
}

// List returns all leads, newest first.
func (h *Lead) List(w http.ResponseWriter, r *http.Request) {
	leads, err := h.leadService.List(r.Context())
	if err != nil {
		h.logger.Error("Lead handler: list failed", "error", err.Error())
		respondError(w, http.StatusInternalServerError, "Erro ao carregar leads")
		return
	}

	if leads == nil {
		leads = []model.Lead{}
	}
	respondJSON(w, http.StatusOK, map[string]any{"ok": true, "leads": leads})
}

// clientIP returns the originating address, preferring the first
// X-Forwarded-For hop set by the reverse proxy.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if idx := strings.IndexByte(fwd, ','); idx >= 0 {
			return strings.TrimSpace(fwd[:idx])
		}
		return strings.TrimSpace(fwd)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
