package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/apdd/apdd-server/internal/logger"
	"github.com/apdd/apdd-server/internal/model"
)

// Lead handles public contact submissions and the authenticated lead listing.
type Lead struct {
	store  model.LeadStore
	logger *logger.Logger
}

func NewLead(store model.LeadStore, logger *logger.Logger) *Lead {
	return &Lead{
		store:  store,
		logger: logger,
	}
}

// Submit validates and persists an inbound contact submission. Validation
// runs before any persistence call; name, email and message must be non-empty
// after trimming.
func (s *Lead) Submit(ctx context.Context, params model.SubmitLeadParams) error {
	lead := model.Lead{
		Name:      strings.TrimSpace(params.Name),
		Email:     strings.TrimSpace(params.Email),
		Company:   strings.TrimSpace(params.Company),
		Message:   strings.TrimSpace(params.Message),
		IP:        params.IP,
		UserAgent: params.UserAgent,
	}

	if lead.Name == "" || lead.Email == "" || lead.Message == "" {
		return fmt.Errorf("%w: name, email and message are required", model.ErrInvalidInput)
	}

	saved, err := s.store.Create(ctx, lead)
	if err != nil {
		return fmt.Errorf("failed to create lead: %w", err)
	}

	s.logger.Info("Lead service: lead captured", "lead_id", saved.ID)
	return nil
}

// List returns all leads, newest first.
func (s *Lead) List(ctx context.Context) ([]model.Lead, error) {
	leads, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get leads: %w", err)
	}

	return leads, nil
}
