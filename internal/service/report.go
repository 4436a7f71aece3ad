package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/apdd/apdd-server/internal/logger"
	"github.com/apdd/apdd-server/internal/model"
)

const (
	statsWindowDays = 7
	chartWindowDays = 30

	// Formats match the pt-BR rendering the admin dashboard expects.
	csvDateFormat   = "02/01/2006 15:04:05"
	chartDateFormat = "02/01/2006"
)

// csvHeader is the fixed first row of a lead export.
var csvHeader = []string{"Nome", "Email", "Empresa", "Mensagem", "Data"}

// utf8BOM makes spreadsheet tools pick the right character set when opening
// the export.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Report aggregates lead and post counters for the admin dashboard and
// serializes leads to CSV. Every call computes fresh; the individual counts
// are deliberately not wrapped in one transaction.
type Report struct {
	leads  model.LeadStore
	posts  model.PostStore
	logger *logger.Logger
}

func NewReport(leads model.LeadStore, posts model.PostStore, logger *logger.Logger) *Report {
	return &Report{
		leads:  leads,
		posts:  posts,
		logger: logger,
	}
}

// Stats returns the four dashboard counters as of query time.
func (s *Report) Stats(ctx context.Context) (model.Stats, error) {
	totalLeads, err := s.leads.Count(ctx)
	if err != nil {
		return model.Stats{}, fmt.Errorf("failed to count leads: %w", err)
	}

	totalPosts, err := s.posts.Count(ctx)
	if err != nil {
		return model.Stats{}, fmt.Errorf("failed to count posts: %w", err)
	}

	publishedPosts, err := s.posts.CountPublished(ctx)
	if err != nil {
		return model.Stats{}, fmt.Errorf("failed to count published posts: %w", err)
	}

	weekAgo := time.Now().AddDate(0, 0, -statsWindowDays)
	leadsLastWeek, err := s.leads.CountSince(ctx, weekAgo)
	if err != nil {
		return model.Stats{}, fmt.Errorf("failed to count recent leads: %w", err)
	}

	return model.Stats{
		TotalLeads:     totalLeads,
		TotalPosts:     totalPosts,
		PublishedPosts: publishedPosts,
		LeadsLastWeek:  leadsLastWeek,
	}, nil
}

// ChartData returns the sparse daily lead series for the trailing 30 days,
// chronologically ascending. Days with no leads are omitted.
func (s *Report) ChartData(ctx context.Context) (model.ChartData, error) {
	since := time.Now().AddDate(0, 0, -chartWindowDays)
	series, err := s.leads.CountPerDay(ctx, since)
	if err != nil {
		return model.ChartData{}, fmt.Errorf("failed to count leads per day: %w", err)
	}

	data := model.ChartData{
		Labels: make([]string, 0, len(series)),
		Values: make([]int, 0, len(series)),
	}
	for _, dc := range series {
		data.Labels = append(data.Labels, dc.Day.Format(chartDateFormat))
		data.Values = append(data.Values, dc.Count)
	}

	return data, nil
}

// WriteCSV writes all leads, newest first, as a BOM-prefixed RFC 4180 CSV.
func (s *Report) WriteCSV(ctx context.Context, w io.Writer) error {
	leads, err := s.leads.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to get leads: %w", err)
	}

	if _, err := w.Write(utf8BOM); err != nil {
		return fmt.Errorf("failed to write BOM: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, lead := range leads {
		row := []string{
			lead.Name,
			lead.Email,
			lead.Company,
			lead.Message,
			lead.CreatedAt.Format(csvDateFormat),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}

	s.logger.Info("Report service: leads exported", "count", len(leads))
	return nil
}
