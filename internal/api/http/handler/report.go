package handler

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/apdd/apdd-server/internal/logger"
	"github.com/apdd/apdd-server/internal/model"
)

// ReportService defines dashboard aggregation and CSV export operations.
type ReportService interface {
	Stats(ctx context.Context) (model.Stats, error)
	ChartData(ctx context.Context) (model.ChartData, error)
	WriteCSV(ctx context.Context, w io.Writer) error
}

// Report handles the admin dashboard endpoints.
type Report struct {
	reportService ReportService
	logger        *logger.Logger
}

// NewReport creates a new Report handler.
func NewReport(reportService ReportService, logger *logger.Logger) *Report {
	return &Report{
		reportService: reportService,
		logger:        logger,
	}
}

// Stats returns the four aggregate counters.
func (h *Report) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.reportService.Stats(r.Context())
	if err != nil {
		h.logger.Error("Report handler: stats failed", "error", err.Error())
		respondError(w, http.StatusInternalServerError, "Erro ao carregar estatísticas")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"ok": true, "stats": stats})
}

// ChartData returns the sparse daily lead series for the trailing 30 days.
func (h *Report) ChartData(w http.ResponseWriter, r *http.Request) {
	data, err := h.reportService.ChartData(r.Context())
	if err != nil {
		h.logger.Error("Report handler: chart data failed", "error", err.Error())
		respondError(w, http.StatusInternalServerError, "Erro ao carregar dados do gráfico")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"ok": true, "chartData": data})
}

// Export streams the lead CSV as a file download. The export is buffered
// first so a store failure can still produce a clean 500.
func (h *Report) Export(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.reportService.WriteCSV(r.Context(), &buf); err != nil {
		h.logger.Error("Report handler: export failed", "error", err.Error())
		respondError(w, http.StatusInternalServerError, "Erro ao exportar leads")
		return
	}

	filename := fmt.Sprintf("leads-%d.csv", time.Now().UnixMilli())
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	_, _ = w.Write(buf.Bytes())
}
