package report_api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/kalokoh/event-management-system/internal/auth"
	"github.com/kalokoh/event-management-system/internal/logger"
	"github.com/kalokoh/event-management-system/internal/report"
)

type Handler struct {
	ReportService *report.Service
	Logger        *logger.Logger
}

func NewHandler(reportService *report.Service, logger *logger.Logger) *Handler {
	return &Handler{ReportService: reportService, Logger: logger}
}

// RegisterRoutes registers the report route on a chi router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/report", h.GenerateReport)
}

// GenerateReport returns the composed report as plain text. On a
// storage failure the partial report with its error marker is still
// returned; the failure is only logged here.
func (h *Handler) GenerateReport(w http.ResponseWriter, r *http.Request) {
	generatedBy := auth.Username(r.Context())

	text, err := h.ReportService.Generate(r.Context(), time.Now(), generatedBy)
	if err != nil {
		h.Logger.Error("REPORT", "Report generation failed: "+err.Error())
	} else {
		h.Logger.Info("REPORT", "Report generated for "+generatedBy)
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(text))
}
