package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hhsxp/sla-dashboard/internal/core/domain"
	"github.com/hhsxp/sla-dashboard/internal/core/ports"
)

// VersionHandler serves the stored upload history
type VersionHandler struct {
	reportService ports.ReportService
	errorHandler  *ErrorHandler
	logger        *slog.Logger
}

// NewVersionHandler creates a new version handler
func NewVersionHandler(reportService ports.ReportService, errorHandler *ErrorHandler, logger *slog.Logger) *VersionHandler {
	return &VersionHandler{
		reportService: reportService,
		errorHandler:  errorHandler,
		logger:        logger.With("handler", "version"),
	}
}

// RegisterRoutes sets up the routing for all version endpoints.
func (h *VersionHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.HandleListVersions)
	r.Get("/latest", h.HandleLatestVersion)
	r.Get("/{versionID}", h.HandleGetVersion)
}

// VersionSummaryDTO lists a version without its record payload.
type VersionSummaryDTO struct {
	ID        string `json:"id"`
	CreatedAt string `json:"ts"`
	Records   int    `json:"recordCount"`
}

// VersionDTO is the full version payload.
type VersionDTO struct {
	ID        string                   `json:"id"`
	CreatedAt string                   `json:"ts"`
	Data      []domain.TicketRecord    `json:"data"`
	Stats     *domain.StatisticsReport `json:"stats"`
}

func toVersionSummaryDTO(v *domain.Version) VersionSummaryDTO {
	return VersionSummaryDTO{
		ID:        v.ID,
		CreatedAt: v.CreatedAt.Format(time.RFC3339),
		Records:   len(v.Records),
	}
}

func toVersionDTO(v *domain.Version) VersionDTO {
	return VersionDTO{
		ID:        v.ID,
		CreatedAt: v.CreatedAt.Format(time.RFC3339),
		Data:      v.Records,
		Stats:     v.Report,
	}
}

// HandleListVersions handles GET /versions (most recent first)
func (h *VersionHandler) HandleListVersions(w http.ResponseWriter, r *http.Request) {
	versions, err := h.reportService.ListVersions(r.Context())
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	summaries := make([]VersionSummaryDTO, 0, len(versions))
	for _, v := range versions {
		summaries = append(summaries, toVersionSummaryDTO(v))
	}
	WriteList(w, summaries)
}

// HandleLatestVersion handles GET /versions/latest
func (h *VersionHandler) HandleLatestVersion(w http.ResponseWriter, r *http.Request) {
	version, err := h.reportService.LatestVersion(r.Context())
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, toVersionDTO(version))
}

// HandleGetVersion handles GET /versions/{versionID}
func (h *VersionHandler) HandleGetVersion(w http.ResponseWriter, r *http.Request) {
	versionID := chi.URLParam(r, "versionID")

	version, err := h.reportService.GetVersion(r.Context(), versionID)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, toVersionDTO(version))
}
