package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hhsxp/sla-dashboard/internal/core/domain"
	apperrors "github.com/hhsxp/sla-dashboard/internal/core/errors"
	"github.com/hhsxp/sla-dashboard/internal/core/ports"
)

// UploadHandler handles spreadsheet uploads
type UploadHandler struct {
	reportService ports.ReportService
	errorHandler  *ErrorHandler
	logger        *slog.Logger
	maxBytes      int64
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(
	reportService ports.ReportService,
	errorHandler *ErrorHandler,
	logger *slog.Logger,
	maxBytes int64,
) *UploadHandler {
	return &UploadHandler{
		reportService: reportService,
		errorHandler:  errorHandler,
		logger:        logger.With("handler", "upload"),
		maxBytes:      maxBytes,
	}
}

// RegisterRoutes sets up the routing for the upload endpoint.
func (h *UploadHandler) RegisterRoutes(r chi.Router) {
	r.Post("/", h.HandleUpload)
}

// UploadResponse is the success payload. The flat stats section is kept for
// consumers that predate allStats.
type UploadResponse struct {
	Message  string                   `json:"message"`
	Data     []domain.TicketRecord    `json:"data"`
	Stats    domain.LegacyStats       `json:"stats"`
	AllStats *domain.StatisticsReport `json:"allStats"`
	Version  string                   `json:"versionId,omitempty"`
}

// HandleUpload handles POST /upload. It expects a single spreadsheet file in
// a multipart body under the "file" field.
func (h *UploadHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		h.errorHandler.Handle(w, r, apperrors.ErrFileRequired)
		return
	}
	defer file.Close()

	result, err := h.reportService.ProcessUpload(r.Context(), file)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	h.logger.Info("upload accepted",
		"filename", header.Filename,
		"size", header.Size,
		"records", len(result.Records),
		"enriched", result.Report.HasEnrichedData,
	)

	response := UploadResponse{
		Message:  "Upload realizado com sucesso",
		Data:     result.Records,
		Stats:    result.Report.Legacy(),
		AllStats: result.Report,
	}
	if result.Version != nil {
		response.Version = result.Version.ID
	}

	WriteJSON(w, http.StatusOK, response)
}
