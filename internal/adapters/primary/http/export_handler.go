package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hhsxp/sla-dashboard/internal/core/domain"
	apperrors "github.com/hhsxp/sla-dashboard/internal/core/errors"
	"github.com/hhsxp/sla-dashboard/internal/core/ports"
)

const exportFilename = "SLA_Data.xlsx"

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler serializes record sets back to spreadsheet form for download
type ExportHandler struct {
	reportService ports.ReportService
	errorHandler  *ErrorHandler
	logger        *slog.Logger
}

// NewExportHandler creates a new export handler
func NewExportHandler(reportService ports.ReportService, errorHandler *ErrorHandler, logger *slog.Logger) *ExportHandler {
	return &ExportHandler{
		reportService: reportService,
		errorHandler:  errorHandler,
		logger:        logger.With("handler", "export"),
	}
}

// RegisterRoutes sets up the routing for export endpoints.
func (h *ExportHandler) RegisterRoutes(r chi.Router) {
	r.Post("/", h.HandleExport)
	r.Get("/latest", h.HandleExportLatest)
}

// ExportRequest carries the records to serialize.
type ExportRequest struct {
	Data []domain.TicketRecord `json:"data"`
}

// HandleExport handles POST /export with a JSON record set in the body.
func (h *ExportHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	var req ExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errorHandler.Handle(w, r, apperrors.NewBadRequestError(err, "Corpo da requisição inválido."))
		return
	}

	out, err := h.reportService.ExportRecords(r.Context(), req.Data)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	h.writeWorkbook(w, out)
}

// HandleExportLatest handles GET /export/latest, exporting the most recently
// saved version.
func (h *ExportHandler) HandleExportLatest(w http.ResponseWriter, r *http.Request) {
	version, err := h.reportService.LatestVersion(r.Context())
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	out, err := h.reportService.ExportRecords(r.Context(), version.Records)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	h.writeWorkbook(w, out)
}

func (h *ExportHandler) writeWorkbook(w http.ResponseWriter, out []byte) {
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+exportFilename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(out)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out)
}
