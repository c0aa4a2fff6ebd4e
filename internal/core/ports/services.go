package ports

import (
	"context"
	"io"

	"github.com/hhsxp/sla-dashboard/internal/core/domain"
)

// UploadResult bundles the outputs of one fully processed upload. Either the
// whole pipeline succeeds and the result is complete, or processing fails
// atomically; partial results are never produced.
type UploadResult struct {
	Records []domain.TicketRecord
	Report  *domain.StatisticsReport
	Version *domain.Version
}

// ReportService defines the ingestion pipeline operations.
type ReportService interface {
	// ProcessUpload runs the full pipeline over raw spreadsheet bytes:
	// parse, normalize, detect enrichment, aggregate, assemble, persist.
	ProcessUpload(ctx context.Context, file io.Reader) (*UploadResult, error)

	// ExportRecords serializes a normalized record set back to spreadsheet
	// bytes for download.
	ExportRecords(ctx context.Context, records []domain.TicketRecord) ([]byte, error)

	ListVersions(ctx context.Context) ([]*domain.Version, error)
	LatestVersion(ctx context.Context) (*domain.Version, error)
	GetVersion(ctx context.Context, id string) (*domain.Version, error)
}
