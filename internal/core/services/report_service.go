package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/hhsxp/sla-dashboard/internal/core/domain"
	apperrors "github.com/hhsxp/sla-dashboard/internal/core/errors"
	"github.com/hhsxp/sla-dashboard/internal/core/ports"
)

// ReportService implements the ingestion pipeline: parse, normalize, detect
// enrichment, aggregate, assemble, persist. The pipeline is synchronous and
// pure over in-memory data; the only I/O is reading the upload bytes and
// talking to the version store.
type ReportService struct {
	codec    ports.SheetCodec
	versions ports.VersionRepository
	logger   *slog.Logger
}

var _ ports.ReportService = (*ReportService)(nil)

// NewReportService creates the pipeline service.
func NewReportService(codec ports.SheetCodec, versions ports.VersionRepository, logger *slog.Logger) ports.ReportService {
	return &ReportService{
		codec:    codec,
		versions: versions,
		logger:   logger.With("service", "report"),
	}
}

// ProcessUpload runs the full pipeline over one uploaded file. Either the
// whole upload succeeds and a complete report comes back, or it fails
// atomically; no partial report is ever returned.
func (s *ReportService) ProcessUpload(ctx context.Context, file io.Reader) (*ports.UploadResult, error) {
	table, err := s.codec.Parse(file)
	if err != nil {
		return nil, err
	}

	records := NormalizeTable(table)
	enriched := HasEnrichedData(records)
	report := AssembleReport(Aggregate(records, enriched), enriched)

	version, err := s.versions.Save(ctx, records, report)
	if err != nil {
		return nil, apperrors.NewProcessingError(fmt.Errorf("save version: %w", err))
	}

	s.logger.InfoContext(ctx, "upload processed",
		"records", len(records),
		"enriched", enriched,
		"version_id", version.ID,
	)

	return &ports.UploadResult{
		Records: records,
		Report:  report,
		Version: version,
	}, nil
}

// ExportRecords serializes a normalized record set back to spreadsheet bytes.
func (s *ReportService) ExportRecords(ctx context.Context, records []domain.TicketRecord) ([]byte, error) {
	if len(records) == 0 {
		return nil, apperrors.ErrEmptyRecords
	}
	out, err := s.codec.Export(records)
	if err != nil {
		return nil, apperrors.NewProcessingError(fmt.Errorf("export records: %w", err))
	}
	return out, nil
}

// ListVersions returns the stored versions, most recent first.
func (s *ReportService) ListVersions(ctx context.Context) ([]*domain.Version, error) {
	return s.versions.List(ctx)
}

// LatestVersion returns the most recently saved version.
func (s *ReportService) LatestVersion(ctx context.Context) (*domain.Version, error) {
	return s.versions.Latest(ctx)
}

// GetVersion returns one stored version by its identifier.
func (s *ReportService) GetVersion(ctx context.Context, id string) (*domain.Version, error) {
	if id == "" {
		return nil, apperrors.ErrInvalidVersion
	}
	return s.versions.GetByID(ctx, id)
}
