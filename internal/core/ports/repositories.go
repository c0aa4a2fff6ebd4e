package ports

import (
	"context"
	"io"

	"github.com/hhsxp/sla-dashboard/internal/core/domain"
)

// VersionRepository is the port for the version store. Implementations must
// list most-recent-first; saves are the only mutation and are serialized by
// the implementation (single writer).
type VersionRepository interface {
	Save(ctx context.Context, records []domain.TicketRecord, report *domain.StatisticsReport) (*domain.Version, error)
	List(ctx context.Context) ([]*domain.Version, error)
	Latest(ctx context.Context) (*domain.Version, error)
	GetByID(ctx context.Context, id string) (*domain.Version, error)
}

// SheetCodec is the port for reading and writing tabular spreadsheet files.
// Parse returns the first sheet as a raw table, header row first; it fails
// with errors.ErrNoSheet when the workbook has no readable sheet. Export
// serializes records back to spreadsheet bytes with canonical headers.
type SheetCodec interface {
	Parse(r io.Reader) ([][]string, error)
	Export(records []domain.TicketRecord) ([]byte, error)
}
