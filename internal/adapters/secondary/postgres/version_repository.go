package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hhsxp/sla-dashboard/internal/core/domain"
	apperrors "github.com/hhsxp/sla-dashboard/internal/core/errors"
	"github.com/hhsxp/sla-dashboard/internal/core/ports"
)

// VersionRepository persists upload versions as jsonb payloads. Records and
// report are stored verbatim; versions are append-only and listed newest
// first.
type VersionRepository struct {
	pool *pgxpool.Pool
}

var _ ports.VersionRepository = (*VersionRepository)(nil)

func NewVersionRepository(pool *pgxpool.Pool) *VersionRepository {
	return &VersionRepository{pool: pool}
}

func (r *VersionRepository) Save(ctx context.Context, records []domain.TicketRecord, report *domain.StatisticsReport) (*domain.Version, error) {
	recordsJSON, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("marshal records: %w", err)
	}
	reportJSON, err := json.Marshal(report)
	if err != nil {
		return nil, fmt.Errorf("marshal report: %w", err)
	}

	version := &domain.Version{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Records:   records,
		Report:    report,
	}

	const query = `
INSERT INTO versions (id, created_at, records, report)
VALUES ($1, $2, $3, $4)
`
	if _, err := r.pool.Exec(ctx, query, version.ID, version.CreatedAt, recordsJSON, reportJSON); err != nil {
		return nil, fmt.Errorf("insert version: %w", err)
	}
	return version, nil
}

func (r *VersionRepository) List(ctx context.Context) ([]*domain.Version, error) {
	const query = `
SELECT id, created_at, records, report
FROM versions
ORDER BY created_at DESC, id
`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	versions := make([]*domain.Version, 0)
	for rows.Next() {
		version, err := scanVersion(rows)
		if err != nil {
			return nil, err
		}
		versions = append(versions, version)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return versions, nil
}

func (r *VersionRepository) Latest(ctx context.Context) (*domain.Version, error) {
	const query = `
SELECT id, created_at, records, report
FROM versions
ORDER BY created_at DESC, id
LIMIT 1
`
	row := r.pool.QueryRow(ctx, query)
	version, err := scanVersion(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrVersionNotFound
	}
	if err != nil {
		return nil, err
	}
	return version, nil
}

func (r *VersionRepository) GetByID(ctx context.Context, id string) (*domain.Version, error) {
	const query = `
SELECT id, created_at, records, report
FROM versions
WHERE id = $1
`
	row := r.pool.QueryRow(ctx, query, id)
	version, err := scanVersion(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrVersionNotFound
	}
	if err != nil {
		return nil, err
	}
	return version, nil
}

func scanVersion(row pgx.Row) (*domain.Version, error) {
	var (
		version     domain.Version
		recordsJSON []byte
		reportJSON  []byte
	)
	if err := row.Scan(&version.ID, &version.CreatedAt, &recordsJSON, &reportJSON); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(recordsJSON, &version.Records); err != nil {
		return nil, fmt.Errorf("unmarshal records: %w", err)
	}
	if err := json.Unmarshal(reportJSON, &version.Report); err != nil {
		return nil, fmt.Errorf("unmarshal report: %w", err)
	}
	return &version, nil
}
