package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hhsxp/sla-dashboard/internal/core/domain"
	apperrors "github.com/hhsxp/sla-dashboard/internal/core/errors"
	"github.com/hhsxp/sla-dashboard/internal/core/ports"
)

// VersionStore is an in-memory version history used when no database is
// configured. Appends are serialized by the mutex (single writer) and the
// slice is kept most-recent-first, mirroring the durable store contract.
type VersionStore struct {
	mu       sync.RWMutex
	versions []*domain.Version
}

var _ ports.VersionRepository = (*VersionStore)(nil)

func NewVersionStore() *VersionStore {
	return &VersionStore{versions: make([]*domain.Version, 0)}
}

func (s *VersionStore) Save(ctx context.Context, records []domain.TicketRecord, report *domain.StatisticsReport) (*domain.Version, error) {
	version := &domain.Version{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Records:   records,
		Report:    report,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.versions = append([]*domain.Version{version}, s.versions...)
	return version, nil
}

func (s *VersionStore) List(ctx context.Context) ([]*domain.Version, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.Version, len(s.versions))
	copy(out, s.versions)
	return out, nil
}

func (s *VersionStore) Latest(ctx context.Context) (*domain.Version, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.versions) == 0 {
		return nil, apperrors.ErrVersionNotFound
	}
	return s.versions[0], nil
}

func (s *VersionStore) GetByID(ctx context.Context, id string) (*domain.Version, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, v := range s.versions {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, apperrors.ErrVersionNotFound
}
