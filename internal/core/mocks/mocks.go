package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/hhsxp/sla-dashboard/internal/core/domain"
)

// MockVersionRepository is a mock implementation of ports.VersionRepository
type MockVersionRepository struct {
	mock.Mock
}

func NewMockVersionRepository() *MockVersionRepository {
	return &MockVersionRepository{}
}

func (m *MockVersionRepository) Save(ctx context.Context, records []domain.TicketRecord, report *domain.StatisticsReport) (*domain.Version, error) {
	args := m.Called(ctx, records, report)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Version), args.Error(1)
}

func (m *MockVersionRepository) List(ctx context.Context) ([]*domain.Version, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Version), args.Error(1)
}

func (m *MockVersionRepository) Latest(ctx context.Context) (*domain.Version, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Version), args.Error(1)
}

func (m *MockVersionRepository) GetByID(ctx context.Context, id string) (*domain.Version, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Version), args.Error(1)
}

// MockSheetCodec is a mock implementation of ports.SheetCodec
type MockSheetCodec struct {
	mock.Mock
}

func NewMockSheetCodec() *MockSheetCodec {
	return &MockSheetCodec{}
}

func (m *MockSheetCodec) Parse(r io.Reader) ([][]string, error) {
	args := m.Called(r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([][]string), args.Error(1)
}

func (m *MockSheetCodec) Export(records []domain.TicketRecord) ([]byte, error) {
	args := m.Called(records)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
