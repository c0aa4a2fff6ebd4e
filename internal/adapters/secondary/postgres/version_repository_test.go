package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hhsxp/sla-dashboard/internal/core/domain"
	apperrors "github.com/hhsxp/sla-dashboard/internal/core/errors"
)

func sampleRecords() []domain.TicketRecord {
	opened := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	return []domain.TicketRecord{
		{Cliente: "Acme", Tribo: "Payments", Servico: "Suporte", Horas: 10, Valor: 100, DataAbertura: &opened, Analista: "Maria", StatusSLA: "Atingido"},
		{Cliente: "Beta", Horas: 2},
	}
}

func sampleReport() *domain.StatisticsReport {
	return &domain.StatisticsReport{
		Basic:        domain.BasicStats{TotalProjetos: 2, TotalHoras: 12, ValorTotal: 100},
		ClienteStats: map[string]int{"Acme": 1, "Beta": 1},
	}
}

func TestVersionRepository_SaveAndGetByID(t *testing.T) {
	truncateVersions(t)
	repo := NewVersionRepository(testPool)
	ctx := context.Background()

	saved, err := repo.Save(ctx, sampleRecords(), sampleReport())
	require.NoError(t, err)
	require.NotEmpty(t, saved.ID)

	found, err := repo.GetByID(ctx, saved.ID)
	require.NoError(t, err)

	assert.Equal(t, saved.ID, found.ID)
	assert.WithinDuration(t, saved.CreatedAt, found.CreatedAt, time.Millisecond)
	require.Len(t, found.Records, 2)
	assert.Equal(t, "Acme", found.Records[0].Cliente)
	assert.Equal(t, "Atingido", found.Records[0].StatusSLA)
	require.NotNil(t, found.Records[0].DataAbertura)
	assert.True(t, found.Records[0].DataAbertura.Equal(*sampleRecords()[0].DataAbertura))
	require.NotNil(t, found.Report)
	assert.Equal(t, 2, found.Report.Basic.TotalProjetos)
	assert.Equal(t, map[string]int{"Acme": 1, "Beta": 1}, found.Report.ClienteStats)
}

func TestVersionRepository_GetByID_NotFound(t *testing.T) {
	truncateVersions(t)
	repo := NewVersionRepository(testPool)

	found, err := repo.GetByID(context.Background(), "00000000-0000-0000-0000-000000000000")

	assert.Nil(t, found)
	assert.ErrorIs(t, err, apperrors.ErrVersionNotFound)
}

func TestVersionRepository_ListNewestFirst(t *testing.T) {
	truncateVersions(t)
	repo := NewVersionRepository(testPool)
	ctx := context.Background()

	first, err := repo.Save(ctx, sampleRecords(), sampleReport())
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	second, err := repo.Save(ctx, sampleRecords(), sampleReport())
	require.NoError(t, err)

	versions, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, versions, 2)
	assert.Equal(t, second.ID, versions[0].ID)
	assert.Equal(t, first.ID, versions[1].ID)
}

func TestVersionRepository_Latest(t *testing.T) {
	truncateVersions(t)
	repo := NewVersionRepository(testPool)
	ctx := context.Background()

	t.Run("empty table", func(t *testing.T) {
		latest, err := repo.Latest(ctx)
		assert.Nil(t, latest)
		assert.ErrorIs(t, err, apperrors.ErrVersionNotFound)
	})

	t.Run("after saves", func(t *testing.T) {
		_, err := repo.Save(ctx, sampleRecords(), sampleReport())
		require.NoError(t, err)
		time.Sleep(5 * time.Millisecond)
		newest, err := repo.Save(ctx, nil, sampleReport())
		require.NoError(t, err)

		latest, err := repo.Latest(ctx)
		require.NoError(t, err)
		assert.Equal(t, newest.ID, latest.ID)
		assert.Empty(t, latest.Records)
	})
}
