package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hhsxp/sla-dashboard/internal/core/domain"
	"github.com/hhsxp/sla-dashboard/internal/core/services"
)

func TestHasEnrichedData(t *testing.T) {
	now := time.Now().UTC()

	t.Run("false for empty dataset", func(t *testing.T) {
		assert.False(t, services.HasEnrichedData(nil))
		assert.False(t, services.HasEnrichedData([]domain.TicketRecord{}))
	})

	t.Run("false when no record has enrichment fields", func(t *testing.T) {
		records := []domain.TicketRecord{
			{Cliente: "A", Horas: 10},
			{Cliente: "B", Valor: 50},
		}
		assert.False(t, services.HasEnrichedData(records))
	})

	t.Run("true when any record has any enrichment field", func(t *testing.T) {
		cases := map[string]domain.TicketRecord{
			"open date":  {DataAbertura: &now},
			"close date": {DataFechamento: &now},
			"analyst":    {Analista: "Maria"},
			"sla status": {StatusSLA: "Atingido"},
			"type":       {TipoTicket: "Incidente"},
		}

		for name, enriched := range cases {
			t.Run(name, func(t *testing.T) {
				records := []domain.TicketRecord{
					{Cliente: "A"},
					enriched,
					{Cliente: "B"},
				}
				assert.True(t, services.HasEnrichedData(records))
			})
		}
	})
}
