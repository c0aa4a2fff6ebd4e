package services

import (
	"github.com/hhsxp/sla-dashboard/internal/core/domain"
)

// Simulated baseline returned whenever the dataset is not enriched. This is
// a deliberate placeholder policy inherited from the dashboard: the UI always
// has SLA/lead-time/analyst values to render, and consumers distinguish real
// from simulated via the has_enriched_data flag. The constants must not
// drift.
var (
	simulatedSLA = domain.SLAStats{
		Atingido:              80,
		Violado:               20,
		PercentualAtingimento: 80,
	}

	simulatedLeadTimeMedio = 24.0

	simulatedLeadTimePorServico = map[string]float64{
		"Suporte":            18,
		"Táxi":               12,
		"Portal de negócios": 36,
		"Survey":             24,
		"Sob demanda":        48,
	}

	simulatedAtendimentos = map[string]int{
		"Analista 1": 5,
		"Analista 2": 3,
		"Analista 3": 2,
	}

	simulatedSLAPorAnalista = map[string]domain.AnalistaSLA{
		"Analista 1": {Atingido: 4, Violado: 1},
		"Analista 2": {Atingido: 2, Violado: 1},
		"Analista 3": {Atingido: 2, Violado: 0},
	}
)

// Aggregates is the raw bundle of derived statistics computed from one
// normalized dataset. The Report Assembler turns it into the public report.
type Aggregates struct {
	TotalRecords    int
	HorasTotal      float64
	ValorTotal      float64
	ClienteStats    map[string]int
	ServicoStats    map[string]int
	TriboStats      map[string]int
	HorasPorCliente map[string]float64
	ValorPorCliente map[string]float64
	MediaHoras      map[string]float64
	Eficiencia      map[string]float64
	SLA             domain.SLAStats
	LeadTime        domain.LeadTimeStats
	Analistas       domain.AnalistaStats
}

// Aggregate computes all derived statistics in a single deterministic pass
// over the records. Grouped counters and sums always come from real data;
// SLA, lead-time and analyst figures fork on the enrichment flag and fall
// back to the simulated baseline for basic datasets. Duplicate keys
// accumulate by addition, and no result depends on input row order.
func Aggregate(records []domain.TicketRecord, enriched bool) Aggregates {
	agg := Aggregates{
		TotalRecords:    len(records),
		ClienteStats:    make(map[string]int),
		ServicoStats:    make(map[string]int),
		TriboStats:      make(map[string]int),
		HorasPorCliente: make(map[string]float64),
		ValorPorCliente: make(map[string]float64),
		MediaHoras:      make(map[string]float64),
		Eficiencia:      make(map[string]float64),
	}

	apontamentosPorCliente := make(map[string]float64)

	for i := range records {
		r := &records[i]

		agg.HorasTotal += r.Horas
		agg.ValorTotal += r.Valor

		if r.Cliente != "" {
			agg.ClienteStats[r.Cliente]++
			agg.HorasPorCliente[r.Cliente] += r.Horas
			agg.ValorPorCliente[r.Cliente] += r.Valor
			apontamentosPorCliente[r.Cliente] += r.Apontamentos
		}
		if r.Servico != "" {
			agg.ServicoStats[r.Servico]++
		}
		if r.Tribo != "" {
			agg.TriboStats[r.Tribo]++
		}
	}

	// Efficiency: logged entries per worked hour, 0-safe per client.
	for cliente, count := range agg.ClienteStats {
		horas := agg.HorasPorCliente[cliente]
		if horas > 0 {
			agg.Eficiencia[cliente] = apontamentosPorCliente[cliente] / horas
		} else {
			agg.Eficiencia[cliente] = 0
		}
		if count > 0 {
			agg.MediaHoras[cliente] = horas / float64(count)
		}
	}

	if enriched {
		agg.SLA = aggregateSLA(records)
		agg.LeadTime = aggregateLeadTime(records)
		agg.Analistas = aggregateAnalistas(records)
	} else {
		agg.SLA = simulatedSLA
		agg.LeadTime = domain.LeadTimeStats{
			Medio:      simulatedLeadTimeMedio,
			PorServico: copyFloatMap(simulatedLeadTimePorServico),
		}
		agg.Analistas = domain.AnalistaStats{
			AtendimentosPorAnalista: copyIntMap(simulatedAtendimentos),
			SLAPorAnalista:          copySLAMap(simulatedSLAPorAnalista),
		}
	}

	return agg
}

// aggregateSLA counts strict Atingido/Violado matches. Records with any
// other or absent status are excluded from both counters.
func aggregateSLA(records []domain.TicketRecord) domain.SLAStats {
	var stats domain.SLAStats
	for i := range records {
		switch domain.SLAStatus(records[i].StatusSLA) {
		case domain.SLAAtingido:
			stats.Atingido++
		case domain.SLAViolado:
			stats.Violado++
		}
	}
	if total := stats.Atingido + stats.Violado; total > 0 {
		stats.PercentualAtingimento = float64(stats.Atingido) / float64(total) * 100
	}
	return stats
}

func aggregateLeadTime(records []domain.TicketRecord) domain.LeadTimeStats {
	var (
		sum   float64
		count int
	)
	porServico := make(map[string]struct {
		total float64
		count int
	})

	for i := range records {
		r := &records[i]
		hours, ok := r.LeadTimeHours()
		if !ok {
			continue
		}
		sum += hours
		count++

		if r.Servico != "" {
			acc := porServico[r.Servico]
			acc.total += hours
			acc.count++
			porServico[r.Servico] = acc
		}
	}

	stats := domain.LeadTimeStats{PorServico: make(map[string]float64, len(porServico))}
	if count > 0 {
		stats.Medio = sum / float64(count)
	}
	for servico, acc := range porServico {
		if acc.count > 0 {
			stats.PorServico[servico] = acc.total / float64(acc.count)
		}
	}
	return stats
}

// aggregateAnalistas counts every record with a non-empty analyst field,
// regardless of SLA status; the per-analyst SLA split reuses the strict
// status equality rule.
func aggregateAnalistas(records []domain.TicketRecord) domain.AnalistaStats {
	stats := domain.AnalistaStats{
		AtendimentosPorAnalista: make(map[string]int),
		SLAPorAnalista:          make(map[string]domain.AnalistaSLA),
	}

	for i := range records {
		r := &records[i]
		if r.Analista == "" {
			continue
		}
		stats.AtendimentosPorAnalista[r.Analista]++

		sla := stats.SLAPorAnalista[r.Analista]
		switch domain.SLAStatus(r.StatusSLA) {
		case domain.SLAAtingido:
			sla.Atingido++
		case domain.SLAViolado:
			sla.Violado++
		}
		stats.SLAPorAnalista[r.Analista] = sla
	}
	return stats
}

func copyIntMap(src map[string]int) map[string]int {
	dst := make(map[string]int, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func copyFloatMap(src map[string]float64) map[string]float64 {
	dst := make(map[string]float64, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func copySLAMap(src map[string]domain.AnalistaSLA) map[string]domain.AnalistaSLA {
	dst := make(map[string]domain.AnalistaSLA, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
