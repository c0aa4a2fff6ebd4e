package services

import "github.com/hhsxp/sla-dashboard/internal/core/domain"

// AssembleReport combines the aggregate bundle and the enrichment flag into
// the immutable StatisticsReport. It adds nothing computationally; its job is
// shape stability: every field of the report is populated and every map is
// non-nil even when the upstream dataset was empty, so presentation code
// never null-checks.
func AssembleReport(agg Aggregates, enriched bool) *domain.StatisticsReport {
	report := &domain.StatisticsReport{
		Basic: domain.BasicStats{
			TotalProjetos: agg.TotalRecords,
			TotalHoras:    agg.HorasTotal,
			ValorTotal:    agg.ValorTotal,
		},
		ClienteStats:         agg.ClienteStats,
		ServicoStats:         agg.ServicoStats,
		TriboStats:           agg.TriboStats,
		HorasPorCliente:      agg.HorasPorCliente,
		ValorPorCliente:      agg.ValorPorCliente,
		MediaHorasPorCliente: agg.MediaHoras,
		Eficiencia:           agg.Eficiencia,
		SLA:                  agg.SLA,
		LeadTime:             agg.LeadTime,
		Analistas:            agg.Analistas,
		HasEnrichedData:      enriched,
	}

	if report.ClienteStats == nil {
		report.ClienteStats = map[string]int{}
	}
	if report.ServicoStats == nil {
		report.ServicoStats = map[string]int{}
	}
	if report.TriboStats == nil {
		report.TriboStats = map[string]int{}
	}
	if report.HorasPorCliente == nil {
		report.HorasPorCliente = map[string]float64{}
	}
	if report.ValorPorCliente == nil {
		report.ValorPorCliente = map[string]float64{}
	}
	if report.MediaHorasPorCliente == nil {
		report.MediaHorasPorCliente = map[string]float64{}
	}
	if report.Eficiencia == nil {
		report.Eficiencia = map[string]float64{}
	}
	if report.LeadTime.PorServico == nil {
		report.LeadTime.PorServico = map[string]float64{}
	}
	if report.Analistas.AtendimentosPorAnalista == nil {
		report.Analistas.AtendimentosPorAnalista = map[string]int{}
	}
	if report.Analistas.SLAPorAnalista == nil {
		report.Analistas.SLAPorAnalista = map[string]domain.AnalistaSLA{}
	}

	return report
}
