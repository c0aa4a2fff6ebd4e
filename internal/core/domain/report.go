package domain

import "time"

// BasicStats are the headline counters shown on the dashboard cards.
type BasicStats struct {
	TotalProjetos int     `json:"total_projetos"`
	TotalHoras    float64 `json:"total_horas"`
	ValorTotal    float64 `json:"valor_total"`
}

// SLAStats holds global SLA attainment figures. When the dataset is not
// enriched these are the simulated baseline, never computed from data.
type SLAStats struct {
	Atingido              int     `json:"sla_atingido"`
	Violado               int     `json:"sla_violado"`
	PercentualAtingimento float64 `json:"percentual_atingimento"`
}

// LeadTimeStats holds mean lead time figures in hours.
type LeadTimeStats struct {
	Medio      float64            `json:"lead_time_medio"`
	PorServico map[string]float64 `json:"lead_time_por_servico"`
}

// AnalistaSLA is the per-analyst attained/violated split.
type AnalistaSLA struct {
	Atingido int `json:"atingido"`
	Violado  int `json:"violado"`
}

// AnalistaStats holds per-analyst workload and SLA figures.
type AnalistaStats struct {
	AtendimentosPorAnalista map[string]int         `json:"atendimentos_por_analista"`
	SLAPorAnalista          map[string]AnalistaSLA `json:"sla_por_analista"`
}

// StatisticsReport is the immutable aggregate produced once per upload.
// Every field is always populated (maps are never nil) so presentation code
// does not null-check; a new upload supersedes the report, it is never
// mutated in place.
type StatisticsReport struct {
	Basic                BasicStats         `json:"basic_stats"`
	ClienteStats         map[string]int     `json:"cliente_stats"`
	ServicoStats         map[string]int     `json:"servico_stats"`
	TriboStats           map[string]int     `json:"tribo_stats"`
	HorasPorCliente      map[string]float64 `json:"horas_por_cliente"`
	ValorPorCliente      map[string]float64 `json:"valor_por_cliente"`
	MediaHorasPorCliente map[string]float64 `json:"media_horas_por_cliente"`
	Eficiencia           map[string]float64 `json:"eficiencia"`
	SLA                  SLAStats           `json:"sla_stats"`
	LeadTime             LeadTimeStats      `json:"lead_time"`
	Analistas            AnalistaStats      `json:"analista_stats"`
	HasEnrichedData      bool               `json:"has_enriched_data"`
}

// LegacyStats is the older flat statistics section kept for backward
// compatibility with consumers that predate the full report.
type LegacyStats struct {
	ClienteStats map[string]int `json:"clienteStats"`
	TriboStats   map[string]int `json:"triboStats"`
	HorasTotal   float64        `json:"horasTotal"`
	ValorTotal   float64        `json:"valorTotal"`
}

// Legacy projects the flat statistics section out of a full report.
func (r *StatisticsReport) Legacy() LegacyStats {
	return LegacyStats{
		ClienteStats: r.ClienteStats,
		TriboStats:   r.TriboStats,
		HorasTotal:   r.Basic.TotalHoras,
		ValorTotal:   r.Basic.ValorTotal,
	}
}

// Version wraps an uploaded record set and its report for the version
// history. Versions are created on save and never mutated.
type Version struct {
	ID        string            `json:"id"`
	CreatedAt time.Time         `json:"ts"`
	Records   []TicketRecord    `json:"data"`
	Report    *StatisticsReport `json:"stats"`
}
