package domain

import "time"

// SLAStatus is the ticket-level SLA outcome as it appears in the source
// spreadsheet. Any other value (e.g. "Pendente") is excluded from SLA
// counting, not treated as a violation.
type SLAStatus string

const (
	SLAAtingido SLAStatus = "Atingido"
	SLAViolado  SLAStatus = "Violado"
)

// TicketRecord is one normalized spreadsheet row. Numeric fields default to
// zero and string fields to "" when the source cell is absent or malformed;
// timestamps are omitted (nil) when unparseable so enrichment detection stays
// accurate. JSON keys mirror the spreadsheet column names consumed by the
// dashboard.
type TicketRecord struct {
	Cliente      string  `json:"Cliente"`
	Tribo        string  `json:"Tribo"`
	Servico      string  `json:"Serviço"`
	PIP          float64 `json:"PIP"`
	Horas        float64 `json:"Horas"`
	ValorHora    float64 `json:"Valor hora"`
	Valor        float64 `json:"Valor"`
	Apontamentos float64 `json:"Apontamentos"`
	Vencimentos  string  `json:"Vencimentos,omitempty"`
	Faturamento  string  `json:"Faturamento,omitempty"`
	Saldo        float64 `json:"Saldo,omitempty"`
	Auxilio      string  `json:"Auxilio,omitempty"`

	// Enrichment fields. Present only on enriched datasets.
	DataAbertura   *time.Time `json:"Data_Abertura,omitempty"`
	DataFechamento *time.Time `json:"Data_Fechamento,omitempty"`
	Analista       string     `json:"Analista,omitempty"`
	StatusSLA      string     `json:"Status_SLA,omitempty"`
	TipoTicket     string     `json:"Tipo_Ticket,omitempty"`
}

// LeadTimeHours returns the elapsed hours between open and close timestamps.
// The second return is false when either timestamp is missing.
func (r *TicketRecord) LeadTimeHours() (float64, bool) {
	if r.DataAbertura == nil || r.DataFechamento == nil {
		return 0, false
	}
	return r.DataFechamento.Sub(*r.DataAbertura).Hours(), true
}

// HasEnrichment reports whether this record carries any of the fields that
// mark a dataset as enriched.
func (r *TicketRecord) HasEnrichment() bool {
	return r.DataAbertura != nil ||
		r.DataFechamento != nil ||
		r.Analista != "" ||
		r.StatusSLA != "" ||
		r.TipoTicket != ""
}
