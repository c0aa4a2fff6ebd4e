package services

import (
	"strconv"
	"strings"
	"time"

	"github.com/hhsxp/sla-dashboard/internal/core/domain"
)

// Canonical column names, accent- and case-sensitive. Historical exports used
// a few alternate spellings; both are accepted. One mapping table is the
// source of truth so every consumer sees the same record shape.
const (
	colCliente        = "Cliente"
	colTribo          = "Tribo"
	colServico        = "Serviço"
	colPIP            = "PIP"
	colHoras          = "Horas"
	colValorHora      = "Valor hora"
	colValor          = "Valor"
	colValorTotal     = "Valor Total"
	colApontamentos   = "Apontamentos"
	colVencimentos    = "Vencimentos"
	colFaturamento    = "Faturamento"
	colSaldo          = "Saldo"
	colAuxilio        = "Auxilio"
	colDataAbertura   = "Data_Abertura"
	colDataFechamento = "Data_Fechamento"
	colAnalista       = "Analista"
	colResponsavel    = "Responsável"
	colStatusSLA      = "Status_SLA"
	colTipoTicket     = "Tipo_Ticket"
	colTipoDeItem     = "Tipo de item"
)

// excelEpoch is day zero of the 1900 date system (accounting for the
// historical leap-year bug, serial 1 is 1900-01-01).
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// dateLayouts are tried in order when a date cell arrives as text.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	"02/01/2006",
}

// rawRow is one data row keyed by resolved header name.
type rawRow map[string]string

// NormalizeTable maps a raw table (header row first) into the ordered,
// canonical record sequence. Per-cell anomalies never fail: numbers default
// to zero, strings to empty, dates are omitted. The header row itself is
// excluded from the output.
func NormalizeTable(table [][]string) []domain.TicketRecord {
	if len(table) == 0 {
		return []domain.TicketRecord{}
	}

	headers := resolveHeaders(table[0])

	records := make([]domain.TicketRecord, 0, len(table)-1)
	for _, cells := range table[1:] {
		row := make(rawRow, len(headers))
		for i, header := range headers {
			if i < len(cells) {
				row[header] = cells[i]
			}
		}
		records = append(records, normalizeRow(row))
	}
	return records
}

// resolveHeaders turns the first row into column keys. A column with empty
// header text gets a synthetic positional key so no cell is ever dropped.
func resolveHeaders(headerRow []string) []string {
	headers := make([]string, len(headerRow))
	for i, text := range headerRow {
		header := strings.TrimSpace(text)
		if header == "" {
			header = "coluna_" + strconv.Itoa(i+1)
		}
		headers[i] = header
	}
	return headers
}

func normalizeRow(row rawRow) domain.TicketRecord {
	return domain.TicketRecord{
		Cliente:        stringOrEmpty(row, colCliente),
		Tribo:          stringOrEmpty(row, colTribo),
		Servico:        stringOrEmpty(row, colServico),
		PIP:            floatOrZero(row, colPIP),
		Horas:          floatOrZero(row, colHoras),
		ValorHora:      floatOrZero(row, colValorHora),
		Valor:          floatOrZero(row, colValor, colValorTotal),
		Apontamentos:   floatOrZero(row, colApontamentos),
		Vencimentos:    stringOrEmpty(row, colVencimentos),
		Faturamento:    stringOrEmpty(row, colFaturamento),
		Saldo:          floatOrZero(row, colSaldo),
		Auxilio:        stringOrEmpty(row, colAuxilio),
		DataAbertura:   dateOrOmit(row, colDataAbertura),
		DataFechamento: dateOrOmit(row, colDataFechamento),
		Analista:       stringOrEmpty(row, colAnalista, colResponsavel),
		StatusSLA:      stringOrEmpty(row, colStatusSLA),
		TipoTicket:     stringOrEmpty(row, colTipoTicket, colTipoDeItem),
	}
}

// stringOrEmpty returns the first non-empty value among the given column
// names, or "" so downstream grouping never sees an undefined key.
func stringOrEmpty(row rawRow, names ...string) string {
	for _, name := range names {
		if v := strings.TrimSpace(row[name]); v != "" {
			return v
		}
	}
	return ""
}

// floatOrZero applies the parse-float-or-zero rule: non-numeric or missing
// source text becomes 0, never a failure.
func floatOrZero(row rawRow, names ...string) float64 {
	for _, name := range names {
		raw := strings.TrimSpace(row[name])
		if raw == "" {
			continue
		}
		if v, ok := parseFloat(raw); ok {
			return v
		}
	}
	return 0
}

func parseFloat(raw string) (float64, bool) {
	if v, err := strconv.ParseFloat(raw, 64); err == nil {
		return v, true
	}
	// Brazilian exports frequently use a decimal comma.
	swapped := strings.ReplaceAll(strings.ReplaceAll(raw, ".", ""), ",", ".")
	if v, err := strconv.ParseFloat(swapped, 64); err == nil {
		return v, true
	}
	return 0, false
}

// dateOrOmit applies the parse-or-omit rule: an absent or unparseable source
// value yields nil rather than an epoch default, so enrichment detection
// stays correct.
func dateOrOmit(row rawRow, name string) *time.Time {
	raw := strings.TrimSpace(row[name])
	if raw == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			t = t.UTC()
			return &t
		}
	}
	// Date-typed cells can surface as Excel serial numbers.
	if serial, err := strconv.ParseFloat(raw, 64); err == nil && serial > 0 {
		t := excelEpoch.Add(time.Duration(serial * float64(24*time.Hour)))
		t = t.Round(time.Second)
		return &t
	}
	return nil
}
