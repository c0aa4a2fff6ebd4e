package spreadsheet

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/hhsxp/sla-dashboard/internal/core/domain"
	apperrors "github.com/hhsxp/sla-dashboard/internal/core/errors"
	"github.com/hhsxp/sla-dashboard/internal/core/ports"
)

// SheetName is the sheet written on export, matching the historical download.
const SheetName = "Dados SLA"

// exportHeaders is the canonical column order reproduced on export. Optional
// enrichment columns are always written so a re-import classifies the dataset
// the same way.
var exportHeaders = []string{
	"Cliente", "Tribo", "Serviço", "PIP", "Horas", "Valor hora", "Valor",
	"Apontamentos", "Vencimentos", "Faturamento", "Saldo", "Auxilio",
	"Data_Abertura", "Data_Fechamento", "Analista", "Status_SLA", "Tipo_Ticket",
}

// XLSXCodec reads and writes XLSX workbooks.
type XLSXCodec struct{}

var _ ports.SheetCodec = (*XLSXCodec)(nil)

func NewXLSXCodec() *XLSXCodec {
	return &XLSXCodec{}
}

// Parse returns the first sheet as a raw table, header row first. Cells are
// read raw: formula cells yield their cached computed result and date cells
// their stored serial or text value, which the normalizer coerces. A workbook
// without a readable sheet is the only hard failure.
func (c *XLSXCodec) Parse(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, apperrors.NewBadRequestError(apperrors.ErrNoSheet, "Planilha não encontrada no arquivo.")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperrors.NewBadRequestError(apperrors.ErrNoSheet, "Planilha não encontrada no arquivo.")
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, apperrors.NewBadRequestError(apperrors.ErrNoSheet, "Planilha não encontrada no arquivo.")
	}
	return rows, nil
}

// Export writes records back to XLSX bytes with the canonical headers.
// Timestamps are written as RFC 3339 text so an exported file re-normalizes
// field-for-field.
func (c *XLSXCodec) Export(records []domain.TicketRecord) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]interface{}, len(exportHeaders))
	for i, h := range exportHeaders {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("row coordinates: %w", err)
		}
		row := exportRow(&records[i])
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func exportRow(r *domain.TicketRecord) []interface{} {
	return []interface{}{
		r.Cliente, r.Tribo, r.Servico, r.PIP, r.Horas, r.ValorHora, r.Valor,
		r.Apontamentos, r.Vencimentos, r.Faturamento, r.Saldo, r.Auxilio,
		formatTime(r.DataAbertura), formatTime(r.DataFechamento),
		r.Analista, r.StatusSLA, r.TipoTicket,
	}
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
