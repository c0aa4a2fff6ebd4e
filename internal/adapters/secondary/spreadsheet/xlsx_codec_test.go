package spreadsheet_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/hhsxp/sla-dashboard/internal/adapters/secondary/spreadsheet"
	"github.com/hhsxp/sla-dashboard/internal/core/domain"
	apperrors "github.com/hhsxp/sla-dashboard/internal/core/errors"
	"github.com/hhsxp/sla-dashboard/internal/core/services"
)

func buildWorkbook(t *testing.T, rows [][]interface{}) *bytes.Reader {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return bytes.NewReader(buf.Bytes())
}

func TestXLSXCodec_Parse(t *testing.T) {
	codec := spreadsheet.NewXLSXCodec()

	t.Run("returns the first sheet header row first", func(t *testing.T) {
		file := buildWorkbook(t, [][]interface{}{
			{"Cliente", "Horas", "Valor"},
			{"Acme", 10, 100},
			{"Beta", 5.5, 50},
		})

		table, err := codec.Parse(file)

		require.NoError(t, err)
		require.Len(t, table, 3)
		assert.Equal(t, []string{"Cliente", "Horas", "Valor"}, table[0])
		assert.Equal(t, []string{"Acme", "10", "100"}, table[1])
		assert.Equal(t, []string{"Beta", "5.5", "50"}, table[2])
	})

	t.Run("unreadable bytes map to a sheet-not-found error", func(t *testing.T) {
		table, err := codec.Parse(strings.NewReader("this is not a workbook"))

		assert.Nil(t, table)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrNoSheet)

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.StatusCode)
	})
}

func TestXLSXCodec_ExportRoundTrip(t *testing.T) {
	codec := spreadsheet.NewXLSXCodec()

	opened := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	closed := time.Date(2024, 3, 2, 17, 30, 0, 0, time.UTC)
	records := []domain.TicketRecord{
		{
			Cliente:        "Acme",
			Tribo:          "Payments",
			Servico:        "Suporte",
			PIP:            7,
			Horas:          10.5,
			ValorHora:      120,
			Valor:          1260,
			Apontamentos:   4,
			DataAbertura:   &opened,
			DataFechamento: &closed,
			Analista:       "Maria",
			StatusSLA:      "Atingido",
			TipoTicket:     "Incidente",
		},
		{Cliente: "Beta", Horas: 2},
	}

	out, err := codec.Export(records)
	require.NoError(t, err)
	require.NotEmpty(t, out)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{spreadsheet.SheetName}, f.GetSheetList())

	table, err := codec.Parse(bytes.NewReader(out))
	require.NoError(t, err)
	reimported := services.NormalizeTable(table)

	require.Len(t, reimported, 2)
	assert.Equal(t, records[0].Cliente, reimported[0].Cliente)
	assert.Equal(t, records[0].Tribo, reimported[0].Tribo)
	assert.Equal(t, records[0].Servico, reimported[0].Servico)
	assert.Equal(t, records[0].PIP, reimported[0].PIP)
	assert.Equal(t, records[0].Horas, reimported[0].Horas)
	assert.Equal(t, records[0].ValorHora, reimported[0].ValorHora)
	assert.Equal(t, records[0].Valor, reimported[0].Valor)
	assert.Equal(t, records[0].Apontamentos, reimported[0].Apontamentos)
	require.NotNil(t, reimported[0].DataAbertura)
	require.NotNil(t, reimported[0].DataFechamento)
	assert.True(t, opened.Equal(*reimported[0].DataAbertura))
	assert.True(t, closed.Equal(*reimported[0].DataFechamento))
	assert.Equal(t, records[0].Analista, reimported[0].Analista)
	assert.Equal(t, records[0].StatusSLA, reimported[0].StatusSLA)
	assert.Equal(t, records[0].TipoTicket, reimported[0].TipoTicket)

	assert.Equal(t, "Beta", reimported[1].Cliente)
	assert.Equal(t, 2.0, reimported[1].Horas)
	assert.Nil(t, reimported[1].DataAbertura)
}

func TestXLSXCodec_ExportEmptyRecordSetStillHasHeader(t *testing.T) {
	codec := spreadsheet.NewXLSXCodec()

	out, err := codec.Export(nil)
	require.NoError(t, err)

	table, err := codec.Parse(bytes.NewReader(out))
	require.NoError(t, err)
	require.Len(t, table, 1)
	assert.Equal(t, "Cliente", table[0][0])
	assert.Equal(t, "Tipo_Ticket", table[0][len(table[0])-1])
}
