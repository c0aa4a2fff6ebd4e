package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	httpAdapter "github.com/hhsxp/sla-dashboard/internal/adapters/primary/http"
	"github.com/hhsxp/sla-dashboard/internal/adapters/secondary/memory"
	"github.com/hhsxp/sla-dashboard/internal/adapters/secondary/spreadsheet"
	"github.com/hhsxp/sla-dashboard/internal/core/services"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestServer wires the real pipeline against the in-memory store. The
// store comes back so tests can seed version history directly.
func newTestServer(t *testing.T) (*httptest.Server, *memory.VersionStore) {
	t.Helper()

	logger := discardLogger()
	store := memory.NewVersionStore()
	codec := spreadsheet.NewXLSXCodec()
	reportService := services.NewReportService(codec, store, logger)
	errorHandler := httpAdapter.NewErrorHandler(logger)

	uploadHandler := httpAdapter.NewUploadHandler(reportService, errorHandler, logger, 10<<20)
	versionHandler := httpAdapter.NewVersionHandler(reportService, errorHandler, logger)
	exportHandler := httpAdapter.NewExportHandler(reportService, errorHandler, logger)

	r := chi.NewRouter()
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/upload", uploadHandler.RegisterRoutes)
		r.Route("/versions", versionHandler.RegisterRoutes)
		r.Route("/export", exportHandler.RegisterRoutes)
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, store
}

// buildXLSX serializes rows into workbook bytes.
func buildXLSX(t *testing.T, rows [][]interface{}) []byte {
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
	return buf.Bytes()
}

// multipartUpload builds a multipart body with the workbook under "file".
func multipartUpload(t *testing.T, workbook []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", "dados.xlsx")
	require.NoError(t, err)
	_, err = part.Write(workbook)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func decodeJSON(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestHandleUpload_Success(t *testing.T) {
	srv, _ := newTestServer(t)

	workbook := buildXLSX(t, [][]interface{}{
		{"Cliente", "Tribo", "Horas", "Valor", "Status_SLA"},
		{"Acme", "Payments", 10, 100, "Atingido"},
		{"Beta", "Core", 5, 50, "Violado"},
	})
	body, contentType := multipartUpload(t, workbook)

	resp, err := http.Post(srv.URL+"/api/v1/upload", contentType, body)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload struct {
		Message string `json:"message"`
		Data    []struct {
			Cliente string `json:"Cliente"`
		} `json:"data"`
		Stats struct {
			HorasTotal float64 `json:"horasTotal"`
			ValorTotal float64 `json:"valorTotal"`
		} `json:"stats"`
		AllStats struct {
			Basic struct {
				TotalProjetos int `json:"total_projetos"`
			} `json:"basic_stats"`
			SLA struct {
				Atingido int `json:"sla_atingido"`
				Violado  int `json:"sla_violado"`
			} `json:"sla_stats"`
			HasEnrichedData bool `json:"has_enriched_data"`
		} `json:"allStats"`
		VersionID string `json:"versionId"`
	}
	decodeJSON(t, resp, &payload)

	assert.Equal(t, "Upload realizado com sucesso", payload.Message)
	require.Len(t, payload.Data, 2)
	assert.Equal(t, "Acme", payload.Data[0].Cliente)
	assert.Equal(t, 15.0, payload.Stats.HorasTotal)
	assert.Equal(t, 150.0, payload.Stats.ValorTotal)
	assert.Equal(t, 2, payload.AllStats.Basic.TotalProjetos)
	assert.True(t, payload.AllStats.HasEnrichedData)
	assert.Equal(t, 1, payload.AllStats.SLA.Atingido)
	assert.Equal(t, 1, payload.AllStats.SLA.Violado)
	assert.NotEmpty(t, payload.VersionID)
}

func TestHandleUpload_MissingFile(t *testing.T) {
	srv, _ := newTestServer(t)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("other", "value"))
	require.NoError(t, writer.Close())

	resp, err := http.Post(srv.URL+"/api/v1/upload", writer.FormDataContentType(), body)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var payload struct {
		Error string `json:"error"`
		Code  string `json:"code"`
	}
	decodeJSON(t, resp, &payload)
	assert.Equal(t, "FILE_REQUIRED", payload.Code)
	assert.Equal(t, "Arquivo não recebido corretamente.", payload.Error)
}

func TestHandleUpload_UnreadableWorkbook(t *testing.T) {
	srv, _ := newTestServer(t)

	body, contentType := multipartUpload(t, []byte("this is not a workbook"))

	resp, err := http.Post(srv.URL+"/api/v1/upload", contentType, body)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var payload struct {
		Error string `json:"error"`
	}
	decodeJSON(t, resp, &payload)
	assert.Equal(t, "Planilha não encontrada no arquivo.", payload.Error)
}

func TestHandleUpload_EmptyWorkbookIsBasic(t *testing.T) {
	srv, _ := newTestServer(t)

	workbook := buildXLSX(t, [][]interface{}{{"Cliente", "Horas"}})
	body, contentType := multipartUpload(t, workbook)

	resp, err := http.Post(srv.URL+"/api/v1/upload", contentType, body)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload struct {
		Data     []json.RawMessage `json:"data"`
		AllStats struct {
			Basic struct {
				TotalProjetos int `json:"total_projetos"`
			} `json:"basic_stats"`
			SLA struct {
				Percentual float64 `json:"percentual_atingimento"`
			} `json:"sla_stats"`
			HasEnrichedData bool `json:"has_enriched_data"`
		} `json:"allStats"`
	}
	decodeJSON(t, resp, &payload)

	assert.Empty(t, payload.Data)
	assert.Equal(t, 0, payload.AllStats.Basic.TotalProjetos)
	assert.False(t, payload.AllStats.HasEnrichedData)
	assert.Equal(t, 80.0, payload.AllStats.SLA.Percentual)
}
