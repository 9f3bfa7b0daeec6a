package api

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportReportStreamsFile(t *testing.T) {
	backend, client := authedClient(t)

	var buf bytes.Buffer
	err := client.ExportReport(context.Background(), "s1", ExportExcel, 2025, &buf)
	require.NoError(t, err)
	assert.Equal(t, "report-bytes-excel", buf.String())

	backend.mu.Lock()
	query := backend.exportQuery
	backend.mu.Unlock()
	assert.Contains(t, query, "year=2025")
}

func TestExportReportPDF(t *testing.T) {
	_, client := authedClient(t)

	var buf bytes.Buffer
	require.NoError(t, client.ExportReport(context.Background(), "s1", ExportPDF, 0, &buf))
	assert.Equal(t, "report-bytes-pdf", buf.String())
}

func TestExportReportRejectsUnknownFormat(t *testing.T) {
	_, client := authedClient(t)

	var buf bytes.Buffer
	err := client.ExportReport(context.Background(), "s1", "csv", 2025, &buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported export format")
	assert.Zero(t, buf.Len())
}
