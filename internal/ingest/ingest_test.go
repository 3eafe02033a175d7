package ingest_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"demandcast/internal/domain"
	"demandcast/internal/ingest"
	"demandcast/internal/validator"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		contentType string
		want        domain.SourceFormat
		wantErr     bool
	}{
		{name: "csv extension", filename: "demanda.csv", want: domain.SourceCSV},
		{name: "xlsx extension", filename: "Demanda 2024.XLSX", want: domain.SourceXLSX},
		{name: "json extension", filename: "demand.json", want: domain.SourceJSON},
		{name: "content type fallback", filename: "upload", contentType: "text/csv; charset=utf-8", want: domain.SourceCSV},
		{name: "spreadsheet content type", filename: "upload", contentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", want: domain.SourceXLSX},
		{name: "unsupported", filename: "demanda.pdf", contentType: "application/pdf", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ingest.DetectFormat(tt.filename, tt.contentType)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestForFormat_UnknownFormat(t *testing.T) {
	_, err := ingest.ForFormat(domain.SourceFormat("pdf"))
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

func TestCSVReader_ReadsMonthAndDemand(t *testing.T) {
	data := []byte("\uFEFFmonth,demand\n2024-01,100\n2024-02,150.5\n")

	records, err := ingest.CSVReader{}.Read(data)
	require.NoError(t, err)

	require.Len(t, records, 2)
	assert.Equal(t, validator.Record{Month: "2024-01", Demand: "100"}, records[0])
	assert.Equal(t, validator.Record{Month: "2024-02", Demand: "150.5"}, records[1])
}

func TestCSVReader_SpanishHeaders(t *testing.T) {
	data := []byte("Mes,Demanda\n2024-01,100\n")

	records, err := ingest.CSVReader{}.Read(data)
	require.NoError(t, err)

	require.Len(t, records, 1)
	assert.Equal(t, "2024-01", records[0].Month)
	assert.Equal(t, "100", records[0].Demand)
}

func TestCSVReader_ExtraColumnsIgnored(t *testing.T) {
	data := []byte("producto,month,region,demand\nwidget,2024-01,norte,100\n")

	records, err := ingest.CSVReader{}.Read(data)
	require.NoError(t, err)

	require.Len(t, records, 1)
	assert.Equal(t, "2024-01", records[0].Month)
	assert.Equal(t, "100", records[0].Demand)
}

func TestCSVReader_MissingDemandColumn(t *testing.T) {
	data := []byte("month,sales\n2024-01,100\n")

	_, err := ingest.CSVReader{}.Read(data)
	assert.ErrorIs(t, err, domain.ErrMissingColumns)
}

func TestCSVReader_MissingMonthColumnLeavesMonthsEmpty(t *testing.T) {
	data := []byte("demand\n100\n200\n")

	records, err := ingest.CSVReader{}.Read(data)
	require.NoError(t, err)

	require.Len(t, records, 2)
	assert.Empty(t, records[0].Month)
	assert.Equal(t, "100", records[0].Demand)
}

func TestCSVReader_EmptyFile(t *testing.T) {
	_, err := ingest.CSVReader{}.Read([]byte("  \n"))
	assert.ErrorIs(t, err, domain.ErrEmptyFile)
}

func TestCSVReader_HeaderOnly(t *testing.T) {
	records, err := ingest.CSVReader{}.Read([]byte("month,demand\n"))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestCSVReader_SkipsBlankRows(t *testing.T) {
	data := []byte("month,demand\n2024-01,100\n,\n2024-02,200\n")

	records, err := ingest.CSVReader{}.Read(data)
	require.NoError(t, err)

	require.Len(t, records, 2)
	assert.Equal(t, "2024-02", records[1].Month)
}

func xlsxBytes(t *testing.T, rows [][]any) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		for j, value := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, value))
		}
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return buf.Bytes()
}

func TestXLSXReader_ReadsFirstSheet(t *testing.T) {
	data := xlsxBytes(t, [][]any{
		{"month", "demand"},
		{"2024-01", 100},
		{"2024-02", 150.5},
	})

	records, err := ingest.XLSXReader{}.Read(data)
	require.NoError(t, err)

	require.Len(t, records, 2)
	assert.Equal(t, "2024-01", records[0].Month)
	assert.Equal(t, "100", records[0].Demand)
	assert.Equal(t, "150.5", records[1].Demand)
}

func TestXLSXReader_MissingDemandColumn(t *testing.T) {
	data := xlsxBytes(t, [][]any{
		{"month", "ventas"},
		{"2024-01", 100},
	})

	_, err := ingest.XLSXReader{}.Read(data)
	assert.ErrorIs(t, err, domain.ErrMissingColumns)
}

func TestXLSXReader_NotAWorkbook(t *testing.T) {
	_, err := ingest.XLSXReader{}.Read([]byte("not a zip archive"))
	assert.Error(t, err)
}

func TestJSONReader_RecordArray(t *testing.T) {
	data := []byte(`[{"month":"2024-01","demand":100.5},{"month":"2024-02","demand":"200"}]`)

	records, err := ingest.JSONReader{}.Read(data)
	require.NoError(t, err)

	require.Len(t, records, 2)
	assert.Equal(t, "2024-01", records[0].Month)
	assert.Equal(t, json.Number("100.5"), records[0].Demand)
	assert.Equal(t, "200", records[1].Demand)
}

func TestJSONReader_ColumnForm(t *testing.T) {
	data := []byte(`{"month":["2024-01","2024-02"],"demand":[100,200]}`)

	records, err := ingest.JSONReader{}.Read(data)
	require.NoError(t, err)

	require.Len(t, records, 2)
	assert.Equal(t, "2024-01", records[0].Month)
	assert.Equal(t, json.Number("100"), records[0].Demand)
	assert.Equal(t, "2024-02", records[1].Month)
}

func TestJSONReader_ColumnFormWithoutDemand(t *testing.T) {
	data := []byte(`{"month":["2024-01"]}`)

	_, err := ingest.JSONReader{}.Read(data)
	assert.ErrorIs(t, err, domain.ErrMissingColumns)
}

func TestJSONReader_NotAnArray(t *testing.T) {
	_, err := ingest.JSONReader{}.Read([]byte(`"hola"`))
	assert.ErrorIs(t, err, domain.ErrDatasetInvalid)
}

func TestJSONReader_MalformedJSON(t *testing.T) {
	_, err := ingest.JSONReader{}.Read([]byte(`[{"month":`))
	assert.ErrorIs(t, err, domain.ErrDatasetInvalid)
}

func TestJSONReader_EmptyFile(t *testing.T) {
	_, err := ingest.JSONReader{}.Read(nil)
	assert.ErrorIs(t, err, domain.ErrEmptyFile)
}
