package ingest

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"demandcast/internal/domain"
	"demandcast/internal/validator"
)

// XLSXReader reads demand data from the first sheet of an Excel workbook.
// Cells arrive as formatted strings, so numeric demand values flow through
// the same string coercion as CSV cells.
type XLSXReader struct{}

func (XLSXReader) Read(data []byte) ([]validator.Record, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, domain.ErrEmptyFile
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return tableRecords(rows)
}
