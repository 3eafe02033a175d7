package ingest

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	"demandcast/internal/domain"
	"demandcast/internal/validator"
)

// CSVReader reads comma-separated demand data. The first row must be a
// header naming the demand column; a UTF-8 BOM is tolerated.
type CSVReader struct{}

func (CSVReader) Read(data []byte) ([]validator.Record, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, domain.ErrEmptyFile
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	var rows [][]string
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		rows = append(rows, row)
	}
	return tableRecords(rows)
}
