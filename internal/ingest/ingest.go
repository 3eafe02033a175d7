// Package ingest turns uploaded demand files into validator records. Each
// supported format has a Reader; the factory resolves one from the upload's
// extension or content type.
package ingest

import (
	"fmt"
	"mime"
	"path/filepath"
	"strings"

	"demandcast/internal/domain"
	"demandcast/internal/validator"
)

// Reader decodes one upload format into demand records. Values stay raw
// (strings from spreadsheets, numbers from JSON); the validation engine owns
// coercion and the verdict.
type Reader interface {
	Read(data []byte) ([]validator.Record, error)
}

// readers maps each source format to its Reader.
var readers = map[domain.SourceFormat]Reader{
	domain.SourceCSV:  CSVReader{},
	domain.SourceXLSX: XLSXReader{},
	domain.SourceJSON: JSONReader{},
}

// ForFormat returns the Reader for a source format.
func ForFormat(format domain.SourceFormat) (Reader, error) {
	r, ok := readers[format]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, format)
	}
	return r, nil
}

// DetectFormat resolves the upload format from the filename extension first,
// then from the Content-Type header.
func DetectFormat(filename, contentType string) (domain.SourceFormat, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	if format, ok := domain.AllowedExtensions[ext]; ok {
		return format, nil
	}
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
		if format, ok := domain.AllowedContentTypes[mediaType]; ok {
			return format, nil
		}
	}
	return "", fmt.Errorf("%w: %s (%s)", domain.ErrUnsupportedFormat, filename, contentType)
}

// column header aliases accepted in spreadsheets, compared lowercase.
var (
	monthHeaders  = map[string]bool{"month": true, "mes": true}
	demandHeaders = map[string]bool{"demand": true, "demanda": true}
)

// headerIndexes locates the month and demand columns in a header row. The
// demand column is mandatory; a missing month column returns -1 and leaves
// the months empty for the validator to flag.
func headerIndexes(header []string) (monthIdx, demandIdx int, err error) {
	monthIdx, demandIdx = -1, -1
	for i, cell := range header {
		name := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(cell, "\uFEFF")))
		switch {
		case demandHeaders[name] && demandIdx == -1:
			demandIdx = i
		case monthHeaders[name] && monthIdx == -1:
			monthIdx = i
		}
	}
	if demandIdx == -1 {
		return 0, 0, fmt.Errorf("%w: header %v", domain.ErrMissingColumns, header)
	}
	return monthIdx, demandIdx, nil
}

// cellValue returns the trimmed cell at idx, or "" when the row is short or
// idx is -1.
func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// rowEmpty reports whether every cell in the row is blank. Spreadsheets often
// carry trailing rows of empty cells; those are not demand records.
func rowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// tableRecords converts header-plus-rows table data into records.
func tableRecords(rows [][]string) ([]validator.Record, error) {
	if len(rows) == 0 {
		return nil, domain.ErrEmptyFile
	}
	monthIdx, demandIdx, err := headerIndexes(rows[0])
	if err != nil {
		return nil, err
	}

	records := make([]validator.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if rowEmpty(row) {
			continue
		}
		records = append(records, validator.Record{
			Month:  cellValue(row, monthIdx),
			Demand: cellValue(row, demandIdx),
		})
	}
	return records, nil
}
