package ingest

import (
	"bytes"
	"encoding/json"
	"fmt"

	"demandcast/internal/domain"
	"demandcast/internal/validator"
)

// JSONReader reads demand data serialized as JSON: either an array of
// {month, demand} objects or a column-oriented object of parallel arrays.
type JSONReader struct{}

func (JSONReader) Read(data []byte) ([]validator.Record, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, domain.ErrEmptyFile
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDatasetInvalid, err)
	}

	if columns, ok := raw.(map[string]any); ok {
		return columnRecords(columns)
	}
	records, ok := validator.RecordsFrom(raw)
	if !ok {
		return nil, fmt.Errorf("%w: payload is not an array", domain.ErrDatasetInvalid)
	}
	return records, nil
}

// columnRecords zips {"month": [...], "demand": [...]} parallel arrays. The
// demand column is mandatory; months beyond the month array stay empty.
func columnRecords(columns map[string]any) ([]validator.Record, error) {
	demand, ok := columns["demand"].([]any)
	if !ok {
		return nil, fmt.Errorf("%w: json columns %v", domain.ErrMissingColumns, keysOf(columns))
	}
	months, _ := columns["month"].([]any)

	records := make([]validator.Record, len(demand))
	for i, value := range demand {
		records[i] = validator.Record{Demand: value}
		if i < len(months) {
			records[i].Month = validator.MonthString(months[i])
		}
	}
	return records, nil
}

func keysOf(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}
