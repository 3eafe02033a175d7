// Command seeddemo converts a demand workbook (XLSX), CSV, or JSON file into
// a SQL seed file that inserts one ready-to-process dataset. With no input
// file it emits a built-in 36-month seasonal series.
// Usage: go run ./cmd/seeddemo [input-file]
// Output: db/seeds/demo_dataset.sql
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"demandcast/internal/domain"
	"demandcast/internal/ingest"
	"demandcast/internal/validator"
)

const (
	batchSize = 500
	outPath   = "db/seeds/demo_dataset.sql"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	name := "demo_dataset"
	source := domain.SourceCSV

	var records []validator.Record
	if len(os.Args) > 1 {
		inPath := os.Args[1]
		data, err := os.ReadFile(inPath)
		if err != nil {
			return fmt.Errorf("read input file: %w", err)
		}
		format, err := ingest.DetectFormat(inPath, "")
		if err != nil {
			return fmt.Errorf("detect format: %w", err)
		}
		reader, err := ingest.ForFormat(format)
		if err != nil {
			return err
		}
		records, err = reader.Read(data)
		if err != nil {
			return fmt.Errorf("parse %s: %w", inPath, err)
		}
		name = filepath.Base(inPath)
		source = format
		log.Printf("parsed %d records from %s", len(records), inPath)
	} else {
		records = syntheticSeries(36)
		log.Printf("generated %d synthetic records", len(records))
	}

	// A seed dataset must be ready for forecasting, so reject anything the
	// engine would not accept on upload. Warnings are kept as findings.
	engine := validator.NewEngine(validator.DefaultRuleSet())
	result := engine.ValidateRecords(records, nil)
	if !result.IsValid {
		for _, iss := range result.Errors {
			log.Printf("row %d [%s] %s: %s", iss.Row, iss.Severity, iss.Field, iss.Message)
		}
		return fmt.Errorf("input data failed validation with %d findings", len(result.Errors))
	}

	summary := validator.Summarize(result.Errors)
	datasetID := uuid.New()

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer func() { _ = out.Close() }()

	w := func(s string) error { _, werr := fmt.Fprintln(out, s); return werr }

	for _, line := range []string{
		"-- Demo dataset seed generated by cmd/seeddemo.",
		fmt.Sprintf("-- %d demand records, %d warnings.", len(records), summary.Warnings),
		"-- Apply: psql $DATABASE_URL -f db/seeds/demo_dataset.sql",
		"BEGIN;",
		"",
		"INSERT INTO datasets (id, name, source, status, row_count, is_valid, error_count, warning_count)",
		fmt.Sprintf("VALUES ('%s', '%s', '%s', '%s', %d, TRUE, 0, %d);",
			datasetID, escapeSQL(name), source, domain.DatasetStatusUploaded, len(records), summary.Warnings),
		"",
	} {
		if werr := w(line); werr != nil {
			return fmt.Errorf("write header: %w", werr)
		}
	}

	for i := 0; i < len(records); i += batchSize {
		end := i + batchSize
		if end > len(records) {
			end = len(records)
		}
		if err := writeRecordBatch(out, datasetID, i, records[i:end]); err != nil {
			return fmt.Errorf("write batch at offset %d: %w", i, err)
		}
	}

	if err := writeFindings(out, datasetID, result.Errors); err != nil {
		return fmt.Errorf("write findings: %w", err)
	}

	for _, line := range []string{"", "COMMIT;"} {
		if werr := w(line); werr != nil {
			return fmt.Errorf("write footer: %w", werr)
		}
	}

	log.Printf("Generated dataset %s with %d records in %s", datasetID, len(records), outPath)
	return nil
}

// syntheticSeries builds n months of deterministic demand starting at 2022-01:
// a gentle upward trend over a fixed seasonal profile, so forecast demos have
// visible structure to pick up.
func syntheticSeries(n int) []validator.Record {
	profile := []float64{0.92, 0.88, 0.97, 1.02, 1.05, 1.10, 1.16, 1.12, 1.04, 0.98, 0.93, 1.23}
	start := time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC)

	records := make([]validator.Record, n)
	for i := 0; i < n; i++ {
		month := start.AddDate(0, i, 0)
		base := 120.0 + 1.5*float64(i)
		demand := base * profile[i%len(profile)]
		records[i] = validator.Record{
			Month:  month.Format("2006-01"),
			Demand: float64(int(demand*100)) / 100,
		}
	}
	return records
}

func writeRecordBatch(out *os.File, datasetID uuid.UUID, offset int, batch []validator.Record) error {
	if len(batch) == 0 {
		return nil
	}

	var b strings.Builder
	b.WriteString("INSERT INTO demand_records (dataset_id, position, month, demand) VALUES\n")

	for i := range batch {
		rec := &batch[i]
		if i > 0 {
			b.WriteString(",\n")
		}
		demand, _ := validator.DemandValue(rec.Demand)
		fmt.Fprintf(&b, "  ('%s', %d, '%s', %g)", datasetID, offset+i, escapeSQL(rec.Month), demand)
	}
	b.WriteString(";\n")

	_, err := out.WriteString(b.String())
	return err
}

func writeFindings(out *os.File, datasetID uuid.UUID, issues []validator.ValidationIssue) error {
	if len(issues) == 0 {
		return nil
	}

	var b strings.Builder
	b.WriteString("\nINSERT INTO validation_findings (dataset_id, row_index, field, message, severity) VALUES\n")

	for i, iss := range issues {
		if i > 0 {
			b.WriteString(",\n")
		}
		fmt.Fprintf(&b, "  ('%s', %d, '%s', '%s', '%s')",
			datasetID, iss.Row, iss.Field, escapeSQL(iss.Message), iss.Severity)
	}
	b.WriteString(";\n")

	_, err := out.WriteString(b.String())
	return err
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
