// Command revalidate re-runs the validation engine over every stored dataset
// and rewrites its findings and counters. Run it after changing validation
// rules or value coercion so persisted verdicts match the current engine.
// Usage: go run ./cmd/revalidate
package main

import (
	"context"
	"fmt"
	"log"

	"demandcast/internal/config"
	"demandcast/internal/domain"
	"demandcast/internal/repository/postgres"
	"demandcast/internal/validator"
)

const batchSize = 100

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer func() { _ = db.Close() }()

	recordRepo := postgres.NewRecordRepo(db)
	findingRepo := postgres.NewFindingRepo(db)
	datasetRepo := postgres.NewDatasetRepo(db)
	engine := validator.NewEngine(cfg.Validation.RuleSet())

	ctx := context.Background()
	offset := 0
	total := 0
	flipped := 0

	for {
		var datasets []domain.Dataset
		err := db.SelectContext(ctx, &datasets,
			`SELECT id, name, status, is_valid
			 FROM datasets
			 ORDER BY created_at
			 LIMIT $1 OFFSET $2`, batchSize, offset)
		if err != nil {
			return fmt.Errorf("querying datasets at offset %d: %w", offset, err)
		}
		if len(datasets) == 0 {
			break
		}

		for i := range datasets {
			ds := &datasets[i]

			records, err := recordRepo.ListByDataset(ctx, ds.ID)
			if err != nil {
				log.Printf("WARN: skipping dataset %s: loading records: %v", ds.ID, err)
				continue
			}

			vrecords := make([]validator.Record, len(records))
			for j, rec := range records {
				vrecords[j] = validator.Record{Month: rec.Month, Demand: rec.Demand}
			}

			result := engine.ValidateRecords(vrecords, nil)
			summary := validator.Summarize(result.Errors)

			findings := make([]domain.ValidationFinding, 0, len(result.Errors))
			for _, iss := range result.Errors {
				findings = append(findings, domain.ValidationFinding{
					DatasetID: ds.ID,
					Row:       iss.Row,
					Field:     string(iss.Field),
					Message:   iss.Message,
					Severity:  domain.IssueSeverity(iss.Severity),
				})
			}

			if err := findingRepo.ReplaceForDataset(ctx, ds.ID, findings); err != nil {
				log.Printf("WARN: failed to rewrite findings for dataset %s: %v", ds.ID, err)
				continue
			}

			if ds.IsValid != result.IsValid {
				log.Printf("dataset %s (%s): verdict flipped to is_valid=%v", ds.ID, ds.Name, result.IsValid)
				flipped++
			}

			ds.RowCount = len(records)
			ds.IsValid = result.IsValid
			ds.ErrorCount = summary.Errors
			ds.WarningCount = summary.Warnings
			if err := datasetRepo.UpdateValidation(ctx, ds); err != nil {
				log.Printf("WARN: failed to update dataset %s: %v", ds.ID, err)
				continue
			}
			total++
		}

		if total > 0 && total%batchSize == 0 {
			log.Printf("Progress: %d datasets revalidated", total)
		}

		offset += len(datasets)
	}

	log.Printf("Revalidation complete: %d datasets rewritten, %d verdicts changed", total, flipped)
	return nil
}
