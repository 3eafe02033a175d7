package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"demandcast/internal/domain"
	"demandcast/internal/port"
)

type statsRepo struct {
	db *sqlx.DB
}

// NewStatsRepo creates a new PostgreSQL-backed StatsRepository.
func NewStatsRepo(db *sqlx.DB) port.StatsRepository {
	return &statsRepo{db: db}
}

const datasetStatsQuery = `SELECT
	COUNT(*) AS total_datasets,
	COUNT(CASE WHEN is_valid THEN 1 END) AS datasets_valid,
	COUNT(CASE WHEN NOT is_valid THEN 1 END) AS datasets_invalid,
	COUNT(CASE WHEN status = 'processing' THEN 1 END) AS datasets_processing,
	COUNT(CASE WHEN status = 'completed' THEN 1 END) AS datasets_completed
FROM datasets`

const runStatsQuery = `SELECT
	COUNT(*) AS total_runs,
	COUNT(CASE WHEN status = 'completed' THEN 1 END) AS runs_completed,
	COUNT(CASE WHEN status = 'failed' THEN 1 END) AS runs_failed
FROM forecast_runs`

const findingStatsQuery = `SELECT
	COUNT(*) AS total_findings,
	COUNT(CASE WHEN severity = 'error' THEN 1 END) AS finding_errors,
	COUNT(CASE WHEN severity = 'warning' THEN 1 END) AS finding_warnings
FROM validation_findings`

const avgBestMAPEQuery = `SELECT AVG(mr.mape)
FROM model_results mr
INNER JOIN forecast_runs fr ON fr.id = mr.run_id
WHERE mr.rank = 1 AND fr.status = 'completed'`

func (r *statsRepo) GetStats(ctx context.Context) (*domain.Stats, error) {
	var stats domain.Stats
	if err := r.db.GetContext(ctx, &stats, datasetStatsQuery); err != nil {
		return nil, fmt.Errorf("statsRepo.GetStats datasets: %w", err)
	}

	var runStats struct {
		TotalRuns     int `db:"total_runs"`
		RunsCompleted int `db:"runs_completed"`
		RunsFailed    int `db:"runs_failed"`
	}
	if err := r.db.GetContext(ctx, &runStats, runStatsQuery); err != nil {
		return nil, fmt.Errorf("statsRepo.GetStats runs: %w", err)
	}
	stats.TotalRuns = runStats.TotalRuns
	stats.RunsCompleted = runStats.RunsCompleted
	stats.RunsFailed = runStats.RunsFailed

	var findingStats struct {
		TotalFindings   int `db:"total_findings"`
		FindingErrors   int `db:"finding_errors"`
		FindingWarnings int `db:"finding_warnings"`
	}
	if err := r.db.GetContext(ctx, &findingStats, findingStatsQuery); err != nil {
		return nil, fmt.Errorf("statsRepo.GetStats findings: %w", err)
	}
	stats.TotalFindings = findingStats.TotalFindings
	stats.FindingErrors = findingStats.FindingErrors
	stats.FindingWarnings = findingStats.FindingWarnings

	var avgBest *float64
	if err := r.db.GetContext(ctx, &avgBest, avgBestMAPEQuery); err != nil {
		return nil, fmt.Errorf("statsRepo.GetStats avg best mape: %w", err)
	}
	stats.AvgBestMAPE = avgBest

	return &stats, nil
}
