package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Dataset represents one uploaded demand series and its validation outcome.
// The dataset ID doubles as the public session_id of the original API.
type Dataset struct {
	ID           uuid.UUID     `db:"id" json:"id"`
	Name         string        `db:"name" json:"name"`
	Source       SourceFormat  `db:"source" json:"source"`
	Status       DatasetStatus `db:"status" json:"status"`
	RowCount     int           `db:"row_count" json:"row_count"`
	IsValid      bool          `db:"is_valid" json:"is_valid"`
	ErrorCount   int           `db:"error_count" json:"error_count"`
	WarningCount int           `db:"warning_count" json:"warning_count"`
	NotifyEmail  string        `db:"notify_email" json:"notify_email,omitempty"`
	ArchiveKey   string        `db:"archive_key" json:"-"`
	CreatedAt    time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time     `db:"updated_at" json:"updated_at"`
}

// DemandRecord is one persisted row of a validated dataset. Position is the
// 0-based input order; Month keeps the canonical YYYY-MM label.
type DemandRecord struct {
	ID        int64     `db:"id" json:"-"`
	DatasetID uuid.UUID `db:"dataset_id" json:"-"`
	Position  int       `db:"position" json:"position"`
	Month     string    `db:"month" json:"month"`
	Demand    float64   `db:"demand" json:"demand"`
}

// ValidationFinding is a persisted validation issue. Row is -1 for
// dataset-scope findings, matching the engine's convention.
type ValidationFinding struct {
	ID        int64         `db:"id" json:"-"`
	DatasetID uuid.UUID     `db:"dataset_id" json:"-"`
	Row       int           `db:"row_index" json:"row"`
	Field     string        `db:"field" json:"field"`
	Message   string        `db:"message" json:"message"`
	Severity  IssueSeverity `db:"severity" json:"severity"`
	CreatedAt time.Time     `db:"created_at" json:"created_at"`
}

// ForecastRun is one asynchronous evaluation of all forecast models against a
// dataset.
type ForecastRun struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	DatasetID   uuid.UUID  `db:"dataset_id" json:"dataset_id"`
	Status      RunStatus  `db:"status" json:"status"`
	Error       string     `db:"error" json:"error,omitempty"`
	StartedAt   *time.Time `db:"started_at" json:"started_at,omitempty"`
	CompletedAt *time.Time `db:"completed_at" json:"completed_at,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}

// Stats aggregates platform activity for the admin dashboard.
type Stats struct {
	TotalDatasets      int `db:"total_datasets" json:"total_datasets"`
	DatasetsValid      int `db:"datasets_valid" json:"datasets_valid"`
	DatasetsInvalid    int `db:"datasets_invalid" json:"datasets_invalid"`
	DatasetsProcessing int `db:"datasets_processing" json:"datasets_processing"`
	DatasetsCompleted  int `db:"datasets_completed" json:"datasets_completed"`
	TotalRuns          int `db:"total_runs" json:"total_runs"`
	RunsCompleted      int `db:"runs_completed" json:"runs_completed"`
	RunsFailed         int `db:"runs_failed" json:"runs_failed"`
	TotalFindings      int `db:"total_findings" json:"total_findings"`
	FindingErrors      int `db:"finding_errors" json:"finding_errors"`
	FindingWarnings    int `db:"finding_warnings" json:"finding_warnings"`
	// AvgBestMAPE averages the rank-1 MAPE across completed runs; nil until a
	// run has finished.
	AvgBestMAPE *float64 `db:"avg_best_mape" json:"avg_best_mape"`
}

// ModelResult stores one model's evaluation within a run, ranked by MAPE
// ascending. Metric columns are nullable because a model can fail to produce
// a finite score on some series.
type ModelResult struct {
	ID          int64           `db:"id" json:"-"`
	RunID       uuid.UUID       `db:"run_id" json:"-"`
	Rank        int             `db:"rank" json:"rank"`
	ModelName   string          `db:"model_name" json:"name"`
	MAPE        *float64        `db:"mape" json:"mape"`
	MAE         *float64        `db:"mae" json:"mae"`
	MSE         *float64        `db:"mse" json:"mse"`
	RMSE        *float64        `db:"rmse" json:"rmse"`
	Parameters  json.RawMessage `db:"parameters" json:"parameters"`
	Predictions json.RawMessage `db:"predictions" json:"predictions"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
}
