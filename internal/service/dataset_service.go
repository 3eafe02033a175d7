package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"demandcast/internal/auth"
	"demandcast/internal/config"
	"demandcast/internal/domain"
	"demandcast/internal/ingest"
	"demandcast/internal/metrics"
	"demandcast/internal/port"
	"demandcast/internal/validator"
)

// MsgUploadOK is the success message of the upload endpoint, unchanged from
// the original API.
const MsgUploadOK = "Datos cargados exitosamente"

// UploadInput is the DTO for dataset upload requests. Payload holds the raw
// file or JSON body bytes; Format is already detected at the transport layer.
type UploadInput struct {
	Name        string
	Format      domain.SourceFormat
	Payload     []byte
	NotifyEmail string
}

// UploadOutput is the result of an upload attempt. Dataset is nil when
// validation rejected the data; Validation carries the full issue list either
// way so callers can render it.
type UploadOutput struct {
	Dataset      *domain.Dataset
	SessionToken string
	TokenExpires time.Time
	Message      string
	Validation   validator.ValidationResult
}

// ValidateOutput is the response of the stateless validation endpoint.
type ValidateOutput struct {
	Validation validator.ValidationResult   `json:"validation"`
	Summary    validator.Summary            `json:"summary"`
	Rows       map[int]*validator.RowStatus `json:"rows"`
	Rules      validator.RuleSet            `json:"rules"`
}

// DatasetService manages upload sessions: ingestion, validation, persistence
// and archival of demand datasets.
type DatasetService interface {
	Upload(ctx context.Context, input UploadInput) (*UploadOutput, error)
	Validate(payload []byte) ValidateOutput
	Rules() validator.RuleSet
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Dataset, error)
	List(ctx context.Context, offset, limit int) ([]domain.Dataset, int, error)
	Records(ctx context.Context, id uuid.UUID) ([]domain.DemandRecord, error)
	Findings(ctx context.Context, id uuid.UUID) ([]domain.ValidationFinding, error)
	RowFindings(ctx context.Context, id uuid.UUID, row int) ([]domain.ValidationFinding, error)
	DownloadURL(ctx context.Context, id uuid.UUID) (string, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type datasetService struct {
	engine      *validator.Engine
	datasetRepo port.DatasetRepository
	recordRepo  port.RecordRepository
	findingRepo port.FindingRepository
	storage     port.ObjectStorage
	cache       port.ResultsCache
	sessions    *auth.Sessions
	s3cfg       *config.S3Config
	logger      *zap.SugaredLogger
}

// NewDatasetService creates a new DatasetService implementation.
func NewDatasetService(
	engine *validator.Engine,
	datasetRepo port.DatasetRepository,
	recordRepo port.RecordRepository,
	findingRepo port.FindingRepository,
	storage port.ObjectStorage,
	cache port.ResultsCache,
	sessions *auth.Sessions,
	s3cfg *config.S3Config,
	logger *zap.SugaredLogger,
) DatasetService {
	return &datasetService{
		engine:      engine,
		datasetRepo: datasetRepo,
		recordRepo:  recordRepo,
		findingRepo: findingRepo,
		storage:     storage,
		cache:       cache,
		sessions:    sessions,
		s3cfg:       s3cfg,
		logger:      logger,
	}
}

func (s *datasetService) Upload(ctx context.Context, input UploadInput) (*UploadOutput, error) {
	if int64(len(input.Payload)) > s.s3cfg.MaxFileSizeBytes() {
		return nil, domain.ErrFileTooLarge
	}

	reader, err := ingest.ForFormat(input.Format)
	if err != nil {
		return nil, err
	}

	records, err := reader.Read(input.Payload)
	if err != nil {
		if errors.Is(err, domain.ErrDatasetInvalid) {
			// Not a record sequence. Run the engine on the non-sequence so
			// the caller gets the canonical dataset-scope issue instead of a
			// bare transport error.
			st := validator.NewState()
			result := s.engine.ValidateData(nil, st)
			metrics.ValidationVerdicts.WithLabelValues("invalid").Inc()
			return &UploadOutput{Validation: result}, nil
		}
		return nil, err
	}

	st := validator.NewState()
	result := s.engine.ValidateRecords(records, st)
	summary := validator.Summarize(result.Errors)
	metrics.ValidationIssues.WithLabelValues("error").Add(float64(summary.Errors))
	metrics.ValidationIssues.WithLabelValues("warning").Add(float64(summary.Warnings))

	if !result.IsValid {
		metrics.ValidationVerdicts.WithLabelValues("invalid").Inc()
		s.logger.Infof("datasetService.Upload: rejected %q (%d rows, %d errors, %d warnings)",
			input.Name, len(records), summary.Errors, summary.Warnings)
		return &UploadOutput{Validation: result}, nil
	}
	metrics.ValidationVerdicts.WithLabelValues("valid").Inc()

	datasetID := uuid.New()
	archiveKey := fmt.Sprintf("datasets/%s/%s", datasetID, input.Name)
	if _, err := s.storage.Archive(ctx, port.ArchiveInput{
		Bucket:      s.s3cfg.Bucket,
		Key:         archiveKey,
		Body:        bytes.NewReader(input.Payload),
		ContentType: input.Format.ContentType(),
		Size:        int64(len(input.Payload)),
	}); err != nil {
		// Archival is best effort: the validated rows are the system of
		// record, the raw file only supports re-validation and download.
		s.logger.Warnf("datasetService.Upload: archive failed for %s: %v", datasetID, err)
		archiveKey = ""
	}

	dataset := &domain.Dataset{
		ID:           datasetID,
		Name:         input.Name,
		Source:       input.Format,
		Status:       domain.DatasetStatusUploaded,
		RowCount:     len(records),
		IsValid:      true,
		ErrorCount:   summary.Errors,
		WarningCount: summary.Warnings,
		NotifyEmail:  input.NotifyEmail,
		ArchiveKey:   archiveKey,
	}
	if err := s.datasetRepo.Create(ctx, dataset); err != nil {
		return nil, fmt.Errorf("datasetService.Upload: %w", err)
	}

	if err := s.recordRepo.ReplaceForDataset(ctx, datasetID, toDemandRecords(datasetID, records)); err != nil {
		return nil, fmt.Errorf("datasetService.Upload: %w", err)
	}

	if len(result.Errors) > 0 {
		if err := s.findingRepo.ReplaceForDataset(ctx, datasetID, toFindings(datasetID, result.Errors)); err != nil {
			return nil, fmt.Errorf("datasetService.Upload: %w", err)
		}
	}

	token, expires, err := s.sessions.Issue(datasetID)
	if err != nil {
		return nil, fmt.Errorf("datasetService.Upload: %w", err)
	}

	metrics.DatasetsUploaded.WithLabelValues(string(input.Format)).Inc()
	s.logger.Infof("datasetService.Upload: accepted %q as session %s (%d rows, %d warnings)",
		input.Name, datasetID, len(records), summary.Warnings)

	return &UploadOutput{
		Dataset:      dataset,
		SessionToken: token,
		TokenExpires: expires,
		Message:      MsgUploadOK,
		Validation:   result,
	}, nil
}

// Validate runs the engine over an arbitrary JSON payload without persisting
// anything. Malformed JSON validates like any other non-sequence payload.
func (s *datasetService) Validate(payload []byte) ValidateOutput {
	var data any
	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.UseNumber()
	if err := dec.Decode(&data); err != nil {
		data = nil
	}

	st := validator.NewState()
	result := s.engine.ValidateData(data, st)
	return ValidateOutput{
		Validation: result,
		Summary:    validator.Summarize(result.Errors),
		Rows:       validator.ComputeRowStatuses(result.Errors),
		Rules:      s.engine.Rules(),
	}
}

func (s *datasetService) Rules() validator.RuleSet {
	return s.engine.Rules()
}

func (s *datasetService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Dataset, error) {
	return s.datasetRepo.GetByID(ctx, id)
}

func (s *datasetService) List(ctx context.Context, offset, limit int) ([]domain.Dataset, int, error) {
	return s.datasetRepo.List(ctx, offset, limit)
}

func (s *datasetService) Records(ctx context.Context, id uuid.UUID) ([]domain.DemandRecord, error) {
	if _, err := s.datasetRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.recordRepo.ListByDataset(ctx, id)
}

func (s *datasetService) Findings(ctx context.Context, id uuid.UUID) ([]domain.ValidationFinding, error) {
	if _, err := s.datasetRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.findingRepo.ListByDataset(ctx, id)
}

func (s *datasetService) RowFindings(ctx context.Context, id uuid.UUID, row int) ([]domain.ValidationFinding, error) {
	if _, err := s.datasetRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.findingRepo.ListByDatasetAndRow(ctx, id, row)
}

// DownloadURL returns a presigned URL for the archived raw upload. Datasets
// whose archive failed (or was deleted) have no key and report not found.
func (s *datasetService) DownloadURL(ctx context.Context, id uuid.UUID) (string, error) {
	dataset, err := s.datasetRepo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if dataset.ArchiveKey == "" {
		return "", domain.ErrNotFound
	}

	url, err := s.storage.GetPresignedURL(ctx, s.s3cfg.Bucket, dataset.ArchiveKey, s.s3cfg.PresignExpiry)
	if err != nil {
		return "", fmt.Errorf("datasetService.DownloadURL: %w", err)
	}
	return url, nil
}

func (s *datasetService) Delete(ctx context.Context, id uuid.UUID) error {
	dataset, err := s.datasetRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if dataset.ArchiveKey != "" {
		if err := s.storage.Delete(ctx, s.s3cfg.Bucket, dataset.ArchiveKey); err != nil {
			s.logger.Warnf("datasetService.Delete: archive delete failed for %s: %v", id, err)
		}
	}

	if err := s.cache.Invalidate(ctx, id.String()); err != nil {
		s.logger.Warnf("datasetService.Delete: cache invalidate failed for %s: %v", id, err)
	}

	return s.datasetRepo.Delete(ctx, id)
}

// toDemandRecords converts validated input records to their persisted form.
// Demand coercion cannot fail here: every record already passed validation.
func toDemandRecords(datasetID uuid.UUID, records []validator.Record) []domain.DemandRecord {
	out := make([]domain.DemandRecord, 0, len(records))
	for i, rec := range records {
		demand, _ := validator.DemandValue(rec.Demand)
		out = append(out, domain.DemandRecord{
			DatasetID: datasetID,
			Position:  i,
			Month:     rec.Month,
			Demand:    demand,
		})
	}
	return out
}

func toFindings(datasetID uuid.UUID, issues []validator.ValidationIssue) []domain.ValidationFinding {
	out := make([]domain.ValidationFinding, 0, len(issues))
	for _, iss := range issues {
		out = append(out, domain.ValidationFinding{
			DatasetID: datasetID,
			Row:       iss.Row,
			Field:     string(iss.Field),
			Message:   iss.Message,
			Severity:  domain.IssueSeverity(iss.Severity),
		})
	}
	return out
}
