package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"demandcast/internal/config"
	"demandcast/internal/domain"
	"demandcast/internal/forecast"
	"demandcast/internal/metrics"
	"demandcast/internal/port"
)

// MsgProcessingStarted is the response message of the process endpoint,
// unchanged from the original API.
const MsgProcessingStarted = "Procesamiento iniciado"

// Results endpoint statuses, preserving the original API's vocabulary
// (a failed run reports "error", not "failed").
const (
	ResultsStatusUploaded   = "uploaded"
	ResultsStatusProcessing = "processing"
	ResultsStatusCompleted  = "completed"
	ResultsStatusError      = "error"
)

// ProcessOutput acknowledges an enqueued forecast run.
type ProcessOutput struct {
	Run     *domain.ForecastRun
	Message string
}

// ResultsOutput is the results endpoint payload and the unit stored in the
// results cache.
type ResultsOutput struct {
	SessionID string               `json:"session_id"`
	Status    string               `json:"status"`
	Results   []domain.ModelResult `json:"results,omitempty"`
	Error     string               `json:"error,omitempty"`
}

// ForecastInput is the DTO for single-model forecast requests.
type ForecastInput struct {
	SessionID uuid.UUID
	ModelName string
	Periods   int
}

// ForecastResult mirrors the original forecast response: future points plus
// the model's methodological card. Fallback marks a degraded mean forecast.
type ForecastResult struct {
	Forecast  []float64           `json:"forecast"`
	ModelName string              `json:"model_name"`
	Periods   int                 `json:"periods"`
	Fallback  bool                `json:"fallback,omitempty"`
	Error     string              `json:"error,omitempty"`
	ModelInfo *forecast.ModelInfo `json:"model_info,omitempty"`
}

// ForecastService runs the model suite against validated datasets: enqueuing
// comparison runs, serving ranked results, and extrapolating future demand.
type ForecastService interface {
	Process(ctx context.Context, sessionID uuid.UUID) (*ProcessOutput, error)
	Results(ctx context.Context, sessionID uuid.UUID) (*ResultsOutput, error)
	Forecast(ctx context.Context, input ForecastInput) (*ForecastResult, error)
	Models() map[string]forecast.ModelInfo
	ExecuteRun(ctx context.Context, run *domain.ForecastRun)
}

type forecastService struct {
	datasetRepo port.DatasetRepository
	recordRepo  port.RecordRepository
	runRepo     port.RunRepository
	resultRepo  port.ResultRepository
	cache       port.ResultsCache
	email       port.EmailSender
	runner      *forecast.Runner
	fcfg        config.ForecastConfig
	cacheTTL    time.Duration
	logger      *zap.SugaredLogger
}

// NewForecastService creates a new ForecastService implementation.
func NewForecastService(
	datasetRepo port.DatasetRepository,
	recordRepo port.RecordRepository,
	runRepo port.RunRepository,
	resultRepo port.ResultRepository,
	cache port.ResultsCache,
	email port.EmailSender,
	runner *forecast.Runner,
	fcfg config.ForecastConfig,
	cacheTTL time.Duration,
	logger *zap.SugaredLogger,
) ForecastService {
	return &forecastService{
		datasetRepo: datasetRepo,
		recordRepo:  recordRepo,
		runRepo:     runRepo,
		resultRepo:  resultRepo,
		cache:       cache,
		email:       email,
		runner:      runner,
		fcfg:        fcfg,
		cacheTTL:    cacheTTL,
		logger:      logger,
	}
}

func (s *forecastService) Process(ctx context.Context, sessionID uuid.UUID) (*ProcessOutput, error) {
	dataset, err := s.datasetRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !dataset.IsValid {
		return nil, domain.ErrDatasetInvalid
	}

	run := &domain.ForecastRun{
		ID:        uuid.New(),
		DatasetID: dataset.ID,
		Status:    domain.RunStatusPending,
	}
	if err := s.runRepo.Create(ctx, run); err != nil {
		return nil, fmt.Errorf("forecastService.Process: %w", err)
	}

	if err := s.datasetRepo.UpdateStatus(ctx, dataset.ID, domain.DatasetStatusProcessing); err != nil {
		return nil, fmt.Errorf("forecastService.Process: %w", err)
	}

	if err := s.cache.Invalidate(ctx, sessionID.String()); err != nil {
		s.logger.Warnf("forecastService.Process: cache invalidate failed for %s: %v", sessionID, err)
	}

	s.logger.Infof("forecastService.Process: run %s enqueued for session %s", run.ID, sessionID)
	return &ProcessOutput{Run: run, Message: MsgProcessingStarted}, nil
}

func (s *forecastService) Results(ctx context.Context, sessionID uuid.UUID) (*ResultsOutput, error) {
	if payload, ok, err := s.cache.Get(ctx, sessionID.String()); err != nil {
		s.logger.Warnf("forecastService.Results: cache get failed for %s: %v", sessionID, err)
	} else if ok {
		var out ResultsOutput
		if err := json.Unmarshal(payload, &out); err == nil {
			return &out, nil
		}
		s.logger.Warnf("forecastService.Results: dropping corrupt cache entry for %s", sessionID)
		_ = s.cache.Invalidate(ctx, sessionID.String())
	}

	dataset, err := s.datasetRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	out := &ResultsOutput{SessionID: dataset.ID.String()}

	run, err := s.runRepo.GetLatestByDataset(ctx, dataset.ID)
	if err != nil {
		if errors.Is(err, domain.ErrRunNotFound) {
			out.Status = ResultsStatusUploaded
			return out, nil
		}
		return nil, fmt.Errorf("forecastService.Results: %w", err)
	}

	switch run.Status {
	case domain.RunStatusPending, domain.RunStatusProcessing:
		out.Status = ResultsStatusProcessing
	case domain.RunStatusFailed:
		out.Status = ResultsStatusError
		out.Error = run.Error
	case domain.RunStatusCompleted:
		results, err := s.resultRepo.ListByRun(ctx, run.ID, s.fcfg.TopResults)
		if err != nil {
			return nil, fmt.Errorf("forecastService.Results: %w", err)
		}
		out.Status = ResultsStatusCompleted
		out.Results = results
		s.cacheResults(ctx, out)
	}
	return out, nil
}

func (s *forecastService) Forecast(ctx context.Context, input ForecastInput) (*ForecastResult, error) {
	periods := input.Periods
	if periods <= 0 {
		periods = s.fcfg.DefaultPeriods
	}
	if periods > forecast.MaxForecastPeriods {
		periods = forecast.MaxForecastPeriods
	}

	dataset, err := s.datasetRepo.GetByID(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	if !dataset.IsValid {
		return nil, domain.ErrDatasetInvalid
	}

	records, err := s.recordRepo.ListByDataset(ctx, dataset.ID)
	if err != nil {
		return nil, fmt.Errorf("forecastService.Forecast: %w", err)
	}
	series := demandSeries(records)

	out := s.runner.Forecast(input.ModelName, series, periods)
	if out.Fallback {
		metrics.ForecastFallbacks.Inc()
		s.logger.Infof("forecastService.Forecast: fallback to mean for session %s model %q: %s",
			input.SessionID, input.ModelName, out.Err)
	}

	result := &ForecastResult{
		Forecast:  out.Values,
		ModelName: out.ModelName,
		Periods:   out.Periods,
		Fallback:  out.Fallback,
		Error:     out.Err,
	}
	if info, ok := forecast.Describe(input.ModelName); ok {
		result.ModelInfo = &info
	}
	return result, nil
}

func (s *forecastService) Models() map[string]forecast.ModelInfo {
	return forecast.Descriptions()
}

// ExecuteRun performs one claimed forecast run end to end: fitting every
// model, ranking and persisting the results, updating statuses, warming the
// results cache and notifying the uploader. The run must already be in
// processing state.
func (s *forecastService) ExecuteRun(ctx context.Context, run *domain.ForecastRun) {
	start := time.Now()

	dataset, err := s.datasetRepo.GetByID(ctx, run.DatasetID)
	if err != nil {
		s.failRun(ctx, run, nil, fmt.Sprintf("dataset lookup failed: %v", err))
		return
	}

	records, err := s.recordRepo.ListByDataset(ctx, run.DatasetID)
	if err != nil {
		s.failRun(ctx, run, dataset, fmt.Sprintf("loading records failed: %v", err))
		return
	}
	if len(records) == 0 {
		s.failRun(ctx, run, dataset, "el conjunto de datos no tiene registros")
		return
	}

	evals := s.runner.EvaluateAll(demandSeries(records))
	if len(evals) == 0 {
		s.failRun(ctx, run, dataset, "ningún modelo produjo un ajuste válido")
		return
	}

	results := make([]domain.ModelResult, 0, len(evals))
	for _, eval := range evals {
		params, err := json.Marshal(eval.Parameters)
		if err != nil {
			params = json.RawMessage("{}")
		}
		preds, err := eval.PredictionsJSON()
		if err != nil {
			preds = json.RawMessage("[]")
		}
		results = append(results, domain.ModelResult{
			RunID:       run.ID,
			Rank:        eval.Rank,
			ModelName:   eval.Name,
			MAPE:        forecast.Nullable(eval.Metrics.MAPE),
			MAE:         forecast.Nullable(eval.Metrics.MAE),
			MSE:         forecast.Nullable(eval.Metrics.MSE),
			RMSE:        forecast.Nullable(eval.Metrics.RMSE),
			Parameters:  params,
			Predictions: preds,
		})
	}

	if err := s.resultRepo.ReplaceForRun(ctx, run.ID, results); err != nil {
		s.failRun(ctx, run, dataset, fmt.Sprintf("persisting results failed: %v", err))
		return
	}
	if err := s.runRepo.MarkCompleted(ctx, run.ID); err != nil {
		s.logger.Errorf("forecastService.ExecuteRun: marking run %s completed: %v", run.ID, err)
		return
	}
	if err := s.datasetRepo.UpdateStatus(ctx, dataset.ID, domain.DatasetStatusCompleted); err != nil {
		s.logger.Errorf("forecastService.ExecuteRun: updating dataset %s status: %v", dataset.ID, err)
	}

	top := results
	if s.fcfg.TopResults > 0 && len(top) > s.fcfg.TopResults {
		top = top[:s.fcfg.TopResults]
	}
	s.cacheResults(ctx, &ResultsOutput{
		SessionID: dataset.ID.String(),
		Status:    ResultsStatusCompleted,
		Results:   top,
	})

	metrics.ForecastRuns.WithLabelValues("completed").Inc()
	metrics.ForecastRunDuration.Observe(time.Since(start).Seconds())
	s.logger.Infof("forecastService.ExecuteRun: run %s completed with %d models in %s",
		run.ID, len(results), time.Since(start))

	if dataset.NotifyEmail != "" {
		best := results[0]
		if err := s.email.SendRunCompleted(ctx, dataset.NotifyEmail, port.RunNotification{
			DatasetID:   dataset.ID.String(),
			DatasetName: dataset.Name,
			BestModel:   best.ModelName,
			BestMAPE:    best.MAPE,
			ModelCount:  len(results),
		}); err != nil {
			s.logger.Warnf("forecastService.ExecuteRun: completion email for %s failed: %v", dataset.ID, err)
		}
	}
}

func (s *forecastService) failRun(ctx context.Context, run *domain.ForecastRun, dataset *domain.Dataset, reason string) {
	s.logger.Errorf("forecastService.ExecuteRun: run %s failed: %s", run.ID, reason)

	if err := s.runRepo.MarkFailed(ctx, run.ID, reason); err != nil {
		s.logger.Errorf("forecastService.ExecuteRun: marking run %s failed: %v", run.ID, err)
	}
	if dataset != nil {
		if err := s.datasetRepo.UpdateStatus(ctx, dataset.ID, domain.DatasetStatusFailed); err != nil {
			s.logger.Errorf("forecastService.ExecuteRun: updating dataset %s status: %v", dataset.ID, err)
		}
		if err := s.cache.Invalidate(ctx, dataset.ID.String()); err != nil {
			s.logger.Warnf("forecastService.ExecuteRun: cache invalidate failed for %s: %v", dataset.ID, err)
		}
		if dataset.NotifyEmail != "" {
			if err := s.email.SendRunFailed(ctx, dataset.NotifyEmail, dataset.Name, reason); err != nil {
				s.logger.Warnf("forecastService.ExecuteRun: failure email for %s failed: %v", dataset.ID, err)
			}
		}
	}
	metrics.ForecastRuns.WithLabelValues("failed").Inc()
}

func (s *forecastService) cacheResults(ctx context.Context, out *ResultsOutput) {
	payload, err := json.Marshal(out)
	if err != nil {
		s.logger.Warnf("forecastService: marshaling results for cache failed: %v", err)
		return
	}
	if err := s.cache.Set(ctx, out.SessionID, payload, s.cacheTTL); err != nil {
		s.logger.Warnf("forecastService: caching results for %s failed: %v", out.SessionID, err)
	}
}

func demandSeries(records []domain.DemandRecord) []float64 {
	series := make([]float64, len(records))
	for i, rec := range records {
		series[i] = rec.Demand
	}
	return series
}
