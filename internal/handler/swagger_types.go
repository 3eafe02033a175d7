package handler

import (
	"time"

	"github.com/google/uuid"

	"demandcast/internal/validator"
)

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// --- Request Types ---

// ProcessRequest represents the start-processing request body.
type ProcessRequest struct {
	SessionID string `json:"session_id" binding:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
}

// ForecastRequest represents the single-model forecast request body.
type ForecastRequest struct {
	SessionID string `json:"session_id" binding:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	ModelName string `json:"model_name" example:"Suavizado Exponencial Simple (SES)"`
	Periods   int    `json:"periods" example:"12"`
}

// --- Response Types ---

// UploadAccepted represents a successful dataset upload.
type UploadAccepted struct {
	SessionID    uuid.UUID                  `json:"session_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	SessionToken string                     `json:"session_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	TokenExpires time.Time                  `json:"token_expires" example:"2025-01-16T10:30:00Z"`
	Rows         int                        `json:"rows" example:"36"`
	Message      string                     `json:"message" example:"Datos cargados exitosamente"`
	Validation   validator.ValidationResult `json:"validation"`
}

// ValidationRejected represents the 422 body of a rejected upload: the full
// issue list, aggregate counts and per-row statuses.
type ValidationRejected struct {
	Success bool      `json:"success" example:"false"`
	Data    struct {
		Validation validator.ValidationResult   `json:"validation"`
		Summary    validator.Summary            `json:"summary"`
		Rows       map[int]*validator.RowStatus `json:"rows"`
	} `json:"data"`
	Error *APIError `json:"error"`
}

// ProcessStarted represents the start-processing response.
type ProcessStarted struct {
	SessionID uuid.UUID `json:"session_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	RunID     uuid.UUID `json:"run_id" example:"770e8400-e29b-41d4-a716-446655440002"`
	Message   string    `json:"message" example:"Procesamiento iniciado"`
}

// DownloadURLBody represents the presigned download URL response.
type DownloadURLBody struct {
	DownloadURL string `json:"download_url" example:"https://s3.amazonaws.com/demandcast-uploads/...?X-Amz-Signature=..."`
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Error  string `json:"error,omitempty" example:"database not reachable"`
}

// MessageResponse represents a simple message response.
type MessageResponse struct {
	Message string `json:"message" example:"Sesión eliminada"`
}

// --- Generic Response Wrappers ---

// Response wraps a successful response with data.
type Response struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// ErrorResponseBody wraps an error response.
type ErrorResponseBody struct {
	Success bool      `json:"success" example:"false"`
	Error   *APIError `json:"error"`
}
