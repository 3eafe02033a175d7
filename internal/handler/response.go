package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"demandcast/internal/domain"
	"demandcast/internal/middleware"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PagMeta holds pagination metadata.
type PagMeta struct {
	Total  int `json:"total"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondCreated sends a 201 success response.
func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

// RespondPaginated sends a 200 success response with pagination metadata.
func RespondPaginated(c *gin.Context, data interface{}, meta PagMeta) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data, Meta: &meta})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error
// codes. Messages are in Spanish, the product's API language.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusNotFound, "SESSION_NOT_FOUND", "Sesión no encontrada"
	case errors.Is(err, domain.ErrRunNotFound):
		return http.StatusNotFound, "RUN_NOT_FOUND", "No se encontró una ejecución de pronóstico"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", "Recurso no encontrado"
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "UNAUTHORIZED", "No autorizado"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "FORBIDDEN", "Acceso denegado"
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusUnauthorized, "INVALID_TOKEN", "Token de sesión inválido o expirado"
	case errors.Is(err, domain.ErrDatasetInvalid):
		return http.StatusUnprocessableEntity, "DATASET_INVALID", "Los datos no pasaron la validación"
	case errors.Is(err, domain.ErrDatasetNotReady):
		return http.StatusConflict, "DATASET_NOT_READY", "El procesamiento aún no ha finalizado"
	case errors.Is(err, domain.ErrModelUnknown):
		return http.StatusBadRequest, "MODEL_UNKNOWN", "Modelo de pronóstico desconocido"
	case errors.Is(err, domain.ErrEmptyFile):
		return http.StatusBadRequest, "EMPTY_FILE", "El archivo está vacío"
	case errors.Is(err, domain.ErrUnsupportedFormat):
		return http.StatusBadRequest, "UNSUPPORTED_FORMAT", "Formato de archivo no soportado; se permiten csv, xlsx, json"
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "El archivo supera el tamaño máximo permitido"
	case errors.Is(err, domain.ErrMissingColumns):
		return http.StatusBadRequest, "MISSING_COLUMNS", `El archivo debe contener las columnas "month" y "demand"`
	case errors.Is(err, domain.ErrUploadFailed):
		return http.StatusInternalServerError, "UPLOAD_FAILED", "No se pudo almacenar el archivo"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "Ocurrió un error interno"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		middleware.GetLogger(c).Errorw("internal error", "error", err)
	}
	RespondError(c, status, code, msg)
}
