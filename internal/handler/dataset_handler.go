package handler

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"demandcast/internal/domain"
	"demandcast/internal/ingest"
	"demandcast/internal/middleware"
	"demandcast/internal/service"
	"demandcast/internal/validator"
)

// DatasetHandler handles dataset upload and session endpoints.
type DatasetHandler struct {
	datasetService service.DatasetService
}

// NewDatasetHandler creates a new DatasetHandler.
func NewDatasetHandler(datasetService service.DatasetService) *DatasetHandler {
	return &DatasetHandler{datasetService: datasetService}
}

// parseDatasetID parses the :id path param and checks that a presented
// session token (if any) is scoped to it. Returns false with the error
// response already written.
func parseDatasetID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "Identificador de sesión inválido")
		return uuid.Nil, false
	}
	if !middleware.SessionAllowed(c, id) {
		RespondError(c, http.StatusForbidden, "FORBIDDEN", "El token no corresponde a esta sesión")
		return uuid.Nil, false
	}
	return id, true
}

// parsePagination extracts offset/limit query params with bounds applied.
func parsePagination(c *gin.Context) (offset, limit int) {
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return offset, limit
}

// readUploadPayload extracts the raw bytes, display name, detected format and
// notification email from either a multipart form upload or a raw body.
// Returns ok=false with the error response already written.
func readUploadPayload(c *gin.Context) (input service.UploadInput, ok bool) {
	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		file, header, err := c.Request.FormFile("file")
		if err != nil {
			RespondError(c, http.StatusBadRequest, "MISSING_FILE", `Se requiere el campo de archivo "file"`)
			return input, false
		}
		defer func() { _ = file.Close() }()

		payload, err := io.ReadAll(file)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "UNREADABLE_FILE", "No se pudo leer el archivo")
			return input, false
		}

		format, err := ingest.DetectFormat(header.Filename, header.Header.Get("Content-Type"))
		if err != nil {
			HandleError(c, err)
			return input, false
		}

		return service.UploadInput{
			Name:        header.Filename,
			Format:      format,
			Payload:     payload,
			NotifyEmail: c.PostForm("notify_email"),
		}, true
	}

	// Raw body: a JSON array by default, or whatever ?name= implies.
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "UNREADABLE_BODY", "No se pudo leer el cuerpo de la petición")
		return input, false
	}

	name := c.Query("name")
	if name == "" {
		name = "datos.json"
	}
	format, err := ingest.DetectFormat(name, c.ContentType())
	if err != nil {
		HandleError(c, err)
		return input, false
	}

	return service.UploadInput{
		Name:        name,
		Format:      format,
		Payload:     payload,
		NotifyEmail: c.Query("notify_email"),
	}, true
}

// firstErrorMessage returns the message of the first error-severity issue,
// the most specific one-line reason an upload was rejected.
func firstErrorMessage(result validator.ValidationResult) string {
	for _, iss := range result.Errors {
		if iss.Severity == validator.SeverityError {
			return iss.Message
		}
	}
	return "Los datos no pasaron la validación"
}

// Upload handles POST /api/v1/datasets
// @Summary Upload a demand dataset
// @Description Upload monthly demand data (CSV, XLSX, or JSON; max size configurable). Valid datasets open a session for forecasting; invalid ones return the full issue list.
// @Tags datasets
// @Accept multipart/form-data
// @Accept json
// @Produce json
// @Param file formData file false "Demand data file (CSV, XLSX, or JSON)"
// @Param notify_email formData string false "Email notified when forecasting completes"
// @Success 201 {object} Response{data=UploadAccepted} "Dataset accepted and session opened"
// @Failure 400 {object} ErrorResponseBody "Missing file or unsupported format"
// @Failure 413 {object} ErrorResponseBody "File too large"
// @Failure 422 {object} ValidationRejected "Dataset failed validation"
// @Failure 500 {object} ErrorResponseBody "Storage failure"
// @Router /datasets [post]
func (h *DatasetHandler) Upload(c *gin.Context) {
	input, ok := readUploadPayload(c)
	if !ok {
		return
	}

	out, err := h.datasetService.Upload(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	if out.Dataset == nil {
		c.JSON(http.StatusUnprocessableEntity, APIResponse{
			Success: false,
			Data: gin.H{
				"validation": out.Validation,
				"summary":    validator.Summarize(out.Validation.Errors),
				"rows":       validator.ComputeRowStatuses(out.Validation.Errors),
			},
			Error: &APIError{Code: "VALIDATION_FAILED", Message: firstErrorMessage(out.Validation)},
		})
		return
	}

	RespondCreated(c, gin.H{
		"session_id":    out.Dataset.ID,
		"session_token": out.SessionToken,
		"token_expires": out.TokenExpires,
		"rows":          out.Dataset.RowCount,
		"message":       out.Message,
		"validation":    out.Validation,
	})
}

// List handles GET /api/v1/datasets
// @Summary List datasets
// @Description List all uploaded datasets with pagination (admin only)
// @Tags datasets
// @Produce json
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.Dataset,meta=PagMeta} "List of datasets"
// @Failure 401 {object} ErrorResponseBody "Missing or invalid API key"
// @Security AdminKey
// @Router /datasets [get]
func (h *DatasetHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)

	datasets, total, err := h.datasetService.List(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, datasets, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/datasets/:id
// @Summary Get dataset by ID
// @Description Get one dataset's metadata and validation outcome
// @Tags datasets
// @Produce json
// @Param id path string true "Dataset ID (UUID)"
// @Success 200 {object} Response{data=domain.Dataset} "Dataset"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 404 {object} ErrorResponseBody "Session not found"
// @Router /datasets/{id} [get]
func (h *DatasetHandler) GetByID(c *gin.Context) {
	id, ok := parseDatasetID(c)
	if !ok {
		return
	}

	dataset, err := h.datasetService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, dataset)
}

// Records handles GET /api/v1/datasets/:id/records
// @Summary List dataset records
// @Description List the persisted demand records of a dataset in input order
// @Tags datasets
// @Produce json
// @Param id path string true "Dataset ID (UUID)"
// @Success 200 {object} Response{data=[]domain.DemandRecord} "Demand records"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 404 {object} ErrorResponseBody "Session not found"
// @Router /datasets/{id}/records [get]
func (h *DatasetHandler) Records(c *gin.Context) {
	id, ok := parseDatasetID(c)
	if !ok {
		return
	}

	records, err := h.datasetService.Records(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, records)
}

// Issues handles GET /api/v1/datasets/:id/issues
// @Summary List validation issues
// @Description List the validation findings of a dataset, optionally filtered to one row
// @Tags datasets
// @Produce json
// @Param id path string true "Dataset ID (UUID)"
// @Param row query int false "Filter to a single row index (-1 for dataset-scope issues)"
// @Success 200 {object} Response{data=[]domain.ValidationFinding} "Validation findings"
// @Failure 400 {object} ErrorResponseBody "Invalid ID or row"
// @Failure 404 {object} ErrorResponseBody "Session not found"
// @Router /datasets/{id}/issues [get]
func (h *DatasetHandler) Issues(c *gin.Context) {
	id, ok := parseDatasetID(c)
	if !ok {
		return
	}

	var (
		findings []domain.ValidationFinding
		err      error
	)
	if rowStr := c.Query("row"); rowStr != "" {
		row, convErr := strconv.Atoi(rowStr)
		if convErr != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_ROW", `El parámetro "row" debe ser un número entero`)
			return
		}
		findings, err = h.datasetService.RowFindings(c.Request.Context(), id, row)
	} else {
		findings, err = h.datasetService.Findings(c.Request.Context(), id)
	}
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, findings)
}

// Download handles GET /api/v1/datasets/:id/download
// @Summary Download the original upload
// @Description Get a presigned URL for the archived raw file
// @Tags datasets
// @Produce json
// @Param id path string true "Dataset ID (UUID)"
// @Success 200 {object} Response{data=DownloadURLBody} "Presigned download URL"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 404 {object} ErrorResponseBody "Session or archive not found"
// @Router /datasets/{id}/download [get]
func (h *DatasetHandler) Download(c *gin.Context) {
	id, ok := parseDatasetID(c)
	if !ok {
		return
	}

	url, err := h.datasetService.DownloadURL(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"download_url": url})
}

// Delete handles DELETE /api/v1/datasets/:id
// @Summary Delete a dataset
// @Description Delete a dataset, its records, findings, runs and archived file (admin only)
// @Tags datasets
// @Produce json
// @Param id path string true "Dataset ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse} "Dataset deleted"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 401 {object} ErrorResponseBody "Missing or invalid API key"
// @Failure 404 {object} ErrorResponseBody "Session not found"
// @Security AdminKey
// @Router /datasets/{id} [delete]
func (h *DatasetHandler) Delete(c *gin.Context) {
	id, ok := parseDatasetID(c)
	if !ok {
		return
	}

	if err := h.datasetService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "Sesión eliminada"})
}
