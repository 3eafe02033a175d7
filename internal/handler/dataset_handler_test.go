package handler_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"demandcast/internal/auth"
	"demandcast/internal/domain"
	"demandcast/internal/handler"
	"demandcast/internal/middleware"
	"demandcast/internal/service"
	"demandcast/internal/validator"
	"demandcast/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// setSessionClaims emulates SessionAuth having accepted a token issued for the
// given session.
func setSessionClaims(c *gin.Context, sessionID uuid.UUID) {
	c.Set(middleware.ContextKeySessionID, sessionID)
	c.Set(middleware.ContextKeyClaims, &auth.SessionClaims{SessionID: sessionID})
}

func newDatasetHandler() (*handler.DatasetHandler, *mocks.MockDatasetService) {
	mockSvc := new(mocks.MockDatasetService)
	h := handler.NewDatasetHandler(mockSvc)
	return h, mockSvc
}

// --- Upload ---

func TestDatasetHandler_Upload_Success(t *testing.T) {
	h, mockSvc := newDatasetHandler()

	sessionID := uuid.New()

	out := &service.UploadOutput{
		Dataset: &domain.Dataset{
			ID:       sessionID,
			Name:     "ventas.csv",
			Source:   domain.SourceCSV,
			Status:   domain.DatasetStatusUploaded,
			RowCount: 24,
			IsValid:  true,
		},
		SessionToken: "eyJhbGciOiJIUzI1NiJ9.session.token",
		TokenExpires: time.Now().Add(24 * time.Hour),
		Message:      "Datos cargados exitosamente",
		Validation:   validator.ValidationResult{IsValid: true, Errors: []validator.ValidationIssue{}},
	}

	mockSvc.On("Upload", mock.Anything, mock.MatchedBy(func(input service.UploadInput) bool {
		return input.Name == "ventas.csv" &&
			input.Format == domain.SourceCSV &&
			len(input.Payload) > 0 &&
			input.NotifyEmail == "ops@example.com"
	})).Return(out, nil)

	// Create multipart form body
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, _ := writer.CreateFormFile("file", "ventas.csv")
	part.Write([]byte("month,demand\n2024-01,100\n2024-02,110\n"))
	writer.WriteField("notify_email", "ops@example.com")
	writer.Close()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/datasets", body)
	c.Request.Header.Set("Content-Type", writer.FormDataContentType())

	h.Upload(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp handler.APIResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.True(t, resp.Success)

	data, ok := resp.Data.(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, sessionID.String(), data["session_id"])
	assert.Equal(t, "Datos cargados exitosamente", data["message"])
	assert.NotEmpty(t, data["session_token"])
	mockSvc.AssertExpectations(t)
}

func TestDatasetHandler_Upload_ValidationRejected(t *testing.T) {
	h, mockSvc := newDatasetHandler()

	out := &service.UploadOutput{
		Validation: validator.ValidationResult{
			IsValid: false,
			Errors: []validator.ValidationIssue{
				{
					Row:      validator.DatasetRow,
					Field:    validator.FieldGeneral,
					Message:  "Se requieren al menos 12 registros de demanda",
					Severity: validator.SeverityError,
				},
				{
					Row:      3,
					Field:    validator.FieldMonth,
					Message:  "El año está fuera del rango esperado (1900-2100)",
					Severity: validator.SeverityWarning,
				},
			},
		},
	}

	mockSvc.On("Upload", mock.Anything, mock.AnythingOfType("service.UploadInput")).Return(out, nil)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, _ := writer.CreateFormFile("file", "corto.csv")
	part.Write([]byte("month,demand\n2024-01,100\n"))
	writer.Close()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/datasets", body)
	c.Request.Header.Set("Content-Type", writer.FormDataContentType())

	h.Upload(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp handler.APIResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "VALIDATION_FAILED", resp.Error.Code)
	assert.Equal(t, "Se requieren al menos 12 registros de demanda", resp.Error.Message)

	data, ok := resp.Data.(map[string]interface{})
	assert.True(t, ok)
	assert.Contains(t, data, "validation")
	assert.Contains(t, data, "summary")
	assert.Contains(t, data, "rows")
	mockSvc.AssertExpectations(t)
}

func TestDatasetHandler_Upload_RawJSONBody(t *testing.T) {
	h, mockSvc := newDatasetHandler()

	sessionID := uuid.New()

	out := &service.UploadOutput{
		Dataset: &domain.Dataset{
			ID:       sessionID,
			Name:     "datos.json",
			Source:   domain.SourceJSON,
			RowCount: 12,
			IsValid:  true,
		},
		Message:    "Datos cargados exitosamente",
		Validation: validator.ValidationResult{IsValid: true, Errors: []validator.ValidationIssue{}},
	}

	mockSvc.On("Upload", mock.Anything, mock.MatchedBy(func(input service.UploadInput) bool {
		return input.Name == "datos.json" && input.Format == domain.SourceJSON
	})).Return(out, nil)

	payload := []byte(`[{"month":"2024-01","demand":100}]`)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/datasets", bytes.NewReader(payload))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Upload(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestDatasetHandler_Upload_MissingFile(t *testing.T) {
	h, _ := newDatasetHandler()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	writer.WriteField("notify_email", "ops@example.com")
	writer.Close()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/datasets", body)
	c.Request.Header.Set("Content-Type", writer.FormDataContentType())

	h.Upload(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp handler.APIResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.Equal(t, "MISSING_FILE", resp.Error.Code)
}

func TestDatasetHandler_Upload_UnsupportedFormat(t *testing.T) {
	h, _ := newDatasetHandler()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, _ := writer.CreateFormFile("file", "ventas.pdf")
	part.Write([]byte("%PDF-1.4"))
	writer.Close()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/datasets", body)
	c.Request.Header.Set("Content-Type", writer.FormDataContentType())

	h.Upload(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp handler.APIResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.Equal(t, "UNSUPPORTED_FORMAT", resp.Error.Code)
}

func TestDatasetHandler_Upload_FileTooLarge(t *testing.T) {
	h, mockSvc := newDatasetHandler()

	mockSvc.On("Upload", mock.Anything, mock.AnythingOfType("service.UploadInput")).
		Return(nil, domain.ErrFileTooLarge)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, _ := writer.CreateFormFile("file", "grande.csv")
	part.Write([]byte("month,demand\n2024-01,100\n"))
	writer.Close()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/datasets", body)
	c.Request.Header.Set("Content-Type", writer.FormDataContentType())

	h.Upload(c)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

// --- List ---

func TestDatasetHandler_List_Success(t *testing.T) {
	h, mockSvc := newDatasetHandler()

	datasets := []domain.Dataset{
		{ID: uuid.New(), Name: "ventas.csv", Status: domain.DatasetStatusCompleted},
		{ID: uuid.New(), Name: "demanda.xlsx", Status: domain.DatasetStatusUploaded},
	}

	mockSvc.On("List", mock.Anything, 0, 20).Return(datasets, 2, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/datasets?offset=0&limit=20", http.NoBody)

	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.True(t, resp.Success)
	assert.NotNil(t, resp.Meta)
	assert.Equal(t, 2, resp.Meta.Total)
	mockSvc.AssertExpectations(t)
}

func TestDatasetHandler_List_ClampsPagination(t *testing.T) {
	h, mockSvc := newDatasetHandler()

	mockSvc.On("List", mock.Anything, 0, 20).Return([]domain.Dataset{}, 0, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/datasets?offset=-5&limit=1000", http.NoBody)

	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

// --- GetByID ---

func TestDatasetHandler_GetByID_Success(t *testing.T) {
	h, mockSvc := newDatasetHandler()

	datasetID := uuid.New()

	expected := &domain.Dataset{
		ID:       datasetID,
		Name:     "ventas.csv",
		Status:   domain.DatasetStatusCompleted,
		RowCount: 36,
		IsValid:  true,
	}

	mockSvc.On("GetByID", mock.Anything, datasetID).Return(expected, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/datasets/"+datasetID.String(), http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: datasetID.String()}}

	h.GetByID(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.True(t, resp.Success)
	mockSvc.AssertExpectations(t)
}

func TestDatasetHandler_GetByID_NotFound(t *testing.T) {
	h, mockSvc := newDatasetHandler()

	datasetID := uuid.New()

	mockSvc.On("GetByID", mock.Anything, datasetID).Return(nil, domain.ErrSessionNotFound)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/datasets/"+datasetID.String(), http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: datasetID.String()}}

	h.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp handler.APIResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.Equal(t, "SESSION_NOT_FOUND", resp.Error.Code)
	assert.Equal(t, "Sesión no encontrada", resp.Error.Message)
}

func TestDatasetHandler_GetByID_InvalidID(t *testing.T) {
	h, _ := newDatasetHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/datasets/not-a-uuid", http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}

	h.GetByID(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDatasetHandler_GetByID_TokenScopedToOtherSession(t *testing.T) {
	h, _ := newDatasetHandler()

	datasetID := uuid.New()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/datasets/"+datasetID.String(), http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: datasetID.String()}}
	setSessionClaims(c, uuid.New())

	h.GetByID(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDatasetHandler_GetByID_TokenMatchesSession(t *testing.T) {
	h, mockSvc := newDatasetHandler()

	datasetID := uuid.New()

	mockSvc.On("GetByID", mock.Anything, datasetID).
		Return(&domain.Dataset{ID: datasetID, IsValid: true}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/datasets/"+datasetID.String(), http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: datasetID.String()}}
	setSessionClaims(c, datasetID)

	h.GetByID(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

// --- Records ---

func TestDatasetHandler_Records_Success(t *testing.T) {
	h, mockSvc := newDatasetHandler()

	datasetID := uuid.New()

	records := []domain.DemandRecord{
		{DatasetID: datasetID, Position: 0, Month: "2024-01", Demand: 100},
		{DatasetID: datasetID, Position: 1, Month: "2024-02", Demand: 115.5},
	}

	mockSvc.On("Records", mock.Anything, datasetID).Return(records, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/datasets/"+datasetID.String()+"/records", http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: datasetID.String()}}

	h.Records(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.True(t, resp.Success)
	mockSvc.AssertExpectations(t)
}

// --- Issues ---

func TestDatasetHandler_Issues_All(t *testing.T) {
	h, mockSvc := newDatasetHandler()

	datasetID := uuid.New()

	findings := []domain.ValidationFinding{
		{DatasetID: datasetID, Row: -1, Field: "general", Message: "Se requieren al menos 12 registros de demanda", Severity: domain.IssueSeverityError},
	}

	mockSvc.On("Findings", mock.Anything, datasetID).Return(findings, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/datasets/"+datasetID.String()+"/issues", http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: datasetID.String()}}

	h.Issues(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestDatasetHandler_Issues_RowFilter(t *testing.T) {
	h, mockSvc := newDatasetHandler()

	datasetID := uuid.New()

	findings := []domain.ValidationFinding{
		{DatasetID: datasetID, Row: 4, Field: "demand", Message: "El valor de demanda no puede ser negativo", Severity: domain.IssueSeverityError},
	}

	mockSvc.On("RowFindings", mock.Anything, datasetID, 4).Return(findings, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/datasets/"+datasetID.String()+"/issues?row=4", http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: datasetID.String()}}

	h.Issues(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestDatasetHandler_Issues_DatasetScopeRow(t *testing.T) {
	h, mockSvc := newDatasetHandler()

	datasetID := uuid.New()

	mockSvc.On("RowFindings", mock.Anything, datasetID, -1).Return([]domain.ValidationFinding{}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/datasets/"+datasetID.String()+"/issues?row=-1", http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: datasetID.String()}}

	h.Issues(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestDatasetHandler_Issues_InvalidRow(t *testing.T) {
	h, _ := newDatasetHandler()

	datasetID := uuid.New()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/datasets/"+datasetID.String()+"/issues?row=cuatro", http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: datasetID.String()}}

	h.Issues(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp handler.APIResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.Equal(t, "INVALID_ROW", resp.Error.Code)
}

// --- Download ---

func TestDatasetHandler_Download_Success(t *testing.T) {
	h, mockSvc := newDatasetHandler()

	datasetID := uuid.New()

	mockSvc.On("DownloadURL", mock.Anything, datasetID).
		Return("https://s3.example.com/signed-url", nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/datasets/"+datasetID.String()+"/download", http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: datasetID.String()}}

	h.Download(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)

	data, ok := resp.Data.(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "https://s3.example.com/signed-url", data["download_url"])
	mockSvc.AssertExpectations(t)
}

func TestDatasetHandler_Download_NoArchive(t *testing.T) {
	h, mockSvc := newDatasetHandler()

	datasetID := uuid.New()

	mockSvc.On("DownloadURL", mock.Anything, datasetID).Return("", domain.ErrNotFound)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/datasets/"+datasetID.String()+"/download", http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: datasetID.String()}}

	h.Download(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Delete ---

func TestDatasetHandler_Delete_Success(t *testing.T) {
	h, mockSvc := newDatasetHandler()

	datasetID := uuid.New()

	mockSvc.On("Delete", mock.Anything, datasetID).Return(nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodDelete, "/api/v1/datasets/"+datasetID.String(), http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: datasetID.String()}}

	h.Delete(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestDatasetHandler_Delete_NotFound(t *testing.T) {
	h, mockSvc := newDatasetHandler()

	datasetID := uuid.New()

	mockSvc.On("Delete", mock.Anything, datasetID).Return(domain.ErrSessionNotFound)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodDelete, "/api/v1/datasets/"+datasetID.String(), http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: datasetID.String()}}

	h.Delete(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDatasetHandler_Delete_InvalidID(t *testing.T) {
	h, _ := newDatasetHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodDelete, "/api/v1/datasets/bad-id", http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: "bad-id"}}

	h.Delete(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
