package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"demandcast/internal/handler"
	"demandcast/internal/service"
	"demandcast/internal/validator"
	"demandcast/mocks"
)

func newValidationHandler() (*handler.ValidationHandler, *mocks.MockDatasetService) {
	mockSvc := new(mocks.MockDatasetService)
	h := handler.NewValidationHandler(mockSvc)
	return h, mockSvc
}

// --- Validate ---

func TestValidationHandler_Validate_Valid(t *testing.T) {
	h, mockSvc := newValidationHandler()

	out := service.ValidateOutput{
		Validation: validator.ValidationResult{IsValid: true, Errors: []validator.ValidationIssue{}},
		Summary:    validator.Summary{Total: 0, Errors: 0, Warnings: 0},
		Rows:       map[int]*validator.RowStatus{},
		Rules:      validator.DefaultRuleSet(),
	}

	payload := []byte(`[{"month":"2024-01","demand":100}]`)

	mockSvc.On("Validate", payload).Return(out)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/validate", bytes.NewReader(payload))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Validate(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.True(t, resp.Success)

	data, ok := resp.Data.(map[string]interface{})
	assert.True(t, ok)
	assert.Contains(t, data, "validation")
	assert.Contains(t, data, "summary")
	assert.Contains(t, data, "rules")
	mockSvc.AssertExpectations(t)
}

func TestValidationHandler_Validate_WithIssues(t *testing.T) {
	h, mockSvc := newValidationHandler()

	out := service.ValidateOutput{
		Validation: validator.ValidationResult{
			IsValid: false,
			Errors: []validator.ValidationIssue{
				{
					Row:      2,
					Field:    validator.FieldDemand,
					Message:  "El valor de demanda no puede ser negativo",
					Severity: validator.SeverityError,
				},
			},
		},
		Summary: validator.Summary{Total: 1, Errors: 1, Warnings: 0},
		Rows: map[int]*validator.RowStatus{
			2: {Status: validator.RowStatusInvalid, Messages: []string{"El valor de demanda no puede ser negativo"}},
		},
		Rules: validator.DefaultRuleSet(),
	}

	mockSvc.On("Validate", mock.AnythingOfType("[]uint8")).Return(out)

	payload := []byte(`[{"month":"2024-01","demand":-5}]`)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/validate", bytes.NewReader(payload))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Validate(c)

	// Stateless validation always answers 200; the verdict lives in the body.
	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.True(t, resp.Success)

	data, ok := resp.Data.(map[string]interface{})
	assert.True(t, ok)
	validation, ok := data["validation"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, false, validation["isValid"])
	mockSvc.AssertExpectations(t)
}

// --- Rules ---

func TestValidationHandler_Rules(t *testing.T) {
	h, mockSvc := newValidationHandler()

	mockSvc.On("Rules").Return(validator.DefaultRuleSet())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/rules", http.NoBody)

	h.Rules(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.True(t, resp.Success)

	data, ok := resp.Data.(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, float64(12), data["minRows"])
	assert.Equal(t, float64(120), data["maxRows"])
	mockSvc.AssertExpectations(t)
}
