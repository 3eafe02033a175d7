package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"demandcast/internal/service"
)

// ValidationHandler handles the stateless validation endpoints.
type ValidationHandler struct {
	datasetService service.DatasetService
}

// NewValidationHandler creates a new ValidationHandler.
func NewValidationHandler(datasetService service.DatasetService) *ValidationHandler {
	return &ValidationHandler{datasetService: datasetService}
}

// Validate handles POST /api/v1/validate
// @Summary Validate demand data
// @Description Run the validation engine over a JSON payload without persisting anything. Always returns 200; the verdict is in the body.
// @Tags validation
// @Accept json
// @Produce json
// @Param payload body []validator.Record true "Demand records"
// @Success 200 {object} Response{data=service.ValidateOutput} "Validation verdict, issues, per-row statuses and applied rules"
// @Failure 400 {object} ErrorResponseBody "Unreadable body"
// @Router /validate [post]
func (h *ValidationHandler) Validate(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "UNREADABLE_BODY", "No se pudo leer el cuerpo de la petición")
		return
	}

	RespondOK(c, h.datasetService.Validate(payload))
}

// Rules handles GET /api/v1/rules
// @Summary Get validation rules
// @Description Get the rule set the validation engine applies to every dataset
// @Tags validation
// @Produce json
// @Success 200 {object} Response{data=validator.RuleSet} "Active validation rules"
// @Router /rules [get]
func (h *ValidationHandler) Rules(c *gin.Context) {
	RespondOK(c, h.datasetService.Rules())
}
