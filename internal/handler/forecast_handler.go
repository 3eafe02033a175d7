package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"demandcast/internal/middleware"
	"demandcast/internal/service"
)

// ForecastHandler handles forecast run and extrapolation endpoints.
type ForecastHandler struct {
	forecastService service.ForecastService
}

// NewForecastHandler creates a new ForecastHandler.
func NewForecastHandler(forecastService service.ForecastService) *ForecastHandler {
	return &ForecastHandler{forecastService: forecastService}
}

// parseSessionID validates a session_id string and checks token scope.
// Returns false with the error response already written.
func parseSessionID(c *gin.Context, raw string) (uuid.UUID, bool) {
	if raw == "" {
		RespondError(c, http.StatusBadRequest, "MISSING_SESSION_ID", "Se requiere session_id")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_SESSION_ID", "Identificador de sesión inválido")
		return uuid.Nil, false
	}
	if !middleware.SessionAllowed(c, id) {
		RespondError(c, http.StatusForbidden, "FORBIDDEN", "El token no corresponde a esta sesión")
		return uuid.Nil, false
	}
	return id, true
}

// Process handles POST /api/v1/process
// @Summary Start a forecast run
// @Description Enqueue the asynchronous model comparison for a validated session
// @Tags forecast
// @Accept json
// @Produce json
// @Param request body ProcessRequest true "Session to process"
// @Success 200 {object} Response{data=ProcessStarted} "Run enqueued"
// @Failure 400 {object} ErrorResponseBody "Missing or invalid session_id"
// @Failure 404 {object} ErrorResponseBody "Session not found"
// @Failure 422 {object} ErrorResponseBody "Dataset failed validation"
// @Router /process [post]
func (h *ForecastHandler) Process(c *gin.Context) {
	var req struct {
		SessionID string `json:"session_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "Cuerpo de petición inválido")
		return
	}

	sessionID, ok := parseSessionID(c, req.SessionID)
	if !ok {
		return
	}

	out, err := h.forecastService.Process(c.Request.Context(), sessionID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{
		"session_id": sessionID,
		"run_id":     out.Run.ID,
		"message":    out.Message,
	})
}

// Results handles GET /api/v1/results
// @Summary Get forecast results
// @Description Get the status of the latest run for a session and, when completed, its top ranked model results
// @Tags forecast
// @Produce json
// @Param session_id query string true "Session ID (UUID)"
// @Success 200 {object} Response{data=service.ResultsOutput} "Run status and ranked results"
// @Failure 400 {object} ErrorResponseBody "Missing or invalid session_id"
// @Failure 404 {object} ErrorResponseBody "Session not found"
// @Router /results [get]
func (h *ForecastHandler) Results(c *gin.Context) {
	sessionID, ok := parseSessionID(c, c.Query("session_id"))
	if !ok {
		return
	}

	out, err := h.forecastService.Results(c.Request.Context(), sessionID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, out)
}

// Forecast handles POST /api/v1/forecast
// @Summary Extrapolate future demand
// @Description Fit one named model on a session's data and project future periods. Unknown models fall back to a mean forecast.
// @Tags forecast
// @Accept json
// @Produce json
// @Param request body ForecastRequest true "Session, model and horizon"
// @Success 200 {object} Response{data=service.ForecastResult} "Forecast values and model card"
// @Failure 400 {object} ErrorResponseBody "Missing or invalid session_id"
// @Failure 404 {object} ErrorResponseBody "Session not found"
// @Failure 422 {object} ErrorResponseBody "Dataset failed validation"
// @Router /forecast [post]
func (h *ForecastHandler) Forecast(c *gin.Context) {
	var req struct {
		SessionID string `json:"session_id"`
		ModelName string `json:"model_name"`
		Periods   int    `json:"periods"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "Cuerpo de petición inválido")
		return
	}

	sessionID, ok := parseSessionID(c, req.SessionID)
	if !ok {
		return
	}

	out, err := h.forecastService.Forecast(c.Request.Context(), service.ForecastInput{
		SessionID: sessionID,
		ModelName: req.ModelName,
		Periods:   req.Periods,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, out)
}

// Models handles GET /api/v1/models
// @Summary List forecast models
// @Description List every model in the comparison suite with its equation, strengths and limitations
// @Tags forecast
// @Produce json
// @Success 200 {object} Response{data=map[string]forecast.ModelInfo} "Model catalog"
// @Router /models [get]
func (h *ForecastHandler) Models(c *gin.Context) {
	RespondOK(c, h.forecastService.Models())
}
