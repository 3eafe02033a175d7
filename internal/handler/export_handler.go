package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"demandcast/internal/csvexport"
	"demandcast/internal/domain"
	"demandcast/internal/middleware"
	"demandcast/internal/service"
)

// ExportHandler handles CSV export endpoints.
type ExportHandler struct {
	datasetService  service.DatasetService
	forecastService service.ForecastService
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(datasetService service.DatasetService, forecastService service.ForecastService) *ExportHandler {
	return &ExportHandler{datasetService: datasetService, forecastService: forecastService}
}

// writeCSV sets the download headers and streams the CSV body. Write errors
// after the status line are only loggable.
func writeCSV(c *gin.Context, filename string, write func() error) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Status(http.StatusOK)

	if err := write(); err != nil {
		middleware.GetLogger(c).Errorw("csv export failed", "error", err)
	}
}

// Results handles GET /api/v1/export/results
// @Summary Export forecast results as CSV
// @Description Download the ranked model results of a completed run as a UTF-8 BOM CSV (Excel compatible)
// @Tags export
// @Produce text/csv
// @Param session_id query string true "Session ID (UUID)"
// @Success 200 {string} string "CSV file"
// @Failure 400 {object} ErrorResponseBody "Missing or invalid session_id"
// @Failure 404 {object} ErrorResponseBody "Session not found"
// @Failure 409 {object} ErrorResponseBody "Run not completed yet"
// @Router /export/results [get]
func (h *ExportHandler) Results(c *gin.Context) {
	sessionID, ok := parseSessionID(c, c.Query("session_id"))
	if !ok {
		return
	}

	dataset, err := h.datasetService.GetByID(c.Request.Context(), sessionID)
	if err != nil {
		HandleError(c, err)
		return
	}

	out, err := h.forecastService.Results(c.Request.Context(), sessionID)
	if err != nil {
		HandleError(c, err)
		return
	}
	if out.Status != service.ResultsStatusCompleted {
		HandleError(c, domain.ErrDatasetNotReady)
		return
	}

	writeCSV(c, csvexport.BuildFilename("resultados", dataset.Name), func() error {
		return csvexport.WriteResults(c.Writer, out.Results)
	})
}

// Issues handles GET /api/v1/export/issues
// @Summary Export validation issues as CSV
// @Description Download the validation findings of a dataset as a UTF-8 BOM CSV (Excel compatible)
// @Tags export
// @Produce text/csv
// @Param session_id query string true "Session ID (UUID)"
// @Success 200 {string} string "CSV file"
// @Failure 400 {object} ErrorResponseBody "Missing or invalid session_id"
// @Failure 404 {object} ErrorResponseBody "Session not found"
// @Router /export/issues [get]
func (h *ExportHandler) Issues(c *gin.Context) {
	sessionID, ok := parseSessionID(c, c.Query("session_id"))
	if !ok {
		return
	}

	dataset, err := h.datasetService.GetByID(c.Request.Context(), sessionID)
	if err != nil {
		HandleError(c, err)
		return
	}

	findings, err := h.datasetService.Findings(c.Request.Context(), sessionID)
	if err != nil {
		HandleError(c, err)
		return
	}

	writeCSV(c, csvexport.BuildFilename("hallazgos", dataset.Name), func() error {
		return csvexport.WriteFindings(c.Writer, findings)
	})
}
