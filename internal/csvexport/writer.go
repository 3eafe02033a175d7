package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"demandcast/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// Spanish headers, matching the product's UI language.
var (
	findingColumns = []string{"Fila", "Campo", "Severidad", "Mensaje"}
	resultColumns  = []string{"Posición", "Modelo", "MAPE", "MAE", "MSE", "RMSE", "Parámetros"}
)

// WriteFindings writes the BOM, a header row and one row per validation
// finding to w. Dataset-scope findings keep their -1 row index.
func WriteFindings(w io.Writer, findings []domain.ValidationFinding) error {
	if _, err := w.Write(BOM); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(findingColumns); err != nil {
		return err
	}
	for i := range findings {
		if err := cw.Write(findingToRow(&findings[i])); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteResults writes the BOM, a header row and one row per ranked model
// result to w.
func WriteResults(w io.Writer, results []domain.ModelResult) error {
	if _, err := w.Write(BOM); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(resultColumns); err != nil {
		return err
	}
	for i := range results {
		if err := cw.Write(resultToRow(&results[i])); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func findingToRow(f *domain.ValidationFinding) []string {
	return []string{
		strconv.Itoa(f.Row),
		f.Field,
		string(f.Severity),
		f.Message,
	}
}

func resultToRow(r *domain.ModelResult) []string {
	return []string{
		strconv.Itoa(r.Rank),
		r.ModelName,
		formatMetric(r.MAPE),
		formatMetric(r.MAE),
		formatMetric(r.MSE),
		formatMetric(r.RMSE),
		string(r.Parameters),
	}
}

// formatMetric renders a nullable metric; models without a finite score
// export as an empty cell.
func formatMetric(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', 2, 64)
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a dataset name for use in Content-Disposition.
// Replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized filename for Content-Disposition header.
// Format: {prefix}_{sanitized_dataset_name}_{YYYY-MM-DD}.csv
func BuildFilename(prefix, datasetName string) string {
	sanitized := SanitizeFilename(datasetName)
	date := time.Now().Format("2006-01-02")
	if sanitized == "" {
		return fmt.Sprintf("%s_%s.csv", prefix, date)
	}
	return fmt.Sprintf("%s_%s_%s.csv", prefix, sanitized, date)
}
