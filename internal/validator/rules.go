package validator

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var monthPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

const (
	yearMin = 1900
	yearMax = 2100
)

// User-facing messages, kept verbatim from the product's Spanish UI copy.
const (
	msgDemandRequired  = "El valor de demanda es requerido"
	msgDemandNotNumber = "El valor de demanda debe ser un número válido"
	msgDemandNegative  = "El valor de demanda no puede ser negativo"
	msgDemandTooLarge  = "El valor de demanda es demasiado grande"

	msgMonthRequired = "El mes es requerido"
	msgMonthFormat   = "El formato del mes debe ser YYYY-MM (ej: 2024-01)"
	msgMonthRange    = "El mes debe estar entre 01 y 12"
	msgYearRange     = "El año debe estar entre 1900 y 2100"

	msgNotASequence = "Los datos deben ser un array válido"
)

func minRowsMessage(min int) string {
	return fmt.Sprintf("Se requieren al menos %d registros de demanda", min)
}

func maxRowsMessage(max int) string {
	return fmt.Sprintf("No se permiten más de %d registros de demanda", max)
}

func duplicateMonthsMessage(months []string) string {
	return fmt.Sprintf("Existen meses duplicados en los datos: %s", strings.Join(months, ", "))
}

func issue(row int, field Field, message string, severity Severity) *ValidationIssue {
	return &ValidationIssue{Row: row, Field: field, Message: message, Severity: severity}
}

// emptyDemand reports whether a demand value counts as missing: nil or a
// blank/whitespace-only string.
func emptyDemand(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}

// toFinite coerces a demand value to a finite float64. Numeric strings
// (including decimals) coerce; NaN, infinities, and every non-numeric type do
// not.
func toFinite(v any) (float64, bool) {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case float32:
		f = float64(t)
	case int:
		f = float64(t)
	case int32:
		f = float64(t)
	case int64:
		f = float64(t)
	case uint:
		f = float64(t)
	case uint32:
		f = float64(t)
	case uint64:
		f = float64(t)
	case json.Number:
		parsed, err := t.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// DemandValue coerces a demand value to a finite float64 using the same
// rules the demand validator applies. Callers persisting validated records
// use it instead of re-implementing the coercion.
func DemandValue(v any) (float64, bool) {
	if emptyDemand(v) {
		return 0, false
	}
	return toFinite(v)
}

// MonthString renders a month value for validation. The canonical input is
// already a string; anything else is stringified so it fails the format check
// with a useful message instead of panicking on shape.
func MonthString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}
