// Package validator implements the demand-data validation engine: field,
// row, and dataset checks for monthly demand series, plus a retained issue
// list that callers can query by row or by field after a dataset pass.
//
// The engine itself is immutable and safe for concurrent use; all mutable
// state lives in an externally owned State, one per validation session.
package validator

// Severity classifies a validation issue. Errors block acceptance of the
// dataset; warnings are advisory and never affect validity.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Field names the record field an issue refers to. Dataset-scope issues use
// FieldGeneral.
type Field string

const (
	FieldMonth   Field = "month"
	FieldDemand  Field = "demand"
	FieldGeneral Field = "general"
)

// DatasetRow is the row index reported on dataset-scope issues (wrong
// container shape, row-count bounds, duplicate months).
const DatasetRow = -1

// Record is one input row of the time series: a month label and a demand
// value. Demand may arrive as a number or a numeric-looking string, depending
// on the upload format; coercion is the engine's job, not the caller's.
type Record struct {
	Month  string `json:"month"`
	Demand any    `json:"demand"`
}

// ValidationIssue is a single validation finding. Issues are immutable value
// objects; Row is 0-based input position, or DatasetRow for dataset scope.
type ValidationIssue struct {
	Row      int      `json:"row"`
	Field    Field    `json:"field"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// ValidationResult is the verdict for one row or one dataset. IsValid is true
// iff no contained issue has error severity; warnings alone never flip it.
// Errors holds every collected issue, warnings included, in evaluation order.
type ValidationResult struct {
	IsValid bool              `json:"isValid"`
	Errors  []ValidationIssue `json:"errors"`
}

// HasWarnings reports whether the result carries at least one warning.
func (r ValidationResult) HasWarnings() bool {
	for _, iss := range r.Errors {
		if iss.Severity == SeverityWarning {
			return true
		}
	}
	return false
}

func newResult(issues []ValidationIssue) ValidationResult {
	valid := true
	for _, iss := range issues {
		if iss.Severity == SeverityError {
			valid = false
			break
		}
	}
	return ValidationResult{IsValid: valid, Errors: issues}
}
