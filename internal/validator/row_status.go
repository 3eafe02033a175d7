package validator

// RowValidationStatus is the rolled-up verdict for a single row, used by
// callers to drive row highlighting without re-deriving severities.
type RowValidationStatus string

const (
	RowStatusValid   RowValidationStatus = "valid"
	RowStatusWarning RowValidationStatus = "warning"
	RowStatusInvalid RowValidationStatus = "invalid"
)

// RowStatus pairs a row's rolled-up status with the messages behind it.
type RowStatus struct {
	Status   RowValidationStatus `json:"status"`
	Messages []string            `json:"messages"`
}

// ComputeRowStatuses derives per-row statuses from a retained issue list. A
// row with any error is invalid; warnings alone mark it warning. Rows without
// issues do not appear in the map. Dataset-scope issues group under
// DatasetRow.
func ComputeRowStatuses(issues []ValidationIssue) map[int]*RowStatus {
	statuses := make(map[int]*RowStatus)
	for _, iss := range issues {
		rs := statuses[iss.Row]
		if rs == nil {
			rs = &RowStatus{Status: RowStatusValid, Messages: []string{}}
			statuses[iss.Row] = rs
		}
		if iss.Severity == SeverityError {
			rs.Status = RowStatusInvalid
		} else if rs.Status != RowStatusInvalid {
			rs.Status = RowStatusWarning
		}
		rs.Messages = append(rs.Messages, iss.Message)
	}
	return statuses
}

// Summary holds aggregate counts over a collected issue set.
type Summary struct {
	Total    int `json:"total"`
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
}

// Summarize counts a result's issues by severity.
func Summarize(issues []ValidationIssue) Summary {
	s := Summary{Total: len(issues)}
	for _, iss := range issues {
		switch iss.Severity {
		case SeverityError:
			s.Errors++
		case SeverityWarning:
			s.Warnings++
		}
	}
	return s
}
