package domain

// SourceFormat represents the allowed upload formats for demand data.
type SourceFormat string

const (
	SourceCSV  SourceFormat = "csv"
	SourceXLSX SourceFormat = "xlsx"
	SourceJSON SourceFormat = "json"
)

// AllowedContentTypes maps MIME content types to SourceFormat.
var AllowedContentTypes = map[string]SourceFormat{
	"text/csv":         SourceCSV,
	"application/csv":  SourceCSV,
	"application/json": SourceJSON,
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": SourceXLSX,
}

// AllowedExtensions maps file extensions (without dot) to SourceFormat.
var AllowedExtensions = map[string]SourceFormat{
	"csv":  SourceCSV,
	"xlsx": SourceXLSX,
	"json": SourceJSON,
}

// ContentType returns the canonical MIME type for a format, used when
// archiving the raw upload.
func (f SourceFormat) ContentType() string {
	switch f {
	case SourceCSV:
		return "text/csv"
	case SourceXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case SourceJSON:
		return "application/json"
	default:
		return "application/octet-stream"
	}
}

// DatasetStatus represents the lifecycle of an uploaded demand dataset.
type DatasetStatus string

const (
	DatasetStatusUploaded   DatasetStatus = "uploaded"
	DatasetStatusProcessing DatasetStatus = "processing"
	DatasetStatusCompleted  DatasetStatus = "completed"
	DatasetStatusFailed     DatasetStatus = "failed"
)

// RunStatus represents the lifecycle of a forecast model run.
type RunStatus string

const (
	RunStatusPending    RunStatus = "pending"
	RunStatusProcessing RunStatus = "processing"
	RunStatusCompleted  RunStatus = "completed"
	RunStatusFailed     RunStatus = "failed"
)

// IssueSeverity mirrors the validation engine's severity values for
// persistence and API exposure.
type IssueSeverity string

const (
	IssueSeverityError   IssueSeverity = "error"
	IssueSeverityWarning IssueSeverity = "warning"
)
