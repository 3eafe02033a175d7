package validator

import "strconv"

// Engine runs demand-series validation against one immutable RuleSet. It
// holds no mutable state, so a single Engine may serve concurrent sessions;
// per-session results live in the State handed to ValidateData.
type Engine struct {
	rules RuleSet
}

// NewEngine creates an engine bound to the given rule set.
func NewEngine(rules RuleSet) *Engine {
	return &Engine{rules: rules}
}

// Rules returns a copy of the engine's bounds, for rendering hints and
// API exposure. Mutating the copy has no effect on the engine.
func (e *Engine) Rules() RuleSet {
	return e.rules
}

// ValidateDemand checks one demand value. Checks run in fixed order and the
// first failure wins: required, numeric, lower bound, upper bound. A nil
// return means the value passed.
func (e *Engine) ValidateDemand(value any, row int) *ValidationIssue {
	if emptyDemand(value) {
		return issue(row, FieldDemand, msgDemandRequired, SeverityError)
	}
	f, ok := toFinite(value)
	if !ok {
		return issue(row, FieldDemand, msgDemandNotNumber, SeverityError)
	}
	if f < e.rules.DemandMin {
		return issue(row, FieldDemand, msgDemandNegative, SeverityError)
	}
	if f > e.rules.DemandMax {
		return issue(row, FieldDemand, msgDemandTooLarge, SeverityError)
	}
	return nil
}

// ValidateMonth checks one month label against the canonical YYYY-MM shape.
// A malformed string never reaches the month- or year-range checks. The year
// check yields a warning, not an error: out-of-range years are suspicious but
// do not block submission.
func (e *Engine) ValidateMonth(month string, row int) *ValidationIssue {
	if month == "" {
		return issue(row, FieldMonth, msgMonthRequired, SeverityError)
	}
	if !monthPattern.MatchString(month) {
		return issue(row, FieldMonth, msgMonthFormat, SeverityError)
	}
	year, _ := strconv.Atoi(month[:4])
	m, _ := strconv.Atoi(month[5:])
	if m < 1 || m > 12 {
		return issue(row, FieldMonth, msgMonthRange, SeverityError)
	}
	if year < yearMin || year > yearMax {
		return issue(row, FieldMonth, msgYearRange, SeverityWarning)
	}
	return nil
}

// ValidateRow runs both field validators against one record and collects the
// zero, one, or two resulting issues.
func (e *Engine) ValidateRow(rec Record, row int) ValidationResult {
	issues := make([]ValidationIssue, 0, 2)
	if iss := e.ValidateDemand(rec.Demand, row); iss != nil {
		issues = append(issues, *iss)
	}
	if iss := e.ValidateMonth(rec.Month, row); iss != nil {
		issues = append(issues, *iss)
	}
	return newResult(issues)
}

// ValidateData validates a whole candidate dataset, which is not yet known to
// be a well-formed sequence. Dataset-scope checks (container shape, row-count
// bounds, duplicate months) are collected first, then every record flows
// through ValidateRow in input order. The supplied state's retained issue
// list is replaced with the full collected set; pass nil to skip retention.
//
// A malformed container produces exactly one general issue and skips all
// other checks; nothing here ever panics or returns a Go error, the verdict
// is always data.
func (e *Engine) ValidateData(data any, st *State) ValidationResult {
	records, ok := RecordsFrom(data)
	if !ok {
		issues := []ValidationIssue{*issue(DatasetRow, FieldGeneral, msgNotASequence, SeverityError)}
		if st != nil {
			st.replace(issues)
		}
		return newResult(issues)
	}

	issues := make([]ValidationIssue, 0, len(records))
	if len(records) < e.rules.MinRows {
		issues = append(issues, *issue(DatasetRow, FieldGeneral, minRowsMessage(e.rules.MinRows), SeverityError))
	}
	if len(records) > e.rules.MaxRows {
		issues = append(issues, *issue(DatasetRow, FieldGeneral, maxRowsMessage(e.rules.MaxRows), SeverityError))
	}
	if dups := duplicateMonths(records); len(dups) > 0 {
		issues = append(issues, *issue(DatasetRow, FieldGeneral, duplicateMonthsMessage(dups), SeverityError))
	}
	for i, rec := range records {
		rowResult := e.ValidateRow(rec, i)
		issues = append(issues, rowResult.Errors...)
	}

	if st != nil {
		st.replace(issues)
	}
	return newResult(issues)
}

// ValidateRecords is the typed fast path for callers that already hold a
// decoded record slice.
func (e *Engine) ValidateRecords(records []Record, st *State) ValidationResult {
	return e.ValidateData(records, st)
}

// RecordsFrom coerces the candidate payload into a record sequence. JSON
// uploads arrive as []any; elements that are not month/demand objects degrade
// to an empty Record so they surface as per-row required-field issues rather
// than aborting the pass. The second return is false when the payload is not
// a sequence at all.
func RecordsFrom(data any) ([]Record, bool) {
	switch t := data.(type) {
	case []Record:
		return t, true
	case []map[string]any:
		records := make([]Record, len(t))
		for i, m := range t {
			records[i] = recordFromMap(m)
		}
		return records, true
	case []any:
		records := make([]Record, len(t))
		for i, v := range t {
			if m, ok := v.(map[string]any); ok {
				records[i] = recordFromMap(m)
			} else if rec, ok := v.(Record); ok {
				records[i] = rec
			}
		}
		return records, true
	default:
		return nil, false
	}
}

func recordFromMap(m map[string]any) Record {
	return Record{Month: MonthString(m["month"]), Demand: m["demand"]}
}

// duplicateMonths returns every month label that occurs more than once,
// compared by exact string equality, in first-occurrence order.
func duplicateMonths(records []Record) []string {
	seen := make(map[string]int, len(records))
	var dups []string
	for _, rec := range records {
		seen[rec.Month]++
		if seen[rec.Month] == 2 {
			dups = append(dups, rec.Month)
		}
	}
	return dups
}
