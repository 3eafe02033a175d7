package validator

// State is the retained-issue store for one validation session. ValidateData
// replaces its contents on every call; Reset empties it. The query helpers
// are pure projections over the retained list and reflect only the most
// recent dataset pass.
//
// State is deliberately owned by the caller (one per session, form, or
// request) rather than hidden inside the engine, so concurrent sessions never
// share mutable state. It carries no internal locking.
type State struct {
	issues []ValidationIssue
}

// NewState returns an empty retained-issue store.
func NewState() *State {
	return &State{issues: []ValidationIssue{}}
}

func (s *State) replace(issues []ValidationIssue) {
	s.issues = make([]ValidationIssue, len(issues))
	copy(s.issues, issues)
}

// Reset clears the retained issue list. It does not touch any rule set.
func (s *State) Reset() {
	s.issues = []ValidationIssue{}
}

// HasErrors reports whether at least one retained issue has error severity.
func (s *State) HasErrors() bool {
	for _, iss := range s.issues {
		if iss.Severity == SeverityError {
			return true
		}
	}
	return false
}

// HasWarnings reports whether at least one retained issue has warning severity.
func (s *State) HasWarnings() bool {
	for _, iss := range s.issues {
		if iss.Severity == SeverityWarning {
			return true
		}
	}
	return false
}

// RowIssues returns the retained issues for one row index, in retained order.
// Dataset-scope issues are reachable via DatasetRow.
func (s *State) RowIssues(row int) []ValidationIssue {
	out := []ValidationIssue{}
	for _, iss := range s.issues {
		if iss.Row == row {
			out = append(out, iss)
		}
	}
	return out
}

// FieldIssues returns the retained issues for one field name, in retained order.
func (s *State) FieldIssues(field Field) []ValidationIssue {
	out := []ValidationIssue{}
	for _, iss := range s.issues {
		if iss.Field == field {
			out = append(out, iss)
		}
	}
	return out
}

// Issues returns a copy of the full retained list.
func (s *State) Issues() []ValidationIssue {
	out := make([]ValidationIssue, len(s.issues))
	copy(out, s.issues)
	return out
}
