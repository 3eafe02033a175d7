package validator

// MaxSafeDemand is the largest integer a float64 holds exactly (2^53-1).
// Demand values above it cannot round-trip through JSON without precision
// loss, so the default rule set rejects them.
const MaxSafeDemand float64 = 1<<53 - 1

// RuleSet carries the numeric bounds a dataset is validated against. It is a
// plain value type: engines hold their own copy and expose it by value, so a
// caller can read the bounds (e.g. for rendering hints) but never mutate a
// running engine. Distinct sessions may use distinct rule sets.
type RuleSet struct {
	MinRows   int     `json:"minRows"`
	MaxRows   int     `json:"maxRows"`
	DemandMin float64 `json:"demandMin"`
	DemandMax float64 `json:"demandMax"`
}

// DefaultRuleSet returns the standard bounds: 12-120 monthly records,
// non-negative demand up to MaxSafeDemand.
func DefaultRuleSet() RuleSet {
	return RuleSet{
		MinRows:   12,
		MaxRows:   120,
		DemandMin: 0,
		DemandMax: MaxSafeDemand,
	}
}
