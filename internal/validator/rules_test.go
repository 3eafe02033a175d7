package validator_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"demandcast/internal/validator"
)

func newEngine() *validator.Engine {
	return validator.NewEngine(validator.DefaultRuleSet())
}

func TestValidateDemand_Required(t *testing.T) {
	e := newEngine()

	for name, value := range map[string]any{
		"nil":             nil,
		"empty_string":    "",
		"whitespace_only": "   ",
	} {
		t.Run(name, func(t *testing.T) {
			iss := e.ValidateDemand(value, 4)
			require.NotNil(t, iss)
			assert.Equal(t, "El valor de demanda es requerido", iss.Message)
			assert.Equal(t, validator.FieldDemand, iss.Field)
			assert.Equal(t, validator.SeverityError, iss.Severity)
			assert.Equal(t, 4, iss.Row)
		})
	}
}

func TestValidateDemand_NotANumber(t *testing.T) {
	e := newEngine()

	for name, value := range map[string]any{
		"letters":      "abc",
		"mixed":        "12abc",
		"bool":         true,
		"object":       map[string]any{"x": 1},
		"slice":        []any{1, 2},
		"nan":          math.NaN(),
		"positive_inf": math.Inf(1),
		"negative_inf": math.Inf(-1),
		"inf_string":   "Inf",
	} {
		t.Run(name, func(t *testing.T) {
			iss := e.ValidateDemand(value, 0)
			require.NotNil(t, iss)
			assert.Equal(t, "El valor de demanda debe ser un número válido", iss.Message)
			assert.Equal(t, validator.SeverityError, iss.Severity)
		})
	}
}

func TestValidateDemand_Negative(t *testing.T) {
	e := newEngine()

	for name, value := range map[string]any{
		"int":            -1,
		"float":          -0.01,
		"numeric_string": "-15.5",
	} {
		t.Run(name, func(t *testing.T) {
			iss := e.ValidateDemand(value, 2)
			require.NotNil(t, iss)
			assert.Equal(t, "El valor de demanda no puede ser negativo", iss.Message)
		})
	}
}

func TestValidateDemand_TooLarge(t *testing.T) {
	e := newEngine()

	iss := e.ValidateDemand(float64(1<<53), 0)
	require.NotNil(t, iss)
	assert.Equal(t, "El valor de demanda es demasiado grande", iss.Message)
}

func TestValidateDemand_Passes(t *testing.T) {
	e := newEngine()

	for name, value := range map[string]any{
		"zero":            0,
		"int":             42,
		"float":           123.45,
		"numeric_string":  "100",
		"decimal_string":  "123.45",
		"padded_string":   " 42 ",
		"json_number":     json.Number("77.5"),
		"max_safe_value":  validator.MaxSafeDemand,
		"max_safe_string": "9007199254740991",
	} {
		t.Run(name, func(t *testing.T) {
			assert.Nil(t, e.ValidateDemand(value, 0))
		})
	}
}

func TestValidateDemand_FirstFailingRuleWins(t *testing.T) {
	e := newEngine()

	// An empty string is both unparseable and missing; only the
	// required-check message may surface.
	iss := e.ValidateDemand("", 0)
	require.NotNil(t, iss)
	assert.Equal(t, "El valor de demanda es requerido", iss.Message)
}

func TestValidateMonth_Required(t *testing.T) {
	e := newEngine()

	iss := e.ValidateMonth("", 3)
	require.NotNil(t, iss)
	assert.Equal(t, "El mes es requerido", iss.Message)
	assert.Equal(t, validator.FieldMonth, iss.Field)
	assert.Equal(t, validator.SeverityError, iss.Severity)
	assert.Equal(t, 3, iss.Row)
}

func TestValidateMonth_Format(t *testing.T) {
	e := newEngine()

	for name, value := range map[string]string{
		"single_digit_month": "2024-1",
		"two_digit_year":     "24-01",
		"slash_separator":    "2024/01",
		"three_digit_month":  "2024-001",
		"letters":            "enero",
		"leading_space":      " 2024-01",
		"trailing_space":     "2024-01 ",
		"full_date":          "2024-01-15",
	} {
		t.Run(name, func(t *testing.T) {
			iss := e.ValidateMonth(value, 0)
			require.NotNil(t, iss)
			assert.Equal(t, "El formato del mes debe ser YYYY-MM (ej: 2024-01)", iss.Message)
			assert.Equal(t, validator.SeverityError, iss.Severity)
		})
	}
}

func TestValidateMonth_MonthRange(t *testing.T) {
	e := newEngine()

	for name, value := range map[string]string{
		"zero":       "2024-00",
		"thirteen":   "2024-13",
		"ninetynine": "2024-99",
	} {
		t.Run(name, func(t *testing.T) {
			iss := e.ValidateMonth(value, 0)
			require.NotNil(t, iss)
			assert.Equal(t, "El mes debe estar entre 01 y 12", iss.Message)
			assert.Equal(t, validator.SeverityError, iss.Severity)
		})
	}
}

func TestValidateMonth_YearRangeIsWarning(t *testing.T) {
	e := newEngine()

	for name, value := range map[string]string{
		"too_early": "1899-12",
		"too_late":  "2101-01",
		"year_zero": "0000-06",
	} {
		t.Run(name, func(t *testing.T) {
			iss := e.ValidateMonth(value, 5)
			require.NotNil(t, iss)
			assert.Equal(t, "El año debe estar entre 1900 y 2100", iss.Message)
			assert.Equal(t, validator.SeverityWarning, iss.Severity)
			assert.Equal(t, validator.FieldMonth, iss.Field)
		})
	}
}

func TestValidateMonth_Passes(t *testing.T) {
	e := newEngine()

	for _, value := range []string{"2024-01", "1900-01", "2100-12", "2024-12"} {
		assert.Nil(t, e.ValidateMonth(value, 0), "month %q should pass", value)
	}
}

func TestValidateMonth_MalformedNeverReachesRangeChecks(t *testing.T) {
	e := newEngine()

	// Year far outside 1900-2100 but malformed: format error, not warning.
	iss := e.ValidateMonth("999-01", 0)
	require.NotNil(t, iss)
	assert.Equal(t, "El formato del mes debe ser YYYY-MM (ej: 2024-01)", iss.Message)
	assert.Equal(t, validator.SeverityError, iss.Severity)
}

func TestDefaultRuleSet(t *testing.T) {
	rules := validator.DefaultRuleSet()
	assert.Equal(t, 12, rules.MinRows)
	assert.Equal(t, 120, rules.MaxRows)
	assert.Equal(t, float64(0), rules.DemandMin)
	assert.Equal(t, float64(9007199254740991), rules.DemandMax)
}

func TestEngine_RulesReturnsCopy(t *testing.T) {
	e := newEngine()

	rules := e.Rules()
	rules.MaxRows = 5

	assert.Equal(t, 120, e.Rules().MaxRows)
	// A 12-row dataset keeps passing: the engine's bounds were not touched.
	res := e.ValidateData(validDataset(12), nil)
	assert.True(t, res.IsValid)
}

func TestEngine_CustomRuleSet(t *testing.T) {
	e := validator.NewEngine(validator.RuleSet{MinRows: 2, MaxRows: 3, DemandMin: 0, DemandMax: 1000})

	res := e.ValidateData(validDataset(3), nil)
	assert.True(t, res.IsValid)

	res = e.ValidateData(validDataset(4), nil)
	require.False(t, res.IsValid)
	assert.Contains(t, res.Errors[0].Message, "más de 3 registros")

	iss := e.ValidateDemand(1001, 0)
	require.NotNil(t, iss)
	assert.Equal(t, "El valor de demanda es demasiado grande", iss.Message)
}
