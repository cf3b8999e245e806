package clause

import (
	"strings"
	"testing"

	"github.com/trialforge/whereclause/internal/types"
)

func TestValidate_ValidCondition(t *testing.T) {
	tests := []struct {
		name string
		expr *types.Expression
	}{
		{
			name: "EQ single value",
			expr: types.NewCondition("ADSL", "SAFFL", types.EQ, "Y"),
		},
		{
			name: "IN multiple values",
			expr: types.NewCondition("AE", "AESEV", types.In, "MILD", "MODERATE"),
		},
		{
			name: "GE numeric value",
			expr: types.NewCondition("DM", "AGE", types.GE, "18"),
		},
		{
			name: "GE ISO date value",
			expr: types.NewCondition("AE", "AESTDTC", types.GE, "2024-01-15"),
		},
		{
			name: "CONTAINS",
			expr: types.NewCondition("AE", "AETERM", types.Contains, "HEADACHE"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Validate(tt.expr)
			if !result.IsValid {
				t.Fatalf("IsValid = false, errors = %v", result.Errors)
			}
			if len(result.Errors) != 0 {
				t.Errorf("Errors = %v, want empty", result.Errors)
			}
		})
	}
}

func TestValidate_ConditionErrors(t *testing.T) {
	tests := []struct {
		name    string
		expr    *types.Expression
		wantErr string
	}{
		{
			name:    "blank dataset",
			expr:    types.NewCondition("", "SAFFL", types.EQ, "Y"),
			wantErr: "Dataset is required",
		},
		{
			name:    "whitespace dataset",
			expr:    types.NewCondition("   ", "SAFFL", types.EQ, "Y"),
			wantErr: "Dataset is required",
		},
		{
			name:    "blank variable",
			expr:    types.NewCondition("ADSL", "", types.EQ, "Y"),
			wantErr: "Variable is required",
		},
		{
			name:    "unknown comparator",
			expr:    types.NewCondition("ADSL", "SAFFL", "LIKE", "Y"),
			wantErr: `Unknown comparator: "LIKE"`,
		},
		{
			name:    "no values",
			expr:    types.NewCondition("ADSL", "SAFFL", types.EQ),
			wantErr: "At least one value is required",
		},
		{
			name:    "only blank values",
			expr:    types.NewCondition("ADSL", "SAFFL", types.EQ, "  ", ""),
			wantErr: "At least one value is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Validate(tt.expr)
			if result.IsValid {
				t.Fatal("IsValid = true, want false")
			}
			if !containsString(result.Errors, tt.wantErr) {
				t.Errorf("Errors = %v, want to contain %q", result.Errors, tt.wantErr)
			}
		})
	}
}

func TestValidate_ConditionWarnings(t *testing.T) {
	tests := []struct {
		name        string
		expr        *types.Expression
		wantWarning string
	}{
		{
			name:        "IN with single value",
			expr:        types.NewCondition("ADSL", "SAFFL", types.In, "Y"),
			wantWarning: "consider using EQ/NE",
		},
		{
			name:        "NOTIN with single value",
			expr:        types.NewCondition("ADSL", "SAFFL", types.NotIn, "N"),
			wantWarning: "consider using EQ/NE",
		},
		{
			name:        "EQ with extra values",
			expr:        types.NewCondition("ADSL", "SAFFL", types.EQ, "Y", "N"),
			wantWarning: "uses only the first value",
		},
		{
			name:        "GT with text value",
			expr:        types.NewCondition("DM", "SEX", types.GT, "M"),
			wantWarning: "comparison operators work best with numeric or date values",
		},
		{
			name:        "GE with impossible calendar date",
			expr:        types.NewCondition("AE", "AESTDTC", types.GE, "2023-02-30"),
			wantWarning: "comparison operators work best with numeric or date values",
		},
		{
			name:        "LT with month 13",
			expr:        types.NewCondition("AE", "AESTDTC", types.LT, "13/01/2020"),
			wantWarning: "comparison operators work best with numeric or date values",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Validate(tt.expr)
			if !result.IsValid {
				t.Fatalf("IsValid = false, errors = %v (warnings must not block)", result.Errors)
			}
			if !containsSubstring(result.Warnings, tt.wantWarning) {
				t.Errorf("Warnings = %v, want one containing %q", result.Warnings, tt.wantWarning)
			}
		})
	}
}

func TestValidate_OrderingValueFormats(t *testing.T) {
	// Valid numeric and calendar dates must not warn.
	tests := []struct {
		name  string
		value string
	}{
		{name: "integer", value: "18"},
		{name: "decimal", value: "97.5"},
		{name: "negative", value: "-3"},
		{name: "ISO date", value: "2024-06-30"},
		{name: "ISO datetime", value: "2024-06-30T12:30:00Z"},
		{name: "US slash date", value: "06/30/2024"},
		{name: "US dash date", value: "06-30-2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Validate(types.NewCondition("DM", "AGE", types.GE, tt.value))
			if len(result.Warnings) != 0 {
				t.Errorf("Warnings = %v, want none for %q", result.Warnings, tt.value)
			}
		})
	}
}

func TestValidate_CompoundArity(t *testing.T) {
	cond := func() *types.Expression {
		return types.NewCondition("ADSL", "SAFFL", types.EQ, "Y")
	}

	tests := []struct {
		name    string
		expr    *types.Expression
		wantErr string
	}{
		{
			name:    "NOT with two children",
			expr:    types.NewCompound(types.Not, cond(), cond()),
			wantErr: "NOT requires exactly one sub-condition, has 2",
		},
		{
			name:    "NOT with zero children",
			expr:    types.NewCompound(types.Not),
			wantErr: "NOT requires exactly one sub-condition, has 0",
		},
		{
			name:    "AND with zero children",
			expr:    types.NewCompound(types.And),
			wantErr: "AND requires at least one sub-condition",
		},
		{
			name:    "OR with zero children",
			expr:    types.NewCompound(types.Or),
			wantErr: "OR requires at least one sub-condition",
		},
		{
			name:    "unknown logical operator",
			expr:    types.NewCompound("XOR", cond()),
			wantErr: `Unknown logical operator: "XOR"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Validate(tt.expr)
			if result.IsValid {
				t.Fatal("IsValid = true, want false")
			}
			if !containsString(result.Errors, tt.wantErr) {
				t.Errorf("Errors = %v, want to contain %q", result.Errors, tt.wantErr)
			}
		})
	}
}

func TestValidate_CompoundValid(t *testing.T) {
	expr := types.NewCompound(types.And,
		types.NewCondition("ADSL", "SAFFL", types.EQ, "Y"),
		types.NewCompound(types.Not,
			types.NewCondition("AE", "AESER", types.EQ, "Y"),
		),
	)
	result := Validate(expr)
	if !result.IsValid {
		t.Fatalf("IsValid = false, errors = %v", result.Errors)
	}
}

func TestValidate_NestedFindingsCarryPaths(t *testing.T) {
	expr := types.NewCompound(types.And,
		types.NewCondition("ADSL", "SAFFL", types.EQ, "Y"),
		types.NewCompound(types.Or,
			types.NewCondition("", "AGE", types.GE, "18"),
		),
	)

	result := Validate(expr)
	if result.IsValid {
		t.Fatal("IsValid = true, want false")
	}
	want := "children[1].children[0]: Dataset is required"
	if !containsString(result.Errors, want) {
		t.Errorf("Errors = %v, want to contain %q", result.Errors, want)
	}
}

func TestValidate_AllFindingsCollected(t *testing.T) {
	// No short-circuit: both children's errors must be reported.
	expr := types.NewCompound(types.And,
		types.NewCondition("", "SAFFL", types.EQ, "Y"),
		types.NewCondition("ADSL", "", types.EQ, "Y"),
	)

	result := Validate(expr)
	if len(result.Errors) != 2 {
		t.Fatalf("len(Errors) = %d, want 2: %v", len(result.Errors), result.Errors)
	}
}

func TestValidate_EmptyExpression(t *testing.T) {
	result := Validate(&types.Expression{})
	if result.IsValid {
		t.Fatal("IsValid = true, want false")
	}
	if !containsString(result.Errors, "Expression is empty") {
		t.Errorf("Errors = %v, want to contain %q", result.Errors, "Expression is empty")
	}
}

func TestValidate_EmptyChild(t *testing.T) {
	expr := types.NewCompound(types.And,
		types.NewCondition("ADSL", "SAFFL", types.EQ, "Y"),
		&types.Expression{},
	)
	result := Validate(expr)
	if result.IsValid {
		t.Fatal("IsValid = true, want false")
	}
	if !containsString(result.Errors, "children[1]: Expression is empty") {
		t.Errorf("Errors = %v, want empty-child path finding", result.Errors)
	}
}

func containsString(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}

func containsSubstring(list []string, want string) bool {
	for _, s := range list {
		if strings.Contains(s, want) {
			return true
		}
	}
	return false
}
