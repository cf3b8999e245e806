// internal/clause/validate.go
package clause

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/trialforge/whereclause/internal/types"
)

/*
 * Expression validation.
 *
 * Recursive post-order walk producing a ValidationResult: errors block
 * downstream actions (code generation, persistence), warnings are advisory.
 * The walk never short-circuits - all findings across the whole tree are
 * collected, not just the first.
 *
 * Finding messages from nested nodes are prefixed with a stable
 * "children[i]" path so deep trees stay traceable; root-level findings
 * carry no prefix.
 *
 * Leaf rules:
 *   - dataset/variable non-blank (error)
 *   - comparator in registry (error)
 *   - at least one non-blank value after trimming (error)
 *   - ordering comparators against non-numeric, non-date values (warning)
 *   - IN/NOTIN with a single value (warning: consider EQ/NE)
 *   - single-value comparators with extra values (warning: first value wins)
 *
 * Compound rules: NOT exactly one child, AND/OR at least one child,
 * operator in registry. The empty sentinel node is an error: validation
 * gates exactly the operations an empty placeholder must not reach.
 */

// Validate checks the whole tree and aggregates errors and warnings.
// The tree remains editable regardless of the outcome.
func Validate(e *types.Expression) types.ValidationResult {
	var res types.ValidationResult
	validateNode(e, "", &res)
	res.IsValid = len(res.Errors) == 0
	return res
}

func validateNode(e *types.Expression, path string, res *types.ValidationResult) {
	if e.IsEmpty() {
		addError(res, path, "Expression is empty")
		return
	}
	if e.Condition != nil && e.Compound != nil {
		addError(res, path, "Expression has both a condition and a compound payload")
		return
	}
	if e.Condition != nil {
		validateCondition(e.Condition, path, res)
		return
	}
	validateCompound(e.Compound, path, res)
}

func validateCondition(c *types.Condition, path string, res *types.ValidationResult) {
	if strings.TrimSpace(c.Dataset) == "" {
		addError(res, path, "Dataset is required")
	}
	if strings.TrimSpace(c.Variable) == "" {
		addError(res, path, "Variable is required")
	}
	if !KnownComparator(c.Comparator) {
		addError(res, path, fmt.Sprintf("Unknown comparator: %q", string(c.Comparator)))
		return
	}

	nonBlank := nonBlankValues(c.Values)
	if len(nonBlank) == 0 {
		addError(res, path, "At least one value is required")
		return
	}

	if isMultiValue(c.Comparator) {
		if len(nonBlank) == 1 {
			addWarning(res, path, fmt.Sprintf("%s has a single value; consider using EQ/NE instead", c.Comparator))
		}
	} else if len(nonBlank) > 1 {
		addWarning(res, path, fmt.Sprintf("%s uses only the first value; %d extra values are ignored", c.Comparator, len(nonBlank)-1))
	}

	if isOrdering(c.Comparator) && !isNumeric(nonBlank[0]) && !isDate(nonBlank[0]) {
		addWarning(res, path, "comparison operators work best with numeric or date values")
	}
}

func validateCompound(ce *types.CompoundExpression, path string, res *types.ValidationResult) {
	if !KnownLogicalOperator(ce.Operator) {
		addError(res, path, fmt.Sprintf("Unknown logical operator: %q", string(ce.Operator)))
	}

	switch ce.Operator {
	case types.Not:
		if len(ce.Children) != 1 {
			addError(res, path, fmt.Sprintf("NOT requires exactly one sub-condition, has %d", len(ce.Children)))
		}
	case types.And, types.Or:
		if len(ce.Children) == 0 {
			addError(res, path, fmt.Sprintf("%s requires at least one sub-condition", ce.Operator))
		}
	}

	for i, child := range ce.Children {
		validateNode(child, childPath(path, i), res)
	}
}

// nonBlankValues trims each value and drops blanks, preserving order.
func nonBlankValues(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// isNumeric reports whether the value parses as a number.
func isNumeric(v string) bool {
	_, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	return err == nil
}

// dateLayouts are the recognized calendar formats for ordering comparisons.
// time.Parse rejects impossible calendar dates (e.g. 2023-02-30), so a
// layout match alone is not enough to pass.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"01/02/2006",
	"01-02-2006",
}

// isDate reports whether the value parses as a valid calendar date in any
// recognized layout.
func isDate(v string) bool {
	v = strings.TrimSpace(v)
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, v); err == nil {
			return true
		}
	}
	return false
}

func addError(res *types.ValidationResult, path, msg string) {
	res.Errors = append(res.Errors, prefixed(path, msg))
}

func addWarning(res *types.ValidationResult, path, msg string) {
	res.Warnings = append(res.Warnings, prefixed(path, msg))
}

// prefixed tags a finding with its node path; root findings stay bare.
func prefixed(path, msg string) string {
	if path == "" {
		return msg
	}
	return path + ": " + msg
}

// childPath extends a node path by one child index.
func childPath(path string, i int) string {
	if path == "" {
		return fmt.Sprintf("children[%d]", i)
	}
	return fmt.Sprintf("%s.children[%d]", path, i)
}
