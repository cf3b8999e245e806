// internal/clause/suggest.go
package clause

import (
	"fmt"
	"strings"

	"github.com/trialforge/whereclause/internal/types"
)

/*
 * Advisory suggestion engine.
 *
 * Suggest concatenates the tree's validation warnings with pattern-based
 * advisories for known performance and data-quality anti-patterns:
 *
 *   - CONTAINS scans every row's value (performance)
 *   - IN/NOTIN lists past chunkThreshold values (chunking)
 *   - equality on date-named variables (range comparison)
 *
 * Suggestions are advisory text only; they never block any operation.
 * CheckReferences cross-checks dataset/variable names against a metadata
 * snapshot supplied by the caller - the engine performs no lookup I/O.
 */

// chunkThreshold is the IN/NOTIN list size past which a chunking advisory
// fires. Membership lists beyond this tend to be pasted from spreadsheets
// and defeat index use in downstream SQL.
const chunkThreshold = 10

// Suggest returns advisory strings for the tree: validation warnings first,
// then pattern advisories in tree order.
func Suggest(e *types.Expression) []string {
	suggestions := append([]string(nil), Validate(e).Warnings...)
	walkConditions(e, func(c *types.Condition) {
		suggestions = append(suggestions, conditionAdvisories(c)...)
	})
	return suggestions
}

func conditionAdvisories(c *types.Condition) []string {
	var out []string

	if c.Comparator == types.Contains {
		out = append(out, fmt.Sprintf(
			"CONTAINS on %s.%s scans every value and hurts performance; prefer EQ/IN against coded values where possible",
			c.Dataset, c.Variable))
	}

	if isMultiValue(c.Comparator) {
		if n := len(nonBlankValues(c.Values)); n > chunkThreshold {
			out = append(out, fmt.Sprintf(
				"%s list on %s.%s has %d values; consider chunking it into smaller groups or joining against a lookup dataset",
				c.Comparator, c.Dataset, c.Variable, n))
		}
	}

	if c.Comparator == types.EQ && strings.Contains(strings.ToLower(c.Variable), "date") {
		out = append(out, fmt.Sprintf(
			"equality on date variable %s.%s is fragile; consider a range comparison (GE/LE) instead",
			c.Dataset, c.Variable))
	}

	return out
}

// walkConditions visits every condition leaf in tree order.
func walkConditions(e *types.Expression, visit func(*types.Condition)) {
	if e.IsEmpty() {
		return
	}
	if e.Condition != nil {
		visit(e.Condition)
		return
	}
	for _, child := range e.Compound.Children {
		walkConditions(child, visit)
	}
}

// CheckReferences returns advisory warnings for dataset/variable names
// absent from the supplied metadata snapshot (dataset name, upper-cased, to
// its variable names). Matching is case-insensitive; CDISC names are
// conventionally upper-case.
func CheckReferences(e *types.Expression, catalog map[string][]string) []string {
	upper := make(map[string]map[string]bool, len(catalog))
	for ds, vars := range catalog {
		set := make(map[string]bool, len(vars))
		for _, v := range vars {
			set[strings.ToUpper(v)] = true
		}
		upper[strings.ToUpper(ds)] = set
	}

	var warnings []string
	walkConditions(e, func(c *types.Condition) {
		vars, ok := upper[strings.ToUpper(c.Dataset)]
		if !ok {
			warnings = append(warnings, fmt.Sprintf("dataset %s not found in metadata", c.Dataset))
			return
		}
		if !vars[strings.ToUpper(c.Variable)] {
			warnings = append(warnings, fmt.Sprintf("variable %s.%s not found in metadata", c.Dataset, c.Variable))
		}
	})
	return warnings
}
