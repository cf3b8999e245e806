// internal/clause/operators.go
package clause

import (
	"fmt"

	"github.com/trialforge/whereclause/internal/types"
)

/*
 * Comparator and logical operator registry.
 *
 * Static lookup table over the closed operator set with display metadata
 * (label, description) for the renderer and presentation layers. The
 * registry never changes validation outcomes: the validator checks
 * membership via KnownComparator/KnownLogicalOperator, and unknown codes
 * fail lookups with types.ErrUnknownOperator rather than returning a
 * placeholder.
 *
 * Why table-based: nine comparators and three combinators with pure display
 * metadata are cleaner as map entries than as methods on each operator.
 */

// OperatorInfo carries display metadata for one operator code.
type OperatorInfo struct {
	Code        string `json:"code"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

var comparatorInfo = map[types.Comparator]OperatorInfo{
	types.EQ:       {Code: "EQ", Label: "equals", Description: "Variable equals the value"},
	types.NE:       {Code: "NE", Label: "not equal", Description: "Variable differs from the value"},
	types.GT:       {Code: "GT", Label: "greater than", Description: "Variable is greater than the value"},
	types.LT:       {Code: "LT", Label: "less than", Description: "Variable is less than the value"},
	types.GE:       {Code: "GE", Label: "greater or equal", Description: "Variable is greater than or equal to the value"},
	types.LE:       {Code: "LE", Label: "less or equal", Description: "Variable is less than or equal to the value"},
	types.In:       {Code: "IN", Label: "in", Description: "Variable matches one of the values"},
	types.NotIn:    {Code: "NOTIN", Label: "not in", Description: "Variable matches none of the values"},
	types.Contains: {Code: "CONTAINS", Label: "contains", Description: "Variable contains the value as a substring (case-insensitive)"},
}

var logicalInfo = map[types.LogicalOperator]OperatorInfo{
	types.And: {Code: "AND", Label: "all of", Description: "All sub-conditions must be true"},
	types.Or:  {Code: "OR", Label: "any of", Description: "At least one sub-condition must be true"},
	types.Not: {Code: "NOT", Label: "not", Description: "Inverts the result of sub-conditions"},
}

// comparatorOrder fixes iteration order for listings (maps are unordered).
var comparatorOrder = []types.Comparator{
	types.EQ, types.NE, types.GT, types.LT, types.GE, types.LE,
	types.In, types.NotIn, types.Contains,
}

var logicalOrder = []types.LogicalOperator{types.And, types.Or, types.Not}

// ComparatorInfo returns display metadata for a comparator code.
func ComparatorInfo(cmp types.Comparator) (OperatorInfo, error) {
	info, ok := comparatorInfo[cmp]
	if !ok {
		return OperatorInfo{}, fmt.Errorf("%w: %q", types.ErrUnknownOperator, string(cmp))
	}
	return info, nil
}

// LogicalOperatorInfo returns display metadata for a logical operator code.
func LogicalOperatorInfo(op types.LogicalOperator) (OperatorInfo, error) {
	info, ok := logicalInfo[op]
	if !ok {
		return OperatorInfo{}, fmt.Errorf("%w: %q", types.ErrUnknownOperator, string(op))
	}
	return info, nil
}

// OperatorInfoByCode resolves either kind of operator by its string code.
func OperatorInfoByCode(code string) (OperatorInfo, error) {
	if info, ok := comparatorInfo[types.Comparator(code)]; ok {
		return info, nil
	}
	if info, ok := logicalInfo[types.LogicalOperator(code)]; ok {
		return info, nil
	}
	return OperatorInfo{}, fmt.Errorf("%w: %q", types.ErrUnknownOperator, code)
}

// Comparators lists all comparators in stable registry order.
func Comparators() []OperatorInfo {
	out := make([]OperatorInfo, 0, len(comparatorOrder))
	for _, cmp := range comparatorOrder {
		out = append(out, comparatorInfo[cmp])
	}
	return out
}

// LogicalOperators lists all combinators in stable registry order.
func LogicalOperators() []OperatorInfo {
	out := make([]OperatorInfo, 0, len(logicalOrder))
	for _, op := range logicalOrder {
		out = append(out, logicalInfo[op])
	}
	return out
}

// KnownComparator reports registry membership without an error value.
func KnownComparator(cmp types.Comparator) bool {
	_, ok := comparatorInfo[cmp]
	return ok
}

// KnownLogicalOperator reports registry membership without an error value.
func KnownLogicalOperator(op types.LogicalOperator) bool {
	_, ok := logicalInfo[op]
	return ok
}

// isMultiValue reports whether the comparator consumes the whole value list.
// Every other comparator uses only the first non-blank value.
func isMultiValue(cmp types.Comparator) bool {
	return cmp == types.In || cmp == types.NotIn
}

// isOrdering reports whether the comparator implies an ordered domain.
func isOrdering(cmp types.Comparator) bool {
	switch cmp {
	case types.GT, types.LT, types.GE, types.LE:
		return true
	default:
		return false
	}
}
