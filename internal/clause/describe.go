// internal/clause/describe.go
package clause

import (
	"fmt"
	"strings"

	"github.com/trialforge/whereclause/internal/types"
)

/*
 * Human-readable expression rendering.
 *
 * Deterministic, side-effect-free string projections of an expression tree.
 * Describe is total over structurally valid nodes: a condition renders as
 * `DS.VAR <symbol> "value"`, a compound renders as a fixed per-operator
 * summary sentence. DescribeTree additionally joins child descriptions into
 * one infix expression string, parenthesizing nested compounds and NOT.
 *
 * Unicode comparison symbols mirror what the analyst sees in condition
 * builders elsewhere in the system.
 */

// comparatorSymbols maps single-value comparators to display symbols.
var comparatorSymbols = map[types.Comparator]string{
	types.EQ:       "=",
	types.NE:       "≠",
	types.GT:       ">",
	types.LT:       "<",
	types.GE:       "≥",
	types.LE:       "≤",
	types.Contains: "contains",
}

// Describe renders one node. Conditions render fully; compounds render as a
// summary sentence, not a recursive pretty-print (see DescribeTree).
func Describe(e *types.Expression) (string, error) {
	if e.IsEmpty() {
		return "", types.ErrEmptyExpression
	}
	if e.Condition != nil {
		return describeCondition(e.Condition)
	}
	info, err := LogicalOperatorInfo(e.Compound.Operator)
	if err != nil {
		return "", err
	}
	return info.Description, nil
}

// DescribeTree renders the whole tree as one infix expression string,
// joining children with the operator keyword and parenthesizing NOT and
// nested compounds.
func DescribeTree(e *types.Expression) (string, error) {
	if e.IsEmpty() {
		return "", types.ErrEmptyExpression
	}
	if e.Condition != nil {
		return describeCondition(e.Condition)
	}

	ce := e.Compound
	if !KnownLogicalOperator(ce.Operator) {
		return "", fmt.Errorf("%w: %q", types.ErrUnknownOperator, string(ce.Operator))
	}
	if len(ce.Children) == 0 {
		return "", fmt.Errorf("%s has no sub-conditions", ce.Operator)
	}

	if ce.Operator == types.Not {
		inner, err := DescribeTree(ce.Children[0])
		if err != nil {
			return "", err
		}
		return "not (" + inner + ")", nil
	}

	joiner := " and "
	if ce.Operator == types.Or {
		joiner = " or "
	}

	parts := make([]string, 0, len(ce.Children))
	for _, child := range ce.Children {
		rendered, err := DescribeTree(child)
		if err != nil {
			return "", err
		}
		// Nested compounds are parenthesized to keep precedence readable.
		if child.Compound != nil && child.Compound.Operator != types.Not {
			rendered = "(" + rendered + ")"
		}
		parts = append(parts, rendered)
	}
	return strings.Join(parts, joiner), nil
}

func describeCondition(c *types.Condition) (string, error) {
	if !KnownComparator(c.Comparator) {
		return "", fmt.Errorf("%w: %q", types.ErrUnknownOperator, string(c.Comparator))
	}

	subject := c.Dataset + "." + c.Variable
	values := nonBlankValues(c.Values)

	if isMultiValue(c.Comparator) {
		quoted := make([]string, len(values))
		for i, v := range values {
			quoted[i] = `"` + v + `"`
		}
		keyword := "in"
		if c.Comparator == types.NotIn {
			keyword = "not in"
		}
		return fmt.Sprintf("%s %s [%s]", subject, keyword, strings.Join(quoted, ", ")), nil
	}

	value := ""
	if len(values) > 0 {
		value = values[0]
	}
	return fmt.Sprintf("%s %s %q", subject, comparatorSymbols[c.Comparator], value), nil
}
