// internal/clause/generate.go
package clause

import (
	"fmt"
	"strings"

	"github.com/trialforge/whereclause/internal/types"
)

/*
 * Multi-target code generation.
 *
 * Transpiles conditions into executable filter snippets for SAS, R,
 * Python/pandas, and SQL. Generate handles exactly one condition;
 * GenerateProgram joins a condition list with the target's logical-AND
 * idiom and wraps it in the target's minimal filter program. GenerateTree
 * is the full recursive transpiler over AND/OR/NOT trees.
 *
 * Quoting: every embedded value is escaped for its target (SQL and SAS
 * double the quote character, R and Python backslash-escape) so a quote
 * inside a value cannot produce invalid generated code.
 *
 * Misuse is an error, never a fallback: unknown comparators and targets
 * fail with the types sentinel errors rather than emitting a placeholder.
 */

// Target identifies a code generation language.
type Target string

// Supported generation targets.
const (
	TargetSAS    Target = "sas"
	TargetR      Target = "r"
	TargetPython Target = "python"
	TargetSQL    Target = "sql"
)

// defaultFrame is the R / pandas data frame name used when the caller does
// not supply one.
const defaultFrame = "df"

// Targets lists all supported targets in stable order.
func Targets() []Target {
	return []Target{TargetSAS, TargetR, TargetPython, TargetSQL}
}

// ParseTarget resolves a target name case-insensitively.
func ParseTarget(s string) (Target, error) {
	switch Target(strings.ToLower(strings.TrimSpace(s))) {
	case TargetSAS:
		return TargetSAS, nil
	case TargetR:
		return TargetR, nil
	case TargetPython:
		return TargetPython, nil
	case TargetSQL:
		return TargetSQL, nil
	default:
		return "", fmt.Errorf("%w: %q", types.ErrUnknownTarget, s)
	}
}

// Generate transpiles a single condition into a filter fragment for the
// target language. R and pandas fragments reference a frame named df;
// GenerateProgram and GenerateTree accept another frame name.
func Generate(c *types.Condition, target Target) (string, error) {
	return generateFragment(c, target, defaultFrame)
}

func generateFragment(c *types.Condition, target Target, frame string) (string, error) {
	if c == nil {
		return "", types.ErrConditionRequired
	}
	if !KnownComparator(c.Comparator) {
		return "", fmt.Errorf("%w: %q", types.ErrUnknownOperator, string(c.Comparator))
	}

	values := nonBlankValues(c.Values)
	if len(values) == 0 {
		return "", fmt.Errorf("condition %s.%s has no values", c.Dataset, c.Variable)
	}

	switch target {
	case TargetSAS:
		return generateSAS(c, values), nil
	case TargetR:
		return generateR(c, values, frame), nil
	case TargetPython:
		return generatePython(c, values, frame), nil
	case TargetSQL:
		return generateSQL(c, values), nil
	default:
		return "", fmt.Errorf("%w: %q", types.ErrUnknownTarget, string(target))
	}
}

// GenerateCondition is the expression-node form of Generate. Compound and
// empty nodes are rejected: callers flatten trees themselves or use
// GenerateTree.
func GenerateCondition(e *types.Expression, target Target) (string, error) {
	if e.IsEmpty() {
		return "", types.ErrEmptyExpression
	}
	if e.Condition == nil {
		return "", fmt.Errorf("%w: got a %s compound expression", types.ErrConditionRequired, e.Compound.Operator)
	}
	return Generate(e.Condition, target)
}

// GenerateProgram joins per-condition fragments with the target's AND idiom
// and wraps them in the target's minimal filter program. The source name is
// the SQL table / SAS input dataset / R-pandas frame; empty defaults to t
// for SQL and SAS and df for R and Python.
func GenerateProgram(conds []*types.Condition, target Target, source string) (string, error) {
	if len(conds) == 0 {
		return "", types.ErrConditionRequired
	}
	if source == "" {
		source = defaultSource(target)
	}

	fragments := make([]string, 0, len(conds))
	for _, c := range conds {
		frag, err := generateFragment(c, target, source)
		if err != nil {
			return "", err
		}
		fragments = append(fragments, frag)
	}

	switch target {
	case TargetSAS:
		return fmt.Sprintf("data filtered;\n  set %s;\n  where %s;\nrun;", source, strings.Join(fragments, " and ")), nil
	case TargetR:
		return fmt.Sprintf("filtered <- %s[%s, ]", source, strings.Join(fragments, " & ")), nil
	case TargetPython:
		masked := make([]string, len(fragments))
		for i, frag := range fragments {
			masked[i] = "(" + frag + ")"
		}
		return fmt.Sprintf("filtered = %s[%s]", source, strings.Join(masked, " & ")), nil
	case TargetSQL:
		return fmt.Sprintf("SELECT * FROM %s WHERE %s;", source, strings.Join(fragments, " AND ")), nil
	default:
		return "", fmt.Errorf("%w: %q", types.ErrUnknownTarget, string(target))
	}
}

// defaultSource picks the conventional filter source per target.
func defaultSource(target Target) string {
	if target == TargetR || target == TargetPython {
		return defaultFrame
	}
	return "t"
}

// GenerateTree transpiles a full expression tree, recursing through
// AND/OR/NOT with parenthesization. Returns a bare boolean expression in
// the target language, not a wrapped program. frame names the R / pandas
// data frame; empty defaults to df.
func GenerateTree(e *types.Expression, target Target, frame string) (string, error) {
	if frame == "" {
		frame = defaultFrame
	}
	return generateTreeNode(e, target, frame)
}

func generateTreeNode(e *types.Expression, target Target, frame string) (string, error) {
	if e.IsEmpty() {
		return "", types.ErrEmptyExpression
	}
	if e.Condition != nil {
		return generateFragment(e.Condition, target, frame)
	}

	ce := e.Compound
	if !KnownLogicalOperator(ce.Operator) {
		return "", fmt.Errorf("%w: %q", types.ErrUnknownOperator, string(ce.Operator))
	}
	if len(ce.Children) == 0 {
		return "", fmt.Errorf("%s has no sub-conditions", ce.Operator)
	}

	if ce.Operator == types.Not {
		if len(ce.Children) != 1 {
			return "", fmt.Errorf("NOT requires exactly one sub-condition, has %d", len(ce.Children))
		}
		inner, err := generateTreeNode(ce.Children[0], target, frame)
		if err != nil {
			return "", err
		}
		return negationIdiom(target) + "(" + inner + ")", nil
	}

	parts := make([]string, 0, len(ce.Children))
	for _, child := range ce.Children {
		rendered, err := generateTreeNode(child, target, frame)
		if err != nil {
			return "", err
		}
		if childNeedsParens(child, target) {
			rendered = "(" + rendered + ")"
		}
		parts = append(parts, rendered)
	}

	joiner := andIdiom(target)
	if ce.Operator == types.Or {
		joiner = orIdiom(target)
	}
	return strings.Join(parts, joiner), nil
}

// childNeedsParens: nested AND/OR children are always parenthesized; NOT
// output carries its own parentheses. Condition leaves need them only for
// pandas, where & and | bind tighter than the comparison operators inside
// the fragment.
func childNeedsParens(child *types.Expression, target Target) bool {
	if child.Compound != nil {
		return child.Compound.Operator != types.Not
	}
	return target == TargetPython
}

func andIdiom(target Target) string {
	switch target {
	case TargetSAS:
		return " and "
	case TargetSQL:
		return " AND "
	default:
		return " & "
	}
}

func orIdiom(target Target) string {
	switch target {
	case TargetSAS:
		return " or "
	case TargetSQL:
		return " OR "
	default:
		return " | "
	}
}

func negationIdiom(target Target) string {
	switch target {
	case TargetSAS:
		return "not "
	case TargetR:
		return "!"
	case TargetPython:
		return "~"
	default:
		return "NOT "
	}
}

// generateSAS emits a SAS where-clause fragment.
func generateSAS(c *types.Condition, values []string) string {
	v := sasQuote(values[0])
	switch c.Comparator {
	case types.EQ:
		return fmt.Sprintf("%s = %s", c.Variable, v)
	case types.NE:
		return fmt.Sprintf("%s ne %s", c.Variable, v)
	case types.GT:
		return fmt.Sprintf("%s > %s", c.Variable, v)
	case types.LT:
		return fmt.Sprintf("%s < %s", c.Variable, v)
	case types.GE:
		return fmt.Sprintf("%s >= %s", c.Variable, v)
	case types.LE:
		return fmt.Sprintf("%s <= %s", c.Variable, v)
	case types.In:
		return fmt.Sprintf("%s in (%s)", c.Variable, joinQuoted(values, sasQuote))
	case types.NotIn:
		return fmt.Sprintf("%s not in (%s)", c.Variable, joinQuoted(values, sasQuote))
	default: // CONTAINS
		return fmt.Sprintf("index(upcase(%s),upcase(%s))>0", c.Variable, v)
	}
}

// generateR emits an R logical-vector fragment over the named frame.
func generateR(c *types.Condition, values []string, frame string) string {
	subject := frame + "$" + c.Variable
	v := rQuote(values[0])
	switch c.Comparator {
	case types.EQ:
		return fmt.Sprintf("%s == %s", subject, v)
	case types.NE:
		return fmt.Sprintf("%s != %s", subject, v)
	case types.GT:
		return fmt.Sprintf("%s > %s", subject, v)
	case types.LT:
		return fmt.Sprintf("%s < %s", subject, v)
	case types.GE:
		return fmt.Sprintf("%s >= %s", subject, v)
	case types.LE:
		return fmt.Sprintf("%s <= %s", subject, v)
	case types.In:
		return fmt.Sprintf("%s %%in%% c(%s)", subject, joinQuoted(values, rQuote))
	case types.NotIn:
		return fmt.Sprintf("!(%s %%in%% c(%s))", subject, joinQuoted(values, rQuote))
	default: // CONTAINS
		return fmt.Sprintf("grepl(%s, %s, ignore.case=TRUE)", v, subject)
	}
}

// generatePython emits a pandas boolean-mask fragment over the named frame.
func generatePython(c *types.Condition, values []string, frame string) string {
	subject := fmt.Sprintf("%s['%s']", frame, c.Variable)
	v := pyQuote(values[0])
	switch c.Comparator {
	case types.EQ:
		return fmt.Sprintf("%s == %s", subject, v)
	case types.NE:
		return fmt.Sprintf("%s != %s", subject, v)
	case types.GT:
		return fmt.Sprintf("%s > %s", subject, v)
	case types.LT:
		return fmt.Sprintf("%s < %s", subject, v)
	case types.GE:
		return fmt.Sprintf("%s >= %s", subject, v)
	case types.LE:
		return fmt.Sprintf("%s <= %s", subject, v)
	case types.In:
		return fmt.Sprintf("%s.isin([%s])", subject, joinQuoted(values, pyQuote))
	case types.NotIn:
		return fmt.Sprintf("~%s.isin([%s])", subject, joinQuoted(values, pyQuote))
	default: // CONTAINS
		return fmt.Sprintf("%s.str.contains(%s, case=False, na=False)", subject, v)
	}
}

// generateSQL emits an ANSI SQL predicate fragment.
func generateSQL(c *types.Condition, values []string) string {
	v := sqlQuote(values[0])
	switch c.Comparator {
	case types.EQ:
		return fmt.Sprintf("%s = %s", c.Variable, v)
	case types.NE:
		return fmt.Sprintf("%s <> %s", c.Variable, v)
	case types.GT:
		return fmt.Sprintf("%s > %s", c.Variable, v)
	case types.LT:
		return fmt.Sprintf("%s < %s", c.Variable, v)
	case types.GE:
		return fmt.Sprintf("%s >= %s", c.Variable, v)
	case types.LE:
		return fmt.Sprintf("%s <= %s", c.Variable, v)
	case types.In:
		return fmt.Sprintf("%s IN (%s)", c.Variable, joinQuoted(values, sqlQuote))
	case types.NotIn:
		return fmt.Sprintf("%s NOT IN (%s)", c.Variable, joinQuoted(values, sqlQuote))
	default: // CONTAINS
		return fmt.Sprintf("UPPER(%s) LIKE UPPER('%%%s%%')", c.Variable, sqlEscape(values[0]))
	}
}

// joinQuoted quotes each value with the target's quoting function and joins
// with commas (no spaces, matching each target's conventional list form).
func joinQuoted(values []string, quote func(string) string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = quote(v)
	}
	return strings.Join(quoted, ",")
}

// sqlEscape doubles embedded single quotes.
func sqlEscape(v string) string {
	return strings.ReplaceAll(v, "'", "''")
}

func sqlQuote(v string) string {
	return "'" + sqlEscape(v) + "'"
}

// sasQuote doubles embedded double quotes inside a double-quoted literal.
func sasQuote(v string) string {
	return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
}

// rQuote backslash-escapes for a double-quoted R string literal.
func rQuote(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `"`, `\"`)
	return `"` + v + `"`
}

// pyQuote backslash-escapes for a double-quoted Python string literal.
func pyQuote(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `"`, `\"`)
	return `"` + v + `"`
}
