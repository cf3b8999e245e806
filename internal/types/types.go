// Package types provides domain models shared across whereclause components.
//
// Zero-dependency design: expression and validation types use only the
// standard library so downstream consumers stay import-light. ID utilities
// in ids.go import uuid but are isolated for selective inclusion.
//
// Separation from the engine: this package holds data shapes only. All
// behavior (validation, rendering, code generation) lives in internal/clause,
// keeping the tree serializable as a plain JSON document.
package types

// Comparator identifies a condition comparison operator.
// String codes match the persisted representation ("EQ", "IN", ...).
type Comparator string

// Closed comparator set. Membership checks live in internal/clause.
const (
	EQ       Comparator = "EQ"
	NE       Comparator = "NE"
	GT       Comparator = "GT"
	LT       Comparator = "LT"
	GE       Comparator = "GE"
	LE       Comparator = "LE"
	In       Comparator = "IN"
	NotIn    Comparator = "NOTIN"
	Contains Comparator = "CONTAINS"
)

// LogicalOperator identifies a compound expression combinator.
type LogicalOperator string

// Closed logical operator set.
const (
	And LogicalOperator = "AND"
	Or  LogicalOperator = "OR"
	Not LogicalOperator = "NOT"
)

// Condition is a leaf node: one comparison of a dataset variable against
// literal values. Values is ordered and semantically a set for IN/NOTIN,
// a singleton for every other comparator (extra values are advisory-only).
type Condition struct {
	Dataset    string     `json:"dataset"`
	Variable   string     `json:"variable"`
	Comparator Comparator `json:"comparator"`
	Values     []string   `json:"values"`
}

// CompoundExpression is an internal node: a logical operator over ordered
// child expressions. NOT takes exactly one child; AND/OR take one or more.
// Arity is checked by the validator, not at construction.
type CompoundExpression struct {
	Operator LogicalOperator `json:"operator"`
	Children []*Expression   `json:"children"`
}

// Expression is the tagged union over the node variants. At most one of
// Condition/Compound is set; a node with neither is the empty sentinel,
// legal as an editing placeholder but rejected by validation and codegen.
//
// The JSON shape is the exposed serialization contract:
//
//	{"condition": {...}} | {"compoundExpression": {"operator": ..., "children": [...]}}
type Expression struct {
	Condition *Condition          `json:"condition,omitempty"`
	Compound  *CompoundExpression `json:"compoundExpression,omitempty"`
}

// ValidationResult aggregates findings for one expression tree.
// Invariant: IsValid == (len(Errors) == 0); warnings never affect validity.
type ValidationResult struct {
	IsValid  bool     `json:"isValid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}
