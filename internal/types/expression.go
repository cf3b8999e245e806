// internal/types/expression.go
package types

/*
 * Expression model operations.
 *
 * Construction and tree helpers for the Expression union. Mutation is plain
 * field assignment on the caller-owned tree; structural checks are the
 * validator's job, so constructors never reject input.
 *
 * Ownership: a tree belongs to exactly one logical editor at a time. The
 * model does not defend against aliasing - callers attach freshly created
 * or cloned subtrees, never re-parent a live node into two places. Clone
 * produces a structure-sharing-free copy for snapshots that must survive
 * later edits (equivalence checks, undo).
 */

// NewCondition creates a leaf expression node.
func NewCondition(dataset, variable string, cmp Comparator, values ...string) *Expression {
	return &Expression{
		Condition: &Condition{
			Dataset:    dataset,
			Variable:   variable,
			Comparator: cmp,
			Values:     values,
		},
	}
}

// NewCompound creates an internal expression node. Arity is not checked
// here; Validate reports NOT/AND/OR arity violations.
func NewCompound(op LogicalOperator, children ...*Expression) *Expression {
	return &Expression{
		Compound: &CompoundExpression{
			Operator: op,
			Children: children,
		},
	}
}

// IsEmpty reports whether the node is the empty sentinel.
func (e *Expression) IsEmpty() bool {
	return e == nil || (e.Condition == nil && e.Compound == nil)
}

// IsLeaf reports whether the node is a condition.
func (e *Expression) IsLeaf() bool {
	return e != nil && e.Condition != nil
}

// Children returns the ordered child nodes, nil for leaves and empty nodes.
func (e *Expression) Children() []*Expression {
	if e == nil || e.Compound == nil {
		return nil
	}
	return e.Compound.Children
}

// Clone returns a deep copy with no shared structure.
func (e *Expression) Clone() *Expression {
	if e == nil {
		return nil
	}
	out := &Expression{}
	if e.Condition != nil {
		out.Condition = e.Condition.Clone()
	}
	if e.Compound != nil {
		out.Compound = e.Compound.Clone()
	}
	return out
}

// Clone returns a deep copy of the condition.
func (c *Condition) Clone() *Condition {
	if c == nil {
		return nil
	}
	out := *c
	if c.Values != nil {
		out.Values = make([]string, len(c.Values))
		copy(out.Values, c.Values)
	}
	return &out
}

// Clone returns a deep copy of the compound node and all descendants.
func (ce *CompoundExpression) Clone() *CompoundExpression {
	if ce == nil {
		return nil
	}
	out := &CompoundExpression{Operator: ce.Operator}
	if ce.Children != nil {
		out.Children = make([]*Expression, len(ce.Children))
		for i, child := range ce.Children {
			out.Children[i] = child.Clone()
		}
	}
	return out
}
