// internal/clause/equal.go
package clause

import "github.com/trialforge/whereclause/internal/types"

/*
 * Structural equality and semantic equivalence.
 *
 * Equal is strict textual identity: conditions match on dataset, variable,
 * comparator, and the ordered value sequence; compounds match on operator
 * and pairwise-equal children in order. Equivalent relaxes AND/OR child
 * order (the combinators are commutative) while keeping everything else
 * strict, so `A and B` is Equivalent to `B and A` but not Equal.
 *
 * Both forms recurse into children. Empty sentinels are equal only to
 * other empty sentinels.
 */

// Equal reports strict structural equality between two trees.
func Equal(a, b *types.Expression) bool {
	if a.IsEmpty() || b.IsEmpty() {
		return a.IsEmpty() && b.IsEmpty()
	}
	if (a.Condition != nil) != (b.Condition != nil) {
		return false
	}
	if a.Condition != nil {
		return conditionsEqual(a.Condition, b.Condition)
	}
	if a.Compound.Operator != b.Compound.Operator {
		return false
	}
	if len(a.Compound.Children) != len(b.Compound.Children) {
		return false
	}
	for i := range a.Compound.Children {
		if !Equal(a.Compound.Children[i], b.Compound.Children[i]) {
			return false
		}
	}
	return true
}

// Equivalent reports semantic equivalence: like Equal, but AND/OR children
// are matched as order-insensitive multisets. NOT and condition values stay
// order-sensitive.
func Equivalent(a, b *types.Expression) bool {
	if a.IsEmpty() || b.IsEmpty() {
		return a.IsEmpty() && b.IsEmpty()
	}
	if (a.Condition != nil) != (b.Condition != nil) {
		return false
	}
	if a.Condition != nil {
		return conditionsEqual(a.Condition, b.Condition)
	}
	if a.Compound.Operator != b.Compound.Operator {
		return false
	}
	ac, bc := a.Compound.Children, b.Compound.Children
	if len(ac) != len(bc) {
		return false
	}
	// NOT children stay order-sensitive. Arity is the validator's concern:
	// malformed NOT nodes still compare pairwise, keeping the relation
	// reflexive on any tree.
	if a.Compound.Operator == types.Not {
		for i := range ac {
			if !Equivalent(ac[i], bc[i]) {
				return false
			}
		}
		return true
	}

	// Greedy multiset matching: each child of a consumes one unmatched
	// equivalent child of b. Trees are small; quadratic is fine.
	used := make([]bool, len(bc))
	for _, childA := range ac {
		matched := false
		for j, childB := range bc {
			if used[j] || !Equivalent(childA, childB) {
				continue
			}
			used[j] = true
			matched = true
			break
		}
		if !matched {
			return false
		}
	}
	return true
}

func conditionsEqual(a, b *types.Condition) bool {
	if a.Dataset != b.Dataset || a.Variable != b.Variable || a.Comparator != b.Comparator {
		return false
	}
	if len(a.Values) != len(b.Values) {
		return false
	}
	for i := range a.Values {
		if a.Values[i] != b.Values[i] {
			return false
		}
	}
	return true
}
