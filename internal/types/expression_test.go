package types

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestExpression_Shape(t *testing.T) {
	cond := NewCondition("ADSL", "SAFFL", EQ, "Y")
	compound := NewCompound(And, cond)
	empty := &Expression{}

	if !cond.IsLeaf() || cond.IsEmpty() {
		t.Error("condition node: IsLeaf/IsEmpty misreported")
	}
	if compound.IsLeaf() || compound.IsEmpty() {
		t.Error("compound node: IsLeaf/IsEmpty misreported")
	}
	if !empty.IsEmpty() {
		t.Error("empty sentinel: IsEmpty = false")
	}

	var nilExpr *Expression
	if !nilExpr.IsEmpty() {
		t.Error("nil expression: IsEmpty = false")
	}
	if nilExpr.IsLeaf() {
		t.Error("nil expression: IsLeaf = true")
	}
	if nilExpr.Children() != nil {
		t.Error("nil expression: Children != nil")
	}

	if got := len(compound.Children()); got != 1 {
		t.Errorf("compound Children() len = %d, want 1", got)
	}
	if cond.Children() != nil {
		t.Error("leaf Children() != nil")
	}
}

func TestExpression_CloneIndependence(t *testing.T) {
	original := NewCompound(And,
		NewCondition("ADSL", "SAFFL", EQ, "Y"),
		NewCompound(Or,
			NewCondition("AE", "AESEV", In, "MILD", "MODERATE"),
		),
	)

	clone := original.Clone()

	// Mutate every level of the clone.
	clone.Compound.Operator = Or
	clone.Compound.Children[0].Condition.Dataset = "DM"
	clone.Compound.Children[1].Compound.Children[0].Condition.Values[0] = "SEVERE"

	if original.Compound.Operator != And {
		t.Error("clone mutation leaked into original operator")
	}
	if original.Compound.Children[0].Condition.Dataset != "ADSL" {
		t.Error("clone mutation leaked into original condition")
	}
	if original.Compound.Children[1].Compound.Children[0].Condition.Values[0] != "MILD" {
		t.Error("clone mutation leaked into original values")
	}
}

func TestExpression_CloneNil(t *testing.T) {
	var e *Expression
	if e.Clone() != nil {
		t.Error("nil.Clone() != nil")
	}
	var c *Condition
	if c.Clone() != nil {
		t.Error("nil condition Clone() != nil")
	}
	var ce *CompoundExpression
	if ce.Clone() != nil {
		t.Error("nil compound Clone() != nil")
	}
}

func TestExpression_JSONRoundtrip(t *testing.T) {
	original := NewCompound(And,
		NewCondition("ADSL", "SAFFL", EQ, "Y"),
		NewCompound(Not,
			NewCondition("AE", "AESER", EQ, "Y"),
		),
	)

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	// The leaf/compound union serializes under distinct keys, and unset
	// branches are omitted entirely.
	s := string(data)
	if !strings.Contains(s, `"compoundExpression"`) || !strings.Contains(s, `"condition"`) {
		t.Fatalf("JSON missing union keys: %s", s)
	}
	if strings.Contains(s, `"condition":null`) || strings.Contains(s, `"compoundExpression":null`) {
		t.Errorf("JSON carries null union branches: %s", s)
	}

	var decoded Expression
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded.Compound == nil || decoded.Compound.Operator != And {
		t.Fatalf("decoded root = %+v, want AND compound", decoded)
	}
	if len(decoded.Compound.Children) != 2 {
		t.Fatalf("decoded children = %d, want 2", len(decoded.Compound.Children))
	}
	leaf := decoded.Compound.Children[0].Condition
	if leaf == nil || leaf.Dataset != "ADSL" || leaf.Variable != "SAFFL" || leaf.Comparator != EQ {
		t.Errorf("decoded leaf = %+v", leaf)
	}
}

func TestExpression_UnmarshalDocument(t *testing.T) {
	// The wire shape produced by UI condition builders.
	doc := `{
		"compoundExpression": {
			"operator": "OR",
			"children": [
				{"condition": {"dataset": "DM", "variable": "AGE", "comparator": "GE", "values": ["65"]}},
				{"condition": {"dataset": "AE", "variable": "AESEV", "comparator": "IN", "values": ["SEVERE", "FATAL"]}}
			]
		}
	}`

	var e Expression
	if err := json.Unmarshal([]byte(doc), &e); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if e.Compound == nil || e.Compound.Operator != Or {
		t.Fatalf("root = %+v, want OR compound", e)
	}
	second := e.Compound.Children[1].Condition
	if second.Comparator != In || len(second.Values) != 2 || second.Values[1] != "FATAL" {
		t.Errorf("second leaf = %+v", second)
	}
}
