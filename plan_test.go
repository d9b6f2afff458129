package uproot

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mitchellh/copystructure"
)

func TestPlanBranchPrimitive(t *testing.T) {
	node := Node{Name: "x", TypeName: "uint32_t", Type: 13}
	plan, err := PlanBranch(node, nil, nil, false)
	if err != nil {
		t.Fatalf("PlanBranch: %v", err)
	}
	want := &Plan{Kind: KindPrimitive, Name: "x", Path: "", CType: "u4"}
	if diff := cmp.Diff(want, plan); diff != "" {
		t.Fatalf("plan mismatch (-want +got):\n%s", diff)
	}
}

// A std::string that is a branch's own top-level item carries no outer
// byte-count+version header (spec.md's S2 scenario); the same string type
// nested one level down, as a sequence element, does.
func TestPlanBranchSTLStringTopLevelHasNoHeader(t *testing.T) {
	node := Node{Name: "s", TypeName: "string", Type: 500}
	plan, err := PlanBranch(node, nil, nil, false)
	if err != nil {
		t.Fatalf("PlanBranch: %v", err)
	}
	if plan.Kind != KindSTLString {
		t.Fatalf("expected KindSTLString, got %s", plan.Kind)
	}
	if plan.WithHeader {
		t.Fatalf("expected top-level std::string to have WithHeader=false")
	}
}

func TestPlanBranchSTLSeqOfStringHasNestedHeader(t *testing.T) {
	node := Node{Name: "v", TypeName: "vector<string>"}
	plan, err := PlanBranch(node, nil, nil, false)
	if err != nil {
		t.Fatalf("PlanBranch: %v", err)
	}
	if plan.Kind != KindSTLSeq {
		t.Fatalf("expected KindSTLSeq, got %s", plan.Kind)
	}
	if !plan.WithHeader {
		t.Fatalf("expected outer vector<string> to carry its own header")
	}
	if plan.Element == nil || plan.Element.Kind != KindSTLString {
		t.Fatalf("expected element plan to be KindSTLString, got %#v", plan.Element)
	}
	if !plan.Element.WithHeader {
		t.Fatalf("expected a string nested inside a vector to carry its own header")
	}
}

func TestPlanBranchSTLSeqOfInt(t *testing.T) {
	node := Node{Name: "v", TypeName: "vector<int32_t>"}
	plan, err := PlanBranch(node, nil, nil, false)
	if err != nil {
		t.Fatalf("PlanBranch: %v", err)
	}
	want := &Plan{
		Kind: KindSTLSeq, Name: "v", Path: "", WithHeader: true,
		Element: &Plan{Kind: KindPrimitive, Name: "v", Path: ".v", CType: "i4"},
	}
	if diff := cmp.Diff(want, plan); diff != "" {
		t.Fatalf("plan mismatch (-want +got):\n%s", diff)
	}
}

func TestPlanBranchSTLMap(t *testing.T) {
	node := Node{Name: "m", TypeName: "map<int32_t,double>"}
	plan, err := PlanBranch(node, nil, nil, false)
	if err != nil {
		t.Fatalf("PlanBranch: %v", err)
	}
	if plan.Kind != KindSTLMap {
		t.Fatalf("expected KindSTLMap, got %s", plan.Kind)
	}
	if !plan.WithHeader {
		t.Fatalf("expected a top-level map to carry its own header")
	}
	if plan.Key == nil || plan.Key.CType != "i4" {
		t.Fatalf("unexpected key plan: %#v", plan.Key)
	}
	if plan.Val == nil || plan.Val.CType != "d" {
		t.Fatalf("unexpected val plan: %#v", plan.Val)
	}
}

func TestPlanBranchCArrayFixed(t *testing.T) {
	node := Node{Name: "a", TypeName: "Int_t", Type: 3, ArrayDim: 1, MaxIndex: []int32{3}}
	plan, err := PlanBranch(node, nil, nil, false)
	if err != nil {
		t.Fatalf("PlanBranch: %v", err)
	}
	if plan.Kind != KindCArray {
		t.Fatalf("expected KindCArray, got %s", plan.Kind)
	}
	if plan.FlatSize != 3 {
		t.Fatalf("expected FlatSize 3, got %d", plan.FlatSize)
	}
	if plan.Element == nil || plan.Element.CType != "i4" {
		t.Fatalf("unexpected element plan: %#v", plan.Element)
	}
}

func TestPlanBranchCArrayJagged(t *testing.T) {
	node := Node{Name: "a", TypeName: "Int_t", Type: 3}
	plan, err := PlanBranch(node, nil, []int32{0}, true)
	if err != nil {
		t.Fatalf("PlanBranch: %v", err)
	}
	if plan.Kind != KindCArray {
		t.Fatalf("expected KindCArray, got %s", plan.Kind)
	}
	if plan.FlatSize != -1 {
		t.Fatalf("expected FlatSize -1 for a jagged array, got %d", plan.FlatSize)
	}
}

// P5: planning is a pure function of (schema, dims, jagged); planning the
// same branch twice yields equal plans, and neither call mutates the other's
// result (checked with an independent deep copy rather than comparing a
// plan against itself).
func TestPlanIdempotence(t *testing.T) {
	schema := Schema{
		"Event": []Node{
			{Name: "fX", TypeName: "Float_t", Type: 5},
			{Name: "fTags", TypeName: "vector<string>"},
		},
	}
	node := Node{Name: "event", TypeName: "Event"}

	plan1, err := PlanBranch(node, schema, nil, false)
	if err != nil {
		t.Fatalf("PlanBranch (first): %v", err)
	}
	snapshot, err := copystructure.Copy(plan1)
	if err != nil {
		t.Fatalf("copystructure.Copy: %v", err)
	}

	plan2, err := PlanBranch(node, schema, nil, false)
	if err != nil {
		t.Fatalf("PlanBranch (second): %v", err)
	}

	if diff := cmp.Diff(plan1, plan2); diff != "" {
		t.Fatalf("plan(s, A, p) produced different plans on repeated calls (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(snapshot.(*Plan), plan1); diff != "" {
		t.Fatalf("first plan mutated after being snapshotted (-snapshot +current):\n%s", diff)
	}
}
