// Package difftest renders unified diffs for golden-style test failures,
// grounded on the teacher's writer_test.go use of gotextdiff/myers: a test
// comparing a decoded byte dump or assembled text form against a fixture
// gets a readable diff instead of two long strings side by side.
package difftest

import (
	"fmt"
	"testing"

	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
)

// Unified returns a unified diff of want vs got, empty when they're equal.
func Unified(name, want, got string) string {
	if want == got {
		return ""
	}
	edits := myers.ComputeEdits(span.URIFromPath(name), want, got)
	return fmt.Sprint(gotextdiff.ToUnified("want/"+name, "got/"+name, want, edits))
}

// Equal fails t with a unified diff when want != got.
func Equal(t *testing.T, name, want, got string) {
	t.Helper()
	if diff := Unified(name, want, got); diff != "" {
		t.Errorf("%s mismatch:\n%s", name, diff)
	}
}
