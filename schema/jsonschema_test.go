package schema

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	uproot "github.com/mrzimu/uproot-custom"
)

func TestParseDump(t *testing.T) {
	want := uproot.Schema{
		"Event": []uproot.Node{
			{Name: "fX", TypeName: "Float_t", Type: 5},
			{Name: "fTags", TypeName: "vector<string>"},
		},
	}

	data, err := Dump(want)
	if err != nil {
		t.Fatalf("Dump: %v", err)
	}

	got, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("schema mismatch after Dump/Parse round-trip (-want +got):\n%s", diff)
	}
}

func TestParseRejectsInvalidJSON(t *testing.T) {
	if _, err := Parse([]byte("not json")); err == nil {
		t.Fatalf("expected an error for invalid JSON")
	}
}
