package overrides

import (
	"math"
	"testing"

	"github.com/mrzimu/uproot-custom"
)

func be64(v uint64) []byte {
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> uint(56-8*i))
	}
	return b
}

func TestFixedRecordPlanBuildAssemble(t *testing.T) {
	RegisterFixedRecord()

	schema := uproot.Schema{}
	node := uproot.Node{Name: "TOverrideStreamer", TypeName: "MyOverrideClass"}

	plan, err := uproot.PlanBranch(node, schema, nil, false)
	if err != nil {
		t.Fatalf("PlanBranch: %v", err)
	}

	reader := uproot.Build(plan)

	data := buf(
		be32(42),
		be64(math.Float64bits(3.5)),
	)

	c := uproot.NewCursor(data)
	if err := reader.Read(c); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if c.Pos() != len(data) {
		t.Fatalf("expected cursor to consume all %d bytes, consumed %d", len(data), c.Pos())
	}

	content, err := uproot.Assemble(plan, reader.RawData())
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	rec, ok := content.(uproot.RecordArray)
	if !ok {
		t.Fatalf("expected RecordArray, got %T", content)
	}
	ints := rec.Contents[0].(uproot.NumericArray).Data.([]int32)
	doubles := rec.Contents[1].(uproot.NumericArray).Data.([]float64)
	if len(ints) != 1 || ints[0] != 42 {
		t.Fatalf("unexpected ints: %v", ints)
	}
	if len(doubles) != 1 || doubles[0] != 3.5 {
		t.Fatalf("unexpected doubles: %v", doubles)
	}
}
