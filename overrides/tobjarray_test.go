package overrides

import (
	"encoding/binary"
	"testing"

	"github.com/mrzimu/uproot-custom"
)

func buf(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func be32(v uint32) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, v)
	return b
}

func be16(v uint16) []byte {
	b := make([]byte, 2)
	binary.BigEndian.PutUint16(b, v)
	return b
}

func TestTObjArrayPlanBuildAssemble(t *testing.T) {
	Register()

	schema := uproot.Schema{
		"TObjInObjArray": []uproot.Node{
			{Name: "fIndex", TypeName: "Int_t", Type: 3},
		},
	}
	node := uproot.Node{Name: "fObjects", TypeName: "TObjArray"}

	plan, err := uproot.PlanBranch(node, schema, nil, false)
	if err != nil {
		t.Fatalf("PlanBranch: %v", err)
	}

	reader := uproot.Build(plan)

	// Wire layout, innermost first:
	//   AnyClass:     byte-count(version+fIndex) | version | fIndex
	//   ObjectHeader: byte-count(tag+AnyClass)   | tag(not new-class) | AnyClass
	//   TObjArray:    byte-count(version+count+ObjectHeader) | version | count | ObjectHeader*count
	anyClass := buf(
		be32(0x40000000|uint32(2+4)),
		be16(0),
		be32(7),
	)
	objHeader := buf(
		be32(0x40000000|uint32(4+len(anyClass))),
		be32(0),
		anyClass,
	)
	data := buf(
		be32(0x40000000|uint32(2+4+len(objHeader))),
		be16(0),
		be32(1),
		objHeader,
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
	lo, ok := content.(uproot.ListOffsetArray)
	if !ok {
		t.Fatalf("expected ListOffsetArray, got %T", content)
	}
	if len(lo.Offsets) != 2 || lo.Offsets[0] != 0 || lo.Offsets[1] != 1 {
		t.Fatalf("unexpected offsets: %v", lo.Offsets)
	}
}
