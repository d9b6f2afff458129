package uproot

import (
	"encoding/binary"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mrzimu/uproot-custom/internal/difftest"
)

func buf(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func be16(v uint16) []byte {
	b := make([]byte, 2)
	binary.BigEndian.PutUint16(b, v)
	return b
}

func be32(v uint32) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, v)
	return b
}

// S1: a single uint32_t branch, 2 entries.
func TestReadBranchS1Uint32(t *testing.T) {
	node := Node{Name: "x", TypeName: "uint32_t", Type: 13}
	data := []byte{0x00, 0x00, 0x00, 0x2A, 0x00, 0x00, 0x00, 0x2B}
	offsets := []int{0, 4, 8}

	content, err := ReadBranch(node, nil, nil, false, data, offsets)
	if err != nil {
		t.Fatalf("ReadBranch: %v", err)
	}
	want := NumericArray{Dtype: "u4", Data: []uint32{42, 43}}
	if diff := cmp.Diff(want, content); diff != "" {
		t.Fatalf("content mismatch (-want +got):\n%s", diff)
	}
}

// S2: a std::string branch; called_from_top means no outer header.
func TestReadBranchS2STLString(t *testing.T) {
	node := Node{Name: "s", TypeName: "string", Type: 500}
	data := []byte{0x03, 0x61, 0x62, 0x63}
	offsets := []int{0, 4}

	content, err := ReadBranch(node, nil, nil, false, data, offsets)
	if err != nil {
		t.Fatalf("ReadBranch: %v", err)
	}
	sa, ok := content.(StringArray)
	if !ok {
		t.Fatalf("expected StringArray, got %T", content)
	}
	if diff := cmp.Diff([]int64{0, 3}, sa.Offsets); diff != "" {
		t.Fatalf("offsets mismatch (-want +got):\n%s", diff)
	}
	if got := string(sa.Data); got != "abc" {
		t.Fatalf("expected %q, got %q", "abc", got)
	}
}

// S3: vector<int32_t> with its own byte-count+version header, one entry.
func TestReadBranchS3STLSeqWithHeader(t *testing.T) {
	node := Node{Name: "v", TypeName: "vector<int32_t>"}
	data := buf(
		be32(0x40000000|16), // byte-count
		be16(10),            // version, no member-wise bit
		be32(2),              // fSize
		be32(7), be32(8),
	)
	offsets := []int{0, len(data)}

	content, err := ReadBranch(node, nil, nil, false, data, offsets)
	if err != nil {
		t.Fatalf("ReadBranch: %v", err)
	}
	lo, ok := content.(ListOffsetArray)
	if !ok {
		t.Fatalf("expected ListOffsetArray, got %T", content)
	}
	if diff := cmp.Diff([]int64{0, 2}, lo.Offsets); diff != "" {
		t.Fatalf("offsets mismatch (-want +got):\n%s", diff)
	}
	want := NumericArray{Dtype: "i4", Data: []int32{7, 8}}
	if diff := cmp.Diff(want, lo.Elements); diff != "" {
		t.Fatalf("elements mismatch (-want +got):\n%s", diff)
	}
}

// S4: map<int32_t,double>, stored member-wise (version bit 14 set), one
// entry with one pair.
func TestReadBranchS4STLMapMemberwise(t *testing.T) {
	node := Node{Name: "m", TypeName: "map<int32_t,double>"}
	data := buf(
		be32(0x40000000|22),                // byte-count
		be16(uint16(1<<14)),                // version, member-wise bit set
		make([]byte, 6),                     // TClass-ref span readHeader skips
		be32(1),                             // fSize
		be32(123),                           // key
		be32(0x40490FDB), be32(0x4060147B), // val (two halves of a float64 bit pattern)
	)
	offsets := []int{0, len(data)}

	content, err := ReadBranch(node, nil, nil, false, data, offsets)
	if err != nil {
		t.Fatalf("ReadBranch: %v", err)
	}
	lo, ok := content.(ListOffsetArray)
	if !ok {
		t.Fatalf("expected ListOffsetArray, got %T", content)
	}
	if diff := cmp.Diff([]int64{0, 1}, lo.Offsets); diff != "" {
		t.Fatalf("offsets mismatch (-want +got):\n%s", diff)
	}
	rec, ok := lo.Elements.(RecordArray)
	if !ok {
		t.Fatalf("expected RecordArray, got %T", lo.Elements)
	}
	if diff := cmp.Diff([]string{"key", "val"}, rec.Fields); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
	keys := rec.Contents[0].(NumericArray).Data.([]int32)
	if len(keys) != 1 || keys[0] != 123 {
		t.Fatalf("unexpected keys: %v", keys)
	}
}

// S5: a fixed C-style array int32_t[3], one entry.
func TestReadBranchS5CArrayFixed(t *testing.T) {
	node := Node{Name: "a", TypeName: "Int_t", Type: 3, ArrayDim: 1, MaxIndex: []int32{3}}
	data := buf(be32(1), be32(2), be32(3))
	offsets := []int{0, len(data)}

	content, err := ReadBranch(node, nil, nil, false, data, offsets)
	if err != nil {
		t.Fatalf("ReadBranch: %v", err)
	}
	ra, ok := content.(RegularArray)
	if !ok {
		t.Fatalf("expected RegularArray, got %T", content)
	}
	if ra.Size != 3 {
		t.Fatalf("expected size 3, got %d", ra.Size)
	}
	want := NumericArray{Dtype: "i4", Data: []int32{1, 2, 3}}
	if diff := cmp.Diff(want, ra.Elements); diff != "" {
		t.Fatalf("elements mismatch (-want +got):\n%s", diff)
	}
}

// S6: a jagged C-style array int32_t[], two entries.
func TestReadBranchS6CArrayJagged(t *testing.T) {
	node := Node{Name: "a", TypeName: "Int_t", Type: 3}
	data := buf(be32(1), be32(2), be32(9))
	offsets := []int{0, 8, 12}

	content, err := ReadBranch(node, nil, []int32{0}, true, data, offsets)
	if err != nil {
		t.Fatalf("ReadBranch: %v", err)
	}
	lo, ok := content.(ListOffsetArray)
	if !ok {
		t.Fatalf("expected ListOffsetArray, got %T", content)
	}
	if diff := cmp.Diff([]int64{0, 2, 3}, lo.Offsets); diff != "" {
		t.Fatalf("offsets mismatch (-want +got):\n%s", diff)
	}
	want := NumericArray{Dtype: "i4", Data: []int32{1, 2, 9}}
	if diff := cmp.Diff(want, lo.Elements); diff != "" {
		t.Fatalf("elements mismatch (-want +got):\n%s", diff)
	}
}

// S7: a bare TString branch, one entry.
func TestReadBranchS7TString(t *testing.T) {
	node := Node{Name: "s", TypeName: "TString"}
	data := []byte{0x05, 'H', 'e', 'l', 'l', 'o'}
	offsets := []int{0, len(data)}

	content, err := ReadBranch(node, nil, nil, false, data, offsets)
	if err != nil {
		t.Fatalf("ReadBranch: %v", err)
	}
	sa, ok := content.(StringArray)
	if !ok {
		t.Fatalf("expected StringArray, got %T", content)
	}
	if got := string(sa.Data); got != "Hello" {
		t.Fatalf("expected %q, got %q", "Hello", got)
	}
	if diff := cmp.Diff([]int64{0, 5}, sa.Offsets); diff != "" {
		t.Fatalf("offsets mismatch (-want +got):\n%s", diff)
	}
}

// P1 Boundary: ReadBranch rejects a basket whose declared entry boundary
// does not match where decoding actually left the cursor.
func TestBoundaryInvariantRejectsMismatch(t *testing.T) {
	node := Node{Name: "x", TypeName: "uint32_t", Type: 13}
	data := []byte{0x00, 0x00, 0x00, 0x2A, 0x00, 0x00, 0x00, 0x2B}
	offsets := []int{0, 4, 9} // wrong: second entry is 4 bytes, not 5

	if _, err := ReadBranch(node, nil, nil, false, data, offsets); err == nil {
		t.Fatalf("expected a framing error for a mismatched entry boundary")
	}
}

// P8 Mode mismatch detection: a container planned object-wise must reject a
// wire that carries the member-wise bit, before producing any output.
func TestModeMismatchInvariant(t *testing.T) {
	plan := &Plan{
		Kind: KindSTLSeq, Name: "v", WithHeader: true, Mode: ModeObjWise,
		Element: &Plan{Kind: KindPrimitive, Name: "v", CType: "i4"},
	}
	reader := Build(plan)

	data := buf(be32(0x40000000|4), be16(uint16(1<<14)))
	c := NewCursor(data)

	err := reader.Read(c)
	if err == nil {
		t.Fatalf("expected a ModeMismatch error")
	}
	e, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if e.Kind != ModeMismatch {
		t.Fatalf("expected ModeMismatch, got %s", e.Kind)
	}
}

// P9 TObject no-keep: a TObject(keep_data=false) base contributes no column
// and no field name to its enclosing record.
func TestTObjectNoKeepInvariant(t *testing.T) {
	plan := &Plan{
		Kind: KindGroup, Name: "root",
		Sub: []*Plan{
			{Kind: KindTObject, Name: "base", KeepData: false},
			{Kind: KindPrimitive, Name: "x", CType: "i4"},
		},
	}
	reader := Build(plan)

	data := buf(
		be16(1),       // TObject version
		be32(0),       // fUniqueID
		be32(0),       // fBits, referenced bit clear
		be32(42),      // x
	)
	c := NewCursor(data)
	if err := reader.Read(c); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if c.Pos() != len(data) {
		t.Fatalf("expected cursor to consume all %d bytes, consumed %d", len(data), c.Pos())
	}

	content, err := Assemble(plan, reader.RawData())
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	rec, ok := content.(RecordArray)
	if !ok {
		t.Fatalf("expected RecordArray, got %T", content)
	}
	if diff := cmp.Diff([]string{"x"}, rec.Fields); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
	want := NumericArray{Dtype: "i4", Data: []int32{42}}
	if diff := cmp.Diff(want, rec.Contents[0]); diff != "" {
		t.Fatalf("contents mismatch (-want +got):\n%s", diff)
	}
}

// P6 Header hoisting equivalence: read_many(cur, N) on a header-carrying
// container must advance the cursor, and produce data, identical to N
// per-element body reads (readBody) on a cursor where the shared header was
// consumed manually ahead of time, by a reader built with WithHeader=false.
func TestHeaderHoistingEquivalence(t *testing.T) {
	body1 := buf(be32(1), be32(10)) // fSize=1, value 10
	body2 := buf(be32(1), be32(20)) // fSize=1, value 20
	header := buf(be32(0x40000000|uint32(2+len(body1)+len(body2))), be16(10))
	data := buf(header, body1, body2)

	hoisted := newSTLSeqReader("v", true, ModeAuto, newPrimitiveReader("v", "i4"))
	c1 := NewCursor(data)
	if _, err := hoisted.ReadMany(c1, 2); err != nil {
		t.Fatalf("ReadMany: %v", err)
	}

	manual := newSTLSeqReader("v", false, ModeAuto, newPrimitiveReader("v", "i4"))
	c2 := NewCursor(data)
	if err := c2.Skip(len(header)); err != nil {
		t.Fatalf("Skip: %v", err)
	}
	// The header is already consumed on c2, so each remaining element is
	// read the same way readBody reads one inside ReadMany's loop.
	for i := 0; i < 2; i++ {
		if err := manual.readBody(c2, false); err != nil {
			t.Fatalf("readBody #%d: %v", i, err)
		}
	}

	if c1.Pos() != c2.Pos() {
		t.Fatalf("cursor advanced differently: ReadMany left it at %d, manual Read at %d", c1.Pos(), c2.Pos())
	}

	gotHoisted, err := Assemble(&Plan{Kind: KindSTLSeq, Name: "v", Element: &Plan{Kind: KindPrimitive, Name: "v", CType: "i4"}}, hoisted.RawData())
	if err != nil {
		t.Fatalf("Assemble hoisted: %v", err)
	}
	gotManual, err := Assemble(&Plan{Kind: KindSTLSeq, Name: "v", Element: &Plan{Kind: KindPrimitive, Name: "v", CType: "i4"}}, manual.RawData())
	if err != nil {
		t.Fatalf("Assemble manual: %v", err)
	}
	difftest.Equal(t, "stlseq_header_hoisting", dumpContent(gotManual), dumpContent(gotHoisted))
}

// dumpContent renders a Content tree as Go-syntax text, used only so
// TestHeaderHoistingEquivalence can compare the two decode paths with a
// readable unified diff on failure instead of two unreadable struct dumps.
func dumpContent(c Content) string {
	return fmt.Sprintf("%#v", c)
}
