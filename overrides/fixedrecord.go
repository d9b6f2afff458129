package overrides

import (
	"fmt"

	"github.com/mrzimu/uproot-custom"
)

// fixedRecordMemberName is the streamer element name a producer writes with
// its own hand-rolled wire format instead of ROOT's usual member-wise or
// object-wise encoding. Unlike TObjArrayFactory this is matched by the
// member's own fName, not its top type name or item path, since the
// producer's class name varies but the field name it attaches to does not.
const fixedRecordMemberName = "TOverrideStreamer"

// FixedRecordFactory reads a bespoke fixed record with no fNBytes/fVersion
// framing of its own: a plain int32 followed by a plain float64, once per
// entry. It registers above AnyClass (priority 30) so a class carrying a
// member named fixedRecordMemberName never falls into the generic streamer
// walk, which would otherwise look for framing this wire shape doesn't
// have.
type FixedRecordFactory struct{}

// RegisterFixedRecord installs the fixed-record override into the package-wide
// planner.
func RegisterFixedRecord() {
	uproot.RegisterOverride(30, FixedRecordFactory{})
}

func (FixedRecordFactory) TryPlan(ctx *uproot.PlanContext, top string, node uproot.Node, schema uproot.Schema, path string) (*uproot.Plan, bool, error) {
	if node.Name != fixedRecordMemberName {
		return nil, false, nil
	}
	return &uproot.Plan{Name: node.Name, Path: path}, true, nil
}

func (FixedRecordFactory) Build(p *uproot.Plan) uproot.Reader {
	return newFixedRecordReader(p.Name)
}

func (FixedRecordFactory) Assemble(p *uproot.Plan, raw interface{}) (uproot.Content, error) {
	r := raw.(fixedRecordRaw)
	return uproot.RecordArray{
		Fields: []string{"m_int", "m_double"},
		Contents: []uproot.Content{
			uproot.NumericArray{Dtype: "i4", Data: r.ints},
			uproot.NumericArray{Dtype: "d", Data: r.doubles},
		},
	}, nil
}

// fixedRecordReader reads the two scalars directly, with no byte-count or
// version word: the producer's own serializer never wrote one.
type fixedRecordReader struct {
	name    string
	ints    []int32
	doubles []float64
}

func newFixedRecordReader(name string) *fixedRecordReader {
	return &fixedRecordReader{name: name}
}

func (r *fixedRecordReader) Read(c *uproot.Cursor) error {
	i, err := c.I32()
	if err != nil {
		return err
	}
	d, err := c.F64()
	if err != nil {
		return err
	}
	r.ints = append(r.ints, i)
	r.doubles = append(r.doubles, d)
	return nil
}

func (r *fixedRecordReader) ReadMany(c *uproot.Cursor, count int) (int, error) {
	for i := 0; i < count; i++ {
		if err := r.Read(c); err != nil {
			return i, err
		}
	}
	return count, nil
}

func (r *fixedRecordReader) ReadUntil(c *uproot.Cursor, endPos int) (int, error) {
	count := 0
	for c.Pos() < endPos {
		if err := r.Read(c); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

func (r *fixedRecordReader) ReadManyMemberwise(c *uproot.Cursor, count int) (int, error) {
	return 0, fmt.Errorf("%s: fixed record has no member-wise form", r.name)
}

func (r *fixedRecordReader) RawData() interface{} {
	return fixedRecordRaw{ints: r.ints, doubles: r.doubles}
}

type fixedRecordRaw struct {
	ints    []int32
	doubles []float64
}
