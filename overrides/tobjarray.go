// Package overrides holds bespoke UserFactory implementations for wire
// shapes the generic planner cannot derive from streamer info alone: either
// because ROOT special-cases the class (TObjArray) or because a producer
// wrote a hand-rolled streamer outside the usual member-wise/object-wise
// rules (see fixedrecord.go).
package overrides

import (
	"fmt"

	"github.com/mrzimu/uproot-custom"
)

// tobjArrayElementClass is the synthetic element class ROOT's TObjArray
// streamer info always names for its payload slots, regardless of what
// concrete classes are actually stored at runtime.
const tobjArrayElementClass = "TObjInObjArray"

// TObjArrayFactory reads a TObjArray: a byte-count+version header, a u32
// element count, then that many ObjectHeader-wrapped AnyClass objects. It
// registers above the ordinary BaseObject/AnyClass factories (priority 50)
// so it claims "TObjArray" before they get a chance to misread its
// container framing as a plain object.
type TObjArrayFactory struct{}

// Register installs the TObjArray override into the package-wide planner.
// Call once during process setup, before any PlanBranch/ReadBranch call
// that might encounter a TObjArray branch.
func Register() {
	uproot.RegisterOverride(50, TObjArrayFactory{})
}

func (TObjArrayFactory) TryPlan(ctx *uproot.PlanContext, top string, node uproot.Node, schema uproot.Schema, path string) (*uproot.Plan, bool, error) {
	if top != "TObjArray" {
		return nil, false, nil
	}

	members, ok := schema.Lookup(tobjArrayElementClass)
	if !ok {
		return nil, false, nil
	}

	// ROOT's item paths carry a trailing "*" for the pointer-typed
	// TObjArray member; strip it along with the synthetic class segment
	// so nested diagnostics read against the field's own path instead.
	cleanPath := stripObjArraySuffix(path)

	sub := make([]*uproot.Plan, 0, len(members))
	for _, m := range members {
		p, err := uproot.PlanChild(m, schema, cleanPath+"."+tobjArrayElementClass)
		if err != nil {
			return nil, false, err
		}
		sub = append(sub, p)
	}

	anyClassPlan := &uproot.Plan{
		Kind: uproot.KindAnyClass,
		Name: tobjArrayElementClass,
		Path: cleanPath + "." + tobjArrayElementClass,
		Sub:  sub,
	}
	objHeaderPlan := &uproot.Plan{
		Kind:    uproot.KindObjectHeader,
		Name:    tobjArrayElementClass,
		Path:    anyClassPlan.Path,
		Element: anyClassPlan,
	}

	return &uproot.Plan{
		Name:    node.Name,
		Path:    path,
		Element: objHeaderPlan,
	}, true, nil
}

func stripObjArraySuffix(path string) string {
	const suffix = ".TObjArray*"
	for {
		i := indexOf(path, suffix)
		if i < 0 {
			return path
		}
		path = path[:i] + path[i+len(suffix):]
	}
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}

func (TObjArrayFactory) Build(p *uproot.Plan) uproot.Reader {
	return newTObjArrayReader(p.Name, uproot.Build(p.Element))
}

func (TObjArrayFactory) Assemble(p *uproot.Plan, raw interface{}) (uproot.Content, error) {
	r := raw.(tobjArrayRaw)
	elements, err := uproot.Assemble(p.Element, r.element)
	if err != nil {
		return nil, err
	}
	return uproot.ListOffsetArray{Offsets: r.offsets, Elements: elements}, nil
}

// tobjArrayReader reads the TObjArray container framing itself; each
// element's own ObjectHeader+AnyClass framing is handled by the element
// Reader it wraps.
type tobjArrayReader struct {
	name    string
	element uproot.Reader
	offsets []int64
}

func newTObjArrayReader(name string, element uproot.Reader) *tobjArrayReader {
	return &tobjArrayReader{name: name, element: element, offsets: []int64{0}}
}

func (r *tobjArrayReader) Read(c *uproot.Cursor) error {
	if _, err := c.ReadByteCount(); err != nil {
		return err
	}
	if _, err := c.ReadVersion(); err != nil {
		return err
	}
	n, err := c.U32()
	if err != nil {
		return err
	}
	if _, err := r.element.ReadMany(c, int(n)); err != nil {
		return err
	}
	r.offsets = append(r.offsets, r.offsets[len(r.offsets)-1]+int64(n))
	return nil
}

func (r *tobjArrayReader) ReadMany(c *uproot.Cursor, count int) (int, error) {
	for i := 0; i < count; i++ {
		if err := r.Read(c); err != nil {
			return i, err
		}
	}
	return count, nil
}

func (r *tobjArrayReader) ReadUntil(c *uproot.Cursor, endPos int) (int, error) {
	count := 0
	for c.Pos() < endPos {
		if err := r.Read(c); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

func (r *tobjArrayReader) ReadManyMemberwise(c *uproot.Cursor, count int) (int, error) {
	return 0, fmt.Errorf("%s: TObjArray has no member-wise form", r.name)
}

func (r *tobjArrayReader) RawData() interface{} {
	return tobjArrayRaw{offsets: r.offsets, element: r.element.RawData()}
}

type tobjArrayRaw struct {
	offsets []int64
	element interface{}
}
