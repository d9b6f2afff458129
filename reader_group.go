package uproot

import "github.com/mrzimu/uproot-custom/internal/debug"

// groupReader reads a fixed ordered list of member readers one after
// another with no framing of its own; the caller (BaseObject, AnyClass, a
// UserOverride) supplies whatever header or cross-check belongs around it.
type groupReader struct {
	name    string
	members []Reader
}

func newGroupReader(name string, members []Reader) *groupReader {
	return &groupReader{name: name, members: members}
}

func (r *groupReader) Read(c *Cursor) error {
	for _, m := range r.members {
		start := c.Pos()
		if err := m.Read(c); err != nil {
			return err
		}
		debug.Trace(r.name, start, c.Pos())
	}
	return nil
}

func (r *groupReader) ReadMany(c *Cursor, count int) (int, error) {
	for i := 0; i < count; i++ {
		if err := r.Read(c); err != nil {
			return i, err
		}
	}
	return count, nil
}

func (r *groupReader) ReadUntil(c *Cursor, endPos int) (int, error) {
	count := 0
	for c.pos < endPos {
		if err := r.Read(c); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

func (r *groupReader) ReadManyMemberwise(c *Cursor, count int) (int, error) {
	for _, m := range r.members {
		if _, err := m.ReadMany(c, count); err != nil {
			return 0, err
		}
	}
	return count, nil
}

func (r *groupReader) RawData() interface{} {
	data := make([]interface{}, len(r.members))
	for i, m := range r.members {
		data[i] = m.RawData()
	}
	return data
}
