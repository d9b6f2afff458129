package uproot

import "github.com/mrzimu/uproot-custom/internal/debug"

// anyClassReader reads an arbitrary registered class: a byte-count, a
// version word, then its members in order, with an explicit check that the
// cursor landed exactly on the declared end of the object. This is the one
// place (with objectHeaderReader) that independently verifies a byte-count
// span rather than trusting the caller.
type anyClassReader struct {
	name    string
	members *groupReader
}

func newAnyClassReader(name string, members *groupReader) *anyClassReader {
	return &anyClassReader{name: name, members: members}
}

func (r *anyClassReader) Read(c *Cursor) error {
	n, err := c.ReadByteCount()
	if err != nil {
		return withContext(err, r.name, c.pos, nilSession)
	}
	start := c.pos
	end := start + int(n)

	if _, err := c.ReadVersion(); err != nil {
		return withContext(err, r.name, c.pos, nilSession)
	}

	if err := r.members.Read(c); err != nil {
		return withContext(err, r.name, c.pos, nilSession)
	}

	if c.pos != end {
		return withContext(newFramingError(
			"expected %d bytes, read %d", n, c.pos-start,
		), r.name, c.pos, nilSession)
	}
	debug.Trace(r.name, start, c.pos)
	return nil
}

func (r *anyClassReader) ReadMany(c *Cursor, count int) (int, error) {
	for i := 0; i < count; i++ {
		if err := r.Read(c); err != nil {
			return i, err
		}
	}
	return count, nil
}

func (r *anyClassReader) ReadUntil(c *Cursor, endPos int) (int, error) {
	count := 0
	for c.pos < endPos {
		if err := r.Read(c); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

func (r *anyClassReader) ReadManyMemberwise(c *Cursor, count int) (int, error) {
	return r.members.ReadManyMemberwise(c, count)
}

func (r *anyClassReader) RawData() interface{} {
	return r.members.RawData()
}
