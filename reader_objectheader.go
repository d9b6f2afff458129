package uproot

// objectHeaderReader reads a standalone object header: a byte-count, a tag
// (either a new-class-tag followed by a null-terminated class name, or
// anything else meaning "already-seen class"), then its element, checking
// the element consumed exactly the declared span.
type objectHeaderReader struct {
	name    string
	element Reader
}

func newObjectHeaderReader(name string, element Reader) *objectHeaderReader {
	return &objectHeaderReader{name: name, element: element}
}

func (r *objectHeaderReader) Read(c *Cursor) error {
	n, err := c.ReadByteCount()
	if err != nil {
		return withContext(err, r.name, c.pos, nilSession)
	}
	start := c.pos
	end := start + int(n)

	tag, err := c.I32()
	if err != nil {
		return withContext(err, r.name, c.pos, nilSession)
	}
	if uint32(tag) == newClassTag {
		if _, err := c.ReadCString(); err != nil {
			return withContext(err, r.name, c.pos, nilSession)
		}
	}

	if err := r.element.Read(c); err != nil {
		return withContext(err, r.name, c.pos, nilSession)
	}

	if c.pos != end {
		return withContext(newFramingError(
			"expected %d bytes, read %d", n, c.pos-start,
		), r.name, c.pos, nilSession)
	}
	return nil
}

func (r *objectHeaderReader) ReadMany(c *Cursor, count int) (int, error) {
	for i := 0; i < count; i++ {
		if err := r.Read(c); err != nil {
			return i, err
		}
	}
	return count, nil
}

func (r *objectHeaderReader) ReadUntil(c *Cursor, endPos int) (int, error) {
	count := 0
	for c.pos < endPos {
		if err := r.Read(c); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

func (r *objectHeaderReader) ReadManyMemberwise(c *Cursor, count int) (int, error) {
	return 0, newFramingError("%s: object header has no member-wise form", r.name)
}

func (r *objectHeaderReader) RawData() interface{} {
	return r.element.RawData()
}
