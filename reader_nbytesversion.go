package uproot

// nbytesVersionReader reads and discards a byte-count and a version word
// ahead of its element, without independently verifying that the element
// consumed exactly the declared byte count. Used for BaseObject, whose
// enclosing AnyClass or ObjectHeader already checks the outer span.
type nbytesVersionReader struct {
	name    string
	element Reader
}

func newNBytesVersionReader(name string, element Reader) *nbytesVersionReader {
	return &nbytesVersionReader{name: name, element: element}
}

func (r *nbytesVersionReader) Read(c *Cursor) error {
	if _, err := c.ReadByteCount(); err != nil {
		return withContext(err, r.name, c.pos, nilSession)
	}
	if _, err := c.ReadVersion(); err != nil {
		return withContext(err, r.name, c.pos, nilSession)
	}
	return r.element.Read(c)
}

func (r *nbytesVersionReader) ReadMany(c *Cursor, count int) (int, error) {
	for i := 0; i < count; i++ {
		if err := r.Read(c); err != nil {
			return i, err
		}
	}
	return count, nil
}

func (r *nbytesVersionReader) ReadUntil(c *Cursor, endPos int) (int, error) {
	count := 0
	for c.pos < endPos {
		if err := r.Read(c); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

func (r *nbytesVersionReader) ReadManyMemberwise(c *Cursor, count int) (int, error) {
	return r.element.ReadManyMemberwise(c, count)
}

func (r *nbytesVersionReader) RawData() interface{} {
	return r.element.RawData()
}
