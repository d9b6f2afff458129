package uproot

// stlStringReader reads std::string: optionally a shared
// fNBytes+fVersion header, then per element an 8/32-bit length and that
// many raw bytes.
type stlStringReader struct {
	name       string
	withHeader bool
	offsets    []int64
	data       []byte
}

func newSTLStringReader(name string, withHeader bool) *stlStringReader {
	return &stlStringReader{name: name, withHeader: withHeader, offsets: []int64{0}}
}

func (r *stlStringReader) readBody(c *Cursor) error {
	n, err := c.ReadTStringLen()
	if err != nil {
		return err
	}
	if err := c.Need(int(n)); err != nil {
		return err
	}
	r.data = append(r.data, c.data[c.pos:c.pos+int(n)]...)
	c.pos += int(n)
	r.offsets = append(r.offsets, r.offsets[len(r.offsets)-1]+int64(n))
	return nil
}

func (r *stlStringReader) Read(c *Cursor) error {
	if r.withHeader {
		if _, err := c.ReadByteCount(); err != nil {
			return withContext(err, r.name, c.pos, nilSession)
		}
		if _, err := c.ReadVersion(); err != nil {
			return withContext(err, r.name, c.pos, nilSession)
		}
	}
	if err := r.readBody(c); err != nil {
		return withContext(err, r.name, c.pos, nilSession)
	}
	return nil
}

func (r *stlStringReader) ReadMany(c *Cursor, count int) (int, error) {
	if count == 0 {
		return 0, nil
	}
	if count < 0 {
		return r.readManySelfFramed(c)
	}
	if r.withHeader {
		if _, err := c.ReadByteCount(); err != nil {
			return 0, withContext(err, r.name, c.pos, nilSession)
		}
		if _, err := c.ReadVersion(); err != nil {
			return 0, withContext(err, r.name, c.pos, nilSession)
		}
	}
	for i := 0; i < count; i++ {
		if err := r.readBody(c); err != nil {
			return i, withContext(err, r.name, c.pos, nilSession)
		}
	}
	return count, nil
}

// readManySelfFramed implements ReadMany's negative-count form: the reader
// consumes its own fNBytes+fVersion header and then reads strings until the
// declared byte-count span is exhausted. Requires withHeader.
func (r *stlStringReader) readManySelfFramed(c *Cursor) (int, error) {
	if !r.withHeader {
		return 0, withContext(newFramingError(
			"%s: ReadMany with negative count requires a self-framed header", r.name,
		), r.name, c.pos, nilSession)
	}
	n, err := c.ReadByteCount()
	if err != nil {
		return 0, withContext(err, r.name, c.pos, nilSession)
	}
	end := c.pos + int(n)
	if _, err := c.ReadVersion(); err != nil {
		return 0, withContext(err, r.name, c.pos, nilSession)
	}
	count := 0
	for c.pos < end {
		if err := r.readBody(c); err != nil {
			return count, withContext(err, r.name, c.pos, nilSession)
		}
		count++
	}
	return count, nil
}

func (r *stlStringReader) ReadUntil(c *Cursor, endPos int) (int, error) {
	if c.pos == endPos {
		return 0, nil
	}
	if r.withHeader {
		if _, err := c.ReadByteCount(); err != nil {
			return 0, withContext(err, r.name, c.pos, nilSession)
		}
		if _, err := c.ReadVersion(); err != nil {
			return 0, withContext(err, r.name, c.pos, nilSession)
		}
	}
	count := 0
	for c.pos < endPos {
		if err := r.readBody(c); err != nil {
			return count, withContext(err, r.name, c.pos, nilSession)
		}
		count++
	}
	return count, nil
}

// ReadManyMemberwise is identical to ReadMany: see primitiveReader's comment.
func (r *stlStringReader) ReadManyMemberwise(c *Cursor, count int) (int, error) {
	return r.ReadMany(c, count)
}

func (r *stlStringReader) RawData() interface{} {
	return rawListOffset{Offsets: r.offsets, Element: r.data}
}
