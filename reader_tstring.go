package uproot

// tstringReader reads a bare TString item: an 8-bit (or extended 32-bit)
// length, then that many raw bytes, ragged across entries.
type tstringReader struct {
	name    string
	offsets []int64
	data    []byte
}

func newTStringReader(name string, _ bool) *tstringReader {
	return &tstringReader{name: name, offsets: []int64{0}}
}

func (r *tstringReader) Read(c *Cursor) error {
	n, err := c.ReadTStringLen()
	if err != nil {
		return withContext(err, r.name, c.pos, nilSession)
	}
	if err := c.Need(int(n)); err != nil {
		return withContext(err, r.name, c.pos, nilSession)
	}
	r.data = append(r.data, c.data[c.pos:c.pos+int(n)]...)
	c.pos += int(n)
	r.offsets = append(r.offsets, r.offsets[len(r.offsets)-1]+int64(n))
	return nil
}

func (r *tstringReader) ReadMany(c *Cursor, count int) (int, error) {
	for i := 0; i < count; i++ {
		if err := r.Read(c); err != nil {
			return i, err
		}
	}
	return count, nil
}

func (r *tstringReader) ReadUntil(c *Cursor, endPos int) (int, error) {
	count := 0
	for c.pos < endPos {
		if err := r.Read(c); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

// ReadManyMemberwise is identical to ReadMany: see primitiveReader's comment.
func (r *tstringReader) ReadManyMemberwise(c *Cursor, count int) (int, error) {
	return r.ReadMany(c, count)
}

func (r *tstringReader) RawData() interface{} {
	return rawListOffset{Offsets: r.offsets, Element: r.data}
}
