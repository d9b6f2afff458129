package uproot

// carrayReader reads a C-style array. When flatSize >= 0 the shape is
// fixed and known at plan time (fArrayDim/fMaxIndex); when flatSize < 0 the
// array is jagged ("[]"-suffixed fTypeName) and each entry's element count
// is inferred from the basket's own entry-offset table rather than an
// explicit length prefix on the wire.
type carrayReader struct {
	name     string
	flatSize int
	element  Reader
	offsets  []int64 // only used when flatSize < 0
}

func newCArrayReader(name string, flatSize int, element Reader) *carrayReader {
	r := &carrayReader{name: name, flatSize: flatSize, element: element}
	if flatSize < 0 {
		r.offsets = []int64{0}
	}
	return r
}

func (r *carrayReader) Read(c *Cursor) error {
	if r.flatSize >= 0 {
		if _, err := r.element.ReadMany(c, r.flatSize); err != nil {
			return withContext(err, r.name, c.pos, nilSession)
		}
		return nil
	}

	endPos, err := c.NextEntryBoundary()
	if err != nil {
		return withContext(err, r.name, c.pos, nilSession)
	}
	count, err := r.element.ReadUntil(c, endPos)
	if err != nil {
		return withContext(err, r.name, c.pos, nilSession)
	}
	r.offsets = append(r.offsets, r.offsets[len(r.offsets)-1]+int64(count))
	return nil
}

func (r *carrayReader) ReadMany(c *Cursor, count int) (int, error) {
	if r.flatSize < 0 {
		return 0, newFramingError("%s: ReadMany not supported for a jagged C-style array", r.name)
	}
	for i := 0; i < count; i++ {
		if _, err := r.element.ReadMany(c, r.flatSize); err != nil {
			return i, withContext(err, r.name, c.pos, nilSession)
		}
	}
	return count, nil
}

func (r *carrayReader) ReadUntil(c *Cursor, endPos int) (int, error) {
	return 0, newFramingError("%s: ReadUntil not supported for a C-style array", r.name)
}

func (r *carrayReader) ReadManyMemberwise(c *Cursor, count int) (int, error) {
	for i := 0; i < count; i++ {
		if err := r.Read(c); err != nil {
			return i, err
		}
	}
	return count, nil
}

func (r *carrayReader) RawData() interface{} {
	if r.flatSize >= 0 {
		return r.element.RawData()
	}
	return rawListOffset{Offsets: r.offsets, Element: r.element.RawData()}
}
