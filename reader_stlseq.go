package uproot

// stlSeqReader reads sequence-like STL containers (vector, array, list,
// set, multiset, unordered_set, unordered_multiset). Read always reads an
// fNBytes+fVersion header; ReadMany/ReadUntil read one shared header per
// call when withHeader is set, not once per element. The element count
// itself is re-read as a u32 ahead of every element run regardless of
// header.
type stlSeqReader struct {
	name       string
	withHeader bool
	mode       Mode
	element    Reader
	offsets    []int64
}

func newSTLSeqReader(name string, withHeader bool, mode Mode, element Reader) *stlSeqReader {
	return &stlSeqReader{name: name, withHeader: withHeader, mode: mode, element: element, offsets: []int64{0}}
}

func (r *stlSeqReader) checkMode(isMemberwise bool) error {
	if r.mode == ModeObjWise && isMemberwise {
		return newModeMismatchError(r.name, "object-wise", "member-wise")
	}
	if r.mode == ModeMemberWise && !isMemberwise {
		return newModeMismatchError(r.name, "member-wise", "object-wise")
	}
	return nil
}

func (r *stlSeqReader) readBody(c *Cursor, isMemberwise bool) error {
	n, err := c.U32()
	if err != nil {
		return err
	}
	r.offsets = append(r.offsets, r.offsets[len(r.offsets)-1]+int64(n))

	if isMemberwise {
		_, err = r.element.ReadManyMemberwise(c, int(n))
	} else {
		_, err = r.element.ReadMany(c, int(n))
	}
	return err
}

func (r *stlSeqReader) readHeader(c *Cursor) (isMemberwise bool, err error) {
	if _, err = c.ReadByteCount(); err != nil {
		return false, err
	}
	v, err := c.ReadVersion()
	if err != nil {
		return false, err
	}
	isMemberwise = v&streamedMemberwise != 0
	if err = r.checkMode(isMemberwise); err != nil {
		return false, err
	}
	if isMemberwise {
		if err = c.Skip(2); err != nil {
			return false, err
		}
	}
	return isMemberwise, nil
}

func (r *stlSeqReader) Read(c *Cursor) error {
	isMemberwise, err := r.readHeader(c)
	if err != nil {
		return withContext(err, r.name, c.pos, nilSession)
	}
	if err := r.readBody(c, isMemberwise); err != nil {
		return withContext(err, r.name, c.pos, nilSession)
	}
	return nil
}

func (r *stlSeqReader) ReadMany(c *Cursor, count int) (int, error) {
	if count == 0 {
		return 0, nil
	}
	if count < 0 {
		return r.readManySelfFramed(c)
	}
	isMemberwise := r.mode == ModeMemberWise
	if r.withHeader {
		var err error
		isMemberwise, err = r.readHeader(c)
		if err != nil {
			return 0, withContext(err, r.name, c.pos, nilSession)
		}
	}
	for i := 0; i < count; i++ {
		if err := r.readBody(c, isMemberwise); err != nil {
			return i, withContext(err, r.name, c.pos, nilSession)
		}
	}
	return count, nil
}

// readManySelfFramed implements ReadMany's negative-count form: the caller
// does not know the element count ahead of time, so the container reads its
// own fNBytes+fVersion header and consumes elements until the declared
// byte-count span is exhausted. Requires withHeader, since there is
// otherwise no span to bound the loop.
func (r *stlSeqReader) readManySelfFramed(c *Cursor) (int, error) {
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
	v, err := c.ReadVersion()
	if err != nil {
		return 0, withContext(err, r.name, c.pos, nilSession)
	}
	isMemberwise := v&streamedMemberwise != 0
	if err := r.checkMode(isMemberwise); err != nil {
		return 0, withContext(err, r.name, c.pos, nilSession)
	}
	if isMemberwise {
		if err := c.Skip(2); err != nil {
			return 0, withContext(err, r.name, c.pos, nilSession)
		}
	}
	count := 0
	for c.pos < end {
		if err := r.readBody(c, isMemberwise); err != nil {
			return count, withContext(err, r.name, c.pos, nilSession)
		}
		count++
	}
	return count, nil
}

func (r *stlSeqReader) ReadUntil(c *Cursor, endPos int) (int, error) {
	if c.pos == endPos {
		return 0, nil
	}
	isMemberwise := r.mode == ModeMemberWise
	if r.withHeader {
		var err error
		isMemberwise, err = r.readHeader(c)
		if err != nil {
			return 0, withContext(err, r.name, c.pos, nilSession)
		}
	}
	count := 0
	for c.pos < endPos {
		if err := r.readBody(c, isMemberwise); err != nil {
			return count, withContext(err, r.name, c.pos, nilSession)
		}
		count++
	}
	return count, nil
}

func (r *stlSeqReader) ReadManyMemberwise(c *Cursor, count int) (int, error) {
	return 0, newFramingError("%s: STL sequence has no nested member-wise form", r.name)
}

func (r *stlSeqReader) RawData() interface{} {
	return rawListOffset{Offsets: r.offsets, Element: r.element.RawData()}
}
