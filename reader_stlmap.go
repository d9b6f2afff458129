package uproot

// stlMapReader reads mapping-like STL containers (map, unordered_map,
// multimap, unordered_multimap). Object-wise storage interleaves key/value
// pairs element by element; member-wise storage stores every key then every
// value as two contiguous runs.
type stlMapReader struct {
	name       string
	withHeader bool
	mode       Mode
	key        Reader
	val        Reader
	offsets    []int64
}

func newSTLMapReader(name string, withHeader bool, mode Mode, key, val Reader) *stlMapReader {
	return &stlMapReader{name: name, withHeader: withHeader, mode: mode, key: key, val: val, offsets: []int64{0}}
}

func (r *stlMapReader) checkMode(isMemberwise bool) error {
	if r.mode == ModeObjWise && isMemberwise {
		return newModeMismatchError(r.name, "object-wise", "member-wise")
	}
	if r.mode == ModeMemberWise && !isMemberwise {
		return newModeMismatchError(r.name, "member-wise", "object-wise")
	}
	return nil
}

func (r *stlMapReader) readBody(c *Cursor, isMemberwise bool) error {
	n, err := c.U32()
	if err != nil {
		return err
	}
	r.offsets = append(r.offsets, r.offsets[len(r.offsets)-1]+int64(n))

	if isMemberwise {
		if _, err := r.key.ReadMany(c, int(n)); err != nil {
			return err
		}
		if _, err := r.val.ReadMany(c, int(n)); err != nil {
			return err
		}
		return nil
	}
	for i := uint32(0); i < n; i++ {
		if err := r.key.Read(c); err != nil {
			return err
		}
		if err := r.val.Read(c); err != nil {
			return err
		}
	}
	return nil
}

func (r *stlMapReader) readHeader(c *Cursor) (isMemberwise bool, err error) {
	if _, err = c.ReadByteCount(); err != nil {
		return false, err
	}
	v, err := c.ReadVersion()
	if err != nil {
		return false, err
	}
	if err = c.Skip(6); err != nil {
		return false, err
	}
	isMemberwise = v&streamedMemberwise != 0
	if err = r.checkMode(isMemberwise); err != nil {
		return false, err
	}
	return isMemberwise, nil
}

func (r *stlMapReader) Read(c *Cursor) error {
	isMemberwise, err := r.readHeader(c)
	if err != nil {
		return withContext(err, r.name, c.pos, nilSession)
	}
	if err := r.readBody(c, isMemberwise); err != nil {
		return withContext(err, r.name, c.pos, nilSession)
	}
	return nil
}

func (r *stlMapReader) ReadMany(c *Cursor, count int) (int, error) {
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

// readManySelfFramed implements ReadMany's negative-count form: the map
// reads its own fNBytes+fVersion header (plus the fixed 6-byte TClass-ref
// span readHeader also skips) and consumes key/value pairs until the
// declared byte-count span is exhausted. Requires withHeader.
func (r *stlMapReader) readManySelfFramed(c *Cursor) (int, error) {
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
	if err := c.Skip(6); err != nil {
		return 0, withContext(err, r.name, c.pos, nilSession)
	}
	isMemberwise := v&streamedMemberwise != 0
	if err := r.checkMode(isMemberwise); err != nil {
		return 0, withContext(err, r.name, c.pos, nilSession)
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

func (r *stlMapReader) ReadUntil(c *Cursor, endPos int) (int, error) {
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

func (r *stlMapReader) ReadManyMemberwise(c *Cursor, count int) (int, error) {
	if count < 0 {
		return 0, newFramingError("%s: negative count not allowed", r.name)
	}
	if err := r.checkMode(true); err != nil {
		return 0, withContext(err, r.name, c.pos, nilSession)
	}
	return r.ReadMany(c, count)
}

func (r *stlMapReader) RawData() interface{} {
	return rawMap{Offsets: r.offsets, Key: r.key.RawData(), Val: r.val.RawData()}
}

// rawMap is the raw decode output of an stlMapReader: an offsets table plus
// the independently accumulated key and value element data.
type rawMap struct {
	Offsets []int64
	Key     interface{}
	Val     interface{}
}
