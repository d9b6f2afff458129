package uproot

// tobjectReader reads a TObject base: a version word, fUniqueID, fBits, and
// (only when fBits' referenced bit is set) a 2-byte process-id index. When
// keepData is false the fields are read to stay in sync with the cursor but
// discarded, matching invariant P9 (a TObject base contributes no Content
// field unless explicitly kept).
type tobjectReader struct {
	name        string
	keepData    bool
	uniqueIDs   []int32
	bits        []uint32
	pidf        []uint16
	pidfOffsets []int64
}

func newTObjectReader(name string, keepData bool) *tobjectReader {
	return &tobjectReader{name: name, keepData: keepData, pidfOffsets: []int64{0}}
}

func (r *tobjectReader) Read(c *Cursor) error {
	if _, err := c.ReadVersion(); err != nil {
		return withContext(err, r.name, c.pos, nilSession)
	}
	uid, err := c.I32()
	if err != nil {
		return withContext(err, r.name, c.pos, nilSession)
	}
	bits, err := c.U32()
	if err != nil {
		return withContext(err, r.name, c.pos, nilSession)
	}

	if bits&tobjectReferenced != 0 {
		if r.keepData {
			pidf, err := c.U16()
			if err != nil {
				return withContext(err, r.name, c.pos, nilSession)
			}
			r.pidf = append(r.pidf, pidf)
		} else if err := c.Skip(2); err != nil {
			return withContext(err, r.name, c.pos, nilSession)
		}
	}

	if r.keepData {
		r.uniqueIDs = append(r.uniqueIDs, uid)
		r.bits = append(r.bits, bits)
		r.pidfOffsets = append(r.pidfOffsets, int64(len(r.pidf)))
	}
	return nil
}

func (r *tobjectReader) ReadMany(c *Cursor, count int) (int, error) {
	for i := 0; i < count; i++ {
		if err := r.Read(c); err != nil {
			return i, err
		}
	}
	return count, nil
}

func (r *tobjectReader) ReadUntil(c *Cursor, endPos int) (int, error) {
	count := 0
	for c.pos < endPos {
		if err := r.Read(c); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

func (r *tobjectReader) ReadManyMemberwise(c *Cursor, count int) (int, error) {
	return r.ReadMany(c, count)
}

func (r *tobjectReader) RawData() interface{} {
	if !r.keepData {
		return nil
	}
	return rawTObject{UniqueIDs: r.uniqueIDs, Bits: r.bits, Pidf: r.pidf, PidfOffsets: r.pidfOffsets}
}

type rawTObject struct {
	UniqueIDs   []int32
	Bits        []uint32
	Pidf        []uint16
	PidfOffsets []int64
}
