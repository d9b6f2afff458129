package uproot

import "github.com/mrzimu/uproot-custom/internal/cast"

// tarrayReader reads ROOT's TArray* family: a u32 element count followed by
// that many flat elements, ragged across entries.
type tarrayReader struct {
	name    string
	ctype   string
	offsets []int64
	data    []byte
}

func newTArrayReader(name, ctype string) *tarrayReader {
	return &tarrayReader{name: name, ctype: ctype, offsets: []int64{0}}
}

func (r *tarrayReader) Read(c *Cursor) error {
	n, err := c.U32()
	if err != nil {
		return withContext(err, r.name, c.pos, nilSession)
	}
	raw, err := c.readBulk(r.ctype, int(n))
	if err != nil {
		return withContext(err, r.name, c.pos, nilSession)
	}
	r.data = append(r.data, raw...)
	r.offsets = append(r.offsets, r.offsets[len(r.offsets)-1]+int64(n))
	return nil
}

func (r *tarrayReader) ReadMany(c *Cursor, count int) (int, error) {
	for i := 0; i < count; i++ {
		if err := r.Read(c); err != nil {
			return i, err
		}
	}
	return count, nil
}

func (r *tarrayReader) ReadUntil(c *Cursor, endPos int) (int, error) {
	count := 0
	for c.pos < endPos {
		if err := r.Read(c); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

// ReadManyMemberwise is identical to ReadMany: a TArray is a single
// self-contained field, so member-wise/object-wise storage reads the same
// bytes. Reached when a TArray is itself the element type of a member-wise
// STLSeq.
func (r *tarrayReader) ReadManyMemberwise(c *Cursor, count int) (int, error) {
	return r.ReadMany(c, count)
}

func (r *tarrayReader) RawData() interface{} {
	return rawListOffset{Offsets: r.offsets, Element: castPrimitiveData(r.ctype, r.data)}
}

// castPrimitiveData reinterprets accumulated native-order bytes as a typed
// slice, shared by every reader that stores flat primitive runs (TArray,
// CArray-of-primitives' element reader already does this through
// primitiveReader.RawData; this helper covers readers that keep raw bytes
// directly instead of delegating to a primitiveReader).
func castPrimitiveData(ctype string, data []byte) interface{} {
	switch ctype {
	case "bool":
		return cast.BytesToSlice[bool](data)
	case "i1":
		return cast.BytesToSlice[int8](data)
	case "i2":
		return cast.BytesToSlice[int16](data)
	case "i4":
		return cast.BytesToSlice[int32](data)
	case "i8":
		return cast.BytesToSlice[int64](data)
	case "u1":
		return cast.BytesToSlice[uint8](data)
	case "u2":
		return cast.BytesToSlice[uint16](data)
	case "u4":
		return cast.BytesToSlice[uint32](data)
	case "u8":
		return cast.BytesToSlice[uint64](data)
	case "f":
		return cast.BytesToSlice[float32](data)
	case "d":
		return cast.BytesToSlice[float64](data)
	default:
		panic("uproot: unknown ctype " + ctype)
	}
}

// rawListOffset is the raw decode output shared by every ragged/jagged
// reader: an int64 offsets table (len = entries+1, Python-style cumulative
// element counts) plus whatever the element reader produced.
type rawListOffset struct {
	Offsets []int64
	Element interface{}
}
