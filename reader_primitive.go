package uproot

import "github.com/mrzimu/uproot-custom/internal/cast"

// primitiveReader accumulates a flat run of same-typed scalars across every
// entry of a basket. STLSeq and CArray element decoding call its ReadMany
// in bulk (and TArray calls readBulk directly) rather than invoking Read
// once per scalar, exercising the byte-swap split in primitive_amd64.go/
// primitive_purego.go for any run longer than one element.
type primitiveReader struct {
	name  string
	ctype string
	data  []byte
}

func newPrimitiveReader(name, ctype string) *primitiveReader {
	return &primitiveReader{name: name, ctype: ctype}
}

func (r *primitiveReader) Read(c *Cursor) error {
	raw, err := c.readBulk(r.ctype, 1)
	if err != nil {
		return withContext(err, r.name, c.pos, nilSession)
	}
	r.data = append(r.data, raw...)
	return nil
}

func (r *primitiveReader) ReadMany(c *Cursor, count int) (int, error) {
	if count == 0 {
		return 0, nil
	}
	raw, err := c.readBulk(r.ctype, count)
	if err != nil {
		return 0, withContext(err, r.name, c.pos, nilSession)
	}
	r.data = append(r.data, raw...)
	return count, nil
}

func (r *primitiveReader) ReadUntil(c *Cursor, endPos int) (int, error) {
	size := ctypeSize(r.ctype)
	count := 0
	for c.pos < endPos {
		if err := r.Read(c); err != nil {
			return count, err
		}
		count++
	}
	if c.pos != endPos {
		return count, newFramingError("%s: read_until overran end_pos by %d bytes (element size %d)", r.name, c.pos-endPos, size)
	}
	return count, nil
}

// ReadManyMemberwise is identical to ReadMany: a scalar element has only one
// field, so member-wise and object-wise storage read the same bytes. Reached
// when a primitive is itself the element type of a member-wise STLSeq.
func (r *primitiveReader) ReadManyMemberwise(c *Cursor, count int) (int, error) {
	return r.ReadMany(c, count)
}

func (r *primitiveReader) RawData() interface{} {
	switch r.ctype {
	case "bool":
		return cast.BytesToSlice[bool](r.data)
	case "i1":
		return cast.BytesToSlice[int8](r.data)
	case "i2":
		return cast.BytesToSlice[int16](r.data)
	case "i4":
		return cast.BytesToSlice[int32](r.data)
	case "i8":
		return cast.BytesToSlice[int64](r.data)
	case "u1":
		return cast.BytesToSlice[uint8](r.data)
	case "u2":
		return cast.BytesToSlice[uint16](r.data)
	case "u4":
		return cast.BytesToSlice[uint32](r.data)
	case "u8":
		return cast.BytesToSlice[uint64](r.data)
	case "f":
		return cast.BytesToSlice[float32](r.data)
	case "d":
		return cast.BytesToSlice[float64](r.data)
	default:
		panic("uproot: unknown ctype " + r.ctype)
	}
}
