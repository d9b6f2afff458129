package uproot

import "github.com/mrzimu/uproot-custom/internal/buffers"

func swapBytes2Generic(data []byte) {
	for i := 0; i+2 <= len(data); i += 2 {
		data[i], data[i+1] = data[i+1], data[i]
	}
}

func swapBytes4Generic(data []byte) {
	for i := 0; i+4 <= len(data); i += 4 {
		data[i], data[i+1], data[i+2], data[i+3] = data[i+3], data[i+2], data[i+1], data[i]
	}
}

func swapBytes8Generic(data []byte) {
	for i := 0; i+8 <= len(data); i += 8 {
		for a, b := 0, 7; a < b; a, b = a+1, b-1 {
			data[i+a], data[i+b] = data[i+b], data[i+a]
		}
	}
}

// ctypeSize returns the on-wire byte width of a primitive ctype tag.
func ctypeSize(ctype string) int {
	switch ctype {
	case "bool", "i1", "u1":
		return 1
	case "i2", "u2":
		return 2
	case "i4", "u4", "f":
		return 4
	case "i8", "u8", "d":
		return 8
	default:
		panic("uproot: unknown ctype " + ctype)
	}
}

// readBulk reads n elements of the given ctype from the cursor as one
// contiguous big-endian block and byte-swaps it in place to native order,
// returning the raw little/native-endian bytes ready for cast.BytesToSlice.
// The staging buffer used for the swap is reused across calls (its
// contents are copied into a freshly allocated slice before returning, so
// the next call can overwrite it), which matters for CArray/STLSeq element
// runs that call this once per entry.
func (c *Cursor) readBulk(ctype string, n int) ([]byte, error) {
	size := ctypeSize(ctype)
	nbytes := n * size
	if err := c.Need(nbytes); err != nil {
		return nil, err
	}
	c.scratch = buffers.Ensure(c.scratch, nbytes)
	copy(c.scratch, c.data[c.pos:c.pos+nbytes])
	c.pos += nbytes

	switch size {
	case 2:
		swapBytes2(c.scratch)
	case 4:
		swapBytes4(c.scratch)
	case 8:
		swapBytes8(c.scratch)
	}

	out := make([]byte, nbytes)
	copy(out, c.scratch)
	return out, nil
}
