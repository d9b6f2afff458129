// Package lz4 registers the "L4" ROOT basket compression algorithm,
// adapted from the teacher's compress/lz4 codec: ROOT's LZ4 basket blocks,
// like parquet's LZ4_RAW pages, are raw LZ4 blocks rather than framed
// streams, so pierrec/lz4's UncompressBlock applies directly.
package lz4

import (
	"github.com/pierrec/lz4/v4"

	"github.com/mrzimu/uproot-custom/basket"
)

func init() {
	basket.Register("L4", Codec{})
}

// Codec decompresses ROOT's "L4" (LZ4) basket blocks.
type Codec struct{}

func (Codec) String() string { return "L4" }

func (Codec) Decode(dst, src []byte) ([]byte, error) {
	if cap(dst) == 0 {
		dst = make([]byte, 0)
	}
	dst = dst[:cap(dst)]
	n, err := lz4.UncompressBlock(src, dst)
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}
