// Package zstd registers the "ZS" ROOT basket compression algorithm,
// adapted from the teacher's compress/zstd codec onto klauspost/compress's
// one-shot decoder API rather than its streaming Reader/Writer, since a
// basket block is always fully buffered before decompression.
package zstd

import (
	"github.com/klauspost/compress/zstd"

	"github.com/mrzimu/uproot-custom/basket"
)

func init() {
	basket.Register("ZS", Codec{})
}

// Codec decompresses ROOT's "ZS" (Zstd) basket blocks.
type Codec struct{}

func (Codec) String() string { return "ZS" }

func (Codec) Decode(dst, src []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return dst, err
	}
	defer dec.Close()
	return dec.DecodeAll(src, dst)
}
