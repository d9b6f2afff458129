// Package zlib registers ROOT's "ZL" basket compression algorithm on
// klauspost/compress's zlib implementation, the same module already
// providing the "ZS" (zstd) codec, so the deflate-family and zstd paths
// share one dependency instead of pulling in stdlib compress/zlib.
package zlib

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/zlib"

	"github.com/mrzimu/uproot-custom/basket"
)

func init() {
	basket.Register("ZL", Codec{})
}

// Codec decompresses ROOT's "ZL" (zlib) basket blocks.
type Codec struct{}

func (Codec) String() string { return "ZL" }

func (Codec) Decode(dst, src []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(src))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return append(dst, out...), nil
}
