// Package brotli registers a "BR" basket compression algorithm, adapted
// from the teacher's compress/brotli codec. No ROOT writer actually emits
// "BR" (ROOT's real algorithm tags are "ZL", "XZ", "L4" and "ZS"); this
// entry exists for table completeness, exactly mirroring the teacher's own
// Brotli entry in compress.go's compressionCodecs table, which likewise
// sits alongside parquet's Snappy/Gzip/Zstd/Lz4Raw entries despite brotli
// being a rare choice for parquet pages too.
package brotli

import (
	"bytes"
	"io"

	"github.com/andybalholm/brotli"

	"github.com/mrzimu/uproot-custom/basket"
)

func init() {
	basket.Register("BR", Codec{})
}

// Codec decompresses "BR" basket blocks.
type Codec struct{}

func (Codec) String() string { return "BR" }

func (Codec) Decode(dst, src []byte) ([]byte, error) {
	r := brotli.NewReader(bytes.NewReader(src))
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return append(dst, out...), nil
}
