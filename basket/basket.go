// Package basket decompresses ROOT TBasket payloads before they reach the
// core decoder. ROOT baskets are written as one or more RZip-framed
// blocks: a 9-byte header (a 2-byte algorithm tag, a 1-byte version, a
// 3-byte little-endian compressed size and a 3-byte little-endian
// uncompressed size) followed by that many compressed bytes, repeated
// until the basket's declared total size is reached. This mirrors the
// teacher's compress.Codec/compressionCodecs table (compress.go), adapted
// from a format.CompressionCodec-keyed table to a two-letter-tag-keyed one
// since that is how ROOT identifies a basket's algorithm.
package basket

import "fmt"

const headerSize = 9

// Codec decompresses one RZip block's payload, appending it to dst. dst
// arrives empty with capacity for the block's declared uncompressed size;
// Decompress checks the decoded length against that size.
type Codec interface {
	String() string
	Decode(dst, src []byte) ([]byte, error)
}

// ErrUnsupportedAlgorithm names a recognized ROOT algorithm tag with no
// registered Codec. LZMA ("XZ") is the one real ROOT algorithm this
// package leaves unregistered: no LZMA library is available to ground it
// on, so a basket compressed with it fails loudly here rather than being
// silently mis-decoded.
type ErrUnsupportedAlgorithm struct {
	Tag string
}

func (e *ErrUnsupportedAlgorithm) Error() string {
	return fmt.Sprintf("basket: unsupported compression algorithm %q", e.Tag)
}

// codecs is the table of registered decompressors, indexed by ROOT's
// two-letter tag, mirroring the teacher's compressionCodecs array indexed
// by format.CompressionCodec.
var codecs = map[string]Codec{}

// Register installs c under tag. Call only from a codec subpackage's
// init().
func Register(tag string, c Codec) {
	codecs[tag] = c
}

func lookup(tag string) (Codec, error) {
	c, ok := codecs[tag]
	if !ok {
		return nil, &ErrUnsupportedAlgorithm{Tag: tag}
	}
	return c, nil
}

// Decompress reassembles a basket payload out of its RZip-framed blocks.
// src is the raw bytes following the TKey, ending at the basket's declared
// compressed length.
func Decompress(src []byte) ([]byte, error) {
	var out []byte
	for len(src) > 0 {
		if len(src) < headerSize {
			return nil, fmt.Errorf("basket: truncated compression header (%d bytes left)", len(src))
		}

		tag := string(src[0:2])
		csize := readUint3(src[3:6])
		usize := readUint3(src[6:9])
		src = src[headerSize:]

		if len(src) < csize {
			return nil, fmt.Errorf("basket: truncated compressed block: need %d bytes, have %d", csize, len(src))
		}
		block := src[:csize]
		src = src[csize:]

		codec, err := lookup(tag)
		if err != nil {
			return nil, err
		}
		decoded, err := codec.Decode(make([]byte, 0, usize), block)
		if err != nil {
			return nil, fmt.Errorf("basket: %s: %w", codec.String(), err)
		}
		if len(decoded) != usize {
			return nil, fmt.Errorf("basket: %s: expected %d decompressed bytes, got %d", codec.String(), usize, len(decoded))
		}
		out = append(out, decoded...)
	}
	return out, nil
}

func readUint3(b []byte) int {
	return int(b[0]) | int(b[1])<<8 | int(b[2])<<16
}
