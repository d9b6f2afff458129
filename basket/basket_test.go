package basket_test

import (
	"bytes"
	"compress/zlib"
	"errors"
	"testing"

	"github.com/mrzimu/uproot-custom/basket"
	_ "github.com/mrzimu/uproot-custom/basket/zlib"
)

func putUint3(b []byte, v int) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
}

func rzipBlock(tag string, payload []byte) []byte {
	var compressed bytes.Buffer
	w := zlib.NewWriter(&compressed)
	w.Write(payload)
	w.Close()

	block := make([]byte, 9+compressed.Len())
	copy(block[0:2], tag)
	block[2] = 0 // version, unused by the decoder
	putUint3(block[3:6], compressed.Len())
	putUint3(block[6:9], len(payload))
	copy(block[9:], compressed.Bytes())
	return block
}

func TestDecompressZlibBlock(t *testing.T) {
	want := []byte("hello uproot-custom basket payload")
	src := rzipBlock("ZL", want)

	got, err := basket.Decompress(src)
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestDecompressMultipleBlocks(t *testing.T) {
	first := []byte("first block payload")
	second := []byte("second block payload, slightly longer")
	src := append(rzipBlock("ZL", first), rzipBlock("ZL", second)...)

	got, err := basket.Decompress(src)
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	want := append(append([]byte{}, first...), second...)
	if !bytes.Equal(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestDecompressUnsupportedAlgorithm(t *testing.T) {
	block := rzipBlock("XZ", []byte("irrelevant"))
	_, err := basket.Decompress(block)
	if err == nil {
		t.Fatalf("expected an error for an unregistered algorithm tag")
	}
	var unsupported *basket.ErrUnsupportedAlgorithm
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected *ErrUnsupportedAlgorithm, got %T: %v", err, err)
	}
	if unsupported.Tag != "XZ" {
		t.Fatalf("expected tag %q, got %q", "XZ", unsupported.Tag)
	}
}
