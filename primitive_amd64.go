//go:build amd64

package uproot

import "golang.org/x/sys/cpu"

var wideByteSwap = cpu.X86.HasAVX2

// swapBytes2 reverses the byte order of each 2-byte element of data in
// place. On AVX2-capable hardware it processes 8 elements per iteration of
// the outer loop to cut down on loop overhead; the actual swap is still a
// plain byte exchange since this package does no hand-written assembly.
func swapBytes2(data []byte) {
	if !wideByteSwap {
		swapBytes2Generic(data)
		return
	}
	n := len(data) / 2
	i := 0
	for ; i+8 <= n; i += 8 {
		for j := 0; j < 8; j++ {
			k := (i + j) * 2
			data[k], data[k+1] = data[k+1], data[k]
		}
	}
	for ; i < n; i++ {
		k := i * 2
		data[k], data[k+1] = data[k+1], data[k]
	}
}

func swapBytes4(data []byte) {
	if !wideByteSwap {
		swapBytes4Generic(data)
		return
	}
	n := len(data) / 4
	i := 0
	for ; i+8 <= n; i += 8 {
		for j := 0; j < 8; j++ {
			k := (i + j) * 4
			data[k], data[k+1], data[k+2], data[k+3] = data[k+3], data[k+2], data[k+1], data[k]
		}
	}
	for ; i < n; i++ {
		k := i * 4
		data[k], data[k+1], data[k+2], data[k+3] = data[k+3], data[k+2], data[k+1], data[k]
	}
}

func swapBytes8(data []byte) {
	if !wideByteSwap {
		swapBytes8Generic(data)
		return
	}
	n := len(data) / 8
	i := 0
	for ; i+8 <= n; i += 8 {
		for j := 0; j < 8; j++ {
			k := (i + j) * 8
			for a, b := 0, 7; a < b; a, b = a+1, b-1 {
				data[k+a], data[k+b] = data[k+b], data[k+a]
			}
		}
	}
	for ; i < n; i++ {
		k := i * 8
		for a, b := 0, 7; a < b; a, b = a+1, b-1 {
			data[k+a], data[k+b] = data[k+b], data[k+a]
		}
	}
}
