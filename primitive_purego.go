//go:build !amd64

package uproot

func swapBytes2(data []byte) { swapBytes2Generic(data) }
func swapBytes4(data []byte) { swapBytes4Generic(data) }
func swapBytes8(data []byte) { swapBytes8Generic(data) }
