package hartley

import "math/bits"

// Prepare copies src into dst in bit-reversed order and applies the first
// radix-4 pass, leaving dst ready for Transform(dst, len(dst)/2).
//
// len(src) must equal len(dst) and satisfy ValidLength(len/2). dst and src
// must not overlap.
func Prepare(dst, src []float32) {
	size := len(src)
	_ = dst[size-1]

	shift := bits.UintSize - bits.TrailingZeros(uint(size))
	for i := range size {
		dst[i] = src[bits.Reverse(uint(i))>>shift]
	}

	for i := 0; i < size; i += 4 {
		z := dst[i : i+4 : i+4]
		f1 := z[0] - z[1]
		f0 := z[0] + z[1]
		f3 := z[2] - z[3]
		f2 := z[2] + z[3]
		z[2] = f0 - f2
		z[0] = f0 + f2
		z[3] = f1 - f3
		z[1] = f1 + f3
	}
}
