// Package hartley implements the radix-4 Fast Hartley Transform used by the
// encoder's spectral analysis stage.
//
// The transform operates in place on 2n float32 samples, where 2n is a power
// of four between MinSamples and MaxSamples. Callers reorder the input with
// Prepare before running Transform (or a lane variant) over the buffer.
//
// Every product is explicitly rounded to float32, so the compiler cannot fuse
// a multiply with the following add. This keeps Transform and TransformLanes
// bit-identical for every lane width.
package hartley

import "math/bits"

const (
	// MinSamples is the smallest supported buffer length (2n).
	MinSamples = 16
	// MaxSamples is the largest supported buffer length (2n).
	MaxSamples = 1024
)

const sqrt2 = float32(1.41421356237309504880)

// costab holds (cos θ, sin θ) for θ = π/8, π/32, π/128, π/512: the twiddle
// step of each stage.
var costab = [8]float32{
	9.238795325112867e-01, 3.826834323650898e-01,
	9.951847266721969e-01, 9.801714032956060e-02,
	9.996988186962042e-01, 2.454122852291229e-02,
	9.999811752826011e-01, 6.135884649154475e-03,
}

// ValidLength reports whether n is a supported transform half-length, i.e.
// 2n is a power of four in [MinSamples, MaxSamples].
func ValidLength(n int) bool {
	total := 2 * n
	if total < MinSamples || total > MaxSamples {
		return false
	}
	return total&(total-1) == 0 && bits.TrailingZeros(uint(total))%2 == 0
}

// rotate advances (c, s) by the stage step (ct, st) with the angle-addition
// recurrence.
func rotate(c, s, ct, st float32) (float32, float32) {
	return float32(c*ct) - float32(s*st), float32(c*st) + float32(s*ct)
}

// edges runs the two butterflies of every group whose twiddle is trivial:
// index 0 (a plain sum/difference) and index kx (scaled by √2).
func edges(fz []float32, n, kx, k1, k2, k3, k4 int) {
	for fi, gi := 0, kx; fi < n; fi, gi = fi+k4, gi+k4 {
		f1 := fz[fi] - fz[fi+k1]
		f0 := fz[fi] + fz[fi+k1]
		f3 := fz[fi+k2] - fz[fi+k3]
		f2 := fz[fi+k2] + fz[fi+k3]
		fz[fi+k2] = f0 - f2
		fz[fi] = f0 + f2
		fz[fi+k3] = f1 - f3
		fz[fi+k1] = f1 + f3

		f1 = fz[gi] - fz[gi+k1]
		f0 = fz[gi] + fz[gi+k1]
		f3 = float32(sqrt2 * fz[gi+k3])
		f2 = float32(sqrt2 * fz[gi+k2])
		fz[gi+k2] = f0 - f2
		fz[gi] = f0 + f2
		fz[gi+k3] = f1 - f3
		fz[gi+k1] = f1 + f3
	}
}

// butterfly is the general four-tap butterfly for the pair (fi, gi) with
// twiddle (c1, s1) and its double angle (c2, s2).
func butterfly(fz []float32, fi, gi, k1, k2, k3 int, c1, s1, c2, s2 float32) {
	b := float32(s2*fz[fi+k1]) - float32(c2*fz[gi+k1])
	a := float32(c2*fz[fi+k1]) + float32(s2*fz[gi+k1])
	f1 := fz[fi] - a
	f0 := fz[fi] + a
	g1 := fz[gi] - b
	g0 := fz[gi] + b

	b = float32(s2*fz[fi+k3]) - float32(c2*fz[gi+k3])
	a = float32(c2*fz[fi+k3]) + float32(s2*fz[gi+k3])
	f3 := fz[fi+k2] - a
	f2 := fz[fi+k2] + a
	g3 := fz[gi+k2] - b
	g2 := fz[gi+k2] + b

	b = float32(s1*f2) - float32(c1*g3)
	a = float32(c1*f2) + float32(s1*g3)
	fz[fi+k2] = f0 - a
	fz[fi] = f0 + a
	fz[gi+k3] = g1 - b
	fz[gi+k1] = g1 + b

	b = float32(c1*g2) - float32(s1*f3)
	a = float32(s1*g2) + float32(c1*f3)
	fz[gi+k2] = g0 - a
	fz[gi] = g0 + a
	fz[fi+k3] = f1 - b
	fz[fi+k1] = f1 + b
}

// doubleAngle derives the (c2, s2) pair a butterfly needs from its twiddle.
func doubleAngle(c1, s1 float32) (c2, s2 float32) {
	s1x2 := s1 + s1
	return 1 - float32(s1x2*s1), float32(s1x2 * c1)
}

// Transform runs the scalar FHT butterfly stages over fz[0:2n].
//
// n is not validated; see ValidLength.
func Transform(fz []float32, n int) {
	n <<= 1
	_ = fz[n-1]

	tri := 0
	k4 := 4
	for {
		kx := k4 >> 1
		k1 := k4
		k2 := k4 << 1
		k3 := k2 + k1
		k4 = k2 << 1

		edges(fz, n, kx, k1, k2, k3, k4)

		c1, s1 := costab[tri], costab[tri+1]
		for i := 1; i < kx; i++ {
			c2, s2 := doubleAngle(c1, s1)
			for fi, gi := i, k1-i; fi < n; fi, gi = fi+k4, gi+k4 {
				butterfly(fz, fi, gi, k1, k2, k3, c1, s1, c2, s2)
			}
			c1, s1 = rotate(c1, s1, costab[tri], costab[tri+1])
		}

		tri += 2
		if k4 >= n {
			return
		}
	}
}
