package hartley

import "github.com/cwbudde/algo-mp3/internal/lanes"

// maxLanes bounds the lane width of the twiddle staging buffers.
const maxLanes = 16

// TransformLanes is Transform with W consecutive twiddle indices processed
// as the W lanes of V.
//
// For twiddle indices i < kx the butterflies of distinct i touch disjoint
// elements, so they can run side by side: the fi taps of a block are
// contiguous and the gi taps are contiguous in reverse order. Per-lane
// twiddles come from the same scalar recurrence and per-lane arithmetic
// matches butterfly, so the output is bit-identical to Transform. Indices
// left over when fewer than W remain in a stage use the scalar butterfly.
func TransformLanes[V lanes.Vector[V]](fz []float32, n int) {
	var zero V
	w := zero.Width()
	one := zero.Splat(1)

	var cbuf, sbuf [maxLanes]float32

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

		ct, st := costab[tri], costab[tri+1]
		c1, s1 := ct, st

		i := 1
		for ; i+w <= kx; i += w {
			for j := 0; j < w; j++ {
				cbuf[j], sbuf[j] = c1, s1
				c1, s1 = rotate(c1, s1, ct, st)
			}
			vc1 := zero.Load(cbuf[:w])
			vs1 := zero.Load(sbuf[:w])
			vs1x2 := vs1.Add(vs1)
			vc2 := one.Sub(vs1x2.Mul(vs1))
			vs2 := vs1x2.Mul(vc1)

			// gi runs from k1-i down to k1-i-w+1; address the block by its
			// lowest element.
			for fi, gi := i, k1-i-w+1; fi < n; fi, gi = fi+k4, gi+k4 {
				butterflyLanes(fz, fi, gi, k1, k2, k3, vc1, vs1, vc2, vs2)
			}
		}

		for ; i < kx; i++ {
			c2, s2 := doubleAngle(c1, s1)
			for fi, gi := i, k1-i; fi < n; fi, gi = fi+k4, gi+k4 {
				butterfly(fz, fi, gi, k1, k2, k3, c1, s1, c2, s2)
			}
			c1, s1 = rotate(c1, s1, ct, st)
		}

		tri += 2
		if k4 >= n {
			return
		}
	}
}

func butterflyLanes[V lanes.Vector[V]](fz []float32, fi, gi, k1, k2, k3 int, c1, s1, c2, s2 V) {
	var zero V

	f0in := zero.Load(fz[fi:])
	fk1 := zero.Load(fz[fi+k1:])
	fk2 := zero.Load(fz[fi+k2:])
	fk3 := zero.Load(fz[fi+k3:])
	g0in := zero.LoadReversed(fz[gi:])
	gk1 := zero.LoadReversed(fz[gi+k1:])
	gk2 := zero.LoadReversed(fz[gi+k2:])
	gk3 := zero.LoadReversed(fz[gi+k3:])

	b := s2.Mul(fk1).Sub(c2.Mul(gk1))
	a := c2.Mul(fk1).Add(s2.Mul(gk1))
	f1 := f0in.Sub(a)
	f0 := f0in.Add(a)
	g1 := g0in.Sub(b)
	g0 := g0in.Add(b)

	b = s2.Mul(fk3).Sub(c2.Mul(gk3))
	a = c2.Mul(fk3).Add(s2.Mul(gk3))
	f3 := fk2.Sub(a)
	f2 := fk2.Add(a)
	g3 := gk2.Sub(b)
	g2 := gk2.Add(b)

	b = s1.Mul(f2).Sub(c1.Mul(g3))
	a = c1.Mul(f2).Add(s1.Mul(g3))
	f0.Sub(a).Store(fz[fi+k2:])
	f0.Add(a).Store(fz[fi:])
	g1.Sub(b).StoreReversed(fz[gi+k3:])
	g1.Add(b).StoreReversed(fz[gi+k1:])

	b = c1.Mul(g2).Sub(s1.Mul(f3))
	a = s1.Mul(g2).Add(c1.Mul(f3))
	g0.Sub(a).StoreReversed(fz[gi+k2:])
	g0.Add(a).StoreReversed(fz[gi:])
	f1.Sub(b).Store(fz[fi+k3:])
	f1.Add(b).Store(fz[fi+k1:])
}
