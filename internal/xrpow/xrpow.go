// Package xrpow implements the power-law pre-scaling kernel of the quantizer:
// out[i] = |x[i]|^(3/4) for i in [0, maxIndex], together with the sum of
// |x[i]| and the largest power value.
//
// The power is always evaluated as sqrt(t*sqrt(t)). Scalar is the reference;
// the lane variants reassociate the sum and agree with it within a relative
// tolerance, not bit for bit.
package xrpow

import (
	"math"

	"github.com/cwbudde/algo-mp3/internal/lanes"
)

// Scalar is the baseline kernel. The power is computed in float64 and
// rounded once; the sum accumulates in float32 in index order.
func Scalar(spectral, out []float32, maxIndex int) (sum, peak float32) {
	_ = spectral[maxIndex]
	_ = out[maxIndex]

	for i := 0; i <= maxIndex; i++ {
		t := math.Abs(float64(spectral[i]))
		sum += float32(t)
		p := float32(math.Sqrt(t * math.Sqrt(t)))
		out[i] = p
		if p > peak {
			peak = p
		}
	}
	return sum, peak
}

// Lanes processes floor((maxIndex+1)/W)*W elements in W-wide chunks and the
// remaining 0..W-1 elements in one zero-padded pass, then reduces the lane
// partials with a tournament.
func Lanes[V lanes.Vector[V]](spectral, out []float32, maxIndex int) (sum, peak float32) {
	var zero V
	w := zero.Width()
	count := maxIndex + 1
	upper := count / w * w

	vsum := zero.Splat(0)
	vmax := zero.Splat(0)
	for i := 0; i < upper; i += w {
		x := zero.Load(spectral[i:]).Abs()
		vsum = vsum.Add(x)
		p := power(x)
		p.Store(out[i:])
		vmax = vmax.Max(p)
	}

	vsum, vmax = tail(spectral, out, upper, count, vsum, vmax)
	return vsum.ReduceSum(), vmax.ReduceMax()
}

// LanesUnrolled is Lanes with the main loop unrolled by two and a separate
// pair of accumulators per half, folded together before the reduction.
func LanesUnrolled[V lanes.Vector[V]](spectral, out []float32, maxIndex int) (sum, peak float32) {
	var zero V
	w := zero.Width()
	count := maxIndex + 1
	upper := count / w * w
	upper2 := count / (2 * w) * (2 * w)

	sumA, sumB := zero.Splat(0), zero.Splat(0)
	maxA, maxB := zero.Splat(0), zero.Splat(0)

	i := 0
	for ; i < upper2; i += 2 * w {
		xa := zero.Load(spectral[i:]).Abs()
		xb := zero.Load(spectral[i+w:]).Abs()
		sumA = sumA.Add(xa)
		sumB = sumB.Add(xb)
		pa := power(xa)
		pb := power(xb)
		pa.Store(out[i:])
		pb.Store(out[i+w:])
		maxA = maxA.Max(pa)
		maxB = maxB.Max(pb)
	}
	for ; i < upper; i += w {
		x := zero.Load(spectral[i:]).Abs()
		sumA = sumA.Add(x)
		p := power(x)
		p.Store(out[i:])
		maxA = maxA.Max(p)
	}

	vsum, vmax := tail(spectral, out, upper, count, sumA.Add(sumB), maxA.Max(maxB))
	return vsum.ReduceSum(), vmax.ReduceMax()
}

func power[V lanes.Vector[V]](x V) V {
	return x.Mul(x.Sqrt()).Sqrt()
}

// tail handles spectral[start:end] (fewer than W elements) with a
// zero-padded load. Padding lanes contribute 0 to the sum and to the maximum,
// and only end-start lanes are stored.
func tail[V lanes.Vector[V]](spectral, out []float32, start, end int, vsum, vmax V) (V, V) {
	if start >= end {
		return vsum, vmax
	}
	var zero V
	x := zero.LoadPartial(spectral[start:end]).Abs()
	p := power(x)
	p.StorePartial(out[start:end])
	return vsum.Add(x), vmax.Max(p)
}
