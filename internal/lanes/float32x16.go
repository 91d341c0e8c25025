package lanes

// Float32x16 models a 512-bit register of sixteen float32 lanes (AVX-512F).
type Float32x16 [16]float32

var _ Vector[Float32x16] = Float32x16{}

// Width returns 16.
func (Float32x16) Width() int { return 16 }

// Splat returns a vector with every lane set to x.
func (Float32x16) Splat(x float32) (r Float32x16) {
	for i := range r {
		r[i] = x
	}
	return r
}

// Load reads s[0:16].
func (Float32x16) Load(s []float32) Float32x16 {
	return Float32x16(s[:16])
}

// LoadPartial reads up to sixteen elements and zero-fills the remaining lanes
// (a zero-masked load).
func (Float32x16) LoadPartial(s []float32) (r Float32x16) {
	copy(r[:], s)
	return r
}

// LoadReversed reads s[0:16] with lane i taking s[15-i].
func (Float32x16) LoadReversed(s []float32) (r Float32x16) {
	reverseLanes(r[:], s[:16])
	return r
}

// Store writes the sixteen lanes to s[0:16].
func (v Float32x16) Store(s []float32) { copy(s[:16], v[:]) }

// StorePartial writes the first min(len(s), 16) lanes (a masked store).
func (v Float32x16) StorePartial(s []float32) { copy(s, v[:]) }

// StoreReversed writes lane i to s[15-i].
func (v Float32x16) StoreReversed(s []float32) { reverseLanes(s[:16], v[:]) }

// Add returns the lane-wise sum v[i] + w[i].
func (v Float32x16) Add(w Float32x16) (r Float32x16) { addLanes(r[:], v[:], w[:]); return r }

// Sub returns the lane-wise difference v[i] - w[i].
func (v Float32x16) Sub(w Float32x16) (r Float32x16) { subLanes(r[:], v[:], w[:]); return r }

// Mul returns the lane-wise product, each rounded to float32.
func (v Float32x16) Mul(w Float32x16) (r Float32x16) { mulLanes(r[:], v[:], w[:]); return r }

// Max returns v[i] if v[i] > w[i], else w[i] (maxps semantics).
func (v Float32x16) Max(w Float32x16) (r Float32x16) { maxLanes(r[:], v[:], w[:]); return r }

// Sqrt returns the correctly rounded square root of every lane.
func (v Float32x16) Sqrt() (r Float32x16) { sqrtLanes(r[:], v[:]); return r }

// Abs clears the sign bit of every lane.
func (v Float32x16) Abs() (r Float32x16) { absLanes(r[:], v[:]); return r }

// Lo returns lanes 0-7.
func (v Float32x16) Lo() Float32x8 { return Float32x8(v[:8]) }

// Hi returns lanes 8-15.
func (v Float32x16) Hi() Float32x8 { return Float32x8(v[8:]) }

// ReduceSum folds 16 → 8 → 4 → 2 → 1.
func (v Float32x16) ReduceSum() float32 { return v.Lo().Add(v.Hi()).ReduceSum() }

// ReduceMax folds 16 → 8 → 4 → 2 → 1.
func (v Float32x16) ReduceMax() float32 { return v.Lo().Max(v.Hi()).ReduceMax() }
