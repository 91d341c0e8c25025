package lanes

// Float32x8 models a 256-bit register of eight float32 lanes (AVX, AVX2).
type Float32x8 [8]float32

var _ Vector[Float32x8] = Float32x8{}

// Width returns 8.
func (Float32x8) Width() int { return 8 }

// Splat returns a vector with every lane set to x.
func (Float32x8) Splat(x float32) Float32x8 { return Float32x8{x, x, x, x, x, x, x, x} }

// Load reads s[0:8].
func (Float32x8) Load(s []float32) Float32x8 {
	return Float32x8(s[:8])
}

// LoadPartial reads up to eight elements and zero-fills the remaining lanes.
func (Float32x8) LoadPartial(s []float32) (r Float32x8) {
	copy(r[:], s)
	return r
}

// LoadReversed reads s[0:8] with lane i taking s[7-i].
func (Float32x8) LoadReversed(s []float32) (r Float32x8) {
	reverseLanes(r[:], s[:8])
	return r
}

// Store writes the eight lanes to s[0:8].
func (v Float32x8) Store(s []float32) { copy(s[:8], v[:]) }

// StorePartial writes the first min(len(s), 8) lanes.
func (v Float32x8) StorePartial(s []float32) { copy(s, v[:]) }

// StoreReversed writes lane i to s[7-i].
func (v Float32x8) StoreReversed(s []float32) { reverseLanes(s[:8], v[:]) }

// Add returns the lane-wise sum v[i] + w[i].
func (v Float32x8) Add(w Float32x8) (r Float32x8) { addLanes(r[:], v[:], w[:]); return r }

// Sub returns the lane-wise difference v[i] - w[i].
func (v Float32x8) Sub(w Float32x8) (r Float32x8) { subLanes(r[:], v[:], w[:]); return r }

// Mul returns the lane-wise product, each rounded to float32.
func (v Float32x8) Mul(w Float32x8) (r Float32x8) { mulLanes(r[:], v[:], w[:]); return r }

// Max returns v[i] if v[i] > w[i], else w[i] (maxps semantics).
func (v Float32x8) Max(w Float32x8) (r Float32x8) { maxLanes(r[:], v[:], w[:]); return r }

// Sqrt returns the correctly rounded square root of every lane.
func (v Float32x8) Sqrt() (r Float32x8) { sqrtLanes(r[:], v[:]); return r }

// Abs clears the sign bit of every lane.
func (v Float32x8) Abs() (r Float32x8) { absLanes(r[:], v[:]); return r }

// Lo returns lanes 0-3 (vextractf128 $0).
func (v Float32x8) Lo() Float32x4 { return Float32x4(v[:4]) }

// Hi returns lanes 4-7 (vextractf128 $1).
func (v Float32x8) Hi() Float32x4 { return Float32x4(v[4:]) }

// ReduceSum folds the high half onto the low half and reduces the result.
func (v Float32x8) ReduceSum() float32 { return v.Lo().Add(v.Hi()).ReduceSum() }

// ReduceMax folds the high half onto the low half and reduces the result.
func (v Float32x8) ReduceMax() float32 { return v.Lo().Max(v.Hi()).ReduceMax() }
