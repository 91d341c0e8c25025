package lanes

// Float32x4 models a 128-bit register of four float32 lanes (SSE, SSE2).
type Float32x4 [4]float32

var _ Vector[Float32x4] = Float32x4{}

// Width returns 4.
func (Float32x4) Width() int { return 4 }

// Splat returns a vector with every lane set to x.
func (Float32x4) Splat(x float32) Float32x4 { return Float32x4{x, x, x, x} }

// Load reads s[0:4].
func (Float32x4) Load(s []float32) Float32x4 {
	return Float32x4(s[:4])
}

// LoadPartial reads up to four elements and zero-fills the remaining lanes.
func (Float32x4) LoadPartial(s []float32) (r Float32x4) {
	copy(r[:], s)
	return r
}

// LoadReversed reads s[0:4] with lane i taking s[3-i].
func (Float32x4) LoadReversed(s []float32) (r Float32x4) {
	reverseLanes(r[:], s[:4])
	return r
}

// Store writes the four lanes to s[0:4].
func (v Float32x4) Store(s []float32) { copy(s[:4], v[:]) }

// StorePartial writes the first min(len(s), 4) lanes.
func (v Float32x4) StorePartial(s []float32) { copy(s, v[:]) }

// StoreReversed writes lane i to s[3-i].
func (v Float32x4) StoreReversed(s []float32) { reverseLanes(s[:4], v[:]) }

// Add returns the lane-wise sum v[i] + w[i].
func (v Float32x4) Add(w Float32x4) (r Float32x4) { addLanes(r[:], v[:], w[:]); return r }

// Sub returns the lane-wise difference v[i] - w[i].
func (v Float32x4) Sub(w Float32x4) (r Float32x4) { subLanes(r[:], v[:], w[:]); return r }

// Mul returns the lane-wise product, each rounded to float32.
func (v Float32x4) Mul(w Float32x4) (r Float32x4) { mulLanes(r[:], v[:], w[:]); return r }

// Max returns v[i] if v[i] > w[i], else w[i] (maxps semantics).
func (v Float32x4) Max(w Float32x4) (r Float32x4) { maxLanes(r[:], v[:], w[:]); return r }

// Sqrt returns the correctly rounded square root of every lane.
func (v Float32x4) Sqrt() (r Float32x4) { sqrtLanes(r[:], v[:]); return r }

// Abs clears the sign bit of every lane.
func (v Float32x4) Abs() (r Float32x4) { absLanes(r[:], v[:]); return r }

// ReduceSum adds the high pair onto the low pair, then the two survivors.
func (v Float32x4) ReduceSum() float32 {
	s0 := v[0] + v[2]
	s1 := v[1] + v[3]
	return s0 + s1
}

// ReduceMax compares the high pair against the low pair, then the survivors.
func (v Float32x4) ReduceMax() float32 {
	m0 := maxps(v[0], v[2])
	m1 := maxps(v[1], v[3])
	return maxps(m0, m1)
}
