// Package lanes provides fixed-width float32 vector values that model the
// 128-, 256- and 512-bit SIMD registers used by the x86 kernel tiers.
//
// Each type behaves like the corresponding register: arithmetic is
// lane-wise, products are rounded per lane and never fused with a following
// add, Max follows maxps semantics, and reductions combine the upper and
// lower halves until one lane remains (the extract/shuffle tournament an
// intrinsics kernel performs).
//
// The kernel cores in internal/xrpow and internal/hartley are written once
// against the Vector interface and instantiated per width by the tier
// packages.
package lanes

import "math"

// absMask clears the IEEE-754 sign bit.
const absMask = 0x7FFFFFFF

// Vector is the operation set shared by Float32x4, Float32x8 and Float32x16.
//
// Load-style methods ignore their receiver and construct a new value; call
// them on the zero value (var zero V; v := zero.Load(s)).
type Vector[V any] interface {
	// Width returns the number of float32 lanes.
	Width() int

	// Splat returns a vector with every lane set to x.
	Splat(x float32) V
	// Load reads exactly Width() elements from s.
	Load(s []float32) V
	// LoadPartial reads min(len(s), Width()) elements and zeroes the rest.
	LoadPartial(s []float32) V
	// LoadReversed reads Width() elements from s into lanes in reverse order.
	LoadReversed(s []float32) V

	// Store writes all lanes to s[0:Width()].
	Store(s []float32)
	// StorePartial writes the first min(len(s), Width()) lanes.
	StorePartial(s []float32)
	// StoreReversed writes lane i to s[Width()-1-i].
	StoreReversed(s []float32)

	Add(w V) V
	Sub(w V) V
	// Mul multiplies lane-wise and rounds every product to float32.
	Mul(w V) V
	// Sqrt returns the correctly rounded square root of every lane.
	Sqrt() V
	// Max returns v[i] if v[i] > w[i], else w[i].
	Max(w V) V
	// Abs clears the sign bit of every lane.
	Abs() V

	// ReduceSum adds all lanes with a halve-and-add tournament.
	ReduceSum() float32
	// ReduceMax folds all lanes with a halve-and-compare tournament.
	ReduceMax() float32
}

func addLanes(r, a, b []float32) {
	for i := range r {
		r[i] = a[i] + b[i]
	}
}

func subLanes(r, a, b []float32) {
	for i := range r {
		r[i] = a[i] - b[i]
	}
}

func mulLanes(r, a, b []float32) {
	for i := range r {
		r[i] = float32(a[i] * b[i])
	}
}

func sqrtLanes(r, a []float32) {
	for i := range r {
		// float64 sqrt rounded once to float32 is the correctly rounded
		// float32 square root, matching sqrtps.
		r[i] = float32(math.Sqrt(float64(a[i])))
	}
}

func maxLanes(r, a, b []float32) {
	for i := range r {
		r[i] = maxps(a[i], b[i])
	}
}

func absLanes(r, a []float32) {
	for i := range r {
		r[i] = math.Float32frombits(math.Float32bits(a[i]) & absMask)
	}
}

func reverseLanes(r, a []float32) {
	n := len(r)
	for i := range r {
		r[i] = a[n-1-i]
	}
}

// maxps returns a if a > b, else b. A NaN in either operand yields b.
func maxps(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
