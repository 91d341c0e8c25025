package lanes

import (
	"math"
	"testing"
)

func TestWidths(t *testing.T) {
	if w := (Float32x4{}).Width(); w != 4 {
		t.Fatalf("Float32x4 width = %d", w)
	}
	if w := (Float32x8{}).Width(); w != 8 {
		t.Fatalf("Float32x8 width = %d", w)
	}
	if w := (Float32x16{}).Width(); w != 16 {
		t.Fatalf("Float32x16 width = %d", w)
	}
}

func TestReduceSumTournament(t *testing.T) {
	// The tournament pairs lane i with lane i+W/2 first, so large values
	// that cancel in that pairing leave the small lanes intact. A
	// left-to-right scan would lose the small lanes to rounding.
	var v Float32x8
	v[0], v[4] = 1e8, -1e8
	v[1], v[2], v[3] = 1, 1, 1
	if got := v.ReduceSum(); got != 3 {
		t.Fatalf("ReduceSum = %v, want 3", got)
	}

	var w Float32x16
	for i := range w {
		w[i] = float32(i + 1)
	}
	if got := w.ReduceSum(); got != 136 {
		t.Fatalf("ReduceSum = %v, want 136", got)
	}
}

func TestReduceMax(t *testing.T) {
	tests := []struct {
		name string
		v    []float32
		want float32
	}{
		{"first lane", []float32{9, 1, 2, 3}, 9},
		{"last lane", []float32{1, 2, 3, 9}, 9},
		{"negatives", []float32{-4, -2, -3, -7}, -2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := (Float32x4{}).Load(tt.v).ReduceMax(); got != tt.want {
				t.Fatalf("ReduceMax = %v, want %v", got, tt.want)
			}
		})
	}

	var wide Float32x16
	wide[13] = 5
	if got := wide.ReduceMax(); got != 5 {
		t.Fatalf("Float32x16 ReduceMax = %v, want 5", got)
	}
}

func TestMaxFollowsMaxps(t *testing.T) {
	nan := float32(math.NaN())
	a := Float32x4{nan, 1, 2, float32(math.Copysign(0, -1))}
	b := Float32x4{3, nan, 1, 0}
	got := a.Max(b)

	// NaN in either operand selects the second operand.
	if got[0] != 3 {
		t.Fatalf("lane 0 = %v, want 3", got[0])
	}
	if !math.IsNaN(float64(got[1])) {
		t.Fatalf("lane 1 = %v, want NaN", got[1])
	}
	if got[2] != 2 {
		t.Fatalf("lane 2 = %v, want 2", got[2])
	}
	// -0 > +0 is false, so the second operand (+0) wins.
	if math.Signbit(float64(got[3])) {
		t.Fatalf("lane 3 = -0, want +0")
	}
}

func TestAbsClearsSignBit(t *testing.T) {
	v := Float32x4{-1.5, 2, float32(math.Copysign(0, -1)), float32(math.Inf(-1))}.Abs()
	want := Float32x4{1.5, 2, 0, float32(math.Inf(1))}
	for i := range v {
		if v[i] != want[i] || math.Signbit(float64(v[i])) {
			t.Fatalf("lane %d = %v, want %v", i, v[i], want[i])
		}
	}
}

func TestPartialLoadStore(t *testing.T) {
	src := []float32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	v := (Float32x8{}).LoadPartial(src[:3])
	want := Float32x8{1, 2, 3}
	if v != want {
		t.Fatalf("LoadPartial = %v, want %v", v, want)
	}

	dst := []float32{-1, -1, -1, -1, -1, -1}
	(Float32x8{}).Splat(7).StorePartial(dst[:3])
	for i, x := range dst {
		want := float32(-1)
		if i < 3 {
			want = 7
		}
		if x != want {
			t.Fatalf("dst[%d] = %v, want %v", i, x, want)
		}
	}
}

func TestReversed(t *testing.T) {
	src := []float32{1, 2, 3, 4}
	v := (Float32x4{}).LoadReversed(src)
	if v != (Float32x4{4, 3, 2, 1}) {
		t.Fatalf("LoadReversed = %v", v)
	}
	dst := make([]float32, 4)
	v.StoreReversed(dst)
	for i := range src {
		if dst[i] != src[i] {
			t.Fatalf("StoreReversed round trip: dst[%d] = %v, want %v", i, dst[i], src[i])
		}
	}
}

func TestArithmetic(t *testing.T) {
	a := Float32x4{1, 4, 9, 16}
	b := Float32x4{2, 2, 2, 2}
	if got := a.Add(b); got != (Float32x4{3, 6, 11, 18}) {
		t.Fatalf("Add = %v", got)
	}
	if got := a.Sub(b); got != (Float32x4{-1, 2, 7, 14}) {
		t.Fatalf("Sub = %v", got)
	}
	if got := a.Mul(b); got != (Float32x4{2, 8, 18, 32}) {
		t.Fatalf("Mul = %v", got)
	}
	if got := a.Sqrt(); got != (Float32x4{1, 2, 3, 4}) {
		t.Fatalf("Sqrt = %v", got)
	}
}

func TestHalves(t *testing.T) {
	var v Float32x16
	for i := range v {
		v[i] = float32(i)
	}
	if v.Lo()[7] != 7 || v.Hi()[0] != 8 {
		t.Fatalf("Lo/Hi split wrong: %v / %v", v.Lo(), v.Hi())
	}
	if v.Hi().Hi()[3] != 15 {
		t.Fatalf("Hi().Hi()[3] = %v, want 15", v.Hi().Hi()[3])
	}
}

func sumWith[V Vector[V]](s []float32) float32 {
	var zero V
	acc := zero.Splat(0)
	w := zero.Width()
	i := 0
	for ; i+w <= len(s); i += w {
		acc = acc.Add(zero.Load(s[i:]))
	}
	acc = acc.Add(zero.LoadPartial(s[i:]))
	return acc.ReduceSum()
}

func TestGenericUse(t *testing.T) {
	s := make([]float32, 37)
	for i := range s {
		s[i] = 1
	}
	for name, got := range map[string]float32{
		"x4":  sumWith[Float32x4](s),
		"x8":  sumWith[Float32x8](s),
		"x16": sumWith[Float32x16](s),
	} {
		if got != 37 {
			t.Errorf("%s: sum = %v, want 37", name, got)
		}
	}
}
