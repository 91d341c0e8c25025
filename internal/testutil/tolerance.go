// Package testutil holds helpers shared by the kernel and analysis tests.
package testutil

import (
	"fmt"
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got []float32, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(float64(got[i]) - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireRelNearlyEqual fails t if got and want differ by more than rel
// relative to the larger magnitude. Pairs below floor in magnitude are
// compared absolutely against rel*floor.
func RequireRelNearlyEqual(t *testing.T, name string, got, want float32, rel, floor float64) {
	t.Helper()
	if d := RelDiff(got, want, floor); d > rel {
		t.Fatalf("%s: got %v, want %v (relative diff %v > %v)", name, got, want, d, rel)
	}
}

// RequireSliceRelNearlyEqual applies RequireRelNearlyEqual element-wise.
func RequireSliceRelNearlyEqual(t *testing.T, got, want []float32, rel, floor float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if d := RelDiff(got[i], want[i], floor); d > rel {
			t.Fatalf("index %d: got %v, want %v (relative diff %v > %v)", i, got[i], want[i], d, rel)
		}
	}
}

// RequireBitIdentical fails t at the first element whose bit pattern differs.
func RequireBitIdentical(t *testing.T, got, want []float32) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if math.Float32bits(got[i]) != math.Float32bits(want[i]) {
			t.Fatalf("index %d: got %v (%#08x), want %v (%#08x)",
				i, got[i], math.Float32bits(got[i]), want[i], math.Float32bits(want[i]))
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float32) {
	t.Helper()
	for i, v := range data {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RelDiff returns |a-b| / max(|a|, |b|, floor).
func RelDiff(a, b float32, floor float64) float64 {
	x, y := float64(a), float64(b)
	scale := math.Max(math.Max(math.Abs(x), math.Abs(y)), floor)
	if scale == 0 {
		return 0
	}
	return math.Abs(x-y) / scale
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a []float32, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(float64(a[i]) - b[i])
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}

// MaxAbs returns the largest magnitude in data.
func MaxAbs(data []float64) float64 {
	peak := 0.0
	for _, v := range data {
		peak = math.Max(peak, math.Abs(v))
	}
	return peak
}
