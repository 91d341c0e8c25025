// Package archtest checks a registered kernel tier against the scalar
// reference. Each tier package calls it from its own register_test.go.
package archtest

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-mp3/cpu"
	"github.com/cwbudde/algo-mp3/internal/hartley"
	"github.com/cwbudde/algo-mp3/internal/registry"
	"github.com/cwbudde/algo-mp3/internal/testutil"
	"github.com/cwbudde/algo-mp3/internal/xrpow"
)

// Expectation describes the entry a tier package is expected to register.
type Expectation struct {
	Name      string
	SIMDLevel cpu.SIMDLevel
	Priority  int
	HasFHT    bool
}

// Entry returns the entry registered under name in registry.Global.
func Entry(t *testing.T, name string) registry.OpEntry {
	t.Helper()
	for _, e := range registry.Global.ListEntries() {
		if e.Name == name {
			return e
		}
	}
	t.Fatalf("no %q entry registered", name)
	return registry.OpEntry{}
}

// Run verifies the registration and compares the tier's kernels with the
// scalar ones: xrpow within relative 1e-5, FHT bit for bit.
func Run(t *testing.T, want Expectation) {
	t.Helper()
	e := Entry(t, want.Name)

	if e.SIMDLevel != want.SIMDLevel || e.Priority != want.Priority {
		t.Fatalf("%s: level=%v priority=%d, want level=%v priority=%d",
			want.Name, e.SIMDLevel, e.Priority, want.SIMDLevel, want.Priority)
	}
	if e.XRPow == nil {
		t.Fatalf("%s: XRPow not registered", want.Name)
	}
	if (e.FHT != nil) != want.HasFHT {
		t.Fatalf("%s: FHT registered = %v, want %v", want.Name, e.FHT != nil, want.HasFHT)
	}

	t.Run("xrpow", func(t *testing.T) { checkXRPow(t, e.XRPow) })
	if e.FHT != nil {
		t.Run("fht", func(t *testing.T) { checkFHT(t, e.FHT) })
	}
}

func checkXRPow(t *testing.T, fn registry.XRPowFn) {
	for _, maxIndex := range []int{0, 1, 3, 4, 7, 8, 15, 16, 17, 63, 64, 575} {
		spectral := testutil.DeterministicNoise(int64(maxIndex)+3, 32768, 576)
		wantOut := make([]float32, 576)
		gotOut := make([]float32, 576)

		wantSum, wantMax := xrpow.Scalar(spectral, wantOut, maxIndex)
		gotSum, gotMax := fn(spectral, gotOut, maxIndex)

		name := fmt.Sprintf("maxIndex=%d", maxIndex)
		testutil.RequireRelNearlyEqual(t, name+" sum", gotSum, wantSum, 1e-5, 1e-20)
		testutil.RequireRelNearlyEqual(t, name+" max", gotMax, wantMax, 1e-5, 1e-20)
		testutil.RequireSliceRelNearlyEqual(t, gotOut, wantOut, 1e-5, 1e-20)
	}
}

func checkFHT(t *testing.T, fn registry.FHTFn) {
	for _, size := range []int{hartley.MinSamples, 64, 256, hartley.MaxSamples} {
		x := testutil.DeterministicNoise(int64(size), 32768, size)
		want := make([]float32, size)
		got := make([]float32, size)
		hartley.Prepare(want, x)
		copy(got, want)

		hartley.Transform(want, size/2)
		fn(got, size/2)
		testutil.RequireBitIdentical(t, got, want)
	}
}
