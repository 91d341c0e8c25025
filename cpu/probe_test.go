package cpu

import "testing"

func fullReport() x86Report {
	return x86Report{
		Identifiable: true,
		MMX:          true, SSE: true, SSE2: true, AVX: true, FMA: true,
		AVX2: true, AVX512F: true, AMD3DNow: true,
		SSE2Sys: true, AVXSys: true, FMASys: true, AVX2Sys: true, AVX512FSys: true,
		Vendor: "AuthenticAMD", Brand: "Test CPU",
	}
}

func TestReportUnidentifiableHasNoFeatures(t *testing.T) {
	r := fullReport()
	r.Identifiable = false

	got := r.features("386")
	want := Features{Architecture: "386"}
	if got != want {
		t.Fatalf("features() = %+v, want %+v", got, want)
	}
	if got.BestLevel() != SIMDNone {
		t.Fatalf("BestLevel() = %v, want None", got.BestLevel())
	}
}

func TestReportFullyConfirmed(t *testing.T) {
	got := fullReport().features("amd64")
	want := Features{
		HasMMX: true, HasSSE: true, HasSSE2: true, HasAVX: true, HasAVX2: true,
		HasFMA: true, HasAVX512F: true, Has3DNow: true,
		Architecture: "amd64", Vendor: "AuthenticAMD", Brand: "Test CPU",
	}
	if got != want {
		t.Fatalf("features() = %+v, want %+v", got, want)
	}
}

func TestReportRequiresBothProbes(t *testing.T) {
	tests := []struct {
		name  string
		clear func(*x86Report)
		check func(Features) bool
	}{
		{"sse2-sys", func(r *x86Report) { r.SSE2Sys = false }, func(f Features) bool { return f.HasSSE2 }},
		{"sse2-cpuid", func(r *x86Report) { r.SSE2 = false }, func(f Features) bool { return f.HasSSE2 }},
		{"avx-os-state", func(r *x86Report) { r.AVXSys = false }, func(f Features) bool { return f.HasAVX }},
		{"fma-sys", func(r *x86Report) { r.FMASys = false }, func(f Features) bool { return f.HasFMA }},
		{"avx2-leaf7", func(r *x86Report) { r.AVX2 = false }, func(f Features) bool { return f.HasAVX2 }},
		{"avx2-sys", func(r *x86Report) { r.AVX2Sys = false }, func(f Features) bool { return f.HasAVX2 }},
		{"avx512-sys", func(r *x86Report) { r.AVX512FSys = false }, func(f Features) bool { return f.HasAVX512F }},
		{"avx512-cpuid", func(r *x86Report) { r.AVX512F = false }, func(f Features) bool { return f.HasAVX512F }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := fullReport()
			tt.clear(&r)
			if tt.check(r.features("amd64")) {
				t.Fatalf("flag set although one probe did not confirm it")
			}
		})
	}
}

func TestReportLowersTierOnly(t *testing.T) {
	r := fullReport()
	r.AVX512F = false
	r.FMA = false

	f := r.features("amd64")
	if got := f.BestLevel(); got != SIMDAVX {
		t.Fatalf("BestLevel() = %v, want AVX", got)
	}
	if !f.HasSSE || !f.HasSSE2 || !f.HasMMX {
		t.Fatalf("unrelated flags lost: %+v", f)
	}
}
