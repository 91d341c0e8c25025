package cpu

// x86Report is the raw answer of the x86 identification leaves as seen by
// the two probes. Fields suffixed with Sys come from golang.org/x/sys/cpu,
// the others from github.com/klauspost/cpuid/v2.
type x86Report struct {
	// Identifiable is false when the CPU does not answer the identification
	// instruction at all.
	Identifiable bool

	// Leaf 1.
	MMX, SSE, SSE2, AVX, FMA bool
	// Leaf 7, sub-leaf 0.
	AVX2, AVX512F bool
	// Extended leaf 0x80000001.
	AMD3DNow bool

	SSE2Sys, AVXSys, FMASys, AVX2Sys, AVX512FSys bool

	Vendor, Brand string
}

// features folds a report into confirmed Features. An unidentifiable CPU
// has no features. A flag both probes report must be confirmed by both.
func (r x86Report) features(arch string) Features {
	if !r.Identifiable {
		return Features{Architecture: arch}
	}

	return Features{
		HasMMX:       r.MMX,
		HasSSE:       r.SSE,
		HasSSE2:      r.SSE2 && r.SSE2Sys,
		HasAVX:       r.AVX && r.AVXSys,
		HasAVX2:      r.AVX2 && r.AVX2Sys,
		HasFMA:       r.FMA && r.FMASys,
		HasAVX512F:   r.AVX512F && r.AVX512FSys,
		Has3DNow:     r.AMD3DNow,
		Architecture: arch,
		Vendor:       r.Vendor,
		Brand:        r.Brand,
	}
}
