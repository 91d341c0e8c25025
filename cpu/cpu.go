// Package cpu provides CPU feature detection for encoder kernel selection.
//
// This package detects the x86 SIMD instruction set extensions the encoder
// kernels can use (MMX, SSE, SSE2, AVX, AVX2, FMA, AVX-512F and the legacy
// AMD 3DNow! extension) and caches the results for efficient querying.
//
// Detection is performed lazily on the first call to DetectFeatures() and the
// results are cached for subsequent calls using sync.Once for thread-safety.
// On architectures other than amd64 and 386 every flag is false and only the
// scalar kernels are eligible.
package cpu

import (
	"strings"
	"sync"
)

// SIMDLevel represents the instruction set requirement of one kernel tier.
// Higher numeric values indicate more advanced tiers.
type SIMDLevel int

const (
	// SIMDNone indicates no SIMD optimization (pure Go scalar kernels).
	SIMDNone SIMDLevel = iota

	// SIMDSSE indicates x86 SSE (128-bit single-precision vectors).
	SIMDSSE

	// SIMDSSE2 indicates x86 SSE2 (baseline for amd64).
	SIMDSSE2

	// SIMDAVX indicates x86 AVX together with SSE2.
	SIMDAVX

	// SIMDAVX2 indicates x86 AVX2 together with FMA.
	SIMDAVX2

	// SIMDAVX512 indicates x86 AVX-512 Foundation (512-bit vectors).
	SIMDAVX512
)

// String returns a human-readable name for the SIMD level.
func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "None"
	case SIMDSSE:
		return "SSE"
	case SIMDSSE2:
		return "SSE2"
	case SIMDAVX:
		return "AVX"
	case SIMDAVX2:
		return "AVX2+FMA"
	case SIMDAVX512:
		return "AVX-512F"
	default:
		return "Unknown"
	}
}

// Features describes CPU capabilities relevant to encoder kernel selection.
// A flag is only set when the probe confirmed it; absence is never an error.
type Features struct {
	HasMMX     bool // MultiMedia eXtensions
	HasSSE     bool // Streaming SIMD Extensions
	HasSSE2    bool // Streaming SIMD Extensions 2 (baseline for amd64)
	HasAVX     bool // Advanced Vector Extensions
	HasAVX2    bool // Advanced Vector Extensions 2
	HasFMA     bool // Fused multiply-add (FMA3)
	HasAVX512F bool // AVX-512 Foundation
	Has3DNow   bool // AMD 3DNow! (legacy vendor extension, reported only)

	// ForceGeneric disables all SIMD tiers (for testing/debugging).
	ForceGeneric bool

	// Runtime information, diagnostics only.
	Architecture string // runtime.GOARCH (e.g., "amd64", "386")
	Vendor       string // CPU vendor identification string
	Brand        string // CPU brand string
}

// String lists the detected extensions the way the encoder banner prints
// them, e.g. "MMX, SSE, SSE2, AVX, AVX2, FMA". It returns "none" when no
// flag is set.
func (f Features) String() string {
	var names []string
	if f.HasMMX {
		names = append(names, "MMX")
	}
	if f.Has3DNow {
		names = append(names, "3DNow!")
	}
	if f.HasSSE {
		names = append(names, "SSE")
	}
	if f.HasSSE2 {
		names = append(names, "SSE2")
	}
	if f.HasAVX {
		names = append(names, "AVX")
	}
	if f.HasAVX2 {
		names = append(names, "AVX2")
	}
	if f.HasFMA {
		names = append(names, "FMA")
	}
	if f.HasAVX512F {
		names = append(names, "AVX512F")
	}
	if len(names) == 0 {
		return "none"
	}
	s := strings.Join(names, ", ")
	if f.ForceGeneric {
		s += " (SIMD disabled)"
	}
	return s
}

// BestLevel returns the highest SIMD level supported by f.
func (f Features) BestLevel() SIMDLevel {
	for level := SIMDAVX512; level > SIMDNone; level-- {
		if Supports(f, level) {
			return level
		}
	}
	return SIMDNone
}

var (
	// detectedFeatures holds the cached CPU features detected on this system.
	detectedFeatures Features

	// detectOnce ensures feature detection runs exactly once, thread-safely.
	detectOnce sync.Once

	// detectMutex serializes access to detectOnce/detectedFeatures.
	detectMutex sync.Mutex

	// forcedFeatures allows overriding actual hardware detection for testing.
	forcedFeatures *Features

	// forcedMutex protects forcedFeatures from concurrent access during testing.
	forcedMutex sync.RWMutex
)

// DetectFeatures returns the CPU features available on the current system.
//
// Detection is performed once on the first call and cached for subsequent calls.
// This function is thread-safe and can be called concurrently from multiple goroutines.
// When the MP3_NO_SIMD environment variable is set, the result has ForceGeneric set.
func DetectFeatures() Features {
	forcedMutex.RLock()
	forced := forcedFeatures
	forcedMutex.RUnlock()

	if forced != nil {
		return *forced
	}

	detectMutex.Lock()
	detectOnce.Do(func() {
		detectedFeatures = detectFeaturesImpl()
		if NoSIMDEnv() {
			detectedFeatures.ForceGeneric = true
		}
	})
	features := detectedFeatures
	detectMutex.Unlock()

	return features
}

// SetForcedFeatures overrides CPU feature detection with the specified features.
// This is intended for testing purposes only.
func SetForcedFeatures(f Features) {
	forcedMutex.Lock()
	defer forcedMutex.Unlock()
	forced := f
	forcedFeatures = &forced
}

// ResetDetection clears any forced features and the detection cache.
// This is intended for testing purposes.
func ResetDetection() {
	forcedMutex.Lock()
	forcedFeatures = nil
	forcedMutex.Unlock()

	detectMutex.Lock()
	detectOnce = sync.Once{}
	detectedFeatures = Features{}
	detectMutex.Unlock()
}

// Supports returns true if the given CPU features satisfy every requirement
// of the specified SIMD level. The kernel registry uses it to decide tier
// eligibility.
func Supports(features Features, level SIMDLevel) bool {
	if features.ForceGeneric {
		return level == SIMDNone
	}

	switch level {
	case SIMDNone:
		return true
	case SIMDSSE:
		return features.HasSSE
	case SIMDSSE2:
		return features.HasSSE2
	case SIMDAVX:
		return features.HasAVX && features.HasSSE2
	case SIMDAVX2:
		return features.HasAVX2 && features.HasFMA
	case SIMDAVX512:
		return features.HasAVX512F
	default:
		return false
	}
}
