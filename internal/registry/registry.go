// Package registry provides the implementation registry for the encoder kernels.
//
// The registry-based dispatch system allows multiple implementation variants
// (generic, SSE, SSE2, AVX, AVX2, AVX-512) to coexist. Each variant registers
// itself from an init() function in its arch package; the dispatch table then
// resolves, per operation, the highest-priority variant the CPU supports.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-mp3/cpu"
)

// XRPowFn computes |x|^(3/4) for spectral[0..=maxIndex] into out and returns
// the sum of |x| and the maximum power value.
type XRPowFn func(spectral, out []float32, maxIndex int) (sum, peak float32)

// FHTFn runs the in-place Hartley butterfly pass over buf[0:2*n].
type FHTFn func(buf []float32, n int)

// OpEntry represents a registered implementation variant.
//
// Not all operation fields need to be populated; a nil field means the tier
// has no implementation of that operation and lookup moves on to the next
// eligible tier.
type OpEntry struct {
	// Name is a human-readable identifier for this implementation (e.g., "avx2").
	Name string

	// SIMDLevel indicates the instruction set required by this implementation.
	SIMDLevel cpu.SIMDLevel

	// Priority determines selection order when multiple compatible
	// implementations exist. Higher priority implementations are preferred:
	//   - Generic (SIMDNone): 0
	//   - SSE: 10
	//   - SSE2: 15
	//   - AVX: 20
	//   - AVX2+FMA: 30
	//   - AVX-512F: 40
	Priority int

	// XRPow is the power-law pre-scaling kernel.
	XRPow XRPowFn

	// FHT is the Fast Hartley Transform butterfly kernel.
	FHT FHTFn
}

// OpRegistry manages the registration and lookup of implementation variants.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool // true if entries are sorted by priority (descending)
}

// Global is the default registry instance populated by the arch packages.
var Global = &OpRegistry{}

// Register adds an implementation variant to the registry.
//
// This function is typically called from init() functions in architecture-specific
// implementation packages. It is safe to call concurrently, but all registrations
// should complete before the first lookup.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// LookupXRPow returns the highest-priority compatible variant providing XRPow.
func (r *OpRegistry) LookupXRPow(features cpu.Features) *OpEntry {
	return r.lookup(features, func(e *OpEntry) bool { return e.XRPow != nil })
}

// LookupFHT returns the highest-priority compatible variant providing FHT.
func (r *OpRegistry) LookupFHT(features cpu.Features) *OpEntry {
	return r.lookup(features, func(e *OpEntry) bool { return e.FHT != nil })
}

// LookupWhere returns the highest-priority compatible variant for which
// accept returns true. Callers use it to layer extra policy, such as
// disabled tiers, on top of CPU eligibility.
func (r *OpRegistry) LookupWhere(features cpu.Features, accept func(*OpEntry) bool) *OpEntry {
	return r.lookup(features, accept)
}

func (r *OpRegistry) lookup(features cpu.Features, provides func(*OpEntry) bool) *OpEntry {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) && provides(entry) {
			return entry
		}
	}

	return nil // Should never happen if generic fallback is registered
}

// sortByPriority sorts entries by priority in descending order.
// Must be called with r.mu held (write lock).
func (r *OpRegistry) sortByPriority() {
	// Insertion sort keeps equal priorities in registration order.
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of all registered entries.
// This function is primarily intended for testing and debugging.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all registered entries.
// This function is intended for testing purposes only.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
