package kernels

import (
	"fmt"
	"sync"

	"github.com/cwbudde/algo-mp3/cpu"
	"github.com/cwbudde/algo-mp3/internal/hartley"
	"github.com/cwbudde/algo-mp3/internal/registry"
)

// Table is a resolved dispatch table. It is immutable and safe for
// concurrent use.
type Table struct {
	features  cpu.Features
	xrpow     registry.XRPowFn
	fht       registry.FHTFn
	xrpowName string
	fhtName   string
}

// NewTable selects, per kernel, the highest-priority registered tier that
// features support. The choice is fixed for the lifetime of the table.
func NewTable(features cpu.Features, opts ...Option) *Table {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.genericOnly {
		features.ForceGeneric = true
	}

	xe, fe := resolve(features, cfg.disabled)
	if xe == nil {
		panic("kernels: no xrpow implementation registered")
	}
	if fe == nil {
		panic("kernels: no fht implementation registered")
	}

	return &Table{
		features:  features,
		xrpow:     xe.XRPow,
		fht:       fe.FHT,
		xrpowName: xe.Name,
		fhtName:   fe.Name,
	}
}

// resolve picks the xrpow and fht entries from the global registry. Disabled
// levels are skipped as if the CPU lacked them.
func resolve(features cpu.Features, disabled map[cpu.SIMDLevel]bool) (xe, fe *registry.OpEntry) {
	if len(disabled) == 0 {
		return registry.Global.LookupXRPow(features), registry.Global.LookupFHT(features)
	}

	enabled := func(e *registry.OpEntry) bool { return !disabled[e.SIMDLevel] }
	xe = registry.Global.LookupWhere(features, func(e *registry.OpEntry) bool {
		return e.XRPow != nil && enabled(e)
	})
	fe = registry.Global.LookupWhere(features, func(e *registry.OpEntry) bool {
		return e.FHT != nil && enabled(e)
	})
	return xe, fe
}

// ComputePowerAndStats writes |spectral[i]|^(3/4) to out[i] for i in
// [0, maxIndex] and returns the sum of |spectral[i]| and the largest power
// value. Both slices must hold at least maxIndex+1 elements; nothing past
// maxIndex is read or written.
func (t *Table) ComputePowerAndStats(spectral, out []float32, maxIndex int) (sum, peak float32) {
	return t.xrpow(spectral, out, maxIndex)
}

// HartleyTransform runs the FHT butterfly stages in place over buf[0:2n].
//
// The transform is radix-4: 2n must be a power of four between 16 and 1024,
// so n is one of 8, 32, 128 or 512 (see ValidTransformLength). Other powers
// of two, such as n = 16, are not supported and index past buf. n is not
// checked.
func (t *Table) HartleyTransform(buf []float32, n int) {
	t.fht(buf, n)
}

// Features returns the feature set the table was resolved from.
func (t *Table) Features() cpu.Features { return t.features }

// XRPowName returns the tier name selected for ComputePowerAndStats.
func (t *Table) XRPowName() string { return t.xrpowName }

// FHTName returns the tier name selected for HartleyTransform.
func (t *Table) FHTName() string { return t.fhtName }

// String describes the selection, e.g. "xrpow=avx2 fht=avx2".
func (t *Table) String() string {
	return fmt.Sprintf("xrpow=%s fht=%s", t.xrpowName, t.fhtName)
}

// ValidTransformLength reports whether n is a supported HartleyTransform
// length: 2n must be a power of four between 16 and 1024.
func ValidTransformLength(n int) bool {
	return hartley.ValidLength(n)
}

var (
	defaultTable *Table
	defaultOnce  sync.Once
)

// Default returns the process-wide table built from cpu.DetectFeatures() on
// first use.
func Default() *Table {
	defaultOnce.Do(func() {
		defaultTable = NewTable(cpu.DetectFeatures())
	})
	return defaultTable
}

// ComputePowerAndStats runs the default table's xrpow kernel.
func ComputePowerAndStats(spectral, out []float32, maxIndex int) (sum, peak float32) {
	return Default().ComputePowerAndStats(spectral, out, maxIndex)
}

// HartleyTransform runs the default table's FHT kernel. The restrictions of
// Table.HartleyTransform on n apply.
func HartleyTransform(buf []float32, n int) {
	Default().HartleyTransform(buf, n)
}

// Capabilities returns the CPU features behind the default table.
func Capabilities() cpu.Features {
	return Default().Features()
}
