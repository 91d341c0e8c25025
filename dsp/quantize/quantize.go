// Package quantize prepares a granule of MDCT coefficients for the
// quantization loop: it finds the last non-zero coefficient and fills the
// |xr|^(3/4) table the step-size search works from.
package quantize

import "github.com/cwbudde/algo-mp3/dsp/kernels"

// GranuleSize is the number of spectral coefficients in one granule.
const GranuleSize = 576

// silenceThreshold is the smallest sum of |xr| worth quantizing.
const silenceThreshold = 1e-20

// Granule holds the spectral data of one granule of one channel.
type Granule struct {
	// XR are the MDCT coefficients.
	XR [GranuleSize]float32
	// XRPow holds |XR[i]|^(3/4), filled by InitXRPow.
	XRPow [GranuleSize]float32
	// XRPowMax is the largest value in XRPow.
	XRPowMax float32
	// MaxNonzero is the index of the last non-zero coefficient in XR.
	MaxNonzero int
}

// MaxNonzero returns the index of the last non-zero element of xr, or 0 when
// every element is zero.
func MaxNonzero(xr []float32) int {
	for i := len(xr) - 1; i > 0; i-- {
		if xr[i] != 0 {
			return i
		}
	}
	return 0
}

// InitXRPow computes g.MaxNonzero, fills g.XRPow and g.XRPowMax with the
// xrpow kernel of t, and reports whether the granule has anything to
// quantize. Entries of XRPow past MaxNonzero are zeroed. A nil t uses
// kernels.Default().
func InitXRPow(t *kernels.Table, g *Granule) bool {
	if t == nil {
		t = kernels.Default()
	}

	g.MaxNonzero = MaxNonzero(g.XR[:])
	clear(g.XRPow[g.MaxNonzero:])

	sum, peak := t.ComputePowerAndStats(g.XR[:], g.XRPow[:], g.MaxNonzero)
	g.XRPowMax = peak

	return sum > silenceThreshold
}
