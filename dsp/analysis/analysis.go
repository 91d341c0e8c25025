// Package analysis computes the windowed Hartley spectra and energy spectra
// the psychoacoustic model consumes.
//
// An Analyzer owns scratch buffers and is not safe for concurrent use; use
// one per channel.
package analysis

import (
	"fmt"

	"github.com/cwbudde/algo-mp3/dsp/kernels"
	"github.com/cwbudde/algo-mp3/internal/hartley"
	"github.com/cwbudde/algo-vecmath"
	"github.com/tphakala/simd/f32"
)

const (
	// LongBlockSize is the transform size of a long block.
	LongBlockSize = 1024
	// ShortBlockSize is the transform size of a short block.
	ShortBlockSize = 256
)

// Analyzer transforms fixed-size blocks of PCM into Hartley spectra.
type Analyzer struct {
	size   int
	table  *kernels.Table
	scale  float32
	window []float32
	wtype  WindowType

	scratch []float32
	re, im  []float64
}

// NewAnalyzer creates an analyzer for blocks of size samples. size must be
// a supported Hartley length (16, 64, 256 or 1024).
func NewAnalyzer(size int, opts ...Option) (*Analyzer, error) {
	if size%2 != 0 || !kernels.ValidTransformLength(size/2) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBlockSize, size)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.table == nil {
		cfg.table = kernels.Default()
	}

	wtype := cfg.window.resolve(size)
	return &Analyzer{
		size:    size,
		table:   cfg.table,
		scale:   cfg.scale,
		window:  makeWindow(wtype, size),
		wtype:   wtype,
		scratch: make([]float32, size),
		re:      make([]float64, size/2+1),
		im:      make([]float64, size/2+1),
	}, nil
}

// Size returns the block size.
func (a *Analyzer) Size() int { return a.size }

// Window returns the window type in use.
func (a *Analyzer) Window() WindowType { return a.wtype }

// Bins returns the length of the energy spectrum, Size()/2+1.
func (a *Analyzer) Bins() int { return a.size/2 + 1 }

// Transform writes the Hartley spectrum of the windowed block pcm to dst.
// Both slices must have length Size().
func (a *Analyzer) Transform(dst, pcm []float32) error {
	if len(pcm) != a.size || len(dst) != a.size {
		return fmt.Errorf("%w: pcm=%d dst=%d, want %d", ErrLengthMismatch, len(pcm), len(dst), a.size)
	}

	w := a.scratch
	if a.scale != 1 {
		f32.Scale(w, pcm, a.scale)
	} else {
		copy(w, pcm)
	}
	for i, c := range a.window {
		w[i] *= c
	}

	hartley.Prepare(dst, w)
	a.table.HartleyTransform(dst, a.size/2)
	return nil
}

// Energy writes the energy spectrum of a Hartley spectrum to dst and returns
// its total. With N = Size(), dst[j] = ½(h[j]² + h[(N-j) mod N]²) for j in
// [0, N/2]; dst[0] and dst[N/2] therefore reduce to h[0]² and h[N/2]². dst
// must have length Bins().
func (a *Analyzer) Energy(dst, spectrum []float32) (float32, error) {
	if len(spectrum) != a.size || len(dst) != a.Bins() {
		return 0, fmt.Errorf("%w: spectrum=%d dst=%d", ErrLengthMismatch, len(spectrum), len(dst))
	}

	n := a.size
	for j := range dst {
		re := spectrum[j]
		im := spectrum[(n-j)%n]
		dst[j] = float32(0.5 * (float32(re*re) + float32(im*im)))
	}
	return f32.Sum(dst), nil
}

// PlotEnergy is Energy in float64, for diagnostics and plotting.
func (a *Analyzer) PlotEnergy(dst []float64, spectrum []float32) error {
	if len(spectrum) != a.size || len(dst) != a.Bins() {
		return fmt.Errorf("%w: spectrum=%d dst=%d", ErrLengthMismatch, len(spectrum), len(dst))
	}

	n := a.size
	for j := range a.re {
		a.re[j] = float64(spectrum[j])
		a.im[j] = float64(spectrum[(n-j)%n])
	}
	vecmath.Power(dst, a.re, a.im)
	vecmath.ScaleBlock(dst, dst, 0.5)
	return nil
}
