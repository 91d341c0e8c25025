//go:build (amd64 || 386) && !purego

package avx2

import (
	"github.com/cwbudde/algo-mp3/cpu"
	"github.com/cwbudde/algo-mp3/internal/hartley"
	"github.com/cwbudde/algo-mp3/internal/lanes"
	"github.com/cwbudde/algo-mp3/internal/registry"
	"github.com/cwbudde/algo-mp3/internal/xrpow"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "avx2",
		SIMDLevel: cpu.SIMDAVX2,
		Priority:  30,
		// Unrolled by two with separate accumulators.
		XRPow: xrpow.LanesUnrolled[lanes.Float32x8],
		FHT:   hartley.TransformLanes[lanes.Float32x8],
	})
}
