//go:build (amd64 || 386) && !purego

package avx

import (
	"github.com/cwbudde/algo-mp3/cpu"
	"github.com/cwbudde/algo-mp3/internal/hartley"
	"github.com/cwbudde/algo-mp3/internal/lanes"
	"github.com/cwbudde/algo-mp3/internal/registry"
	"github.com/cwbudde/algo-mp3/internal/xrpow"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "avx",
		SIMDLevel: cpu.SIMDAVX,
		Priority:  20,
		XRPow:     xrpow.Lanes[lanes.Float32x8],
		FHT:       hartley.TransformLanes[lanes.Float32x8],
	})
}
