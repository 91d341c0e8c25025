//go:build (amd64 || 386) && !purego

package avx512

import (
	"github.com/cwbudde/algo-mp3/cpu"
	"github.com/cwbudde/algo-mp3/internal/hartley"
	"github.com/cwbudde/algo-mp3/internal/lanes"
	"github.com/cwbudde/algo-mp3/internal/registry"
	"github.com/cwbudde/algo-mp3/internal/xrpow"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "avx512",
		SIMDLevel: cpu.SIMDAVX512,
		Priority:  40,
		XRPow:     xrpow.Lanes[lanes.Float32x16],
		FHT:       hartley.TransformLanes[lanes.Float32x16],
	})
}
