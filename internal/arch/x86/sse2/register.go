//go:build (amd64 || 386) && !purego

package sse2

import (
	"github.com/cwbudde/algo-mp3/cpu"
	"github.com/cwbudde/algo-mp3/internal/hartley"
	"github.com/cwbudde/algo-mp3/internal/lanes"
	"github.com/cwbudde/algo-mp3/internal/registry"
	"github.com/cwbudde/algo-mp3/internal/xrpow"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "sse2",
		SIMDLevel: cpu.SIMDSSE2,
		Priority:  15,
		XRPow:     xrpow.Lanes[lanes.Float32x4],
		FHT:       hartley.TransformLanes[lanes.Float32x4],
	})
}
