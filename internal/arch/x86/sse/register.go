//go:build (amd64 || 386) && !purego

// Package sse registers the 128-bit xrpow kernel for CPUs with SSE only.
//
// The FHT lane kernel needs SSE2, so this tier leaves FHT to the baseline.
package sse

import (
	"github.com/cwbudde/algo-mp3/cpu"
	"github.com/cwbudde/algo-mp3/internal/lanes"
	"github.com/cwbudde/algo-mp3/internal/registry"
	"github.com/cwbudde/algo-mp3/internal/xrpow"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "sse",
		SIMDLevel: cpu.SIMDSSE,
		Priority:  10,
		XRPow:     xrpow.Lanes[lanes.Float32x4],
	})
}
