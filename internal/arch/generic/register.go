// Package generic registers the portable scalar kernels. They are always
// eligible and serve as the reference every other tier is tested against.
package generic

import (
	"github.com/cwbudde/algo-mp3/cpu"
	"github.com/cwbudde/algo-mp3/internal/hartley"
	"github.com/cwbudde/algo-mp3/internal/registry"
	"github.com/cwbudde/algo-mp3/internal/xrpow"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,
		XRPow:     xrpow.Scalar,
		FHT:       hartley.Transform,
	})
}
