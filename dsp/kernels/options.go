package kernels

import "github.com/cwbudde/algo-mp3/cpu"

// Option configures table construction.
type Option func(*config)

type config struct {
	genericOnly bool
	disabled    map[cpu.SIMDLevel]bool
}

// WithGenericOnly restricts the table to the scalar kernels.
func WithGenericOnly() Option {
	return func(c *config) {
		c.genericOnly = true
	}
}

// WithDisabledLevels excludes the tiers of the given levels from selection.
// Lookup falls through to the next eligible tier. Disabling cpu.SIMDNone has
// no effect.
func WithDisabledLevels(levels ...cpu.SIMDLevel) Option {
	return func(c *config) {
		if c.disabled == nil {
			c.disabled = make(map[cpu.SIMDLevel]bool, len(levels))
		}
		for _, l := range levels {
			if l != cpu.SIMDNone {
				c.disabled[l] = true
			}
		}
	}
}
