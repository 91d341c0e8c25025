package analysis

import "github.com/cwbudde/algo-mp3/dsp/kernels"

// Option configures an Analyzer.
type Option func(*config)

type config struct {
	table  *kernels.Table
	scale  float32
	window WindowType
}

func defaultConfig() config {
	return config{scale: 1, window: WindowAuto}
}

// WithTable sets the dispatch table used for the transform. The default is
// kernels.Default().
func WithTable(t *kernels.Table) Option {
	return func(c *config) {
		c.table = t
	}
}

// WithInputScale multiplies the input by s before windowing, e.g. 32768 to
// bring normalized float PCM to 16-bit range.
func WithInputScale(s float32) Option {
	return func(c *config) {
		c.scale = s
	}
}

// WithWindow overrides the window chosen from the block size.
func WithWindow(w WindowType) Option {
	return func(c *config) {
		c.window = w
	}
}
