package analysis

import "math"

// WindowType selects the analysis window.
type WindowType int

const (
	// WindowAuto picks Blackman for long blocks and Hann otherwise.
	WindowAuto WindowType = iota
	// WindowBlackman is the three-term Blackman window.
	WindowBlackman
	// WindowHann is the raised-cosine window.
	WindowHann
)

func (w WindowType) String() string {
	switch w {
	case WindowAuto:
		return "auto"
	case WindowBlackman:
		return "blackman"
	case WindowHann:
		return "hann"
	default:
		return "unknown"
	}
}

// resolve maps WindowAuto to the window used for blocks of the given size.
func (w WindowType) resolve(size int) WindowType {
	if w != WindowAuto {
		return w
	}
	if size == LongBlockSize {
		return WindowBlackman
	}
	return WindowHann
}

// makeWindow samples the window at the half-sample offsets (i+½)/N, so the
// table is symmetric and never reaches zero at the ends.
func makeWindow(typ WindowType, size int) []float32 {
	out := make([]float32, size)
	n := float64(size)
	for i := range out {
		x := (float64(i) + 0.5) / n
		switch typ {
		case WindowBlackman:
			out[i] = float32(0.42 - 0.5*math.Cos(2*math.Pi*x) + 0.08*math.Cos(4*math.Pi*x))
		default:
			out[i] = float32(0.5 * (1 - math.Cos(2*math.Pi*x)))
		}
	}
	return out
}
