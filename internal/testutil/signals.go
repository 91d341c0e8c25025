package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a deterministic float32 sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float32 {
	out := make([]float32, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = float32(amplitude * math.Sin(step*float64(i)))
	}
	return out
}

// DeterministicNoise generates white noise in [-amplitude, amplitude) with a
// fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float32 {
	out := make([]float32, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = float32((rng.Float64()*2 - 1) * amplitude)
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float32 {
	out := make([]float32, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float32, length int) []float32 {
	out := make([]float32, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// DirectDHT evaluates the discrete Hartley transform of x in float64:
// H[k] = Σ x[j] (cos(2πjk/N) + sin(2πjk/N)).
func DirectDHT(x []float32) []float64 {
	n := len(x)
	out := make([]float64, n)
	for k := range out {
		var acc float64
		for j, v := range x {
			theta := 2 * math.Pi * float64((j*k)%n) / float64(n)
			acc += float64(v) * (math.Cos(theta) + math.Sin(theta))
		}
		out[k] = acc
	}
	return out
}
