package cpu

import (
	"os"
	"strconv"
)

// NoSIMDEnvVar names the environment variable that disables every SIMD tier.
const NoSIMDEnvVar = "MP3_NO_SIMD"

// NoSIMDEnv reports whether SIMD kernels are disabled via MP3_NO_SIMD.
// Any non-empty value counts as true unless it parses as a false boolean.
func NoSIMDEnv() bool {
	val := os.Getenv(NoSIMDEnvVar)
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
