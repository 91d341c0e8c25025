//go:build !amd64 && !386

package cpu

import "runtime"

// detectFeaturesImpl is the fallback for non-x86 architectures.
//
// Returns a Features struct with all SIMD flags set to false,
// indicating only scalar kernels should be used.
func detectFeaturesImpl() Features {
	return Features{
		Architecture: runtime.GOARCH,
	}
}
