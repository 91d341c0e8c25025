//go:build amd64 || 386

package cpu

import (
	"runtime"
	"testing"
)

func TestDetectX86(t *testing.T) {
	f := detectFeaturesImpl()

	if f.Architecture != runtime.GOARCH {
		t.Fatalf("Architecture = %q, want %q", f.Architecture, runtime.GOARCH)
	}

	if runtime.GOARCH == "amd64" && !f.HasSSE2 {
		t.Fatalf("SSE2 is part of the amd64 baseline but was not detected: %+v", f)
	}

	// Every confirmed tier flag must also be reported by x/sys/cpu.
	r := probeX86()
	if f.HasAVX2 && !r.AVX2Sys {
		t.Fatalf("AVX2 reported without x/sys/cpu confirmation")
	}
	if f.HasAVX512F && !r.AVX512FSys {
		t.Fatalf("AVX-512F reported without x/sys/cpu confirmation")
	}
	if f.HasAVX && !r.AVXSys {
		t.Fatalf("AVX reported without OS register-state support")
	}
}
