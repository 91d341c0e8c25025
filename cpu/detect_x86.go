//go:build amd64 || 386

package cpu

import (
	"runtime"

	"github.com/klauspost/cpuid/v2"
	"golang.org/x/sys/cpu"
)

// detectFeaturesImpl performs CPU feature detection on x86 systems.
//
// golang.org/x/sys/cpu only reports leaf 7 bits after checking the maximum
// supported leaf, and only reports AVX/AVX-512 when the OS saves the wider
// register state. klauspost/cpuid adds the flags x/sys/cpu does not expose
// (MMX, SSE, 3DNow!) and the identification strings.
func detectFeaturesImpl() Features {
	return probeX86().features(runtime.GOARCH)
}

func probeX86() x86Report {
	info := cpuid.CPU
	return x86Report{
		Identifiable: info.VendorString != "",

		MMX:      info.Supports(cpuid.MMX),
		SSE:      info.Supports(cpuid.SSE),
		SSE2:     info.Supports(cpuid.SSE2),
		AVX:      info.Supports(cpuid.AVX),
		FMA:      info.Supports(cpuid.FMA3),
		AVX2:     info.Supports(cpuid.AVX2),
		AVX512F:  info.Supports(cpuid.AVX512F),
		AMD3DNow: info.Supports(cpuid.AMD3DNOW),

		SSE2Sys:    cpu.X86.HasSSE2,
		AVXSys:     cpu.X86.HasAVX,
		FMASys:     cpu.X86.HasFMA,
		AVX2Sys:    cpu.X86.HasAVX2,
		AVX512FSys: cpu.X86.HasAVX512F,

		Vendor: info.VendorString,
		Brand:  info.BrandName,
	}
}
