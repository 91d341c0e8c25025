//go:build (amd64 || 386) && !purego

package kernels

// This file imports the x86 tier packages to trigger their init()
// functions, which register implementations with the global registry.

import (
	// Generic implementations (pure Go fallback)
	_ "github.com/cwbudde/algo-mp3/internal/arch/generic"

	// x86 implementations
	_ "github.com/cwbudde/algo-mp3/internal/arch/x86/avx"
	_ "github.com/cwbudde/algo-mp3/internal/arch/x86/avx2"
	_ "github.com/cwbudde/algo-mp3/internal/arch/x86/avx512"
	_ "github.com/cwbudde/algo-mp3/internal/arch/x86/sse"
	_ "github.com/cwbudde/algo-mp3/internal/arch/x86/sse2"
)
