//go:build !amd64 && !386 && !purego

package kernels

// This file imports generic implementation packages for architectures
// without x86 tiers.

import (
	// Generic implementations (pure Go fallback)
	_ "github.com/cwbudde/algo-mp3/internal/arch/generic"
)
