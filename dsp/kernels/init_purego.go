//go:build purego

package kernels

import (
	// Generic implementations (pure Go fallback)
	_ "github.com/cwbudde/algo-mp3/internal/arch/generic"
)
