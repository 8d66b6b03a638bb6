//go:build arm64 && !purego

package mc

import (
	_ "github.com/cwbudde/algo-mc/mc/internal/arch/arm64/neon" // register NEON routines
)
