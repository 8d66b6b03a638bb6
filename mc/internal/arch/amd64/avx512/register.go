//go:build amd64 && !purego

// Package avx512 installs the routines for CPUs with AVX-512BW.
package avx512

import (
	"github.com/cwbudde/algo-mc/internal/cpu"
	"github.com/cwbudde/algo-mc/mc/internal/arch/kernel"
	"github.com/cwbudde/algo-mc/mc/internal/arch/registry"
	"github.com/cwbudde/algo-mc/mc/internal/filter"
)

// lanes matches one 512-bit register of 8-bit samples; 16-bit cells use
// half as many.
const lanes = 64

func init() {
	entry := registry.Entry{
		Name:    "avx512",
		Level:   cpu.LevelAVX512,
		Avg:     kernel.AvgU8(lanes),
		AvgWide: kernel.AvgU16(lanes / 2),
	}
	for _, x := range filter.Modes() {
		for _, y := range filter.Modes() {
			if (x == filter.Bilinear) != (y == filter.Bilinear) {
				continue
			}
			entry.Put = append(entry.Put, registry.ModeFn[registry.PutFn]{X: x, Y: y, Fn: kernel.PutU8(x, y, lanes)})
			entry.Prep = append(entry.Prep, registry.ModeFn[registry.PrepFn]{X: x, Y: y, Fn: kernel.PrepU8(x, y, lanes)})
			entry.PutWide = append(entry.PutWide,
				registry.ModeFn[registry.PutWideFn]{X: x, Y: y, Fn: kernel.PutU16(x, y, lanes/2)})
			entry.PrepWide = append(entry.PrepWide,
				registry.ModeFn[registry.PrepWideFn]{X: x, Y: y, Fn: kernel.PrepU16(x, y, lanes/2)})
		}
	}

	registry.Global.Register(entry)
}
