//go:build amd64 && !purego

// Package avx2 installs the routines for AVX2-capable CPUs, including the
// 16-bit-cell ones.
package avx2

import (
	"github.com/cwbudde/algo-mc/internal/cpu"
	"github.com/cwbudde/algo-mc/mc/internal/arch/kernel"
	"github.com/cwbudde/algo-mc/mc/internal/arch/registry"
	"github.com/cwbudde/algo-mc/mc/internal/filter"
)

// lanes matches one 256-bit register of 8-bit samples.
const lanes = 32

// pairs are the mode pairs with a routine at this level. The six pairs that
// mix bilinear with another mode stay on the reference path.
var pairs = [][2]filter.Mode{
	{filter.Regular, filter.Regular},
	{filter.Regular, filter.Smooth},
	{filter.Regular, filter.Sharp},
	{filter.Smooth, filter.Regular},
	{filter.Smooth, filter.Smooth},
	{filter.Smooth, filter.Sharp},
	{filter.Sharp, filter.Regular},
	{filter.Sharp, filter.Smooth},
	{filter.Sharp, filter.Sharp},
	{filter.Bilinear, filter.Bilinear},
}

func init() {
	entry := registry.Entry{
		Name:    "avx2",
		Level:   cpu.LevelAVX2,
		Avg:     kernel.AvgU8(lanes),
		AvgWide: kernel.AvgU16(lanes / 2),
	}
	for _, p := range pairs {
		x, y := p[0], p[1]
		entry.Put = append(entry.Put, registry.ModeFn[registry.PutFn]{X: x, Y: y, Fn: kernel.PutU8(x, y, lanes)})
		entry.Prep = append(entry.Prep, registry.ModeFn[registry.PrepFn]{X: x, Y: y, Fn: kernel.PrepU8(x, y, lanes)})
		entry.PutWide = append(entry.PutWide,
			registry.ModeFn[registry.PutWideFn]{X: x, Y: y, Fn: kernel.PutU16(x, y, lanes/2)})
		entry.PrepWide = append(entry.PrepWide,
			registry.ModeFn[registry.PrepWideFn]{X: x, Y: y, Fn: kernel.PrepU16(x, y, lanes/2)})
	}

	registry.Global.Register(entry)
}
