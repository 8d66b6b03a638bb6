//go:build amd64 && !purego

// Package sse2 installs the 8-bit routines for baseline x86-64 CPUs.
package sse2

import (
	"github.com/cwbudde/algo-mc/internal/cpu"
	"github.com/cwbudde/algo-mc/mc/internal/arch/kernel"
	"github.com/cwbudde/algo-mc/mc/internal/arch/registry"
	"github.com/cwbudde/algo-mc/mc/internal/filter"
)

// lanes is half a 128-bit register of 8-bit samples, widened to 16 bits
// before the multiply.
const lanes = 8

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
		Name:  "sse2",
		Level: cpu.LevelSSE2,
		Avg:   kernel.AvgU8(lanes),
	}
	for _, p := range pairs {
		x, y := p[0], p[1]
		entry.Put = append(entry.Put, registry.ModeFn[registry.PutFn]{X: x, Y: y, Fn: kernel.PutU8(x, y, lanes)})
		entry.Prep = append(entry.Prep, registry.ModeFn[registry.PrepFn]{X: x, Y: y, Fn: kernel.PrepU8(x, y, lanes)})
	}

	registry.Global.Register(entry)
}
