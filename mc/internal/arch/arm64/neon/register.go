//go:build arm64 && !purego

// Package neon installs the 8-bit routines for ARM64 NEON.
package neon

import (
	"github.com/cwbudde/algo-mc/internal/cpu"
	"github.com/cwbudde/algo-mc/mc/internal/arch/kernel"
	"github.com/cwbudde/algo-mc/mc/internal/arch/registry"
	"github.com/cwbudde/algo-mc/mc/internal/filter"
)

const lanes = 8

func init() {
	registry.Global.Register(registry.Entry{
		Name:  "neon",
		Level: cpu.LevelNEON,
		Put: []registry.ModeFn[registry.PutFn]{
			{X: filter.Regular, Y: filter.Regular, Fn: kernel.PutU8(filter.Regular, filter.Regular, lanes)},
			{X: filter.Regular, Y: filter.Smooth, Fn: kernel.PutU8(filter.Regular, filter.Smooth, lanes)},
			{X: filter.Regular, Y: filter.Sharp, Fn: kernel.PutU8(filter.Regular, filter.Sharp, lanes)},
			{X: filter.Smooth, Y: filter.Regular, Fn: kernel.PutU8(filter.Smooth, filter.Regular, lanes)},
			{X: filter.Smooth, Y: filter.Smooth, Fn: kernel.PutU8(filter.Smooth, filter.Smooth, lanes)},
			{X: filter.Smooth, Y: filter.Sharp, Fn: kernel.PutU8(filter.Smooth, filter.Sharp, lanes)},
			{X: filter.Sharp, Y: filter.Regular, Fn: kernel.PutU8(filter.Sharp, filter.Regular, lanes)},
			{X: filter.Sharp, Y: filter.Smooth, Fn: kernel.PutU8(filter.Sharp, filter.Smooth, lanes)},
			{X: filter.Sharp, Y: filter.Sharp, Fn: kernel.PutU8(filter.Sharp, filter.Sharp, lanes)},
			{X: filter.Bilinear, Y: filter.Bilinear, Fn: kernel.PutU8(filter.Bilinear, filter.Bilinear, lanes)},
		},
		Prep: []registry.ModeFn[registry.PrepFn]{
			{X: filter.Regular, Y: filter.Regular, Fn: kernel.PrepU8(filter.Regular, filter.Regular, lanes)},
			{X: filter.Regular, Y: filter.Smooth, Fn: kernel.PrepU8(filter.Regular, filter.Smooth, lanes)},
			{X: filter.Regular, Y: filter.Sharp, Fn: kernel.PrepU8(filter.Regular, filter.Sharp, lanes)},
			{X: filter.Smooth, Y: filter.Regular, Fn: kernel.PrepU8(filter.Smooth, filter.Regular, lanes)},
			{X: filter.Smooth, Y: filter.Smooth, Fn: kernel.PrepU8(filter.Smooth, filter.Smooth, lanes)},
			{X: filter.Smooth, Y: filter.Sharp, Fn: kernel.PrepU8(filter.Smooth, filter.Sharp, lanes)},
			{X: filter.Sharp, Y: filter.Regular, Fn: kernel.PrepU8(filter.Sharp, filter.Regular, lanes)},
			{X: filter.Sharp, Y: filter.Smooth, Fn: kernel.PrepU8(filter.Sharp, filter.Smooth, lanes)},
			{X: filter.Sharp, Y: filter.Sharp, Fn: kernel.PrepU8(filter.Sharp, filter.Sharp, lanes)},
			{X: filter.Bilinear, Y: filter.Bilinear, Fn: kernel.PrepU8(filter.Bilinear, filter.Bilinear, lanes)},
		},
		Avg: kernel.AvgU8(lanes),
	})
}
