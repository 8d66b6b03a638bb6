//go:build amd64 && !purego

// Package ssse3 installs the 8-bit routines for SSSE3-capable CPUs.
package ssse3

import (
	"github.com/cwbudde/algo-mc/internal/cpu"
	"github.com/cwbudde/algo-mc/mc/internal/arch/kernel"
	"github.com/cwbudde/algo-mc/mc/internal/arch/registry"
	"github.com/cwbudde/algo-mc/mc/internal/filter"
)

// lanes matches one 128-bit register of 8-bit samples.
const lanes = 16

func init() {
	registry.Global.Register(registry.Entry{
		Name:  "ssse3",
		Level: cpu.LevelSSSE3,
		Put: []registry.ModeFn[registry.PutFn]{
			put(filter.Regular, filter.Regular),
			put(filter.Regular, filter.Smooth),
			put(filter.Regular, filter.Sharp),
			put(filter.Smooth, filter.Regular),
			put(filter.Smooth, filter.Smooth),
			put(filter.Smooth, filter.Sharp),
			put(filter.Sharp, filter.Regular),
			put(filter.Sharp, filter.Smooth),
			put(filter.Sharp, filter.Sharp),
			put(filter.Bilinear, filter.Bilinear),
		},
		Prep: []registry.ModeFn[registry.PrepFn]{
			prep(filter.Regular, filter.Regular),
			prep(filter.Regular, filter.Smooth),
			prep(filter.Regular, filter.Sharp),
			prep(filter.Smooth, filter.Regular),
			prep(filter.Smooth, filter.Smooth),
			prep(filter.Smooth, filter.Sharp),
			prep(filter.Sharp, filter.Regular),
			prep(filter.Sharp, filter.Smooth),
			prep(filter.Sharp, filter.Sharp),
			prep(filter.Bilinear, filter.Bilinear),
		},
		Avg: kernel.AvgU8(lanes),
	})
}

func put(x, y filter.Mode) registry.ModeFn[registry.PutFn] {
	return registry.ModeFn[registry.PutFn]{X: x, Y: y, Fn: kernel.PutU8(x, y, lanes)}
}

func prep(x, y filter.Mode) registry.ModeFn[registry.PrepFn] {
	return registry.ModeFn[registry.PrepFn]{X: x, Y: y, Fn: kernel.PrepU8(x, y, lanes)}
}
