// Package testutil provides deterministic fixtures and comparison helpers
// shared by the motion compensation tests.
package testutil

import (
	"math/rand"
	"testing"

	"github.com/cwbudde/algo-mc/frame"
)

// Padding is the border, in samples, given to planes built by this package.
// It covers the 3-before / 4-after reach of the 8-tap filters with room to
// spare for offset anchors.
const Padding = 8

// DeterministicPlane returns a width x height plane with Padding on every
// side, filled (padding included) with uniform samples in [0, 2^bitDepth)
// drawn from a fixed seed.
func DeterministicPlane[T frame.Pixel](tb testing.TB, seed int64, width, height, bitDepth int) *frame.Plane[T] {
	tb.Helper()
	p, err := frame.NewPlane[T](width, height, Padding, Padding)
	if err != nil {
		tb.Fatalf("NewPlane(%d, %d): %v", width, height, err)
	}

	rng := rand.New(rand.NewSource(seed))
	limit := frame.MaxValue(bitDepth) + 1
	data := p.Data()
	for i := range data {
		data[i] = T(rng.Intn(limit))
	}

	return p
}

// ConstantPlane returns a width x height plane with Padding on every side,
// every cell set to v.
func ConstantPlane[T frame.Pixel](tb testing.TB, width, height int, v T) *frame.Plane[T] {
	tb.Helper()
	p, err := frame.NewPlane[T](width, height, Padding, Padding)
	if err != nil {
		tb.Fatalf("NewPlane(%d, %d): %v", width, height, err)
	}
	p.Fill(v)

	return p
}

// DeterministicIntermediate returns n prepared values as produced for
// bitDepth samples: roughly the sample range scaled by the intermediate
// precision, with filter overshoot on both sides.
func DeterministicIntermediate(seed int64, n, bitDepth int) []int16 {
	rng := rand.New(rand.NewSource(seed))
	bits := 4
	if bitDepth == 12 {
		bits = 2
	}
	span := (frame.MaxValue(bitDepth) + 1) << bits
	overshoot := span / 8

	out := make([]int16, n)
	for i := range out {
		out[i] = int16(rng.Intn(span+2*overshoot) - overshoot)
	}

	return out
}

// Source returns a slice anchored at (x, y) of p, failing tb on error.
func Source[T frame.Pixel](tb testing.TB, p *frame.Plane[T], x, y int) frame.Slice[T] {
	tb.Helper()
	s, err := p.Slice(x, y)
	if err != nil {
		tb.Fatalf("Slice(%d, %d): %v", x, y, err)
	}

	return s
}

// Destination returns a fresh width x height plane region filled with a
// marker value distinct from anything the tests write.
func Destination[T frame.Pixel](tb testing.TB, width, height int) *frame.Region[T] {
	tb.Helper()
	p, err := frame.NewPlane[T](width, height, 0, 0)
	if err != nil {
		tb.Fatalf("NewPlane(%d, %d): %v", width, height, err)
	}
	p.Fill(T(0x5a))

	return p.FullRegion()
}
