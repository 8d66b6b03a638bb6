package testutil

import (
	"testing"

	"github.com/cwbudde/algo-mc/frame"
)

// RequireRegionEqual fails tb at the first sample where got and want differ
// within width x height.
func RequireRegionEqual[T frame.Pixel](tb testing.TB, got, want *frame.Region[T], width, height int) {
	tb.Helper()
	for y := 0; y < height; y++ {
		g := got.Row(y)[:width]
		w := want.Row(y)[:width]
		for x := range g {
			if g[x] != w[x] {
				tb.Fatalf("sample (%d,%d): got %d, want %d", x, y, g[x], w[x])
			}
		}
	}
}

// RequireInt16Equal fails tb if got and want differ in length or content.
func RequireInt16Equal(tb testing.TB, got, want []int16) {
	tb.Helper()
	if len(got) != len(want) {
		tb.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			tb.Fatalf("index %d: got %d, want %d", i, got[i], want[i])
		}
	}
}

// RequireInRange fails tb if any sample of the width x height area of r is
// above maxValue.
func RequireInRange[T frame.Pixel](tb testing.TB, r *frame.Region[T], width, height, maxValue int) {
	tb.Helper()
	for y := 0; y < height; y++ {
		for x, v := range r.Row(y)[:width] {
			if int(v) > maxValue {
				tb.Fatalf("sample (%d,%d) = %d exceeds %d", x, y, v, maxValue)
			}
		}
	}
}
