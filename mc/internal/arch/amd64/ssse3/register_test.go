//go:build amd64 && !purego

package ssse3

import (
	"testing"

	"github.com/cwbudde/algo-mc/frame"
	"github.com/cwbudde/algo-mc/internal/cpu"
	"github.com/cwbudde/algo-mc/internal/testutil"
	"github.com/cwbudde/algo-mc/mc/internal/arch/registry"
	"github.com/cwbudde/algo-mc/mc/internal/filter"
	"github.com/cwbudde/algo-mc/mc/internal/reference"
)

// wantWide reports whether this level provides 16-bit-cell routines.
const wantWide = false

func registered(t *testing.T) registry.Entry {
	t.Helper()
	for _, e := range registry.Global.ListEntries() {
		if e.Level == cpu.LevelSSSE3 {
			return e
		}
	}
	t.Fatal("no entry registered for ssse3")

	return registry.Entry{}
}

func TestRegisterCoverage(t *testing.T) {
	entry := registered(t)
	if entry.Name != "ssse3" {
		t.Fatalf("Name = %q, want %q", entry.Name, "ssse3")
	}

	tables := registry.Build([]registry.Entry{entry})
	row := cpu.LevelSSSE3.Index()
	for _, x := range filter.Modes() {
		for _, y := range filter.Modes() {
			slot := filter.ModeIndex(x, y)
			mixed := (x == filter.Bilinear) != (y == filter.Bilinear)
			if got := tables.Put[row][slot] != nil; got == mixed {
				t.Fatalf("put %s/%s populated = %v", x, y, got)
			}
			if got := tables.Prep[row][slot] != nil; got == mixed {
				t.Fatalf("prep %s/%s populated = %v", x, y, got)
			}
			if got := tables.PutWide[row][slot] != nil; got != (wantWide && !mixed) {
				t.Fatalf("wide put %s/%s populated = %v", x, y, got)
			}
		}
	}
	if tables.Avg[row] == nil {
		t.Fatal("8-bit average missing")
	}
	if got := tables.AvgWide[row] != nil; got != wantWide {
		t.Fatalf("wide average populated = %v", got)
	}
}

func TestPutMatchesReference(t *testing.T) {
	entry := registered(t)
	src := testutil.DeterministicPlane[uint8](t, 21, 64, 64, 8)
	s := testutil.Source(t, src, 3, 3)

	for _, m := range entry.Put {
		for _, size := range [][2]int{{4, 4}, {16, 8}, {64, 32}} {
			w, h := size[0], size[1]
			want := testutil.Destination[uint8](t, w, h)
			reference.Put(want, s, w, h, 6, 10, m.X, m.Y, 8)

			got := testutil.Destination[uint8](t, w, h)
			m.Fn(got.Ptr(), frame.AsmStride[uint8](got.Stride()), s.Ptr(), frame.AsmStride[uint8](s.Stride()),
				int32(w), int32(h), 6, 10)
			testutil.RequireRegionEqual(t, got, want, w, h)
		}
	}
}
