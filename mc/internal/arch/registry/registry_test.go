package registry

import (
	"testing"

	"github.com/cwbudde/algo-mc/internal/cpu"
	"github.com/cwbudde/algo-mc/mc/internal/filter"
)

func dummyPut(dst *uint8, dstStride int, src *uint8, srcStride int, w, h, mx, my int32) {}

func dummyAvg(dst *uint8, dstStride int, tmp1, tmp2 *int16, w, h int32) {}

func TestBuildPopulatesOnlyListedSlots(t *testing.T) {
	tables := Build([]Entry{{
		Name:  "neon",
		Level: cpu.LevelNEON,
		Put: []ModeFn[PutFn]{
			{X: filter.Regular, Y: filter.Sharp, Fn: dummyPut},
			{X: filter.Bilinear, Y: filter.Bilinear, Fn: dummyPut},
		},
		Avg: dummyAvg,
	}})

	for _, l := range cpu.Levels() {
		for slot := 0; slot < filter.NumModeSlots; slot++ {
			want := l == cpu.LevelNEON &&
				(slot == filter.ModeIndex(filter.Regular, filter.Sharp) ||
					slot == filter.ModeIndex(filter.Bilinear, filter.Bilinear))
			if got := tables.Put[l.Index()][slot] != nil; got != want {
				t.Fatalf("%s slot %d populated = %v, want %v", l, slot, got, want)
			}
			if tables.PutWide[l.Index()][slot] != nil || tables.Prep[l.Index()][slot] != nil ||
				tables.PrepWide[l.Index()][slot] != nil {
				t.Fatalf("%s slot %d: unexpected routine in an unlisted table", l, slot)
			}
		}
		if got := tables.Avg[l.Index()] != nil; got != (l == cpu.LevelNEON) {
			t.Fatalf("%s avg populated = %v", l, got)
		}
		if tables.AvgWide[l.Index()] != nil {
			t.Fatalf("%s wide avg unexpectedly populated", l)
		}
	}

	if tables.Name(cpu.LevelNEON) != "neon" || tables.Name(cpu.LevelGeneric) != "" {
		t.Fatalf("names = %q/%q", tables.Name(cpu.LevelNEON), tables.Name(cpu.LevelGeneric))
	}
}

func TestBuildEmptyIsAllNil(t *testing.T) {
	tables := Build(nil)
	for row := range tables.Put {
		for slot := range tables.Put[row] {
			if tables.Put[row][slot] != nil || tables.Prep[row][slot] != nil {
				t.Fatalf("row %d slot %d populated in empty tables", row, slot)
			}
		}
	}
}

func TestFreezeReturnsSameTables(t *testing.T) {
	reg := &Registry{}
	reg.Register(Entry{Name: "avx2", Level: cpu.LevelAVX2, Avg: dummyAvg})

	a := reg.Freeze()
	b := reg.Freeze()
	if a != b {
		t.Fatal("Freeze built the tables twice")
	}
	if a.Avg[cpu.LevelAVX2.Index()] == nil {
		t.Fatal("registered routine missing from frozen tables")
	}
	if len(reg.ListEntries()) != 1 {
		t.Fatalf("ListEntries = %d entries, want 1", len(reg.ListEntries()))
	}
}

func requirePanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("%s: expected panic", name)
		}
	}()
	fn()
}

func TestRegisterRejects(t *testing.T) {
	requirePanic(t, "after freeze", func() {
		reg := &Registry{}
		reg.Freeze()
		reg.Register(Entry{Name: "late", Level: cpu.LevelSSE2})
	})
	requirePanic(t, "baseline level", func() {
		(&Registry{}).Register(Entry{Name: "generic", Level: cpu.LevelGeneric})
	})
	requirePanic(t, "invalid level", func() {
		(&Registry{}).Register(Entry{Name: "bogus", Level: cpu.Level(cpu.NumLevels)})
	})
	requirePanic(t, "duplicate level", func() {
		reg := &Registry{}
		reg.Register(Entry{Name: "a", Level: cpu.LevelAVX2})
		reg.Register(Entry{Name: "b", Level: cpu.LevelAVX2})
	})
	requirePanic(t, "duplicate slot", func() {
		Build([]Entry{{
			Name:  "dup",
			Level: cpu.LevelSSSE3,
			Put: []ModeFn[PutFn]{
				{X: filter.Smooth, Y: filter.Smooth, Fn: dummyPut},
				{X: filter.Smooth, Y: filter.Smooth, Fn: dummyPut},
			},
		}})
	})
}
