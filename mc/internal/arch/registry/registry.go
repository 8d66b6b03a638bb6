// Package registry declares the linkage contract for accelerated motion
// compensation routines and builds the dispatch tables from them.
//
// Tier packages (sse2, ssse3, avx2, avx512, neon) register one Entry each
// from their init() functions: a declarative list of (mode pair, routine)
// associations for the slots the tier implements. Freeze turns the registrations into an
// immutable Tables value exactly once; later registrations panic.
package registry

import (
	"fmt"
	"sync"

	"github.com/cwbudde/algo-mc/internal/cpu"
	"github.com/cwbudde/algo-mc/mc/internal/filter"
)

// Routine signatures. Pointers address the top-left sample (or intermediate
// cell) of the block; strides are in bytes. Routines never allocate and
// never retain a pointer past the call.
type (
	// PutFn interpolates an 8-bit block.
	PutFn func(dst *uint8, dstStride int, src *uint8, srcStride int, w, h, mx, my int32)

	// PutWideFn interpolates a 16-bit-cell block at bitDepth.
	PutWideFn func(dst *uint16, dstStride int, src *uint16, srcStride int, w, h, mx, my, bitDepth int32)

	// PrepFn interpolates an 8-bit block into a w*h intermediate buffer.
	PrepFn func(tmp *int16, src *uint8, srcStride int, w, h, mx, my int32)

	// PrepWideFn interpolates a 16-bit-cell block into a w*h intermediate buffer.
	PrepWideFn func(tmp *int16, src *uint16, srcStride int, w, h, mx, my, bitDepth int32)

	// AvgFn averages two intermediate buffers into an 8-bit block.
	AvgFn func(dst *uint8, dstStride int, tmp1, tmp2 *int16, w, h int32)

	// AvgWideFn averages two intermediate buffers into a 16-bit-cell block.
	AvgWideFn func(dst *uint16, dstStride int, tmp1, tmp2 *int16, w, h, bitDepth int32)
)

// ModeFn associates a routine with the (horizontal, vertical) mode pair it
// implements.
type ModeFn[F any] struct {
	X, Y filter.Mode
	Fn   F
}

// Entry is the set of routines one capability level provides. Only the
// slots a tier actually implements are listed; everything else stays empty.
type Entry struct {
	// Name is a human-readable identifier for this implementation (e.g., "avx2", "neon").
	Name string

	// Level is the table row the routines are installed in.
	Level cpu.Level

	Put      []ModeFn[PutFn]
	PutWide  []ModeFn[PutWideFn]
	Prep     []ModeFn[PrepFn]
	PrepWide []ModeFn[PrepWideFn]

	Avg     AvgFn
	AvgWide AvgWideFn
}

// Tables are the six dispatch tables. A nil element means "no accelerated
// routine": the caller falls back to the portable reference.
type Tables struct {
	Put      [cpu.NumLevels][filter.NumModeSlots]PutFn
	PutWide  [cpu.NumLevels][filter.NumModeSlots]PutWideFn
	Prep     [cpu.NumLevels][filter.NumModeSlots]PrepFn
	PrepWide [cpu.NumLevels][filter.NumModeSlots]PrepWideFn
	Avg      [cpu.NumLevels]AvgFn
	AvgWide  [cpu.NumLevels]AvgWideFn

	names [cpu.NumLevels]string
}

// Name returns the name of the entry installed at level, or "" if the level
// contributes an empty row.
func (t *Tables) Name(level cpu.Level) string {
	return t.names[level.Index()]
}

// Registry collects tier entries until it is frozen.
type Registry struct {
	mu      sync.Mutex
	entries []Entry
	frozen  *Tables
}

// Global is the registry the tier packages register with.
var Global = &Registry{}

// Register adds a tier entry.
//
// This is typically called from init() functions in the tier packages. It
// panics if the registry is already frozen, if the level is invalid or the
// baseline, or if the level already has an entry.
func (r *Registry) Register(entry Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen != nil {
		panic("registry: Register called after tables were frozen")
	}
	if !entry.Level.Valid() {
		panic(fmt.Sprintf("registry: %q registered for invalid level %d", entry.Name, int(entry.Level)))
	}
	if entry.Level == cpu.LevelGeneric {
		panic(fmt.Sprintf("registry: %q registered for the baseline level", entry.Name))
	}
	for _, e := range r.entries {
		if e.Level == entry.Level {
			panic(fmt.Sprintf("registry: %q and %q both registered for %s", e.Name, entry.Name, entry.Level))
		}
	}

	r.entries = append(r.entries, entry)
}

// Freeze builds the dispatch tables from the registered entries. The first
// call builds them; every call returns the same value.
func (r *Registry) Freeze() *Tables {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen == nil {
		r.frozen = Build(r.entries)
	}

	return r.frozen
}

// ListEntries returns a copy of all registered entries.
// This function is primarily intended for testing and debugging.
func (r *Registry) ListEntries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries := make([]Entry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Build returns tables populated from entries. Every slot not named by an
// entry is nil. It panics if two routines claim the same slot.
func Build(entries []Entry) *Tables {
	t := &Tables{}
	for _, e := range entries {
		row := e.Level.Index()
		t.names[row] = e.Name
		install(&t.Put[row], e.Put, e.Name, "put")
		install(&t.PutWide[row], e.PutWide, e.Name, "put (wide)")
		install(&t.Prep[row], e.Prep, e.Name, "prep")
		install(&t.PrepWide[row], e.PrepWide, e.Name, "prep (wide)")
		t.Avg[row] = e.Avg
		t.AvgWide[row] = e.AvgWide
	}

	return t
}

func install[F any](row *[filter.NumModeSlots]F, fns []ModeFn[F], name, kind string) {
	var taken [filter.NumModeSlots]bool
	for _, m := range fns {
		idx := filter.ModeIndex(m.X, m.Y)
		if taken[idx] {
			panic(fmt.Sprintf("registry: %s %s lists %s/%s twice", name, kind, m.X, m.Y))
		}
		taken[idx] = true
		row[idx] = m.Fn
	}
}
