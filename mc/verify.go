package mc

import (
	"fmt"

	"github.com/cwbudde/algo-mc/frame"
	"github.com/cwbudde/algo-mc/mc/internal/reference"
)

// MismatchError describes the first sample where a dispatcher's result
// differs from the portable routines. [Verify] panics with it; it is never
// returned.
type MismatchError struct {
	Op    string // "put", "prepare" or "average"
	Level Level
	Row   int
	Col   int
	Got   int
	Want  int
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("mc: %s at level %s diverged from reference at row %d, col %d: got %d, want %d",
		e.Op, e.Level, e.Row, e.Col, e.Got, e.Want)
}

// scratch holds the reference copies of intermediate buffers.
var scratch = frame.NewPool()

// Verify wraps inner so that every call also runs the portable routines on
// a scratch copy of the output and compares the two results sample by
// sample. The first difference panics with a *MismatchError. Results are
// otherwise unchanged.
func Verify[T frame.Pixel](inner Dispatcher[T]) Dispatcher[T] {
	if v, ok := inner.(verifier[T]); ok {
		return v
	}

	return verifier[T]{inner: inner}
}

type verifier[T frame.Pixel] struct {
	inner Dispatcher[T]
}

func (v verifier[T]) Put(
	dst *frame.Region[T], src frame.Slice[T], width, height, colFrac, rowFrac int,
	modeX, modeY FilterMode, bitDepth int, level Level,
) {
	checkPut(dst, src, width, height, colFrac, rowFrac, bitDepth)

	want := dst.ScratchCopy()
	reference.Put(want, src, width, height, colFrac, rowFrac, modeX, modeY, bitDepth)
	v.inner.Put(dst, src, width, height, colFrac, rowFrac, modeX, modeY, bitDepth, level)
	requireRegionMatch("put", level, dst, want)
}

func (v verifier[T]) Prepare(
	tmp []int16, src frame.Slice[T], width, height, colFrac, rowFrac int,
	modeX, modeY FilterMode, bitDepth int, level Level,
) {
	checkPrepare(tmp, src, width, height, colFrac, rowFrac, bitDepth)

	n := width * height
	buf := scratch.Get(n)
	defer scratch.Put(buf)
	want := *buf

	reference.Prepare(want, src, width, height, colFrac, rowFrac, modeX, modeY, bitDepth)
	v.inner.Prepare(tmp, src, width, height, colFrac, rowFrac, modeX, modeY, bitDepth, level)

	got := tmp[:n]
	for i := range got {
		if got[i] != want[i] {
			panic(&MismatchError{
				Op: "prepare", Level: level,
				Row: i / width, Col: i % width,
				Got: int(got[i]), Want: int(want[i]),
			})
		}
	}
}

func (v verifier[T]) Average(
	dst *frame.Region[T], tmp1, tmp2 []int16, width, height, bitDepth int, level Level,
) {
	checkAverage(dst, tmp1, tmp2, width, height, bitDepth)

	want := dst.ScratchCopy()
	reference.Average(want, tmp1, tmp2, width, height, bitDepth)
	v.inner.Average(dst, tmp1, tmp2, width, height, bitDepth, level)
	requireRegionMatch("average", level, dst, want)
}

// requireRegionMatch compares the whole region, so writes outside the
// block are caught as well.
func requireRegionMatch[T frame.Pixel](op string, level Level, got, want *frame.Region[T]) {
	row, col, found := got.FirstMismatch(want)
	if !found {
		return
	}

	panic(&MismatchError{
		Op: op, Level: level,
		Row: row, Col: col,
		Got: int(got.Row(row)[col]), Want: int(want.Row(row)[col]),
	})
}
