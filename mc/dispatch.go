package mc

import (
	"github.com/cwbudde/algo-mc/frame"
	"github.com/cwbudde/algo-mc/mc/internal/filter"
	"github.com/cwbudde/algo-mc/mc/internal/reference"
)

// Dispatcher runs the motion compensation operations for one pixel type.
//
// Implementations are stateless with respect to the buffers they are given
// and safe for concurrent use on disjoint destinations.
type Dispatcher[T frame.Pixel] interface {
	// Put fills the width x height block of dst with the interpolation of
	// src at phase (colFrac, rowFrac), using modeX horizontally and modeY
	// vertically.
	Put(dst *frame.Region[T], src frame.Slice[T], width, height, colFrac, rowFrac int,
		modeX, modeY FilterMode, bitDepth int, level Level)

	// Prepare writes the same interpolation into tmp at intermediate
	// precision, row-major with a stride of width.
	Prepare(tmp []int16, src frame.Slice[T], width, height, colFrac, rowFrac int,
		modeX, modeY FilterMode, bitDepth int, level Level)

	// Average combines two prepared buffers into the width x height block
	// of dst.
	Average(dst *frame.Region[T], tmp1, tmp2 []int16, width, height, bitDepth int, level Level)
}

// Put interpolates a block with the default dispatcher.
//
// Widths and heights are in [1, 128], phases in [0, 16) and bitDepth is 8
// for uint8 samples and 10 or 12 for uint16 samples. src must hold the 3
// samples before and 4 after the block on every axis with a non-zero
// phase. Violations panic.
func Put[T frame.Pixel](
	dst *frame.Region[T], src frame.Slice[T], width, height, colFrac, rowFrac int,
	modeX, modeY FilterMode, bitDepth int, level Level,
) {
	defaultDispatcher[T]().Put(dst, src, width, height, colFrac, rowFrac, modeX, modeY, bitDepth, level)
}

// Prepare interpolates a block into tmp with the default dispatcher. tmp
// must hold at least width*height cells.
func Prepare[T frame.Pixel](
	tmp []int16, src frame.Slice[T], width, height, colFrac, rowFrac int,
	modeX, modeY FilterMode, bitDepth int, level Level,
) {
	defaultDispatcher[T]().Prepare(tmp, src, width, height, colFrac, rowFrac, modeX, modeY, bitDepth, level)
}

// Average combines tmp1 and tmp2 into dst with the default dispatcher.
func Average[T frame.Pixel](dst *frame.Region[T], tmp1, tmp2 []int16, width, height, bitDepth int, level Level) {
	defaultDispatcher[T]().Average(dst, tmp1, tmp2, width, height, bitDepth, level)
}

// defaultDispatcher is the table dispatcher, verified in mcverify builds.
func defaultDispatcher[T frame.Pixel]() Dispatcher[T] {
	if verifyByDefault {
		return verifier[T]{inner: tableDispatcher[T]{}}
	}

	return tableDispatcher[T]{}
}

// Reference returns a dispatcher that always runs the portable routines,
// whatever level it is given.
func Reference[T frame.Pixel]() Dispatcher[T] {
	return referenceDispatcher[T]{}
}

type referenceDispatcher[T frame.Pixel] struct{}

func (referenceDispatcher[T]) Put(
	dst *frame.Region[T], src frame.Slice[T], width, height, colFrac, rowFrac int,
	modeX, modeY FilterMode, bitDepth int, _ Level,
) {
	checkPut(dst, src, width, height, colFrac, rowFrac, bitDepth)
	reference.Put(dst, src, width, height, colFrac, rowFrac, modeX, modeY, bitDepth)
}

func (referenceDispatcher[T]) Prepare(
	tmp []int16, src frame.Slice[T], width, height, colFrac, rowFrac int,
	modeX, modeY FilterMode, bitDepth int, _ Level,
) {
	checkPrepare(tmp, src, width, height, colFrac, rowFrac, bitDepth)
	reference.Prepare(tmp, src, width, height, colFrac, rowFrac, modeX, modeY, bitDepth)
}

func (referenceDispatcher[T]) Average(
	dst *frame.Region[T], tmp1, tmp2 []int16, width, height, bitDepth int, _ Level,
) {
	checkAverage(dst, tmp1, tmp2, width, height, bitDepth)
	reference.Average(dst, tmp1, tmp2, width, height, bitDepth)
}

// tableDispatcher looks each call up in the frozen dispatch tables and falls
// back to the portable routines for empty slots.
type tableDispatcher[T frame.Pixel] struct{}

func (tableDispatcher[T]) Put(
	dst *frame.Region[T], src frame.Slice[T], width, height, colFrac, rowFrac int,
	modeX, modeY FilterMode, bitDepth int, level Level,
) {
	checkPut(dst, src, width, height, colFrac, rowFrac, bitDepth)
	if level.Valid() {
		t := dispatchTables()
		row, slot := level.Index(), filter.ModeIndex(modeX, modeY)
		switch frame.TypeOf[T]() {
		case frame.PixelU8:
			if fn := t.Put[row][slot]; fn != nil {
				invokePut(fn, nil, dst, src, width, height, colFrac, rowFrac, bitDepth)
				return
			}
		case frame.PixelU16:
			if fn := t.PutWide[row][slot]; fn != nil {
				invokePut(nil, fn, dst, src, width, height, colFrac, rowFrac, bitDepth)
				return
			}
		}
	}

	reference.Put(dst, src, width, height, colFrac, rowFrac, modeX, modeY, bitDepth)
}

func (tableDispatcher[T]) Prepare(
	tmp []int16, src frame.Slice[T], width, height, colFrac, rowFrac int,
	modeX, modeY FilterMode, bitDepth int, level Level,
) {
	checkPrepare(tmp, src, width, height, colFrac, rowFrac, bitDepth)
	if level.Valid() {
		t := dispatchTables()
		row, slot := level.Index(), filter.ModeIndex(modeX, modeY)
		switch frame.TypeOf[T]() {
		case frame.PixelU8:
			if fn := t.Prep[row][slot]; fn != nil {
				invokePrep(fn, nil, tmp, src, width, height, colFrac, rowFrac, bitDepth)
				return
			}
		case frame.PixelU16:
			if fn := t.PrepWide[row][slot]; fn != nil {
				invokePrep(nil, fn, tmp, src, width, height, colFrac, rowFrac, bitDepth)
				return
			}
		}
	}

	reference.Prepare(tmp, src, width, height, colFrac, rowFrac, modeX, modeY, bitDepth)
}

func (tableDispatcher[T]) Average(
	dst *frame.Region[T], tmp1, tmp2 []int16, width, height, bitDepth int, level Level,
) {
	checkAverage(dst, tmp1, tmp2, width, height, bitDepth)
	if level.Valid() {
		t := dispatchTables()
		row := level.Index()
		switch frame.TypeOf[T]() {
		case frame.PixelU8:
			if fn := t.Avg[row]; fn != nil {
				invokeAvg(fn, nil, dst, tmp1, tmp2, width, height, bitDepth)
				return
			}
		case frame.PixelU16:
			if fn := t.AvgWide[row]; fn != nil {
				invokeAvg(nil, fn, dst, tmp1, tmp2, width, height, bitDepth)
				return
			}
		}
	}

	reference.Average(dst, tmp1, tmp2, width, height, bitDepth)
}
