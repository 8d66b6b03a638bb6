package mc

import (
	"fmt"
	"unsafe"

	"github.com/cwbudde/algo-mc/frame"
	"github.com/cwbudde/algo-mc/mc/internal/arch/registry"
	"github.com/cwbudde/algo-mc/mc/internal/filter"
	"github.com/cwbudde/algo-mc/mc/internal/reference"
)

// Reach of the 8-tap filters around a block on each filtered axis.
const (
	reachBefore = filter.Taps/2 - 1
	reachAfter  = filter.Taps / 2
)

// checkBlock panics unless width x height is a supported block size.
func checkBlock(op string, width, height int) {
	if width <= 0 || height <= 0 || width > reference.MaxBlockSize || height > reference.MaxBlockSize {
		panic(fmt.Sprintf("mc: %s block %dx%d outside [1, %d]", op, width, height, reference.MaxBlockSize))
	}
}

// checkPhase panics unless both phases are in [0, filter.Phases).
func checkPhase(op string, colFrac, rowFrac int) {
	if colFrac < 0 || colFrac >= filter.Phases || rowFrac < 0 || rowFrac >= filter.Phases {
		panic(fmt.Sprintf("mc: %s phase (%d,%d) outside [0, %d)", op, colFrac, rowFrac, filter.Phases))
	}
}

// checkBitDepth panics unless bitDepth is stored in T cells: 8 for uint8,
// 10 or 12 for uint16.
func checkBitDepth[T frame.Pixel](op string, bitDepth int) {
	switch frame.TypeOf[T]() {
	case frame.PixelU8:
		if bitDepth == 8 {
			return
		}
	case frame.PixelU16:
		if bitDepth == 10 || bitDepth == 12 {
			return
		}
	}
	panic(fmt.Sprintf("mc: %s bit depth %d not supported for %s samples", op, bitDepth, frame.TypeOf[T]()))
}

// readArea is the part of the source a filter at (colFrac, rowFrac) reads
// for one block, relative to the block anchor.
type readArea struct {
	left, top     int
	width, height int
}

func sourceArea(width, height, colFrac, rowFrac int) readArea {
	a := readArea{width: width, height: height}
	if colFrac != 0 {
		a.left = reachBefore
		a.width += reachBefore + reachAfter
	}
	if rowFrac != 0 {
		a.top = reachBefore
		a.height += reachBefore + reachAfter
	}

	return a
}

// checkSource panics unless the cells the filter reads around src are
// inside the allocation, and returns their extent.
func checkSource[T frame.Pixel](op string, src frame.Slice[T], width, height, colFrac, rowFrac int) readArea {
	a := sourceArea(width, height, colFrac, rowFrac)
	if !src.Reach(a.left, a.top, a.width, a.height) {
		panic(fmt.Sprintf("mc: %s source (%d,%d) does not hold %dx%d samples around the block",
			op, src.X(), src.Y(), a.width, a.height))
	}

	return a
}

// sourceRow returns row r of the read area a around src.
func sourceRow[T frame.Pixel](src frame.Slice[T], a readArea, r int) []T {
	return src.Span(a.left, a.top-r, a.width, 1)
}

// blockOverlapsSource reports whether any cell of the width x height block
// of dst is also a cell the filter reads. Rows are compared one by one, so
// blocks that only interleave through the stride gaps of one plane are
// disjoint.
func blockOverlapsSource[T frame.Pixel](dst *frame.Region[T], width, height int, src frame.Slice[T], a readArea) bool {
	if !frame.Overlaps(dst.Span(), src.Span(a.left, a.top, a.width, a.height)) {
		return false
	}
	for r := 0; r < height; r++ {
		out := dst.Row(r)[:width]
		for sr := 0; sr < a.height; sr++ {
			if frame.Overlaps(out, sourceRow(src, a, sr)) {
				return true
			}
		}
	}

	return false
}

// intermediateOverlapsSource reports whether tmp shares a cell with the
// area the filter reads.
func intermediateOverlapsSource[T frame.Pixel](tmp []int16, src frame.Slice[T], a readArea) bool {
	if !frame.Overlaps(tmp, src.Span(a.left, a.top, a.width, a.height)) {
		return false
	}
	for sr := 0; sr < a.height; sr++ {
		if frame.Overlaps(tmp, sourceRow(src, a, sr)) {
			return true
		}
	}

	return false
}

// blockOverlapsIntermediate reports whether a row of the block shares a cell
// with tmp.
func blockOverlapsIntermediate[T frame.Pixel](dst *frame.Region[T], width, height int, tmp []int16) bool {
	if !frame.Overlaps(dst.Span(), tmp) {
		return false
	}
	for r := 0; r < height; r++ {
		if frame.Overlaps(dst.Row(r)[:width], tmp) {
			return true
		}
	}

	return false
}

func checkDestination[T frame.Pixel](op string, dst *frame.Region[T], width, height int) {
	if width > dst.Width() || height > dst.Height() {
		panic(fmt.Sprintf("mc: %s block %dx%d exceeds destination %dx%d",
			op, width, height, dst.Width(), dst.Height()))
	}
}

func checkIntermediate(op string, tmp []int16, width, height int) {
	if len(tmp) < width*height {
		panic(fmt.Sprintf("mc: %s intermediate buffer holds %d cells, need %d", op, len(tmp), width*height))
	}
}

// checkPut panics unless a put call is inside every buffer it touches and
// its destination shares no cell with what it reads. Every dispatch path
// runs it before choosing a routine.
func checkPut[T frame.Pixel](
	dst *frame.Region[T], src frame.Slice[T], width, height, colFrac, rowFrac, bitDepth int,
) {
	checkBlock("put", width, height)
	checkPhase("put", colFrac, rowFrac)
	checkBitDepth[T]("put", bitDepth)
	checkDestination("put", dst, width, height)
	a := checkSource("put", src, width, height, colFrac, rowFrac)
	if blockOverlapsSource(dst, width, height, src, a) {
		panic("mc: put destination overlaps its source")
	}
}

// checkPrepare is checkPut for prepare calls.
func checkPrepare[T frame.Pixel](
	tmp []int16, src frame.Slice[T], width, height, colFrac, rowFrac, bitDepth int,
) {
	checkBlock("prepare", width, height)
	checkPhase("prepare", colFrac, rowFrac)
	checkBitDepth[T]("prepare", bitDepth)
	checkIntermediate("prepare", tmp, width, height)
	a := checkSource("prepare", src, width, height, colFrac, rowFrac)
	if intermediateOverlapsSource(tmp[:width*height], src, a) {
		panic("mc: prepare intermediate buffer overlaps its source")
	}
}

// checkAverage is checkPut for average calls.
func checkAverage[T frame.Pixel](dst *frame.Region[T], tmp1, tmp2 []int16, width, height, bitDepth int) {
	checkBlock("average", width, height)
	checkBitDepth[T]("average", bitDepth)
	checkDestination("average", dst, width, height)
	checkIntermediate("average", tmp1, width, height)
	checkIntermediate("average", tmp2, width, height)
	n := width * height
	if blockOverlapsIntermediate(dst, width, height, tmp1[:n]) ||
		blockOverlapsIntermediate(dst, width, height, tmp2[:n]) {
		panic("mc: average destination overlaps an intermediate buffer")
	}
}

// invokePut runs one accelerated put routine on arguments checkPut has
// accepted. Exactly one of narrow and wide is non-nil and matches T.
func invokePut[T frame.Pixel](
	narrow registry.PutFn, wide registry.PutWideFn,
	dst *frame.Region[T], src frame.Slice[T], width, height, colFrac, rowFrac, bitDepth int,
) {
	dstPtr := unsafe.Pointer(dst.Ptr())
	srcPtr := unsafe.Pointer(src.Ptr())
	dstStride := frame.AsmStride[T](dst.Stride())
	srcStride := frame.AsmStride[T](src.Stride())
	w, h, mx, my := int32(width), int32(height), int32(colFrac), int32(rowFrac)

	if narrow != nil {
		narrow((*uint8)(dstPtr), dstStride, (*uint8)(srcPtr), srcStride, w, h, mx, my)
		return
	}
	wide((*uint16)(dstPtr), dstStride, (*uint16)(srcPtr), srcStride, w, h, mx, my, int32(bitDepth))
}

// invokePrep runs one accelerated prep routine on arguments checkPrepare
// has accepted.
func invokePrep[T frame.Pixel](
	narrow registry.PrepFn, wide registry.PrepWideFn,
	tmp []int16, src frame.Slice[T], width, height, colFrac, rowFrac, bitDepth int,
) {
	srcPtr := unsafe.Pointer(src.Ptr())
	srcStride := frame.AsmStride[T](src.Stride())
	w, h, mx, my := int32(width), int32(height), int32(colFrac), int32(rowFrac)

	if narrow != nil {
		narrow(&tmp[0], (*uint8)(srcPtr), srcStride, w, h, mx, my)
		return
	}
	wide(&tmp[0], (*uint16)(srcPtr), srcStride, w, h, mx, my, int32(bitDepth))
}

// invokeAvg runs one accelerated averaging routine on arguments
// checkAverage has accepted.
func invokeAvg[T frame.Pixel](
	narrow registry.AvgFn, wide registry.AvgWideFn,
	dst *frame.Region[T], tmp1, tmp2 []int16, width, height, bitDepth int,
) {
	dstPtr := unsafe.Pointer(dst.Ptr())
	dstStride := frame.AsmStride[T](dst.Stride())
	w, h := int32(width), int32(height)

	if narrow != nil {
		narrow((*uint8)(dstPtr), dstStride, &tmp1[0], &tmp2[0], w, h)
		return
	}
	wide((*uint16)(dstPtr), dstStride, &tmp1[0], &tmp2[0], w, h, int32(bitDepth))
}
