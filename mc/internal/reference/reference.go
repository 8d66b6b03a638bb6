// Package reference is the portable motion compensation implementation.
//
// It is the fallback for every (level, mode pair, pixel type) combination
// without an accelerated routine, and the baseline accelerated routines are
// verified against. Any width and height in [1, 128] is supported; the last
// column group of the 2D filter may be partial.
package reference

import (
	"github.com/cwbudde/algo-mc/frame"
	"github.com/cwbudde/algo-mc/mc/internal/filter"
)

// MaxBlockSize is the largest supported block width and height.
const MaxBlockSize = 128

// groupWidth is the column group processed per pass of the 2D filter.
const groupWidth = 8

type sample interface {
	uint8 | uint16 | int16
}

// IntermediateBits returns the extra precision kept in prepared buffers.
func IntermediateBits(bitDepth int) int {
	if bitDepth == 12 {
		return 2
	}

	return 4
}

func roundShift(v int32, bit int) int32 {
	return (v + (1 << bit >> 1)) >> bit
}

func clip(v, maxValue int32) int32 {
	return max(0, min(v, maxValue))
}

// run applies taps to the samples at data[off], data[off+step], ...
func run[S sample](data []S, off, step int, taps *[filter.Taps]int32) int32 {
	var sum int32
	for i, c := range taps {
		sum += c * int32(data[off+i*step])
	}

	return sum
}

// Put writes the width x height sub-pixel interpolation of src at phase
// (colFrac, rowFrac) into dst.
func Put[T frame.Pixel](
	dst *frame.Region[T], src frame.Slice[T], width, height, colFrac, rowFrac int,
	modeX, modeY filter.Mode, bitDepth int,
) {
	data := src.Plane().Data()
	stride := src.Stride()
	yTaps := filter.Coefficients(modeY, rowFrac, height)
	xTaps := filter.Coefficients(modeX, colFrac, width)
	maxValue := int32(frame.MaxValue(bitDepth))
	ib := IntermediateBits(bitDepth)

	switch {
	case colFrac == 0 && rowFrac == 0:
		for r := 0; r < height; r++ {
			copy(dst.Row(r)[:width], src.Row(r)[:width])
		}
	case colFrac == 0:
		base := src.GoUp(3).Offset()
		for r := 0; r < height; r++ {
			row := dst.Row(r)
			off := base + r*stride
			for c := 0; c < width; c++ {
				row[c] = T(clip(roundShift(run(data, off+c, stride, yTaps), 7), maxValue))
			}
		}
	case rowFrac == 0:
		base := src.GoLeft(3).Offset()
		for r := 0; r < height; r++ {
			row := dst.Row(r)
			off := base + r*stride
			for c := 0; c < width; c++ {
				v := roundShift(roundShift(run(data, off+c, 1, xTaps), 7-ib), ib)
				row[c] = T(clip(v, maxValue))
			}
		}
	default:
		var mid [groupWidth * (MaxBlockSize + 7)]int16
		base := src.GoLeft(3).GoUp(3).Offset()
		for cg := 0; cg < width; cg += groupWidth {
			cols := min(groupWidth, width-cg)
			horizontal(mid[:], data, base+cg, stride, cols, height+7, xTaps, ib)
			for r := 0; r < height; r++ {
				row := dst.Row(r)[cg:]
				for c := 0; c < cols; c++ {
					v := roundShift(run(mid[:], groupWidth*r+c, groupWidth, yTaps), 7+ib)
					row[c] = T(clip(v, maxValue))
				}
			}
		}
	}
}

// Prepare writes the width x height interpolation of src into tmp at
// intermediate precision, row-major with a stride of width.
func Prepare[T frame.Pixel](
	tmp []int16, src frame.Slice[T], width, height, colFrac, rowFrac int,
	modeX, modeY filter.Mode, bitDepth int,
) {
	data := src.Plane().Data()
	stride := src.Stride()
	yTaps := filter.Coefficients(modeY, rowFrac, height)
	xTaps := filter.Coefficients(modeX, colFrac, width)
	ib := IntermediateBits(bitDepth)

	switch {
	case colFrac == 0 && rowFrac == 0:
		for r := 0; r < height; r++ {
			row := src.Row(r)
			out := tmp[r*width : (r+1)*width]
			for c := range out {
				out[c] = int16(row[c]) << ib
			}
		}
	case colFrac == 0:
		base := src.GoUp(3).Offset()
		for r := 0; r < height; r++ {
			off := base + r*stride
			out := tmp[r*width : (r+1)*width]
			for c := range out {
				out[c] = int16(roundShift(run(data, off+c, stride, yTaps), 7-ib))
			}
		}
	case rowFrac == 0:
		base := src.GoLeft(3).Offset()
		for r := 0; r < height; r++ {
			off := base + r*stride
			out := tmp[r*width : (r+1)*width]
			for c := range out {
				out[c] = int16(roundShift(run(data, off+c, 1, xTaps), 7-ib))
			}
		}
	default:
		var mid [groupWidth * (MaxBlockSize + 7)]int16
		base := src.GoLeft(3).GoUp(3).Offset()
		for cg := 0; cg < width; cg += groupWidth {
			cols := min(groupWidth, width-cg)
			horizontal(mid[:], data, base+cg, stride, cols, height+7, xTaps, ib)
			for r := 0; r < height; r++ {
				out := tmp[r*width+cg:]
				for c := 0; c < cols; c++ {
					out[c] = int16(roundShift(run(mid[:], groupWidth*r+c, groupWidth, yTaps), 7))
				}
			}
		}
	}
}

// horizontal runs the first pass of the 2D filter for one column group.
func horizontal[T frame.Pixel](
	mid []int16, data []T, base, stride, cols, rows int, taps *[filter.Taps]int32, ib int,
) {
	for r := 0; r < rows; r++ {
		off := base + r*stride
		for c := 0; c < cols; c++ {
			mid[groupWidth*r+c] = int16(roundShift(run(data, off+c, 1, taps), 7-ib))
		}
	}
}

// Average combines two prepared buffers into dst with rounding and clamping
// to bitDepth.
func Average[T frame.Pixel](dst *frame.Region[T], tmp1, tmp2 []int16, width, height, bitDepth int) {
	maxValue := int32(frame.MaxValue(bitDepth))
	shift := IntermediateBits(bitDepth) + 1
	for r := 0; r < height; r++ {
		row := dst.Row(r)[:width]
		a := tmp1[r*width : (r+1)*width]
		b := tmp2[r*width : (r+1)*width]
		for c := range row {
			row[c] = T(clip(roundShift(int32(a[c])+int32(b[c]), shift), maxValue))
		}
	}
}
