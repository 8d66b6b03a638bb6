// Package kernel builds the raw-pointer routines installed by the tier
// packages.
//
// Each constructor returns a routine specialized for one mode pair and one
// column-group width (lanes). Routines address samples with unsafe.Add from
// the block origin: the 8-tap filters read 3 samples before and 4 after the
// block on each filtered axis, so callers must guarantee that reach is
// inside the allocation. Results are bit-exact with the portable reference
// for every width, height, phase and bit depth it supports.
package kernel

import (
	"unsafe"

	"github.com/cwbudde/algo-mc/mc/internal/arch/registry"
	"github.com/cwbudde/algo-mc/mc/internal/filter"
)

// MaxLanes is the widest column group a routine may process per pass.
const MaxLanes = 64

// maxBlock is the largest supported block height.
const maxBlock = 128

type cell interface {
	uint8 | uint16
}

func intermediateBits(bitDepth int) int {
	if bitDepth == 12 {
		return 2
	}

	return 4
}

func roundShift(v int32, bit int) int32 {
	return (v + (1 << bit >> 1)) >> bit
}

func clip(v, maxValue int32) int32 {
	if v < 0 {
		return 0
	}
	if v > maxValue {
		return maxValue
	}

	return v
}

func checkLanes(lanes int) {
	if lanes <= 0 || lanes > MaxLanes {
		panic("kernel: lanes out of range")
	}
}

func load[P cell](p unsafe.Pointer, off int) int32 {
	return int32(*(*P)(unsafe.Add(p, off)))
}

func store[P cell](p unsafe.Pointer, off int, v int32) {
	*(*P)(unsafe.Add(p, off)) = P(v)
}

// tap8 applies the taps to eight samples step bytes apart.
func tap8[P cell](p unsafe.Pointer, step int, t *[filter.Taps]int32) int32 {
	return t[0]*load[P](p, 0) +
		t[1]*load[P](p, step) +
		t[2]*load[P](p, 2*step) +
		t[3]*load[P](p, 3*step) +
		t[4]*load[P](p, 4*step) +
		t[5]*load[P](p, 5*step) +
		t[6]*load[P](p, 6*step) +
		t[7]*load[P](p, 7*step)
}

// tapMid applies the taps down one column of the intermediate buffer.
func tapMid(mid []int16, at, lanes int, t *[filter.Taps]int32) int32 {
	m := mid[at : at+7*lanes+1]
	return t[0]*int32(m[0]) +
		t[1]*int32(m[lanes]) +
		t[2]*int32(m[2*lanes]) +
		t[3]*int32(m[3*lanes]) +
		t[4]*int32(m[4*lanes]) +
		t[5]*int32(m[5*lanes]) +
		t[6]*int32(m[6*lanes]) +
		t[7]*int32(m[7*lanes])
}

// firstPass runs the horizontal filter for one column group of the 2D
// case, covering the 3 rows above and 4 below the block.
func firstPass[P cell](
	mid []int16, src unsafe.Pointer, srcStride, cg, cols, h, lanes int,
	xTaps *[filter.Taps]int32, ib int,
) {
	size := int(unsafe.Sizeof(P(0)))
	base := unsafe.Add(src, -3*srcStride-3*size+cg*size)
	for r := 0; r < h+7; r++ {
		in := unsafe.Add(base, r*srcStride)
		out := mid[lanes*r : lanes*r+cols]
		for c := range out {
			out[c] = int16(roundShift(tap8[P](unsafe.Add(in, c*size), size, xTaps), 7-ib))
		}
	}
}

func put[P cell](
	dst unsafe.Pointer, dstStride int, src unsafe.Pointer, srcStride int,
	w, h, mx, my int, modeX, modeY filter.Mode, bitDepth, lanes int,
) {
	size := int(unsafe.Sizeof(P(0)))
	xTaps := filter.Coefficients(modeX, mx, w)
	yTaps := filter.Coefficients(modeY, my, h)
	ib := intermediateBits(bitDepth)
	maxValue := int32(1)<<bitDepth - 1

	switch {
	case mx == 0 && my == 0:
		rowBytes := w * size
		for r := 0; r < h; r++ {
			out := unsafe.Slice((*byte)(unsafe.Add(dst, r*dstStride)), rowBytes)
			in := unsafe.Slice((*byte)(unsafe.Add(src, r*srcStride)), rowBytes)
			copy(out, in)
		}
	case mx == 0:
		base := unsafe.Add(src, -3*srcStride)
		for r := 0; r < h; r++ {
			in := unsafe.Add(base, r*srcStride)
			out := unsafe.Add(dst, r*dstStride)
			for c := 0; c < w; c++ {
				v := roundShift(tap8[P](unsafe.Add(in, c*size), srcStride, yTaps), 7)
				store[P](out, c*size, clip(v, maxValue))
			}
		}
	case my == 0:
		base := unsafe.Add(src, -3*size)
		for r := 0; r < h; r++ {
			in := unsafe.Add(base, r*srcStride)
			out := unsafe.Add(dst, r*dstStride)
			for c := 0; c < w; c++ {
				v := roundShift(roundShift(tap8[P](unsafe.Add(in, c*size), size, xTaps), 7-ib), ib)
				store[P](out, c*size, clip(v, maxValue))
			}
		}
	default:
		var mid [MaxLanes * (maxBlock + 7)]int16
		for cg := 0; cg < w; cg += lanes {
			cols := min(lanes, w-cg)
			firstPass[P](mid[:], src, srcStride, cg, cols, h, lanes, xTaps, ib)
			for r := 0; r < h; r++ {
				out := unsafe.Add(dst, r*dstStride+cg*size)
				for c := 0; c < cols; c++ {
					v := roundShift(tapMid(mid[:], lanes*r+c, lanes, yTaps), 7+ib)
					store[P](out, c*size, clip(v, maxValue))
				}
			}
		}
	}
}

func prep[P cell](
	tmp *int16, src unsafe.Pointer, srcStride int,
	w, h, mx, my int, modeX, modeY filter.Mode, bitDepth, lanes int,
) {
	size := int(unsafe.Sizeof(P(0)))
	xTaps := filter.Coefficients(modeX, mx, w)
	yTaps := filter.Coefficients(modeY, my, h)
	ib := intermediateBits(bitDepth)
	out := unsafe.Slice(tmp, w*h)

	switch {
	case mx == 0 && my == 0:
		for r := 0; r < h; r++ {
			in := unsafe.Add(src, r*srcStride)
			row := out[r*w : (r+1)*w]
			for c := range row {
				row[c] = int16(load[P](in, c*size)) << ib
			}
		}
	case mx == 0:
		base := unsafe.Add(src, -3*srcStride)
		for r := 0; r < h; r++ {
			in := unsafe.Add(base, r*srcStride)
			row := out[r*w : (r+1)*w]
			for c := range row {
				row[c] = int16(roundShift(tap8[P](unsafe.Add(in, c*size), srcStride, yTaps), 7-ib))
			}
		}
	case my == 0:
		base := unsafe.Add(src, -3*size)
		for r := 0; r < h; r++ {
			in := unsafe.Add(base, r*srcStride)
			row := out[r*w : (r+1)*w]
			for c := range row {
				row[c] = int16(roundShift(tap8[P](unsafe.Add(in, c*size), size, xTaps), 7-ib))
			}
		}
	default:
		var mid [MaxLanes * (maxBlock + 7)]int16
		for cg := 0; cg < w; cg += lanes {
			cols := min(lanes, w-cg)
			firstPass[P](mid[:], src, srcStride, cg, cols, h, lanes, xTaps, ib)
			for r := 0; r < h; r++ {
				row := out[r*w+cg : r*w+cg+cols]
				for c := range row {
					row[c] = int16(roundShift(tapMid(mid[:], lanes*r+c, lanes, yTaps), 7))
				}
			}
		}
	}
}

func avg[P cell](dst unsafe.Pointer, dstStride int, tmp1, tmp2 *int16, w, h, bitDepth, lanes int) {
	size := int(unsafe.Sizeof(P(0)))
	maxValue := int32(1)<<bitDepth - 1
	shift := intermediateBits(bitDepth) + 1
	a := unsafe.Slice(tmp1, w*h)
	b := unsafe.Slice(tmp2, w*h)

	for r := 0; r < h; r++ {
		out := unsafe.Add(dst, r*dstStride)
		ra := a[r*w : (r+1)*w]
		rb := b[r*w : (r+1)*w]
		for cg := 0; cg < w; cg += lanes {
			end := min(cg+lanes, w)
			for c := cg; c < end; c++ {
				v := roundShift(int32(ra[c])+int32(rb[c]), shift)
				store[P](out, c*size, clip(v, maxValue))
			}
		}
	}
}

// PutU8 returns an 8-bit put routine for the mode pair (x, y).
func PutU8(x, y filter.Mode, lanes int) registry.PutFn {
	checkLanes(lanes)
	return func(dst *uint8, dstStride int, src *uint8, srcStride int, w, h, mx, my int32) {
		put[uint8](unsafe.Pointer(dst), dstStride, unsafe.Pointer(src), srcStride,
			int(w), int(h), int(mx), int(my), x, y, 8, lanes)
	}
}

// PutU16 returns a 16-bit-cell put routine for the mode pair (x, y).
func PutU16(x, y filter.Mode, lanes int) registry.PutWideFn {
	checkLanes(lanes)
	return func(dst *uint16, dstStride int, src *uint16, srcStride int, w, h, mx, my, bitDepth int32) {
		put[uint16](unsafe.Pointer(dst), dstStride, unsafe.Pointer(src), srcStride,
			int(w), int(h), int(mx), int(my), x, y, int(bitDepth), lanes)
	}
}

// PrepU8 returns an 8-bit prep routine for the mode pair (x, y).
func PrepU8(x, y filter.Mode, lanes int) registry.PrepFn {
	checkLanes(lanes)
	return func(tmp *int16, src *uint8, srcStride int, w, h, mx, my int32) {
		prep[uint8](tmp, unsafe.Pointer(src), srcStride, int(w), int(h), int(mx), int(my), x, y, 8, lanes)
	}
}

// PrepU16 returns a 16-bit-cell prep routine for the mode pair (x, y).
func PrepU16(x, y filter.Mode, lanes int) registry.PrepWideFn {
	checkLanes(lanes)
	return func(tmp *int16, src *uint16, srcStride int, w, h, mx, my, bitDepth int32) {
		prep[uint16](tmp, unsafe.Pointer(src), srcStride, int(w), int(h), int(mx), int(my), x, y, int(bitDepth), lanes)
	}
}

// AvgU8 returns an 8-bit averaging routine.
func AvgU8(lanes int) registry.AvgFn {
	checkLanes(lanes)
	return func(dst *uint8, dstStride int, tmp1, tmp2 *int16, w, h int32) {
		avg[uint8](unsafe.Pointer(dst), dstStride, tmp1, tmp2, int(w), int(h), 8, lanes)
	}
}

// AvgU16 returns a 16-bit-cell averaging routine.
func AvgU16(lanes int) registry.AvgWideFn {
	checkLanes(lanes)
	return func(dst *uint16, dstStride int, tmp1, tmp2 *int16, w, h, bitDepth int32) {
		avg[uint16](unsafe.Pointer(dst), dstStride, tmp1, tmp2, int(w), int(h), int(bitDepth), lanes)
	}
}
