package frame

import "unsafe"

// Pixel is the set of cell types a plane can store: uint8 for bit depths up
// to 8 and uint16 for deeper samples.
type Pixel interface {
	uint8 | uint16
}

// PixelType discriminates between narrow and wide cells.
type PixelType int

const (
	// PixelU8 stores one sample per byte.
	PixelU8 PixelType = iota

	// PixelU16 stores one sample per 16-bit cell.
	PixelU16
)

// String returns "u8" or "u16".
func (t PixelType) String() string {
	if t == PixelU8 {
		return "u8"
	}

	return "u16"
}

// TypeOf returns the discriminator for T.
func TypeOf[T Pixel]() PixelType {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return PixelU8
	default:
		return PixelU16
	}
}

// CellSize returns the size of one T in bytes.
func CellSize[T Pixel]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// AsmStride converts a stride in cells to the byte stride expected by
// raw-pointer kernels.
func AsmStride[T Pixel](stride int) int {
	return stride * CellSize[T]()
}

// MaxValue returns the largest sample value representable at bitDepth.
func MaxValue(bitDepth int) int {
	return 1<<bitDepth - 1
}

// Overlaps reports whether the memory backing a and b intersects.
func Overlaps[A, B any](a []A, b []B) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}

	var za A
	var zb B
	aStart := uintptr(unsafe.Pointer(unsafe.SliceData(a)))
	aEnd := aStart + uintptr(len(a))*unsafe.Sizeof(za)
	bStart := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	bEnd := bStart + uintptr(len(b))*unsafe.Sizeof(zb)

	return aStart < bEnd && bStart < aEnd
}
