package frame

import "fmt"

// Plane is a padded, strided 2D array of samples.
//
// Visible coordinates run over [0, Width) x [0, Height). The allocation
// extends XPad cells to the left and right and YPad rows above and below, so
// that coordinates in [-XPad, Width+XPad) x [-YPad, Height+YPad) are
// addressable.
type Plane[T Pixel] struct {
	data   []T
	stride int
	width  int
	height int
	xpad   int
	ypad   int
}

// NewPlane returns a zero-filled plane with the given visible size and
// padding.
func NewPlane[T Pixel](width, height, xpad, ypad int) (*Plane[T], error) {
	if width <= 0 || height <= 0 || xpad < 0 || ypad < 0 {
		return nil, fmt.Errorf("%w: %dx%d pad %d,%d", ErrInvalidDimensions, width, height, xpad, ypad)
	}

	stride := width + 2*xpad
	rows := height + 2*ypad

	return &Plane[T]{
		data:   make([]T, stride*rows),
		stride: stride,
		width:  width,
		height: height,
		xpad:   xpad,
		ypad:   ypad,
	}, nil
}

// FromData wraps data as an unpadded plane without copying.
// Mutations through the plane are visible in data and vice versa.
func FromData[T Pixel](data []T, stride, width, height int) (*Plane[T], error) {
	if width <= 0 || height <= 0 || stride < width {
		return nil, fmt.Errorf("%w: %dx%d stride %d", ErrInvalidDimensions, width, height, stride)
	}
	if len(data) < stride*height {
		return nil, fmt.Errorf("%w: have %d cells, need %d", ErrLengthMismatch, len(data), stride*height)
	}

	return &Plane[T]{
		data:   data,
		stride: stride,
		width:  width,
		height: height,
	}, nil
}

// Width returns the visible width in samples.
func (p *Plane[T]) Width() int { return p.width }

// Height returns the visible height in rows.
func (p *Plane[T]) Height() int { return p.height }

// Stride returns the distance between rows in cells.
func (p *Plane[T]) Stride() int { return p.stride }

// XPad returns the horizontal padding on each side.
func (p *Plane[T]) XPad() int { return p.xpad }

// YPad returns the vertical padding above and below.
func (p *Plane[T]) YPad() int { return p.ypad }

// Data returns the whole allocation, padding included.
func (p *Plane[T]) Data() []T { return p.data }

// index returns the offset of visible coordinate (x, y) in data.
func (p *Plane[T]) index(x, y int) int {
	return (y+p.ypad)*p.stride + x + p.xpad
}

// contains reports whether the rectangle lies inside the allocation.
func (p *Plane[T]) contains(x, y, w, h int) bool {
	if w < 0 || h < 0 {
		return false
	}
	if x < -p.xpad || y < -p.ypad {
		return false
	}
	if x+w > p.stride-p.xpad || y+h > len(p.data)/p.stride-p.ypad {
		return false
	}

	return true
}

// At returns the sample at visible coordinate (x, y).
func (p *Plane[T]) At(x, y int) T {
	return p.data[p.index(x, y)]
}

// Set stores v at visible coordinate (x, y).
func (p *Plane[T]) Set(x, y int, v T) {
	p.data[p.index(x, y)] = v
}

// Row returns the visible samples of row y.
func (p *Plane[T]) Row(y int) []T {
	start := p.index(0, y)
	return p.data[start : start+p.width]
}

// Fill sets every cell, padding included, to v.
func (p *Plane[T]) Fill(v T) {
	for i := range p.data {
		p.data[i] = v
	}
}

// PadEdges replicates the outermost visible samples into the padding.
func (p *Plane[T]) PadEdges() {
	rows := len(p.data) / p.stride
	for y := 0; y < p.height; y++ {
		row := p.data[(y+p.ypad)*p.stride : (y+p.ypad+1)*p.stride]
		left := row[p.xpad]
		right := row[p.xpad+p.width-1]
		for x := 0; x < p.xpad; x++ {
			row[x] = left
		}
		for x := p.xpad + p.width; x < p.stride; x++ {
			row[x] = right
		}
	}

	top := p.data[p.ypad*p.stride : (p.ypad+1)*p.stride]
	for y := 0; y < p.ypad; y++ {
		copy(p.data[y*p.stride:(y+1)*p.stride], top)
	}

	last := p.ypad + p.height - 1
	bottom := p.data[last*p.stride : (last+1)*p.stride]
	for y := last + 1; y < rows; y++ {
		copy(p.data[y*p.stride:(y+1)*p.stride], bottom)
	}
}

// Slice returns a read-only anchor at visible coordinate (x, y).
// The anchor itself must be inside the allocation; the area a caller reads
// around it can be checked with Slice.Reach.
func (p *Plane[T]) Slice(x, y int) (Slice[T], error) {
	if !p.contains(x, y, 1, 1) {
		return Slice[T]{}, fmt.Errorf("%w: anchor (%d,%d)", ErrOutOfBounds, x, y)
	}

	return Slice[T]{plane: p, x: x, y: y}, nil
}

// Region returns a mutable view of r, which must lie inside the allocation.
func (p *Plane[T]) Region(r Rect) (*Region[T], error) {
	if r.Width <= 0 || r.Height <= 0 {
		return nil, fmt.Errorf("%w: region %dx%d", ErrInvalidDimensions, r.Width, r.Height)
	}
	if !p.contains(r.X, r.Y, r.Width, r.Height) {
		return nil, fmt.Errorf("%w: region %+v", ErrOutOfBounds, r)
	}

	return &Region[T]{plane: p, rect: r}, nil
}

// FullRegion returns a mutable view of the visible area.
func (p *Plane[T]) FullRegion() *Region[T] {
	return &Region[T]{plane: p, rect: Rect{Width: p.width, Height: p.height}}
}

// Slice is a read-only anchor into a plane.
type Slice[T Pixel] struct {
	plane *Plane[T]
	x, y  int
}

// Plane returns the plane the slice points into.
func (s Slice[T]) Plane() *Plane[T] { return s.plane }

// X returns the anchor column in visible coordinates.
func (s Slice[T]) X() int { return s.x }

// Y returns the anchor row in visible coordinates.
func (s Slice[T]) Y() int { return s.y }

// Stride returns the plane stride in cells.
func (s Slice[T]) Stride() int { return s.plane.stride }

// GoLeft returns the anchor moved n samples to the left.
func (s Slice[T]) GoLeft(n int) Slice[T] {
	s.x -= n
	return s
}

// GoUp returns the anchor moved n rows up.
func (s Slice[T]) GoUp(n int) Slice[T] {
	s.y -= n
	return s
}

// Offset returns the index of the anchor in Plane().Data().
func (s Slice[T]) Offset() int {
	return s.plane.index(s.x, s.y)
}

// Row returns the cells from the anchor column in row r (relative to the
// anchor) up to the end of that allocation row.
func (s Slice[T]) Row(r int) []T {
	start := s.plane.index(s.x, s.y+r)
	end := (s.y + r + s.plane.ypad + 1) * s.plane.stride

	return s.plane.data[start:end]
}

// Ptr returns a pointer to the anchor cell.
func (s Slice[T]) Ptr() *T {
	return &s.plane.data[s.Offset()]
}

// Reach reports whether the area starting left samples before and top rows
// above the anchor, width by height in size, lies inside the allocation.
func (s Slice[T]) Reach(left, top, width, height int) bool {
	return s.plane.contains(s.x-left, s.y-top, width, height)
}

// Span returns the cells an area read around the anchor touches: from the
// sample left columns before and top rows above the anchor to the last sample
// of the width x height area, stride gaps included. It panics if the area
// is not inside the allocation.
func (s Slice[T]) Span(left, top, width, height int) []T {
	if width <= 0 || height <= 0 || !s.Reach(left, top, width, height) {
		panic(fmt.Sprintf("frame: span %dx%d at (%d,%d) leaves the allocation", width, height, s.x-left, s.y-top))
	}
	start := s.plane.index(s.x-left, s.y-top)
	end := s.plane.index(s.x-left+width-1, s.y-top+height-1) + 1

	return s.plane.data[start:end]
}
