package frame

// Rect is a rectangle in visible plane coordinates.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Region is a mutable rectangular view of a plane. It is always fully
// inside the plane allocation.
type Region[T Pixel] struct {
	plane *Plane[T]
	rect  Rect
}

// Plane returns the plane the region views.
func (r *Region[T]) Plane() *Plane[T] { return r.plane }

// Rect returns the region rectangle.
func (r *Region[T]) Rect() Rect { return r.rect }

// Width returns the region width in samples.
func (r *Region[T]) Width() int { return r.rect.Width }

// Height returns the region height in rows.
func (r *Region[T]) Height() int { return r.rect.Height }

// Stride returns the plane stride in cells.
func (r *Region[T]) Stride() int { return r.plane.stride }

// Row returns row y of the region, Width() samples long.
func (r *Region[T]) Row(y int) []T {
	start := r.plane.index(r.rect.X, r.rect.Y+y)
	return r.plane.data[start : start+r.rect.Width]
}

// Ptr returns a pointer to the top-left cell.
func (r *Region[T]) Ptr() *T {
	return &r.plane.data[r.plane.index(r.rect.X, r.rect.Y)]
}

// Span returns the cells from the top-left sample to the last sample of the
// region, rows and the stride gaps between them included.
func (r *Region[T]) Span() []T {
	start := r.plane.index(r.rect.X, r.rect.Y)
	end := r.plane.index(r.rect.X+r.rect.Width, r.rect.Y+r.rect.Height-1)

	return r.plane.data[start:end]
}

// Sub returns the sub-region at (x, y) relative to r with the given size.
// It returns ErrOutOfBounds if the rectangle leaves r.
func (r *Region[T]) Sub(x, y, width, height int) (*Region[T], error) {
	if x < 0 || y < 0 || width <= 0 || height <= 0 ||
		x+width > r.rect.Width || y+height > r.rect.Height {
		return nil, ErrOutOfBounds
	}

	return &Region[T]{
		plane: r.plane,
		rect:  Rect{X: r.rect.X + x, Y: r.rect.Y + y, Width: width, Height: height},
	}, nil
}

// ScratchCopy copies the region into a freshly allocated unpadded plane of
// identical shape and returns a region over the copy.
func (r *Region[T]) ScratchCopy() *Region[T] {
	w, h := r.rect.Width, r.rect.Height
	p, err := FromData(make([]T, w*h), w, w, h)
	if err != nil {
		panic(err)
	}
	for y := 0; y < h; y++ {
		copy(p.data[y*w:(y+1)*w], r.Row(y))
	}

	return p.FullRegion()
}

// FirstMismatch returns the first position, scanning rows top to bottom,
// where r and other differ within their common width and height.
func (r *Region[T]) FirstMismatch(other *Region[T]) (row, col int, found bool) {
	h := min(r.rect.Height, other.rect.Height)
	w := min(r.rect.Width, other.rect.Width)
	for y := 0; y < h; y++ {
		a := r.Row(y)[:w]
		b := other.Row(y)[:w]
		for x := range a {
			if a[x] != b[x] {
				return y, x, true
			}
		}
	}

	return 0, 0, false
}
