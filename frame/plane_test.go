package frame

import (
	"errors"
	"testing"
)

func TestNewPlaneGeometry(t *testing.T) {
	p, err := NewPlane[uint8](16, 8, 4, 3)
	if err != nil {
		t.Fatalf("NewPlane: %v", err)
	}
	if p.Stride() != 24 {
		t.Fatalf("Stride() = %d, want 24", p.Stride())
	}
	if len(p.Data()) != 24*14 {
		t.Fatalf("len(Data()) = %d, want %d", len(p.Data()), 24*14)
	}
	if p.Width() != 16 || p.Height() != 8 || p.XPad() != 4 || p.YPad() != 3 {
		t.Fatalf("unexpected geometry %dx%d pad %d,%d", p.Width(), p.Height(), p.XPad(), p.YPad())
	}
}

func TestNewPlaneInvalid(t *testing.T) {
	cases := [][4]int{{0, 8, 0, 0}, {8, 0, 0, 0}, {8, 8, -1, 0}, {8, 8, 0, -1}}
	for _, c := range cases {
		if _, err := NewPlane[uint16](c[0], c[1], c[2], c[3]); !errors.Is(err, ErrInvalidDimensions) {
			t.Fatalf("NewPlane(%v) error = %v, want ErrInvalidDimensions", c, err)
		}
	}
}

func TestFromDataSharesMemory(t *testing.T) {
	data := make([]uint16, 12)
	p, err := FromData(data, 4, 3, 3)
	if err != nil {
		t.Fatalf("FromData: %v", err)
	}
	p.Set(2, 1, 99)
	if data[6] != 99 {
		t.Fatal("FromData should share underlying memory")
	}
}

func TestFromDataErrors(t *testing.T) {
	if _, err := FromData(make([]uint8, 8), 4, 4, 3); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("short data error = %v, want ErrLengthMismatch", err)
	}
	if _, err := FromData(make([]uint8, 16), 2, 4, 2); !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("stride < width error = %v, want ErrInvalidDimensions", err)
	}
}

func TestSliceReachIntoPadding(t *testing.T) {
	p, _ := NewPlane[uint8](8, 8, 4, 4)
	s, err := p.Slice(0, 0)
	if err != nil {
		t.Fatalf("Slice: %v", err)
	}
	if !s.Reach(3, 3, 8+7, 8+7) {
		t.Fatal("8-tap reach around (0,0) should fit in 4-cell padding")
	}
	if s.Reach(3, 3, 8+8, 8+8) {
		t.Fatal("reach beyond the right padding reported inside")
	}
	if s.Reach(5, 0, 1, 1) {
		t.Fatal("reach beyond the left padding reported inside")
	}

	if _, err := p.Slice(-5, 0); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("anchor outside allocation error = %v, want ErrOutOfBounds", err)
	}
}

func TestSliceRowAndGoLeft(t *testing.T) {
	p, _ := NewPlane[uint16](4, 4, 2, 2)
	for y := -2; y < 6; y++ {
		for x := -2; x < 6; x++ {
			p.Set(x, y, uint16((y+2)*10+x+2))
		}
	}

	s, _ := p.Slice(1, 1)
	if got := s.Row(0)[0]; got != 33 {
		t.Fatalf("Row(0)[0] = %d, want 33", got)
	}
	left := s.GoLeft(3).GoUp(3)
	if got := left.Row(0)[0]; got != 0 {
		t.Fatalf("GoLeft/GoUp Row(0)[0] = %d, want 0", got)
	}
	if got := len(left.Row(0)); got != p.Stride() {
		t.Fatalf("len(Row) = %d, want %d", got, p.Stride())
	}
	if *s.Ptr() != 33 {
		t.Fatalf("*Ptr() = %d, want 33", *s.Ptr())
	}
}

func TestPadEdges(t *testing.T) {
	p, _ := NewPlane[uint8](3, 2, 2, 2)
	p.Set(0, 0, 1)
	p.Set(2, 0, 2)
	p.Set(0, 1, 3)
	p.Set(2, 1, 4)
	p.PadEdges()

	checks := []struct {
		x, y int
		want uint8
	}{
		{-2, -2, 1}, {-1, 0, 1}, {4, -1, 2}, {3, 0, 2},
		{-2, 3, 3}, {-1, 1, 3}, {4, 3, 4}, {3, 1, 4},
	}
	for _, c := range checks {
		if got := p.At(c.x, c.y); got != c.want {
			t.Fatalf("At(%d,%d) = %d, want %d", c.x, c.y, got, c.want)
		}
	}
}

func TestPixelTypeAndStride(t *testing.T) {
	if TypeOf[uint8]() != PixelU8 || TypeOf[uint16]() != PixelU16 {
		t.Fatal("TypeOf returned the wrong discriminator")
	}
	if AsmStride[uint8](40) != 40 {
		t.Fatalf("AsmStride[uint8](40) = %d, want 40", AsmStride[uint8](40))
	}
	if AsmStride[uint16](40) != 80 {
		t.Fatalf("AsmStride[uint16](40) = %d, want 80", AsmStride[uint16](40))
	}
	if MaxValue(10) != 1023 {
		t.Fatalf("MaxValue(10) = %d, want 1023", MaxValue(10))
	}
}

func TestOverlaps(t *testing.T) {
	buf := make([]uint16, 16)
	if !Overlaps(buf[:8], buf[7:]) {
		t.Fatal("adjacent subslices sharing index 7 should overlap")
	}
	if Overlaps(buf[:8], buf[8:]) {
		t.Fatal("disjoint halves reported overlapping")
	}
	other := make([]int16, 16)
	if Overlaps(buf, other) {
		t.Fatal("separate allocations reported overlapping")
	}
	if Overlaps(buf, []int16(nil)) {
		t.Fatal("empty slice reported overlapping")
	}
}

func TestSliceSpan(t *testing.T) {
	p, _ := NewPlane[uint8](8, 8, 4, 4)
	s, _ := p.Slice(2, 2)
	span := s.Span(1, 1, 3, 2)
	if got, want := len(span), p.Stride()+3; got != want {
		t.Fatalf("len(Span) = %d, want %d", got, want)
	}
	if &span[0] != &p.Data()[p.index(1, 1)] {
		t.Fatal("Span does not start at the top-left of the area")
	}

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for a span outside the allocation")
		}
	}()
	s.Span(7, 0, 1, 1)
}
