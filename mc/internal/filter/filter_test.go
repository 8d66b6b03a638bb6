package filter

import "testing"

func TestModeIndexTotality(t *testing.T) {
	seen := make(map[int]bool)
	for _, x := range Modes() {
		for _, y := range Modes() {
			idx := ModeIndex(x, y)
			if idx < 0 || idx >= NumModeSlots {
				t.Fatalf("ModeIndex(%s,%s) = %d outside [0,%d)", x, y, idx, NumModeSlots)
			}
			if seen[idx] {
				t.Fatalf("ModeIndex(%s,%s) = %d collides", x, y, idx)
			}
			seen[idx] = true
		}
	}
}

func TestModeIndexMasksUndeclaredModes(t *testing.T) {
	for x := 0; x < 256; x++ {
		for y := 0; y < 256; y++ {
			idx := ModeIndex(Mode(x), Mode(y))
			if idx < 0 || idx >= NumModeSlots {
				t.Fatalf("ModeIndex(%d,%d) = %d outside the row", x, y, idx)
			}
		}
	}
}

func TestModeIndexLayout(t *testing.T) {
	if got := ModeIndex(Regular, Regular); got != 0 {
		t.Fatalf("regular/regular = %d, want 0", got)
	}
	if got := ModeIndex(Sharp, Smooth); got != 6 {
		t.Fatalf("sharp/smooth = %d, want 6", got)
	}
	if got := ModeIndex(Bilinear, Bilinear); got != 15 {
		t.Fatalf("bilinear/bilinear = %d, want 15", got)
	}
}

func TestCoefficientsSumTo128(t *testing.T) {
	for set := range subpelFilters {
		for phase, taps := range subpelFilters[set] {
			var sum int32
			for _, c := range taps {
				sum += c
			}
			if sum != 128 {
				t.Fatalf("set %d phase %d sums to %d", set, phase, sum)
			}
		}
	}
}

func TestCoefficientsZeroPhaseIsIdentity(t *testing.T) {
	for _, m := range Modes() {
		for _, length := range []int{2, 4, 8, 128} {
			taps := Coefficients(m, 0, length)
			for i, c := range taps {
				want := int32(0)
				if i == 3 {
					want = 128
				}
				if c != want {
					t.Fatalf("%s length %d: tap %d = %d, want %d", m, length, i, c, want)
				}
			}
		}
	}
}

func TestCoefficientsShortBlocksUseFourTap(t *testing.T) {
	tests := []struct {
		mode Mode
		want int
	}{
		{Regular, setRegular4},
		{Smooth, setSmooth4},
		{Sharp, setRegular4},
		{Bilinear, setBilinear},
	}
	for _, tt := range tests {
		got := Coefficients(tt.mode, 5, 4)
		if got != &subpelFilters[tt.want][5] {
			t.Fatalf("%s at length 4 did not select set %d", tt.mode, tt.want)
		}
		long := Coefficients(tt.mode, 5, 8)
		if long != &subpelFilters[tt.mode][5] {
			t.Fatalf("%s at length 8 did not select its own set", tt.mode)
		}
	}
}

func TestCoefficientsPanicsOnUndeclaredMode(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for undeclared mode")
		}
	}()
	Coefficients(Mode(NumModes), 0, 8)
}
