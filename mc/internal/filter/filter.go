// Package filter holds the interpolation filter modes and the sub-pixel tap
// tables shared by the portable reference and the tier kernels.
package filter

// Mode selects the interpolation kernel used along one axis.
type Mode uint8

const (
	// Regular is the default 8-tap kernel.
	Regular Mode = iota

	// Smooth is the low-pass 8-tap kernel.
	Smooth

	// Sharp is the high-pass 8-tap kernel.
	Sharp

	// Bilinear is the 2-tap kernel.
	Bilinear
)

// NumModes is the number of declared modes. Every mode fits in two bits.
const NumModes = 4

// NumModeSlots is the number of combined (x, y) mode slots per table row.
const NumModeSlots = 16

// Taps is the number of filter taps per axis.
const Taps = 8

// Phases is the number of fractional positions per sample (1/16 pel).
const Phases = 16

// String returns the lower-case mode name.
func (m Mode) String() string {
	switch m {
	case Regular:
		return "regular"
	case Smooth:
		return "smooth"
	case Sharp:
		return "sharp"
	case Bilinear:
		return "bilinear"
	default:
		return "unknown"
	}
}

// Modes returns the declared modes in order.
func Modes() []Mode {
	return []Mode{Regular, Smooth, Sharp, Bilinear}
}

// ModeIndex returns the dispatch table slot for a mode pair.
//
// Both modes fit in two bits, so x + 4*y is already in [0, 16). The mask is
// kept so that a mode outside the declared set still lands inside the row.
func ModeIndex(x, y Mode) int {
	return (int(x) + 4*int(y)) & (NumModeSlots - 1)
}

// filter set indices into subpelFilters.
const (
	setRegular = iota
	setSmooth
	setSharp
	setBilinear
	setRegular4
	setSmooth4
)

// Coefficients returns the taps for mode at phase frac when filtering a
// block that is length samples long along the filtered axis. Blocks of four
// samples or fewer use the 4-tap reductions of the 8-tap modes.
func Coefficients(mode Mode, frac, length int) *[Taps]int32 {
	if mode >= NumModes {
		panic("filter: undeclared mode " + mode.String())
	}

	set := int(mode)
	if mode != Bilinear && length <= 4 {
		switch mode {
		case Smooth:
			set = setSmooth4
		default:
			// Sharp has no 4-tap form of its own and shares regular's,
			// as the AV1 interpolation process defines it.
			set = setRegular4
		}
	}

	return &subpelFilters[set][frac&(Phases-1)]
}
