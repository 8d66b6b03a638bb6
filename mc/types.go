package mc

import (
	"github.com/cwbudde/algo-mc/internal/cpu"
	"github.com/cwbudde/algo-mc/mc/internal/filter"
)

// FilterMode selects the interpolation kernel for one axis.
type FilterMode = filter.Mode

// Filter modes.
const (
	Regular  = filter.Regular
	Smooth   = filter.Smooth
	Sharp    = filter.Sharp
	Bilinear = filter.Bilinear
)

// Level is a CPU capability tier.
type Level = cpu.Level

// Capability levels.
const (
	LevelGeneric = cpu.LevelGeneric
	LevelSSE2    = cpu.LevelSSE2
	LevelSSSE3   = cpu.LevelSSSE3
	LevelAVX2    = cpu.LevelAVX2
	LevelAVX512  = cpu.LevelAVX512
	LevelNEON    = cpu.LevelNEON
)

// NumLevels is the number of capability levels.
const NumLevels = cpu.NumLevels

// NumModeSlots is the number of combined mode indices per table row.
const NumModeSlots = filter.NumModeSlots

// ModeIndex returns the table slot for the mode pair (x, y).
func ModeIndex(x, y FilterMode) int {
	return filter.ModeIndex(x, y)
}

// Levels returns every capability level in ascending order.
func Levels() []Level {
	return cpu.Levels()
}

// ParseLevel returns the level with the given name.
func ParseLevel(name string) (Level, bool) {
	return cpu.ParseLevel(name)
}

// DetectLevel returns the best level the running CPU supports.
func DetectLevel() Level {
	return cpu.Detect()
}
