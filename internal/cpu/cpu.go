// Package cpu maps CPU feature detection onto the capability levels used to
// index the motion compensation dispatch tables.
//
// Each Level names one SIMD tier. Levels have a stable numeric index in
// [0, NumLevels) so that every dispatch table can be a fixed-size array with
// exactly one row per level.
//
// Detection is performed lazily on the first call to Detect() and cached for
// subsequent calls using sync.Once for thread-safety.
package cpu

import (
	"runtime"
	"sync"

	vcpu "github.com/cwbudde/algo-vecmath/cpu"
)

// Level represents a SIMD instruction set tier.
// Levels are ordered from least to most capable within one architecture;
// they are not comparable across architectures (e.g., AVX2 vs NEON).
type Level int

const (
	// LevelGeneric is the baseline tier: portable Go, no accelerated routines.
	LevelGeneric Level = iota

	// LevelSSE2 indicates x86-64 SSE2 (baseline for amd64).
	LevelSSE2

	// LevelSSSE3 indicates x86-64 SSSE3 (byte shuffles, pmaddubsw).
	LevelSSSE3

	// LevelAVX2 indicates x86-64 AVX2 (256-bit integer operations).
	LevelAVX2

	// LevelAVX512 indicates x86-64 AVX-512 with the BW extension.
	LevelAVX512

	// LevelNEON indicates ARM NEON / Advanced SIMD.
	LevelNEON
)

// NumLevels is the number of capability levels. Every dispatch table has
// exactly NumLevels rows.
const NumLevels = int(LevelNEON) + 1

// Index returns the table row for l.
func (l Level) Index() int {
	return int(l)
}

// Valid reports whether l is one of the declared levels.
func (l Level) Valid() bool {
	return l >= LevelGeneric && int(l) < NumLevels
}

// String returns a human-readable name for the level.
func (l Level) String() string {
	switch l {
	case LevelGeneric:
		return "generic"
	case LevelSSE2:
		return "sse2"
	case LevelSSSE3:
		return "ssse3"
	case LevelAVX2:
		return "avx2"
	case LevelAVX512:
		return "avx512"
	case LevelNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// Levels returns all levels in index order.
func Levels() []Level {
	out := make([]Level, NumLevels)
	for i := range out {
		out[i] = Level(i)
	}

	return out
}

// ParseLevel returns the level whose String() equals name.
func ParseLevel(name string) (Level, bool) {
	for _, l := range Levels() {
		if l.String() == name {
			return l, true
		}
	}

	return LevelGeneric, false
}

// Extensions lists the instruction set bits the codec tiers need beyond
// what vcpu.Features reports.
type Extensions struct {
	HasSSSE3    bool
	HasAVX512BW bool
}

// FromFeatures returns the most capable level supported by features and ext.
// The mapping is pure so that it can be tested without the hardware.
func FromFeatures(features vcpu.Features, ext Extensions) Level {
	if features.ForceGeneric {
		return LevelGeneric
	}

	switch features.Architecture {
	case "amd64", "386":
		switch {
		case features.HasAVX2 && ext.HasAVX512BW:
			return LevelAVX512
		case features.HasAVX2:
			return LevelAVX2
		case features.HasSSE2 && ext.HasSSSE3:
			return LevelSSSE3
		case features.HasSSE2:
			return LevelSSE2
		}
	case "arm64":
		if features.HasNEON {
			return LevelNEON
		}
	}

	return LevelGeneric
}

var (
	// detectedLevel holds the cached level for this process.
	detectedLevel Level

	// detectOnce ensures detection runs exactly once, thread-safely.
	detectOnce sync.Once

	// detectMutex serializes access to detectOnce/detectedLevel.
	detectMutex sync.Mutex
)

// Detect returns the most capable level available on the current system.
//
// Detection is performed once on the first call and cached. Features forced
// with vcpu.SetForcedFeatures are honoured as long as they are set before the
// first call (or before ResetDetection).
func Detect() Level {
	detectMutex.Lock()
	defer detectMutex.Unlock()

	detectOnce.Do(func() {
		features := vcpu.DetectFeatures()
		if features.Architecture == "" {
			features.Architecture = runtime.GOARCH
		}
		detectedLevel = FromFeatures(features, detectExtensions())
	})

	return detectedLevel
}

// ResetDetection clears the detection cache.
// This is intended for testing purposes.
func ResetDetection() {
	detectMutex.Lock()
	detectOnce = sync.Once{}
	detectedLevel = LevelGeneric
	detectMutex.Unlock()
}
