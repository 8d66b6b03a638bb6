package cpu

import (
	"testing"

	vcpu "github.com/cwbudde/algo-vecmath/cpu"
)

func TestLevelIndexIsBijective(t *testing.T) {
	seen := make(map[int]Level, NumLevels)
	for _, l := range Levels() {
		idx := l.Index()
		if idx < 0 || idx >= NumLevels {
			t.Fatalf("%s: index %d outside [0,%d)", l, idx, NumLevels)
		}
		if prev, ok := seen[idx]; ok {
			t.Fatalf("%s and %s share index %d", prev, l, idx)
		}
		seen[idx] = l
	}
	if len(seen) != NumLevels {
		t.Fatalf("got %d distinct indices, want %d", len(seen), NumLevels)
	}
}

func TestLevelString(t *testing.T) {
	for _, l := range Levels() {
		name := l.String()
		if name == "unknown" {
			t.Fatalf("level %d has no name", int(l))
		}
		got, ok := ParseLevel(name)
		if !ok || got != l {
			t.Fatalf("ParseLevel(%q) = %v, %v; want %v", name, got, ok, l)
		}
	}
	if Level(NumLevels).String() != "unknown" {
		t.Fatal("out-of-range level should be unknown")
	}
	if _, ok := ParseLevel("mmx"); ok {
		t.Fatal("ParseLevel accepted an undeclared level")
	}
}

func TestLevelValid(t *testing.T) {
	if Level(-1).Valid() || Level(NumLevels).Valid() {
		t.Fatal("out-of-range levels reported valid")
	}
	for _, l := range Levels() {
		if !l.Valid() {
			t.Fatalf("%s reported invalid", l)
		}
	}
}

func TestFromFeatures(t *testing.T) {
	tests := []struct {
		name     string
		features vcpu.Features
		ext      Extensions
		want     Level
	}{
		{
			name:     "force-generic",
			features: vcpu.Features{HasSSE2: true, HasAVX2: true, ForceGeneric: true, Architecture: "amd64"},
			ext:      Extensions{HasSSSE3: true},
			want:     LevelGeneric,
		},
		{
			name:     "sse2-only",
			features: vcpu.Features{HasSSE2: true, Architecture: "amd64"},
			want:     LevelSSE2,
		},
		{
			name:     "ssse3",
			features: vcpu.Features{HasSSE2: true, Architecture: "amd64"},
			ext:      Extensions{HasSSSE3: true},
			want:     LevelSSSE3,
		},
		{
			name:     "avx2",
			features: vcpu.Features{HasSSE2: true, HasAVX2: true, Architecture: "amd64"},
			ext:      Extensions{HasSSSE3: true},
			want:     LevelAVX2,
		},
		{
			name:     "avx512bw",
			features: vcpu.Features{HasSSE2: true, HasAVX2: true, Architecture: "amd64"},
			ext:      Extensions{HasSSSE3: true, HasAVX512BW: true},
			want:     LevelAVX512,
		},
		{
			name:     "neon",
			features: vcpu.Features{HasNEON: true, Architecture: "arm64"},
			want:     LevelNEON,
		},
		{
			name:     "neon-flag-on-amd64-ignored",
			features: vcpu.Features{HasNEON: true, Architecture: "amd64"},
			want:     LevelGeneric,
		},
		{
			name:     "unknown-arch",
			features: vcpu.Features{Architecture: "riscv64"},
			want:     LevelGeneric,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromFeatures(tt.features, tt.ext); got != tt.want {
				t.Fatalf("FromFeatures = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestDetectHonoursForcedFeatures(t *testing.T) {
	vcpu.SetForcedFeatures(vcpu.Features{ForceGeneric: true, Architecture: "amd64"})
	ResetDetection()
	defer func() {
		vcpu.ResetDetection()
		ResetDetection()
	}()

	if got := Detect(); got != LevelGeneric {
		t.Fatalf("Detect with ForceGeneric = %s, want generic", got)
	}
	if got := Detect(); got != LevelGeneric {
		t.Fatalf("cached Detect = %s, want generic", got)
	}
}

func TestDetectIsValid(t *testing.T) {
	ResetDetection()
	defer ResetDetection()

	if l := Detect(); !l.Valid() {
		t.Fatalf("Detect returned invalid level %d", int(l))
	}
}
