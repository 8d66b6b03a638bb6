//go:build purego

package mc

import "testing"

func TestPuregoInstallsNothing(t *testing.T) {
	for _, l := range Levels() {
		if CoverageOf(l).Accelerated() {
			t.Fatalf("%s has accelerated routines in a purego build", l)
		}
	}
}
