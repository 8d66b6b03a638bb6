// Command mcinfo prints which motion compensation routines are accelerated
// at each capability level.
//
// Usage:
//
//	mcinfo [flags] [level-name ...]
//
// Without arguments it prints coverage for every level.
//
// Examples:
//
//	mcinfo
//	mcinfo avx2 neon
//	mcinfo -slots ssse3
//	mcinfo -detect
//	mcinfo -selftest
//	mcinfo -list
package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-mc/frame"
	"github.com/cwbudde/algo-mc/mc"
)

func main() {
	list := flag.Bool("list", false, "list capability level names")
	detect := flag.Bool("detect", false, "print the level detected for this CPU")
	slots := flag.Bool("slots", false, "print the per mode pair table for each level")
	selftest := flag.Bool("selftest", false, "run every level against the portable routines")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: mcinfo [flags] [level-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints motion compensation dispatch coverage per capability level.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, prints every level.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  mcinfo avx2 neon\n")
		fmt.Fprintf(os.Stderr, "  mcinfo -slots ssse3\n")
		fmt.Fprintf(os.Stderr, "  mcinfo -detect\n")
	}
	flag.Parse()

	if *list {
		for _, l := range mc.Levels() {
			fmt.Println(l)
		}
		return
	}

	if *detect {
		fmt.Println(mc.DetectLevel())
		return
	}

	levels, ok := resolveLevels(flag.Args(), os.Stderr)
	if !ok {
		fmt.Fprintf(os.Stderr, "error: no matching capability levels\n")
		os.Exit(1)
	}

	if *selftest {
		if err := runSelfTest(os.Stdout, levels); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *slots {
		for _, l := range levels {
			if err := printSlots(os.Stdout, mc.CoverageOf(l)); err != nil {
				fmt.Fprintf(os.Stderr, "error: failed to write output: %v\n", err)
				os.Exit(1)
			}
		}
		return
	}

	if err := printCoverage(os.Stdout, levels); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to write output: %v\n", err)
		os.Exit(1)
	}
}

// resolveLevels maps names to levels, warning about unknown names. No names
// selects every level.
func resolveLevels(names []string, warn io.Writer) ([]mc.Level, bool) {
	if len(names) == 0 {
		return mc.Levels(), true
	}

	var levels []mc.Level
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		l, ok := mc.ParseLevel(name)
		if !ok {
			fmt.Fprintf(warn, "warning: unknown level %q (use -list to see available)\n", name)
			continue
		}
		levels = append(levels, l)
	}

	return levels, len(levels) > 0
}

func printCoverage(w io.Writer, levels []mc.Level) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Level\tImpl\tPut u8\tPut u16\tPrep u8\tPrep u16\tAvg u8\tAvg u16\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "-----\t----\t------\t-------\t-------\t--------\t------\t-------\n"); err != nil {
		return err
	}

	for _, l := range levels {
		c := mc.CoverageOf(l)
		impl := c.Name
		if impl == "" {
			impl = "-"
		}
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%d/%d\t%d/%d\t%d/%d\t%d/%d\t%s\t%s\n",
			l, impl,
			count(c.Put), mc.NumModeSlots,
			count(c.PutWide), mc.NumModeSlots,
			count(c.Prep), mc.NumModeSlots,
			count(c.PrepWide), mc.NumModeSlots,
			yesNo(c.Avg), yesNo(c.AvgWide),
		); err != nil {
			return err
		}
	}

	return tw.Flush()
}

// printSlots prints a 4x4 grid per table: rows are vertical modes, columns
// horizontal modes.
func printSlots(w io.Writer, c mc.Coverage) error {
	modes := []mc.FilterMode{mc.Regular, mc.Smooth, mc.Sharp, mc.Bilinear}
	tables := []struct {
		name  string
		slots [mc.NumModeSlots]bool
	}{
		{"put u8", c.Put},
		{"put u16", c.PutWide},
		{"prep u8", c.Prep},
		{"prep u16", c.PrepWide},
	}

	if _, err := fmt.Fprintf(w, "%s\n", c.Level); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, t := range tables {
		header := "  " + t.name
		for _, x := range modes {
			header += "\t" + x.String()
		}
		if _, err := fmt.Fprintln(tw, header); err != nil {
			return err
		}
		for _, y := range modes {
			line := "  " + y.String()
			for _, x := range modes {
				mark := "."
				if t.slots[mc.ModeIndex(x, y)] {
					mark = "x"
				}
				line += "\t" + mark
			}
			if _, err := fmt.Fprintln(tw, line); err != nil {
				return err
			}
		}
	}

	return tw.Flush()
}

// runSelfTest drives every operation at each level through a verifying
// dispatcher. A mismatch panics inside the dispatcher and is reported as
// an error.
func runSelfTest(w io.Writer, levels []mc.Level) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(*mc.MismatchError); ok {
				err = e
				return
			}
			panic(r)
		}
	}()

	rng := rand.New(rand.NewSource(1))
	src8, err := randomPlane[uint8](rng, 8)
	if err != nil {
		return err
	}
	src16, err := randomPlane[uint16](rng, 10)
	if err != nil {
		return err
	}

	for _, l := range levels {
		calls, err := selfTestLevel(l, src8, src16)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s: %d calls ok\n", l, calls); err != nil {
			return err
		}
	}

	return nil
}

func selfTestLevel(level mc.Level, src8 *frame.Plane[uint8], src16 *frame.Plane[uint16]) (int, error) {
	d8, err := mc.New[uint8](mc.WithLevelOverride(level), mc.WithVerification(true))
	if err != nil {
		return 0, err
	}
	d16, err := mc.New[uint16](mc.WithLevelOverride(level), mc.WithVerification(true))
	if err != nil {
		return 0, err
	}

	s8, _ := src8.Slice(0, 0)
	s16, _ := src16.Slice(0, 0)
	modes := []mc.FilterMode{mc.Regular, mc.Smooth, mc.Sharp, mc.Bilinear}

	calls := 0
	for _, size := range []int{4, 16, 64} {
		dst8, _ := frame.NewPlane[uint8](size, size, 0, 0)
		dst16, _ := frame.NewPlane[uint16](size, size, 0, 0)
		tmp1 := make([]int16, size*size)
		tmp2 := make([]int16, size*size)

		for _, x := range modes {
			for _, y := range modes {
				d8.Put(dst8.FullRegion(), s8, size, size, 5, 11, x, y, 8, level)
				d16.Put(dst16.FullRegion(), s16, size, size, 9, 2, x, y, 10, level)
				d8.Prepare(tmp1, s8, size, size, 0, 7, x, y, 8, level)
				d8.Prepare(tmp2, s8, size, size, 13, 0, x, y, 8, level)
				d8.Average(dst8.FullRegion(), tmp1, tmp2, size, size, 8, level)
				d16.Prepare(tmp1, s16, size, size, 3, 3, x, y, 10, level)
				d16.Average(dst16.FullRegion(), tmp1, tmp2, size, size, 10, level)
				calls += 7
			}
		}
	}

	return calls, nil
}

func randomPlane[T frame.Pixel](rng *rand.Rand, bitDepth int) (*frame.Plane[T], error) {
	p, err := frame.NewPlane[T](64, 64, 8, 8)
	if err != nil {
		return nil, err
	}
	data := p.Data()
	for i := range data {
		data[i] = T(rng.Intn(frame.MaxValue(bitDepth) + 1))
	}

	return p, nil
}

func count(slots [mc.NumModeSlots]bool) int {
	n := 0
	for _, s := range slots {
		if s {
			n++
		}
	}

	return n
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}

	return "no"
}
