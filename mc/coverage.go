package mc

import "github.com/cwbudde/algo-mc/mc/internal/filter"

// Coverage reports which routines one capability level provides. A false
// slot is served by the portable routines.
type Coverage struct {
	Level Level

	// Name identifies the routines installed at Level, or "" for an empty row.
	Name string

	Put      [NumModeSlots]bool
	PutWide  [NumModeSlots]bool
	Prep     [NumModeSlots]bool
	PrepWide [NumModeSlots]bool
	Avg      bool
	AvgWide  bool
}

// Accelerated reports whether the level provides any routine at all.
func (c Coverage) Accelerated() bool {
	if c.Avg || c.AvgWide {
		return true
	}
	for i := range c.Put {
		if c.Put[i] || c.PutWide[i] || c.Prep[i] || c.PrepWide[i] {
			return true
		}
	}

	return false
}

// Pairs returns the number of mode pairs with a put routine for the narrow
// and wide pixel types.
func (c Coverage) Pairs() (narrow, wide int) {
	for i := range c.Put {
		if c.Put[i] {
			narrow++
		}
		if c.PutWide[i] {
			wide++
		}
	}

	return narrow, wide
}

// CoverageOf returns the routines installed at level. Invalid levels report
// no routines.
func CoverageOf(level Level) Coverage {
	c := Coverage{Level: level}
	if !level.Valid() {
		return c
	}

	t := dispatchTables()
	row := level.Index()
	c.Name = t.Name(level)
	for _, x := range filter.Modes() {
		for _, y := range filter.Modes() {
			slot := filter.ModeIndex(x, y)
			c.Put[slot] = t.Put[row][slot] != nil
			c.PutWide[slot] = t.PutWide[row][slot] != nil
			c.Prep[slot] = t.Prep[row][slot] != nil
			c.PrepWide[slot] = t.PrepWide[row][slot] != nil
		}
	}
	c.Avg = t.Avg[row] != nil
	c.AvgWide = t.AvgWide[row] != nil

	return c
}
