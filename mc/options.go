package mc

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-mc/frame"
)

// ErrInvalidLevel is returned for a capability level outside [0, NumLevels).
var ErrInvalidLevel = errors.New("mc: invalid capability level")

// Option configures a dispatcher built by [New].
type Option func(*config) error

type config struct {
	verify bool
	pinned bool
	level  Level
}

func defaultConfig() config {
	return config{verify: verifyByDefault}
}

// WithVerification enables or disables checking every result against the
// portable routines. The default follows the mcverify build tag.
func WithVerification(enabled bool) Option {
	return func(cfg *config) error {
		cfg.verify = enabled
		return nil
	}
}

// WithLevelOverride makes the dispatcher use level for every call, ignoring
// the level argument.
func WithLevelOverride(level Level) Option {
	return func(cfg *config) error {
		if !level.Valid() {
			return fmt.Errorf("%w: %d", ErrInvalidLevel, int(level))
		}
		cfg.pinned = true
		cfg.level = level
		return nil
	}
}

// New returns a table-backed dispatcher configured by opts.
func New[T frame.Pixel](opts ...Option) (Dispatcher[T], error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	var d Dispatcher[T] = tableDispatcher[T]{}
	if cfg.verify {
		d = Verify(d)
	}
	if cfg.pinned {
		d = pinnedDispatcher[T]{inner: d, level: cfg.level}
	}

	return d, nil
}

// pinnedDispatcher replaces the level of every call.
type pinnedDispatcher[T frame.Pixel] struct {
	inner Dispatcher[T]
	level Level
}

func (p pinnedDispatcher[T]) Put(
	dst *frame.Region[T], src frame.Slice[T], width, height, colFrac, rowFrac int,
	modeX, modeY FilterMode, bitDepth int, _ Level,
) {
	p.inner.Put(dst, src, width, height, colFrac, rowFrac, modeX, modeY, bitDepth, p.level)
}

func (p pinnedDispatcher[T]) Prepare(
	tmp []int16, src frame.Slice[T], width, height, colFrac, rowFrac int,
	modeX, modeY FilterMode, bitDepth int, _ Level,
) {
	p.inner.Prepare(tmp, src, width, height, colFrac, rowFrac, modeX, modeY, bitDepth, p.level)
}

func (p pinnedDispatcher[T]) Average(
	dst *frame.Region[T], tmp1, tmp2 []int16, width, height, bitDepth int, _ Level,
) {
	p.inner.Average(dst, tmp1, tmp2, width, height, bitDepth, p.level)
}
