package baseline

import (
	"errors"

	"github.com/cwbudde/algo-wavelet/dualtree"
	"github.com/cwbudde/algo-wavelet/dwt"
)

// Errors returned by the baseline estimation functions.
var (
	ErrEmptyInput        = errors.New("baseline: empty input")
	ErrInvalidIterations = errors.New("baseline: iteration count must be positive")
	ErrMaskLength        = errors.New("baseline: mask length does not match signal length")
	ErrRegionOutOfRange  = errors.New("baseline: background region out of range")
	ErrNotImplemented    = errors.New("baseline: 2D transforms are not implemented")
)

// LevelMax requests the deepest decomposition level supported by the
// signal and filter lengths. It is the default of WithLevel.
const LevelMax = dualtree.LevelMax

type config struct {
	level      int
	firstStage string
	wavelet    string
	mode       dwt.Mode
	mask       []bool
	regions    []Region
	notice     func(requested, max int)
}

func defaultConfig() config {
	return config{
		level:      LevelMax,
		firstStage: dualtree.DefaultFirstStage,
		wavelet:    dualtree.DefaultWavelet,
		mode:       dwt.ModeSymmetric,
	}
}

// Option configures the baseline estimation functions.
type Option func(*config)

// WithLevel sets the decomposition level. Levels above the supported
// maximum are clamped, not rejected; see WithLevelNotice.
func WithLevel(level int) Option {
	return func(cfg *config) {
		cfg.level = level
	}
}

// WithFirstStage selects the first-stage wavelet by registry name.
func WithFirstStage(name string) Option {
	return func(cfg *config) {
		cfg.firstStage = name
	}
}

// WithWavelet selects the steady-state dual-tree wavelet by name.
func WithWavelet(name string) Option {
	return func(cfg *config) {
		cfg.wavelet = name
	}
}

// WithMode selects the boundary extension mode (default symmetric).
func WithMode(m dwt.Mode) Option {
	return func(cfg *config) {
		cfg.mode = m
	}
}

// WithMask marks invalid samples. The returned baseline is forced to
// exactly zero wherever the mask is true. The mask must match the
// signal length.
func WithMask(mask []bool) Option {
	return func(cfg *config) {
		cfg.mask = mask
	}
}

// WithRegions declares samples known to be pure background. They are
// reset to their original values before every iteration so the clamp
// step cannot suppress them.
func WithRegions(regions ...Region) Option {
	return func(cfg *config) {
		cfg.regions = append(cfg.regions, regions...)
	}
}

// WithLevelNotice installs a callback invoked when a requested level
// exceeds the supported maximum and is clamped. The computation
// proceeds either way; the callback is advisory only.
func WithLevelNotice(fn func(requested, max int)) Option {
	return func(cfg *config) {
		cfg.notice = fn
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
