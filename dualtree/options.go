package dualtree

import "github.com/cwbudde/algo-wavelet/dwt"

// Defaults used when the corresponding option is omitted.
const (
	// DefaultFirstStage is the wavelet used at the finest level.
	DefaultFirstStage = "bior2.2"

	// DefaultWavelet is the steady-state quarter-shift wavelet used at
	// every coarser level.
	DefaultWavelet = "qshift_a"
)

// LevelMax requests the deepest decomposition level supported by the
// signal and filter lengths. It is the default of WithLevel.
const LevelMax = -1

type config struct {
	firstStage string
	wavelet    string
	mode       dwt.Mode
	level      int
}

func defaultConfig() config {
	return config{
		firstStage: DefaultFirstStage,
		wavelet:    DefaultWavelet,
		mode:       dwt.ModeSymmetric,
		level:      LevelMax,
	}
}

// Option configures the dual-tree transform functions.
type Option func(*config)

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

// WithLevel sets the decomposition level. Level 0 is the identity
// transform; LevelMax (the default) resolves to the deepest supported
// level. Any other negative value is rejected by the transform entry
// points.
func WithLevel(level int) Option {
	return func(cfg *config) {
		cfg.level = level
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
