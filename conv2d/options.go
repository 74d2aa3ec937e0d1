package conv2d

import "runtime"

// config holds resolved convolution settings.
type config struct {
	workers           int
	spectralThreshold int
	serialOnly        bool
}

// Option mutates a config.
type Option func(*config)

func defaultConfig() config {
	return config{
		workers:           runtime.NumCPU(),
		spectralThreshold: defaultSpectralThreshold,
	}
}

// WithWorkers sets the fixed worker pool size for the parallel path.
// Values below 1 are ignored.
func WithWorkers(n int) Option {
	return func(cfg *config) {
		if n >= 1 {
			cfg.workers = n
		}
	}
}

// WithSpectralThreshold sets the kernel tap count at which Convolve switches
// to the FFT-based path. A value of 0 or below disables spectral selection.
func WithSpectralThreshold(taps int) Option {
	return func(cfg *config) {
		cfg.spectralThreshold = taps
	}
}

// WithSerialOnly forces the single-threaded reference path regardless of
// kernel size or worker configuration.
func WithSerialOnly() Option {
	return func(cfg *config) {
		cfg.serialOnly = true
	}
}

// applyOptions applies zero or more options to the default config.
func applyOptions(opts ...Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
