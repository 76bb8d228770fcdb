package maxflow

import "go.uber.org/zap"

// Capacity extracts an arc's flow capacity from its payload.
type Capacity[A any] func(info A) float64

// Options configures EdmondsKarp/MinCut.
type Options struct {
	// Epsilon is the smallest capacity treated as "still usable"; residual
	// capacities at or below it are treated as zero, guarding against
	// floating-point drift across many augmentations.
	Epsilon float64
	// Logger traces each augmentation (path and bottleneck) at Debug
	// level. Default is a no-op logger: quiet unless WithLogger is given.
	Logger *zap.SugaredLogger
}

// Option is a functional option over Options.
type Option func(*Options)

// DefaultOptions returns the default epsilon of 1e-9 and a no-op logger.
func DefaultOptions() Options {
	return Options{Epsilon: 1e-9, Logger: zap.NewNop().Sugar()}
}

// WithEpsilon overrides the residual-capacity rounding threshold.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if eps > 0 {
			o.Epsilon = eps
		}
	}
}

// WithLogger replaces the default no-op logger with l, tracing every
// augmenting path EdmondsKarp/MinCut pushes flow along.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
