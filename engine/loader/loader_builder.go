package loader

import (
	"go.uber.org/zap"
)

// LoaderBuilderOption is a functional option for configuring a Loader via NewLoader.
type LoaderBuilderOption func(*loader)

// WithWorkers sets the number of decode workers. Values below 1 are ignored.
//
// Parameters:
//   - n: the worker count
//
// Returns:
//   - LoaderBuilderOption: a function that applies the option to a loader
func WithWorkers(n int) LoaderBuilderOption {
	return func(l *loader) {
		if n > 0 {
			l.workers = n
		}
	}
}

// WithLogger sets the logger for load results.
//
// Parameters:
//   - logger: the logger
//
// Returns:
//   - LoaderBuilderOption: a function that applies the option to a loader
func WithLogger(logger *zap.Logger) LoaderBuilderOption {
	return func(l *loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithRules replaces the default classification rules.
//
// Parameters:
//   - r: the rules
//
// Returns:
//   - LoaderBuilderOption: a function that applies the option to a loader
func WithRules(r Rules) LoaderBuilderOption {
	return func(l *loader) {
		l.rules = r
	}
}

// WithDefaultGround adds a square ground plane of the given size at the origin when the loader is created.
//
// Parameters:
//   - size: the edge length of the plane
//
// Returns:
//   - LoaderBuilderOption: a function that applies the option to a loader
func WithDefaultGround(size float32) LoaderBuilderOption {
	return func(l *loader) {
		l.ground = size
	}
}

// WithOnFinish sets a callback run by Poll for every applied or failed manifest.
//
// Parameters:
//   - fn: the callback
//
// Returns:
//   - LoaderBuilderOption: a function that applies the option to a loader
func WithOnFinish(fn func(Result)) LoaderBuilderOption {
	return func(l *loader) {
		l.onFinish = fn
	}
}
