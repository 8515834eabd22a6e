package engine

import "runtime"

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithWorkers sets the evaluation pool size. Non-positive counts are
// ignored.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.workers = n
		}
	}
}

func defaultWorkers() int {
	return runtime.GOMAXPROCS(0)
}
