package utils

import (
	"fmt"
	"runtime"
	"sync"
)

// RuntimeConfig holds the parallelism knobs shared by batch field
// inversion, the Merkle commitment engine, and the domain iterator's
// parallel traversal. Unlike the teacher's prover-wide Config, this module has no
// field modulus, trace length, or FRI parameters to carry — there is no
// prover here, only the primitives underneath one.
type RuntimeConfig struct {
	// Workers is the number of goroutines used for chunked or batched
	// work. Zero means "ask the runtime for GOMAXPROCS at call time."
	Workers int

	// ParallelBatchThreshold is the minimum element count before batch
	// field operations (e.g. ParallelBatchInverse) switch from serial to
	// parallel execution.
	ParallelBatchThreshold int
}

// DefaultRuntimeConfig sets Workers to 0, which ResolvedWorkers turns
// into runtime.GOMAXPROCS(0) at call time, and ParallelBatchThreshold to
// 1024.
func DefaultRuntimeConfig() *RuntimeConfig {
	return &RuntimeConfig{
		Workers:                0,
		ParallelBatchThreshold: 1024,
	}
}

// ResolvedWorkers returns Workers, or runtime.GOMAXPROCS(0) if Workers is
// zero.
func (c *RuntimeConfig) ResolvedWorkers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// Validate checks that the configuration's fields are usable.
func (c *RuntimeConfig) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("utils: workers must be >= 0, got %d", c.Workers)
	}
	if c.ParallelBatchThreshold < 0 {
		return fmt.Errorf("utils: parallel batch threshold must be >= 0, got %d", c.ParallelBatchThreshold)
	}
	return nil
}

// WithWorkers sets the worker count.
func (c *RuntimeConfig) WithWorkers(n int) *RuntimeConfig {
	c.Workers = n
	return c
}

// WithParallelBatchThreshold sets the parallel-batch threshold.
func (c *RuntimeConfig) WithParallelBatchThreshold(n int) *RuntimeConfig {
	c.ParallelBatchThreshold = n
	return c
}

// Clone returns an independent copy of c.
func (c *RuntimeConfig) Clone() *RuntimeConfig {
	return &RuntimeConfig{
		Workers:                c.Workers,
		ParallelBatchThreshold: c.ParallelBatchThreshold,
	}
}

var (
	globalMu     sync.RWMutex
	globalConfig = DefaultRuntimeConfig()
)

// SetGlobalRuntimeConfig installs cfg as the RuntimeConfig consulted by
// ParallelBatchInverse, commitVectorized, and ParallelEach — the call
// sites that don't take an explicit config and otherwise fall back to
// GOMAXPROCS-derived defaults. Panics if cfg fails Validate.
func SetGlobalRuntimeConfig(cfg *RuntimeConfig) {
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("utils: invalid runtime config: %v", err))
	}
	globalMu.Lock()
	defer globalMu.Unlock()
	globalConfig = cfg.Clone()
}

// GlobalRuntimeConfig returns a copy of the currently installed global
// RuntimeConfig.
func GlobalRuntimeConfig() *RuntimeConfig {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalConfig.Clone()
}
