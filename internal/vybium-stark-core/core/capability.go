package core

import "github.com/klauspost/cpuid/v2"

// Capabilities reports which SIMD instruction sets the running CPU
// supports. It is informational only: the packed types in this package
// are plain lane arrays, not hand-written vector assembly, so no code
// path branches on these flags. They exist for callers (benchmarks,
// capacity planning) that want to know what a "real" vectorized build
// would have used here.
type Capabilities struct {
	AVX2   bool
	AVX512 bool
	NEON   bool
	Lanes  int
}

// DetectCapabilities inspects the current CPU via cpuid.
func DetectCapabilities() Capabilities {
	return Capabilities{
		AVX2:   cpuid.CPU.Has(cpuid.AVX2),
		AVX512: cpuid.CPU.Has(cpuid.AVX512F),
		NEON:   cpuid.CPU.Has(cpuid.ASIMD),
		Lanes:  LaneCount,
	}
}
