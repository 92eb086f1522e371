package core

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/vybium/vybium-stark-core/internal/vybium-stark-core/utils"
)

// BatchInverse inverts every element of elems using Montgomery's trick:
// one accumulated-product inversion plus 3(n-1) multiplications, instead
// of n independent inversions.
func BatchInverse(elems []M31) ([]M31, error) {
	n := len(elems)
	if n == 0 {
		return nil, nil
	}
	if n == 1 {
		inv, err := elems[0].Inverse()
		if err != nil {
			return nil, err
		}
		return []M31{inv}, nil
	}

	for i, e := range elems {
		if e.IsZero() {
			return nil, fmt.Errorf("core: cannot batch-invert zero element at index %d", i)
		}
	}

	acc := make([]M31, n)
	acc[0] = elems[0]
	for i := 1; i < n; i++ {
		acc[i] = acc[i-1].Mul(elems[i])
	}

	accInv, err := acc[n-1].Inverse()
	if err != nil {
		return nil, fmt.Errorf("core: failed to invert batch accumulator: %w", err)
	}

	out := make([]M31, n)
	for i := n - 1; i > 0; i-- {
		out[i] = accInv.Mul(acc[i-1])
		accInv = accInv.Mul(elems[i])
	}
	out[0] = accInv
	return out, nil
}

// ParallelBatchInverse splits large batches across goroutines managed by
// an errgroup, each running BatchInverse on its own chunk. Every worker
// runs to completion; the first worker error is returned.
func ParallelBatchInverse(ctx context.Context, elems []M31) ([]M31, error) {
	n := len(elems)
	cfg := utils.GlobalRuntimeConfig()
	if n < cfg.ParallelBatchThreshold {
		return BatchInverse(elems)
	}

	workers := cfg.ResolvedWorkers()
	chunk := (n + workers - 1) / workers
	out := make([]M31, n)

	g, _ := errgroup.WithContext(ctx)
	for start := 0; start < n; start += chunk {
		start := start
		end := start + chunk
		if end > n {
			end = n
		}
		g.Go(func() error {
			inv, err := BatchInverse(elems[start:end])
			if err != nil {
				return err
			}
			copy(out[start:end], inv)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
