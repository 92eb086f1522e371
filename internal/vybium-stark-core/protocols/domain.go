package protocols

import (
	"context"
	"fmt"
	"math/bits"

	"golang.org/x/sync/errgroup"

	"github.com/vybium/vybium-stark-core/internal/vybium-stark-core/core"
	"github.com/vybium/vybium-stark-core/internal/vybium-stark-core/utils"
)

// Coset is a cyclic subgroup of the M31 circle group of order 2^LogSize,
// rooted at Initial and generated by Step. Deriving Step/Initial from a
// canonical circle-group generator is circle-curve arithmetic beyond
// what the iterator consumes, and is left to the caller per this
// module's scope.
type Coset struct {
	Initial core.CirclePoint[core.M31]
	Step    core.CirclePoint[core.M31]
	LogSize int
}

func (c Coset) Size() int { return 1 << c.LogSize }

func (c Coset) At(index int) core.CirclePoint[core.M31] {
	return c.Initial.Add(c.Step.MulU64(uint64(index)))
}

// NewCosetOfSize builds a Coset of the smallest power-of-two order that
// is at least size, for callers that know a desired coset size rather
// than its log. Panics if size is not positive.
func NewCosetOfSize(initial, step core.CirclePoint[core.M31], size int) Coset {
	if size <= 0 {
		panic(fmt.Sprintf("protocols: coset size %d must be positive", size))
	}
	rounded := utils.NextPowerOfTwo(size)
	if !utils.IsPowerOfTwo(rounded) {
		panic(fmt.Sprintf("protocols: NextPowerOfTwo(%d) = %d is not a power of two", size, rounded))
	}
	return Coset{Initial: initial, Step: step, LogSize: utils.Log2(rounded)}
}

// CircleDomain is the union of a half-coset and its negation, the
// standard evaluation domain shape for circle-curve STARKs.
type CircleDomain struct {
	HalfCoset Coset
}

func (d CircleDomain) LogSize() int { return d.HalfCoset.LogSize + 1 }
func (d CircleDomain) Size() int    { return 1 << d.LogSize() }

func (d CircleDomain) At(index int) core.CirclePoint[core.M31] {
	half := d.HalfCoset.Size()
	if index < half {
		return d.HalfCoset.At(index)
	}
	return d.HalfCoset.At(index - half).Neg()
}

// NewCircleDomainOfSize builds a CircleDomain whose full size is the
// smallest power of two at least size, by halving that order into the
// underlying half-coset. Panics if size is not positive or is 1 (the
// smallest domain is a one-point half-coset plus its negation).
func NewCircleDomainOfSize(halfInitial, halfStep core.CirclePoint[core.M31], size int) CircleDomain {
	if size <= 1 {
		panic(fmt.Sprintf("protocols: circle domain size %d must be greater than 1", size))
	}
	halfCoset := NewCosetOfSize(halfInitial, halfStep, (utils.NextPowerOfTwo(size))/2)
	return CircleDomain{HalfCoset: halfCoset}
}

func bitReverseIndex(i, logSize int) int {
	r := 0
	for b := 0; b < logSize; b++ {
		r |= ((i >> b) & 1) << (logSize - 1 - b)
	}
	return r
}

// CircleDomainIterator traverses a CircleDomain of size 2^k in
// bit-reversed order, sixteen points at a time, using one precomputed
// group addition per batch rather than a multiplication per point.
type CircleDomainIterator struct {
	domain  CircleDomain
	i       int
	current core.CirclePoint[core.PackedM31]
	flips   []core.CirclePoint[core.M31]
}

// NewCircleDomainIterator builds the delta table and seeds the first
// batch. The domain's log-size must be at least 4 (one packed batch).
func NewCircleDomainIterator(domain CircleDomain) *CircleDomainIterator {
	logSize := domain.LogSize()
	if logSize < 4 {
		panic(fmt.Sprintf("protocols: domain log_size %d < 4 is not supported by the packed iterator", logSize))
	}

	current := packedBatchAt(domain, 0)

	levels := logSize - 4
	// The extra zero-valued entry at index levels is only selected when
	// advancing past the final batch, whose successor is never emitted.
	flips := make([]core.CirclePoint[core.M31], levels+1)
	for e := 0; e < levels; e++ {
		prevMul := bitReverseIndex((1<<e)-1, levels)
		newMul := bitReverseIndex(1<<e, levels)
		flips[e] = domain.HalfCoset.Step.MulU64(uint64(newMul)).Sub(domain.HalfCoset.Step.MulU64(uint64(prevMul)))
	}

	return &CircleDomainIterator{domain: domain, i: 0, current: current, flips: flips}
}

// packedBatchAt reconstructs the 16-lane point batch starting at
// bit-reversed index i*16, directly from the domain.
func packedBatchAt(domain CircleDomain, i int) core.CirclePoint[core.PackedM31] {
	logSize := domain.LogSize()
	var xs, ys [core.LaneCount]core.M31
	for lane := 0; lane < core.LaneCount; lane++ {
		p := domain.At(bitReverseIndex(i<<4+lane, logSize))
		xs[lane] = p.X
		ys[lane] = p.Y
	}
	return core.CirclePoint[core.PackedM31]{X: core.PackedM31FromArray(xs), Y: core.PackedM31FromArray(ys)}
}

// StartAt reconstructs iterator state for batch cursor i directly from
// the domain, for use as an independent parallel shard. Two iterators
// started at disjoint positions emit the same sequence as one iterator
// over their union.
func (it *CircleDomainIterator) StartAt(i int) *CircleDomainIterator {
	return &CircleDomainIterator{
		domain:  it.domain,
		i:       i,
		current: packedBatchAt(it.domain, i),
		flips:   it.flips,
	}
}

// trailingOnes counts the number of trailing one-bits of i; trailingOnes(0) == 0.
func trailingOnes(i int) int {
	return bits.TrailingZeros(^uint(i))
}

// Next returns the current 16-point batch and advances the cursor. The
// second return value is false once 2^(k-4) batches have been emitted.
func (it *CircleDomainIterator) Next() (core.CirclePoint[core.PackedM31], bool) {
	if it.i<<4 >= it.domain.Size() {
		return core.CirclePoint[core.PackedM31]{}, false
	}
	res := it.current

	flip := it.flips[trailingOnes(it.i)]
	var yLanes [core.LaneCount]core.M31
	for lane := 0; lane < core.LaneCount; lane++ {
		if lane%2 == 0 {
			yLanes[lane] = flip.Y
		} else {
			yLanes[lane] = flip.Y.Neg()
		}
	}
	flipPacked := core.CirclePoint[core.PackedM31]{
		X: core.PackedM31Broadcast(flip.X),
		Y: core.PackedM31FromArray(yLanes),
	}
	it.current = it.current.Add(flipPacked)
	it.i++
	return res, true
}

// parallelEachStride is the chunk size handed to each worker in
// ParallelEach, mirroring the reference implementation's rayon stride.
const parallelEachStride = 1 << 12

// ParallelEach calls fn once for every batch of a CircleDomainIterator
// built fresh over domain, sharding work across goroutines in
// parallelEachStride-sized, index-contiguous runs via an errgroup. fn
// must be safe to call concurrently from multiple goroutines.
func ParallelEach(ctx context.Context, domain CircleDomain, fn func(batchIndex int, pts core.CirclePoint[core.PackedM31])) error {
	numBatches := domain.Size() / core.LaneCount
	base := NewCircleDomainIterator(domain)

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(utils.GlobalRuntimeConfig().ResolvedWorkers())
	for start := 0; start < numBatches; start += parallelEachStride {
		start := start
		end := start + parallelEachStride
		if end > numBatches {
			end = numBatches
		}
		g.Go(func() error {
			shard := base.StartAt(start)
			for i := start; i < end; i++ {
				pts, ok := shard.Next()
				if !ok {
					break
				}
				fn(i, pts)
			}
			return nil
		})
	}
	return g.Wait()
}
