package protocols

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/bits"
	"runtime"
	"sync"

	"github.com/vybium/vybium-stark-core/internal/vybium-stark-core/core"
)

// ErrNonceSpaceExhausted is the panic value Grind raises if every 64-bit
// nonce has been tried without finding one that clears powBits. Unlike
// the pow_bits>32 contract violation, callers may want to recognize and
// report this one distinctly, so it is a sentinel rather than a bare
// string.
var ErrNonceSpaceExhausted = errors.New("protocols: grind exhausted the 64-bit nonce space without finding a solution")

// grindLowBits caps the low-nonce sweep a single goroutine performs
// before its bucket is exhausted; it bounds how long any thread can run
// past the point where the global minimum has already been found.
const grindLowBits = 20
const grindHiBits = 64 - grindLowBits

// Grind finds the smallest 64-bit nonce such that BLAKE2s(digest ||
// nonce_le || zero-padding) has at least powBits trailing zero bits in
// its first little-endian 32-bit word. powBits must not exceed 32.
//
// Buckets of 2^grindLowBits consecutive nonces are searched concurrently
// in batches sized to GOMAXPROCS; a batch's buckets all complete before
// results are inspected, so the nonce returned is always the true
// minimum rather than the first bucket to finish.
func Grind(ch *Channel, powBits uint32) uint64 {
	if powBits > 32 {
		panic(fmt.Sprintf("protocols: pow_bits %d > 32 is not supported", powBits))
	}

	digest := ch.Digest()
	var digestWords [8]uint32
	for i := range digestWords {
		digestWords[i] = binary.LittleEndian.Uint32(digest[4*i:])
	}

	numBuckets := uint64(1) << grindHiBits
	batch := uint64(runtime.GOMAXPROCS(0))
	if batch < 1 {
		batch = 1
	}

	for base := uint64(0); base < numBuckets; base += batch {
		end := base + batch
		if end > numBuckets {
			end = numBuckets
		}

		results := make([]uint64, end-base)
		found := make([]bool, end-base)
		var wg sync.WaitGroup
		for hi := base; hi < end; hi++ {
			hi := hi
			idx := hi - base
			wg.Add(1)
			go func() {
				defer wg.Done()
				if nonce, ok := grindBucket(digestWords, hi, powBits); ok {
					results[idx] = nonce
					found[idx] = true
				}
			}()
		}
		wg.Wait()

		best, ok := uint64(0), false
		for i := range found {
			if found[i] && (!ok || results[i] < best) {
				best, ok = results[i], true
			}
		}
		if ok {
			return best
		}
	}

	panic(ErrNonceSpaceExhausted)
}

// grindBucket sweeps the 2^grindLowBits low nonces of high-bucket hi,
// sixteen at a time, returning the smallest nonce in the bucket whose
// hash clears powBits trailing zero bits.
func grindBucket(digest [8]uint32, hi uint64, powBits uint32) (uint64, bool) {
	low0 := hi << grindLowBits
	for low := uint64(0); low < (1 << grindLowBits); low += core.LaneCount {
		var msgs [16][16]uint32
		for lane := 0; lane < core.LaneCount; lane++ {
			copy(msgs[lane][0:8], digest[:])
			nonce := low0 + low + uint64(lane)
			msgs[lane][8] = uint32(nonce)
			msgs[lane][9] = uint32(nonce >> 32)
		}

		state := core.Hash16(core.TransposeMsgs(msgs), 40)
		hashes := core.UntransposeStates(state)
		for lane := 0; lane < core.LaneCount; lane++ {
			if uint32(bits.TrailingZeros32(hashes[lane][0])) >= powBits {
				return low0 + low + uint64(lane), true
			}
		}
	}
	return 0, false
}
