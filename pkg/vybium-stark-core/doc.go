// Package vybiumstarkcore provides the SIMD-oriented cryptographic
// primitives underneath a circle-domain STARK prover over the
// Mersenne-31 field: a vectorized BLAKE2s-16 compressor, a Merkle
// commitment engine built on it, a Fiat-Shamir channel with proof-of-work
// grinding, and a bit-reversed circle-domain iterator.
//
// This package is a computational core, not a prover. It has no trace,
// no constraint system, no FRI layer, and no CLI, configuration file, or
// persisted state — those live above this module, if at all.
//
// # Field arithmetic
//
// M31 is the base field GF(2^31-1); CM31 and QM31 are its degree-2 and
// degree-4 extensions. All three support the usual ring operations plus
// Inverse, which returns an error for zero rather than a sentinel zero
// value. InverseM31, InverseCM31 and InverseQM31 report that error as a
// *CoreError:
//
//	inv, err := vybiumstarkcore.InverseM31(vybiumstarkcore.NewM31FromU32Reducing(0))
//	if err != nil {
//		var coreErr *vybiumstarkcore.CoreError
//		if errors.As(err, &coreErr) && coreErr.Code == vybiumstarkcore.ErrFieldUndefined {
//			// handle undefined inverse
//		}
//	}
//
// # Merkle commitment
//
// CommitOnLayer hashes a layer of column values, and optionally a
// previous layer's hashes, into one Hash per row:
//
//	layer := vybiumstarkcore.CommitOnLayer(logSize, prevLayerOrNil, columns)
//
// # Fiat-Shamir channel and proof-of-work
//
// A Channel accumulates a running BLAKE2s digest via Mix* calls and
// derives pseudorandom field elements and bytes via Draw* calls, which
// never mutate the digest:
//
//	ch := vybiumstarkcore.NewChannel()
//	ch.MixU64(claimedSum)
//	nonce, err := vybiumstarkcore.Grind(ch, 20)
//
// # Circle-domain iteration
//
// A CircleDomainIterator walks a CircleDomain in bit-reversed order,
// sixteen points at a time, and ParallelEach shards that traversal
// across goroutines.
//
// # Architecture
//
//   - pkg/vybium-stark-core/: public API (this package)
//   - internal/vybium-stark-core/core: field, hash, and domain primitives
//   - internal/vybium-stark-core/protocols: Merkle, channel, grind, domain
//   - internal/vybium-stark-core/utils: shared helpers and RuntimeConfig
//
// Implementation details in internal/ can be refactored without breaking
// the public API.
package vybiumstarkcore
