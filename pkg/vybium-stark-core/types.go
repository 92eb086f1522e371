package vybiumstarkcore

import (
	"github.com/vybium/vybium-stark-core/internal/vybium-stark-core/core"
	"github.com/vybium/vybium-stark-core/internal/vybium-stark-core/protocols"
)

// Hash is a 32-byte BLAKE2s digest.
type Hash = core.Hash

// M31 is an element of GF(2^31-1).
type M31 = core.M31

// CM31 is an element of the degree-2 extension of M31.
type CM31 = core.CM31

// QM31 is an element of the degree-4 (secure) extension of M31.
type QM31 = core.QM31

// PackedM31 holds LaneCount independent M31 lanes.
type PackedM31 = core.PackedM31

// LaneCount is the fixed width of a packed vector.
const LaneCount = core.LaneCount

// Capabilities reports informational SIMD capability flags for the
// current CPU.
type Capabilities = core.Capabilities

// Column is one trace column's worth of field elements, committed
// row-wise by CommitOnLayer.
type Column = protocols.Column

// Channel is a Fiat-Shamir transcript: a running BLAKE2s digest plus a
// counter of challenges mixed in and a counter of draws since the last
// mix.
type Channel = protocols.Channel

// ChannelTime tracks how many challenges a Channel has absorbed and how
// many draws it has made since the last one.
type ChannelTime = protocols.ChannelTime

// Coset is a cyclic subgroup of the circle group.
type Coset = protocols.Coset

// CircleDomain is the union of a half-coset and its negation.
type CircleDomain = protocols.CircleDomain

// CircleDomainIterator traverses a CircleDomain in bit-reversed order,
// sixteen points at a time.
type CircleDomainIterator = protocols.CircleDomainIterator

// M31Point is a point on the unit circle with scalar M31 coordinates,
// the shape Coset.Initial and Coset.Step are built from.
type M31Point = core.CirclePoint[core.M31]

// PackedM31Point is a batch of LaneCount circle points, the shape the
// domain iterator and ParallelEach emit.
type PackedM31Point = core.CirclePoint[core.PackedM31]
