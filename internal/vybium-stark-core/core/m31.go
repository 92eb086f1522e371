// Package core implements the field, hashing, and domain primitives that
// every higher-level protocol in this module is built on.
package core

import (
	"encoding/binary"
	"fmt"
)

// P is the Mersenne-31 prime, 2^31 - 1.
const P uint32 = 0x7FFFFFFF

// M31 is an element of the field GF(P), always held in canonical form
// (value < P).
type M31 uint32

// NewM31FromU32Unchecked wraps v as an M31 without reducing it. Callers
// must guarantee v < P.
func NewM31FromU32Unchecked(v uint32) M31 {
	return M31(v)
}

// NewM31FromU32Reducing reduces an arbitrary v into [0, P).
func NewM31FromU32Reducing(v uint32) M31 {
	return reduce64(uint64(v))
}

// NewM31FromI32Reducing reduces a signed value into [0, P).
func NewM31FromI32Reducing(v int32) M31 {
	r := int64(v) % int64(P)
	if r < 0 {
		r += int64(P)
	}
	return M31(r)
}

func partialReduce(x uint32) uint32 {
	if x >= P {
		return x - P
	}
	return x
}

// reduce64 folds an arbitrary 64-bit value into [0, P) using the
// Mersenne shift-and-add identity, twice, followed by a partial reduce.
func reduce64(x uint64) M31 {
	x = (x & uint64(P)) + (x >> 31)
	x = (x & uint64(P)) + (x >> 31)
	return M31(partialReduce(uint32(x)))
}

// Zero returns the additive identity. It ignores its receiver; the
// method exists so M31 satisfies the ring constraint used by generic
// callers such as CirclePoint.
func (M31) Zero() M31 { return M31(0) }

// One returns the multiplicative identity.
func (M31) One() M31 { return M31(1) }

func (a M31) IsZero() bool { return a == 0 }
func (a M31) IsOne() bool  { return a == 1 }

func (a M31) Add(b M31) M31 {
	return M31(partialReduce(uint32(a) + uint32(b)))
}

func (a M31) Sub(b M31) M31 {
	return M31(partialReduce(uint32(a) + P - uint32(b)))
}

func (a M31) Neg() M31 {
	if a == 0 {
		return 0
	}
	return M31(P - uint32(a))
}

func (a M31) Mul(b M31) M31 {
	return reduce64(uint64(a) * uint64(b))
}

func (a M31) Square() M31 {
	return a.Mul(a)
}

// Pow raises a to the given exponent via square-and-multiply.
func (a M31) Pow(exp uint32) M31 {
	result := M31(1)
	base := a
	for exp > 0 {
		if exp&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		exp >>= 1
	}
	return result
}

// Inverse computes a^(P-2), the multiplicative inverse. It returns an
// error for a == 0 rather than silently returning zero, per the
// contract that inversion of zero is undefined, not zero.
func (a M31) Inverse() (M31, error) {
	if a.IsZero() {
		return 0, fmt.Errorf("core: inverse of zero is undefined")
	}
	return a.Pow(P - 2), nil
}

// ComplexConjugate on the base field is the identity.
func (a M31) ComplexConjugate() M31 { return a }

func (a M31) Equals(b M31) bool { return a == b }

// Bytes encodes a as 4 little-endian bytes.
func (a M31) Bytes() [4]byte {
	var out [4]byte
	binary.LittleEndian.PutUint32(out[:], uint32(a))
	return out
}

func (a M31) String() string { return fmt.Sprintf("%d", uint32(a)) }
