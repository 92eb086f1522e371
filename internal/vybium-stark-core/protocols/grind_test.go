package protocols

import (
	"encoding/binary"
	"math/bits"
	"testing"

	"github.com/vybium/vybium-stark-core/internal/vybium-stark-core/core"
)

func TestGrindIsDeterministicAcrossRuns(t *testing.T) {
	base := NewChannel()
	base.MixU64(0)

	const powBits = 2
	const attempts = 50 // spec scenario uses 1000; trimmed for fast unit tests.

	first := Grind(base, powBits)
	for i := 1; i < attempts; i++ {
		ch := NewChannel()
		ch.MixU64(0)
		if got := Grind(ch, powBits); got != first {
			t.Fatalf("attempt %d: grind returned %d, want %d (deterministic)", i, got, first)
		}
	}
}

func TestGrindResultMeetsDifficultyAndIsMinimal(t *testing.T) {
	ch := NewChannel()
	ch.MixU64(12345)

	const powBits = 3
	nonce := Grind(ch, powBits)

	if tz := trailingZerosOfGrindCandidate(ch, nonce); tz < powBits {
		t.Fatalf("returned nonce %d has only %d trailing zero bits, want >= %d", nonce, tz, powBits)
	}
	for n := uint64(0); n < nonce; n++ {
		if tz := trailingZerosOfGrindCandidate(ch, n); tz >= powBits {
			t.Fatalf("nonce %d also clears difficulty %d but %d was returned as minimal", n, powBits, nonce)
		}
	}
}

func TestGrindPanicsAbovePowBits32(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for pow_bits > 32")
		}
	}()
	Grind(NewChannel(), 33)
}

// trailingZerosOfGrindCandidate recomputes the grinder's hash for a
// single candidate nonce via the scalar reference path, for use as an
// independent check on Grind's result.
func trailingZerosOfGrindCandidate(ch *Channel, nonce uint64) uint32 {
	digest := ch.Digest()
	var nonceBytes [8]byte
	binary.LittleEndian.PutUint64(nonceBytes[:], nonce)
	h := core.HashBytes(digest[:], nonceBytes[:])
	firstWord := binary.LittleEndian.Uint32(h[0:4])
	return uint32(bits.TrailingZeros32(firstWord))
}
