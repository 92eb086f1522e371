package protocols

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/vybium/vybium-stark-core/internal/vybium-stark-core/core"
)

func hexDigest(t *testing.T, s string) [32]byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatal(err)
	}
	var out [32]byte
	copy(out[:], b)
	return out
}

func TestMixU64MatchesPublishedDigest(t *testing.T) {
	c := NewChannel()
	c.MixU64(0x1111222233334444)

	want := hexDigest(t, "bc9e3fc1d24e8897956d3359327397249d6bcacd224d927404e7ba4a77dc6ece")
	if !bytes.Equal(c.Digest()[:], want[:]) {
		t.Fatalf("mix_u64 digest = %x, want %x", c.Digest(), want)
	}
}

func TestMixU64EqualsEquivalentMixU32s(t *testing.T) {
	a := NewChannel()
	a.MixU64(0x1111222233334444)

	b := NewChannel()
	b.MixU32s([]uint32{0x33334444, 0x11112222})

	if a.Digest() != b.Digest() {
		t.Fatalf("mix_u64 digest %x != equivalent mix_u32s digest %x", a.Digest(), b.Digest())
	}
}

func TestMixU32sSequenceMatchesPublishedDigest(t *testing.T) {
	c := NewChannel()
	c.MixU32s([]uint32{1, 2, 3, 4, 5, 6, 7, 8, 9})

	want := hexDigest(t, "7091768357bb1bb3346fdab6b357d7fa46b8fbe32c2e4324a0ffc294cbf9a1c7")
	if !bytes.Equal(c.Digest()[:], want[:]) {
		t.Fatalf("mix_u32s digest = %x, want %x", c.Digest(), want)
	}
}

func TestMixOperationsResetSentAndIncrementChallenges(t *testing.T) {
	c := NewChannel()
	c.DrawRandomBytes()
	c.DrawRandomBytes()
	if c.Time().NSent != 2 {
		t.Fatalf("n_sent = %d, want 2", c.Time().NSent)
	}

	c.MixU64(42)
	tm := c.Time()
	if tm.NChallenges != 1 || tm.NSent != 0 {
		t.Fatalf("after mix, time = %+v, want {NChallenges:1 NSent:0}", tm)
	}
}

func TestDrawRandomBytesDoesNotChangeDigest(t *testing.T) {
	c := NewChannel()
	before := c.Digest()
	c.DrawRandomBytes()
	if c.Digest() != before {
		t.Fatal("draw_random_bytes must not mutate the digest")
	}
}

func TestDrawRandomBytesDiffersFromBareDigestHash(t *testing.T) {
	// Scenario 1: starting from a zero digest, draw_random_bytes must not
	// equal BLAKE2s(32 zero bytes) alone — the counter block matters.
	c := NewChannel()
	drawn := c.DrawRandomBytes()

	var zeroDigest [32]byte
	bare := core.HashBytes(zeroDigest[:])
	if drawn == [32]byte(bare) {
		t.Fatal("draw_random_bytes must differ from hashing the digest alone")
	}
}

func TestDrawFeltsPacksFourBaseElementsEach(t *testing.T) {
	c := NewChannel()
	felts := c.DrawFelts(5)
	if len(felts) != 5 {
		t.Fatalf("DrawFelts(5) returned %d elements", len(felts))
	}

	ref := NewChannel()
	var base []core.M31
	for len(base) < 4*len(felts) {
		b := ref.DrawBaseFelts()
		base = append(base, b[:]...)
	}
	for i, f := range felts {
		want := core.NewQM31FromBaseCoords(base[4*i], base[4*i+1], base[4*i+2], base[4*i+3])
		if !f.Equals(want) {
			t.Errorf("felt %d = %v, want base elements %d..%d packed", i, f, 4*i, 4*i+3)
		}
	}
}
