package protocols

import (
	"encoding/binary"
	"math/bits"

	"github.com/vybium/vybium-stark-core/internal/vybium-stark-core/core"
)

// twoP is the rejection threshold for draw_base_felts: a word is
// accepted only if it is strictly less than 2*P.
const twoP = uint64(2) * uint64(core.P)

// ChannelTime tracks how many mixes a Channel has absorbed in total and
// how many draws it has made since the last mix.
type ChannelTime struct {
	NChallenges uint64
	NSent       uint64
}

func (t *ChannelTime) incSent() { t.NSent++ }

func (t *ChannelTime) incChallenges() {
	t.NChallenges++
	t.NSent = 0
}

// Channel is a Fiat-Shamir transcript: a running digest plus the two
// counters that make every draw depend on everything mixed so far and
// on its own position among draws since the last mix. Channel
// operations are not safe for concurrent use — the contract is strictly
// single-threaded, matching a sequential Fiat-Shamir transcript.
type Channel struct {
	digest core.Hash
	time   ChannelTime
}

// NewChannel returns a channel with a zero digest and zero counters.
func NewChannel() *Channel {
	return &Channel{}
}

func (c *Channel) Digest() core.Hash { return c.digest }
func (c *Channel) Time() ChannelTime { return c.time }

func (c *Channel) mix(payload []byte) {
	c.digest = core.HashBytes(c.digest[:], payload)
	c.time.incChallenges()
}

// MixFelts mixes a sequence of secure field elements, each contributing
// 16 little-endian bytes (its four base coordinates).
func (c *Channel) MixFelts(xs []core.QM31) {
	buf := make([]byte, 0, 16*len(xs))
	for _, x := range xs {
		b := x.Bytes()
		buf = append(buf, b[:]...)
	}
	c.mix(buf)
}

// MixU32s mixes a sequence of 32-bit words, each as 4 little-endian
// bytes, in order.
func (c *Channel) MixU32s(ws []uint32) {
	buf := make([]byte, 4*len(ws))
	for i, w := range ws {
		binary.LittleEndian.PutUint32(buf[4*i:], w)
	}
	c.mix(buf)
}

// MixU64 mixes v as MixU32s([v&0xFFFFFFFF, v>>32]) — the low word first.
func (c *Channel) MixU64(v uint64) {
	c.MixU32s([]uint32{uint32(v), uint32(v >> 32)})
}

// MixRoot mixes a 32-byte Merkle root.
func (c *Channel) MixRoot(h core.Hash) {
	c.mix(h[:])
}

// DrawRandomBytes returns BLAKE2s(digest || counter_block), where
// counter_block is 32 bytes holding n_sent as a little-endian 64-bit
// integer followed by zero padding. It does not change the digest.
func (c *Channel) DrawRandomBytes() [32]byte {
	var counter [32]byte
	binary.LittleEndian.PutUint64(counter[:8], c.time.NSent)
	c.time.incSent()
	return [32]byte(core.HashBytes(c.digest[:], counter[:]))
}

// DrawBaseFelts draws eight uniform base field elements via rejection
// sampling: it reads 32 bytes as eight little-endian words and retries
// until every word is strictly less than 2*P (probability of any single
// retry is about 2^-28).
func (c *Channel) DrawBaseFelts() [8]core.M31 {
	for {
		raw := c.DrawRandomBytes()
		var words [8]uint32
		accepted := true
		for i := 0; i < 8; i++ {
			words[i] = binary.LittleEndian.Uint32(raw[4*i:])
			if uint64(words[i]) >= twoP {
				accepted = false
			}
		}
		if !accepted {
			continue
		}
		var out [8]core.M31
		for i, w := range words {
			out[i] = core.NewM31FromU32Reducing(w)
		}
		return out
	}
}

// DrawFelt draws one secure field element from the first four base
// coordinates of one DrawBaseFelts call.
func (c *Channel) DrawFelt() core.QM31 {
	b := c.DrawBaseFelts()
	return core.NewQM31FromBaseCoords(b[0], b[1], b[2], b[3])
}

// DrawFelts draws n secure field elements, packing each group of four
// consecutive base elements from repeated DrawBaseFelts calls.
func (c *Channel) DrawFelts(n int) []core.QM31 {
	out := make([]core.QM31, 0, n)
	for len(out) < n {
		b := c.DrawBaseFelts()
		out = append(out,
			core.NewQM31FromBaseCoords(b[0], b[1], b[2], b[3]),
			core.NewQM31FromBaseCoords(b[4], b[5], b[6], b[7]),
		)
	}
	return out[:n]
}

// TrailingZeros reinterprets the first 16 bytes of the digest as a
// little-endian 128-bit integer and returns its trailing zero bit count.
func (c *Channel) TrailingZeros() uint32 {
	lo := binary.LittleEndian.Uint64(c.digest[0:8])
	if lo != 0 {
		return uint32(bits.TrailingZeros64(lo))
	}
	hi := binary.LittleEndian.Uint64(c.digest[8:16])
	if hi != 0 {
		return 64 + uint32(bits.TrailingZeros64(hi))
	}
	return 128
}
