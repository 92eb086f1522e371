package core

import (
	"encoding/binary"
	"testing"
)

func wordsToBytes(words [16]uint32) []byte {
	b := make([]byte, 64)
	for i, w := range words {
		binary.LittleEndian.PutUint32(b[4*i:], w)
	}
	return b
}

// TestTransposeIsSelfInverse checks transpose_msgs is its own inverse,
// as required by the message-transpose/untranspose property.
func TestTransposeIsSelfInverse(t *testing.T) {
	var msgs [16][16]uint32
	for j := 0; j < 16; j++ {
		for k := 0; k < 16; k++ {
			msgs[j][k] = uint32(j*16 + k)
		}
	}
	block := TransposeMsgs(msgs)

	var back [16][16]uint32
	for j := 0; j < 16; j++ {
		for k := 0; k < 16; k++ {
			back[j][k] = block[k][j]
		}
	}
	if back != msgs {
		t.Fatal("transpose composed with itself did not reproduce the original messages")
	}
}

// TestHash16MatchesScalarReference verifies that, after untranspose,
// the vector compressor's output for sixteen independent 64-byte
// messages equals the scalar BLAKE2s-256 reference applied per-lane.
func TestHash16MatchesScalarReference(t *testing.T) {
	var msgs [16][16]uint32
	for j := 0; j < 16; j++ {
		for k := 0; k < 16; k++ {
			msgs[j][k] = uint32(j*1000 + k)
		}
	}

	block := TransposeMsgs(msgs)
	state := Hash16(block, 64)
	got := UntransposeStates(state)

	for j := 0; j < 16; j++ {
		want := HashBytes(wordsToBytes(msgs[j]))
		gotHash := StateToHash(got[j])
		if gotHash != want {
			t.Errorf("lane %d: vector hash %x != scalar hash %x", j, gotHash, want)
		}
	}
}

// TestHash16PartialBlockMatchesScalar exercises a partial-block,
// finalized compression (the grinder's message shape) against the
// scalar reference, which zero-pads and uses t = len(data) internally.
func TestHash16PartialBlockMatchesScalar(t *testing.T) {
	var msgs [16][16]uint32
	for j := 0; j < 16; j++ {
		for w := 0; w < 10; w++ {
			msgs[j][w] = uint32(j*7 + w)
		}
		// words 10..15 stay zero, matching the grinder's message layout.
	}

	block := TransposeMsgs(msgs)
	state := Hash16(block, 40)
	got := UntransposeStates(state)

	for j := 0; j < 16; j++ {
		data := wordsToBytes(msgs[j])[:40]
		want := HashBytes(data)
		gotHash := StateToHash(got[j])
		if gotHash != want {
			t.Errorf("lane %d: partial-block vector hash %x != scalar hash %x", j, gotHash, want)
		}
	}
}

// TestCompressUnfinalizedThenFinalizeMatchesMultiBlockScalar checks the
// two-block (unfinalized + finalize) path against a scalar hash of the
// concatenated message.
func TestCompressUnfinalizedThenFinalizeMatchesMultiBlockScalar(t *testing.T) {
	var first, second [16][16]uint32
	for j := 0; j < 16; j++ {
		for k := 0; k < 16; k++ {
			first[j][k] = uint32(j + k)
			second[j][k] = uint32(2*j + 3*k)
		}
	}

	h := LeafInitialState()
	CompressUnfinalized(&h, TransposeMsgs(first), 64)
	CompressFinalize(&h, TransposeMsgs(second), 128)
	got := UntransposeStates(h)

	for j := 0; j < 16; j++ {
		data := append(wordsToBytes(first[j]), wordsToBytes(second[j])...)
		want := HashBytes(data)
		gotHash := StateToHash(got[j])
		if gotHash != want {
			t.Errorf("lane %d: two-block vector hash %x != scalar hash %x", j, gotHash, want)
		}
	}
}
