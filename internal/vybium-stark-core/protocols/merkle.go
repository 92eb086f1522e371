// Package protocols implements the Merkle commitment engine, the
// Fiat-Shamir channel and proof-of-work grinder, and the circle-domain
// bit-reversed iterator, all built on the field and hashing primitives
// in core.
package protocols

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/vybium/vybium-stark-core/internal/vybium-stark-core/core"
	"github.com/vybium/vybium-stark-core/internal/vybium-stark-core/utils"
)

// Column is an ordered, fixed-length sequence of base-field elements.
type Column []core.M31

// vectorizedThreshold is the minimum layer log-size for the packed
// 16-row-chunk commit path; smaller layers use the scalar fallback.
const vectorizedThreshold = 4

// CommitOnLayer folds prevLayer (if any) and columns into one hash per
// row of a layer of size 2^logSize. prevLayer, when present, must have
// length 2^(logSize+1); every column must have length 2^logSize.
// Mismatches are programmer errors and panic rather than returning an
// error, per the contract-violation taxonomy.
func CommitOnLayer(logSize int, prevLayer []core.Hash, columns []Column) []core.Hash {
	n := 1 << logSize
	if prevLayer != nil && len(prevLayer) != 2*n {
		panic(fmt.Sprintf("protocols: prev_layer length %d != 2^(logSize+1) = %d", len(prevLayer), 2*n))
	}
	for i, col := range columns {
		if len(col) != n {
			panic(fmt.Sprintf("protocols: column %d length %d != 2^logSize = %d", i, len(col), n))
		}
	}

	if logSize < vectorizedThreshold {
		return commitScalar(n, prevLayer, columns)
	}
	return commitVectorized(n, prevLayer, columns)
}

func commitScalar(n int, prevLayer []core.Hash, columns []Column) []core.Hash {
	out := make([]core.Hash, n)
	for row := 0; row < n; row++ {
		out[row] = scalarHashNode(prevLayer, row, columns)
	}
	return out
}

// scalarHashNode implements the node hash contract: BLAKE2s of the two
// child hashes (if any) followed by each column's little-endian 4-byte
// value at row, concatenated in column order.
func scalarHashNode(prevLayer []core.Hash, row int, columns []Column) core.Hash {
	parts := make([][]byte, 0, 2+len(columns))
	if prevLayer != nil {
		left := prevLayer[2*row]
		right := prevLayer[2*row+1]
		parts = append(parts, left[:], right[:])
	}
	for _, col := range columns {
		b := col[row].Bytes()
		parts = append(parts, b[:])
	}
	return core.HashBytes(parts...)
}

func commitVectorized(n int, prevLayer []core.Hash, columns []Column) []core.Hash {
	out := make([]core.Hash, n)
	numChunks := n / core.LaneCount

	g := new(errgroup.Group)
	g.SetLimit(utils.GlobalRuntimeConfig().ResolvedWorkers())
	for chunk := 0; chunk < numChunks; chunk++ {
		chunk := chunk
		g.Go(func() error {
			commitChunk(out, chunk, prevLayer, columns)
			return nil
		})
	}
	_ = g.Wait() // commitChunk never errors; chunks are independent.
	return out
}

// commitChunk computes the 16 hashes for rows [chunk*16, chunk*16+16)
// by packing them into a single vectorized BLAKE2s stream, per the
// vectorized node hash contract.
//
// BLAKE2s finalizes exactly one block, whatever its length — never a
// full non-final block followed by a gratuitous empty final one. With no
// columns, the previous-layer block (or, with neither prev layer nor
// columns, the empty block) is itself that final block; otherwise the
// previous-layer block is non-final and the last group of up to 16
// columns is reserved for the finalize call.
func commitChunk(out []core.Hash, chunk int, prevLayer []core.Hash, columns []Column) {
	base := chunk * core.LaneCount
	h := core.LeafInitialState()

	if len(columns) == 0 {
		var t uint64
		var msgs [16][16]uint32
		if prevLayer != nil {
			t = 64
			for lane := 0; lane < core.LaneCount; lane++ {
				row := base + lane
				left := prevLayer[2*row]
				right := prevLayer[2*row+1]
				for w := 0; w < 8; w++ {
					msgs[lane][w] = binary.LittleEndian.Uint32(left[4*w:])
					msgs[lane][8+w] = binary.LittleEndian.Uint32(right[4*w:])
				}
			}
		}
		core.CompressFinalize(&h, core.TransposeMsgs(msgs), t)
		writeChunkHashes(out, base, h)
		return
	}

	var t uint64
	if prevLayer != nil {
		var msgs [16][16]uint32
		for lane := 0; lane < core.LaneCount; lane++ {
			row := base + lane
			left := prevLayer[2*row]
			right := prevLayer[2*row+1]
			for w := 0; w < 8; w++ {
				msgs[lane][w] = binary.LittleEndian.Uint32(left[4*w:])
				msgs[lane][8+w] = binary.LittleEndian.Uint32(right[4*w:])
			}
		}
		t += 64
		core.CompressUnfinalized(&h, core.TransposeMsgs(msgs), t)
	}

	numGroups := (len(columns) + core.LaneCount - 1) / core.LaneCount
	for g := 0; g < numGroups; g++ {
		colIdx := g * core.LaneCount
		groupSize := len(columns) - colIdx
		if groupSize > core.LaneCount {
			groupSize = core.LaneCount
		}

		var msgs [16][16]uint32
		for lane := 0; lane < core.LaneCount; lane++ {
			row := base + lane
			for w := 0; w < groupSize; w++ {
				msgs[lane][w] = uint32(columns[colIdx+w][row])
			}
		}

		last := g == numGroups-1
		if last {
			t += uint64(4 * groupSize)
			core.CompressFinalize(&h, core.TransposeMsgs(msgs), t)
		} else {
			t += 64
			core.CompressUnfinalized(&h, core.TransposeMsgs(msgs), t)
		}
	}

	writeChunkHashes(out, base, h)
}

func writeChunkHashes(out []core.Hash, base int, h core.HashState) {
	hashes := core.UntransposeStates(h)
	for lane := 0; lane < core.LaneCount; lane++ {
		out[base+lane] = core.StateToHash(hashes[lane])
	}
}
