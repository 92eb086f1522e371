package vybiumstarkcore

import "github.com/vybium/vybium-stark-core/internal/vybium-stark-core/protocols"

// CommitOnLayer hashes a Merkle layer of 2^logSize rows from an optional
// previous layer's hashes and zero or more columns of field elements,
// dispatching to a scalar path or the vectorized BLAKE2s-16 path
// depending on logSize. prevLayer, if non-nil, must have length
// 2<<logSize; every column must have length 1<<logSize. Mismatched
// lengths are a caller contract violation and panic.
func CommitOnLayer(logSize int, prevLayer []Hash, columns []Column) []Hash {
	return protocols.CommitOnLayer(logSize, prevLayer, columns)
}
