package core

import "golang.org/x/crypto/blake2s"

// Hash is an opaque 32-byte digest, the uniform output of every hashing
// operation in this module.
type Hash [32]byte

// HashBytes hashes the concatenation of its arguments with scalar
// BLAKE2s-256 (key length 0, digest length 32). Its default initial
// state is byte-identical to the vector compressor's leaf initial
// state, so scalar and vectorized code paths agree by construction.
func HashBytes(parts ...[]byte) Hash {
	h, err := blake2s.New256(nil)
	if err != nil {
		// blake2s.New256(nil) only fails for an invalid key length;
		// a nil key is always valid.
		panic(err)
	}
	for _, p := range parts {
		h.Write(p)
	}
	var out Hash
	copy(out[:], h.Sum(nil))
	return out
}
