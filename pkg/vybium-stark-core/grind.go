package vybiumstarkcore

import (
	"errors"

	"github.com/vybium/vybium-stark-core/internal/vybium-stark-core/protocols"
)

// Grind finds the smallest 64-bit nonce such that mixing it into ch's
// digest leaves at least powBits trailing zero bits, without mutating
// ch. powBits must not exceed 32; violating that is a caller contract
// violation and panics. Exhausting the full nonce space without finding
// a solution is reported as an ErrGrindExhausted *CoreError instead of
// panicking, since it is not a programmer error, just astronomically
// unlikely.
func Grind(ch *Channel, powBits uint32) (nonce uint64, err error) {
	defer func() {
		if r := recover(); r != nil {
			if errors.Is(asError(r), protocols.ErrNonceSpaceExhausted) {
				err = &CoreError{Code: ErrGrindExhausted, Message: "grind exhausted the nonce space", Cause: protocols.ErrNonceSpaceExhausted}
				return
			}
			panic(r)
		}
	}()
	return protocols.Grind(ch, powBits), nil
}

func asError(r any) error {
	if e, ok := r.(error); ok {
		return e
	}
	return nil
}
