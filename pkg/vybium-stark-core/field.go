package vybiumstarkcore

import "github.com/vybium/vybium-stark-core/internal/vybium-stark-core/core"

// NewM31FromU32Unchecked wraps v as an M31 without reducing it. Callers
// must guarantee v < P.
func NewM31FromU32Unchecked(v uint32) M31 { return core.NewM31FromU32Unchecked(v) }

// NewM31FromU32Reducing reduces an arbitrary uint32 into [0, P).
func NewM31FromU32Reducing(v uint32) M31 { return core.NewM31FromU32Reducing(v) }

// NewM31FromI32Reducing reduces a signed value into [0, P).
func NewM31FromI32Reducing(v int32) M31 { return core.NewM31FromI32Reducing(v) }

// InverseM31 computes the multiplicative inverse of a, reporting the
// inverse of zero as an ErrFieldUndefined *CoreError rather than
// panicking or returning a sentinel zero value.
func InverseM31(a M31) (M31, error) {
	inv, err := a.Inverse()
	if err != nil {
		return M31(0), &CoreError{Code: ErrFieldUndefined, Message: "inverse of zero M31 is undefined", Cause: err}
	}
	return inv, nil
}

// InverseCM31 computes the multiplicative inverse of z, reporting the
// inverse of zero as an ErrFieldUndefined *CoreError.
func InverseCM31(z CM31) (CM31, error) {
	inv, err := z.Inverse()
	if err != nil {
		return CM31{}, &CoreError{Code: ErrFieldUndefined, Message: "inverse of zero CM31 is undefined", Cause: err}
	}
	return inv, nil
}

// InverseQM31 computes the multiplicative inverse of z, reporting the
// inverse of zero as an ErrFieldUndefined *CoreError.
func InverseQM31(z QM31) (QM31, error) {
	inv, err := z.Inverse()
	if err != nil {
		return QM31{}, &CoreError{Code: ErrFieldUndefined, Message: "inverse of zero QM31 is undefined", Cause: err}
	}
	return inv, nil
}

// BatchInverse inverts every element of elems using Montgomery's trick,
// reporting the first zero element encountered as an ErrFieldUndefined
// *CoreError.
func BatchInverse(elems []M31) ([]M31, error) {
	out, err := core.BatchInverse(elems)
	if err != nil {
		return nil, &CoreError{Code: ErrFieldUndefined, Message: "batch inverse encountered a zero element", Cause: err}
	}
	return out, nil
}
