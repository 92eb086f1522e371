package core

import "fmt"

// qm31Beta is the constant (2+i) defining u^2 = 2+i for the QM31 tower
// extension Fp2[u]/(u^2-(2+i)).
var qm31Beta = CM31{A: M31(2), B: M31(1)}

// QM31 represents x + y*u in Fp2[u]/(u^2-(2+i)), the secure (degree-4
// over the base field) extension used for out-of-domain randomness.
type QM31 struct {
	X, Y CM31
}

func NewQM31(x, y CM31) QM31 { return QM31{X: x, Y: y} }

// NewQM31FromBaseCoords assembles a secure element from its four base
// coordinates in (x.a, x.b, y.a, y.b) order, matching the wire format.
func NewQM31FromBaseCoords(xa, xb, ya, yb M31) QM31 {
	return QM31{X: CM31{A: xa, B: xb}, Y: CM31{A: ya, B: yb}}
}

func (QM31) Zero() QM31 { return QM31{} }
func (QM31) One() QM31  { return QM31{X: CM31{}.One()} }

func (z QM31) IsZero() bool { return z.X.IsZero() && z.Y.IsZero() }

func (z QM31) Add(w QM31) QM31 {
	return QM31{X: z.X.Add(w.X), Y: z.Y.Add(w.Y)}
}

func (z QM31) Sub(w QM31) QM31 {
	return QM31{X: z.X.Sub(w.X), Y: z.Y.Sub(w.Y)}
}

func (z QM31) Neg() QM31 {
	return QM31{X: z.X.Neg(), Y: z.Y.Neg()}
}

// Mul computes (x+yu)(z+wu) = (x*z + y*w*(2+i)) + (x*w + y*z)*u.
func (a QM31) Mul(b QM31) QM31 {
	return QM31{
		X: a.X.Mul(b.X).Add(a.Y.Mul(b.Y).Mul(qm31Beta)),
		Y: a.X.Mul(b.Y).Add(a.Y.Mul(b.X)),
	}
}

func (z QM31) Square() QM31 { return z.Mul(z) }

// ComplexConjugate flips the sign of the y (u-) coordinate, per the
// field API's convention for the secure element; this is the same
// conjugate x - y*u that Inverse multiplies by.
func (z QM31) ComplexConjugate() QM31 {
	return QM31{X: z.X, Y: z.Y.Neg()}
}

// Inverse uses (x+yu)(x-yu) = x^2 - y^2*(2+i) to reduce inversion in the
// tower to one CM31 inversion.
func (z QM31) Inverse() (QM31, error) {
	if z.IsZero() {
		return QM31{}, fmt.Errorf("core: inverse of zero QM31 is undefined")
	}
	norm := z.X.Square().Sub(z.Y.Square().Mul(qm31Beta))
	normInv, err := norm.Inverse()
	if err != nil {
		return QM31{}, err
	}
	return QM31{X: z.X.Mul(normInv), Y: z.Y.Neg().Mul(normInv)}, nil
}

func (z QM31) Equals(w QM31) bool { return z.X.Equals(w.X) && z.Y.Equals(w.Y) }

// Bytes encodes z as 16 little-endian bytes, coordinate order
// (x.a, x.b, y.a, y.b).
func (z QM31) Bytes() [16]byte {
	var out [16]byte
	xb := z.X.Bytes()
	yb := z.Y.Bytes()
	copy(out[0:8], xb[:])
	copy(out[8:16], yb[:])
	return out
}
