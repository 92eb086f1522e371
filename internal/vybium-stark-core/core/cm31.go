package core

import "fmt"

// CM31 represents a + b*i in Fp[i]/(i^2+1), the degree-2 extension of M31.
type CM31 struct {
	A, B M31
}

func NewCM31(a, b M31) CM31 { return CM31{A: a, B: b} }

func (CM31) Zero() CM31 { return CM31{} }
func (CM31) One() CM31  { return CM31{A: M31(1)} }

func (z CM31) IsZero() bool { return z.A.IsZero() && z.B.IsZero() }

func (z CM31) Add(w CM31) CM31 {
	return CM31{A: z.A.Add(w.A), B: z.B.Add(w.B)}
}

func (z CM31) Sub(w CM31) CM31 {
	return CM31{A: z.A.Sub(w.A), B: z.B.Sub(w.B)}
}

func (z CM31) Neg() CM31 {
	return CM31{A: z.A.Neg(), B: z.B.Neg()}
}

// Mul computes (a+bi)(c+di) = (ac-bd) + (ad+bc)i.
func (z CM31) Mul(w CM31) CM31 {
	return CM31{
		A: z.A.Mul(w.A).Sub(z.B.Mul(w.B)),
		B: z.A.Mul(w.B).Add(z.B.Mul(w.A)),
	}
}

func (z CM31) Square() CM31 { return z.Mul(z) }

// ComplexConjugate flips the sign of the imaginary coordinate.
func (z CM31) ComplexConjugate() CM31 {
	return CM31{A: z.A, B: z.B.Neg()}
}

// Inverse computes 1/z = conj(z) / (a^2+b^2).
func (z CM31) Inverse() (CM31, error) {
	if z.IsZero() {
		return CM31{}, fmt.Errorf("core: inverse of zero CM31 is undefined")
	}
	normSq := z.A.Square().Add(z.B.Square())
	normInv, err := normSq.Inverse()
	if err != nil {
		return CM31{}, err
	}
	conj := z.ComplexConjugate()
	return CM31{A: conj.A.Mul(normInv), B: conj.B.Mul(normInv)}, nil
}

func (z CM31) Equals(w CM31) bool { return z.A.Equals(w.A) && z.B.Equals(w.B) }

// Bytes encodes z as 8 little-endian bytes: a, then b.
func (z CM31) Bytes() [8]byte {
	var out [8]byte
	ab := z.A.Bytes()
	bb := z.B.Bytes()
	copy(out[0:4], ab[:])
	copy(out[4:8], bb[:])
	return out
}
