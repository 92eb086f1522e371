package core

import "testing"

func TestCM31MulInverseIsOne(t *testing.T) {
	z := CM31{A: NewM31FromU32Unchecked(3), B: NewM31FromU32Unchecked(5)}
	inv, err := z.Inverse()
	if err != nil {
		t.Fatal(err)
	}
	if got := z.Mul(inv); !got.Equals(CM31{}.One()) {
		t.Errorf("z * inverse(z) = %v, want 1", got)
	}
}

func TestCM31InverseOfZeroErrors(t *testing.T) {
	if _, err := (CM31{}).Inverse(); err == nil {
		t.Fatal("inverse(0) should error")
	}
}

func TestCM31ComplexConjugateFlipsB(t *testing.T) {
	z := CM31{A: NewM31FromU32Unchecked(3), B: NewM31FromU32Unchecked(5)}
	conj := z.ComplexConjugate()
	if !conj.A.Equals(z.A) || !conj.B.Equals(z.B.Neg()) {
		t.Errorf("conjugate(%v) = %v, want (a, -b)", z, conj)
	}
}

func TestQM31MulInverseIsOne(t *testing.T) {
	z := QM31{
		X: CM31{A: NewM31FromU32Unchecked(1), B: NewM31FromU32Unchecked(2)},
		Y: CM31{A: NewM31FromU32Unchecked(3), B: NewM31FromU32Unchecked(4)},
	}
	inv, err := z.Inverse()
	if err != nil {
		t.Fatal(err)
	}
	if got := z.Mul(inv); !got.Equals(QM31{}.One()) {
		t.Errorf("z * inverse(z) = %v, want 1", got)
	}
}

func TestQM31InverseOfZeroErrors(t *testing.T) {
	if _, err := (QM31{}).Inverse(); err == nil {
		t.Fatal("inverse(0) should error")
	}
}

func TestQM31ComplexConjugateFlipsY(t *testing.T) {
	z := QM31{
		X: CM31{A: NewM31FromU32Unchecked(1)},
		Y: CM31{A: NewM31FromU32Unchecked(2)},
	}
	conj := z.ComplexConjugate()
	if !conj.X.Equals(z.X) || !conj.Y.Equals(z.Y.Neg()) {
		t.Errorf("conjugate(%v) = %v, want (x, -y)", z, conj)
	}
}

func TestQM31BytesCoordinateOrder(t *testing.T) {
	z := NewQM31FromBaseCoords(
		NewM31FromU32Unchecked(1),
		NewM31FromU32Unchecked(2),
		NewM31FromU32Unchecked(3),
		NewM31FromU32Unchecked(4),
	)
	b := z.Bytes()
	if b[0] != 1 || b[4] != 2 || b[8] != 3 || b[12] != 4 {
		t.Errorf("Bytes() coordinate order wrong: %v", b)
	}
}
