package core

// ring is the minimal arithmetic method set CirclePoint needs from its
// coordinate type. M31, CM31, and PackedM31 all satisfy it, which lets
// the same group-addition code serve scalar and packed circle points.
type ring[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Neg() T
	Zero() T
	One() T
}

// CirclePoint is a point (x, y) on the unit circle x^2+y^2=1 over a ring
// T, under the group law inherited from complex multiplication.
type CirclePoint[T ring[T]] struct {
	X, Y T
}

// Add computes the circle group operation: (x1,y1)+(x2,y2) =
// (x1*x2 - y1*y2, x1*y2 + y1*x2).
func (p CirclePoint[T]) Add(q CirclePoint[T]) CirclePoint[T] {
	return CirclePoint[T]{
		X: p.X.Mul(q.X).Sub(p.Y.Mul(q.Y)),
		Y: p.X.Mul(q.Y).Add(p.Y.Mul(q.X)),
	}
}

// Neg returns the group inverse, the complex conjugate (x, -y).
func (p CirclePoint[T]) Neg() CirclePoint[T] {
	return CirclePoint[T]{X: p.X, Y: p.Y.Neg()}
}

// Sub computes p + (-q).
func (p CirclePoint[T]) Sub(q CirclePoint[T]) CirclePoint[T] {
	return p.Add(q.Neg())
}

// CircleIdentity returns the group identity point (1, 0).
func CircleIdentity[T ring[T]]() CirclePoint[T] {
	var zero T
	return CirclePoint[T]{X: zero.One(), Y: zero.Zero()}
}

// MulU64 computes scalar*p via double-and-add. Used to derive the O(log N)
// step deltas consumed by the domain iterator; not a hot path.
func (p CirclePoint[T]) MulU64(scalar uint64) CirclePoint[T] {
	result := CircleIdentity[T]()
	base := p
	for scalar > 0 {
		if scalar&1 == 1 {
			result = result.Add(base)
		}
		base = base.Add(base)
		scalar >>= 1
	}
	return result
}

func (p CirclePoint[T]) Equals(q CirclePoint[T]) bool {
	type eq interface{ Equals(T) bool }
	pe, ok1 := any(p.X).(eq)
	qe, ok2 := any(p.Y).(eq)
	if ok1 && ok2 {
		return pe.Equals(q.X) && qe.Equals(q.Y)
	}
	return false
}
