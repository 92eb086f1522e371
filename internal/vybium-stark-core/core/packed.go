package core

// LaneCount is the fixed width of a packed vector. Kept as a compile-time
// constant, per the design note that packed arithmetic should let the
// compiler schedule registers rather than carrying a runtime lane count.
const LaneCount = 16

// PackedM31 holds LaneCount independent, canonical M31 lanes. Every
// exposed operation lifts the scalar M31 operation lane-wise.
type PackedM31 [LaneCount]M31

func PackedM31FromArray(lanes [LaneCount]M31) PackedM31 {
	return PackedM31(lanes)
}

// PackedM31Broadcast fills every lane with the same scalar value.
func PackedM31Broadcast(v M31) PackedM31 {
	var p PackedM31
	for i := range p {
		p[i] = v
	}
	return p
}

func (p PackedM31) ToArray() [LaneCount]M31 { return [LaneCount]M31(p) }

func (PackedM31) Zero() PackedM31 { return PackedM31{} }
func (PackedM31) One() PackedM31  { return PackedM31Broadcast(M31(1)) }

func (p PackedM31) Add(q PackedM31) PackedM31 {
	var r PackedM31
	for i := range p {
		r[i] = p[i].Add(q[i])
	}
	return r
}

func (p PackedM31) Sub(q PackedM31) PackedM31 {
	var r PackedM31
	for i := range p {
		r[i] = p[i].Sub(q[i])
	}
	return r
}

func (p PackedM31) Mul(q PackedM31) PackedM31 {
	var r PackedM31
	for i := range p {
		r[i] = p[i].Mul(q[i])
	}
	return r
}

func (p PackedM31) Neg() PackedM31 {
	var r PackedM31
	for i := range p {
		r[i] = p[i].Neg()
	}
	return r
}

func (p PackedM31) Equals(q PackedM31) bool {
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}
