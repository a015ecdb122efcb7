package cacroix

// RelativeVelocity is the velocity of the surface of b1 at point relative to
// the surface of b2, including the rotation of both bodies.
func RelativeVelocity(b1, b2 *Body, point Vector) Vector {
	return b1.VelocityAtWorldPoint(point).Sub(b2.VelocityAtWorldPoint(point))
}

// EffectiveMass is the mass felt by an impulse applied along axis at point.
// axis must be a unit vector.
func EffectiveMass(b1, b2 *Body, point, axis Vector) float64 {
	return 1.0 / k_scalar(b1, b2, point.Sub(b1.p), point.Sub(b2.p), axis)
}

func k_scalar(a, b *Body, r1, r2, n Vector) float64 {
	rcn1 := r1.Cross(n)
	rcn2 := r2.Cross(n)
	value := a.m_inv + b.m_inv + a.i_inv*rcn1*rcn1 + b.i_inv*rcn2*rcn2
	assert(value != 0, "Unsolvable collision or constraint.")
	return value
}
