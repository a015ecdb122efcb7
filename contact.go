package cacroix

import "math"

// ContactKey identifies a pair of bodies regardless of argument order.
type ContactKey struct {
	a, b BodyHandle
}

func MakeContactKey(h1, h2 BodyHandle) ContactKey {
	if h2.index < h1.index {
		h1, h2 = h2, h1
	}
	return ContactKey{h1, h2}
}

func (key ContactKey) Handles() (BodyHandle, BodyHandle) {
	return key.a, key.b
}

// Contact is the persistent constraint between two touching bodies.
type Contact struct {
	body_a, body_b BodyHandle

	// world space contact point, normal pointing from body_b towards body_a, and tangent
	point Vector
	n, t  Vector

	// contact point in the local frame of each body
	r1, r2 Vector

	nMass, tMass float64

	// combined friction and the target separating velocity
	u, bounce float64

	// accumulated impulses, jnAcc and jtAcc survive between steps
	jnAcc, jtAcc float64
	jPos         float64

	overlap float64

	state int
}

func NewContact(h1, h2 BodyHandle) *Contact {
	return &Contact{
		body_a: h1,
		body_b: h2,
		state:  CONTACT_STATE_FRESH,
	}
}

func (con *Contact) Key() ContactKey {
	return MakeContactKey(con.body_a, con.body_b)
}

func (con *Contact) Bodies() (BodyHandle, BodyHandle) {
	return con.body_a, con.body_b
}

func (con *Contact) Point() Vector {
	return con.point
}

func (con *Contact) Normal() Vector {
	return con.n
}

func (con *Contact) Tangent() Vector {
	return con.t
}

func (con *Contact) Overlap() float64 {
	return con.overlap
}

func (con *Contact) NormalImpulse() float64 {
	return con.jnAcc
}

func (con *Contact) TangentImpulse() float64 {
	return con.jtAcc
}

func (con *Contact) PositionImpulse() float64 {
	return con.jPos
}

func (con *Contact) Friction() float64 {
	return con.u
}

// Restitution is the separating velocity the solver aims for along the normal.
func (con *Contact) Restitution() float64 {
	return con.bounce
}

func (con *Contact) NormalMass() float64 {
	return con.nMass
}

func (con *Contact) TangentMass() float64 {
	return con.tMass
}

func (con *Contact) State() int {
	return con.state
}

func (con *Contact) IsFirstContact() bool {
	return con.state == CONTACT_STATE_FRESH
}

// TotalImpulse is the impulse applied to body_a, body_b received the opposite.
func (con *Contact) TotalImpulse() Vector {
	return con.n.Mult(con.jnAcc).Add(con.t.Mult(con.jtAcc))
}

// Merge carries the accumulated impulses of old into con. The bounce of the
// first impact is not repeated.
func (con *Contact) Merge(old *Contact) *Contact {
	con.jnAcc = old.jnAcc
	con.jtAcc = old.jtAcc
	con.bounce = 0
	con.state = CONTACT_STATE_WARM
	return con
}

func (con *Contact) PreStep(store *BodyStore) {
	a, b := store.Pair(con.body_a, con.body_b)

	con.u = math.Sqrt(a.u * b.u)

	// Calculate the target bounce velocity. Slow contacts are resting and don't bounce.
	con.bounce = 0
	if con.state == CONTACT_STATE_FRESH {
		vrn := RelativeVelocity(a, b, con.point).Dot(con.n)
		if vrn < RestingThreshold {
			con.bounce = math.Max(0, math.Sqrt(a.e*b.e)*-vrn)
		}
	}

	// Calculate the mass normal and mass tangent.
	con.nMass = EffectiveMass(a, b, con.point, con.n)
	con.tMass = EffectiveMass(a, b, con.point, con.t)

	con.r1 = a.WorldToLocal(con.point)
	con.r2 = b.WorldToLocal(con.point)

	con.jPos = 0
}

// ApplyCachedImpulse warm starts the solver with the impulses of the previous step.
func (con *Contact) ApplyCachedImpulse(store *BodyStore) {
	if con.IsFirstContact() {
		return
	}

	a, b := store.Pair(con.body_a, con.body_b)
	apply_impulses(a, b, con.point, con.TotalImpulse())
}

// ApplyImpulse runs one iteration of the velocity solver for this contact.
func (con *Contact) ApplyImpulse(store *BodyStore) {
	a, b := store.Pair(con.body_a, con.body_b)
	n := con.n
	t := con.t

	vrn := RelativeVelocity(a, b, con.point).Dot(n)

	jn := -con.nMass * (vrn - con.bounce)
	jnOld := con.jnAcc
	con.jnAcc = math.Max(jnOld+jn, 0)
	apply_impulses(a, b, con.point, n.Mult(con.jnAcc-jnOld))

	// friction uses the velocity after the normal impulse
	vrt := RelativeVelocity(a, b, con.point).Dot(t)

	jtMax := con.u * con.jnAcc
	jt := -con.tMass * vrt
	jtOld := con.jtAcc
	con.jtAcc = Clamp(jtOld+jt, -jtMax, jtMax)
	apply_impulses(a, b, con.point, t.Mult(con.jtAcc-jtOld))
}

// ApplyPositionImpulse runs one iteration of the penetration correction.
func (con *Contact) ApplyPositionImpulse(store *BodyStore) {
	a, b := store.Pair(con.body_a, con.body_b)
	n := con.n

	p1 := a.LocalToWorld(con.r1)
	p2 := b.LocalToWorld(con.r2)

	// negative while the bodies overlap more than the slop allows
	dist := -con.overlap - p2.Sub(p1).Dot(n) + CollisionSlop

	j := -con.nMass * CollisionBias * math.Min(0, dist)
	jOld := con.jPos
	con.jPos = math.Max(jOld+j, 0)

	jn := n.Mult(con.jPos - jOld)
	a.ApplyPositionImpulse(jn, p1)
	b.ApplyPositionImpulse(jn.Neg(), p2)
}

func apply_impulses(a, b *Body, point, j Vector) {
	a.ApplyImpulse(j, point)
	b.ApplyImpulse(j.Neg(), point)
}
