package cacroix

import (
	"fmt"
	"math"
)

// Body is a rigid disc. Mass and moment are derived from the radius and density.
type Body struct {
	// mass and it's inverse
	m     float64
	m_inv float64

	// moment of inertia and it's inverse
	i     float64
	i_inv float64

	// position, velocity, force
	p Vector
	v Vector
	f Vector

	// rotation, angular velocity, torque (radians)
	a float64
	w float64
	t float64

	// friction and restitution coefficients
	u float64
	e float64

	r float64

	static bool

	UserData interface{}
}

func (b Body) String() string {
	return fmt.Sprint("Body ", b.p, " r=", b.r)
}

// NewBody creates a dynamic disc. radius and density must be positive.
func NewBody(radius, density, friction, restitution float64) *Body {
	body := &Body{
		r: radius,
		u: friction,
		e: restitution,
	}

	body.m = AreaForCircle(radius) * density
	body.m_inv = 1 / body.m

	body.i = MomentForCircle(body.m, radius)
	body.i_inv = 1 / body.i

	return body
}

func AreaForCircle(r float64) float64 {
	return math.Pi * r * r
}

// MomentForCircle is the moment of inertia of a solid disc about its center.
func MomentForCircle(m, r float64) float64 {
	return m * r * r * 0.5
}

// SetStatic gives the body infinite mass and moment. There is no way back.
func (body *Body) SetStatic() {
	if body.static {
		return
	}

	body.static = true
	body.m = INFINITY
	body.i = INFINITY
	body.m_inv = 0
	body.i_inv = 0

	body.v = Vector{}
	body.w = 0
}

func (body *Body) IsStatic() bool {
	return body.static
}

func (body *Body) Mass() float64 {
	return body.m
}

func (body *Body) InvMass() float64 {
	return body.m_inv
}

func (body *Body) Moment() float64 {
	return body.i
}

func (body *Body) InvMoment() float64 {
	return body.i_inv
}

func (body *Body) Radius() float64 {
	return body.r
}

func (body *Body) Friction() float64 {
	return body.u
}

func (body *Body) Restitution() float64 {
	return body.e
}

func (body *Body) Position() Vector {
	return body.p
}

func (body *Body) SetPosition(position Vector) {
	body.p = position
}

func (body *Body) Velocity() Vector {
	return body.v
}

func (body *Body) SetVelocity(velocity Vector) {
	if body.static {
		return
	}
	body.v = velocity
}

// Rotation is the body angle in radians.
func (body *Body) Rotation() float64 {
	return body.a
}

func (body *Body) SetRotation(angle float64) {
	body.a = angle
}

func (body *Body) AngularVelocity() float64 {
	return body.w
}

func (body *Body) SetAngularVelocity(angularVelocity float64) {
	if body.static {
		return
	}
	body.w = angularVelocity
}

func (body *Body) Force() Vector {
	return body.f
}

// SetForce replaces the force accumulator. Forces are cleared after every step.
func (body *Body) SetForce(force Vector) {
	body.f = force
}

func (body *Body) Torque() float64 {
	return body.t
}

func (body *Body) SetTorque(torque float64) {
	body.t = torque
}

// ApplyForce accumulates force at a world point, adding the torque it produces.
func (body *Body) ApplyForce(force, point Vector) {
	body.f = body.f.Add(force)
	body.t += point.Sub(body.p).Cross(force)
}

// LocalToWorld maps a point in the body frame to world space.
func (body *Body) LocalToWorld(point Vector) Vector {
	return body.p.Add(point.RotateAngle(body.a))
}

// WorldToLocal maps a world point into the body frame.
func (body *Body) WorldToLocal(point Vector) Vector {
	return point.Sub(body.p).UnrotateAngle(body.a)
}

// ApplyImpulse changes the velocity of the body as if impulse was applied at point.
func (body *Body) ApplyImpulse(impulse, point Vector) {
	if body.static {
		return
	}

	body.v = body.v.Add(impulse.Mult(body.m_inv))
	body.w += point.Sub(body.p).Cross(impulse) * body.i_inv
}

// ApplyPositionImpulse moves the body directly. It is used to push overlapping
// bodies apart and never changes the velocity.
func (body *Body) ApplyPositionImpulse(impulse, point Vector) {
	if body.static {
		return
	}

	body.p = body.p.Add(impulse.Mult(body.m_inv))
	body.a += point.Sub(body.p).Cross(impulse) * body.i_inv
}

func (body *Body) VelocityAtWorldPoint(point Vector) Vector {
	r := point.Sub(body.p)
	return body.v.Add(r.Perp().Mult(body.w))
}

func (body *Body) KineticEnergy() float64 {
	if body.static {
		return 0
	}
	return 0.5 * (body.v.Dot(body.v)*body.m + body.w*body.w*body.i)
}

func (body *Body) Momentum() Vector {
	if body.static {
		return Vector{}
	}
	return body.v.Mult(body.m)
}

// UpdateVelocity integrates gravity, force and torque into the velocities.
func (body *Body) UpdateVelocity(gravity Vector, dt float64) {
	if body.static {
		return
	}

	body.v = body.v.Add(gravity.Add(body.f.Mult(body.m_inv)).Mult(dt))
	body.w = body.w + body.t*body.i_inv*dt
}

// UpdatePosition integrates the velocities and clears the force accumulators.
func (body *Body) UpdatePosition(dt float64) {
	if body.static {
		return
	}

	body.p = body.p.Add(body.v.Mult(dt))
	body.a = body.a + body.w*dt

	body.f = Vector{}
	body.t = 0
}
