package cacroix

import (
	"math"
	"math/rand"
	"testing"
)

const dt = 1.0 / 60.0

func addBody(world *World, p Vector, radius, friction, restitution float64) BodyHandle {
	body := NewBody(radius, 1, friction, restitution)
	body.SetPosition(p)
	return world.Add(body)
}

func pile(seed int64, count int) (*World, BodyHandle) {
	rng := rand.New(rand.NewSource(seed))
	world := NewWorld(Vector{0, 9.8}, 10)

	floor := NewBody(200, 1, 0.5, 0.2)
	floor.SetPosition(Vector{200, 420})
	floor.SetStatic()
	h := world.Add(floor)

	for i := 0; i < count; i++ {
		p := Vector{100 + rng.Float64()*200, rng.Float64() * 200}
		addBody(world, p, 5+rng.Float64()*10, 0.4, 0.3)
	}
	return world, h
}

func TestWorld_ConcreteScenario(t *testing.T) {
	world := NewWorld(Vector{0, 9.8}, 10)
	a := addBody(world, Vector{100, 100}, 20, 0.2, 0.2)
	b := addBody(world, Vector{130, 100}, 20, 0.2, 0.2)

	if m := world.Body(a).Mass(); math.Abs(m-1256.637) > 1e-3 {
		t.Errorf("Expected mass 1256.637, got %v", m)
	}
	if im := world.Body(a).InvMass(); math.Abs(im-0.000796) > 1e-6 {
		t.Errorf("Expected inverse mass 0.000796, got %v", im)
	}

	world.Step(dt)

	if world.ContactCount() != 1 {
		t.Fatalf("Expected one contact, got %d", world.ContactCount())
	}
	con := world.Contact(b, a)
	if con == nil {
		t.Fatal("Contact for (A,B) missing")
	}
	if math.Abs(con.Overlap()-10) > 1e-9 {
		t.Errorf("Expected overlap 10, got %v", con.Overlap())
	}
	n := con.Normal()
	if math.Abs(n.Y) > 1e-12 || math.Abs(math.Abs(n.X)-1) > 1e-12 {
		t.Errorf("Normal should be parallel to the x axis, got %v", n)
	}
	if con.NormalImpulse() < 0 {
		t.Errorf("Negative normal impulse %v", con.NormalImpulse())
	}

	vrn := RelativeVelocity(world.Body(a), world.Body(b), con.Point()).Dot(n)
	if vrn < -1e-9 {
		t.Errorf("Bodies still approaching after the solve: %v", vrn)
	}

	sep := world.Body(b).Position().Sub(world.Body(a).Position()).Length()
	if sep <= 30 {
		t.Errorf("Position correction should push the bodies apart, separation %v", sep)
	}
}

func TestWorld_StaticBodiesDontMove(t *testing.T) {
	world, floor := pile(1, 40)
	start := *world.Body(floor)

	for i := 0; i < 300; i++ {
		world.Step(dt)

		body := world.Body(floor)
		if !body.Position().Equal(start.Position()) || body.Rotation() != start.Rotation() ||
			!body.Velocity().Equal(Vector{}) || body.AngularVelocity() != 0 {
			t.Fatalf("Static body moved on step %d: %v", i, body)
		}
	}
}

func TestWorld_NormalImpulseNonNegative(t *testing.T) {
	world, _ := pile(2, 60)

	for i := 0; i < 300; i++ {
		world.Step(dt)
		world.EachContact(func(con *Contact) {
			if con.NormalImpulse() < 0 {
				t.Fatalf("Negative normal impulse %v on step %d", con.NormalImpulse(), i)
			}
			if math.Abs(con.TangentImpulse()) > con.Friction()*con.NormalImpulse()+1e-9 {
				t.Fatalf("Friction outside the cone on step %d", i)
			}
		})
	}
}

func TestWorld_WarmStart(t *testing.T) {
	world := NewWorld(Vector{0, 9.8}, 10)
	floor := addBody(world, Vector{0, 100}, 20, 0.5, 0)
	world.Body(floor).SetStatic()
	ball := addBody(world, Vector{0, 61}, 20, 0.5, 0)

	world.Step(dt)
	first := world.Contact(floor, ball)
	if first == nil {
		t.Fatal("Expected a contact after the first step")
	}
	jn := first.NormalImpulse()
	if jn <= 0 {
		t.Fatalf("Resting contact should carry a positive impulse, got %v", jn)
	}

	// detection of the next step inherits the accumulators before solving
	world.collideAll()
	second := world.Contact(floor, ball)
	if second == nil || second == first {
		t.Fatal("Expected a fresh contact object for the persistent pair")
	}
	if second.State() != CONTACT_STATE_WARM {
		t.Error("Persistent contact should be warm")
	}
	if second.NormalImpulse() != jn {
		t.Errorf("Expected warm start from %v, got %v", jn, second.NormalImpulse())
	}
}

func TestWorld_Eviction(t *testing.T) {
	world := NewWorld(Vector{}, 10)
	a := addBody(world, Vector{0, 0}, 20, 0.2, 0.2)
	b := addBody(world, Vector{35, 0}, 20, 0.2, 0.2)

	world.Step(dt)
	if world.Contact(a, b) == nil {
		t.Fatal("Expected a contact")
	}

	world.Body(b).SetPosition(Vector{41, 0})
	world.Body(b).SetVelocity(Vector{})
	world.Body(a).SetVelocity(Vector{})
	world.Step(dt)
	if world.Contact(a, b) != nil || world.ContactCount() != 0 {
		t.Error("Separated pair should be evicted on the next step")
	}
}

func TestWorld_ElasticSymmetry(t *testing.T) {
	world := NewWorld(Vector{}, 10)
	a := addBody(world, Vector{0, 0}, 20, 0, 1)
	b := addBody(world, Vector{50, 0}, 20, 0, 1)
	world.Body(a).SetVelocity(Vector{120, 0})
	world.Body(b).SetVelocity(Vector{-120, 0})

	energy := world.KineticEnergy()
	var collided bool
	for i := 0; i < 10; i++ {
		world.Step(dt)
		if world.ContactCount() > 0 {
			collided = true
		}
	}
	if !collided {
		t.Fatal("Bodies never touched")
	}

	va := world.Body(a).Velocity()
	vb := world.Body(b).Velocity()
	if !va.Near(Vector{-120, 0}, 1e-6) || !vb.Near(Vector{120, 0}, 1e-6) {
		t.Errorf("Expected velocities to reverse, got %v %v", va, vb)
	}
	if m := world.Momentum(); m.Length() > 1e-6 {
		t.Errorf("Momentum not conserved: %v", m)
	}
	if math.Abs(world.KineticEnergy()-energy) > 1e-6*energy {
		t.Errorf("Energy changed from %v to %v", energy, world.KineticEnergy())
	}
}

func TestWorld_Deterministic(t *testing.T) {
	w1, _ := pile(3, 50)
	w2, _ := pile(3, 50)

	for i := 0; i < 200; i++ {
		w1.Step(dt)
		w2.Step(dt)
	}

	w1.EachBody(func(h BodyHandle, b1 *Body) {
		b2 := w2.Body(h)
		if !b1.Position().Equal(b2.Position()) || b1.Rotation() != b2.Rotation() {
			t.Fatalf("Runs diverged at body %v: %v vs %v", h, b1.Position(), b2.Position())
		}
	})
}

func TestWorld_ZeroStep(t *testing.T) {
	world, _ := pile(4, 5)
	world.Step(0)
	if world.Stamp() != 0 || world.ContactCount() != 0 {
		t.Error("A zero step should do nothing")
	}
	world.Step(dt)
	if world.Stamp() != 1 || world.CurrentTimeStep() != dt {
		t.Error("Step counter not updated")
	}
}

func TestWorld_StaticPairsIgnored(t *testing.T) {
	world := NewWorld(Vector{0, 9.8}, 10)
	a := addBody(world, Vector{0, 0}, 20, 0.2, 0.2)
	b := addBody(world, Vector{10, 0}, 20, 0.2, 0.2)
	world.Body(a).SetStatic()

	world.Step(dt)
	if world.Contact(a, b) == nil {
		t.Fatal("Static against dynamic should collide")
	}

	world.Body(b).SetStatic()
	world.Step(dt)
	if world.ContactCount() != 0 {
		t.Error("Two static bodies must not keep a contact")
	}
}

func TestWorld_ForcesAreStepLocal(t *testing.T) {
	world := NewWorld(Vector{}, 10)
	h := addBody(world, Vector{}, 1, 0, 0)
	body := world.Body(h)
	body.SetForce(Vector{body.Mass() * 60, 0})

	world.Step(dt)
	if v := world.Body(h).Velocity(); !v.Near(Vector{1, 0}, 1e-9) {
		t.Errorf("Expected velocity 1,0 got %v", v)
	}
	world.Step(dt)
	if v := world.Body(h).Velocity(); !v.Near(Vector{1, 0}, 1e-9) {
		t.Errorf("Force should not persist, velocity %v", v)
	}
}

func TestWorld_Boundary(t *testing.T) {
	world := NewWorld(Vector{}, 10)
	h := addBody(world, Vector{799, 400}, 5, 0, 0)
	world.Body(h).SetVelocity(Vector{120, 0})
	world.SetBoundary(WrapBoundary(800, 800))

	world.Step(dt)
	if p := world.Body(h).Position(); p.X != 0 {
		t.Errorf("Expected wrap to 0, got %v", p)
	}
}
