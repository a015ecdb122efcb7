package cacroix

import "log"

// World owns every body and contact and advances them with a fixed pipeline.
type World struct {
	Iterations uint // number of solver sweeps, must be non-zero

	gravity Vector

	stamp   uint
	curr_dt float64

	bodies   *BodyStore
	contacts *ContactSet

	boundary BoundaryFunc
}

func NewWorld(gravity Vector, iterations uint) *World {
	if iterations == 0 {
		log.Println("World created with zero iterations, using", DefaultIterations)
		iterations = DefaultIterations
	}
	return &World{
		Iterations: iterations,
		gravity:    gravity,
		bodies:     NewBodyStore(),
		contacts:   NewContactSet(),
	}
}

func (world *World) Gravity() Vector {
	return world.gravity
}

func (world *World) SetGravity(gravity Vector) {
	world.gravity = gravity
}

// Stamp counts the steps taken so far.
func (world *World) Stamp() uint {
	return world.stamp
}

// CurrentTimeStep is the dt of the last step.
func (world *World) CurrentTimeStep() float64 {
	return world.curr_dt
}

// SetBoundary installs a function run on every body at the end of a step. nil removes it.
func (world *World) SetBoundary(boundary BoundaryFunc) {
	world.boundary = boundary
}

// Add moves body into the world. Later changes must go through World.Body.
func (world *World) Add(body *Body) BodyHandle {
	return world.bodies.Add(body)
}

func (world *World) Body(h BodyHandle) *Body {
	return world.bodies.Get(h)
}

func (world *World) BodyCount() int {
	return world.bodies.Len()
}

func (world *World) EachBody(f func(BodyHandle, *Body)) {
	world.bodies.Each(f)
}

func (world *World) ContactCount() int {
	return world.contacts.Count()
}

// Contact returns the cached contact between two bodies or nil.
func (world *World) Contact(h1, h2 BodyHandle) *Contact {
	return world.contacts.Find(MakeContactKey(h1, h2))
}

func (world *World) EachContact(f func(*Contact)) {
	world.contacts.Each(f)
}

func (world *World) KineticEnergy() float64 {
	var sum float64
	world.bodies.Each(func(_ BodyHandle, body *Body) {
		sum += body.KineticEnergy()
	})
	return sum
}

func (world *World) Momentum() Vector {
	var sum Vector
	world.bodies.Each(func(_ BodyHandle, body *Body) {
		sum = sum.Add(body.Momentum())
	})
	return sum
}

func (world *World) Step(dt float64) {
	if dt == 0 {
		return
	}

	world.stamp++
	world.curr_dt = dt

	bodies := world.bodies.bodies
	store := world.bodies
	gravity := world.gravity

	// Integrate velocities.
	for i := range bodies {
		bodies[i].UpdateVelocity(gravity, dt)
	}

	// Find new contacts, refresh persistent ones and drop separated pairs.
	world.collideAll()

	contacts := world.contacts.entries

	// Prestep the contacts and apply cached impulses
	for _, con := range contacts {
		con.PreStep(store)
	}
	for _, con := range contacts {
		con.ApplyCachedImpulse(store)
	}

	// Run the impulse solver.
	var i uint
	for i = 0; i < world.Iterations; i++ {
		for _, con := range contacts {
			con.ApplyImpulse(store)
		}
	}

	// Integrate positions.
	for i := range bodies {
		bodies[i].UpdatePosition(dt)
	}

	// Push apart whatever still overlaps.
	for i = 0; i < world.Iterations; i++ {
		for _, con := range contacts {
			con.ApplyPositionImpulse(store)
		}
	}

	if world.boundary != nil {
		for i := range bodies {
			world.boundary(&bodies[i])
		}
	}
}

func (world *World) collideAll() {
	store := world.bodies
	contacts := world.contacts
	n := store.Len()

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			h1 := store.handle(i)
			h2 := store.handle(j)

			key := MakeContactKey(h1, h2)

			// nothing can move a pair of static bodies
			if store.bodies[i].static && store.bodies[j].static {
				contacts.Remove(key)
				continue
			}

			con, ok := Collide(store, h1, h2)
			if !ok {
				contacts.Remove(key)
				continue
			}

			if old := contacts.Find(key); old != nil {
				con.Merge(old)
			}
			contacts.Insert(con)
		}
	}
}
