package cacroix

import "math"

const INFINITY = math.MaxFloat64

// Solver settings shared by every World.
const (
	// Normal relative velocity below which a contact is considered an impact
	// and restitution applies. Slower contacts are treated as resting.
	RestingThreshold = -1.0

	// Penetration allowed to persist so stacked bodies don't jitter.
	CollisionSlop = 0.005

	// Fraction of the remaining penetration removed per position iteration.
	CollisionBias = 0.2

	DefaultIterations = 10
)

// Contact states
const (
	// Contact was detected this step and has no history.
	CONTACT_STATE_FRESH = iota
	// Contact was detected again and inherited the previous accumulators.
	CONTACT_STATE_WARM
)
