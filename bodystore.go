package cacroix

import "fmt"

// BodyHandle refers to a body inside a BodyStore. The zero value is never valid.
type BodyHandle struct {
	index      uint32
	generation uint32
}

func (h BodyHandle) String() string {
	return fmt.Sprintf("#%d.%d", h.index, h.generation)
}

// Index is the position of the body in insertion order.
func (h BodyHandle) Index() int {
	return int(h.index)
}

// BodyStore owns bodies in a dense slice. Bodies are never removed so a
// handle stays valid for the life of the store.
type BodyStore struct {
	bodies []Body

	// slots are never reused so every handle carries the first generation.
	// A zero handle fails the check.
	generation uint32
}

func NewBodyStore() *BodyStore {
	return &BodyStore{
		bodies:     []Body{},
		generation: 1,
	}
}

// Add copies body into the store and returns its handle.
func (store *BodyStore) Add(body *Body) BodyHandle {
	store.bodies = append(store.bodies, *body)
	return BodyHandle{
		index:      uint32(len(store.bodies) - 1),
		generation: store.generation,
	}
}

// Get dereferences a handle. An invalid handle is a programming error and panics.
// The pointer is valid until the next Add.
func (store *BodyStore) Get(h BodyHandle) *Body {
	assert(h.generation == store.generation && int(h.index) < len(store.bodies), "invalid body handle ", h)
	return &store.bodies[h.index]
}

// Pair returns two distinct bodies.
func (store *BodyStore) Pair(h1, h2 BodyHandle) (*Body, *Body) {
	assert(h1 != h2, "body paired with itself ", h1)
	return store.Get(h1), store.Get(h2)
}

func (store *BodyStore) Len() int {
	return len(store.bodies)
}

func (store *BodyStore) handle(i int) BodyHandle {
	return BodyHandle{index: uint32(i), generation: store.generation}
}

// Handles lists every handle in insertion order.
func (store *BodyStore) Handles() []BodyHandle {
	handles := make([]BodyHandle, len(store.bodies))
	for i := range store.bodies {
		handles[i] = store.handle(i)
	}
	return handles
}

func (store *BodyStore) Each(f func(BodyHandle, *Body)) {
	for i := range store.bodies {
		f(store.handle(i), &store.bodies[i])
	}
}
