package cacroix

// Collide tests two discs for overlap. It returns a fresh contact when they
// touch and false when they are separated. Coincident centers produce an
// undefined normal and must be avoided by the caller.
func Collide(store *BodyStore, h1, h2 BodyHandle) (*Contact, bool) {
	b1, b2 := store.Pair(h1, h2)

	delta := b2.p.Sub(b1.p)
	rsum := b1.r + b2.r
	if delta.LengthSq() > rsum*rsum {
		return nil, false
	}

	dist := delta.Length()
	dir := delta.Mult(1 / dist)

	con := NewContact(h1, h2)
	con.point = b1.p.Add(dir.Mult(b1.r))
	con.n = dir.Neg()
	con.t = con.n.Perp()
	con.overlap = rsum - dist
	return con, true
}
