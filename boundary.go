package cacroix

// BoundaryFunc runs on every body at the end of a step. It only moves
// coordinates and takes no part in the constraint solve.
type BoundaryFunc func(body *Body)

// WrapBoundary makes the region [0,width)x[0,height) toroidal.
func WrapBoundary(width, height float64) BoundaryFunc {
	return func(body *Body) {
		if body.static {
			return
		}

		p := body.p
		if p.X <= 0 {
			p.X = width - 1
		} else if p.X >= width {
			p.X = 0
		}
		if p.Y <= 0 {
			p.Y = height - 1
		} else if p.Y >= height {
			p.Y = 0
		}
		body.p = p
	}
}

// BounceBoundary keeps bodies inside [0,width)x[0,height) by reflecting
// the velocity of any body whose edge crosses a wall.
func BounceBoundary(width, height float64) BoundaryFunc {
	return func(body *Body) {
		if body.static {
			return
		}

		r := body.r
		if body.p.X < r {
			body.p.X = r
			body.v.X = -body.v.X * body.e
		} else if body.p.X > width-r {
			body.p.X = width - r
			body.v.X = -body.v.X * body.e
		}
		if body.p.Y < r {
			body.p.Y = r
			body.v.Y = -body.v.Y * body.e
		} else if body.p.Y > height-r {
			body.p.Y = height - r
			body.v.Y = -body.v.Y * body.e
		}
	}
}
