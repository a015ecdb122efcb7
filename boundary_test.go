package cacroix

import "testing"

func TestWrapBoundary(t *testing.T) {
	wrap := WrapBoundary(800, 600)
	cases := []struct {
		in, out Vector
	}{
		{Vector{-1, 10}, Vector{799, 10}},
		{Vector{800, 10}, Vector{0, 10}},
		{Vector{10, 0}, Vector{10, 599}},
		{Vector{10, 601}, Vector{10, 0}},
		{Vector{400, 300}, Vector{400, 300}},
	}

	for _, c := range cases {
		body := NewBody(5, 1, 0, 0)
		body.SetPosition(c.in)
		wrap(body)
		if !body.Position().Equal(c.out) {
			t.Errorf("Wrapping %v gave %v, expected %v", c.in, body.Position(), c.out)
		}
	}

	static := NewBody(5, 1, 0, 0)
	static.SetStatic()
	static.SetPosition(Vector{-10, -10})
	wrap(static)
	if !static.Position().Equal(Vector{-10, -10}) {
		t.Error("Static bodies must not wrap")
	}
}

func TestBounceBoundary(t *testing.T) {
	bounce := BounceBoundary(100, 100)
	body := NewBody(5, 1, 0, 0.5)
	body.SetPosition(Vector{98, 50})
	body.SetVelocity(Vector{10, 0})
	bounce(body)

	if !body.Position().Equal(Vector{95, 50}) {
		t.Errorf("Expected the body back inside, got %v", body.Position())
	}
	if !body.Velocity().Equal(Vector{-5, 0}) {
		t.Errorf("Expected reflected velocity -5,0 got %v", body.Velocity())
	}
}
