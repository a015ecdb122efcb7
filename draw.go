package cacroix

//Draw flags
const (
	DRAW_BODIES           = 1 << 0
	DRAW_COLLISION_POINTS = 1 << 1
)

// 16 bytes
type FColor struct {
	R, G, B, A float32
}

// Drawer is implemented by front-ends that render a World between steps.
type Drawer interface {
	DrawCircle(pos Vector, angle, radius float64, outline, fill FColor, data interface{})
	DrawSegment(a, b Vector, fill FColor, data interface{})
	DrawDot(size float64, pos Vector, fill FColor, data interface{})

	Flags() uint
	OutlineColor() FColor
	BodyColor(h BodyHandle, body *Body, data interface{}) FColor
	CollisionPointColor() FColor
	Data() interface{}
}

func DrawBody(h BodyHandle, body *Body, options Drawer) {
	data := options.Data()
	options.DrawCircle(body.p, body.a, body.r, options.OutlineColor(), options.BodyColor(h, body, data), data)
}

func DrawWorld(world *World, options Drawer) {
	if options.Flags()&DRAW_BODIES != 0 {
		world.EachBody(func(h BodyHandle, body *Body) {
			DrawBody(h, body, options)
		})
	}

	if options.Flags()&DRAW_COLLISION_POINTS != 0 {
		data := options.Data()
		color := options.CollisionPointColor()

		world.EachContact(func(con *Contact) {
			n := con.n
			a := con.point.Add(n.Mult(-2))
			b := con.point.Add(n.Mult(2))
			options.DrawSegment(a, b, color, data)
			options.DrawDot(3, con.point, color, data)
		})
	}
}
