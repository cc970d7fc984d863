package geom

// Policy decides whether two boxes overlap. A game uses a single policy for
// every test; the two implementations disagree on some inputs.
type Policy func(a, b Collider) bool

// DefaultPolicy is the policy used when none is chosen
var DefaultPolicy Policy = EdgeIntersection

// CornerContainment reports a collision when a min or max corner of either
// box lies inside the other. It misses boxes that cross without any corner
// inside, which cannot happen while the ball is smaller than a paddle.
func CornerContainment(a, b Collider) bool {
	return b.Contains(a.Min) || b.Contains(a.Max) ||
		a.Contains(b.Min) || a.Contains(b.Max)
}

// EdgeIntersection reports a collision when any boundary segment of a
// crosses any boundary segment of b.
func EdgeIntersection(a, b Collider) bool {
	ae := a.Edges()
	be := b.Edges()
	for _, s := range ae {
		for _, o := range be {
			if s.Intersects(o) {
				return true
			}
		}
	}
	return false
}

// Intersects uses the orientation test: the segments cross when each
// one's endpoints lie on opposite sides of the other.
func (s Segment) Intersects(o Segment) bool {
	return ccw(s.A, o.A, o.B) != ccw(s.B, o.A, o.B) &&
		ccw(s.A, s.B, o.A) != ccw(s.A, s.B, o.B)
}

// ccw reports whether a, b, c turn counter-clockwise
func ccw(a, b, c Vec2) bool {
	return (c.Y-a.Y)*(b.X-a.X) > (b.Y-a.Y)*(c.X-a.X)
}
