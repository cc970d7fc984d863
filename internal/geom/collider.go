package geom

// Collider is an axis-aligned bounding box. Min is the top-left corner
// (y grows downward), Max the bottom-right. Center is cached at build time.
type Collider struct {
	Min, Max Vec2
	Center   Vec2
}

// Segment is a line segment between two points
type Segment struct {
	A, B Vec2
}

// NewCollider builds a box from a top-left position and a size
func NewCollider(position, size Vec2) Collider {
	c := Collider{Min: position, Max: position.Add(size)}
	c.Center = c.Min.Add(c.Max.Sub(c.Min).Scale(0.5))
	return c
}

// Translate returns the box moved by d
func (c Collider) Translate(d Vec2) Collider {
	return Collider{
		Min:    c.Min.Add(d),
		Max:    c.Max.Add(d),
		Center: c.Center.Add(d),
	}
}

// Contains reports whether p is inside the box, edges included
func (c Collider) Contains(p Vec2) bool {
	return p.X >= c.Min.X && p.X <= c.Max.X &&
		p.Y >= c.Min.Y && p.Y <= c.Max.Y
}

// Size returns the box dimensions
func (c Collider) Size() Vec2 {
	return c.Max.Sub(c.Min)
}

// Edges returns the four boundary segments: top, left, bottom, right
func (c Collider) Edges() [4]Segment {
	return [4]Segment{
		{Vec2{c.Min.X, c.Min.Y}, Vec2{c.Max.X, c.Min.Y}},
		{Vec2{c.Min.X, c.Min.Y}, Vec2{c.Min.X, c.Max.Y}},
		{Vec2{c.Min.X, c.Max.Y}, Vec2{c.Max.X, c.Max.Y}},
		{Vec2{c.Max.X, c.Max.Y}, Vec2{c.Max.X, c.Min.Y}},
	}
}
