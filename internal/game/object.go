package game

import (
	"fmt"

	"github.com/diegok/termpong/internal/geom"
)

// Layout constants, as fractions of the field
const (
	PaddleHeightRatio = 0.25 // Paddle height relative to field height
	PaddleInset       = 0.05 // Gap between paddle and its side edge
)

// Ball speed tuning, as divisors of field dimensions (units per millisecond)
const (
	ServeSpeedDivisor = 3200.0
	MaxSpeedDivisor   = 400.0
)

// Kind identifies what an object is and which behavior drives it
type Kind int

const (
	Ball Kind = iota
	PaddleLeft
	PaddleRight
)

func (k Kind) String() string {
	switch k {
	case Ball:
		return "ball"
	case PaddleLeft:
		return "paddle-left"
	case PaddleRight:
		return "paddle-right"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// IsPaddle reports whether k is one of the paddles
func (k Kind) IsPaddle() bool {
	return k == PaddleLeft || k == PaddleRight
}

// Object is a rectangle in the field. Position is its top-left corner.
type Object struct {
	Kind        Kind
	Position    geom.Vec2
	Size        geom.Vec2
	Velocity    geom.Vec2
	MaxVelocity geom.Vec2 // Ball only: bounds speed growth on paddle hits
}

// NewObject creates an object with default state. Call Reset before use.
func NewObject(kind Kind) *Object {
	return &Object{
		Kind:        kind,
		Size:        geom.Vec2{X: 1, Y: 1},
		MaxVelocity: geom.Vec2{X: 2, Y: 2},
	}
}

// WithSize sets the size and returns the same object for chaining
func (o *Object) WithSize(w, h float64) *Object {
	o.Size = geom.Vec2{X: w, Y: h}
	return o
}

// Reset puts the object in its starting place for a field of the given
// size. It must run whenever the field dimensions are first known or change.
func (o *Object) Reset(width, height float64) {
	switch o.Kind {
	case Ball:
		o.Velocity = geom.Vec2{X: width / ServeSpeedDivisor}
		o.MaxVelocity = geom.Vec2{X: width / MaxSpeedDivisor, Y: height / MaxSpeedDivisor}
		o.Position = geom.Vec2{
			X: width/2 - o.Size.X/2,
			Y: height/2 - o.Size.Y/2,
		}
	case PaddleLeft:
		o.Size.Y = height * PaddleHeightRatio
		o.Position = geom.Vec2{
			X: width * PaddleInset,
			Y: height/2 - o.Size.Y/2,
		}
	case PaddleRight:
		o.Size.Y = height * PaddleHeightRatio
		o.Position = geom.Vec2{
			X: width*(1-PaddleInset) - o.Size.X,
			Y: height/2 - o.Size.Y/2,
		}
	default:
		panic(fmt.Sprintf("game: reset of unknown %v", o.Kind))
	}
}

// Collider builds the bounding box from the current position and size
func (o *Object) Collider() geom.Collider {
	return geom.NewCollider(o.Position, o.Size)
}

// Center returns position + size/2
func (o *Object) Center() geom.Vec2 {
	return o.Position.Add(o.Size.Scale(0.5))
}

// OutOfBounds reports whether the horizontal center has left the field.
// Top and bottom are walls, so only x is checked.
func (o *Object) OutOfBounds(width float64) bool {
	c := o.Center()
	return c.X < 0 || c.X > width
}
