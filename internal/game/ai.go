package game

import (
	"math"

	"github.com/diegok/termpong/internal/geom"
)

// AI tuning
const (
	DefaultAIAccuracy = 0.5
	AIResponse        = 0.0015 // Interpolation rate per millisecond at accuracy 1
	AIMargin          = 0.05   // Gap kept to the walls, relative to paddle height
)

// BallTrack is the ball's center and velocity captured before a tick mutates anything
type BallTrack struct {
	Position geom.Vec2
	Velocity geom.Vec2
}

// Incoming reports whether the ball travels toward a paddle whose center
// sits at paddleX. A ball with no horizontal speed is never incoming.
func (b BallTrack) Incoming(paddleX float64) bool {
	if paddleX < b.Position.X {
		return b.Velocity.X < 0
	}
	return b.Velocity.X > 0
}

// Intercept predicts the y the ball will cross paddleX at, by straight-line
// extrapolation. Predictions off the field are redirected to the quarter
// nearest the wall they went past. When the ball is not incoming the target
// is the field's vertical center and ok is false.
func Intercept(track BallTrack, paddleX, height float64) (y float64, ok bool) {
	if track.Velocity.X == 0 || !track.Incoming(paddleX) {
		return height / 2, false
	}

	eta := (paddleX - track.Position.X) / track.Velocity.X
	y = track.Position.Y + track.Velocity.Y*eta

	switch {
	case y < 0:
		y = height * 0.25
	case y > height:
		y = height * 0.75
	}
	return y, true
}

// steer moves an AI paddle toward the predicted intercept. Accuracy scales
// how fast it gets there, not where it aims.
func steer(o *Object, track *BallTrack, deltaTime, height, accuracy float64) {
	target := height / 2
	if track != nil {
		target, _ = Intercept(*track, o.Center().X, height)
	}

	rate := 1 - math.Exp(-deltaTime*AIResponse*accuracy)
	y := o.Position.Y + (target-o.Size.Y/2-o.Position.Y)*rate
	o.Position.Y = clamp(y, o.Size.Y*AIMargin, height-o.Size.Y*(1+AIMargin))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
