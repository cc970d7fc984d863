package game

import (
	"errors"
	"fmt"
	"math"

	"github.com/diegok/termpong/internal/geom"
)

// Constants for the standard layout and ball response
const (
	BallSize      = 25.0
	PaddleWidth   = 25.0
	PaddleHeight  = 100.0 // Replaced by the field-relative height on reset
	BounceSpeedUp = 1.15  // Horizontal speed gain per paddle hit
)

var (
	ErrNoObjects    = errors.New("game: no objects")
	ErrBallCount    = errors.New("game: exactly one ball required")
	ErrControlIndex = errors.New("game: control index out of range")
	ErrControlKind  = errors.New("game: controlled object must be a paddle")
)

// GameState owns every object and advances them one tick at a time.
// It is not safe for concurrent use; the host calls it from one goroutine.
type GameState struct {
	objects    []*Object
	controlID  int
	aiAccuracy float64
	paused     bool
	collides   geom.Policy
	events     Event
}

// NewGameState takes ownership of objects. controlID is the index of the
// human-controlled object.
func NewGameState(objects []*Object, controlID int) (*GameState, error) {
	if len(objects) == 0 {
		return nil, ErrNoObjects
	}

	balls := 0
	for _, o := range objects {
		if o.Kind == Ball {
			balls++
		}
	}
	if balls != 1 {
		return nil, fmt.Errorf("%w, got %d", ErrBallCount, balls)
	}

	if controlID < 0 || controlID >= len(objects) {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrControlIndex, controlID, len(objects))
	}

	return &GameState{
		objects:    objects,
		controlID:  controlID,
		aiAccuracy: DefaultAIAccuracy,
		collides:   geom.DefaultPolicy,
	}, nil
}

// NewStandardGame builds one ball and two paddles with the human on the
// paddle of the given kind. The other paddle is AI driven.
func NewStandardGame(control Kind) (*GameState, error) {
	if !control.IsPaddle() {
		return nil, fmt.Errorf("%w, got %v", ErrControlKind, control)
	}

	objects := []*Object{
		NewObject(Ball).WithSize(BallSize, BallSize),
		NewObject(PaddleLeft).WithSize(PaddleWidth, PaddleHeight),
		NewObject(PaddleRight).WithSize(PaddleWidth, PaddleHeight),
	}

	controlID := 1
	if control == PaddleRight {
		controlID = 2
	}
	return NewGameState(objects, controlID)
}

// SetPolicy selects the collision test. nil restores the default.
func (gs *GameState) SetPolicy(p geom.Policy) {
	if p == nil {
		p = geom.DefaultPolicy
	}
	gs.collides = p
}

// AIAccuracy returns the AI interpolation speed scalar
func (gs *GameState) AIAccuracy() float64 {
	return gs.aiAccuracy
}

// SetAIAccuracy sets the AI speed scalar, clamped to [0,1]. NaN is ignored.
func (gs *GameState) SetAIAccuracy(v float64) {
	if math.IsNaN(v) {
		return
	}
	gs.aiAccuracy = clamp(v, 0, 1)
}

// Pause suspends or resumes the simulation without touching object state
func (gs *GameState) Pause(paused bool) {
	gs.paused = paused
}

func (gs *GameState) Paused() bool {
	return gs.paused
}

// Events returns what happened during the last Update
func (gs *GameState) Events() Event {
	return gs.events
}

// ControlID returns the index of the human-controlled object
func (gs *GameState) ControlID() int {
	return gs.controlID
}

// Control returns the human-controlled object for input to move.
// Keeping it inside the field is the caller's job.
func (gs *GameState) Control() *Object {
	return gs.objects[gs.controlID]
}

// Objects returns a copy of every object, in order, for rendering
func (gs *GameState) Objects() []Object {
	out := make([]Object, len(gs.objects))
	for i, o := range gs.objects {
		out[i] = *o
	}
	return out
}

// ResetObjects lays every object out for a field of the given size
func (gs *GameState) ResetObjects(width, height float64) {
	for _, o := range gs.objects {
		o.Reset(width, height)
	}
}

// Update advances one tick of deltaTime milliseconds. Field dimensions
// must be positive. Object behavior this tick only observes the state the
// objects had before the tick started.
func (gs *GameState) Update(deltaTime, width, height float64) {
	gs.events = 0
	if gs.paused {
		return
	}
	if deltaTime < 0 {
		deltaTime = 0
	}

	colliders := make([]geom.Collider, len(gs.objects))
	var track *BallTrack
	for i, o := range gs.objects {
		colliders[i] = o.Collider()
		if o.Kind == Ball {
			track = &BallTrack{Position: colliders[i].Center, Velocity: o.Velocity}
		}
	}

	for i, o := range gs.objects {
		delta := o.Velocity.Scale(deltaTime)

		switch o.Kind {
		case Ball:
			if o.OutOfBounds(width) {
				o.Reset(width, height)
				gs.events |= EventBallOut
				continue
			}
			delta = gs.updateBall(i, o, delta, colliders, height)
		case PaddleLeft, PaddleRight:
			if i != gs.controlID {
				steer(o, track, deltaTime, height, gs.aiAccuracy)
			}
		default:
			panic(fmt.Sprintf("game: update of unknown %v", o.Kind))
		}

		o.Position = o.Position.Add(delta)
	}
}

// updateBall resolves wall and paddle contacts for this tick's move and
// returns the displacement to apply.
func (gs *GameState) updateBall(i int, o *Object, delta geom.Vec2, colliders []geom.Collider, height float64) geom.Vec2 {
	self := colliders[i]
	next := self.Translate(delta)

	if (next.Min.Y < 0 && o.Velocity.Y < 0) || (next.Max.Y > height && o.Velocity.Y > 0) {
		o.Velocity.Y = -o.Velocity.Y
		delta.Y = -delta.Y
		gs.events |= EventWallBounce
		return delta
	}

	for j, other := range colliders {
		if j == i || !gs.objects[j].Kind.IsPaddle() {
			continue
		}
		if !gs.collides(next, other) || !approaching(self.Center, o.Velocity, other.Center) {
			continue
		}

		vx := clamp(o.Velocity.X*BounceSpeedUp, -o.MaxVelocity.X, o.MaxVelocity.X)
		o.Velocity.X = -vx

		// Hits further from the paddle center leave at a steeper angle,
		// downward from the lower half and upward from the upper half.
		traj := 0.0
		if half := other.Size().Y / 2; half > 0 {
			traj = clamp((self.Center.Y-other.Center.Y)/half, -1, 1)
		}
		o.Velocity.Y = clamp(traj, -o.MaxVelocity.Y, o.MaxVelocity.Y)

		gs.events |= EventPaddleHit
		return delta.Neg()
	}

	return delta
}

// approaching reports whether a ball at center moving with v heads toward paddle
func approaching(center, v, paddle geom.Vec2) bool {
	if paddle.X < center.X {
		return v.X < 0
	}
	return v.X > 0
}
