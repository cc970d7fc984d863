package app

import (
	"github.com/diegok/termpong/internal/game"
	"github.com/diegok/termpong/internal/ui"
)

const (
	PaddleSpeed     = 0.5 // Field units per millisecond
	MovementTimeout = 8   // Frames to keep moving after last key press (~133ms at 60Hz)
)

// Steering moves the human paddle from key presses. Terminals report
// presses but not releases, so a direction holds for a few frames and
// key repeat keeps it alive.
type Steering struct {
	Direction     ui.Direction
	MovementTicks int
}

func (s *Steering) SetDirection(dir ui.Direction) {
	s.Direction = dir
	if dir != ui.DirNone {
		s.MovementTicks = MovementTimeout // Reset timeout on new input
	}
}

// Apply moves o for deltaTime milliseconds and keeps it inside a field of
// the given height
func (s *Steering) Apply(o *game.Object, deltaTime, height float64) {
	switch s.Direction {
	case ui.DirUp:
		o.Position.Y -= PaddleSpeed * deltaTime
	case ui.DirDown:
		o.Position.Y += PaddleSpeed * deltaTime
	}
	ClampToField(o, height)

	// Decrement movement timeout and stop when it expires
	if s.MovementTicks > 0 {
		s.MovementTicks--
		if s.MovementTicks == 0 {
			s.Direction = ui.DirNone
		}
	}
}

// Stop drops any held direction
func (s *Steering) Stop() {
	s.Direction = ui.DirNone
	s.MovementTicks = 0
}

// MoveTo centers o vertically on y, kept inside the field
func MoveTo(o *game.Object, y, height float64) {
	o.Position.Y = y - o.Size.Y/2
	ClampToField(o, height)
}

// ClampToField keeps o between the top and bottom walls
func ClampToField(o *game.Object, height float64) {
	if o.Position.Y < 0 {
		o.Position.Y = 0
	}
	if maxY := height - o.Size.Y; o.Position.Y > maxY {
		o.Position.Y = maxY
	}
}
