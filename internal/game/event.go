package game

import "strings"

// Event is a set of things that happened during one tick
type Event uint8

const (
	EventWallBounce Event = 1 << iota
	EventPaddleHit
	EventBallOut
)

// Has reports whether all bits of e2 are set in e
func (e Event) Has(e2 Event) bool {
	return e&e2 == e2 && e2 != 0
}

func (e Event) String() string {
	if e == 0 {
		return "none"
	}
	var parts []string
	if e.Has(EventWallBounce) {
		parts = append(parts, "wall-bounce")
	}
	if e.Has(EventPaddleHit) {
		parts = append(parts, "paddle-hit")
	}
	if e.Has(EventBallOut) {
		parts = append(parts, "ball-out")
	}
	return strings.Join(parts, "|")
}
