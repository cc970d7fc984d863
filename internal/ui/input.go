package ui

import "github.com/gdamore/tcell/v2"

// Direction represents paddle movement direction
type Direction int

const (
	DirNone Direction = 0
	DirUp   Direction = 1
	DirDown Direction = 2
)

// AIStep is how much one key press changes the AI accuracy
const AIStep = 0.1

// KeyToDirection converts a key event to a movement direction
// For Pong, only up/down movement is allowed
func KeyToDirection(key tcell.Key, r rune) Direction {
	switch key {
	case tcell.KeyUp:
		return DirUp
	case tcell.KeyDown:
		return DirDown
	case tcell.KeyRune:
		switch r {
		case 'w', 'W', 'k':
			return DirUp
		case 's', 'S', 'j':
			return DirDown
		}
	}
	return DirNone
}

// IsQuitKey returns true if the key should quit the application
func IsQuitKey(key tcell.Key, r rune) bool {
	if key == tcell.KeyEscape || key == tcell.KeyCtrlC {
		return true
	}
	if key == tcell.KeyRune && (r == 'q' || r == 'Q') {
		return true
	}
	return false
}

// IsPauseKey returns true if the key toggles pause
func IsPauseKey(key tcell.Key, r rune) bool {
	return key == tcell.KeyRune && (r == 'p' || r == 'P' || r == ' ')
}

// IsResetKey returns true if the key lays the field out again
func IsResetKey(key tcell.Key, r rune) bool {
	return key == tcell.KeyRune && (r == 'r' || r == 'R')
}

// AIAdjust returns the AI accuracy change requested by a key, or 0
func AIAdjust(key tcell.Key, r rune) float64 {
	if key != tcell.KeyRune {
		return 0
	}
	switch r {
	case '+', '=':
		return AIStep
	case '-', '_':
		return -AIStep
	}
	return 0
}
