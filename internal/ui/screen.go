package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/diegok/termpong/internal/game"
)

// KindColors gives each object kind its color
var KindColors = map[game.Kind]tcell.Color{
	game.Ball:        tcell.ColorWhite,
	game.PaddleLeft:  tcell.ColorRed,
	game.PaddleRight: tcell.ColorBlue,
}

type Screen struct {
	screen tcell.Screen
}

func NewScreen(s tcell.Screen) *Screen {
	return &Screen{screen: s}
}

func InitScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.EnableMouse(tcell.MouseMotionEvents)
	s.HideCursor()
	return NewScreen(s), nil
}

func (s *Screen) Size() (int, int) {
	return s.screen.Size()
}

func (s *Screen) Clear() {
	s.screen.Clear()
}

func (s *Screen) Show() {
	s.screen.Show()
}

// Sync redraws every cell, used after a resize
func (s *Screen) Sync() {
	s.screen.Sync()
}

func (s *Screen) Fini() {
	s.screen.Fini()
}

func (s *Screen) SetCell(x, y int, style tcell.Style, r rune) {
	s.screen.SetContent(x, y, r, nil, style)
}

func (s *Screen) DrawText(x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		s.screen.SetContent(x+i, y, r, nil, style)
	}
}

// DrawTextCentered draws text centered horizontally on row y
func (s *Screen) DrawTextCentered(y int, text string, style tcell.Style) {
	w, _ := s.screen.Size()
	s.DrawText((w-len([]rune(text)))/2, y, text, style)
}

func (s *Screen) DrawBox(x, y, w, h int, style tcell.Style) {
	const (
		topLeft     = '┌'
		topRight    = '┐'
		bottomLeft  = '└'
		bottomRight = '┘'
		horizontal  = '─'
		vertical    = '│'
	)

	s.screen.SetContent(x, y, topLeft, nil, style)
	s.screen.SetContent(x+w-1, y, topRight, nil, style)
	s.screen.SetContent(x, y+h-1, bottomLeft, nil, style)
	s.screen.SetContent(x+w-1, y+h-1, bottomRight, nil, style)

	for i := x + 1; i < x+w-1; i++ {
		s.screen.SetContent(i, y, horizontal, nil, style)
		s.screen.SetContent(i, y+h-1, horizontal, nil, style)
	}

	for j := y + 1; j < y+h-1; j++ {
		s.screen.SetContent(x, j, vertical, nil, style)
		s.screen.SetContent(x+w-1, j, vertical, nil, style)
	}
}

func (s *Screen) FillRect(x, y, w, h int, style tcell.Style, r rune) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			s.screen.SetContent(x+dx, y+dy, r, nil, style)
		}
	}
}

func (s *Screen) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}

// KindStyle returns the foreground style for an object kind
func KindStyle(kind game.Kind) tcell.Style {
	color, ok := KindColors[kind]
	if !ok {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(color).Background(tcell.ColorBlack)
}
