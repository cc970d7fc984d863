package ui

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/termpong/internal/game"
	"github.com/diegok/termpong/internal/geom"
)

const (
	BallChar   = '▓'
	PaddleChar = '█'
)

// Field units per terminal cell. Cells are about twice as tall as wide.
const (
	CellWidth  = 10.0
	CellHeight = 20.0
)

// Smallest playable terminal
const (
	MinCols = 40
	MinRows = 12
)

// View is everything drawn in one frame
type View struct {
	Objects    []game.Object
	Paused     bool
	AIAccuracy float64
	Control    game.Kind
}

// FieldSize converts a terminal size to field units. The bottom row is the
// status bar and is not part of the field.
func FieldSize(cols, rows int) (width, height float64) {
	return float64(cols) * CellWidth, float64(rows-1) * CellHeight
}

// FieldY returns the field y at the middle of a terminal row
func FieldY(row int) float64 {
	return (float64(row) + 0.5) * CellHeight
}

// CellRect maps a box in field units to the cells it covers, as half-open
// ranges [x0,x1) and [y0,y1). Every box covers at least one cell.
func CellRect(c geom.Collider) (x0, y0, x1, y1 int) {
	x0 = int(math.Floor(c.Min.X / CellWidth))
	y0 = int(math.Floor(c.Min.Y / CellHeight))
	x1 = int(math.Ceil(c.Max.X / CellWidth))
	y1 = int(math.Ceil(c.Max.Y / CellHeight))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return x0, y0, x1, y1
}

// Renderer handles drawing the game
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer with the given screen
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// RenderGame draws the field, every object and the status bar
func (r *Renderer) RenderGame(v View) {
	r.screen.Clear()
	screenW, screenH := r.screen.Size()
	fieldRows := screenH - 1

	courtStyle := tcell.StyleDefault.Background(tcell.ColorBlack)
	r.screen.FillRect(0, 0, screenW, fieldRows, courtStyle, ' ')

	// Center dashed line
	centerX := screenW / 2
	lineStyle := courtStyle.Foreground(tcell.ColorDarkGray)
	for y := 0; y < fieldRows; y += 2 {
		r.screen.SetCell(centerX, y, lineStyle, '|')
	}

	for _, o := range v.Objects {
		r.drawObject(o, screenW, fieldRows)
	}

	r.renderStatus(v, screenW, screenH-1)

	if v.Paused {
		r.renderPauseBox(screenW, fieldRows)
	}

	r.screen.Show()
}

func (r *Renderer) drawObject(o game.Object, cols, rows int) {
	ch := PaddleChar
	if o.Kind == game.Ball {
		ch = BallChar
	}
	style := KindStyle(o.Kind)

	x0, y0, x1, y1 := CellRect(o.Collider())
	for y := max(y0, 0); y < min(y1, rows); y++ {
		for x := max(x0, 0); x < min(x1, cols); x++ {
			r.screen.SetCell(x, y, style, ch)
		}
	}
}

// renderStatus draws the bottom bar
func (r *Renderer) renderStatus(v View, screenW, y int) {
	statusStyle := tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorWhite)
	for x := 0; x < screenW; x++ {
		r.screen.SetCell(x, y, statusStyle, ' ')
	}

	side := "right"
	if v.Control == game.PaddleLeft {
		side = "left"
	}
	state := "playing"
	if v.Paused {
		state = "PAUSED"
	}
	text := fmt.Sprintf(" %s | you: %s | AI %.1f | w/s move  p pause  +/- AI  r reset  q quit", state, side, v.AIAccuracy)
	r.screen.DrawText(0, y, text, statusStyle)
}

// renderPauseBox draws a centered box over the field
func (r *Renderer) renderPauseBox(screenW, fieldRows int) {
	boxW := 30
	boxH := 5
	boxX := (screenW - boxW) / 2
	boxY := (fieldRows - boxH) / 2

	fillStyle := tcell.StyleDefault.Background(tcell.ColorDarkGray)
	r.screen.FillRect(boxX+1, boxY+1, boxW-2, boxH-2, fillStyle, ' ')
	r.screen.DrawBox(boxX, boxY, boxW, boxH, tcell.StyleDefault.Foreground(tcell.ColorWhite))

	r.screen.DrawTextCentered(boxY+1, "PAUSED", fillStyle.Foreground(tcell.ColorYellow).Bold(true))
	r.screen.DrawTextCentered(boxY+3, "Press p to resume", fillStyle.Foreground(tcell.ColorGreen))
}

// RenderTooSmall asks for a bigger terminal
func (r *Renderer) RenderTooSmall() {
	r.screen.Clear()
	_, screenH := r.screen.Size()

	msg := fmt.Sprintf("Terminal too small. Minimum: %dx%d", MinCols, MinRows)
	r.screen.DrawTextCentered(screenH/2, msg, tcell.StyleDefault.Foreground(tcell.ColorRed))
	r.screen.DrawTextCentered(screenH/2+2, "Press 'q' to quit", tcell.StyleDefault.Foreground(tcell.ColorGray))

	r.screen.Show()
}
