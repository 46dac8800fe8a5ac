package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/game"
)

const (
	glyphEmpty    = '·'
	glyphSnake    = '█'
	glyphFood     = '●'
	glyphObstacle = '▓'

	// Grid starts below the status line
	gridOffsetY = 1
)

// Screen is the subset of tcell.Screen the renderer draws on
type Screen interface {
	Clear()
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
	Show()
	SetTitle(title string)
}

// TerminalRenderer draws snapshots, each grid cell spans constants.CellColumns terminal columns
type TerminalRenderer struct {
	screen Screen
	fps    int
	score  int
}

// NewTerminalRenderer creates a renderer on an initialized screen
func NewTerminalRenderer(screen Screen) *TerminalRenderer {
	return &TerminalRenderer{screen: screen}
}

// Render draws one frame
func (r *TerminalRenderer) Render(snap game.Snapshot) {
	r.screen.Clear()
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)

	r.drawGrid(snap, defaultStyle)

	for _, o := range snap.Obstacles {
		r.drawCell(o.Position, glyphObstacle, defaultStyle.Foreground(ObstacleColor(o.Moving)))
	}
	for _, f := range snap.Foods {
		r.drawCell(f.Position, glyphFood, defaultStyle.Foreground(ToTcell(f.Color)))
	}

	bodyStyle := defaultStyle.Foreground(RgbBody)
	for _, p := range snap.Snake.Body {
		r.drawCell(p, glyphSnake, bodyStyle)
	}
	// Head last so it stays visible on a dead overlap
	r.drawCell(snap.Snake.Head, glyphSnake, defaultStyle.Foreground(HeadColor(snap.Snake.Alive)))

	r.drawStatusBar(snap)

	if !snap.Snake.Alive {
		r.drawGameOver(snap)
	}

	r.screen.Show()
}

// UpdateTitle refreshes the terminal title and the HUD counters, called once per second
func (r *TerminalRenderer) UpdateTitle(score, fps int) {
	r.score = score
	r.fps = fps
	r.screen.SetTitle(Title(score, fps))
}

// Title formats the window title
func Title(score, fps int) string {
	return fmt.Sprintf("vi-snake | Score: %d | FPS: %d", score, fps)
}

func (r *TerminalRenderer) drawGrid(snap game.Snapshot, style tcell.Style) {
	dotStyle := style.Foreground(RgbGridDot)
	for y := 0; y < snap.Height; y++ {
		for x := 0; x < snap.Width; x++ {
			r.drawCell(game.Point{X: x, Y: y}, glyphEmpty, dotStyle)
		}
	}
}

// drawCell writes the glyph in the first column and pads the rest, clipped to the screen
func (r *TerminalRenderer) drawCell(p game.Point, glyph rune, style tcell.Style) {
	screenW, screenH := r.screen.Size()
	sy := p.Y + gridOffsetY
	if sy < 0 || sy >= screenH {
		return
	}

	for c := 0; c < constants.CellColumns; c++ {
		sx := p.X*constants.CellColumns + c
		if sx < 0 || sx >= screenW {
			return
		}
		ch := glyph
		if c > 0 && glyph != glyphSnake && glyph != glyphObstacle {
			ch = ' '
		}
		r.screen.SetContent(sx, sy, ch, nil, style)
	}
}

func (r *TerminalRenderer) drawStatusBar(snap game.Snapshot) {
	style := tcell.StyleDefault.Background(RgbStatusBg).Foreground(RgbStatusText)
	text := fmt.Sprintf(" Score: %d  Size: %d  Speed: %.2f  FPS: %d ",
		snap.Score, snap.Snake.Size, snap.Snake.Speed, r.fps)
	r.drawText(0, 0, text, style)
}

func (r *TerminalRenderer) drawGameOver(snap game.Snapshot) {
	style := tcell.StyleDefault.Background(RgbGameOverBg).Foreground(RgbGameOverFg)
	text := fmt.Sprintf(" GAME OVER  score %d  size %d ", snap.Score, snap.Snake.Size)

	gridCols := snap.Width * constants.CellColumns
	x := (gridCols - len(text)) / 2
	if x < 0 {
		x = 0
	}
	r.drawText(x, gridOffsetY+snap.Height/2, text, style)
}

func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) {
	screenW, screenH := r.screen.Size()
	if y < 0 || y >= screenH {
		return
	}
	for i, ch := range []rune(text) {
		if x+i >= screenW {
			return
		}
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}
