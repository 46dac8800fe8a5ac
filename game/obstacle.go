package game

import "github.com/lixenwraith/vi-snake/vmath"

// Obstacle is a deadly cell, optionally moving at a constant velocity
type Obstacle struct {
	Position Point
	Moving   bool
	DX, DY   int
}

// Move steps a moving obstacle by its velocity and wraps at grid edges
func (o *Obstacle) Move(width, height int) {
	if !o.Moving {
		return
	}
	o.Position.X = vmath.WrapInt(o.Position.X+o.DX, width)
	o.Position.Y = vmath.WrapInt(o.Position.Y+o.DY, height)
}
