package game

import (
	"sync"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/vmath"
)

// Snake owns a sub-cell head position and the trail of cells behind it
// Speed is the only field touched outside the update goroutine (boost reverts) and has its own lock
type Snake struct {
	gridWidth  int
	gridHeight int

	headX, headY float64
	direction    Direction

	// Oldest cell first, the last entry is adjacent to the head
	body    []Point
	size    int
	growing bool
	alive   bool

	speedMu sync.Mutex
	speed   float64
}

// NewSnake places a size 1 snake at the grid center heading up
func NewSnake(gridWidth, gridHeight int) *Snake {
	return &Snake{
		gridWidth:  gridWidth,
		gridHeight: gridHeight,
		headX:      float64(gridWidth / 2),
		headY:      float64(gridHeight / 2),
		direction:  DirectionUp,
		size:       1,
		alive:      true,
		speed:      constants.InitialSnakeSpeed,
	}
}

// Update advances the head by speed and slides the body when the head enters a new cell
// Only the start and end cells of a move are compared, fast snakes can skip cells
func (s *Snake) Update() {
	if !s.alive {
		return
	}

	prevCell := s.HeadCell()
	s.updateHead()
	currentCell := s.HeadCell()

	if currentCell != prevCell {
		s.updateBody(currentCell, prevCell)
	}
}

func (s *Snake) updateHead() {
	speed := s.Speed()
	dx, dy := s.direction.Delta()

	s.headX += float64(dx) * speed
	s.headY += float64(dy) * speed

	s.headX = vmath.WrapFloat(s.headX, float64(s.gridWidth))
	s.headY = vmath.WrapFloat(s.headY, float64(s.gridHeight))
}

func (s *Snake) updateBody(currentCell, prevCell Point) {
	s.body = append(s.body, prevCell)

	if !s.growing {
		s.body = s.body[1:]
	} else {
		s.growing = false
		s.size++
	}

	for _, cell := range s.body {
		if cell == currentCell {
			s.alive = false
			return
		}
	}
}

// GrowBody marks the snake to keep its tail on the next cell change
func (s *Snake) GrowBody() {
	s.growing = true
}

// Occupies reports whether p is the head cell or any body cell
func (s *Snake) Occupies(p Point) bool {
	if p == s.HeadCell() {
		return true
	}
	for _, cell := range s.body {
		if cell == p {
			return true
		}
	}
	return false
}

// SnakeCell is Occupies for raw coordinates
func (s *Snake) SnakeCell(x, y int) bool {
	return s.Occupies(Point{X: x, Y: y})
}

// HeadCell truncates the continuous head to its grid cell
func (s *Snake) HeadCell() Point {
	return Point{X: int(s.headX), Y: int(s.headY)}
}

// Head returns the sub-cell head position
func (s *Snake) Head() (x, y float64) {
	return s.headX, s.headY
}

// Body returns a copy of the trailing cells, oldest first
func (s *Snake) Body() []Point {
	out := make([]Point, len(s.body))
	copy(out, s.body)
	return out
}

func (s *Snake) Direction() Direction { return s.direction }
func (s *Snake) Size() int            { return s.size }
func (s *Snake) Alive() bool          { return s.alive }
func (s *Snake) Growing() bool        { return s.growing }

// SetDirection assigns d unconditionally, reversal rules live in ChangeDirection
func (s *Snake) SetDirection(d Direction) {
	s.direction = d
}

// Kill marks the snake dead, there is no way back
func (s *Snake) Kill() {
	s.alive = false
}

// --- Speed (shared with deferred boost reverts) ---

// Speed returns the current cells-per-tick advance
func (s *Snake) Speed() float64 {
	s.speedMu.Lock()
	defer s.speedMu.Unlock()
	return s.speed
}

// AdjustSpeed adds delta and clamps to the speed floor, returns the new speed
func (s *Snake) AdjustSpeed(delta float64) float64 {
	s.speedMu.Lock()
	defer s.speedMu.Unlock()
	s.speed = max(s.speed+delta, constants.MinSpeed)
	return s.speed
}

// ScaleSpeed multiplies by factor and clamps to the speed floor, returns the new speed
func (s *Snake) ScaleSpeed(factor float64) float64 {
	s.speedMu.Lock()
	defer s.speedMu.Unlock()
	s.speed = max(s.speed*factor, constants.MinSpeed)
	return s.speed
}
