package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/vmath"
)

// ErrInvalidGrid is returned for non-positive grid dimensions
var ErrInvalidGrid = errors.New("grid dimensions must be positive")

// Game owns one snake, the food population and the obstacles on a toroidal grid
// Update, spawning and accessors run on a single goroutine; boost reverts only touch snake speed
type Game struct {
	width  int
	height int

	snake     *Snake
	foods     []Food
	obstacles []Obstacle
	score     int

	rng       vmath.Rand
	scheduler engine.Scheduler
	listener  Listener
}

// Option configures a Game at construction
type Option func(*Game)

// WithRand injects the sampling source used for food and obstacle placement
func WithRand(r vmath.Rand) Option {
	return func(g *Game) { g.rng = r }
}

// WithScheduler injects the scheduler running boost reverts
func WithScheduler(s engine.Scheduler) Option {
	return func(g *Game) { g.scheduler = s }
}

// WithListener registers the simulation event observer
func WithListener(l Listener) Option {
	return func(g *Game) { g.listener = l }
}

// New creates a game with a centered snake, FoodCount food items and the obstacle set
func New(width, height int, opts ...Option) (*Game, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("new game %dx%d: %w", width, height, ErrInvalidGrid)
	}

	g := &Game{
		width:    width,
		height:   height,
		snake:    NewSnake(width, height),
		foods:    make([]Food, 0, constants.FoodCount),
		listener: nopListener{},
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = vmath.NewFastRand(uint64(time.Now().UnixNano()))
	}
	if g.scheduler == nil {
		g.scheduler = engine.NewTimerScheduler()
	}
	if g.listener == nil {
		g.listener = nopListener{}
	}

	for i := 0; i < constants.FoodCount; i++ {
		g.placeFood()
	}
	g.placeObstacles()

	return g, nil
}

// Update advances one tick: obstacles, snake, obstacle collision, then feeding
// A dead snake makes Update a permanent no-op
func (g *Game) Update() {
	if !g.snake.Alive() {
		return
	}

	g.moveObstacles()
	g.snake.Update()

	if !g.snake.Alive() {
		g.listener.OnDeath(DeathSelfCollision, g.score)
		return
	}

	head := g.snake.HeadCell()
	for _, obs := range g.obstacles {
		if obs.Position == head {
			g.snake.Kill()
			g.listener.OnDeath(DeathObstacle, g.score)
			return
		}
	}

	g.checkFood(head)
}

func (g *Game) checkFood(head Point) {
	for i := 0; i < len(g.foods); {
		food := g.foods[i]
		if food.Position != head {
			i++
			continue
		}

		g.score += food.ScoreValue()
		g.snake.GrowBody()
		g.snake.AdjustSpeed(food.SpeedIncrement())
		g.boost()

		g.foods = append(g.foods[:i], g.foods[i+1:]...)
		g.listener.OnFeed(food, g.score)
		g.placeFood()
	}
}

// boost multiplies speed now and schedules an independent revert
// Reverts are neither coalesced nor cancelled, overlapping boosts compound and still fire after death
func (g *Game) boost() {
	g.snake.ScaleSpeed(constants.BoostFactor)

	snake := g.snake
	listener := g.listener
	g.scheduler.AfterFunc(constants.BoostDuration, func() {
		speed := snake.ScaleSpeed(1 / constants.BoostFactor)
		listener.OnBoostRevert(speed)
	})
}

// randomFreeCell samples uniform cells not covered by the snake
// After FoodMaxAttempts misses it picks uniformly among the remaining free cells
func (g *Game) randomFreeCell() (Point, bool) {
	for attempt := 0; attempt < constants.FoodMaxAttempts; attempt++ {
		p := Point{X: g.rng.Intn(g.width), Y: g.rng.Intn(g.height)}
		if !g.snake.Occupies(p) {
			return p, true
		}
	}

	free := make([]Point, 0, g.width*g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if p := (Point{X: x, Y: y}); !g.snake.Occupies(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return Point{}, false
	}
	return free[g.rng.Intn(len(free))], true
}

// placeFood spawns one food of a uniformly random kind on a free cell, false when the board is full
func (g *Game) placeFood() bool {
	p, ok := g.randomFreeCell()
	if !ok {
		return false
	}
	kind := FoodKind(g.rng.Intn(int(foodKindCount)))
	g.foods = append(g.foods, Food{Position: p, Kind: kind})
	return true
}

// placeObstacles creates the fixed set, then the moving set alternating horizontal and vertical velocity
// Obstacles are not checked against each other or against food
func (g *Game) placeObstacles() {
	for i := 0; i < constants.FixedObstacleCount; i++ {
		if p, ok := g.randomFreeCell(); ok {
			g.obstacles = append(g.obstacles, Obstacle{Position: p})
		}
	}
	for i := 0; i < constants.MovingObstacleCount; i++ {
		p, ok := g.randomFreeCell()
		if !ok {
			continue
		}
		obs := Obstacle{Position: p, Moving: true}
		if i%2 == 0 {
			obs.DX = 1
		} else {
			obs.DY = 1
		}
		g.obstacles = append(g.obstacles, obs)
	}
}

func (g *Game) moveObstacles() {
	for i := range g.obstacles {
		g.obstacles[i].Move(g.width, g.height)
	}
}

// SetDirection forwards a directional intent through the reversal guard
func (g *Game) SetDirection(d Direction) bool {
	return ChangeDirection(g.snake, d)
}

// Score returns the accumulated food value
func (g *Game) Score() int { return g.score }

// Size returns the snake length in cells
func (g *Game) Size() int { return g.snake.Size() }

// Alive reports whether the session can still advance
func (g *Game) Alive() bool { return g.snake.Alive() }

// Speed returns the snake's current speed
func (g *Game) Speed() float64 { return g.snake.Speed() }

// Width and Height return the grid dimensions
func (g *Game) Width() int  { return g.width }
func (g *Game) Height() int { return g.height }
