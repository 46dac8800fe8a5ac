package game

// SnakeView is a read-only copy of the snake for one frame
type SnakeView struct {
	HeadX, HeadY float64
	Head         Point
	Body         []Point
	Direction    Direction
	Speed        float64
	Size         int
	Alive        bool
}

// FoodView is a read-only copy of one food item
type FoodView struct {
	Position Point
	Kind     FoodKind
	Color    RGB
}

// ObstacleView is a read-only copy of one obstacle
type ObstacleView struct {
	Position Point
	Moving   bool
}

// Snapshot is the frame boundary state handed to renderers
// Slices are owned by the snapshot, mutating the game afterwards does not affect it
type Snapshot struct {
	Width, Height int
	Snake         SnakeView
	Foods         []FoodView
	Obstacles     []ObstacleView
	Score         int
}

// Snapshot copies the current state
func (g *Game) Snapshot() Snapshot {
	headX, headY := g.snake.Head()

	snap := Snapshot{
		Width:  g.width,
		Height: g.height,
		Snake: SnakeView{
			HeadX:     headX,
			HeadY:     headY,
			Head:      g.snake.HeadCell(),
			Body:      g.snake.Body(),
			Direction: g.snake.Direction(),
			Speed:     g.snake.Speed(),
			Size:      g.snake.Size(),
			Alive:     g.snake.Alive(),
		},
		Foods:     make([]FoodView, len(g.foods)),
		Obstacles: make([]ObstacleView, len(g.obstacles)),
		Score:     g.score,
	}

	for i, f := range g.foods {
		snap.Foods[i] = FoodView{Position: f.Position, Kind: f.Kind, Color: f.Color()}
	}
	for i, o := range g.obstacles {
		snap.Obstacles[i] = ObstacleView{Position: o.Position, Moving: o.Moving}
	}
	return snap
}
