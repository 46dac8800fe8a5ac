package game

import (
	"errors"
	"testing"
	"time"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/vmath"
)

func TestNew_InvalidGrid(t *testing.T) {
	for _, dims := range [][2]int{{0, 10}, {10, 0}, {-1, 5}} {
		if _, err := New(dims[0], dims[1]); !errors.Is(err, ErrInvalidGrid) {
			t.Errorf("New(%d, %d) err = %v, want ErrInvalidGrid", dims[0], dims[1], err)
		}
	}
}

func TestNew_InitialState(t *testing.T) {
	g := newTestGame(t, 10, 10, standardLayout...)
	snap := g.Snapshot()

	if snap.Snake.Head != (Point{5, 5}) || !snap.Snake.Alive || snap.Snake.Size != 1 {
		t.Errorf("snake = %+v, want alive size 1 at (5,5)", snap.Snake)
	}
	if g.Score() != 0 {
		t.Errorf("score = %d, want 0", g.Score())
	}
	if g.Width() != 10 || g.Height() != 10 || snap.Width != g.Width() || snap.Height != g.Height() {
		t.Errorf("dimensions %dx%d, snapshot %dx%d, want 10x10", g.Width(), g.Height(), snap.Width, snap.Height)
	}
	if len(snap.Foods) != constants.FoodCount {
		t.Fatalf("foods = %d, want %d", len(snap.Foods), constants.FoodCount)
	}
	for i, want := range []Point{{0, 0}, {1, 0}, {2, 0}} {
		if snap.Foods[i].Position != want || snap.Foods[i].Kind != FoodRed {
			t.Errorf("food %d = %+v, want red at %v", i, snap.Foods[i], want)
		}
	}

	wantObstacles := []Obstacle{
		{Position: Point{9, 9}},
		{Position: Point{8, 9}},
		{Position: Point{7, 9}},
		{Position: Point{0, 8}, Moving: true, DX: 1},
		{Position: Point{9, 0}, Moving: true, DY: 1},
	}
	if len(g.obstacles) != len(wantObstacles) {
		t.Fatalf("obstacles = %d, want %d", len(g.obstacles), len(wantObstacles))
	}
	for i, want := range wantObstacles {
		if g.obstacles[i] != want {
			t.Errorf("obstacle %d = %+v, want %+v", i, g.obstacles[i], want)
		}
	}
}

func TestFoodKinds_Table(t *testing.T) {
	tests := []struct {
		kind  FoodKind
		score int
		speed float64
		color RGB
	}{
		{FoodRed, 1, 0.02, RGB{255, 0, 0}},
		{FoodGreen, 2, 0.05, RGB{0, 255, 0}},
		{FoodBlue, 3, -0.01, RGB{0, 0, 255}},
	}
	for _, tt := range tests {
		if tt.kind.ScoreValue() != tt.score || tt.kind.SpeedIncrement() != tt.speed || tt.kind.Color() != tt.color {
			t.Errorf("%v = (%d, %v, %v), want (%d, %v, %v)", tt.kind,
				tt.kind.ScoreValue(), tt.kind.SpeedIncrement(), tt.kind.Color(),
				tt.score, tt.speed, tt.color)
		}
	}
	if len(FoodKinds()) != 3 {
		t.Errorf("FoodKinds() = %v, want 3 kinds", FoodKinds())
	}
}

func TestPlaceFood_SkipsSnakeCells(t *testing.T) {
	vals := []int{
		5, 5, 0, 0, 1, // first proposal hits the snake head, retried at (0,0), green
		1, 0, 0, 2, 0, 0,
		9, 9, 8, 9, 7, 9, 0, 8, 9, 0,
	}
	g := newTestGame(t, 10, 10, vals...)

	for _, f := range g.foods {
		if f.Position == (Point{5, 5}) {
			t.Fatal("food spawned on the snake")
		}
	}
	if g.foods[0].Position != (Point{0, 0}) || g.foods[0].Kind != FoodGreen {
		t.Errorf("first food = %+v, want green at (0,0)", g.foods[0])
	}
}

func TestPlaceObstacles_SkipsSnakeCells(t *testing.T) {
	vals := []int{
		0, 0, 0, 1, 0, 0, 2, 0, 0,
		5, 5, 1, 1, // retried away from the snake
		8, 9, 7, 9, 0, 8, 9, 0,
	}
	g := newTestGame(t, 10, 10, vals...)

	if len(g.obstacles) != constants.FixedObstacleCount+constants.MovingObstacleCount {
		t.Fatalf("obstacles = %d, want 5", len(g.obstacles))
	}
	for _, o := range g.obstacles {
		if o.Position == (Point{5, 5}) {
			t.Fatal("obstacle spawned on the snake")
		}
	}
	if g.obstacles[0].Position != (Point{1, 1}) {
		t.Errorf("first obstacle = %v, want (1,1)", g.obstacles[0].Position)
	}
}

func TestPlaceObstacles_OverlapAllowed(t *testing.T) {
	vals := []int{
		0, 0, 0, 1, 0, 0, 2, 0, 0,
		3, 3, 3, 3, 3, 3, 3, 3, 3, 3,
	}
	g := newTestGame(t, 10, 10, vals...)

	for i, o := range g.obstacles {
		if o.Position != (Point{3, 3}) {
			t.Errorf("obstacle %d at %v, want stacked at (3,3)", i, o.Position)
		}
	}
}

func TestPlaceFood_FullBoard(t *testing.T) {
	// 1x1: the snake covers the only cell
	g := newTestGame(t, 1, 1)

	if len(g.foods) != 0 || len(g.obstacles) != 0 {
		t.Fatalf("foods=%d obstacles=%d on a full board, want 0/0", len(g.foods), len(g.obstacles))
	}
	g.Update()
	if !g.Alive() {
		t.Error("snake on a 1x1 board never changes cell and must survive")
	}
}

func TestObstacle_Move(t *testing.T) {
	tests := []struct {
		name string
		obs  Obstacle
		want Point
	}{
		{"right edge wraps to 0", Obstacle{Position: Point{9, 0}, Moving: true, DX: 1}, Point{0, 0}},
		{"left edge wraps to width-1", Obstacle{Position: Point{0, 0}, Moving: true, DX: -1}, Point{9, 0}},
		{"top edge wraps to height-1", Obstacle{Position: Point{4, 0}, Moving: true, DY: -1}, Point{4, 7}},
		{"bottom edge wraps to 0", Obstacle{Position: Point{4, 7}, Moving: true, DY: 1}, Point{4, 0}},
		{"diagonal corner", Obstacle{Position: Point{0, 0}, Moving: true, DX: -1, DY: -1}, Point{9, 7}},
		{"fixed is a no-op", Obstacle{Position: Point{3, 3}, DX: 1, DY: 1}, Point{3, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := tt.obs
			o.Move(10, 8)
			if o.Position != tt.want {
				t.Errorf("position = %v, want %v", o.Position, tt.want)
			}
		})
	}
}

func TestGame_MovesObstaclesEachTick(t *testing.T) {
	g := newTestGame(t, 10, 10, standardLayout...)
	g.Update()

	if got := g.obstacles[3].Position; got != (Point{1, 8}) {
		t.Errorf("horizontal mover = %v, want (1,8)", got)
	}
	if got := g.obstacles[4].Position; got != (Point{9, 1}) {
		t.Errorf("vertical mover = %v, want (9,1)", got)
	}
	if got := g.obstacles[0].Position; got != (Point{9, 9}) {
		t.Errorf("fixed obstacle moved to %v", got)
	}
}

func TestGame_FeedScenario(t *testing.T) {
	g := newTestGame(t, 10, 10, standardLayout...)
	// Head at (5,5) heading up at 0.1 enters (5,4) on the first tick
	g.foods[0] = Food{Position: Point{5, 4}, Kind: FoodGreen}
	g.rng.push(0, 5, 1) // replacement: green at (0,5)

	scoreBefore := g.Score()
	g.Update()

	if got := g.Score() - scoreBefore; got != 2 {
		t.Errorf("score delta = %d, want 2", got)
	}
	wantSpeed := (constants.InitialSnakeSpeed + 0.05) * constants.BoostFactor
	if !approxEqual(g.Speed(), wantSpeed) {
		t.Errorf("speed = %v, want %v", g.Speed(), wantSpeed)
	}
	if len(g.foods) != constants.FoodCount {
		t.Fatalf("foods = %d after feed, want %d", len(g.foods), constants.FoodCount)
	}
	replacement := g.foods[len(g.foods)-1]
	if replacement.Position != (Point{0, 5}) || replacement.Kind != FoodGreen {
		t.Errorf("replacement = %+v, want green at (0,5)", replacement)
	}
	for _, f := range g.foods {
		if g.snake.Occupies(f.Position) {
			t.Errorf("food %v overlaps the snake", f.Position)
		}
	}

	// Growth lands on the next cell change
	for i := 0; i < 20 && g.snake.HeadCell() == (Point{5, 4}); i++ {
		g.Update()
	}
	if g.Size() != 2 {
		t.Errorf("size = %d after next cell change, want 2", g.Size())
	}
	if len(g.events.feeds) != 1 || g.events.scores[0] != 2 {
		t.Errorf("feed events = %v scores = %v, want one at score 2", g.events.feeds, g.events.scores)
	}
}

func TestGame_ObstacleCollisionIsTerminal(t *testing.T) {
	g := newTestGame(t, 10, 10, standardLayout...)
	g.obstacles = append(g.obstacles, Obstacle{Position: Point{5, 4}})
	g.foods[0] = Food{Position: Point{5, 4}, Kind: FoodBlue}

	g.Update()

	if g.Alive() {
		t.Fatal("snake entering an obstacle cell must die")
	}
	if g.Score() != 0 {
		t.Errorf("score = %d, food must not be checked on the death tick", g.Score())
	}
	if len(g.events.deaths) != 1 || g.events.deaths[0] != DeathObstacle {
		t.Errorf("deaths = %v, want [obstacle]", g.events.deaths)
	}
}

func TestGame_SelfCollisionReported(t *testing.T) {
	g := newTestGame(t, 10, 10, standardLayout...)
	placeSnake(g.snake, 5, 5, DirectionRight, 1,
		Point{6, 4}, Point{6, 5}, Point{6, 6}, Point{5, 6})

	g.Update()

	if g.Alive() {
		t.Fatal("self-collision must kill")
	}
	if len(g.events.deaths) != 1 || g.events.deaths[0] != DeathSelfCollision {
		t.Errorf("deaths = %v, want [self-collision]", g.events.deaths)
	}
}

func TestGame_FastSnakeSkipsCells(t *testing.T) {
	g := newTestGame(t, 10, 10, standardLayout...)
	g.obstacles = append(g.obstacles, Obstacle{Position: Point{5, 4}})
	g.snake.speed = 2

	g.Update()

	if !g.Alive() {
		t.Error("only endpoint cells are checked, a 2-cell jump passes the obstacle")
	}
	if got := g.snake.HeadCell(); got != (Point{5, 3}) {
		t.Errorf("head = %v, want (5,3)", got)
	}
}

func TestGame_NoFalseObstacleDeath(t *testing.T) {
	g := newTestGame(t, 10, 10, standardLayout...)

	// 30 ticks at 0.1 walks rows 4, 3, 2 away from every obstacle
	for i := 0; i < 30; i++ {
		g.Update()
		if !g.Alive() {
			t.Fatalf("snake died at tick %d", i)
		}
	}
}

func TestGame_DeadIsNoop(t *testing.T) {
	g := newTestGame(t, 10, 10, standardLayout...)
	g.snake.Kill()

	before := g.Snapshot()
	g.Update()
	after := g.Snapshot()

	if before.Obstacles[3] != after.Obstacles[3] {
		t.Error("obstacles moved after death")
	}
	if before.Snake.HeadX != after.Snake.HeadX || before.Snake.HeadY != after.Snake.HeadY {
		t.Error("snake moved after death")
	}
}

func TestGame_IdempotentAccessors(t *testing.T) {
	g := newTestGame(t, 10, 10, standardLayout...)
	g.foods[0] = Food{Position: Point{5, 4}, Kind: FoodBlue}
	g.Update()

	score, size := g.Score(), g.Size()
	for i := 0; i < 5; i++ {
		if g.Score() != score || g.Size() != size {
			t.Fatalf("accessors changed without Update: score %d->%d size %d->%d",
				score, g.Score(), size, g.Size())
		}
	}
}

func TestGame_FoodCountStaysConstant(t *testing.T) {
	rng := vmath.NewFastRand(2024)
	g := newTestGame(t, 12, 12)
	dirs := []Direction{DirectionUp, DirectionLeft, DirectionDown, DirectionRight}
	feeds := 0

	for tick := 0; tick < 5000 && g.Alive(); tick++ {
		if tick%25 == 0 {
			g.SetDirection(dirs[rng.Intn(len(dirs))])
		}
		before := g.Score()
		g.Update()
		if g.Score() != before {
			feeds++
		}
		if !g.Alive() {
			break
		}
		if len(g.foods) != constants.FoodCount {
			t.Fatalf("tick %d: foods = %d, want %d", tick, len(g.foods), constants.FoodCount)
		}
	}
	t.Logf("feeds observed: %d", feeds)
}

func TestGame_BoostRevert(t *testing.T) {
	g := newTestGame(t, 10, 10, standardLayout...)
	g.foods[0] = Food{Position: Point{5, 4}, Kind: FoodRed}

	g.Update()

	base := constants.InitialSnakeSpeed + FoodRed.SpeedIncrement()
	if !approxEqual(g.Speed(), base*constants.BoostFactor) {
		t.Fatalf("boosted speed = %v, want %v", g.Speed(), base*constants.BoostFactor)
	}
	if g.scheduler.Pending() != 1 {
		t.Fatalf("pending reverts = %d, want 1", g.scheduler.Pending())
	}

	g.scheduler.Advance(constants.BoostDuration - time.Millisecond)
	if !approxEqual(g.Speed(), base*constants.BoostFactor) {
		t.Errorf("boost reverted early, speed = %v", g.Speed())
	}

	g.scheduler.Advance(time.Millisecond)
	if !approxEqual(g.Speed(), base) {
		t.Errorf("speed after revert = %v, want %v", g.Speed(), base)
	}
	if len(g.events.reverts) != 1 || !approxEqual(g.events.reverts[0], base) {
		t.Errorf("revert events = %v, want [%v]", g.events.reverts, base)
	}
}

func TestGame_OverlappingBoostsDecayUnevenly(t *testing.T) {
	g := newTestGame(t, 10, 10, standardLayout...)
	g.foods[0] = Food{Position: Point{5, 4}, Kind: FoodGreen}
	g.rng.push(0, 5, 0, 1, 5, 0) // both replacements red, off the snake's column
	g.Update()

	g.scheduler.Advance(2 * time.Second)

	// Second feed one row further up
	g.foods[0] = Food{Position: Point{5, 3}, Kind: FoodGreen}
	for i := 0; i < 20 && g.Score() == 2; i++ {
		g.Update()
	}
	if g.Score() != 4 {
		t.Fatalf("score = %d, second feed did not happen", g.Score())
	}

	first := (constants.InitialSnakeSpeed + 0.05) * 2
	second := (first + 0.05) * 2
	if !approxEqual(g.Speed(), second) {
		t.Fatalf("speed after two feeds = %v, want %v", g.Speed(), second)
	}

	g.scheduler.Advance(3 * time.Second) // first revert
	if !approxEqual(g.Speed(), second/2) {
		t.Errorf("speed after first revert = %v, want %v", g.Speed(), second/2)
	}
	g.scheduler.Advance(2 * time.Second) // second revert
	if !approxEqual(g.Speed(), second/4) {
		t.Errorf("speed after both reverts = %v, want %v", g.Speed(), second/4)
	}

	// Compounding leaves the snake below the unboosted sum of increments
	unboosted := constants.InitialSnakeSpeed + 0.05 + 0.05
	if approxEqual(g.Speed(), unboosted) {
		t.Errorf("overlapping boosts were expected to decay unevenly, got %v", g.Speed())
	}
}

func TestGame_RevertFiresAfterDeath(t *testing.T) {
	g := newTestGame(t, 10, 10, standardLayout...)
	g.foods[0] = Food{Position: Point{5, 4}, Kind: FoodRed}
	g.Update()

	boosted := g.Speed()
	g.snake.Kill()

	if n := g.scheduler.Advance(constants.BoostDuration); n != 1 {
		t.Fatalf("fired %d reverts, want 1", n)
	}
	if !approxEqual(g.Speed(), boosted/constants.BoostFactor) {
		t.Errorf("speed = %v, pending revert must still apply after death", g.Speed())
	}
	g.Update()
	if g.Alive() {
		t.Error("revert must not revive the snake")
	}
}

func TestGame_SetDirection(t *testing.T) {
	g := newTestGame(t, 10, 10, standardLayout...)

	if !g.SetDirection(DirectionDown) {
		t.Error("single segment snake may reverse")
	}
	g.snake.body = []Point{{5, 4}}
	g.snake.size = 2
	if g.SetDirection(DirectionUp) {
		t.Error("reversal must be rejected for a two segment snake")
	}
	if g.snake.Direction() != DirectionDown {
		t.Errorf("direction = %v, want down", g.snake.Direction())
	}
}

func TestSnapshot_IsIndependent(t *testing.T) {
	g := newTestGame(t, 10, 10, standardLayout...)
	placeSnake(g.snake, 5, 5, DirectionUp, 1, Point{5, 7}, Point{5, 6})

	snap := g.Snapshot()
	g.Update()

	if snap.Snake.Head != (Point{5, 5}) {
		t.Errorf("snapshot head changed to %v", snap.Snake.Head)
	}
	if len(snap.Snake.Body) != 2 || snap.Snake.Body[0] != (Point{5, 7}) {
		t.Errorf("snapshot body changed to %v", snap.Snake.Body)
	}
	if snap.Obstacles[3].Position != (Point{0, 8}) {
		t.Errorf("snapshot obstacle changed to %v", snap.Obstacles[3].Position)
	}
	if snap.Foods[0].Color != FoodRed.Color() {
		t.Errorf("food color = %v, want %v", snap.Foods[0].Color, FoodRed.Color())
	}
	if !snap.Obstacles[3].Moving || snap.Obstacles[0].Moving {
		t.Error("moving flags not copied")
	}
}

func TestListeners_FanOut(t *testing.T) {
	a, b := &recordingListener{}, &recordingListener{}
	ls := Listeners{a, b}

	ls.OnFeed(Food{Kind: FoodBlue}, 3)
	ls.OnBoostRevert(0.5)
	ls.OnDeath(DeathObstacle, 3)

	for i, l := range []*recordingListener{a, b} {
		if len(l.feeds) != 1 || len(l.reverts) != 1 || len(l.deaths) != 1 {
			t.Errorf("listener %d got feeds=%d reverts=%d deaths=%d, want 1 each",
				i, len(l.feeds), len(l.reverts), len(l.deaths))
		}
	}
}
