package game

import (
	"math"
	"sync"
	"testing"

	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/vmath"
)

// seqRand replays fixed values (wrapped into range), then falls back to a seeded generator
type seqRand struct {
	vals     []int
	pos      int
	fallback *vmath.FastRand
}

func newSeqRand(vals ...int) *seqRand {
	return &seqRand{vals: vals, fallback: vmath.NewFastRand(99)}
}

func (r *seqRand) Intn(n int) int {
	if r.pos < len(r.vals) {
		v := r.vals[r.pos]
		r.pos++
		return vmath.WrapInt(v, n)
	}
	return r.fallback.Intn(n)
}

func (r *seqRand) push(vals ...int) {
	r.vals = append(r.vals, vals...)
}

// standardLayout places everything away from column 5, the snake's path on a 10x10 grid
var standardLayout = []int{
	0, 0, 0, 1, 0, 0, 2, 0, 0, // food (0,0) (1,0) (2,0), all red
	9, 9, 8, 9, 7, 9, // fixed obstacles on row 9
	0, 8, 9, 0, // moving: row 8 heading right, column 9 heading down
}

type recordingListener struct {
	mu      sync.Mutex
	feeds   []Food
	scores  []int
	reverts []float64
	deaths  []DeathCause
}

func (l *recordingListener) OnFeed(food Food, score int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.feeds = append(l.feeds, food)
	l.scores = append(l.scores, score)
}

func (l *recordingListener) OnBoostRevert(speed float64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.reverts = append(l.reverts, speed)
}

func (l *recordingListener) OnDeath(cause DeathCause, score int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.deaths = append(l.deaths, cause)
}

type testGame struct {
	*Game
	rng       *seqRand
	scheduler *engine.ManualScheduler
	events    *recordingListener
}

func newTestGame(t *testing.T, width, height int, vals ...int) *testGame {
	t.Helper()
	rng := newSeqRand(vals...)
	sched := engine.NewManualScheduler()
	events := &recordingListener{}

	g, err := New(width, height, WithRand(rng), WithScheduler(sched), WithListener(events))
	if err != nil {
		t.Fatalf("New(%d, %d) failed: %v", width, height, err)
	}
	return &testGame{Game: g, rng: rng, scheduler: sched, events: events}
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// placeSnake puts a snake in an exact configuration for movement tests
func placeSnake(s *Snake, headX, headY float64, dir Direction, speed float64, body ...Point) {
	s.headX, s.headY = headX, headY
	s.direction = dir
	s.speed = speed
	s.body = append([]Point(nil), body...)
	s.size = len(body) + 1
	s.growing = false
	s.alive = true
}
