package game

// DeathCause tells why a snake stopped
type DeathCause uint8

const (
	DeathSelfCollision DeathCause = iota
	DeathObstacle
)

func (c DeathCause) String() string {
	switch c {
	case DeathSelfCollision:
		return "self-collision"
	case DeathObstacle:
		return "obstacle"
	}
	return "unknown"
}

// Listener observes simulation events for audio and logging
// OnBoostRevert runs on the scheduler goroutine, implementations must be safe for concurrent use
type Listener interface {
	OnFeed(food Food, score int)
	OnBoostRevert(speed float64)
	OnDeath(cause DeathCause, score int)
}

type nopListener struct{}

func (nopListener) OnFeed(Food, int)        {}
func (nopListener) OnBoostRevert(float64)   {}
func (nopListener) OnDeath(DeathCause, int) {}

// Listeners fans events out to several listeners in order
type Listeners []Listener

func (ls Listeners) OnFeed(food Food, score int) {
	for _, l := range ls {
		l.OnFeed(food, score)
	}
}

func (ls Listeners) OnBoostRevert(speed float64) {
	for _, l := range ls {
		l.OnBoostRevert(speed)
	}
}

func (ls Listeners) OnDeath(cause DeathCause, score int) {
	for _, l := range ls {
		l.OnDeath(cause, score)
	}
}
