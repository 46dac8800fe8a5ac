package engine

import (
	"context"
	"time"

	"github.com/lixenwraith/vi-snake/constants"
)

// Frame is one session driven by FrameLoop, all methods run on the loop goroutine
type Frame interface {
	// HandleInput drains pending input, false requests the session end
	HandleInput() bool
	// Update advances the simulation one tick
	Update()
	// Render presents the current state
	Render()
	// Done reports a terminal simulation state
	Done() bool
}

// FrameLoop paces input, update and render to a fixed target frame duration
// Short frames are padded with sleep, long frames are not caught up
type FrameLoop struct {
	target        time.Duration
	clock         TimeProvider
	statsInterval time.Duration
	onStats       func(frames int)
}

// NewFrameLoop creates a loop; onStats receives the frames completed in each stats interval
func NewFrameLoop(target time.Duration, clock TimeProvider, onStats func(frames int)) *FrameLoop {
	if clock == nil {
		clock = NewMonotonicTimeProvider()
	}
	return &FrameLoop{
		target:        target,
		clock:         clock,
		statsInterval: constants.StatsInterval,
		onStats:       onStats,
	}
}

// Target returns the configured frame duration
func (l *FrameLoop) Target() time.Duration {
	return l.target
}

// Run drives f until input requests quit, f is done, or ctx is cancelled
// Returns the number of frames executed
func (l *FrameLoop) Run(ctx context.Context, f Frame) uint64 {
	var total uint64
	frameCount := 0
	statsStamp := l.clock.Now()

	for {
		select {
		case <-ctx.Done():
			return total
		default:
		}

		frameStart := l.clock.Now()

		// Input, Update, Render
		running := f.HandleInput()
		f.Update()
		f.Render()

		frameEnd := l.clock.Now()
		frameCount++
		total++

		if frameEnd.Sub(statsStamp) >= l.statsInterval {
			if l.onStats != nil {
				l.onStats(frameCount)
			}
			frameCount = 0
			statsStamp = frameEnd
		}

		if !running || f.Done() {
			return total
		}

		if frameDuration := frameEnd.Sub(frameStart); frameDuration < l.target {
			l.clock.Sleep(l.target - frameDuration)
		}
	}
}
