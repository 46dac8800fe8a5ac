package constants

import "time"

// Game Loop & Engine Timing
const (
	// DefaultFramesPerSecond is the target render/update rate
	DefaultFramesPerSecond = 60

	// DefaultInitialSpeed scales the frame delay, frame_delay = 1000 / (fps * speed) ms
	DefaultInitialSpeed = 1.0

	// StatsInterval is how often the loop reports score and measured FPS
	StatsInterval = time.Second

	// InputQueueSize is the capacity of the buffered terminal event channel
	InputQueueSize = 256

	// GameOverPause keeps the final frame on screen after death
	GameOverPause = 2 * time.Second
)

// Grid Defaults
const (
	// DefaultGridWidth is the default number of grid columns
	DefaultGridWidth = 32

	// DefaultGridHeight is the default number of grid rows
	DefaultGridHeight = 32

	// CellColumns is how many terminal columns one grid cell occupies (keeps cells square)
	CellColumns = 2
)

// Persistence & Logging
const (
	DefaultScoreboardPath = "highscores.txt"
	DefaultPlayerName     = "anonymous"

	LogDir      = "logs"
	LogFileName = "vi-snake.log"

	// MaxLogSize triggers rotation of the debug log at startup
	MaxLogSize = 10 * 1024 * 1024
)
