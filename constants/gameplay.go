// @focus: #constants { gameplay }
package constants

import "time"

// Snake
const (
	// InitialSnakeSpeed is the head advance per tick in cells
	InitialSnakeSpeed = 0.1

	// MinSpeed is the floor applied after every speed change, keeps motion forward
	MinSpeed = 0.01
)

// Food
const (
	// FoodCount is the number of food items kept on the board
	FoodCount = 3

	// FoodMaxAttempts is the number of random placement attempts before scanning free cells
	FoodMaxAttempts = 1000
)

// Obstacles
const (
	FixedObstacleCount  = 3
	MovingObstacleCount = 2
)

// Boost Mechanics
const (
	// BoostFactor multiplies snake speed on every feed
	BoostFactor = 2.0

	// BoostDuration is the delay before a single boost is reverted
	BoostDuration = 5 * time.Second
)
