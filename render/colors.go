package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-snake/game"
)

// RGB color definitions for grid entities and the status line
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38) // Tokyo Night background
	RgbGridDot    = tcell.NewRGBColor(45, 47, 66) // Faint cell marker

	RgbHeadAlive = tcell.NewRGBColor(255, 255, 0)   // Yellow
	RgbHeadDead  = tcell.NewRGBColor(255, 0, 0)     // Red
	RgbBody      = tcell.NewRGBColor(255, 255, 255) // White

	RgbObstacleFixed  = tcell.NewRGBColor(128, 128, 128) // Gray
	RgbObstacleMoving = tcell.NewRGBColor(255, 0, 255)   // Magenta

	RgbStatusBg   = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbStatusText = tcell.NewRGBColor(0, 0, 0)
	RgbGameOverBg = tcell.NewRGBColor(200, 50, 50)
	RgbGameOverFg = tcell.NewRGBColor(255, 255, 255)
)

// ToTcell converts a game color to a true-color tcell value
func ToTcell(c game.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// HeadColor is yellow while alive and red after death
func HeadColor(alive bool) tcell.Color {
	if alive {
		return RgbHeadAlive
	}
	return RgbHeadDead
}

// ObstacleColor distinguishes moving from fixed obstacles
func ObstacleColor(moving bool) tcell.Color {
	if moving {
		return RgbObstacleMoving
	}
	return RgbObstacleFixed
}
