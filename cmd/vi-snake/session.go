package main

import (
	"log"

	"github.com/lixenwraith/vi-snake/game"
	"github.com/lixenwraith/vi-snake/input"
)

// snapshotRenderer is the render side of a session
type snapshotRenderer interface {
	Render(snap game.Snapshot)
}

// muteToggler is satisfied by audio.SoundManager
type muteToggler interface {
	ToggleMute() bool
}

// session adapts a game to engine.Frame
type session struct {
	game     *game.Game
	renderer snapshotRenderer
	intents  <-chan input.Intent
	sound    muteToggler
	onResize func()
	quit     bool
}

// HandleInput drains queued intents without blocking; false ends the session
func (s *session) HandleInput() bool {
	for {
		select {
		case intent := <-s.intents:
			switch intent.Type {
			case input.IntentQuit:
				s.quit = true
				return false
			case input.IntentTurn:
				s.game.SetDirection(intent.Direction)
			case input.IntentToggleEffectMute:
				if s.sound != nil {
					log.Printf("sound muted: %v", s.sound.ToggleMute())
				}
			case input.IntentResize:
				if s.onResize != nil {
					s.onResize()
				}
			}
		default:
			return true
		}
	}
}

func (s *session) Update() { s.game.Update() }

func (s *session) Render() { s.renderer.Render(s.game.Snapshot()) }

func (s *session) Done() bool { return !s.game.Alive() }

// logListener writes simulation events to the debug log
type logListener struct{}

func (logListener) OnFeed(food game.Food, score int) {
	log.Printf("feed %s at %v, score %d", food.Kind, food.Position, score)
}

func (logListener) OnBoostRevert(speed float64) {
	log.Printf("boost reverted, speed %.4f", speed)
}

func (logListener) OnDeath(cause game.DeathCause, score int) {
	log.Printf("death by %s, score %d", cause, score)
}
