package input

import "github.com/lixenwraith/vi-snake/game"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentQuit             // q, Esc, Ctrl+Q, Ctrl+C
	IntentToggleEffectMute // Ctrl+S
	IntentResize           // Terminal resize event
	IntentTurn             // h,j,k,l, arrows
)

func (t IntentType) String() string {
	switch t {
	case IntentQuit:
		return "quit"
	case IntentToggleEffectMute:
		return "mute"
	case IntentResize:
		return "resize"
	case IntentTurn:
		return "turn"
	default:
		return "none"
	}
}

// Intent represents a parsed semantic action
// Pure data struct with no engine dependencies
type Intent struct {
	Type      IntentType
	Direction game.Direction // Valid for IntentTurn
}
