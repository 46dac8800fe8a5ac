package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-snake/game"
)

// KeyEntry describes what a key does
type KeyEntry struct {
	Type      IntentType
	Direction game.Direction
}

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Esc)
	SpecialKeys map[tcell.Key]KeyEntry

	// Plain rune bindings
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlQ:  {Type: IntentQuit},
			tcell.KeyCtrlC:  {Type: IntentQuit},
			tcell.KeyEscape: {Type: IntentQuit},
			tcell.KeyCtrlS:  {Type: IntentToggleEffectMute},
			tcell.KeyUp:     {IntentTurn, game.DirectionUp},
			tcell.KeyDown:   {IntentTurn, game.DirectionDown},
			tcell.KeyLeft:   {IntentTurn, game.DirectionLeft},
			tcell.KeyRight:  {IntentTurn, game.DirectionRight},
		},

		Runes: map[rune]KeyEntry{
			'h': {IntentTurn, game.DirectionLeft},
			'j': {IntentTurn, game.DirectionDown},
			'k': {IntentTurn, game.DirectionUp},
			'l': {IntentTurn, game.DirectionRight},
			'q': {Type: IntentQuit},
		},
	}
}

// Lookup resolves a key event, ok is false for unbound keys
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (KeyEntry, bool) {
	if ev.Key() == tcell.KeyRune {
		entry, ok := kt.Runes[ev.Rune()]
		return entry, ok
	}
	entry, ok := kt.SpecialKeys[ev.Key()]
	return entry, ok
}
