package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Home/End)
	SpecialKeys map[tcell.Key]IntentType

	// Rune bindings
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the built-in bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyLeft:   IntentScrubBack,
			tcell.KeyRight:  IntentScrubForward,
			tcell.KeyHome:   IntentFirstFrame,
			tcell.KeyEnd:    IntentLastFrame,
			tcell.KeyEscape: IntentDeselect,
		},
		Runes: map[rune]IntentType{
			'q': IntentQuit,
			' ': IntentTogglePlay,
			'a': IntentScrubBack,
			'd': IntentScrubForward,
			'+': IntentSpeedUp,
			'=': IntentSpeedUp,
			'-': IntentSlowDown,
			'_': IntentSlowDown,
			'g': IntentFirstFrame,
			'G': IntentLastFrame,
			'm': IntentToggleMute,
		},
	}
}

// Translate maps a terminal event to an intent
func (kt *KeyTable) Translate(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyRune {
			return Intent{Type: kt.Runes[ev.Rune()]}
		}
		return Intent{Type: kt.SpecialKeys[ev.Key()]}

	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 == 0 {
			return Intent{}
		}
		col, row := ev.Position()
		return Intent{Type: IntentSelect, Col: col, Row: row}

	case *tcell.EventResize:
		return Intent{Type: IntentResize}
	}
	return Intent{}
}
