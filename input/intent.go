// Package input translates terminal events into playback intents
package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit   // q, Ctrl+C
	IntentResize // Terminal resize event

	// Playback
	IntentTogglePlay   // Space
	IntentScrubBack    // Left, a
	IntentScrubForward // Right, d
	IntentSpeedUp      // +, =
	IntentSlowDown     // -, _
	IntentFirstFrame   // Home, g
	IntentLastFrame    // End, G
	IntentToggleMute   // m

	// Selection
	IntentSelect   // Left mouse click
	IntentDeselect // Esc
)

// Intent is one translated input event
type Intent struct {
	Type     IntentType
	Col, Row int // mouse cell for IntentSelect
}
