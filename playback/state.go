package playback

// State is the playback state machine
type State int

const (
	StatePaused State = iota
	StatePlaying
	// StateEnded behaves like StatePaused; reached only by forward overrun
	StateEnded
)

func (s State) String() string {
	switch s {
	case StatePaused:
		return "paused"
	case StatePlaying:
		return "playing"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Position is a frame index plus the fractional progress within it
type Position struct {
	Frame   int
	SubTime float64
}

// Cursor returns the position as a single frame-unit value
func (p Position) Cursor() float64 {
	return float64(p.Frame) + p.SubTime
}
