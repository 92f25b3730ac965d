package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/haliteviz/playback"
	"github.com/lixenwraith/haliteviz/replay"
)

func TestTranslate(t *testing.T) {
	kt := DefaultKeyTable()
	tests := []struct {
		name string
		ev   tcell.Event
		want IntentType
	}{
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), IntentTogglePlay},
		{"a", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), IntentScrubBack},
		{"d", tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), IntentScrubForward},
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), IntentScrubBack},
		{"right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), IntentScrubForward},
		{"plus", tcell.NewEventKey(tcell.KeyRune, '+', tcell.ModNone), IntentSpeedUp},
		{"minus", tcell.NewEventKey(tcell.KeyRune, '-', tcell.ModNone), IntentSlowDown},
		{"home", tcell.NewEventKey(tcell.KeyHome, 0, tcell.ModNone), IntentFirstFrame},
		{"end", tcell.NewEventKey(tcell.KeyEnd, 0, tcell.ModNone), IntentLastFrame},
		{"esc", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), IntentDeselect},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), IntentQuit},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), IntentQuit},
		{"unbound", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), IntentNone},
		{"resize", tcell.NewEventResize(80, 24), IntentResize},
		{"mouse move", tcell.NewEventMouse(3, 4, tcell.ButtonNone, tcell.ModNone), IntentNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := kt.Translate(tt.ev).Type; got != tt.want {
				t.Errorf("Expected intent %d, got %d", tt.want, got)
			}
		})
	}

	in := kt.Translate(tcell.NewEventMouse(7, 9, tcell.Button1, tcell.ModNone))
	if in.Type != IntentSelect || in.Col != 7 || in.Row != 9 {
		t.Errorf("Expected select at (7, 9), got %+v", in)
	}
}

func testController(t *testing.T) *playback.Controller {
	t.Helper()
	r := replay.NewBuilder(10, 10, 1).Frames(5, nil).Build()
	c, err := playback.New(r)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return c
}

func TestDispatcher_Playback(t *testing.T) {
	c := testController(t)
	muted := 0
	d := NewDispatcher(c, nil, func() { muted++ })

	if d.Apply(Intent{Type: IntentTogglePlay}); c.State() != playback.StatePlaying {
		t.Errorf("Expected playing, got %s", c.State())
	}

	d.Apply(Intent{Type: IntentScrubForward})
	if c.State() != playback.StatePaused {
		t.Errorf("Expected scrub to pause, got %s", c.State())
	}
	if got := c.Position(); got != (playback.Position{Frame: 0, SubTime: 0.5}) {
		t.Errorf("Expected (0, 0.5), got %+v", got)
	}

	d.Apply(Intent{Type: IntentSpeedUp})
	if c.PlaySpeed() != 1 {
		t.Errorf("Expected speed 1, got %v", c.PlaySpeed())
	}
	d.Apply(Intent{Type: IntentSlowDown})
	d.Apply(Intent{Type: IntentSlowDown})
	if c.PlaySpeed() != 0.25 {
		t.Errorf("Expected speed 0.25, got %v", c.PlaySpeed())
	}

	d.Apply(Intent{Type: IntentLastFrame})
	if c.Position().Frame != 4 {
		t.Errorf("Expected last frame, got %+v", c.Position())
	}
	d.Apply(Intent{Type: IntentFirstFrame})
	if c.Position() != (playback.Position{}) {
		t.Errorf("Expected first frame, got %+v", c.Position())
	}

	d.Apply(Intent{Type: IntentToggleMute})
	if muted != 1 {
		t.Errorf("Expected mute callback, got %d", muted)
	}

	if !d.Apply(Intent{Type: IntentQuit}) {
		t.Error("Expected quit")
	}
}

func TestDispatcher_RestartAtEnd(t *testing.T) {
	c := testController(t)
	d := NewDispatcher(c, nil, nil)

	c.Scrub(4, 0.5)
	c.AdvanceTime(0.75)
	if c.State() != playback.StateEnded {
		t.Fatalf("Expected ended, got %s", c.State())
	}

	d.Apply(Intent{Type: IntentTogglePlay})
	if c.State() != playback.StatePlaying || c.Position() != (playback.Position{}) {
		t.Errorf("Expected restart from origin, got %s at %+v", c.State(), c.Position())
	}
}

func TestDispatcher_Select(t *testing.T) {
	c := testController(t)
	ref := replay.PlanetRef(3)
	d := NewDispatcher(c, func(col, row int) (replay.EntityRef, bool) {
		return ref, col == 1 && row == 1
	}, nil)

	d.Apply(Intent{Type: IntentSelect, Col: 1, Row: 1})
	if got, ok := c.Selected(); !ok || got != ref {
		t.Errorf("Expected planet 3 selected, got %v %v", got, ok)
	}

	d.Apply(Intent{Type: IntentSelect, Col: 5, Row: 5})
	if _, ok := c.Selected(); ok {
		t.Error("Expected click on empty space to deselect")
	}

	d.Apply(Intent{Type: IntentSelect, Col: 1, Row: 1})
	d.Apply(Intent{Type: IntentDeselect})
	if _, ok := c.Selected(); ok {
		t.Error("Expected esc to deselect")
	}
}
