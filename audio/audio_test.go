package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/haliteviz/animation"
	"github.com/lixenwraith/haliteviz/clock"
	"github.com/lixenwraith/haliteviz/parameter"
)

// drain streams s to exhaustion and returns the sample count and peak amplitude
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for j := 0; j < n; j++ {
			peak = max(peak, buf[j][0], -buf[j][0])
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("Streamer did not drain")
	return 0, 0
}

func TestTone_Length(t *testing.T) {
	rate := beep.SampleRate(8000)
	waves := map[string]waveFunc{"sine": sine, "saw": saw, "noise": noise}
	for name, wave := range waves {
		n, peak := drain(t, newTone(wave, 440, 220, 100*time.Millisecond, rate))
		if n != 800 {
			t.Errorf("Wave %s: expected 800 samples, got %d", name, n)
		}
		if peak > 1.0 {
			t.Errorf("Wave %s: sample out of range: %f", name, peak)
		}
	}
}

func TestShape_RampEdges(t *testing.T) {
	rate := beep.SampleRate(1000)
	d := 100 * time.Millisecond
	flat := newTone(func(float64) float64 { return 1 }, 0, 0, d, rate)
	s := shape(flat, d, rate, ramp(d, 10*time.Millisecond, 10*time.Millisecond, rate))

	buf := make([][2]float64, 128)
	n, _ := s.Stream(buf)
	if n != 100 {
		t.Fatalf("Expected 100 samples, got %d", n)
	}
	if buf[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %f", buf[0][0])
	}
	if buf[50][0] != 1 {
		t.Errorf("Expected full sustain, got %f", buf[50][0])
	}
	if buf[99][0] >= buf[95][0] {
		t.Errorf("Expected release to fall, got %f then %f", buf[95][0], buf[99][0])
	}
	if n, ok := s.Stream(buf); n != 0 || ok {
		t.Errorf("Expected drained stream, got %d %v", n, ok)
	}
}

func TestShape_Falloff(t *testing.T) {
	rate := beep.SampleRate(1000)
	d := time.Second
	flat := newTone(func(float64) float64 { return 1 }, 0, 0, d, rate)
	n, _ := drain(t, shape(flat, 500*time.Millisecond, rate, falloff(6, rate)))
	if n != 500 {
		t.Errorf("Expected shape to cut at 500 samples, got %d", n)
	}

	g := falloff(6, rate)
	if g(0) != 1 || g(1000) >= g(500) {
		t.Errorf("Expected decaying gain, got %f %f %f", g(0), g(500), g(1000))
	}
}

func TestSynth_AllCues(t *testing.T) {
	rate := beep.SampleRate(8000)
	cues := []animation.Cue{
		animation.CuePlanetExplosion,
		animation.CueShipExplosion,
		animation.CueAttack,
		animation.CueSpawn,
	}
	for _, c := range cues {
		s := Synth(c, rate, 1)
		if s == nil {
			t.Fatalf("Cue %d: expected streamer", c)
		}
		n, _ := drain(t, s)
		if n == 0 {
			t.Errorf("Cue %d: expected samples", c)
		}
	}

	if n, _ := drain(t, Synth(animation.CueSpawn, rate, 1)); n != 2*rate.N(parameter.SpawnChimeNoteDuration) {
		t.Errorf("Expected two chime notes, got %d samples", n)
	}
	if Synth(animation.Cue(99), rate, 1) != nil {
		t.Error("Expected nil for unknown cue")
	}
}

func TestSynth_Silent(t *testing.T) {
	_, peak := drain(t, Synth(animation.CueAttack, beep.SampleRate(8000), 0))
	if peak != 0 {
		t.Errorf("Expected silence at volume 0, got peak %f", peak)
	}
}

func TestCuePlayer_Uninitialized(t *testing.T) {
	p := NewCuePlayer(1)
	p.PlayCue(animation.CueAttack)
	if played, _ := p.Counts(); played != 0 {
		t.Errorf("Expected no cues without speaker, got %d", played)
	}
	p.Close()
}

func TestCuePlayer_RateLimit(t *testing.T) {
	mock := clock.NewMockTimeProvider(time.Unix(0, 0))
	p := NewCuePlayer(1)
	p.time = mock
	var got []beep.Streamer
	p.out = func(s beep.Streamer) { got = append(got, s) }

	p.PlayCue(animation.CueShipExplosion)
	p.PlayCue(animation.CueShipExplosion)
	p.PlayCue(animation.CueAttack)

	mock.Advance(parameter.CueMinGap)
	p.PlayCue(animation.CueShipExplosion)

	played, suppressed := p.Counts()
	if played != 3 || suppressed != 1 {
		t.Errorf("Expected 3 played 1 suppressed, got %d/%d", played, suppressed)
	}
	if len(got) != 3 {
		t.Errorf("Expected 3 streamers mixed, got %d", len(got))
	}
}

func TestCuePlayer_Mute(t *testing.T) {
	p := NewCuePlayer(1)
	p.time = clock.NewMockTimeProvider(time.Unix(0, 0))
	p.out = func(beep.Streamer) {}

	if !p.ToggleMute() || !p.Muted() {
		t.Fatal("Expected muted after toggle")
	}
	p.PlayCue(animation.CueSpawn)
	if played, _ := p.Counts(); played != 0 {
		t.Errorf("Expected muted player to drop cues, got %d", played)
	}

	p.ToggleMute()
	p.PlayCue(animation.CueSpawn)
	if played, _ := p.Counts(); played != 1 {
		t.Errorf("Expected cue after unmute, got %d", played)
	}
}
