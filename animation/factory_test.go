package animation

import (
	"testing"

	"github.com/lixenwraith/haliteviz/parameter"
	"github.com/lixenwraith/haliteviz/replay"
)

type cueLog struct {
	cues []Cue
}

func (c *cueLog) PlayCue(cue Cue) { c.cues = append(c.cues, cue) }

func TestDelay(t *testing.T) {
	tests := []struct {
		name      string
		time      float64
		step      float64
		speed     float64
		wantTicks float64
	}{
		{"zero time", 0, 0.1, 0.5, 0},
		{"forty percent", 0.4, 0.1, 0.5, 8},
		{"full frame", 1, 0.1, 0.5, 20},
		{"double speed", 0.5, 0.1, 1, 5},
		{"invalid speed", 0.5, 0.1, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Delay(tt.time, tt.step, tt.speed)
			if diff := got - tt.wantTicks; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("Expected %v, got %v", tt.wantTicks, got)
			}
		})
	}
}

func testReplay() *replay.Replay {
	return replay.NewBuilder(100, 100, 2).
		WeaponRadius(4).
		Planet(10, 20, 3, 1000).
		Frame(nil).
		Build()
}

func TestFactory_FromEvents(t *testing.T) {
	cues := &cueLog{}
	f := NewFactory(testReplay(), cues)

	events := []replay.Event{
		replay.Attack{Owner: 1, Ship: 3, X: 5, Y: 6, Time: 0},
		replay.Destroyed{Entity: replay.PlanetRef(0), Time: 0.5},
		replay.Destroyed{Entity: replay.ShipRef(1, 4), X: 7, Y: 8, Time: 0.25},
		replay.Spawned{Owner: 0, Ship: 9, X: 11, Y: 21, PlanetX: 10, PlanetY: 20, Time: 0},
		replay.Unrecognized{Kind: "contention", Time: 0.1},
		replay.Destroyed{Entity: replay.EntityRef{Kind: replay.EntityUnknown, ID: 2}},
	}

	items, skipped := f.FromEvents(events, 0.1, 0.5)
	if skipped != 2 {
		t.Errorf("Expected 2 skipped, got %d", skipped)
	}
	if len(items) != 4 {
		t.Fatalf("Expected 4 animations, got %d", len(items))
	}

	flash, ok := items[0].Anim.(*AttackFlash)
	if !ok {
		t.Fatalf("Expected AttackFlash, got %T", items[0].Anim)
	}
	if items[0].Delay != 0 || items[0].Duration != parameter.AttackFlashTicks {
		t.Errorf("Expected delay 0 duration 24, got %v/%v", items[0].Delay, items[0].Duration)
	}
	if v := flash.Visual(); v.Radius != 4 || v.Owner != replay.OwnedBy(1) {
		t.Errorf("Expected radius 4 owner 1, got %+v", v)
	}

	planet, ok := items[1].Anim.(*Explosion)
	if !ok {
		t.Fatalf("Expected Explosion, got %T", items[1].Anim)
	}
	if d := items[1].Delay - 10; d > 1e-9 || d < -1e-9 {
		t.Errorf("Expected delay 10, got %v", items[1].Delay)
	}
	if v := planet.Visual(); v.Kind != KindPlanetExplosion || v.X != 10 || v.Y != 20 {
		t.Errorf("Expected planet explosion at base position, got %+v", v)
	}

	if items[2].Duration != parameter.ShipExplosionTicks {
		t.Errorf("Expected ship explosion duration, got %v", items[2].Duration)
	}

	beam := items[3].Anim.(*SpawnBeam).Visual()
	if beam.X != 10 || beam.Y != 20 || beam.ToX != 11 || beam.ToY != 21 {
		t.Errorf("Expected beam planet->ship, got %+v", beam)
	}

	if len(cues.cues) != 0 {
		t.Errorf("Expected no cues before start, got %v", cues.cues)
	}
	items[0].Anim.Start()
	items[1].Anim.Start()
	if len(cues.cues) != 2 || cues.cues[0] != CueAttack || cues.cues[1] != CuePlanetExplosion {
		t.Errorf("Expected attack then planet cues, got %v", cues.cues)
	}
}

func TestFactory_DefaultWeaponRadius(t *testing.T) {
	r := replay.NewBuilder(10, 10, 1).Frame(nil).Build()
	f := NewFactory(r, nil)
	items, _ := f.FromEvents([]replay.Event{replay.Attack{Owner: 0}}, 0.1, 0.5)
	if v := items[0].Anim.(*AttackFlash).Visual(); v.Radius != parameter.DefaultWeaponRadius {
		t.Errorf("Expected default radius, got %v", v.Radius)
	}
}

func TestAttackFlash_Fade(t *testing.T) {
	a := NewAttackFlash(0, 0, 0, 1, nil)
	if v := a.Visual(); v.Alpha != parameter.FadeAlpha {
		t.Errorf("Expected initial alpha 0.5, got %v", v.Alpha)
	}
	a.Tick(12)
	if v := a.Visual(); v.Alpha != 0.25 {
		t.Errorf("Expected alpha 0.25 at half, got %v", v.Alpha)
	}
	a.Finish()
	if v := a.Visual(); v.Alpha != 0 || v.Progress != 1 {
		t.Errorf("Expected finished flash invisible, got %+v", v)
	}
}
