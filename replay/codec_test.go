package replay

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

const sampleJSON = `{
 "frames": [{
  "planets": {"0": {"id": 0, "owner": null, "health": 1000}, "1": {"id": 1, "owner": 1, "health": 400}},
  "ships": {"1": {"3": {"id": 3, "owner": 1, "x": 4.5, "y": 6, "health": 255, "vel_x": 0, "vel_y": 0,
                        "docking": {"status": "undocked"}, "cooldown": 0}}},
  "events": [
   {"event": "attack", "entity": {"type": "ship", "id": 3, "owner": 1}, "x": 4.5, "y": 6, "time": 0.25},
   {"event": "teleported", "time": 0.5},
   {"event": "destroyed", "entity": {"type": "planet", "id": 0}, "x": 10, "y": 10, "radius": 3, "time": 0.75}
  ]
 }],
 "planets": [
  {"id": 0, "x": 10, "y": 10, "r": 3, "health": 1000, "docking_spots": 2, "production": 6},
  {"id": 1, "x": 30, "y": 20, "r": 4, "health": 1200, "docking_spots": 3, "production": 6}
 ],
 "num_players": 2,
 "width": 40,
 "height": 30,
 "constants": {"WEAPON_RADIUS": 5, "INFINITE_RESOURCES": false},
 "poi": [{"type": "orbit", "x": 20, "y": 15, "x_axis": 8, "y_axis": 4}]
}`

func TestDecodeJSON(t *testing.T) {
	r, err := Decode(strings.NewReader(sampleJSON))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if r.FrameCount() != 1 {
		t.Fatalf("Expected 1 frame, got %d", r.FrameCount())
	}
	if r.Width != 40 || r.Height != 30 || r.NumPlayers != 2 {
		t.Errorf("Unexpected board header: %dx%d, %d players", r.Width, r.Height, r.NumPlayers)
	}
	if r.Constants.WeaponRadius != 5 {
		t.Errorf("Expected weapon radius 5, got %v", r.Constants.WeaponRadius)
	}
	if _, ok := r.Constants.Get("INFINITE_RESOURCES"); ok {
		t.Error("Expected non-numeric constant to be dropped")
	}
	if len(r.POI) != 1 || r.POI[0].XAxis != 8 {
		t.Errorf("Unexpected POI: %+v", r.POI)
	}

	f := r.Frame(0)
	p0, _ := f.Planet(0)
	if p0.Owner.Valid {
		t.Errorf("Expected planet 0 unowned, got %v", p0.Owner)
	}
	p1, _ := f.Planet(1)
	if p1.Owner != OwnedBy(1) {
		t.Errorf("Expected planet 1 owned by player 1, got %v", p1.Owner)
	}

	ship, ok := f.Ship(1, 3)
	if !ok {
		t.Fatal("Expected ship 3 of player 1")
	}
	if ship.X != 4.5 || ship.Health != 255 || ship.Docking.Status != "undocked" {
		t.Errorf("Unexpected ship state: %+v", ship)
	}

	if len(f.Events) != 3 {
		t.Fatalf("Expected 3 events, got %d", len(f.Events))
	}
	if a, ok := f.Events[0].(Attack); !ok || a.Owner != 1 || a.Time != 0.25 {
		t.Errorf("Expected attack by player 1 at 0.25, got %#v", f.Events[0])
	}
	if u, ok := f.Events[1].(Unrecognized); !ok || u.Kind != "teleported" {
		t.Errorf("Expected unrecognized teleported event, got %#v", f.Events[1])
	}
	d, ok := f.Events[2].(Destroyed)
	if !ok || d.Entity != PlanetRef(0) || d.Radius != 3 {
		t.Errorf("Expected planet 0 destroyed, got %#v", f.Events[2])
	}
}

func TestEncodeDecode_Formats(t *testing.T) {
	src := NewBuilder(40, 30, 2).
		WeaponRadius(5).
		Planet(10, 10, 3, 1000).
		Orbit(20, 15, 8, 4).
		Frame(func(f *FrameBuilder) {
			f.Planet(0, OwnedBy(0), 900).
				Ship(0, 7, 12, 11, 200).
				Event(Spawned{Owner: 0, Ship: 7, X: 12, Y: 11, PlanetX: 10, PlanetY: 10, Time: 0.5})
		}).
		Frame(func(f *FrameBuilder) {
			f.Planet(0, OwnedBy(0), 900).
				Event(Destroyed{Entity: ShipRef(0, 7), X: 12, Y: 11, Time: 0.4})
		}).
		Build()

	tests := []struct {
		name     string
		format   Format
		compress bool
	}{
		{"msgpack", FormatMsgpack, false},
		{"json", FormatJSON, false},
		{"msgpack+zlib", FormatMsgpack, true},
		{"json+zlib", FormatJSON, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			var err error
			if tt.compress {
				err = EncodeCompressed(&buf, src, tt.format)
			} else {
				err = Encode(&buf, src, tt.format)
			}
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}

			got, err := Decode(&buf)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}

			if got.FrameCount() != 2 {
				t.Fatalf("Expected 2 frames, got %d", got.FrameCount())
			}
			if got.Constants.WeaponRadius != 5 {
				t.Errorf("Expected weapon radius 5, got %v", got.Constants.WeaponRadius)
			}
			if s, ok := got.Frame(0).Ship(0, 7); !ok || s.X != 12 || s.Health != 200 {
				t.Errorf("Unexpected ship after decode: %+v (present=%v)", s, ok)
			}
			sp, ok := got.Frame(0).Events[0].(Spawned)
			if !ok || sp.PlanetX != 10 || sp.Time != 0.5 {
				t.Errorf("Unexpected spawn event: %#v", got.Frame(0).Events[0])
			}
			d, ok := got.Frame(1).Events[0].(Destroyed)
			if !ok || d.Entity != ShipRef(0, 7) || d.Time != 0.4 {
				t.Errorf("Unexpected destroyed event: %#v", got.Frame(1).Events[0])
			}
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"empty input", "", ErrMalformed},
		{"no frames", `{"frames": [], "planets": [], "width": 10, "height": 10}`, ErrEmptyReplay},
		{"bad json", `{"frames": [`, ErrMalformed},
		{"bad owner key", `{"frames": [{"planets": {}, "ships": {"red": {}}}]}`, ErrMalformed},
		{"planet id mismatch", `{"frames": [{"planets": {}, "ships": {}}], "planets": [{"id": 3}]}`, ErrMalformed},
		{"unknown planet", `{"frames": [{"planets": {"2": {"id": 2, "health": 1}}, "ships": {}}], "planets": []}`, ErrMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input))
			if !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestFrameQueries(t *testing.T) {
	r := NewBuilder(10, 10, 3).
		Planet(1, 1, 1, 10).
		Planet(5, 5, 1, 10).
		Frame(func(f *FrameBuilder) {
			f.Planet(1, Owner{}, 10).
				Planet(0, OwnedBy(2), 10).
				Ship(2, 9, 0, 0, 1).
				Ship(2, 4, 0, 0, 1).
				Ship(0, 1, 0, 0, 1)
		}).
		Build()

	f := r.Frame(0)
	if got := f.Players(); len(got) != 2 || got[0] != 0 || got[1] != 2 {
		t.Errorf("Expected players [0 2], got %v", got)
	}
	if got := f.ShipIDs(2); len(got) != 2 || got[0] != 4 || got[1] != 9 {
		t.Errorf("Expected ships [4 9], got %v", got)
	}
	if got := f.PlanetIDs(); len(got) != 2 || got[0] != 0 {
		t.Errorf("Expected planets [0 1], got %v", got)
	}
	if !f.Contains(ShipRef(2, 9)) || f.Contains(ShipRef(0, 9)) {
		t.Error("Ship containment must respect owner")
	}
	if f.Contains(EntityRef{Kind: EntityUnknown, ID: 1}) {
		t.Error("Unknown kinds are never contained")
	}
	if r.Frame(-1) != nil || r.Frame(1) != nil {
		t.Error("Expected nil for out-of-range frames")
	}
	if r.PlayerName(1) != "Player 1" {
		t.Errorf("Expected fallback player name, got %q", r.PlayerName(1))
	}
}
