package replay

import (
	"fmt"
	"strconv"
)

// Recorded field layout, shared by the JSON and msgpack codecs through json tags

type wireReplay struct {
	Frames      []wireFrame      `json:"frames"`
	Planets     []wirePlanetBase `json:"planets"`
	NumPlayers  int              `json:"num_players"`
	PlayerNames []string         `json:"player_names,omitempty"`
	Width       int              `json:"width"`
	Height      int              `json:"height"`
	Constants   map[string]any   `json:"constants,omitempty"`
	POI         []wirePOI        `json:"poi,omitempty"`
	Seed        int64            `json:"seed,omitempty"`
}

type wirePlanetBase struct {
	ID           int     `json:"id"`
	X            float64 `json:"x"`
	Y            float64 `json:"y"`
	R            float64 `json:"r"`
	Health       int     `json:"health"`
	DockingSpots int     `json:"docking_spots"`
	Production   int     `json:"production"`
}

type wireFrame struct {
	Planets map[string]wirePlanet          `json:"planets"`
	Ships   map[string]map[string]wireShip `json:"ships"`
	Events  []wireEvent                    `json:"events,omitempty"`
}

type wirePlanet struct {
	ID          int   `json:"id"`
	Owner       *int  `json:"owner"`
	Health      int   `json:"health"`
	DockedShips []int `json:"docked_ships,omitempty"`
}

type wireDocking struct {
	Status    string `json:"status"`
	PlanetID  int    `json:"planet_id,omitempty"`
	TurnsLeft int    `json:"turns_left,omitempty"`
}

type wireShip struct {
	ID       int         `json:"id"`
	Owner    int         `json:"owner"`
	X        float64     `json:"x"`
	Y        float64     `json:"y"`
	Health   int         `json:"health"`
	VelX     float64     `json:"vel_x"`
	VelY     float64     `json:"vel_y"`
	Docking  wireDocking `json:"docking"`
	Cooldown int         `json:"cooldown"`
}

type wireEntity struct {
	Type  string `json:"type"`
	ID    int    `json:"id"`
	Owner *int   `json:"owner,omitempty"`
}

type wireEvent struct {
	Event   string     `json:"event"`
	Entity  wireEntity `json:"entity"`
	X       float64    `json:"x"`
	Y       float64    `json:"y"`
	PlanetX float64    `json:"planet_x,omitempty"`
	PlanetY float64    `json:"planet_y,omitempty"`
	Radius  float64    `json:"radius,omitempty"`
	Time    float64    `json:"time"`
}

type wirePOI struct {
	Type  string  `json:"type"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	XAxis float64 `json:"x_axis"`
	YAxis float64 `json:"y_axis"`
}

const weaponRadiusKey = "WEAPON_RADIUS"

func (w *wireReplay) toReplay() (*Replay, error) {
	r := &Replay{
		Frames:      make([]Frame, len(w.Frames)),
		Planets:     make([]PlanetBase, len(w.Planets)),
		NumPlayers:  w.NumPlayers,
		PlayerNames: w.PlayerNames,
		Width:       w.Width,
		Height:      w.Height,
		Constants:   Constants{Values: make(map[string]float64, len(w.Constants))},
		POI:         make([]PointOfInterest, len(w.POI)),
		Seed:        w.Seed,
	}

	for name, raw := range w.Constants {
		if v, ok := toFloat(raw); ok {
			r.Constants.Values[name] = v
		}
	}
	r.Constants.WeaponRadius = r.Constants.Values[weaponRadiusKey]

	for i, p := range w.Planets {
		r.Planets[i] = PlanetBase{
			ID:           PlanetID(p.ID),
			X:            p.X,
			Y:            p.Y,
			Radius:       p.R,
			Health:       p.Health,
			DockingSpots: p.DockingSpots,
			Production:   p.Production,
		}
	}

	for i, p := range w.POI {
		r.POI[i] = PointOfInterest{Type: p.Type, X: p.X, Y: p.Y, XAxis: p.XAxis, YAxis: p.YAxis}
	}

	for i := range w.Frames {
		f, err := w.Frames[i].toFrame(i)
		if err != nil {
			return nil, err
		}
		r.Frames[i] = f
	}

	return r, nil
}

func (w *wireFrame) toFrame(index int) (Frame, error) {
	f := Frame{
		Index:   index,
		Planets: make(map[PlanetID]PlanetState, len(w.Planets)),
		Ships:   make(map[PlayerID]map[ShipID]ShipState, len(w.Ships)),
		Events:  make([]Event, 0, len(w.Events)),
	}

	for _, p := range w.Planets {
		state := PlanetState{ID: PlanetID(p.ID), Health: p.Health}
		if p.Owner != nil {
			state.Owner = OwnedBy(PlayerID(*p.Owner))
		}
		for _, s := range p.DockedShips {
			state.DockedShips = append(state.DockedShips, ShipID(s))
		}
		f.Planets[state.ID] = state
	}

	for key, fleet := range w.Ships {
		owner, err := strconv.Atoi(key)
		if err != nil {
			return Frame{}, fmt.Errorf("%w: frame %d has ship owner key %q", ErrMalformed, index, key)
		}
		ships := make(map[ShipID]ShipState, len(fleet))
		for _, s := range fleet {
			ships[ShipID(s.ID)] = ShipState{
				ID:     ShipID(s.ID),
				Owner:  PlayerID(owner),
				X:      s.X,
				Y:      s.Y,
				Health: s.Health,
				VelX:   s.VelX,
				VelY:   s.VelY,
				Docking: DockingStatus{
					Status:    s.Docking.Status,
					Planet:    PlanetID(s.Docking.PlanetID),
					TurnsLeft: s.Docking.TurnsLeft,
				},
				Cooldown: s.Cooldown,
			}
		}
		f.Ships[PlayerID(owner)] = ships
	}

	for _, e := range w.Events {
		f.Events = append(f.Events, e.toEvent())
	}

	return f, nil
}

func (e wireEvent) toEvent() Event {
	owner := PlayerID(0)
	if e.Entity.Owner != nil {
		owner = PlayerID(*e.Entity.Owner)
	}

	switch e.Event {
	case "destroyed":
		ref := EntityRef{Kind: EntityUnknown, Owner: owner, ID: e.Entity.ID}
		switch e.Entity.Type {
		case "planet":
			ref = PlanetRef(PlanetID(e.Entity.ID))
		case "ship":
			ref = ShipRef(owner, ShipID(e.Entity.ID))
		}
		return Destroyed{Entity: ref, X: e.X, Y: e.Y, Radius: e.Radius, Time: e.Time}
	case "attack":
		return Attack{Owner: owner, Ship: ShipID(e.Entity.ID), X: e.X, Y: e.Y, Time: e.Time}
	case "spawned":
		return Spawned{
			Owner:   owner,
			Ship:    ShipID(e.Entity.ID),
			X:       e.X,
			Y:       e.Y,
			PlanetX: e.PlanetX,
			PlanetY: e.PlanetY,
			Time:    e.Time,
		}
	default:
		return Unrecognized{Kind: e.Event, Time: e.Time}
	}
}

func fromReplay(r *Replay) *wireReplay {
	w := &wireReplay{
		Frames:      make([]wireFrame, len(r.Frames)),
		Planets:     make([]wirePlanetBase, len(r.Planets)),
		NumPlayers:  r.NumPlayers,
		PlayerNames: r.PlayerNames,
		Width:       r.Width,
		Height:      r.Height,
		Constants:   make(map[string]any, len(r.Constants.Values)+1),
		POI:         make([]wirePOI, len(r.POI)),
		Seed:        r.Seed,
	}

	for name, v := range r.Constants.Values {
		w.Constants[name] = v
	}
	if r.Constants.WeaponRadius != 0 {
		w.Constants[weaponRadiusKey] = r.Constants.WeaponRadius
	}

	for i, p := range r.Planets {
		w.Planets[i] = wirePlanetBase{
			ID:           int(p.ID),
			X:            p.X,
			Y:            p.Y,
			R:            p.Radius,
			Health:       p.Health,
			DockingSpots: p.DockingSpots,
			Production:   p.Production,
		}
	}

	for i, p := range r.POI {
		w.POI[i] = wirePOI{Type: p.Type, X: p.X, Y: p.Y, XAxis: p.XAxis, YAxis: p.YAxis}
	}

	for i := range r.Frames {
		w.Frames[i] = fromFrame(&r.Frames[i])
	}

	return w
}

func fromFrame(f *Frame) wireFrame {
	w := wireFrame{
		Planets: make(map[string]wirePlanet, len(f.Planets)),
		Ships:   make(map[string]map[string]wireShip, len(f.Ships)),
		Events:  make([]wireEvent, 0, len(f.Events)),
	}

	for id, p := range f.Planets {
		wp := wirePlanet{ID: int(id), Health: p.Health}
		if p.Owner.Valid {
			o := int(p.Owner.ID)
			wp.Owner = &o
		}
		for _, s := range p.DockedShips {
			wp.DockedShips = append(wp.DockedShips, int(s))
		}
		w.Planets[strconv.Itoa(int(id))] = wp
	}

	for owner, fleet := range f.Ships {
		ships := make(map[string]wireShip, len(fleet))
		for id, s := range fleet {
			ships[strconv.Itoa(int(id))] = wireShip{
				ID:     int(id),
				Owner:  int(owner),
				X:      s.X,
				Y:      s.Y,
				Health: s.Health,
				VelX:   s.VelX,
				VelY:   s.VelY,
				Docking: wireDocking{
					Status:    s.Docking.Status,
					PlanetID:  int(s.Docking.Planet),
					TurnsLeft: s.Docking.TurnsLeft,
				},
				Cooldown: s.Cooldown,
			}
		}
		w.Ships[strconv.Itoa(int(owner))] = ships
	}

	for _, e := range f.Events {
		w.Events = append(w.Events, fromEvent(e))
	}

	return w
}

func fromEvent(e Event) wireEvent {
	switch ev := e.(type) {
	case Destroyed:
		typ := ev.Entity.Kind.String()
		w := wireEvent{
			Event:  "destroyed",
			Entity: wireEntity{Type: typ, ID: ev.Entity.ID},
			X:      ev.X,
			Y:      ev.Y,
			Radius: ev.Radius,
			Time:   ev.Time,
		}
		if ev.Entity.Kind == EntityShip {
			o := int(ev.Entity.Owner)
			w.Entity.Owner = &o
		}
		return w
	case Attack:
		o := int(ev.Owner)
		return wireEvent{
			Event:  "attack",
			Entity: wireEntity{Type: "ship", ID: int(ev.Ship), Owner: &o},
			X:      ev.X,
			Y:      ev.Y,
			Time:   ev.Time,
		}
	case Spawned:
		o := int(ev.Owner)
		return wireEvent{
			Event:   "spawned",
			Entity:  wireEntity{Type: "ship", ID: int(ev.Ship), Owner: &o},
			X:       ev.X,
			Y:       ev.Y,
			PlanetX: ev.PlanetX,
			PlanetY: ev.PlanetY,
			Time:    ev.Time,
		}
	case Unrecognized:
		return wireEvent{Event: ev.Kind, Time: ev.Time}
	default:
		return wireEvent{}
	}
}

// toFloat widens the numeric kinds produced by both decoders
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
