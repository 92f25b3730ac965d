// Package replay holds the decoded, immutable replay log and the decoders that produce it
package replay

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrEmptyReplay is returned for a replay without frames
	ErrEmptyReplay = errors.New("replay has no frames")

	// ErrMalformed is returned when the replay structure is inconsistent
	ErrMalformed = errors.New("malformed replay")
)

// PlayerID identifies a player (fleet owner)
type PlayerID int

// PlanetID identifies a planet; equals its index in Replay.Planets
type PlanetID int

// ShipID identifies a ship
type ShipID int

// Owner is an optional PlayerID; the zero value is unowned
type Owner struct {
	ID    PlayerID
	Valid bool
}

// OwnedBy returns an owner set to p
func OwnedBy(p PlayerID) Owner {
	return Owner{ID: p, Valid: true}
}

func (o Owner) String() string {
	if !o.Valid {
		return "unowned"
	}
	return fmt.Sprintf("player %d", o.ID)
}

// PlanetBase is static per-planet data
type PlanetBase struct {
	ID           PlanetID
	X, Y         float64
	Radius       float64
	Health       int
	DockingSpots int
	Production   int
}

// PlanetState is a planet's per-frame state
type PlanetState struct {
	ID          PlanetID
	Owner       Owner
	Health      int
	DockedShips []ShipID
}

// DockingStatus describes a ship's docking progress
type DockingStatus struct {
	Status    string
	Planet    PlanetID
	TurnsLeft int
}

// ShipState is a ship's per-frame state
type ShipState struct {
	ID       ShipID
	Owner    PlayerID
	X, Y     float64
	Health   int
	VelX     float64
	VelY     float64
	Docking  DockingStatus
	Cooldown int
}

// PointOfInterest is a decorative board feature
type PointOfInterest struct {
	Type  string
	X, Y  float64
	XAxis float64
	YAxis float64
}

// Constants are the simulation constants recorded with the replay
type Constants struct {
	WeaponRadius float64
	Values       map[string]float64
}

// Get returns a named constant and whether it was recorded
func (c Constants) Get(name string) (float64, bool) {
	v, ok := c.Values[name]
	return v, ok
}

// Frame is one discrete simulation tick
type Frame struct {
	Index   int
	Planets map[PlanetID]PlanetState
	Ships   map[PlayerID]map[ShipID]ShipState
	Events  []Event
}

// Planet returns the planet's state in this frame
func (f *Frame) Planet(id PlanetID) (PlanetState, bool) {
	p, ok := f.Planets[id]
	return p, ok
}

// Ship returns the ship's state in this frame
func (f *Frame) Ship(owner PlayerID, id ShipID) (ShipState, bool) {
	fleet, ok := f.Ships[owner]
	if !ok {
		return ShipState{}, false
	}
	s, ok := fleet[id]
	return s, ok
}

// Players returns the owners with a fleet entry in this frame, ascending
func (f *Frame) Players() []PlayerID {
	players := make([]PlayerID, 0, len(f.Ships))
	for p := range f.Ships {
		players = append(players, p)
	}
	slices.Sort(players)
	return players
}

// ShipIDs returns the owner's ship ids in this frame, ascending
func (f *Frame) ShipIDs(owner PlayerID) []ShipID {
	fleet := f.Ships[owner]
	ids := make([]ShipID, 0, len(fleet))
	for id := range fleet {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// PlanetIDs returns the ids of planets present in this frame, ascending
func (f *Frame) PlanetIDs() []PlanetID {
	ids := make([]PlanetID, 0, len(f.Planets))
	for id := range f.Planets {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Contains reports whether the referenced entity is present in this frame
func (f *Frame) Contains(ref EntityRef) bool {
	switch ref.Kind {
	case EntityPlanet:
		_, ok := f.Planets[PlanetID(ref.ID)]
		return ok
	case EntityShip:
		_, ok := f.Ship(ref.Owner, ShipID(ref.ID))
		return ok
	default:
		return false
	}
}

// Replay is the immutable decoded replay log
type Replay struct {
	Frames      []Frame
	Planets     []PlanetBase
	NumPlayers  int
	PlayerNames []string
	Width       int
	Height      int
	Constants   Constants
	POI         []PointOfInterest
	Seed        int64
}

// FrameCount returns the number of frames
func (r *Replay) FrameCount() int {
	return len(r.Frames)
}

// LastFrame returns the index of the final frame, -1 when empty
func (r *Replay) LastFrame() int {
	return len(r.Frames) - 1
}

// Frame returns frame i, nil when out of range
func (r *Replay) Frame(i int) *Frame {
	if i < 0 || i >= len(r.Frames) {
		return nil
	}
	return &r.Frames[i]
}

// Planet returns the static base of planet id
func (r *Replay) Planet(id PlanetID) (PlanetBase, bool) {
	if id < 0 || int(id) >= len(r.Planets) {
		return PlanetBase{}, false
	}
	return r.Planets[id], true
}

// PlayerName returns the recorded name or a generated fallback
func (r *Replay) PlayerName(p PlayerID) string {
	if int(p) >= 0 && int(p) < len(r.PlayerNames) && r.PlayerNames[p] != "" {
		return r.PlayerNames[p]
	}
	return fmt.Sprintf("Player %d", p)
}

// Validate checks structural invariants the playback engine relies on
func (r *Replay) Validate() error {
	if len(r.Frames) == 0 {
		return ErrEmptyReplay
	}
	for i, p := range r.Planets {
		if int(p.ID) != i {
			return fmt.Errorf("%w: planet at index %d has id %d", ErrMalformed, i, p.ID)
		}
	}
	for i := range r.Frames {
		for id := range r.Frames[i].Planets {
			if _, ok := r.Planet(id); !ok {
				return fmt.Errorf("%w: frame %d references unknown planet %d", ErrMalformed, i, id)
			}
		}
	}
	return nil
}
