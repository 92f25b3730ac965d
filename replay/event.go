package replay

import "fmt"

// EntityKind tags the category of a referenced entity
type EntityKind int

const (
	EntityUnknown EntityKind = iota
	EntityPlanet
	EntityShip
)

func (k EntityKind) String() string {
	switch k {
	case EntityPlanet:
		return "planet"
	case EntityShip:
		return "ship"
	default:
		return "unknown"
	}
}

// EntityRef identifies a planet or an owner's ship
// Owner is only meaningful for ships
type EntityRef struct {
	Kind  EntityKind
	Owner PlayerID
	ID    int
}

// PlanetRef returns a reference to planet id
func PlanetRef(id PlanetID) EntityRef {
	return EntityRef{Kind: EntityPlanet, ID: int(id)}
}

// ShipRef returns a reference to an owner's ship
func ShipRef(owner PlayerID, id ShipID) EntityRef {
	return EntityRef{Kind: EntityShip, Owner: owner, ID: int(id)}
}

func (r EntityRef) String() string {
	switch r.Kind {
	case EntityPlanet:
		return fmt.Sprintf("planet %d", r.ID)
	case EntityShip:
		return fmt.Sprintf("ship %d (player %d)", r.ID, r.Owner)
	default:
		return fmt.Sprintf("unknown %d", r.ID)
	}
}

// Event is a timestamped occurrence within a frame
// The variant set is closed: Destroyed, Attack, Spawned, Unrecognized
type Event interface {
	// EventTime is the fractional offset within the frame, 0.0-1.0
	EventTime() float64
	isEvent()
}

// Destroyed records an entity dying at Time
type Destroyed struct {
	Entity EntityRef
	X, Y   float64
	Radius float64
	Time   float64
}

// Attack records a ship firing at X,Y
type Attack struct {
	Owner PlayerID
	Ship  ShipID
	X, Y  float64
	Time  float64
}

// Spawned records a ship produced by the planet at PlanetX,PlanetY
type Spawned struct {
	Owner            PlayerID
	Ship             ShipID
	X, Y             float64
	PlanetX, PlanetY float64
	Time             float64
}

// Unrecognized preserves an event whose kind the decoder does not know
type Unrecognized struct {
	Kind string
	Time float64
}

func (e Destroyed) EventTime() float64    { return e.Time }
func (e Attack) EventTime() float64       { return e.Time }
func (e Spawned) EventTime() float64      { return e.Time }
func (e Unrecognized) EventTime() float64 { return e.Time }

func (Destroyed) isEvent()    {}
func (Attack) isEvent()       {}
func (Spawned) isEvent()      {}
func (Unrecognized) isEvent() {}
