// Package lifecycle decides which entities of the current frame are alive at a sub-frame instant
package lifecycle

import (
	"github.com/lixenwraith/haliteviz/parameter"
	"github.com/lixenwraith/haliteviz/replay"
)

// DeathFlags map entity ids to the sub-frame instant at which they disappear
// An entity renders while subTime < instant
type DeathFlags struct {
	Planets map[replay.PlanetID]float64
	Ships   map[replay.PlayerID]map[replay.ShipID]float64
}

func newDeathFlags() DeathFlags {
	return DeathFlags{
		Planets: make(map[replay.PlanetID]float64),
		Ships:   make(map[replay.PlayerID]map[replay.ShipID]float64),
	}
}

func (d DeathFlags) flagShip(owner replay.PlayerID, id replay.ShipID, at float64) {
	fleet, ok := d.Ships[owner]
	if !ok {
		fleet = make(map[replay.ShipID]float64)
		d.Ships[owner] = fleet
	}
	fleet[id] = at
}

// Instant returns the death instant of ref, AliveInstant when unflagged
func (d DeathFlags) Instant(ref replay.EntityRef) float64 {
	switch ref.Kind {
	case replay.EntityPlanet:
		if at, ok := d.Planets[replay.PlanetID(ref.ID)]; ok {
			return at
		}
	case replay.EntityShip:
		if at, ok := d.Ships[ref.Owner][replay.ShipID(ref.ID)]; ok {
			return at
		}
	}
	return parameter.AliveInstant
}

// Flagged reports whether ref dies within the frame
func (d DeathFlags) Flagged(ref replay.EntityRef) bool {
	return d.Instant(ref) != parameter.AliveInstant
}

// Len returns the number of flagged entities
func (d DeathFlags) Len() int {
	n := len(d.Planets)
	for _, fleet := range d.Ships {
		n += len(fleet)
	}
	return n
}
