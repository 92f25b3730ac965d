// Package stats reduces a frame to per-owner entity counts
package stats

import "github.com/lixenwraith/haliteviz/replay"

// Stats are the per-owner counts of one frame
type Stats struct {
	PlanetsByOwner map[replay.PlayerID]int
	Unowned        int
	ShipsByOwner   map[replay.PlayerID]int
	TotalShips     int
}

// Aggregate counts planets and ships per owner; pure, nil frame yields zero stats
func Aggregate(f *replay.Frame) Stats {
	s := Stats{
		PlanetsByOwner: make(map[replay.PlayerID]int),
		ShipsByOwner:   make(map[replay.PlayerID]int),
	}
	if f == nil {
		return s
	}

	for _, p := range f.Planets {
		if p.Owner.Valid {
			s.PlanetsByOwner[p.Owner.ID]++
		} else {
			s.Unowned++
		}
	}

	for owner, fleet := range f.Ships {
		if len(fleet) == 0 {
			continue
		}
		s.ShipsByOwner[owner] += len(fleet)
		s.TotalShips += len(fleet)
	}

	return s
}

// Planets returns the owner's planet count, 0 when absent
func (s Stats) Planets(p replay.PlayerID) int {
	return s.PlanetsByOwner[p]
}

// Ships returns the owner's ship count, 0 when absent
func (s Stats) Ships(p replay.PlayerID) int {
	return s.ShipsByOwner[p]
}

// ShipShare is the owner's fraction of all ships
func (s Stats) ShipShare(p replay.PlayerID) float64 {
	if s.TotalShips == 0 {
		return 0
	}
	return float64(s.ShipsByOwner[p]) / float64(s.TotalShips)
}

// PlanetShare is the owner's fraction of totalPlanets
func (s Stats) PlanetShare(p replay.PlayerID, totalPlanets int) float64 {
	if totalPlanets == 0 {
		return 0
	}
	return float64(s.PlanetsByOwner[p]) / float64(totalPlanets)
}

// UnownedShare is the unowned fraction of totalPlanets
func (s Stats) UnownedShare(totalPlanets int) float64 {
	if totalPlanets == 0 {
		return 0
	}
	return float64(s.Unowned) / float64(totalPlanets)
}
