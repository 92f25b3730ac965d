package playback

import (
	"cmp"
	"slices"

	"github.com/lixenwraith/haliteviz/parameter"
	"github.com/lixenwraith/haliteviz/replay"
)

// ShipKey identifies a ship across frames
type ShipKey struct {
	Owner replay.PlayerID
	ID    replay.ShipID
}

// Ref returns the entity reference of the ship
func (k ShipKey) Ref() replay.EntityRef {
	return replay.ShipRef(k.Owner, k.ID)
}

// ShipView is the persistent visual handle of one live ship
type ShipView struct {
	Key     ShipKey
	State   replay.ShipState
	X, Y    float64 // interpolated by velocity over the frame
	Created int     // frame index of first sighting
	Updated int     // frame index of the latest update
}

// PlanetView is the pre-allocated visual handle of one planet
type PlanetView struct {
	Base         replay.PlanetBase
	Owner        replay.Owner
	Health       int
	HealthFactor float64
	Intensity    float64
	Visible      bool
	DockedShips  []replay.ShipID
}

// syncShips creates, updates and destroys ship views for the current position
// Returns the number of views created and destroyed
func (c *Controller) syncShips() (created, destroyed int) {
	frame := c.tracker.Frame()
	sub := c.pos.SubTime
	live := make(map[ShipKey]struct{}, len(c.ships))

	for owner, fleet := range frame.Ships {
		for id, st := range fleet {
			key := ShipKey{Owner: owner, ID: id}
			if !c.tracker.IsAlive(key.Ref(), sub) {
				continue
			}
			live[key] = struct{}{}

			v, ok := c.ships[key]
			if !ok {
				v = &ShipView{Key: key, Created: frame.Index}
				c.ships[key] = v
				created++
			}
			v.State = st
			v.X = st.X + st.VelX*sub
			v.Y = st.Y + st.VelY*sub
			v.Updated = frame.Index
		}
	}

	for key := range c.ships {
		if _, ok := live[key]; !ok {
			delete(c.ships, key)
			destroyed++
		}
	}

	c.statShipsLive.Store(int64(len(c.ships)))
	return created, destroyed
}

// syncPlanets toggles planet views; planets dead or absent are hidden with health 0
func (c *Controller) syncPlanets() {
	sub := c.pos.SubTime
	for _, v := range c.planets {
		st, alive := c.tracker.PlanetState(v.Base.ID, sub)
		v.Owner = st.Owner
		v.Health = st.Health
		v.DockedShips = st.DockedShips

		v.HealthFactor = 0
		if v.Base.Health > 0 {
			v.HealthFactor = float64(st.Health) / float64(v.Base.Health)
		}

		switch {
		case !alive || st.Health == 0:
			v.Visible = false
			v.Intensity = 0
		case v.HealthFactor < parameter.LowHealthFactor:
			v.Visible = true
			v.Intensity = parameter.LowHealthIntensity
		default:
			v.Visible = true
			v.Intensity = 1
		}
	}
}

// Ships returns live ship views ordered by owner then id
func (c *Controller) Ships() []*ShipView {
	views := make([]*ShipView, 0, len(c.ships))
	for _, v := range c.ships {
		views = append(views, v)
	}
	slices.SortFunc(views, func(a, b *ShipView) int {
		if n := cmp.Compare(a.Key.Owner, b.Key.Owner); n != 0 {
			return n
		}
		return cmp.Compare(a.Key.ID, b.Key.ID)
	})
	return views
}

// Ship returns the live view for key
func (c *Controller) Ship(key ShipKey) (*ShipView, bool) {
	v, ok := c.ships[key]
	return v, ok
}

// Planets returns planet views in planet id order
func (c *Controller) Planets() []*PlanetView {
	return c.planets
}
