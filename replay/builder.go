package replay

// Builder assembles a Replay in memory, for tests and tooling
// Frames are indexed in the order they are added
type Builder struct {
	r *Replay
}

// FrameBuilder populates one frame
type FrameBuilder struct {
	f *Frame
}

// NewBuilder starts a replay of the given board size and player count
func NewBuilder(width, height, players int) *Builder {
	return &Builder{r: &Replay{
		Width:      width,
		Height:     height,
		NumPlayers: players,
		Constants:  Constants{Values: make(map[string]float64)},
	}}
}

// WeaponRadius records the WEAPON_RADIUS constant
func (b *Builder) WeaponRadius(v float64) *Builder {
	b.r.Constants.WeaponRadius = v
	b.r.Constants.Values[weaponRadiusKey] = v
	return b
}

// Planet appends a planet base; its id is its index
func (b *Builder) Planet(x, y, radius float64, health int) *Builder {
	b.r.Planets = append(b.r.Planets, PlanetBase{
		ID:     PlanetID(len(b.r.Planets)),
		X:      x,
		Y:      y,
		Radius: radius,
		Health: health,
	})
	return b
}

// Orbit appends an orbit point of interest
func (b *Builder) Orbit(x, y, xAxis, yAxis float64) *Builder {
	b.r.POI = append(b.r.POI, PointOfInterest{Type: "orbit", X: x, Y: y, XAxis: xAxis, YAxis: yAxis})
	return b
}

// Frame appends a frame filled by fn; fn may be nil for an empty frame
func (b *Builder) Frame(fn func(f *FrameBuilder)) *Builder {
	frame := Frame{
		Index:   len(b.r.Frames),
		Planets: make(map[PlanetID]PlanetState),
		Ships:   make(map[PlayerID]map[ShipID]ShipState),
	}
	if fn != nil {
		fn(&FrameBuilder{f: &frame})
	}
	b.r.Frames = append(b.r.Frames, frame)
	return b
}

// Frames appends n frames filled by fn, which receives the frame index
func (b *Builder) Frames(n int, fn func(i int, f *FrameBuilder)) *Builder {
	for i := 0; i < n; i++ {
		idx := len(b.r.Frames)
		b.Frame(func(f *FrameBuilder) {
			if fn != nil {
				fn(idx, f)
			}
		})
	}
	return b
}

// Build returns the assembled replay
func (b *Builder) Build() *Replay {
	return b.r
}

// Planet sets a planet's state
func (fb *FrameBuilder) Planet(id PlanetID, owner Owner, health int) *FrameBuilder {
	fb.f.Planets[id] = PlanetState{ID: id, Owner: owner, Health: health}
	return fb
}

// Ship sets a ship's state
func (fb *FrameBuilder) Ship(owner PlayerID, id ShipID, x, y float64, health int) *FrameBuilder {
	fleet, ok := fb.f.Ships[owner]
	if !ok {
		fleet = make(map[ShipID]ShipState)
		fb.f.Ships[owner] = fleet
	}
	fleet[id] = ShipState{ID: id, Owner: owner, X: x, Y: y, Health: health}
	return fb
}

// Event appends an event
func (fb *FrameBuilder) Event(e Event) *FrameBuilder {
	fb.f.Events = append(fb.f.Events, e)
	return fb
}
