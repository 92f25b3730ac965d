package parameter

// Terminal Layout
const (
	// StatsRows is the number of rows reserved for the stats bars at the top
	StatsRows = 2

	// StatusRows is the number of rows reserved for the status line at the bottom
	StatusRows = 1

	// CellAspect is the terminal cell height/width ratio used to keep circles round
	CellAspect = 2.0
)

// Glyphs
const (
	GlyphPlanet       = '●'
	GlyphPlanetLow    = '◌'
	GlyphShip         = '▴'
	GlyphShipSelected = '▲'
	GlyphAttack       = '*'
	GlyphExplosion    = '✶'
	GlyphBeam         = '·'
	GlyphOrbit        = '.'
	GlyphBar          = '█'
)
