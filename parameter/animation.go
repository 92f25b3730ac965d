package parameter

// Scheduled Animations (durations in ticks)
const (
	// AttackFlashTicks is the fade-out length of an attack flash
	AttackFlashTicks = 24

	// SpawnBeamTicks is the fade-out length of the planet-to-ship spawn line
	SpawnBeamTicks = 24

	// PlanetExplosionTicks is the length of a planet explosion
	PlanetExplosionTicks = 100

	// ShipExplosionTicks is the length of a ship explosion
	ShipExplosionTicks = 48

	// FadeAlpha is peak alpha of attack flashes and spawn beams
	FadeAlpha = 0.5

	// DelaySatisfied marks a scheduled animation whose delay has been consumed
	DelaySatisfied = -1.0
)

// Explosion Geometry (board units)
const (
	// ShipExplosionRadius is the peak radius of a ship explosion
	ShipExplosionRadius = 2.0

	// PlanetExplosionGrowth scales planet radius to peak explosion radius
	PlanetExplosionGrowth = 1.5

	// DefaultWeaponRadius is used when the replay omits WEAPON_RADIUS
	DefaultWeaponRadius = 5.0
)
