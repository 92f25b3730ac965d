package animation

import (
	"github.com/lixenwraith/haliteviz/parameter"
	"github.com/lixenwraith/haliteviz/replay"
)

// fade tracks remaining/total for the variants below
type fade struct {
	total     float64
	remaining float64
	done      bool
}

func (f *fade) progress() float64 {
	if f.total <= 0 || f.done {
		return 1
	}
	p := 1 - f.remaining/f.total
	if p < 0 {
		return 0
	}
	return p
}

// Explosion is a planet or ship blast; radius grows while intensity decays
type Explosion struct {
	fade
	kind       Kind
	owner      replay.Owner
	x, y       float64
	peakRadius float64
	cues       CueSink
}

// NewExplosion creates an explosion lasting duration ticks
func NewExplosion(kind Kind, owner replay.Owner, x, y, peakRadius, duration float64, cues CueSink) *Explosion {
	if cues == nil {
		cues = nopSink{}
	}
	return &Explosion{
		fade:       fade{total: duration, remaining: duration},
		kind:       kind,
		owner:      owner,
		x:          x,
		y:          y,
		peakRadius: peakRadius,
		cues:       cues,
	}
}

func (e *Explosion) Start() {
	if e.kind == KindPlanetExplosion {
		e.cues.PlayCue(CuePlanetExplosion)
	} else {
		e.cues.PlayCue(CueShipExplosion)
	}
}

func (e *Explosion) Tick(remaining float64) {
	e.remaining = remaining
}

func (e *Explosion) Finish() {
	e.done = true
}

func (e *Explosion) Cancel() {
	e.done = true
}

func (e *Explosion) Visual() Visual {
	p := e.progress()
	return Visual{
		Kind:     e.kind,
		Owner:    e.owner,
		X:        e.x,
		Y:        e.y,
		Radius:   e.peakRadius * p,
		Alpha:    1 - p,
		Progress: p,
	}
}

// AttackFlash is a fading disc of weapon radius at the attack point
type AttackFlash struct {
	fade
	owner  replay.Owner
	x, y   float64
	radius float64
	cues   CueSink
}

// NewAttackFlash creates a flash tinted by the attacking owner
func NewAttackFlash(owner replay.PlayerID, x, y, radius float64, cues CueSink) *AttackFlash {
	if cues == nil {
		cues = nopSink{}
	}
	return &AttackFlash{
		fade:   fade{total: parameter.AttackFlashTicks, remaining: parameter.AttackFlashTicks},
		owner:  replay.OwnedBy(owner),
		x:      x,
		y:      y,
		radius: radius,
		cues:   cues,
	}
}

func (a *AttackFlash) Start() {
	a.cues.PlayCue(CueAttack)
}

func (a *AttackFlash) Tick(remaining float64) {
	a.remaining = remaining
}

func (a *AttackFlash) Finish() {
	a.done = true
}

func (a *AttackFlash) Cancel() {
	a.done = true
}

func (a *AttackFlash) Visual() Visual {
	return Visual{
		Kind:     KindAttackFlash,
		Owner:    a.owner,
		X:        a.x,
		Y:        a.y,
		Radius:   a.radius,
		Alpha:    fadeAlpha(a.remaining, a.total, a.done),
		Progress: a.progress(),
	}
}

// SpawnBeam is a fading line from the producing planet to the new ship
type SpawnBeam struct {
	fade
	owner            replay.Owner
	planetX, planetY float64
	shipX, shipY     float64
	cues             CueSink
}

// NewSpawnBeam creates a beam tinted by the owner
func NewSpawnBeam(owner replay.PlayerID, planetX, planetY, shipX, shipY float64, cues CueSink) *SpawnBeam {
	if cues == nil {
		cues = nopSink{}
	}
	return &SpawnBeam{
		fade:    fade{total: parameter.SpawnBeamTicks, remaining: parameter.SpawnBeamTicks},
		owner:   replay.OwnedBy(owner),
		planetX: planetX,
		planetY: planetY,
		shipX:   shipX,
		shipY:   shipY,
		cues:    cues,
	}
}

func (s *SpawnBeam) Start() {
	s.cues.PlayCue(CueSpawn)
}

func (s *SpawnBeam) Tick(remaining float64) {
	s.remaining = remaining
}

func (s *SpawnBeam) Finish() {
	s.done = true
}

func (s *SpawnBeam) Cancel() {
	s.done = true
}

func (s *SpawnBeam) Visual() Visual {
	return Visual{
		Kind:     KindSpawnBeam,
		Owner:    s.owner,
		X:        s.planetX,
		Y:        s.planetY,
		ToX:      s.shipX,
		ToY:      s.shipY,
		Alpha:    fadeAlpha(s.remaining, s.total, s.done),
		Progress: s.progress(),
	}
}

// fadeAlpha is FadeAlpha scaled by the remaining fraction
func fadeAlpha(remaining, total float64, done bool) float64 {
	if done || total <= 0 {
		return 0
	}
	return parameter.FadeAlpha * remaining / total
}
