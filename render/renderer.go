// Package render draws playback state into a tcell screen
package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/haliteviz/animation"
	"github.com/lixenwraith/haliteviz/parameter"
	"github.com/lixenwraith/haliteviz/playback"
	"github.com/lixenwraith/haliteviz/replay"
	"github.com/lixenwraith/haliteviz/stats"
	"github.com/lixenwraith/haliteviz/status"
)

// Source is the read side of the playback controller
type Source interface {
	Replay() *replay.Replay
	Position() playback.Position
	State() playback.State
	PlaySpeed() float64
	Ships() []*playback.ShipView
	Planets() []*playback.PlanetView
	Stats() stats.Stats
	Animations() *animation.Scheduler
	Selected() (replay.EntityRef, bool)
	Registry() *status.Registry
}

// Renderer composes a frame into a buffer and flushes it to the screen
type Renderer struct {
	screen tcell.Screen
	buf    *Buffer
	vp     Viewport
}

// NewRenderer creates a renderer for screen
func NewRenderer(screen tcell.Screen) *Renderer {
	w, h := screen.Size()
	return &Renderer{screen: screen, buf: NewBuffer(w, h)}
}

// Viewport returns the board viewport of the last draw
func (r *Renderer) Viewport() Viewport {
	return r.vp
}

// Buffer returns the composed buffer of the last draw
func (r *Renderer) Buffer() *Buffer {
	return r.buf
}

// Draw renders src and shows the screen
func (r *Renderer) Draw(src Source) {
	w, h := r.screen.Size()
	r.buf.Resize(w, h)
	r.buf.Clear(RgbBackground)

	rp := src.Replay()
	boardRows := h - parameter.StatsRows - parameter.StatusRows
	r.vp = Fit(float64(rp.Width), float64(rp.Height), 0, parameter.StatsRows, w, boardRows)

	r.drawOrbits(rp)
	r.drawEffects(src.Animations().Active(), true)
	r.drawPlanets(src)
	r.drawShips(src)
	r.drawEffects(src.Animations().Active(), false)
	r.drawStats(src)
	r.drawStatus(src)

	r.buf.Flush(r.screen)
	r.screen.Show()
}

func (r *Renderer) drawOrbits(rp *replay.Replay) {
	for _, poi := range rp.POI {
		if poi.Type != "orbit" {
			continue
		}
		r.vp.ellipse(poi.X, poi.Y, poi.XAxis, poi.YAxis, func(col, row int) {
			r.buf.SetRune(col, row, parameter.GlyphOrbit, RgbOrbit)
		})
	}
}

func (r *Renderer) drawPlanets(src Source) {
	sel, hasSel := src.Selected()
	for _, p := range src.Planets() {
		if !p.Visible {
			continue
		}
		color := Scale(OwnerColor(p.Owner), p.Intensity)
		glyph := parameter.GlyphPlanet
		if p.Intensity < 1 {
			glyph = parameter.GlyphPlanetLow
		}
		r.vp.disc(p.Base.X, p.Base.Y, p.Base.Radius, func(col, row int) {
			r.buf.SetRune(col, row, glyph, color)
		})

		if hasSel && sel == replay.PlanetRef(p.Base.ID) {
			if col, row, ok := r.vp.ToCell(p.Base.X, p.Base.Y); ok {
				r.buf.Set(col, row, glyph, RgbBackground, RgbSelected)
			}
		}
	}
}

func (r *Renderer) drawShips(src Source) {
	sel, hasSel := src.Selected()
	for _, s := range src.Ships() {
		col, row, ok := r.vp.ToCell(s.X, s.Y)
		if !ok {
			continue
		}
		if hasSel && sel == s.Key.Ref() {
			r.buf.SetRune(col, row, parameter.GlyphShipSelected, RgbSelected)
			continue
		}
		r.buf.SetRune(col, row, parameter.GlyphShip, PlayerColor(s.Key.Owner))
	}
}

// drawEffects paints tints under entities when background is set, glyphs over them otherwise
func (r *Renderer) drawEffects(effects []animation.Effect, background bool) {
	for _, e := range effects {
		v := e.Visual()
		switch v.Kind {
		case animation.KindAttackFlash:
			if !background {
				continue
			}
			color := OwnerColor(v.Owner)
			r.vp.disc(v.X, v.Y, v.Radius, func(col, row int) {
				r.buf.Tint(col, row, color, v.Alpha)
			})

		case animation.KindSpawnBeam:
			if background {
				continue
			}
			color := Blend(RgbBackground, OwnerColor(v.Owner), math.Min(1, 2*v.Alpha))
			r.vp.line(v.X, v.Y, v.ToX, v.ToY, func(col, row int) {
				if c, ok := r.buf.Get(col, row); ok && c.Rune == ' ' {
					r.buf.SetRune(col, row, parameter.GlyphBeam, color)
				}
			})

		case animation.KindPlanetExplosion, animation.KindShipExplosion:
			if background {
				r.vp.disc(v.X, v.Y, v.Radius, func(col, row int) {
					r.buf.Tint(col, row, RgbExplosion, v.Alpha*0.5)
				})
				continue
			}
			color := Blend(RgbBackground, RgbExplosion, v.Alpha)
			r.vp.ring(v.X, v.Y, v.Radius, func(col, row int) {
				r.buf.SetRune(col, row, parameter.GlyphExplosion, color)
			})
		}
	}
}

// drawStats renders fleet share on the first row and territory share on the second
func (r *Renderer) drawStats(src Source) {
	w, _ := r.buf.Size()
	if w == 0 {
		return
	}
	rp := src.Replay()
	st := src.Stats()

	shipShares := make([]float64, rp.NumPlayers)
	planetShares := make([]float64, rp.NumPlayers+1)
	for p := 0; p < rp.NumPlayers; p++ {
		shipShares[p] = st.ShipShare(replay.PlayerID(p))
		planetShares[p] = st.PlanetShare(replay.PlayerID(p), len(rp.Planets))
	}
	planetShares[rp.NumPlayers] = st.UnownedShare(len(rp.Planets))

	r.bar(0, w, shipShares, false)
	r.bar(1, w, planetShares, true)
}

// bar fills row with consecutive segments; the last share is unowned when withUnowned is set
func (r *Renderer) bar(row, width int, shares []float64, withUnowned bool) {
	for col := 0; col < width; col++ {
		r.buf.Set(col, row, parameter.GlyphBar, RgbBarEmpty, RgbBackground)
	}

	cum := 0.0
	for i, share := range shares {
		start := int(math.Round(cum * float64(width)))
		cum += share
		end := int(math.Round(cum * float64(width)))

		color := PlayerColor(replay.PlayerID(i))
		if withUnowned && i == len(shares)-1 {
			color = RgbPlanet
		}
		for col := start; col < end && col < width; col++ {
			r.buf.Set(col, row, parameter.GlyphBar, color, RgbBackground)
		}
	}
}

func (r *Renderer) drawStatus(src Source) {
	w, h := r.buf.Size()
	row := h - 1
	if row < parameter.StatsRows {
		return
	}
	for col := 0; col < w; col++ {
		r.buf.Set(col, row, ' ', RgbText, RgbStatusBg)
	}
	r.buf.Text(0, row, StatusLine(src), RgbText, RgbStatusBg)
}

// StatusLine formats the playback state, position, speed, selection and queue size
func StatusLine(src Source) string {
	rp := src.Replay()
	pos := src.Position()

	var icon string
	switch src.State() {
	case playback.StatePlaying:
		icon = "▶"
	case playback.StateEnded:
		icon = "■"
	default:
		icon = "❚❚"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, " %s frame %d/%d +%.2f  speed %gx  ships %d  fx %d",
		icon, pos.Frame, rp.LastFrame(), pos.SubTime, src.PlaySpeed(),
		src.Stats().TotalShips, src.Animations().Len())

	if skipped := src.Registry().Ints.Get(status.MetricEventsSkipped).Load(); skipped > 0 {
		fmt.Fprintf(&sb, "  skipped %d", skipped)
	}

	if ref, ok := src.Selected(); ok {
		sb.WriteString("  [")
		sb.WriteString(describe(src, ref))
		sb.WriteString("]")
	}
	return sb.String()
}

// describe summarises a selected entity
func describe(src Source, ref replay.EntityRef) string {
	rp := src.Replay()
	switch ref.Kind {
	case replay.EntityPlanet:
		for _, p := range src.Planets() {
			if p.Base.ID != replay.PlanetID(ref.ID) {
				continue
			}
			if !p.Visible {
				return fmt.Sprintf("planet %d destroyed", ref.ID)
			}
			owner := "unowned"
			if p.Owner.Valid {
				owner = rp.PlayerName(p.Owner.ID)
			}
			return fmt.Sprintf("planet %d %s hp %d%% docked %d", ref.ID, owner,
				int(math.Round(p.HealthFactor*100)), len(p.DockedShips))
		}
	case replay.EntityShip:
		for _, s := range src.Ships() {
			if s.Key.Ref() == ref {
				return fmt.Sprintf("ship %d %s hp %d", ref.ID, rp.PlayerName(ref.Owner), s.State.Health)
			}
		}
		return fmt.Sprintf("ship %d gone", ref.ID)
	}
	return ref.String()
}

// HitTest returns the entity drawn at a screen cell; ships take precedence over planets
func (r *Renderer) HitTest(src Source, col, row int) (replay.EntityRef, bool) {
	if !r.vp.Contains(col, row) {
		return replay.EntityRef{}, false
	}

	for _, s := range src.Ships() {
		if c, rr, ok := r.vp.ToCell(s.X, s.Y); ok && c == col && rr == row {
			return s.Key.Ref(), true
		}
	}

	x, y := r.vp.ToBoard(col, row)
	tolerance := 0.5 / math.Max(r.vp.Scale(), 1e-9)
	for _, p := range src.Planets() {
		if !p.Visible {
			continue
		}
		if math.Hypot(p.Base.X-x, p.Base.Y-y) <= p.Base.Radius+tolerance {
			return replay.PlanetRef(p.Base.ID), true
		}
		if c, rr, ok := r.vp.ToCell(p.Base.X, p.Base.Y); ok && c == col && rr == row {
			return replay.PlanetRef(p.Base.ID), true
		}
	}
	return replay.EntityRef{}, false
}
