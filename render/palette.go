package render

import "github.com/lixenwraith/haliteviz/replay"

var (
	RgbBackground = RGB{10, 12, 24}
	RgbText       = RGB{220, 220, 220}
	RgbTextDim    = RGB{130, 130, 140}
	RgbStatusBg   = RGB{30, 32, 48}
	RgbPlanet     = RGB{170, 170, 170} // unowned
	RgbOrbit      = RGB{60, 60, 80}
	RgbExplosion  = RGB{255, 180, 60}
	RgbSelected   = RGB{255, 255, 255}
	RgbBarEmpty   = RGB{40, 40, 50}
)

// playerColors tint owned entities; indexes wrap for larger games
var playerColors = []RGB{
	{255, 112, 75},  // orange
	{80, 200, 255},  // cyan
	{130, 220, 90},  // green
	{220, 110, 230}, // magenta
}

// PlayerColor returns the tint of player p
func PlayerColor(p replay.PlayerID) RGB {
	if p < 0 {
		return RgbPlanet
	}
	return playerColors[int(p)%len(playerColors)]
}

// OwnerColor returns the owner's tint, or the neutral planet color
func OwnerColor(o replay.Owner) RGB {
	if !o.Valid {
		return RgbPlanet
	}
	return PlayerColor(o.ID)
}
