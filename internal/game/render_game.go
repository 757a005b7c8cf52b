package game

import (
	"fmt"
	"math"
	"unicode/utf8"
)

// glyphs is a 5x7 bitfont (one byte per row, low 5 bits used). Rendered as
// point sprites, which keeps the whole presentation asset-free.
var glyphs = map[rune][7]uint8{
	'A': {0x0E, 0x11, 0x11, 0x1F, 0x11, 0x11, 0x11},
	'B': {0x1E, 0x11, 0x11, 0x1E, 0x11, 0x11, 0x1E},
	'C': {0x0E, 0x11, 0x10, 0x10, 0x10, 0x11, 0x0E},
	'D': {0x1E, 0x11, 0x11, 0x11, 0x11, 0x11, 0x1E},
	'E': {0x1F, 0x10, 0x10, 0x1E, 0x10, 0x10, 0x1F},
	'F': {0x1F, 0x10, 0x10, 0x1E, 0x10, 0x10, 0x10},
	'G': {0x0E, 0x11, 0x10, 0x17, 0x11, 0x11, 0x0F},
	'H': {0x11, 0x11, 0x11, 0x1F, 0x11, 0x11, 0x11},
	'I': {0x0E, 0x04, 0x04, 0x04, 0x04, 0x04, 0x0E},
	'J': {0x07, 0x02, 0x02, 0x02, 0x02, 0x12, 0x0C},
	'K': {0x11, 0x12, 0x14, 0x18, 0x14, 0x12, 0x11},
	'L': {0x10, 0x10, 0x10, 0x10, 0x10, 0x10, 0x1F},
	'M': {0x11, 0x1B, 0x15, 0x15, 0x11, 0x11, 0x11},
	'N': {0x11, 0x19, 0x15, 0x13, 0x11, 0x11, 0x11},
	'O': {0x0E, 0x11, 0x11, 0x11, 0x11, 0x11, 0x0E},
	'P': {0x1E, 0x11, 0x11, 0x1E, 0x10, 0x10, 0x10},
	'Q': {0x0E, 0x11, 0x11, 0x11, 0x15, 0x12, 0x0D},
	'R': {0x1E, 0x11, 0x11, 0x1E, 0x14, 0x12, 0x11},
	'S': {0x0F, 0x10, 0x10, 0x0E, 0x01, 0x01, 0x1E},
	'T': {0x1F, 0x04, 0x04, 0x04, 0x04, 0x04, 0x04},
	'U': {0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x0E},
	'V': {0x11, 0x11, 0x11, 0x11, 0x11, 0x0A, 0x04},
	'W': {0x11, 0x11, 0x11, 0x15, 0x15, 0x1B, 0x11},
	'X': {0x11, 0x11, 0x0A, 0x04, 0x0A, 0x11, 0x11},
	'Y': {0x11, 0x11, 0x0A, 0x04, 0x04, 0x04, 0x04},
	'Z': {0x1F, 0x01, 0x02, 0x04, 0x08, 0x10, 0x1F},
	'0': {0x0E, 0x11, 0x13, 0x15, 0x19, 0x11, 0x0E},
	'1': {0x04, 0x0C, 0x04, 0x04, 0x04, 0x04, 0x0E},
	'2': {0x0E, 0x11, 0x01, 0x02, 0x04, 0x08, 0x1F},
	'3': {0x1F, 0x02, 0x04, 0x02, 0x01, 0x11, 0x0E},
	'4': {0x02, 0x06, 0x0A, 0x12, 0x1F, 0x02, 0x02},
	'5': {0x1F, 0x10, 0x1E, 0x01, 0x01, 0x11, 0x0E},
	'6': {0x06, 0x08, 0x10, 0x1E, 0x11, 0x11, 0x0E},
	'7': {0x1F, 0x01, 0x02, 0x04, 0x08, 0x08, 0x08},
	'8': {0x0E, 0x11, 0x11, 0x0E, 0x11, 0x11, 0x0E},
	'9': {0x0E, 0x11, 0x11, 0x0F, 0x01, 0x02, 0x0C},
	'-': {0x00, 0x00, 0x00, 0x1F, 0x00, 0x00, 0x00},
	'.': {0x00, 0x00, 0x00, 0x00, 0x00, 0x0C, 0x0C},
	':': {0x00, 0x0C, 0x0C, 0x00, 0x0C, 0x0C, 0x00},
}

// spr appends one point sprite (x, y, size, r, g, b, a, rotation).
func spr(buf []float32, x, y, size float64, col RGB, a float32) []float32 {
	return append(buf,
		float32(x), float32(y), float32(size),
		float32(col.R)/255, float32(col.G)/255, float32(col.B)/255, a, 0)
}

// appendGlyph renders one character as point sprites at (x, y) top-left.
func appendGlyph(buf []float32, ch rune, x, y, scale float64, col RGB, a float32) []float32 {
	rows, ok := glyphs[ch]
	if !ok {
		return buf
	}
	for ry, bits := range rows {
		for cx := 0; cx < glyphCols; cx++ {
			if bits&(1<<(glyphCols-1-cx)) == 0 {
				continue
			}
			buf = spr(buf, x+float64(cx)*scale, y+float64(ry)*scale, scale, col, a)
		}
	}
	return buf
}

func appendText(buf []float32, s string, x, y, scale float64, col RGB, a float32) []float32 {
	for i, ch := range s {
		buf = appendGlyph(buf, ch, x+float64(i)*(glyphCols+1)*scale, y, scale, col, a)
	}
	return buf
}

// TextWidth returns the pixel width of s at the given glyph scale.
func TextWidth(s string, scale float64) float64 {
	return float64(utf8.RuneCountInString(s)) * (glyphCols + 1) * scale
}

// GridLineData builds the background mesh buffer: one segment to the right
// and one down per node, brightness lifted by local displacement.
func (g *Game) GridLineData(buf []float32) []float32 {
	buf = buf[:0]
	gr := g.Grid
	col := Palette.GridLine

	vert := func(n *GridNode) []float32 {
		dx := n.X - n.BaseX
		dy := n.Y - n.BaseY
		hot := clampF(math.Hypot(dx, dy)/12.0, 0, 1)
		c := lerpRGB(col, Palette.Shock, hot)
		a := float32(0.35 + 0.65*hot)
		return []float32{float32(n.X), float32(n.Y),
			float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, a}
	}

	for row := 0; row < gr.Rows; row++ {
		for colI := 0; colI < gr.Cols; colI++ {
			n := gr.Node(colI, row)
			if right := gr.Node(colI+1, row); right != nil {
				buf = append(buf, vert(n)...)
				buf = append(buf, vert(right)...)
			}
			if down := gr.Node(colI, row+1); down != nil {
				buf = append(buf, vert(n)...)
				buf = append(buf, vert(down)...)
			}
		}
	}

	// Obstacle outlines share the line pass.
	oc := Palette.Obstacle
	for i := range g.Obstacles {
		o := &g.Obstacles[i]
		corners := [5][2]float64{
			{o.X, o.Y}, {o.X + o.W, o.Y}, {o.X + o.W, o.Y + o.H}, {o.X, o.Y + o.H}, {o.X, o.Y},
		}
		for c := 0; c < 4; c++ {
			buf = append(buf,
				float32(corners[c][0]), float32(corners[c][1]),
				float32(oc.R)/255, float32(oc.G)/255, float32(oc.B)/255, 0.9,
				float32(corners[c+1][0]), float32(corners[c+1][1]),
				float32(oc.R)/255, float32(oc.G)/255, float32(oc.B)/255, 0.9)
		}
	}
	return buf
}

// SpriteData builds the alpha-blended pass: player, enemies, perks, letters,
// particles.
func (g *Game) SpriteData(buf []float32) []float32 {
	buf = buf[:0]

	if g.State == StateAlive {
		col := Palette.Player
		if g.Player.HP.Current < g.Player.HP.Max*0.3 {
			col = Palette.PlayerHurt
		}
		a := float32(1.0)
		if g.Cfg.StealthMode {
			a = float32(0.35 + 0.65*g.Player.Visibility)
		}
		buf = spr(buf, g.Player.X, g.Player.Y, g.Cfg.PlayerRadius*2, col, a)
	}

	for i := range g.Enemies {
		e := &g.Enemies[i]
		col := e.Col
		if e.Kind == EnemySniper && e.Phase == SniperAiming {
			// Aiming snipers flash toward white as the shot charges.
			col = lerpRGB(col, RGB{255, 255, 255}, clampF(e.AimProgress/g.Cfg.SniperAimTime, 0, 1))
		}
		buf = spr(buf, e.X, e.Y, e.Radius*2, col, 1)
	}

	for i := range g.Perks {
		pk := &g.Perks[i]
		col := Palette.PerkBuff
		if pk.Kind.IsWeapon() {
			col = Palette.PerkWeapon
		}
		bob := math.Sin(pk.Bob+g.Now*3) * 3
		buf = spr(buf, pk.X, pk.Y+bob, g.Cfg.PerkRadius*2, col, 1)
	}

	for i := range g.Letters {
		l := &g.Letters[i]
		a := float32(clampF(l.Life/2.0, 0, 1))
		buf = appendGlyph(buf, l.Ch, l.X, l.Y, letterScale, Palette.Letter, a)
	}

	for i := range g.Particles.P {
		p := &g.Particles.P[i]
		a := float32(1.0)
		if p.Kind != ParticleDeath && p.MaxLife > 0 && !math.IsInf(p.MaxLife, 1) {
			a = float32(clampF(1.0-p.Life/p.MaxLife, 0, 1))
		}
		buf = spr(buf, p.X, p.Y, p.Size*2, p.Col, a)
	}

	return buf
}

// GlowData builds the additive pass: projectiles, shockwave rings, forming
// centroids.
func (g *Game) GlowData(buf []float32) []float32 {
	buf = buf[:0]

	for i := range g.Projectiles {
		p := &g.Projectiles[i]
		buf = spr(buf, p.X, p.Y, p.Radius*6, p.Col, 1)
	}

	for i := range g.Shockwaves {
		s := &g.Shockwaves[i]
		radius := s.Radius()
		steps := clamp(int(radius/6), 12, 96)
		for k := 0; k < steps; k++ {
			ang := 2 * math.Pi * float64(k) / float64(steps)
			c := Palette.Shock.Mul(uint8(255 * s.Life))
			buf = spr(buf, s.X+math.Cos(ang)*radius, s.Y+math.Sin(ang)*radius, 8, c, 1)
		}
	}

	for i := range g.Forming {
		f := &g.Forming[i]
		t := clampF((g.Now-f.Start)/AggregateFormTime, 0, 1)
		buf = spr(buf, f.CX, f.CY, 10+f.TargetRadius*t, Palette.Aggregate, 1)
	}

	return buf
}

// HUD mirrors the throttled stats snapshots; it never reads game internals
// beyond what the bus delivers.
type HUD struct {
	Stats     StatsPayload
	GameOver  *GameOverPayload
	OverUntil float64
}

// Attach subscribes the HUD to the bus.
func (h *HUD) Attach(bus *EventBus) {
	bus.Subscribe(EventStats, func(e Event) {
		if s, ok := e.Data.(StatsPayload); ok {
			h.Stats = s
		}
	})
	bus.Subscribe(EventGameOver, func(e Event) {
		if o, ok := e.Data.(GameOverPayload); ok {
			h.GameOver = &o
		}
	})
}

// Data renders the HUD overlay into a sprite buffer.
func (h *HUD) Data(buf []float32, g *Game, fbW, fbH int) []float32 {
	white := RGB{255, 255, 255}
	s := 2.5

	buf = appendText(buf, fmt.Sprintf("SCORE %d", h.Stats.Score), 12, 12, s, white, 1)
	buf = appendText(buf, fmt.Sprintf("KILLS %d", h.Stats.Kills), 12, 36, s, white, 1)

	// Health bar as a row of dots.
	frac := clampF(h.Stats.Health/g.Cfg.MaxHealth, 0, 1)
	col := Palette.Player
	if frac < 0.3 {
		col = Palette.PlayerHurt
	}
	const dots = 20
	for i := 0; i < int(frac*dots+0.5); i++ {
		buf = spr(buf, 14+float64(i)*12, 70, 8, col, 1)
	}

	if g.Cfg.DrainBullets {
		buf = appendText(buf, fmt.Sprintf("ENERGY %d", int(g.Player.Energy)), 12, 84, s, Palette.PerkBuff, 1)
	}

	if g.Paused {
		msg := "PAUSED"
		buf = appendText(buf, msg, float64(fbW)/2-TextWidth(msg, 4)/2, float64(fbH)/2, 4, white, 1)
	}
	if h.GameOver != nil && g.State == StateDying {
		msg := fmt.Sprintf("SCORE %d - KILLS %d - %dS", h.GameOver.Score, h.GameOver.Kills, h.GameOver.Seconds)
		buf = appendText(buf, msg, float64(fbW)/2-TextWidth(msg, 3)/2, float64(fbH)*0.3, 3, white, 1)
	}
	return buf
}
