package game

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Mul(k uint8) RGB {
	return RGB{
		R: uint8((uint16(c.R) * uint16(k)) / 255),
		G: uint8((uint16(c.G) * uint16(k)) / 255),
		B: uint8((uint16(c.B) * uint16(k)) / 255),
	}
}

func (c RGB) Add(dr, dg, db int) RGB {
	r := clamp(int(c.R)+dr, 0, 255)
	g := clamp(int(c.G)+dg, 0, 255)
	b := clamp(int(c.B)+db, 0, 255)
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
}

// Palette holds the neon colour scheme. Presentation only; the simulation
// copies colours onto entities at spawn and never reads them back.
var Palette = struct {
	Background RGB
	GridLine   RGB
	Player     RGB
	PlayerHurt RGB
	Chaser     RGB
	Brute      RGB
	Aggregate  RGB
	Sniper     RGB
	Bullet     RGB
	BulletHot  RGB
	Shock      RGB
	PerkBuff   RGB
	PerkWeapon RGB
	Letter     RGB
	DeathDust  RGB
	Spark      RGB
	Obstacle   RGB
}{
	Background: RGB{R: 8, G: 8, B: 18},
	GridLine:   RGB{R: 30, G: 40, B: 90},
	Player:     RGB{R: 90, G: 230, B: 255},
	PlayerHurt: RGB{R: 255, G: 110, B: 90},
	Chaser:     RGB{R: 255, G: 70, B: 130},
	Brute:      RGB{R: 255, G: 150, B: 40},
	Aggregate:  RGB{R: 190, G: 90, B: 255},
	Sniper:     RGB{R: 120, G: 255, B: 120},
	Bullet:     RGB{R: 255, G: 245, B: 160},
	BulletHot:  RGB{R: 255, G: 120, B: 60},
	Shock:      RGB{R: 140, G: 200, B: 255},
	PerkBuff:   RGB{R: 80, G: 255, B: 180},
	PerkWeapon: RGB{R: 255, G: 210, B: 60},
	Letter:     RGB{R: 220, G: 220, B: 255},
	DeathDust:  RGB{R: 90, G: 230, B: 255},
	Spark:      RGB{R: 255, G: 255, B: 210},
	Obstacle:   RGB{R: 50, G: 60, B: 80},
}
