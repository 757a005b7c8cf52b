package game

import "math"

// Health tracks HP for any entity.
type Health struct {
	Current float64
	Max     float64
}

func NewHealth(max float64) Health {
	return Health{Current: max, Max: max}
}

func (h *Health) Damage(amount float64) {
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
}

func (h *Health) Heal(amount float64) {
	h.Current += amount
	if h.Current > h.Max {
		h.Current = h.Max
	}
}

func (h *Health) IsDead() bool {
	return h.Current <= 0
}

// Player is the singleton controlled entity. Weapon is a local override that
// persists until another weapon perk is collected or the config default
// changes.
type Player struct {
	X, Y       float64
	HP         Health
	Energy     float64 // 0..100, drain-bullets mode only
	Visibility float64 // 0..1, stealth mode only
	Weapon     WeaponKind
}

func NewPlayer(x, y float64, cfg *Config) Player {
	return Player{
		X: x, Y: y,
		HP:     NewHealth(cfg.MaxHealth),
		Energy: 100,
	}
}

// Respawn teleports the player and restores health and energy.
func (p *Player) Respawn(x, y float64, cfg *Config) {
	p.X = x
	p.Y = y
	p.HP = NewHealth(cfg.MaxHealth)
	p.Energy = 100
	p.Visibility = 0
}

// Move integrates movement input. Speed buffs multiply before time-slow; the
// focus modifier halves on top of both.
func (p *Player) Move(dt float64, in InputState, cfg *Config, speedBuff, slowBuff bool, w, h float64) {
	dx, dy := 0.0, 0.0
	if in.Up {
		dy -= 1
	}
	if in.Down {
		dy += 1
	}
	if in.Left {
		dx -= 1
	}
	if in.Right {
		dx += 1
	}

	moving := dx != 0 || dy != 0
	if moving {
		d := math.Hypot(dx, dy)
		dx /= d
		dy /= d

		speed := cfg.PlayerSpeed
		if speedBuff {
			speed *= 1.5
		}
		if slowBuff {
			speed *= 0.5
		}
		if in.Focus {
			speed *= 0.5
		}
		p.X = clampF(p.X+dx*speed*dt, cfg.PlayerRadius, w-cfg.PlayerRadius)
		p.Y = clampF(p.Y+dy*speed*dt, cfg.PlayerRadius, h-cfg.PlayerRadius)
	}

	// Stealth: movement lights the player up, standing still fades them out.
	if cfg.StealthMode {
		if moving {
			p.Visibility = clampF(p.Visibility+2.0*dt, 0, 1)
		} else {
			p.Visibility = clampF(p.Visibility-1.0*dt, 0, 1)
		}
	}
}
