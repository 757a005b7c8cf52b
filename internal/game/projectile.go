package game

import "math"

type WeaponKind int

const (
	WeaponDefault WeaponKind = iota
	WeaponSpread
	WeaponRapid
	WeaponCharge
	WeaponSniper
)

type Projectile struct {
	X, Y      float64
	VX, VY    float64
	Radius    float64
	Damage    float64
	Kind      WeaponKind
	Explosive bool // area damage on first contact
	Bounces   int  // remaining reflections off surviving enemies
	Col       RGB
}

// fireInterval returns the seconds between shots for the current weapon and
// buff state.
func (g *Game) fireInterval() float64 {
	interval := g.Cfg.FireInterval
	switch g.Player.Weapon {
	case WeaponRapid:
		interval /= 3
	case WeaponSpread:
		interval *= 3
	case WeaponCharge:
		interval = 2.0
	}
	if g.fireRateActive() {
		interval /= 2
	}
	if g.explosiveActive() {
		interval = math.Max(interval, 0.4)
	}
	return interval
}

// fire emits projectiles for the active weapon toward the pointer. In
// drain-bullets mode every shot costs energy, and running dry kills the
// player instead of firing.
func (g *Game) fire() {
	cfg := &g.Cfg

	if cfg.DrainBullets {
		if g.Player.Energy <= 0 {
			g.triggerDeath()
			return
		}
		g.Player.Energy = clampF(g.Player.Energy-cfg.EnergyCost, 0, 100)
	}

	ux, uy := normalize(g.Input.MouseX-g.Player.X, g.Input.MouseY-g.Player.Y)
	aim := math.Atan2(uy, ux)
	explosive := g.explosiveActive()
	volume := 1.0

	switch g.Player.Weapon {
	case WeaponSpread:
		volume = 0.9
		for i := 0; i < SpreadShotCount; i++ {
			t := float64(i)/float64(SpreadShotCount-1) - 0.5
			g.addProjectile(aim+t*SpreadShotArc, cfg.BulletSpeed, cfg.BulletRadius,
				cfg.BulletDamage, cfg.MaxBounces, explosive, WeaponSpread)
		}
	case WeaponRapid:
		volume = 0.5
		jitter := g.Rand.RangeF(-0.06, 0.06)
		g.addProjectile(aim+jitter, cfg.BulletSpeed*1.2, cfg.BulletRadius*0.7,
			cfg.BulletDamage*0.6, cfg.MaxBounces, explosive, WeaponRapid)
	case WeaponCharge:
		g.addProjectile(aim, cfg.BulletSpeed*0.45, cfg.BulletRadius*3, 0, 0, true, WeaponCharge)
	case WeaponSniper:
		g.addProjectile(aim, cfg.BulletSpeed*2, cfg.BulletRadius, cfg.SniperDamage, 0, explosive, WeaponSniper)
	default:
		g.addProjectile(aim, cfg.BulletSpeed, cfg.BulletRadius,
			cfg.BulletDamage, cfg.MaxBounces, explosive, WeaponDefault)
	}

	g.Bus.Emit(Event{Type: EventShoot, Data: SoundPayload{Weapon: g.Player.Weapon, Volume: volume}})
}

func (g *Game) addProjectile(ang, speed, radius, damage float64, bounces int, explosive bool, kind WeaponKind) {
	col := Palette.Bullet
	if explosive {
		col = Palette.BulletHot
	}
	g.Projectiles = append(g.Projectiles, Projectile{
		X:         g.Player.X,
		Y:         g.Player.Y,
		VX:        math.Cos(ang) * speed,
		VY:        math.Sin(ang) * speed,
		Radius:    radius,
		Damage:    damage,
		Kind:      kind,
		Explosive: explosive,
		Bounces:   bounces,
		Col:       col,
	})
}

// updateProjectiles integrates positions and culls projectiles that leave the
// screen or hit an obstacle in stealth mode.
func (g *Game) updateProjectiles(dt float64) {
	const offscreen = 80.0
	for i := 0; i < len(g.Projectiles); {
		p := &g.Projectiles[i]
		p.X += p.VX * dt
		p.Y += p.VY * dt

		if p.X < -offscreen || p.Y < -offscreen || p.X > g.W+offscreen || p.Y > g.H+offscreen {
			g.removeProjectile(i)
			continue
		}
		if g.Cfg.StealthMode && g.pointInObstacle(p.X, p.Y) {
			g.Particles.SpawnHitSparks(p.X, p.Y, -p.VX, -p.VY, 4)
			g.removeProjectile(i)
			continue
		}
		i++
	}
}

func (g *Game) removeProjectile(i int) {
	g.Projectiles[i] = g.Projectiles[len(g.Projectiles)-1]
	g.Projectiles = g.Projectiles[:len(g.Projectiles)-1]
}
