package game

import "math"

// resolveCollisions runs the pairwise circle tests for one tick. Populations
// are bounded (hundreds), so plain O(n·m) sweeps are fine here.
func (g *Game) resolveCollisions() {
	g.collideProjectiles()
	if g.State != StateAlive {
		return
	}
	g.collideEnemiesWithPlayer()
	if g.State != StateAlive {
		return
	}
	g.collidePickups()
}

func (g *Game) collideProjectiles() {
	for pi := 0; pi < len(g.Projectiles); {
		p := &g.Projectiles[pi]
		hit := -1
		for ei := range g.Enemies {
			e := &g.Enemies[ei]
			dx := e.X - p.X
			dy := e.Y - p.Y
			rr := e.Radius + p.Radius
			if dx*dx+dy*dy < rr*rr {
				hit = ei
				break
			}
		}
		if hit < 0 {
			pi++
			continue
		}

		if p.Explosive {
			// Area shots always consume on first contact and splash
			// everything near the impact point, not just the touched enemy.
			x, y := p.X, p.Y
			g.removeProjectile(pi)
			g.explodeAt(x, y, g.Cfg.BlastRadius, g.Cfg.BlastDamage)
			continue
		}

		e := &g.Enemies[hit]
		e.HP.Damage(p.Damage)
		if e.HP.IsDead() {
			g.killEnemy(hit)
			g.removeProjectile(pi)
			continue
		}

		// Survivor: hit-stun, impulse, sparks.
		nx, ny := normalize(e.X-p.X, e.Y-p.Y)
		e.Stun = 0.15
		e.VX = nx * 160
		e.VY = ny * 160
		g.Particles.SpawnHitSparks(p.X, p.Y, -nx, -ny, 5)
		g.Bus.Emit(Event{Type: EventHit, Data: SoundPayload{Volume: 0.6}})

		if p.Bounces > 0 {
			p.Bounces--
			p.VX, p.VY = reflect(p.VX, p.VY, nx, ny)
			// Reposition just outside the target so the same contact does
			// not re-trigger next tick.
			sep := e.Radius + p.Radius + 1
			p.X = e.X - nx*sep
			p.Y = e.Y - ny*sep
			pi++
			continue
		}
		g.removeProjectile(pi)
	}
}

func (g *Game) collideEnemiesWithPlayer() {
	pl := &g.Player
	for ei := 0; ei < len(g.Enemies); {
		e := &g.Enemies[ei]
		dx := e.X - pl.X
		dy := e.Y - pl.Y
		rr := e.Radius + g.Cfg.PlayerRadius
		if dx*dx+dy*dy >= rr*rr {
			ei++
			continue
		}

		if g.shellActive() {
			// The shell one-shots anything that touches it.
			g.killEnemy(ei)
			continue
		}

		pl.HP.Damage(g.Cfg.ContactDamage)
		nx, ny := normalize(dx, dy)
		e.Stun = 0.3
		e.VX = nx * 260
		e.VY = ny * 260
		g.Cam.AddShake(5, 0.2)
		g.Bus.Emit(Event{Type: EventHit, Data: SoundPayload{Volume: 1}})
		if pl.HP.IsDead() {
			g.triggerDeath()
			return
		}
		ei++
	}
}

func (g *Game) collidePickups() {
	pl := &g.Player

	for i := 0; i < len(g.Perks); {
		pk := &g.Perks[i]
		dx := pk.X - pl.X
		dy := pk.Y - pl.Y
		rr := g.Cfg.PerkRadius + g.Cfg.PlayerRadius
		if dx*dx+dy*dy < rr*rr {
			kind := pk.Kind
			g.removePerk(i)
			g.applyPerk(kind)
			continue
		}
		i++
	}

	for i := 0; i < len(g.Letters); {
		l := &g.Letters[i]
		dx := l.X - pl.X
		dy := l.Y - pl.Y
		rr := g.Cfg.LetterRadius + g.Cfg.PlayerRadius
		if dx*dx+dy*dy < rr*rr {
			g.Score += g.Cfg.LetterScore
			g.Particles.SpawnHitSparks(l.X, l.Y, dx, dy, 3)
			g.removeLetter(i)
			continue
		}
		i++
	}
}

// killEnemy is the single bookkeeping path for every scoring removal: score
// by type, kill count, size-scaled death burst and explosion sound, perk
// roll. Administrative clears bypass it deliberately.
func (g *Game) killEnemy(i int) {
	e := g.Enemies[i]
	cfg := &g.Cfg

	g.Score += scoreFor(cfg, e.Kind)
	g.Kills++

	mul := 1.0
	if cfg.StealthMode {
		mul = cfg.StealthBurst
	}
	count := int(cfg.ParticleBurst * mul * KillBurstBoost)
	g.Particles.SpawnBurst(e.X, e.Y, e.Col, count, 240)

	size := 1.0
	if cfg.EnemyRadius > 0 {
		size = e.Radius / cfg.EnemyRadius
	}
	g.Bus.Emit(Event{Type: EventExplosion, Data: SoundPayload{Size: size, Volume: 1}})
	g.Grid.ApplyImpulse(e.X, e.Y, 120, e.Radius*8)

	g.removeEnemy(i)

	if g.Rand.Float64() < cfg.PerkChanceOnKill {
		g.spawnPerkAt(e.X, e.Y)
	}
}

// explodeAt applies splash damage to every enemy within radius of the impact
// and funnels resulting deaths through killEnemy.
func (g *Game) explodeAt(x, y, radius, damage float64) {
	r2 := radius * radius
	for i := 0; i < len(g.Enemies); {
		e := &g.Enemies[i]
		dx := e.X - x
		dy := e.Y - y
		if dx*dx+dy*dy > r2 {
			i++
			continue
		}
		e.HP.Damage(damage)
		if e.HP.IsDead() {
			g.killEnemy(i)
			continue
		}
		i++
	}

	g.addShockwave(x, y, radius)
	g.Particles.SpawnBurst(x, y, Palette.BulletHot, 24, 300)
	g.Grid.ApplyImpulse(x, y, 200, radius*1.5)
	g.Cam.AddShake(math.Min(radius*0.06, 14), 0.3)
	g.Bus.Emit(Event{Type: EventExplosion, Data: SoundPayload{Size: radius / 100, Volume: 1}})
}

// ClearEnemies destroys every enemy with the standard explosion visuals but
// without score, kills, or perk rolls. Administrative entry point only.
func (g *Game) ClearEnemies() {
	cfg := &g.Cfg
	mul := 1.0
	if cfg.StealthMode {
		mul = cfg.StealthBurst
	}
	for i := range g.Enemies {
		e := &g.Enemies[i]
		count := int(cfg.ParticleBurst * mul * KillBurstBoost)
		g.Particles.SpawnBurst(e.X, e.Y, e.Col, count, 240)
		g.Grid.ApplyImpulse(e.X, e.Y, 120, e.Radius*8)
	}
	if len(g.Enemies) > 0 {
		g.Bus.Emit(Event{Type: EventExplosion, Data: SoundPayload{Size: 2, Volume: 1}})
	}
	g.Enemies = g.Enemies[:0]
}
