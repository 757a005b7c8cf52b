package game

import "math"

type EnemyKind int

const (
	EnemyChaser EnemyKind = iota
	EnemyBrute
	EnemyAggregate
	EnemySniper
)

// SniperPhase is the stealth sniper's behavior state.
type SniperPhase int

const (
	SniperIdle SniperPhase = iota
	SniperMoving
	SniperAiming
)

type Enemy struct {
	ID     int
	X, Y   float64
	VX, VY float64
	Radius float64
	Speed  float64
	HP     Health
	Kind   EnemyKind
	Col    RGB
	Stun   float64 // hit-stun seconds; knockback velocity decays while set

	// Sniper fields.
	Phase       SniperPhase
	PhaseTimer  float64
	AimProgress float64
	WayX, WayY  float64
}

func scoreFor(cfg *Config, kind EnemyKind) int {
	switch kind {
	case EnemyChaser:
		return cfg.ScoreChaser
	case EnemyBrute:
		return cfg.ScoreBrute
	case EnemyAggregate:
		return cfg.ScoreAggregate
	case EnemySniper:
		return cfg.ScoreSniper
	}
	return 0
}

// maybeSpawnEnemy runs the time-gated spawner. Difficulty tightens per spawn
// except in stealth mode; the time-slow buff doubles the effective interval.
func (g *Game) maybeSpawnEnemy() {
	interval := g.spawnInterval
	if g.slowActive() {
		interval *= 2
	}
	if g.Now-g.lastSpawn < interval {
		return
	}
	g.lastSpawn = g.Now

	if !g.Cfg.StealthMode {
		g.spawnInterval = math.Max(g.Cfg.SpawnFloor, g.spawnInterval-g.Cfg.SpawnDecrement)
	}

	kind := EnemyChaser
	if g.Cfg.StealthMode {
		kind = EnemySniper
	} else if g.Now-g.runStart > g.Cfg.BruteAfter && g.Rand.Float64() < g.Cfg.BruteChance {
		kind = EnemyBrute
	}
	g.spawnEnemyOffscreen(kind)
}

// spawnEnemyOffscreen places a new enemy on a ring far enough out that it
// always enters from off-screen.
func (g *Game) spawnEnemyOffscreen(kind EnemyKind) {
	ringR := 1.5*math.Max(g.W, g.H) + g.Cfg.SpawnMargin
	ang := g.Rand.Angle()
	x := g.Player.X + math.Cos(ang)*ringR
	y := g.Player.Y + math.Sin(ang)*ringR
	g.addEnemy(kind, x, y)
}

func (g *Game) addEnemy(kind EnemyKind, x, y float64) *Enemy {
	cfg := &g.Cfg
	e := Enemy{
		ID:   g.nextID,
		X:    x,
		Y:    y,
		Kind: kind,
	}
	g.nextID++

	switch kind {
	case EnemyChaser:
		e.Radius = cfg.EnemyRadius
		e.Speed = cfg.EnemySpeed
		e.HP = NewHealth(cfg.EnemyHealth)
		e.Col = Palette.Chaser
	case EnemyBrute:
		e.Radius = cfg.BruteRadius
		e.Speed = cfg.BruteSpeed
		e.HP = NewHealth(cfg.BruteHealth)
		e.Col = Palette.Brute
	case EnemyAggregate:
		// Caller overwrites radius/health from the formation size.
		e.Radius = cfg.EnemyRadius
		e.Speed = cfg.EnemySpeed * 0.5
		e.HP = NewHealth(cfg.EnemyHealth)
		e.Col = Palette.Aggregate
	case EnemySniper:
		e.Radius = cfg.EnemyRadius
		e.Speed = cfg.EnemySpeed * 0.8
		e.HP = NewHealth(cfg.EnemyHealth)
		e.Col = Palette.Sniper
		e.Phase = SniperIdle
		e.PhaseTimer = g.Rand.RangeF(0.5, 2.0)
	}
	g.Enemies = append(g.Enemies, e)
	return &g.Enemies[len(g.Enemies)-1]
}

// updateEnemies advances AI and movement for every enemy.
func (g *Game) updateEnemies(dt float64) {
	speedMul := 1.0
	if g.slowActive() {
		speedMul = 0.5
	}

	for i := range g.Enemies {
		e := &g.Enemies[i]

		if e.Stun > 0 {
			// Knockback carries the enemy; AI resumes when the stun ends.
			e.Stun -= dt
			e.VX *= 0.9
			e.VY *= 0.9
			e.X += e.VX * dt
			e.Y += e.VY * dt
			continue
		}

		switch e.Kind {
		case EnemyChaser, EnemyBrute, EnemyAggregate:
			ux, uy := normalize(g.Player.X-e.X, g.Player.Y-e.Y)
			e.VX = ux * e.Speed * speedMul
			e.VY = uy * e.Speed * speedMul
			e.X += e.VX * dt
			e.Y += e.VY * dt
		case EnemySniper:
			g.updateSniper(e, dt, speedMul)
		}
	}
}

// updateSniper runs the idle/moving/aiming state machine. Snipers hold
// position and only commit to a shot with clear line of sight on a visible
// player.
func (g *Game) updateSniper(e *Enemy, dt, speedMul float64) {
	canSee := g.sniperCanSee(e)

	switch e.Phase {
	case SniperIdle:
		e.PhaseTimer -= dt
		if canSee {
			e.Phase = SniperAiming
			e.AimProgress = 0
			return
		}
		if e.PhaseTimer <= 0 {
			e.WayX = g.Rand.RangeF(e.Radius, g.W-e.Radius)
			e.WayY = g.Rand.RangeF(e.Radius, g.H-e.Radius)
			e.Phase = SniperMoving
		}

	case SniperMoving:
		if canSee {
			e.Phase = SniperAiming
			e.AimProgress = 0
			return
		}
		dx := e.WayX - e.X
		dy := e.WayY - e.Y
		if math.Hypot(dx, dy) < 8 {
			e.Phase = SniperIdle
			e.PhaseTimer = g.Rand.RangeF(1.0, 3.0)
			return
		}
		ux, uy := normalize(dx, dy)
		e.X += ux * e.Speed * speedMul * dt
		e.Y += uy * e.Speed * speedMul * dt

	case SniperAiming:
		if !canSee {
			e.Phase = SniperIdle
			e.PhaseTimer = g.Rand.RangeF(0.5, 1.5)
			return
		}
		e.AimProgress += dt
		if e.AimProgress >= g.Cfg.SniperAimTime {
			g.Player.HP.Damage(g.Cfg.SniperHitDamage)
			g.Bus.Emit(Event{Type: EventShoot, Data: SoundPayload{Weapon: WeaponSniper, Volume: 0.6}})
			g.Bus.Emit(Event{Type: EventHit, Data: SoundPayload{Volume: 1}})
			g.Cam.AddShake(6, 0.2)
			g.Particles.SpawnHitSparks(g.Player.X, g.Player.Y, e.X-g.Player.X, e.Y-g.Player.Y, 6)
			e.Phase = SniperIdle
			e.PhaseTimer = g.Rand.RangeF(1.5, 3.0)
			if g.Player.HP.IsDead() {
				g.triggerDeath()
			}
		}
	}
}

// sniperCanSee reports whether the player is in range, visible enough, and
// not occluded by an obstacle.
func (g *Game) sniperCanSee(e *Enemy) bool {
	dx := g.Player.X - e.X
	dy := g.Player.Y - e.Y
	if math.Hypot(dx, dy) > g.Cfg.SniperRange {
		return false
	}
	if g.Cfg.StealthMode && g.Player.Visibility < 0.3 {
		return false
	}
	return !g.lineBlocked(e.X, e.Y, g.Player.X, g.Player.Y)
}

// removeEnemy swap-removes the enemy at index i with no bookkeeping. All
// scoring paths go through killEnemy instead.
func (g *Game) removeEnemy(i int) {
	g.Enemies[i] = g.Enemies[len(g.Enemies)-1]
	g.Enemies = g.Enemies[:len(g.Enemies)-1]
}

func (g *Game) enemyByID(id int) *Enemy {
	for i := range g.Enemies {
		if g.Enemies[i].ID == id {
			return &g.Enemies[i]
		}
	}
	return nil
}
