package game

// Game owns every entity pool and is the only clock authority. All mutation
// happens inside one Step call per tick; external collaborators observe
// through the event bus only.
type Game struct {
	Cfg  Config
	W, H float64
	Rand *Rand
	Bus  *EventBus
	Cam  Camera

	Player      Player
	Enemies     []Enemy
	Projectiles []Projectile
	Particles   *ParticleSystem
	Perks       []Perk
	Letters     []FloatingLetter
	Shockwaves  []Shockwave
	Obstacles   []Obstacle
	Forming     []FormingEnemy
	Grid        *Grid

	Input  InputState
	Buffs  Buffs
	Paused bool
	State  LifeState

	Now   float64 // simulation seconds; frozen while paused
	Score int
	Kills int

	nextID        int
	runStart      float64
	spawnInterval float64
	lastSpawn     float64
	lastPerk      float64
	lastQuote     float64
	lastAggScan   float64
	lastFire      float64
	death         deathInfo

	started   bool
	lastWall  float64
	statsWall float64
}

func NewGame(cfg Config, width, height float64, seed uint64) *Game {
	g := &Game{
		Cfg:           cfg,
		W:             width,
		H:             height,
		Rand:          NewRand(seed),
		Bus:           NewEventBus(),
		Particles:     NewParticleSystem(MaxParticles, splitmix64(seed)),
		Grid:          NewGrid(width, height, cfg.GridSpacing),
		nextID:        1,
		spawnInterval: cfg.SpawnInterval,
	}
	g.Player = NewPlayer(width/2, height/2, &g.Cfg)
	g.Player.Weapon = cfg.DefaultWeapon
	g.regenObstacles()
	return g
}

// SetInput replaces the input snapshot consulted on the next tick.
// Last write wins; nothing queues.
func (g *Game) SetInput(in InputState) {
	g.Input = in
}

func (g *Game) TogglePause() {
	g.Paused = !g.Paused
}

// Step advances the simulation given a wall-clock timestamp in seconds. The
// first call establishes the dt baseline. Paused steps mutate nothing but
// still report stats.
func (g *Game) Step(now float64) {
	if !g.started {
		g.started = true
		g.lastWall = now
		g.statsWall = now - StatsInterval
	}
	dt := clampF(now-g.lastWall, 0, MaxTickSeconds)
	g.lastWall = now

	if !g.Paused {
		g.advance(dt)
	}

	if now-g.statsWall >= StatsInterval {
		g.statsWall = now
		g.Bus.Emit(Event{Type: EventStats, Data: StatsPayload{
			Health: g.Player.HP.Current,
			Score:  g.Score,
			Kills:  g.Kills,
		}})
	}
}

func (g *Game) advance(dt float64) {
	g.Now += dt
	g.Cam.UpdateShake(dt, splitmix64(uint64(g.Now*1000)))
	g.Grid.Update(dt)
	g.updateShockwaves(dt)
	g.Particles.Update(dt)
	g.updateForming(dt)

	if g.State == StateDying {
		g.updateDeath(dt)
		return
	}

	g.Player.Move(dt, g.Input, &g.Cfg, g.speedActive(), g.slowActive(), g.W, g.H)

	g.maybeSpawnEnemy()
	g.maybeSpawnPerk()
	g.maybeSpawnQuote()

	if g.Input.Firing && g.Now-g.lastFire >= g.fireInterval() {
		g.lastFire = g.Now
		g.fire()
		if g.State != StateAlive {
			return
		}
	}

	g.updateEnemies(dt)
	if g.State != StateAlive {
		return
	}
	g.updateProjectiles(dt)
	g.resolveCollisions()
	if g.State != StateAlive {
		return
	}

	g.scanAggregation()
	g.updateLetters(dt)
	g.sweepDeadEnemies()
}

// sweepDeadEnemies funnels any enemy left at zero hp through the kill path so
// none survives a completed tick. Normal damage paths kill inline; this is
// the backstop.
func (g *Game) sweepDeadEnemies() {
	for i := 0; i < len(g.Enemies); {
		if g.Enemies[i].HP.IsDead() {
			g.killEnemy(i)
			continue
		}
		i++
	}
}

// Resize updates the viewport and regenerates viewport-derived state.
func (g *Game) Resize(width, height float64) {
	g.W = width
	g.H = height
	g.Grid.Resize(width, height, g.Cfg.GridSpacing)
	g.regenObstacles()
}

// ApplyConfig hot-swaps the tunables mid-run. Current health clamps down to a
// lowered max but is never raised; the spawn interval only tightens, so
// difficulty never regresses below what the run already reached.
func (g *Game) ApplyConfig(cfg Config) {
	old := g.Cfg
	g.Cfg = cfg

	g.Player.HP.Max = cfg.MaxHealth
	if g.Player.HP.Current > cfg.MaxHealth {
		g.Player.HP.Current = cfg.MaxHealth
	}

	if cfg.SpawnInterval < g.spawnInterval {
		g.spawnInterval = cfg.SpawnInterval
	}

	if cfg.GridSpacing != old.GridSpacing {
		g.Grid.Resize(g.W, g.H, cfg.GridSpacing)
	}
	if cfg.StealthMode != old.StealthMode {
		g.regenObstacles()
	}
	if cfg.DefaultWeapon != old.DefaultWeapon {
		g.Player.Weapon = cfg.DefaultWeapon
	}
}
