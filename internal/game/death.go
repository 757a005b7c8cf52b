package game

import "math"

type LifeState int

const (
	StateAlive LifeState = iota
	StateDying
)

type deathInfo struct {
	GatherX, GatherY float64
	GatherAt         float64 // simulation time the regathering begins
}

// triggerDeath starts the dying sequence: report final stats once, clear the
// arena, scatter the player into death particles, and schedule the regather
// point. The running score and difficulty reset here; the snapshot reported
// out carries the pre-reset score. The kill count persists for the process
// report.
func (g *Game) triggerDeath() {
	if g.State != StateAlive {
		return
	}
	g.State = StateDying

	g.Bus.Emit(Event{Type: EventGameOver, Data: GameOverPayload{
		Score:   g.Score,
		Kills:   g.Kills,
		Seconds: int(g.Now - g.runStart),
	}})

	g.Enemies = g.Enemies[:0]
	g.Projectiles = g.Projectiles[:0]
	g.Perks = g.Perks[:0]
	g.Letters = g.Letters[:0]
	g.Forming = g.Forming[:0]
	g.sweepOrphanClaims()

	g.Buffs = Buffs{}
	g.Score = 0
	g.runStart = g.Now
	g.spawnInterval = g.Cfg.SpawnInterval
	g.lastSpawn = g.Now

	px, py := g.Player.X, g.Player.Y
	g.addShockwave(px, py, math.Max(g.W, g.H)*0.4)
	g.Particles.SpawnDeathBurst(px, py, Palette.DeathDust, DeathParticleCount)
	g.Cam.AddShake(18, 0.8)
	g.Bus.Emit(Event{Type: EventExplosion, Data: SoundPayload{Size: 3, Volume: 1}})

	g.death = deathInfo{
		GatherX:  g.Rand.RangeF(100, g.W-100),
		GatherY:  g.Rand.RangeF(100, g.H-100),
		GatherAt: g.Now + DeathGatherDelay,
	}

	g.regenObstacles()
}

// updateDeath drives the dying animation and completes the respawn once the
// death particles have regathered.
func (g *Game) updateDeath(dt float64) {
	gathering := g.Now >= g.death.GatherAt
	done := g.Particles.UpdateDeath(dt, gathering, g.death.GatherX, g.death.GatherY)

	if gathering && done {
		g.Particles.PurgeDeath()
		g.Player.Respawn(g.death.GatherX, g.death.GatherY, &g.Cfg)
		g.State = StateAlive
		g.lastSpawn = g.Now
	}
}
