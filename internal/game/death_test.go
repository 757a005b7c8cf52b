package game

import "testing"

func TestTriggerDeathReportsThenResets(t *testing.T) {
	g := newTestGame()
	var payloads []GameOverPayload
	g.Bus.Subscribe(EventGameOver, func(e Event) {
		payloads = append(payloads, e.Data.(GameOverPayload))
	})

	g.Now = 42
	g.Score = 17
	g.Kills = 6
	g.addEnemy(EnemyChaser, 100, 100)
	g.Projectiles = append(g.Projectiles, Projectile{X: 200, Y: 200})
	g.addPerk(300, 300)
	g.Letters = append(g.Letters, FloatingLetter{X: 400, Y: 400, Ch: 'A', Life: 5})
	g.Buffs.Shell = g.Now + 100

	g.triggerDeath()

	if len(payloads) != 1 {
		t.Fatalf("game-over events = %d, want 1", len(payloads))
	}
	p := payloads[0]
	if p.Score != 17 || p.Kills != 6 || p.Seconds != 42 {
		t.Errorf("payload = %+v, want pre-reset 17/6/42", p)
	}

	if g.State != StateDying {
		t.Fatal("state not dying")
	}
	if g.Score != 0 {
		t.Error("score not reset")
	}
	if g.Kills != 6 {
		t.Errorf("kills = %d, want 6 to persist across deaths", g.Kills)
	}
	if len(g.Enemies)+len(g.Projectiles)+len(g.Perks)+len(g.Letters)+len(g.Forming) != 0 {
		t.Error("arena pools not cleared")
	}
	if g.shellActive() {
		t.Error("buffs survived death")
	}
	if got := g.Particles.DeathCount(); got != DeathParticleCount {
		t.Errorf("death particles = %d, want %d", got, DeathParticleCount)
	}

	// A second trigger while dying is a no-op.
	g.triggerDeath()
	if len(payloads) != 1 {
		t.Error("dying state re-triggered a game over")
	}
}

func TestKillCountSurvivesRespawn(t *testing.T) {
	g := newTestGame()
	g.Step(0)
	g.Kills = 7
	g.triggerDeath()
	if g.Kills != 7 {
		t.Fatalf("kills after death = %d, want 7", g.Kills)
	}

	now := 0.0
	for g.State == StateDying && now < DeathGatherDelay+30 {
		now += 0.05
		g.Step(now)
	}
	if g.State != StateAlive {
		t.Fatal("player did not respawn before the deadline")
	}
	if g.Kills != 7 {
		t.Errorf("kills after respawn = %d, want 7", g.Kills)
	}
	if g.Score != 0 {
		t.Error("score carried across the respawn")
	}
}

func TestDeathReleasesFormationClaims(t *testing.T) {
	g := newTestGame()
	settleParticles(g, 250, 250, 12)
	g.Now = AggregateScanEvery
	g.scanAggregation()
	if len(g.Forming) != 1 {
		t.Fatal("no formation to interrupt")
	}

	g.triggerDeath()
	for i := range g.Particles.P {
		if g.Particles.P[i].FormingID != 0 {
			t.Fatal("death left a particle claimed by a dead formation")
		}
	}
}

func TestRespawnAfterGather(t *testing.T) {
	g := newTestGame()
	g.Step(0)
	g.Score = 9
	g.triggerDeath()
	gx, gy := g.death.GatherX, g.death.GatherY

	// Drive the sim through the drift, gather, and respawn phases.
	deadline := DeathGatherDelay + 30.0
	now := 0.0
	for g.State == StateDying && now < deadline {
		now += 0.05
		g.Step(now)
	}
	if g.State != StateAlive {
		t.Fatal("player did not respawn before the deadline")
	}
	if now < DeathGatherDelay {
		t.Errorf("respawned at %vs, before the gather delay", now)
	}

	if g.Player.X != gx || g.Player.Y != gy {
		t.Errorf("respawn at (%v, %v), want gather point (%v, %v)", g.Player.X, g.Player.Y, gx, gy)
	}
	if g.Player.HP.Current != g.Cfg.MaxHealth {
		t.Errorf("respawn hp = %v, want full", g.Player.HP.Current)
	}
	if g.Player.Energy != 100 {
		t.Errorf("respawn energy = %v, want 100", g.Player.Energy)
	}
	if g.Score != 0 {
		t.Error("score carried across the respawn")
	}
	if g.Particles.DeathCount() != 0 {
		t.Error("death particles survived the respawn")
	}
}

func TestDyingSkipsCombatPipeline(t *testing.T) {
	g := newTestGame()
	g.Step(0)
	g.triggerDeath()

	// Enemies cannot exist while dying, and the spawner must stay quiet.
	for i := 1; i <= 40; i++ {
		g.Step(float64(i) * 0.1)
		if g.State != StateDying {
			break
		}
		if len(g.Enemies) != 0 {
			t.Fatal("spawner ran during the dying sequence")
		}
	}
}
