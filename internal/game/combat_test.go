package game

import "testing"

func TestProjectileKillAccounting(t *testing.T) {
	g := newTestGame()
	e := g.addEnemy(EnemyChaser, 300, 300)
	e.HP = NewHealth(40)

	g.Projectiles = append(g.Projectiles, Projectile{
		X: 300, Y: 300, Radius: 4, Damage: 50,
	})
	g.collideProjectiles()

	if len(g.Enemies) != 0 {
		t.Fatal("overkilled enemy survived")
	}
	if len(g.Projectiles) != 0 {
		t.Error("projectile survived a kill")
	}
	if g.Score != g.Cfg.ScoreChaser || g.Kills != 1 {
		t.Errorf("score=%d kills=%d, want %d and 1", g.Score, g.Kills, g.Cfg.ScoreChaser)
	}
	if g.Player.HP.Current != g.Cfg.MaxHealth {
		t.Error("player health changed during a projectile kill")
	}
}

func TestProjectileBounceBudget(t *testing.T) {
	for _, bounces := range []int{0, 2} {
		g := newTestGame()
		e := g.addEnemy(EnemyBrute, 300, 300)
		e.HP = NewHealth(10000) // survives every hit

		g.Projectiles = append(g.Projectiles, Projectile{
			X: 300, Y: 300, Radius: 4, Damage: 1, Bounces: bounces,
		})

		survived := 0
		for contact := 0; contact < bounces+1; contact++ {
			// Reposition onto the enemy; the bounce pushed it clear.
			g.Projectiles[0].X = e.X
			g.Projectiles[0].Y = e.Y
			g.collideProjectiles()
			if len(g.Projectiles) == 1 {
				survived++
			}
		}
		if survived != bounces {
			t.Errorf("bounces=%d: survived %d contacts, want %d", bounces, survived, bounces)
		}
		if len(g.Projectiles) != 0 {
			t.Errorf("bounces=%d: projectile outlived its budget", bounces)
		}
	}
}

func TestBounceRepositionsOutsideTarget(t *testing.T) {
	g := newTestGame()
	e := g.addEnemy(EnemyChaser, 300, 300)
	e.HP = NewHealth(10000)

	g.Projectiles = append(g.Projectiles, Projectile{
		X: 290, Y: 300, Radius: 4, Damage: 1, Bounces: 1, VX: 200,
	})
	g.collideProjectiles()

	if len(g.Projectiles) != 1 {
		t.Fatal("bouncing projectile removed")
	}
	p := &g.Projectiles[0]
	dx := e.X - p.X
	dy := e.Y - p.Y
	rr := e.Radius + p.Radius
	if dx*dx+dy*dy < rr*rr {
		t.Error("projectile still overlaps the enemy after the bounce")
	}
	if p.Bounces != 0 {
		t.Errorf("bounce budget = %d, want 0", p.Bounces)
	}
}

func TestExplosiveProjectileSplashes(t *testing.T) {
	g := newTestGame()
	hit := g.addEnemy(EnemyChaser, 300, 300)
	hit.HP = NewHealth(10)
	near := g.addEnemy(EnemyChaser, 300+g.Cfg.BlastRadius-10, 300)
	near.HP = NewHealth(10)
	far := g.addEnemy(EnemyChaser, 300+g.Cfg.BlastRadius+100, 300)
	far.HP = NewHealth(10)

	g.Projectiles = append(g.Projectiles, Projectile{
		X: 300, Y: 300, Radius: 4, Explosive: true,
	})
	g.collideProjectiles()

	if len(g.Projectiles) != 0 {
		t.Error("explosive projectile must consume on first contact")
	}
	if len(g.Enemies) != 1 {
		t.Fatalf("enemies = %d, want 1 survivor", len(g.Enemies))
	}
	if g.Enemies[0].X != 300+g.Cfg.BlastRadius+100 {
		t.Error("wrong enemy survived the splash")
	}
	if g.Kills != 2 {
		t.Errorf("kills = %d, want 2", g.Kills)
	}
	if len(g.Shockwaves) != 1 {
		t.Errorf("shockwaves = %d, want 1", len(g.Shockwaves))
	}
}

func TestContactDamageAndKnockback(t *testing.T) {
	g := newTestGame()
	e := g.addEnemy(EnemyChaser, g.Player.X+5, g.Player.Y)

	g.collideEnemiesWithPlayer()
	if g.Player.HP.Current != g.Cfg.MaxHealth-g.Cfg.ContactDamage {
		t.Errorf("player hp = %v", g.Player.HP.Current)
	}
	if e.Stun <= 0 {
		t.Error("contact should stun the enemy")
	}
	if e.VX <= 0 {
		t.Error("knockback should push the enemy away from the player")
	}
}

func TestShellOneShotsOnContact(t *testing.T) {
	g := newTestGame()
	g.Buffs.Shell = g.Now + 10
	g.addEnemy(EnemyBrute, g.Player.X+5, g.Player.Y)

	g.collideEnemiesWithPlayer()
	if len(g.Enemies) != 0 {
		t.Fatal("shell should destroy the touching enemy")
	}
	if g.Player.HP.Current != g.Cfg.MaxHealth {
		t.Error("shell contact must not damage the player")
	}
	if g.Kills != 1 || g.Score != g.Cfg.ScoreBrute {
		t.Errorf("shell kill not scored: kills=%d score=%d", g.Kills, g.Score)
	}
}

func TestContactDeathTriggersDying(t *testing.T) {
	g := newTestGame()
	g.Player.HP.Current = g.Cfg.ContactDamage
	g.addEnemy(EnemyChaser, g.Player.X+5, g.Player.Y)

	g.collideEnemiesWithPlayer()
	if g.State != StateDying {
		t.Fatal("lethal contact should start the dying sequence")
	}
}

func TestNukeRadius(t *testing.T) {
	g := newTestGame()
	px, py := g.Player.X, g.Player.Y
	g.addEnemy(EnemyChaser, px+100, py)
	g.addEnemy(EnemyChaser, px+300, py)
	g.addEnemy(EnemyChaser, px, py+g.Cfg.NukeRadius+100)

	g.nuke()

	if len(g.Enemies) != 1 {
		t.Fatalf("enemies = %d, want 1 outside the blast", len(g.Enemies))
	}
	if g.Kills != 2 || g.Score != 2*g.Cfg.ScoreChaser {
		t.Errorf("kills=%d score=%d, want 2 and %d", g.Kills, g.Score, 2*g.Cfg.ScoreChaser)
	}
	if len(g.Shockwaves) != 1 {
		t.Fatalf("shockwaves = %d, want 1", len(g.Shockwaves))
	}
	if g.Shockwaves[0].MaxRadius != g.Cfg.NukeRadius {
		t.Errorf("shockwave radius = %v, want %v", g.Shockwaves[0].MaxRadius, g.Cfg.NukeRadius)
	}
}

func TestClearEnemiesBypassesScoring(t *testing.T) {
	g := newTestGame()
	explosions := 0
	g.Bus.Subscribe(EventExplosion, func(Event) { explosions++ })

	g.addEnemy(EnemyChaser, 100, 100)
	g.addEnemy(EnemyBrute, 200, 200)
	g.addEnemy(EnemySniper, 300, 300)

	g.ClearEnemies()

	if len(g.Enemies) != 0 {
		t.Fatal("enemies remain after clear")
	}
	if g.Score != 0 || g.Kills != 0 {
		t.Errorf("administrative clear scored: score=%d kills=%d", g.Score, g.Kills)
	}
	if len(g.Perks) != 0 {
		t.Error("administrative clear rolled perks")
	}
	if explosions != 1 {
		t.Errorf("explosion events = %d, want 1 for the whole clear", explosions)
	}
}

func TestLetterPickupScores(t *testing.T) {
	g := newTestGame()
	g.Letters = append(g.Letters, FloatingLetter{
		X: g.Player.X + 3, Y: g.Player.Y, Ch: 'A', Life: 5,
	})
	g.collidePickups()

	if len(g.Letters) != 0 {
		t.Fatal("picked-up letter remains")
	}
	if g.Score != g.Cfg.LetterScore {
		t.Errorf("score = %d, want %d", g.Score, g.Cfg.LetterScore)
	}
	if g.Kills != 0 {
		t.Error("letter pickup counted as a kill")
	}
}
