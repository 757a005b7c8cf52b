package game

import (
	"math"
	"testing"
)

func TestApplyPerkBuffStamps(t *testing.T) {
	g := newTestGame()
	g.Now = 100

	tests := []struct {
		name   string
		kind   PerkKind
		stamp  *float64
		length float64
	}{
		{"shell", PerkShell, &g.Buffs.Shell, g.Cfg.ShellDuration},
		{"fire rate", PerkFireRate, &g.Buffs.FireRate, g.Cfg.FireRateDuration},
		{"speed", PerkSpeed, &g.Buffs.Speed, g.Cfg.SpeedDuration},
		{"slow", PerkSlow, &g.Buffs.Slow, g.Cfg.SlowDuration},
		{"explosive", PerkExplosive, &g.Buffs.Explosive, g.Cfg.ExplosiveDuration},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g.applyPerk(tt.kind)
			if *tt.stamp != g.Now+tt.length {
				t.Errorf("expiry = %v, want %v", *tt.stamp, g.Now+tt.length)
			}
		})
	}
}

func TestBuffExpiry(t *testing.T) {
	g := newTestGame()
	g.applyPerk(PerkSpeed)
	if !g.speedActive() {
		t.Fatal("buff inactive immediately after pickup")
	}
	g.Now += g.Cfg.SpeedDuration
	if g.speedActive() {
		t.Error("buff active at its expiry instant")
	}
}

func TestApplyPerkWeaponSwap(t *testing.T) {
	tests := []struct {
		kind PerkKind
		want WeaponKind
	}{
		{PerkWeaponSpread, WeaponSpread},
		{PerkWeaponRapid, WeaponRapid},
		{PerkWeaponCharge, WeaponCharge},
		{PerkWeaponSniper, WeaponSniper},
	}
	for _, tt := range tests {
		g := newTestGame()
		g.applyPerk(tt.kind)
		if g.Player.Weapon != tt.want {
			t.Errorf("applyPerk(%v): weapon = %v, want %v", tt.kind, g.Player.Weapon, tt.want)
		}
	}
}

func TestApplyPerkLifeHealsCapped(t *testing.T) {
	g := newTestGame()
	g.Player.HP.Current = g.Cfg.MaxHealth - 5
	g.applyPerk(PerkLife)
	if g.Player.HP.Current != g.Cfg.MaxHealth {
		t.Errorf("hp = %v, want capped at %v", g.Player.HP.Current, g.Cfg.MaxHealth)
	}
}

func TestPerkSpawnCap(t *testing.T) {
	g := newTestGame()
	for i := 0; i < g.Cfg.MaxPerks; i++ {
		g.addPerk(100, 100)
	}
	g.spawnPerkAt(200, 200)
	if len(g.Perks) != g.Cfg.MaxPerks {
		t.Errorf("perks = %d, want cap %d", len(g.Perks), g.Cfg.MaxPerks)
	}
}

func TestPerkDripWaitsOutTheCap(t *testing.T) {
	g := newTestGame()
	for i := 0; i < g.Cfg.MaxPerks; i++ {
		g.addPerk(100, 100)
	}

	// An elapsed interval at the cap must not spawn, and must not disarm
	// the timer.
	g.Now = g.Cfg.PerkInterval
	g.maybeSpawnPerk()
	if len(g.Perks) != g.Cfg.MaxPerks {
		t.Fatalf("perks = %d, want cap %d", len(g.Perks), g.Cfg.MaxPerks)
	}
	if g.lastPerk != 0 {
		t.Error("blocked drop consumed the interval")
	}

	// Once a slot frees up the pending drop lands on the next attempt.
	g.removePerk(0)
	g.maybeSpawnPerk()
	if len(g.Perks) != g.Cfg.MaxPerks {
		t.Errorf("perks = %d after a slot freed, want %d", len(g.Perks), g.Cfg.MaxPerks)
	}
	if g.lastPerk != g.Now {
		t.Error("successful drop did not rearm the interval")
	}
}

func TestSpeedBuffOrdering(t *testing.T) {
	// The speed multiplier applies before time-slow: x1.5 then x0.5.
	cfg := DefaultConfig()
	in := InputState{Right: true}
	dt := 0.1

	move := func(speedBuff, slowBuff bool) float64 {
		p := NewPlayer(100, 100, &cfg)
		p.Move(dt, in, &cfg, speedBuff, slowBuff, 1200, 800)
		return p.X - 100
	}

	base := move(false, false)
	if math.Abs(base-cfg.PlayerSpeed*dt) > 1e-9 {
		t.Fatalf("base move = %v", base)
	}
	if d := move(true, false); math.Abs(d-base*1.5) > 1e-9 {
		t.Errorf("speed buff move = %v, want %v", d, base*1.5)
	}
	if d := move(false, true); math.Abs(d-base*0.5) > 1e-9 {
		t.Errorf("slow move = %v, want %v", d, base*0.5)
	}
	if d := move(true, true); math.Abs(d-base*0.75) > 1e-9 {
		t.Errorf("stacked move = %v, want %v", d, base*0.75)
	}
}

func TestFocusHalvesSpeed(t *testing.T) {
	cfg := DefaultConfig()
	p := NewPlayer(100, 100, &cfg)
	p.Move(0.1, InputState{Right: true, Focus: true}, &cfg, false, false, 1200, 800)
	want := 100 + cfg.PlayerSpeed*0.5*0.1
	if math.Abs(p.X-want) > 1e-9 {
		t.Errorf("focus move: x = %v, want %v", p.X, want)
	}
}

func TestDiagonalMovementNormalized(t *testing.T) {
	cfg := DefaultConfig()
	p := NewPlayer(100, 100, &cfg)
	p.Move(0.1, InputState{Right: true, Down: true}, &cfg, false, false, 1200, 800)
	dist := math.Hypot(p.X-100, p.Y-100)
	if math.Abs(dist-cfg.PlayerSpeed*0.1) > 1e-9 {
		t.Errorf("diagonal distance = %v, want %v", dist, cfg.PlayerSpeed*0.1)
	}
}

func TestStealthVisibility(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StealthMode = true
	p := NewPlayer(100, 100, &cfg)

	p.Move(0.25, InputState{Right: true}, &cfg, false, false, 1200, 800)
	if math.Abs(p.Visibility-0.5) > 1e-9 {
		t.Errorf("visibility after moving = %v, want 0.5", p.Visibility)
	}

	p.Move(0.3, InputState{}, &cfg, false, false, 1200, 800)
	if math.Abs(p.Visibility-0.2) > 1e-9 {
		t.Errorf("visibility after standing = %v, want 0.2", p.Visibility)
	}
}

func TestFireIntervalModifiers(t *testing.T) {
	g := newTestGame()
	base := g.Cfg.FireInterval

	tests := []struct {
		name     string
		weapon   WeaponKind
		fireRate bool
		explo    bool
		want     float64
	}{
		{"default", WeaponDefault, false, false, base},
		{"rapid", WeaponRapid, false, false, base / 3},
		{"spread", WeaponSpread, false, false, base * 3},
		{"charge", WeaponCharge, false, false, 2.0},
		{"fire rate buff", WeaponDefault, true, false, base / 2},
		{"explosive floor", WeaponDefault, true, true, 0.4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g.Player.Weapon = tt.weapon
			g.Buffs.FireRate = 0
			g.Buffs.Explosive = 0
			if tt.fireRate {
				g.Buffs.FireRate = g.Now + 10
			}
			if tt.explo {
				g.Buffs.Explosive = g.Now + 10
			}
			if got := g.fireInterval(); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("interval = %v, want %v", got, tt.want)
			}
		})
	}
}
