package game

import "math"

type PerkKind int

const (
	PerkShell PerkKind = iota
	PerkFireRate
	PerkSpeed
	PerkSlow
	PerkExplosive
	PerkNuke
	PerkLife
	PerkWeaponSpread
	PerkWeaponRapid
	PerkWeaponCharge
	PerkWeaponSniper

	perkKindCount // must stay last
)

// IsWeapon reports whether picking this perk swaps the active weapon instead
// of applying an effect.
func (k PerkKind) IsWeapon() bool {
	return k >= PerkWeaponSpread
}

type Perk struct {
	X, Y float64
	Kind PerkKind
	Bob  float64 // idle float animation phase
}

// Buffs holds one expiry timestamp (simulation seconds) per timed modifier.
// A buff is active iff the clock has not passed its expiry.
type Buffs struct {
	Shell     float64
	FireRate  float64
	Speed     float64
	Slow      float64
	Explosive float64
}

func (g *Game) shellActive() bool     { return g.Now < g.Buffs.Shell }
func (g *Game) fireRateActive() bool  { return g.Now < g.Buffs.FireRate }
func (g *Game) speedActive() bool     { return g.Now < g.Buffs.Speed }
func (g *Game) slowActive() bool      { return g.Now < g.Buffs.Slow }
func (g *Game) explosiveActive() bool { return g.Now < g.Buffs.Explosive }

// maybeSpawnPerk drops an ambient perk at a random on-screen position on a
// fixed cadence, capped by MaxPerks. Kill-roll perks arrive independently.
func (g *Game) maybeSpawnPerk() {
	if g.Now-g.lastPerk < g.Cfg.PerkInterval {
		return
	}
	// At the cap the interval stays armed, so the drop lands as soon as a
	// slot frees up.
	if len(g.Perks) >= g.Cfg.MaxPerks {
		return
	}
	g.lastPerk = g.Now
	x := g.Rand.RangeF(40, g.W-40)
	y := g.Rand.RangeF(40, g.H-40)
	g.addPerk(x, y)
}

func (g *Game) spawnPerkAt(x, y float64) {
	if len(g.Perks) >= g.Cfg.MaxPerks {
		return
	}
	g.addPerk(clampF(x, 20, g.W-20), clampF(y, 20, g.H-20))
}

func (g *Game) addPerk(x, y float64) {
	kind := PerkKind(g.Rand.Intn(int(perkKindCount)))
	g.Perks = append(g.Perks, Perk{X: x, Y: y, Kind: kind, Bob: g.Rand.RangeF(0, 2*math.Pi)})
}

func (g *Game) removePerk(i int) {
	g.Perks[i] = g.Perks[len(g.Perks)-1]
	g.Perks = g.Perks[:len(g.Perks)-1]
}

// applyPerk resolves a picked-up perk: weapon swap, instant effect, or timed
// buff via expiry stamp.
func (g *Game) applyPerk(kind PerkKind) {
	cfg := &g.Cfg

	switch kind {
	case PerkWeaponSpread:
		g.Player.Weapon = WeaponSpread
	case PerkWeaponRapid:
		g.Player.Weapon = WeaponRapid
	case PerkWeaponCharge:
		g.Player.Weapon = WeaponCharge
	case PerkWeaponSniper:
		g.Player.Weapon = WeaponSniper
	case PerkNuke:
		g.nuke()
	case PerkLife:
		g.Player.HP.Heal(cfg.HealAmount)
	case PerkShell:
		g.Buffs.Shell = g.Now + cfg.ShellDuration
	case PerkFireRate:
		g.Buffs.FireRate = g.Now + cfg.FireRateDuration
	case PerkSpeed:
		g.Buffs.Speed = g.Now + cfg.SpeedDuration
	case PerkSlow:
		g.Buffs.Slow = g.Now + cfg.SlowDuration
	case PerkExplosive:
		g.Buffs.Explosive = g.Now + cfg.ExplosiveDuration
	}

	g.Bus.Emit(Event{Type: EventPowerup, Data: SoundPayload{Volume: 1}})
}

// nuke destroys every enemy within the configured blast radius of the player,
// scoring each through the standard kill path, with one shockwave and a heavy
// screen shake.
func (g *Game) nuke() {
	cfg := &g.Cfg
	px, py := g.Player.X, g.Player.Y
	r2 := cfg.NukeRadius * cfg.NukeRadius

	for i := 0; i < len(g.Enemies); {
		e := &g.Enemies[i]
		dx := e.X - px
		dy := e.Y - py
		if dx*dx+dy*dy <= r2 {
			g.killEnemy(i)
			continue
		}
		i++
	}

	g.addShockwave(px, py, cfg.NukeRadius)
	g.Grid.ApplyImpulse(px, py, 400, cfg.NukeRadius)
	g.Cam.AddShake(20, 0.6)
	g.Bus.Emit(Event{Type: EventExplosion, Data: SoundPayload{Size: cfg.NukeRadius / 100, Volume: 1}})
}
