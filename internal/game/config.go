package game

// Window defaults.
const (
	WindowWidth  = 1280
	WindowHeight = 800
)

// Fixed engine constants not exposed as tunables.
const (
	GridStiffness  = 8.0  // spring force per unit displacement
	GridDamping    = 0.92 // velocity multiplier per tick
	MaxParticles   = 6000
	StatsInterval  = 0.1 // wall seconds between HUD snapshots
	MaxTickSeconds = 0.1 // dt clamp for tab-switch stalls

	AggregateScanEvery = 30.0  // seconds between particle cluster scans
	AggregateCellSize  = 100.0 // bucket size for cluster detection
	AggregateMinCount  = 10    // particles needed to start a formation
	AggregateFormTime  = 2.0   // seconds from claim to live enemy
	AggregateRestSpeed = 10.0  // particles faster than this are not "settled"

	DeathGatherDelay   = 5.0 // seconds until death particles regather
	DeathParticleCount = 100

	SpreadShotCount = 5
	SpreadShotArc   = 0.5 // radians across the full fan

	KillBurstBoost = 5.0 // global multiplier on death particle bursts
)

// Config carries every hot-swappable tunable. It is read at tick time; see
// Game.ApplyConfig for the mid-run clamp rules.
type Config struct {
	// Player.
	MaxHealth    float64
	PlayerSpeed  float64
	PlayerRadius float64
	EnergyCost   float64 // energy per shot in drain-bullets mode

	// Modes.
	StealthMode  bool
	DrainBullets bool

	// Enemies.
	EnemySpeed    float64
	EnemyRadius   float64
	EnemyHealth   float64
	ContactDamage float64 // enemy touching the player
	BruteAfter    float64 // seconds before brutes may spawn
	BruteChance   float64
	BruteHealth   float64
	BruteRadius   float64
	BruteSpeed    float64

	// Spawning.
	SpawnInterval    float64 // initial seconds between enemy spawns
	SpawnDecrement   float64 // interval reduction per spawn
	SpawnFloor       float64
	SpawnMargin      float64 // extra distance beyond the off-screen ring
	PerkInterval     float64
	MaxPerks         int
	PerkChanceOnKill float64
	PerkRadius       float64
	QuoteInterval    float64
	QuoteMaxWidth    float64 // pixels before word wrap
	LetterLife       float64
	LetterRadius     float64
	LetterScore      int

	// Weapons.
	DefaultWeapon WeaponKind
	FireInterval  float64 // base seconds between shots
	BulletSpeed   float64
	BulletRadius  float64
	BulletDamage  float64
	MaxBounces    int
	BlastRadius   float64 // explosive projectile splash
	BlastDamage   float64
	SniperDamage  float64

	// Buffs.
	ShellDuration     float64
	FireRateDuration  float64
	SpeedDuration     float64
	SlowDuration      float64
	ExplosiveDuration float64
	NukeRadius        float64
	HealAmount        float64

	// Scoring.
	ScoreChaser    int
	ScoreBrute     int
	ScoreAggregate int
	ScoreSniper    int

	// Stealth snipers.
	SniperRange     float64
	SniperAimTime   float64
	SniperHitDamage float64

	// Visuals.
	GridSpacing   float64
	ParticleBurst float64 // base death burst count per enemy
	StealthBurst  float64 // burst multiplier in stealth mode
}

// DefaultConfig returns the tuning the game ships with.
func DefaultConfig() Config {
	return Config{
		MaxHealth:    100,
		PlayerSpeed:  220,
		PlayerRadius: 10,
		EnergyCost:   2,

		EnemySpeed:    70,
		EnemyRadius:   14,
		EnemyHealth:   20,
		ContactDamage: 10,
		BruteAfter:    60,
		BruteChance:   0.2,
		BruteHealth:   60,
		BruteRadius:   22,
		BruteSpeed:    50,

		SpawnInterval:    2.0,
		SpawnDecrement:   0.02,
		SpawnFloor:       0.05,
		SpawnMargin:      60,
		PerkInterval:     14,
		MaxPerks:         3,
		PerkChanceOnKill: 0.08,
		PerkRadius:       12,
		QuoteInterval:    45,
		QuoteMaxWidth:    520,
		LetterLife:       12,
		LetterRadius:     8,
		LetterScore:      5,

		FireInterval: 0.25,
		BulletSpeed:  520,
		BulletRadius: 4,
		BulletDamage: 10,
		MaxBounces:   2,
		BlastRadius:  90,
		BlastDamage:  30,
		SniperDamage: 60,

		ShellDuration:     6,
		FireRateDuration:  8,
		SpeedDuration:     8,
		SlowDuration:      6,
		ExplosiveDuration: 10,
		NukeRadius:        400,
		HealAmount:        30,

		ScoreChaser:    1,
		ScoreBrute:     3,
		ScoreAggregate: 5,
		ScoreSniper:    4,

		SniperRange:     420,
		SniperAimTime:   1.2,
		SniperHitDamage: 25,

		GridSpacing:   40,
		ParticleBurst: 8,
		StealthBurst:  2.0,
	}
}
