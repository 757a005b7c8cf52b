package game

import "math"

// SpawnBurst emits an outward ring of sparks, the standard kill/explosion
// visual.
func (ps *ParticleSystem) SpawnBurst(x, y float64, col RGB, count int, speed float64) {
	r := NewRand(hash2D(ps.seed^0xA5A5A5A5, int(x), int(y)) ^ uint64(count))
	for i := 0; i < count; i++ {
		ang := r.Angle()
		spd := r.RangeF(0.3, 1.0) * speed
		ps.Add(Particle{
			X: x + r.RangeF(-2, 2), Y: y + r.RangeF(-2, 2),
			VX: math.Cos(ang) * spd, VY: math.Sin(ang) * spd,
			Size: r.RangeF(1.5, 3.0), MaxLife: r.RangeF(0.5, 1.4),
			Col: col.Add(r.Intn(40)-20, r.Intn(40)-20, r.Intn(40)-20), Kind: ParticleSpark,
		})
	}
}

// SpawnHitSparks emits a small cone of sparks along the hit normal, used when
// a projectile connects without killing.
func (ps *ParticleSystem) SpawnHitSparks(x, y, nx, ny float64, count int) {
	r := NewRand(hash2D(ps.seed^0x517A9, int(x), int(y)))
	ang0 := math.Atan2(ny, nx)
	for i := 0; i < count; i++ {
		ang := ang0 + r.RangeF(-0.7, 0.7)
		spd := r.RangeF(60, 180)
		ps.Add(Particle{
			X: x, Y: y,
			VX: math.Cos(ang) * spd, VY: math.Sin(ang) * spd,
			Size: r.RangeF(1.0, 2.0), MaxLife: r.RangeF(0.15, 0.4),
			Col: Palette.Spark, Kind: ParticleGlow,
		})
	}
}

// SpawnDeathBurst scatters death particles outward from the dead player.
// They carry no lifetime; the death machine collects them.
func (ps *ParticleSystem) SpawnDeathBurst(x, y float64, col RGB, count int) {
	r := NewRand(hash2D(ps.seed^0xDEAD, int(x), int(y)))
	for i := 0; i < count; i++ {
		ang := r.Angle()
		spd := r.RangeF(40, 260)
		ps.Add(Particle{
			X: x, Y: y,
			VX: math.Cos(ang) * spd, VY: math.Sin(ang) * spd,
			Size: r.RangeF(1.5, 3.5), MaxLife: math.Inf(1),
			Col: col, Kind: ParticleDeath,
		})
	}
}
