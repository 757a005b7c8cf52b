package game

import "math"

const (
	particleAirDrag   = 1.8
	deathDriftDrag    = 0.9
	deathGatherSpeed  = 6.0  // lerp rate toward the respawn point
	deathGatherRadius = 12.0 // arrival distance
	formingPullRate   = 4.0  // lerp rate toward the formation centroid
)

// Update advances free particles. Death particles and forming-claimed
// particles are driven elsewhere (death machine, aggregation) and only age
// here when unclaimed rules say so.
func (ps *ParticleSystem) Update(dt float64) {
	if dt <= 0 {
		return
	}
	drag := math.Exp(-particleAirDrag * dt)

	for i := 0; i < len(ps.P); {
		p := &ps.P[i]

		if p.Kind == ParticleDeath || p.FormingID != 0 {
			i++
			continue
		}

		p.Life += dt
		if p.Life >= p.MaxLife {
			ps.remove(i)
			continue
		}

		p.VX *= drag
		p.VY *= drag
		p.X += p.VX * dt
		p.Y += p.VY * dt
		i++
	}
}

// UpdateDeath drifts death particles before the gather deadline and pulls
// them to (gx, gy) after it. Returns true once none remain.
func (ps *ParticleSystem) UpdateDeath(dt float64, gathering bool, gx, gy float64) bool {
	drag := math.Exp(-deathDriftDrag * dt)
	remaining := 0

	for i := 0; i < len(ps.P); {
		p := &ps.P[i]
		if p.Kind != ParticleDeath {
			i++
			continue
		}

		if !gathering {
			p.VX *= drag
			p.VY *= drag
			p.X += p.VX * dt
			p.Y += p.VY * dt
			remaining++
			i++
			continue
		}

		t := clampF(deathGatherSpeed*dt, 0, 1)
		p.X = lerp(p.X, gx, t)
		p.Y = lerp(p.Y, gy, t)
		if math.Hypot(p.X-gx, p.Y-gy) < deathGatherRadius {
			ps.remove(i)
			continue
		}
		remaining++
		i++
	}
	return remaining == 0
}

// PullClaimed lerps particles claimed by formingID toward (cx, cy).
func (ps *ParticleSystem) PullClaimed(dt float64, formingID int, cx, cy float64) {
	t := clampF(formingPullRate*dt, 0, 1)
	for i := range ps.P {
		p := &ps.P[i]
		if p.FormingID != formingID {
			continue
		}
		p.X = lerp(p.X, cx, t)
		p.Y = lerp(p.Y, cy, t)
	}
}

// ApplyImpulse pushes free particles radially away from (x, y), falloff
// linear with distance. Shockwaves use this as their wavefront.
func (ps *ParticleSystem) ApplyImpulse(x, y, strength, radius float64) {
	if radius <= 0 {
		return
	}
	r2 := radius * radius
	for i := range ps.P {
		p := &ps.P[i]
		if p.Kind == ParticleDeath || p.FormingID != 0 {
			continue
		}
		dx := p.X - x
		dy := p.Y - y
		d2 := dx*dx + dy*dy
		if d2 > r2 {
			continue
		}
		d := math.Sqrt(d2)
		ux, uy := normalize(dx, dy)
		f := strength * (1.0 - d/radius)
		p.VX += ux * f
		p.VY += uy * f
	}
}
