package game

import "math"

// FormingEnemy tracks an in-progress aggregation: settled particles claimed
// into a cluster that resolves into a live aggregate enemy after the
// formation window.
type FormingEnemy struct {
	ID           int
	CX, CY       float64
	Start        float64 // simulation time the claim was made
	Count        int
	TargetRadius float64
}

// scanAggregation runs the periodic cluster scan: bucket settled, unclaimed
// particles on a coarse grid and promote the densest qualifying bucket into a
// formation. The timer resets even when nothing qualifies.
func (g *Game) scanAggregation() {
	if g.Now-g.lastAggScan < AggregateScanEvery {
		return
	}
	g.lastAggScan = g.Now

	buckets := make(map[[2]int][]int)
	for i := range g.Particles.P {
		p := &g.Particles.P[i]
		if p.Kind == ParticleDeath || p.FormingID != 0 {
			continue
		}
		if math.Hypot(p.VX, p.VY) > AggregateRestSpeed {
			continue
		}
		key := [2]int{int(math.Floor(p.X / AggregateCellSize)), int(math.Floor(p.Y / AggregateCellSize))}
		buckets[key] = append(buckets[key], i)
	}

	var best []int
	for _, members := range buckets {
		if len(members) >= AggregateMinCount && len(members) > len(best) {
			best = members
		}
	}
	if best == nil {
		return
	}

	fid := g.nextID
	g.nextID++

	var cx, cy float64
	for _, i := range best {
		p := &g.Particles.P[i]
		cx += p.X
		cy += p.Y
		p.FormingID = fid
		// Extend life so no participant expires mid-formation.
		p.MaxLife = p.Life + AggregateFormTime + 1.0
	}
	n := float64(len(best))
	cx /= n
	cy /= n

	g.Forming = append(g.Forming, FormingEnemy{
		ID:           fid,
		CX:           cx,
		CY:           cy,
		Start:        g.Now,
		Count:        len(best),
		TargetRadius: math.Min(20+0.5*n, 100),
	})
}

// updateForming pulls claimed particles toward their centroid and resolves
// completed formations into aggregate enemies.
func (g *Game) updateForming(dt float64) {
	for i := 0; i < len(g.Forming); {
		f := &g.Forming[i]
		g.Particles.PullClaimed(dt, f.ID, f.CX, f.CY)

		if g.Now-f.Start < AggregateFormTime {
			i++
			continue
		}

		e := g.addEnemy(EnemyAggregate, f.CX, f.CY)
		e.Radius = f.TargetRadius
		e.HP = NewHealth(math.Min(10+2*float64(f.Count), 80))

		// Participants are consumed by the new body.
		for pi := 0; pi < len(g.Particles.P); {
			if g.Particles.P[pi].FormingID == f.ID {
				g.Particles.remove(pi)
				continue
			}
			pi++
		}
		g.addShockwave(f.CX, f.CY, f.TargetRadius*1.5)

		g.Forming[i] = g.Forming[len(g.Forming)-1]
		g.Forming = g.Forming[:len(g.Forming)-1]
	}

	g.sweepOrphanClaims()
}

// sweepOrphanClaims releases particles whose forming record is gone, so a
// stale claim can never freeze a particle forever.
func (g *Game) sweepOrphanClaims() {
	for i := range g.Particles.P {
		fid := g.Particles.P[i].FormingID
		if fid == 0 {
			continue
		}
		found := false
		for j := range g.Forming {
			if g.Forming[j].ID == fid {
				found = true
				break
			}
		}
		if !found {
			g.Particles.P[i].FormingID = 0
		}
	}
}
