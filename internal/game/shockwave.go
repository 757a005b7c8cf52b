package game

// Shockwave is an expanding ring whose life decays 1→0. It is an impulse
// source for particles and the grid; it never collides with entities.
type Shockwave struct {
	X, Y      float64
	Life      float64 // 1 at birth, 0 at full expansion
	MaxRadius float64
}

// Radius returns the current ring radius.
func (s *Shockwave) Radius() float64 {
	return (1.0 - s.Life) * s.MaxRadius
}

const shockwaveDecay = 1.6 // life units per second

func (g *Game) addShockwave(x, y, maxRadius float64) {
	g.Shockwaves = append(g.Shockwaves, Shockwave{X: x, Y: y, Life: 1, MaxRadius: maxRadius})
	g.Grid.ApplyImpulse(x, y, maxRadius*0.8, maxRadius)
}

// updateShockwaves expands rings and pushes free particles outward at the
// advancing wavefront.
func (g *Game) updateShockwaves(dt float64) {
	for i := 0; i < len(g.Shockwaves); {
		s := &g.Shockwaves[i]
		s.Life -= shockwaveDecay * dt
		if s.Life <= 0 {
			g.Shockwaves[i] = g.Shockwaves[len(g.Shockwaves)-1]
			g.Shockwaves = g.Shockwaves[:len(g.Shockwaves)-1]
			continue
		}
		g.Particles.ApplyImpulse(s.X, s.Y, 1400*s.Life*dt, s.Radius()+40)
		i++
	}
}
