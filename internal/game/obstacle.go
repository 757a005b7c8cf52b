package game

// Obstacle is a static axis-aligned rectangle, present only in stealth mode.
// The layout regenerates on mode switch and on player death.
type Obstacle struct {
	X, Y, W, H float64
}

const obstacleCount = 7

// regenObstacles rebuilds the stealth-mode layout. Rectangles never overlap
// the player spawn area.
func (g *Game) regenObstacles() {
	g.Obstacles = g.Obstacles[:0]
	if !g.Cfg.StealthMode {
		return
	}
	for len(g.Obstacles) < obstacleCount {
		w := g.Rand.RangeF(60, 180)
		h := g.Rand.RangeF(60, 180)
		x := g.Rand.RangeF(0, g.W-w)
		y := g.Rand.RangeF(0, g.H-h)

		// Keep a clear pocket around the player.
		cx := x + w*0.5
		cy := y + h*0.5
		dx := cx - g.Player.X
		dy := cy - g.Player.Y
		if dx*dx+dy*dy < 200*200 {
			continue
		}
		g.Obstacles = append(g.Obstacles, Obstacle{X: x, Y: y, W: w, H: h})
	}
}

func (g *Game) pointInObstacle(x, y float64) bool {
	for i := range g.Obstacles {
		o := &g.Obstacles[i]
		if x >= o.X && x <= o.X+o.W && y >= o.Y && y <= o.Y+o.H {
			return true
		}
	}
	return false
}

// lineBlocked reports whether the segment (x0,y0)-(x1,y1) crosses any
// obstacle. Sampled at a fixed step; obstacles are large relative to it.
func (g *Game) lineBlocked(x0, y0, x1, y1 float64) bool {
	if len(g.Obstacles) == 0 {
		return false
	}
	const step = 8.0
	dx := x1 - x0
	dy := y1 - y0
	dist := dx*dx + dy*dy
	if dist < step*step {
		return false
	}
	ux, uy := normalize(dx, dy)
	n := int(dist) // overestimate; loop exits on arrival
	x, y := x0, y0
	for i := 0; i < n; i++ {
		x += ux * step
		y += uy * step
		if (x-x0)*(x-x0)+(y-y0)*(y-y0) >= dist {
			return false
		}
		if g.pointInObstacle(x, y) {
			return true
		}
	}
	return false
}
