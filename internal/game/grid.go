package game

import "math"

// GridNode is one mass point of the background mesh. Base coordinates are its
// rest position; nodes are never created or destroyed after Resize.
type GridNode struct {
	BaseX, BaseY float64
	X, Y         float64
	VX, VY       float64
}

// Grid is a damped spring mesh that reacts to explosion impulses. Purely
// visual, but stateful across frames.
type Grid struct {
	Cols, Rows int
	Spacing    float64
	Nodes      []GridNode
}

func NewGrid(width, height, spacing float64) *Grid {
	g := &Grid{}
	g.Resize(width, height, spacing)
	return g
}

// Resize regenerates the node array to cover the viewport plus one node of
// padding on each side. Any accumulated displacement snaps back to rest.
func (g *Grid) Resize(width, height, spacing float64) {
	if spacing <= 0 {
		spacing = 40
	}
	g.Spacing = spacing
	g.Cols = int(math.Ceil(width/spacing)) + 2
	g.Rows = int(math.Ceil(height/spacing)) + 2
	g.Nodes = make([]GridNode, g.Cols*g.Rows)
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			x := float64(col-1) * spacing
			y := float64(row-1) * spacing
			g.Nodes[row*g.Cols+col] = GridNode{BaseX: x, BaseY: y, X: x, Y: y}
		}
	}
}

// Node returns the node at (col, row), or nil when out of range.
func (g *Grid) Node(col, row int) *GridNode {
	if col < 0 || row < 0 || col >= g.Cols || row >= g.Rows {
		return nil
	}
	return &g.Nodes[row*g.Cols+col]
}

// Update pulls every node back toward its base position and damps velocity.
func (g *Grid) Update(dt float64) {
	for i := range g.Nodes {
		n := &g.Nodes[i]
		n.VX += (n.BaseX - n.X) * GridStiffness * dt
		n.VY += (n.BaseY - n.Y) * GridStiffness * dt
		n.VX *= GridDamping
		n.VY *= GridDamping
		n.X += n.VX * dt
		n.Y += n.VY * dt
	}
}

// ApplyImpulse adds radial velocity to nodes within radius of (x, y), with
// linear distance falloff.
func (g *Grid) ApplyImpulse(x, y, strength, radius float64) {
	if radius <= 0 {
		return
	}
	r2 := radius * radius
	for i := range g.Nodes {
		n := &g.Nodes[i]
		dx := n.X - x
		dy := n.Y - y
		d2 := dx*dx + dy*dy
		if d2 > r2 {
			continue
		}
		d := math.Sqrt(d2)
		ux, uy := normalize(dx, dy)
		f := strength * (1.0 - d/radius)
		n.VX += ux * f
		n.VY += uy * f
	}
}
