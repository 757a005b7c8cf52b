package game

import (
	"math"
	"testing"
)

func TestGridResizeDimensions(t *testing.T) {
	g := NewGrid(100, 100, 40)
	if g.Cols != 5 || g.Rows != 5 {
		t.Fatalf("grid dims = %dx%d, want 5x5", g.Cols, g.Rows)
	}
	if len(g.Nodes) != 25 {
		t.Fatalf("node count = %d, want 25", len(g.Nodes))
	}

	// Padding row/col sits one spacing outside the viewport.
	n := g.Node(0, 0)
	if n.BaseX != -40 || n.BaseY != -40 {
		t.Errorf("corner base = (%v, %v), want (-40, -40)", n.BaseX, n.BaseY)
	}

	if g.Node(-1, 0) != nil || g.Node(0, g.Rows) != nil {
		t.Error("out-of-range Node should return nil")
	}
}

func TestGridSpringReturnsToRest(t *testing.T) {
	g := NewGrid(200, 200, 40)
	n := g.Node(2, 2)
	n.X = n.BaseX + 30
	n.Y = n.BaseY - 20

	prev := math.Hypot(n.X-n.BaseX, n.Y-n.BaseY)
	for i := 0; i < 300; i++ {
		g.Update(1.0 / 60.0)
	}
	after := math.Hypot(n.X-n.BaseX, n.Y-n.BaseY)
	if after >= prev {
		t.Errorf("displacement did not shrink: %v -> %v", prev, after)
	}
	if after > 1.0 {
		t.Errorf("node not near rest after settling: %v", after)
	}
}

func TestGridImpulseRadius(t *testing.T) {
	g := NewGrid(400, 400, 40)
	far := g.Node(9, 9)
	g.ApplyImpulse(0, 0, 100, 80)

	if far.VX != 0 || far.VY != 0 {
		t.Error("node outside impulse radius gained velocity")
	}

	moved := false
	for col := 0; col < g.Cols; col++ {
		for row := 0; row < g.Rows; row++ {
			n := g.Node(col, row)
			if n.VX != 0 || n.VY != 0 {
				moved = true
			}
		}
	}
	if !moved {
		t.Error("no node gained velocity from impulse")
	}
}

func TestGridResizeSnapsToRest(t *testing.T) {
	g := NewGrid(200, 200, 40)
	n := g.Node(2, 2)
	n.X += 50
	n.VX = 100

	g.Resize(300, 300, 40)
	for i := range g.Nodes {
		n := &g.Nodes[i]
		if n.X != n.BaseX || n.Y != n.BaseY || n.VX != 0 || n.VY != 0 {
			t.Fatal("resize should regenerate nodes at rest")
		}
	}
}
